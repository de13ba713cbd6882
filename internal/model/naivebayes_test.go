package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsgauge/veracity/internal/domain"
)

func fitTestClassifier(t *testing.T) (*NaiveBayes, *Vectorizer) {
	t.Helper()

	corpus := []string{
		"aliens landed in ohio yesterday",
		"shocking miracle cure doctors hate",
		"aliens control the government",
		"federal reserve raised interest rates",
		"city council approved the annual budget",
		"researchers published peer reviewed findings",
	}
	labels := []domain.Label{
		domain.LabelFake, domain.LabelFake, domain.LabelFake,
		domain.LabelReal, domain.LabelReal, domain.LabelReal,
	}

	v := &Vectorizer{}
	v.Fit(corpus)

	vecs := make([]TermCounts, len(corpus))
	for i, doc := range corpus {
		vecs[i] = v.Transform(doc)
	}

	nb := NewNaiveBayes(DefaultAlpha)
	require.NoError(t, nb.Fit(vecs, labels, v.VocabularySize()))

	return nb, v
}

func TestNaiveBayes_FitErrors(t *testing.T) {
	nb := NewNaiveBayes(DefaultAlpha)

	err := nb.Fit(nil, nil, 0)
	assert.ErrorContains(t, err, "empty training set")

	err = nb.Fit([]TermCounts{{}}, []domain.Label{domain.LabelFake, domain.LabelReal}, 1)
	assert.ErrorContains(t, err, "1 vectors but 2 labels")
}

func TestNaiveBayes_Predict(t *testing.T) {
	nb, v := fitTestClassifier(t)

	cases := []struct {
		name string
		text string
		want domain.Label
	}{
		{
			name: "fake_vocabulary",
			text: "aliens landed again",
			want: domain.LabelFake,
		},
		{
			name: "real_vocabulary",
			text: "council approved interest rates",
			want: domain.LabelReal,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			vec := v.Transform(tc.text)
			assert.Equal(t, tc.want, nb.Predict(vec))
			assert.Greater(t, nb.Confidence(vec), 0.5)
		})
	}
}

func TestNaiveBayes_PredictProbaSumsToOne(t *testing.T) {
	nb, v := fitTestClassifier(t)

	probs := nb.PredictProba(v.Transform("aliens approved the budget"))

	var sum float64
	for _, p := range probs {
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestNaiveBayes_NoVocabularyOverlapYieldsPriors(t *testing.T) {
	nb, v := fitTestClassifier(t)

	probs := nb.PredictProba(v.Transform("zzz qqq www"))

	// Balanced training set, so posteriors collapse to the uniform priors.
	require.Len(t, probs, 2)
	assert.InDelta(t, 0.5, probs[domain.LabelFake], 1e-9)
	assert.InDelta(t, 0.5, probs[domain.LabelReal], 1e-9)

	for _, p := range probs {
		assert.False(t, p != p, "posterior must not be NaN")
	}
}

func TestNewNaiveBayes_NonPositiveAlphaFallsBack(t *testing.T) {
	assert.Equal(t, DefaultAlpha, NewNaiveBayes(0).Alpha)
	assert.Equal(t, DefaultAlpha, NewNaiveBayes(-1).Alpha)
	assert.Equal(t, 0.1, NewNaiveBayes(0.1).Alpha)
}
