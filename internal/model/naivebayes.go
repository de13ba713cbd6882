package model

import (
	"fmt"
	"math"
	"sort"

	"github.com/newsgauge/veracity/internal/domain"
)

// DefaultAlpha is the default additive smoothing strength. Lower values
// (e.g. 0.1) sharpen confidence at the cost of robustness to rare terms.
const DefaultAlpha = 1.0

// NaiveBayes is a multinomial-event generative classifier. For each label
// class it estimates a smoothed term-frequency distribution from training
// vectors, then classifies by maximum posterior with empirical class priors.
// Fields are exported for artifact serialization.
type NaiveBayes struct {
	Alpha          float64        `json:"alpha"`
	Classes        []domain.Label `json:"classes"`
	ClassLogPrior  []float64      `json:"class_log_prior"`
	FeatureLogProb [][]float64    `json:"feature_log_prob"`
	VocabSize      int            `json:"vocab_size"`
}

// NewNaiveBayes creates an untrained classifier. A non-positive alpha falls
// back to DefaultAlpha.
func NewNaiveBayes(alpha float64) *NaiveBayes {
	if alpha <= 0 {
		alpha = DefaultAlpha
	}
	return &NaiveBayes{Alpha: alpha}
}

// Fit estimates class priors and per-class term distributions from the
// vectorized training set. Vectors and labels must be parallel slices.
func (nb *NaiveBayes) Fit(vectors []TermCounts, labels []domain.Label, vocabSize int) error {
	if len(vectors) == 0 {
		return fmt.Errorf("fitting classifier: empty training set")
	}
	if len(vectors) != len(labels) {
		return fmt.Errorf("fitting classifier: %d vectors but %d labels", len(vectors), len(labels))
	}

	classSet := make(map[domain.Label]struct{})
	for _, label := range labels {
		classSet[label] = struct{}{}
	}
	classes := make([]domain.Label, 0, len(classSet))
	for class := range classSet {
		classes = append(classes, class)
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i] < classes[j] })

	classIndex := make(map[domain.Label]int, len(classes))
	for i, class := range classes {
		classIndex[class] = i
	}

	docCounts := make([]float64, len(classes))
	termSums := make([][]float64, len(classes))
	termTotals := make([]float64, len(classes))
	for i := range termSums {
		termSums[i] = make([]float64, vocabSize)
	}

	for i, vec := range vectors {
		c := classIndex[labels[i]]
		docCounts[c]++
		for term, count := range vec {
			termSums[c][term] += count
			termTotals[c] += count
		}
	}

	nb.Classes = classes
	nb.VocabSize = vocabSize
	nb.ClassLogPrior = make([]float64, len(classes))
	nb.FeatureLogProb = make([][]float64, len(classes))

	total := float64(len(vectors))
	for c := range classes {
		nb.ClassLogPrior[c] = math.Log(docCounts[c] / total)

		nb.FeatureLogProb[c] = make([]float64, vocabSize)
		denom := math.Log(termTotals[c] + nb.Alpha*float64(vocabSize))
		for t := 0; t < vocabSize; t++ {
			nb.FeatureLogProb[c][t] = math.Log(termSums[c][t]+nb.Alpha) - denom
		}
	}

	return nil
}

// Predict returns the maximum-posterior label for the vector. Ties break
// toward the lexically smaller class so predictions are deterministic.
func (nb *NaiveBayes) Predict(vec TermCounts) domain.Label {
	scores := nb.jointLogLikelihood(vec)

	best := 0
	for c := 1; c < len(scores); c++ {
		if scores[c] > scores[best] {
			best = c
		}
	}
	return nb.Classes[best]
}

// PredictProba returns the normalized posterior distribution over classes.
// The result always sums to 1 within floating-point tolerance; a vector with
// no vocabulary overlap yields the class priors rather than NaN.
func (nb *NaiveBayes) PredictProba(vec TermCounts) map[domain.Label]float64 {
	scores := nb.jointLogLikelihood(vec)

	// Log-sum-exp normalization keeps long documents from underflowing.
	maxScore := scores[0]
	for _, s := range scores[1:] {
		if s > maxScore {
			maxScore = s
		}
	}

	var sum float64
	exps := make([]float64, len(scores))
	for c, s := range scores {
		exps[c] = math.Exp(s - maxScore)
		sum += exps[c]
	}

	probs := make(map[domain.Label]float64, len(nb.Classes))
	for c, class := range nb.Classes {
		probs[class] = exps[c] / sum
	}
	return probs
}

// Confidence returns the posterior probability mass of the predicted class.
func (nb *NaiveBayes) Confidence(vec TermCounts) float64 {
	probs := nb.PredictProba(vec)
	best := 0.0
	for _, p := range probs {
		if p > best {
			best = p
		}
	}
	return best
}

func (nb *NaiveBayes) jointLogLikelihood(vec TermCounts) []float64 {
	scores := make([]float64, len(nb.Classes))
	for c := range nb.Classes {
		scores[c] = nb.ClassLogPrior[c]
		for term, count := range vec {
			if term < 0 || term >= nb.VocabSize {
				continue
			}
			scores[c] += count * nb.FeatureLogProb[c][term]
		}
	}
	return scores
}
