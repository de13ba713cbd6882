package model

import (
	"fmt"
	"math/rand/v2"

	"github.com/newsgauge/veracity/internal/domain"
)

// MinTrainingRecords is the smallest dataset that can form a meaningful
// train/test split. Anything smaller is a deployment misconfiguration.
const MinTrainingRecords = 5

// TrainingRecord is one labeled historical article.
type TrainingRecord struct {
	Title   string
	Content string
	Label   domain.Label
}

// TrainingConfig controls vectorizer/classifier fitting. The seed makes the
// train/test split reproducible: repeated runs over the same dataset report
// the same held-out accuracy.
type TrainingConfig struct {
	Alpha        float64
	TestFraction float64
	Seed         uint64
}

// DefaultTrainingConfig returns the standard 80/20 split with fixed seed.
func DefaultTrainingConfig() TrainingConfig {
	return TrainingConfig{
		Alpha:        DefaultAlpha,
		TestFraction: 0.2,
		Seed:         42,
	}
}

// Model bundles a fitted vectorizer and classifier with the held-out accuracy
// measured at training time.
type Model struct {
	Vectorizer *Vectorizer `json:"vectorizer"`
	Classifier *NaiveBayes `json:"classifier"`
	Accuracy   float64     `json:"accuracy"`
}

// Predict classifies raw text.
func (m *Model) Predict(text string) domain.Label {
	return m.Classifier.Predict(m.Vectorizer.Transform(text))
}

// PredictWithConfidence classifies raw text and returns the posterior
// probability mass of the predicted label.
func (m *Model) PredictWithConfidence(text string) (domain.Label, float64) {
	vec := m.Vectorizer.Transform(text)
	probs := m.Classifier.PredictProba(vec)

	label := m.Classifier.Predict(vec)
	return label, probs[label]
}

// Train fits a vectorizer and classifier on an 80/20 split of the dataset and
// measures accuracy on the held-out partition. Title and content are
// concatenated into one document per record. The vectorizer is fitted on the
// training partition only.
//
// A dataset with fewer than MinTrainingRecords records or fewer than two
// distinct labels is a fatal configuration error; the returned error should
// abort startup rather than be degraded around.
func Train(records []TrainingRecord, cfg TrainingConfig) (*Model, error) {
	if len(records) < MinTrainingRecords {
		return nil, fmt.Errorf("training dataset has %d records, need at least %d", len(records), MinTrainingRecords)
	}

	labelSet := make(map[domain.Label]struct{})
	for _, rec := range records {
		labelSet[rec.Label] = struct{}{}
	}
	if len(labelSet) < 2 {
		return nil, fmt.Errorf("training dataset has %d distinct label(s), need at least 2", len(labelSet))
	}

	if cfg.TestFraction <= 0 || cfg.TestFraction >= 1 {
		return nil, fmt.Errorf("invalid test fraction %g, must be in (0, 1)", cfg.TestFraction)
	}

	docs := make([]string, len(records))
	labels := make([]domain.Label, len(records))
	for i, rec := range records {
		docs[i] = rec.Title + " " + rec.Content
		labels[i] = rec.Label
	}

	rng := rand.New(rand.NewPCG(cfg.Seed, 0))
	perm := rng.Perm(len(records))

	testSize := int(float64(len(records)) * cfg.TestFraction)
	if testSize < 1 {
		testSize = 1
	}
	testIdx := perm[:testSize]
	trainIdx := perm[testSize:]

	trainDocs := make([]string, 0, len(trainIdx))
	trainLabels := make([]domain.Label, 0, len(trainIdx))
	for _, i := range trainIdx {
		trainDocs = append(trainDocs, docs[i])
		trainLabels = append(trainLabels, labels[i])
	}

	vectorizer := &Vectorizer{}
	vectorizer.Fit(trainDocs)

	trainVecs := make([]TermCounts, len(trainDocs))
	for i, doc := range trainDocs {
		trainVecs[i] = vectorizer.Transform(doc)
	}

	classifier := NewNaiveBayes(cfg.Alpha)
	if err := classifier.Fit(trainVecs, trainLabels, vectorizer.VocabularySize()); err != nil {
		return nil, err
	}

	correct := 0
	for _, i := range testIdx {
		if classifier.Predict(vectorizer.Transform(docs[i])) == labels[i] {
			correct++
		}
	}
	accuracy := float64(correct) / float64(testSize)

	return &Model{
		Vectorizer: vectorizer,
		Classifier: classifier,
		Accuracy:   accuracy,
	}, nil
}
