package controller

import (
	"net/http"

	"github.com/newsgauge/veracity/internal/domain"
	"github.com/newsgauge/veracity/internal/model"
)

// ModelInfo exposes training-run metadata: held-out accuracy, smoothing
// strength and vocabulary width.
type ModelInfo struct {
	Model *model.Model
}

type ModelInfoResponse struct {
	Accuracy       float64 `json:"accuracy"`
	Alpha          float64 `json:"alpha"`
	VocabularySize int     `json:"vocabulary_size"`
}

func (c ModelInfo) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	if err := writeJSON(w, http.StatusOK, ModelInfoResponse{
		Accuracy:       c.Model.Accuracy,
		Alpha:          c.Model.Classifier.Alpha,
		VocabularySize: c.Model.Vectorizer.VocabularySize(),
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write model info response", "error", err)
	}
}
