package controller

import (
	"encoding/json"
	"net/http"

	"github.com/newsgauge/veracity/internal/command"
	"github.com/newsgauge/veracity/internal/domain"
)

// ArticleCheck classifies a submitted headline+body, persists the result and
// endorses it for the requesting user. Unauthenticated requests run as guest.
type ArticleCheck struct {
	ClassifyCmd command.Command[command.ClassifyArticleRequest, command.ClassifyArticleResult]
}

type ArticleCheckRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type ArticleCheckResponse struct {
	ArticleID  int64        `json:"article_id"`
	Label      domain.Label `json:"label"`
	Confidence float64      `json:"confidence"`
}

func (c ArticleCheck) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var req ArticleCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "unable to decode check request body", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := c.ClassifyCmd.Execute(ctx, command.ClassifyArticleRequest{
		User:    domain.UserFromContext(ctx),
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, ArticleCheckResponse{
		ArticleID:  result.ArticleID,
		Label:      result.Label,
		Confidence: result.Confidence,
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write check response", "error", err)
	}
}
