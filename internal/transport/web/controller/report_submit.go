package controller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/newsgauge/veracity/internal/command"
	"github.com/newsgauge/veracity/internal/domain"
)

// ReportSubmit files a report against an article's label on behalf of the
// authenticated user.
type ReportSubmit struct {
	SubmitCmd command.Command[command.SubmitReportRequest, command.Empty]
}

type ReportSubmitRequest struct {
	Content string `json:"content"`
}

func (c ReportSubmit) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("article_id", vars["article_id"]))

	articleID, err := strconv.ParseInt(vars["article_id"], 10, 64)
	if err != nil {
		logger.WarnContext(ctx, "invalid article id", "value", vars["article_id"])
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var req ReportSubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "unable to decode report body", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if _, err := c.SubmitCmd.Execute(ctx, command.SubmitReportRequest{
		Reporter:  domain.UserFromContext(r.Context()),
		ArticleID: articleID,
		Content:   req.Content,
	}); err != nil {
		writeDomainError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}
