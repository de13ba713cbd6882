package controller

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/newsgauge/veracity/internal/command"
	"github.com/newsgauge/veracity/internal/domain"
)

// ReportResolve closes one open report with a terminal action. The report is
// addressed by its (article, reporter) pair; the acting admin comes from the
// request context.
type ReportResolve struct {
	ResolveCmd command.Command[command.ResolveReportRequest, command.ResolveReportResult]
}

type ReportResolveResponse struct {
	Action   domain.ResolveAction `json:"action"`
	NewLabel domain.Label         `json:"new_label,omitempty"`
}

func (c ReportResolve) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(),
		logger.With("article_id", vars["article_id"], "report_user_id", vars["user_id"]))

	articleID, err := strconv.ParseInt(vars["article_id"], 10, 64)
	if err != nil {
		logger.WarnContext(ctx, "invalid article id", "value", vars["article_id"])
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	reportUserID, err := strconv.ParseInt(vars["user_id"], 10, 64)
	if err != nil {
		logger.WarnContext(ctx, "invalid report user id", "value", vars["user_id"])
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	action := domain.ResolveAction(vars["action"])

	result, err := c.ResolveCmd.Execute(ctx, command.ResolveReportRequest{
		Actor:        domain.UserFromContext(r.Context()),
		Action:       action,
		ReportUserID: reportUserID,
		ArticleID:    articleID,
	})
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, ReportResolveResponse{
		Action:   action,
		NewLabel: result.NewLabel,
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write resolution response", "error", err)
	}
}
