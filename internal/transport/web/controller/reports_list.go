package controller

import (
	"net/http"

	"github.com/newsgauge/veracity/internal/datasources"
	"github.com/newsgauge/veracity/internal/domain"
)

// ReportsList returns every open report for admin review. The router guards
// this behind the admin middleware.
type ReportsList struct {
	Lister datasources.ReportsLister
}

type ReportsListResponse struct {
	Data []domain.Report `json:"data"`
}

func (c ReportsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	reports, err := c.Lister.FetchAllReports(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch reports", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, ReportsListResponse{Data: reports}); err != nil {
		logger.ErrorContext(ctx, "unable to write reports to response", "error", err)
	}
}
