package command

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/newsgauge/veracity/internal/datasources"
	"github.com/newsgauge/veracity/internal/domain"
)

// SubmitReportRequest is the request for the SubmitReport command.
type SubmitReportRequest struct {
	Reporter  domain.User
	ArticleID int64
	Content   string
}

// SubmitReport creates an open report against an article's label.
// Admins and the guest account cannot report, the content must carry at
// least domain.MinReportLength runes, and a user holds at most one report
// per article; a duplicate is rejected, not merged.
type SubmitReport struct {
	Reports datasources.ReportSubmitter
}

// NewSubmitReport creates a properly initialized SubmitReport command.
func NewSubmitReport(reports datasources.ReportSubmitter) *SubmitReport {
	return &SubmitReport{Reports: reports}
}

func (c *SubmitReport) Execute(ctx context.Context, req SubmitReportRequest) (Empty, error) {
	if req.Reporter.IsAdmin() {
		return Empty{}, fmt.Errorf("%w: admins review reports, they do not submit them", domain.ErrValidation)
	}
	if req.Reporter.IsGuest() || req.Reporter.ID == 0 {
		return Empty{}, fmt.Errorf("%w: log in to report an article", domain.ErrValidation)
	}
	if utf8.RuneCountInString(req.Content) < domain.MinReportLength {
		return Empty{}, fmt.Errorf("%w: report must be at least %d characters", domain.ErrValidation, domain.MinReportLength)
	}

	if err := c.Reports.SubmitReport(ctx, req.Reporter.ID, req.ArticleID, req.Content); err != nil {
		return Empty{}, err
	}

	logger := domain.LoggerFromContext(ctx)
	logger.DebugContext(ctx, "report submitted",
		"article_id", req.ArticleID, "user_id", req.Reporter.ID)

	return Empty{}, nil
}
