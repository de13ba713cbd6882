package command

import (
	"context"
	"fmt"

	"github.com/newsgauge/veracity/internal/datasources"
	"github.com/newsgauge/veracity/internal/domain"
)

// ResolveReportRequest identifies one open report and the action to close it
// with. ReportUserID is the reporter, not the acting admin.
type ResolveReportRequest struct {
	Actor        domain.User
	Action       domain.ResolveAction
	ReportUserID int64
	ArticleID    int64
}

// ResolveReportResult carries the article's new label after a toggle;
// it is empty for delete and dismiss.
type ResolveReportResult struct {
	NewLabel domain.Label
}

// ResolveReport closes an open report. Every resolution is terminal: the
// report record is deleted as part of the action. Toggle and dismiss leave
// other open reports on the same article untouched; delete removes the
// article and with it every report and endorsement referencing it.
type ResolveReport struct {
	Resolver datasources.ReportResolver
}

// NewResolveReport creates a properly initialized ResolveReport command.
func NewResolveReport(resolver datasources.ReportResolver) *ResolveReport {
	return &ResolveReport{Resolver: resolver}
}

func (c *ResolveReport) Execute(ctx context.Context, req ResolveReportRequest) (ResolveReportResult, error) {
	if !req.Actor.IsAdmin() {
		return ResolveReportResult{}, fmt.Errorf("%w: resolving reports requires the admin role", domain.ErrPermission)
	}
	if !req.Action.Valid() {
		return ResolveReportResult{}, fmt.Errorf("%w: unknown resolve action %q", domain.ErrValidation, req.Action)
	}

	newLabel, err := c.Resolver.ResolveReport(ctx, req.Action, req.ReportUserID, req.ArticleID)
	if err != nil {
		return ResolveReportResult{}, err
	}

	logger := domain.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "report resolved",
		"action", req.Action, "article_id", req.ArticleID,
		"report_user_id", req.ReportUserID, "admin_id", req.Actor.ID)

	return ResolveReportResult{NewLabel: newLabel}, nil
}
