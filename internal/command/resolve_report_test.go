package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/newsgauge/veracity/internal/datasources/mocks"
	"github.com/newsgauge/veracity/internal/domain"
)

func TestResolveReport_Execute(t *testing.T) {
	admin := domain.User{ID: 1, Username: "root", Role: domain.RoleAdmin}

	cases := []struct {
		name        string
		req         ResolveReportRequest
		newLabel    domain.Label
		resolveErr  error
		wantErr     error
		wantLabel   domain.Label
		skipResolve bool
	}{
		{
			name: "toggle_returns_new_label",
			req: ResolveReportRequest{
				Actor: admin, Action: domain.ResolveToggle, ReportUserID: 7, ArticleID: 42,
			},
			newLabel:  domain.LabelReal,
			wantLabel: domain.LabelReal,
		},
		{
			name: "dismiss_returns_empty_label",
			req: ResolveReportRequest{
				Actor: admin, Action: domain.ResolveDismiss, ReportUserID: 7, ArticleID: 42,
			},
		},
		{
			name: "non_admin_rejected",
			req: ResolveReportRequest{
				Actor:  domain.User{ID: 7, Username: "alice", Role: domain.RoleNormal},
				Action: domain.ResolveToggle, ReportUserID: 7, ArticleID: 42,
			},
			wantErr:     domain.ErrPermission,
			skipResolve: true,
		},
		{
			name: "unknown_action_rejected",
			req: ResolveReportRequest{
				Actor: admin, Action: domain.ResolveAction("merge"), ReportUserID: 7, ArticleID: 42,
			},
			wantErr:     domain.ErrValidation,
			skipResolve: true,
		},
		{
			name: "already_handled_passes_through",
			req: ResolveReportRequest{
				Actor: admin, Action: domain.ResolveDismiss, ReportUserID: 7, ArticleID: 42,
			},
			resolveErr: domain.ErrNotFound,
			wantErr:    domain.ErrNotFound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resolver := mocks.NewMockReportResolver(t)

			if !tc.skipResolve {
				resolver.EXPECT().
					ResolveReport(mock.Anything, tc.req.Action, tc.req.ReportUserID, tc.req.ArticleID).
					Return(tc.newLabel, tc.resolveErr)
			}

			cmd := NewResolveReport(resolver)
			result, err := cmd.Execute(testContext(), tc.req)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantLabel, result.NewLabel)
		})
	}
}
