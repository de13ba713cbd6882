package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/newsgauge/veracity/internal/datasources/mocks"
	"github.com/newsgauge/veracity/internal/domain"
)

func TestReportsList_ServeHTTP(t *testing.T) {
	admin := domain.User{ID: 1, Username: "root", Role: domain.RoleAdmin}

	cases := []struct {
		name       string
		reports    []domain.Report
		fetchErr   error
		wantStatus int
	}{
		{
			name: "lists_open_reports",
			reports: []domain.Report{
				{UserID: 7, ArticleID: 42, Content: "this label looks wrong to me", ArticleTitle: "Aliens Landed"},
				{UserID: 8, ArticleID: 42, Content: "agreed, the label is wrong", ArticleTitle: "Aliens Landed"},
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "empty_list",
			wantStatus: http.StatusOK,
		},
		{
			name:       "fetch_error",
			fetchErr:   errors.New("database error"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lister := mocks.NewMockReportsLister(t)
			lister.EXPECT().
				FetchAllReports(mock.Anything).
				Return(tc.reports, tc.fetchErr)

			controller := ReportsList{Lister: lister}

			req := httptest.NewRequest(http.MethodGet, "/v1/reports", nil)
			req = testContextWithUser(admin)(req)
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantStatus == http.StatusOK {
				var resp ReportsListResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tc.reports, resp.Data)
			}
		})
	}
}
