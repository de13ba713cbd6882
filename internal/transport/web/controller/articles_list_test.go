package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/newsgauge/veracity/internal/datasources/mocks"
	"github.com/newsgauge/veracity/internal/domain"
)

func TestArticlesRecent_ServeHTTP(t *testing.T) {
	cases := []struct {
		name          string
		queryString   string
		wantLimit     int
		articles      []domain.Article
		fetchErr      error
		wantStatus    int
		wantCacheCtrl string
		skipFetch     bool
	}{
		{
			name:      "default_limit",
			wantLimit: 5,
			articles: []domain.Article{
				{ID: 2, Title: "Second", Label: domain.LabelReal, Confidence: 0.8},
				{ID: 1, Title: "First", Label: domain.LabelFake, Confidence: 0.9},
			},
			wantStatus:    http.StatusOK,
			wantCacheCtrl: "max-age=3600",
		},
		{
			name:          "explicit_limit",
			queryString:   "?limit=2",
			wantLimit:     2,
			articles:      []domain.Article{{ID: 2, Title: "Second", Label: domain.LabelReal}},
			wantStatus:    http.StatusOK,
			wantCacheCtrl: "max-age=3600",
		},
		{
			name:        "limit_out_of_range",
			queryString: "?limit=500",
			wantStatus:  http.StatusBadRequest,
			skipFetch:   true,
		},
		{
			name:        "limit_not_a_number",
			queryString: "?limit=many",
			wantStatus:  http.StatusBadRequest,
			skipFetch:   true,
		},
		{
			name:       "fetch_error",
			wantLimit:  5,
			fetchErr:   errors.New("database error"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := mocks.NewMockArticlesFetcher(t)
			if !tc.skipFetch {
				fetcher.EXPECT().
					FetchRecent(mock.Anything, tc.wantLimit).
					Return(tc.articles, tc.fetchErr)
			}

			controller := ArticlesRecent{
				Fetcher:     fetcher,
				CacheMaxAge: time.Hour,
			}

			req := httptest.NewRequest(http.MethodGet, "/v1/articles/recent"+tc.queryString, nil)
			req = testContext()(req)
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantStatus == http.StatusOK {
				assert.Equal(t, tc.wantCacheCtrl, rec.Header().Get("Cache-Control"))

				var resp ArticlesListResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tc.articles, resp.Data)
			}
		})
	}
}

func TestArticlesPopular_ServeHTTP(t *testing.T) {
	ranked := []domain.RankedArticle{
		{Article: domain.Article{ID: 2, Title: "B", Label: domain.LabelFake}, Endorsements: 3},
		{Article: domain.Article{ID: 1, Title: "A", Label: domain.LabelReal}, Endorsements: 1},
	}

	lister := mocks.NewMockPopularArticlesLister(t)
	lister.EXPECT().
		FetchPopular(mock.Anything, 5).
		Return(ranked, nil)

	controller := ArticlesPopular{Lister: lister}

	req := httptest.NewRequest(http.MethodGet, "/v1/articles/popular", nil)
	req = testContext()(req)
	rec := httptest.NewRecorder()

	controller.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp PopularArticlesResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, ranked, resp.Data)
}
