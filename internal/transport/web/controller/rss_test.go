package controller

import (
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

func TestRSS_ServeHTTP(t *testing.T) {
	fetcher := mocks.NewMockArticlesFetcher(t)
	fetcher.EXPECT().
		FetchRecent(mock.Anything, 5).
		Return([]domain.Article{
			{ID: 2, Title: "Budget Approved", Content: "Council voted yes", Label: domain.LabelReal},
			{ID: 1, Title: "Aliens Landed", Content: "They came at night", Label: domain.LabelFake},
		}, nil)

	controller := RSS{
		FeedHostname:    "https://veracity.example.com",
		FeedPath:        "/rss",
		FeedAuthorName:  "Newsroom",
		FeedAuthorEmail: "newsroom@example.com",
		Fetcher:         fetcher,
		CacheMaxAge:     time.Hour,
	}

	req := httptest.NewRequest(http.MethodGet, "/rss", nil)
	req = testContext()(req)
	rec := httptest.NewRecorder()

	controller.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/xml", rec.Header().Get("Content-Type"))
	assert.Equal(t, "max-age=3600", rec.Header().Get("Cache-Control"))

	body := rec.Body.String()
	assert.Contains(t, body, "[REAL] Budget Approved")
	assert.Contains(t, body, "[FAKE] Aliens Landed")
	assert.Contains(t, body, "https://veracity.example.com/v1/articles/1")
}
