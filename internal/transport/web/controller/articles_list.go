package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/newsgauge/veracity/internal/datasources"
	"github.com/newsgauge/veracity/internal/domain"
)

// ArticlesRecent lists articles by descending id, the insertion-order proxy
// for recency.
type ArticlesRecent struct {
	Fetcher     datasources.ArticlesFetcher
	CacheMaxAge time.Duration
}

type ArticlesListResponse struct {
	Data []domain.Article `json:"data"`
}

func (c ArticlesRecent) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	limit, err := limitFromQuery(r.URL.Query())
	if err != nil {
		logger.WarnContext(ctx, "unable to parse list limit", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	articles, err := c.Fetcher.FetchRecent(ctx, limit)
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch recent articles", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))
	if err := writeJSON(w, http.StatusOK, ArticlesListResponse{Data: articles}); err != nil {
		logger.ErrorContext(ctx, "unable to write articles to response", "error", err)
	}
}

// ArticlesPopular lists articles by endorsement count descending, ties broken
// by ascending id so paging stays stable.
type ArticlesPopular struct {
	Lister datasources.PopularArticlesLister
}

type PopularArticlesResponse struct {
	Data []domain.RankedArticle `json:"data"`
}

func (c ArticlesPopular) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	limit, err := limitFromQuery(r.URL.Query())
	if err != nil {
		logger.WarnContext(ctx, "unable to parse list limit", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	articles, err := c.Lister.FetchPopular(ctx, limit)
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch popular articles", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, PopularArticlesResponse{Data: articles}); err != nil {
		logger.ErrorContext(ctx, "unable to write articles to response", "error", err)
	}
}

// ArticlesRandom returns an unordered sample of stored articles.
type ArticlesRandom struct {
	Lister datasources.RandomArticlesLister
}

func (c ArticlesRandom) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	limit, err := limitFromQuery(r.URL.Query())
	if err != nil {
		logger.WarnContext(ctx, "unable to parse list limit", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	articles, err := c.Lister.FetchRandom(ctx, limit)
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch random articles", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, ArticlesListResponse{Data: articles}); err != nil {
		logger.ErrorContext(ctx, "unable to write articles to response", "error", err)
	}
}
