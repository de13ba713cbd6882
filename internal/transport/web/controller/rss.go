package controller

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/feeds"
	"github.com/newsgauge/veracity/internal/datasources"
	"github.com/newsgauge/veracity/internal/domain"
)

// RSS serves the most recently classified articles as an RSS feed, verdict
// included in each item title.
type RSS struct {
	FeedHostname    string
	FeedPath        string
	FeedAuthorName  string
	FeedAuthorEmail string
	Fetcher         datasources.ArticlesFetcher
	CacheMaxAge     time.Duration
}

func (c RSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	limit, err := limitFromQuery(r.URL.Query())
	if err != nil {
		logger.WarnContext(ctx, "unable to parse feed limit", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	articles, err := c.Fetcher.FetchRecent(ctx, limit)
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch articles for feed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	feed := &feeds.Feed{
		Title:       "News Veracity Feed",
		Link:        &feeds.Link{Href: c.FeedHostname + c.FeedPath},
		Description: "Recently checked news articles and their verdicts",
		Author:      &feeds.Author{Name: c.FeedAuthorName, Email: c.FeedAuthorEmail},
		Created:     time.Now(),
	}

	for _, a := range articles {
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          strconv.FormatInt(a.ID, 10),
			IsPermaLink: "false",
			Title:       fmt.Sprintf("[%s] %s", a.Label, a.Title),
			Link:        &feeds.Link{Href: fmt.Sprintf("%s/v1/articles/%d", c.FeedHostname, a.ID)},
			Description: a.Content,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if _, err := w.Write([]byte(rss)); err != nil {
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}
