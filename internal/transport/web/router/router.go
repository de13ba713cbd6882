package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/newsgauge/veracity/internal/command"
	"github.com/newsgauge/veracity/internal/datasources"
	"github.com/newsgauge/veracity/internal/model"
	"github.com/newsgauge/veracity/internal/transport/web/controller"
)

type Commands struct {
	ClassifyArticle command.Command[command.ClassifyArticleRequest, command.ClassifyArticleResult]
	SubmitReport    command.Command[command.SubmitReportRequest, command.Empty]
	ResolveReport   command.Command[command.ResolveReportRequest, command.ResolveReportResult]
	RegisterUser    command.Command[command.RegisterUserRequest, command.RegisterUserResult]
}

func MakeRouter(
	repo datasources.ArticleRepository,
	commands Commands,
	classifier *model.Model,
	rssFeedBaseURL, rssFeedAuthorName, rssFeedAuthorEmail string,
	recentCacheMaxAge time.Duration,
	authMiddleware func(http.Handler) http.Handler,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(requestIDMiddleware)
	r.Use(authMiddleware)

	r.Handle("/v1/articles/check", controller.ArticleCheck{
		ClassifyCmd: commands.ClassifyArticle,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/articles/recent", controller.ArticlesRecent{
		Fetcher:     repo,
		CacheMaxAge: recentCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/articles/popular", controller.ArticlesPopular{
		Lister: repo,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/articles/random", controller.ArticlesRandom{
		Lister: repo,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/articles/{article_id}/reports", controller.ReportSubmit{
		SubmitCmd: commands.SubmitReport,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/reports", requireAdminMiddleware(controller.ReportsList{
		Lister: repo,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/reports/{article_id}/{user_id}/resolve/{action}",
		requireAdminMiddleware(controller.ReportResolve{
			ResolveCmd: commands.ResolveReport,
		})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/users", controller.UserRegister{
		RegisterCmd: commands.RegisterUser,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/model", controller.ModelInfo{
		Model: classifier,
	}).Methods(http.MethodGet, http.MethodOptions)

	rssFeeds := []controller.RSS{
		{
			FeedHostname:    rssFeedBaseURL,
			FeedPath:        "/rss",
			FeedAuthorName:  rssFeedAuthorName,
			FeedAuthorEmail: rssFeedAuthorEmail,
			Fetcher:         repo,
			CacheMaxAge:     recentCacheMaxAge,
		},
	}

	for _, feed := range rssFeeds {
		r.Handle(feed.FeedPath, feed)
	}

	return r, nil
}
