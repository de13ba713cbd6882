// Package datasources defines the storage contracts consumed by the command
// and transport layers. Implementations live in subpackages; interfaces are
// kept single-purpose so callers depend only on the operations they use.
package datasources

import (
	"context"

	"github.com/newsgauge/veracity/internal/domain"
)

// ArticleRepository is the full persistent store contract: articles, users,
// endorsements and reports. Moderation invariants are enforced through it.
type ArticleRepository interface {
	ArticleInserter
	ArticlesFetcher
	PopularArticlesLister
	RandomArticlesLister
	UserArticlesLister
	EndorsementAdder
	UserCreator
	UserByUsernameGetter
	ReportSubmitter
	ReportsLister
	ReportResolver
}

type ArticleInserter interface {
	// InsertArticle persists a classified article and returns its id.
	InsertArticle(ctx context.Context, title, content string, label domain.Label, confidence float64) (int64, error)
}

type ArticlesFetcher interface {
	// FetchArticles returns up to limit articles, most recent first.
	FetchArticles(ctx context.Context, limit int) ([]domain.Article, error)
	// FetchRecent returns up to limit articles by descending id, the
	// insertion-order proxy for recency.
	FetchRecent(ctx context.Context, limit int) ([]domain.Article, error)
}

type PopularArticlesLister interface {
	// FetchPopular returns articles ordered by endorsement count descending,
	// ties broken by ascending id.
	FetchPopular(ctx context.Context, limit int) ([]domain.RankedArticle, error)
}

type RandomArticlesLister interface {
	// FetchRandom returns an unordered sample of up to limit articles.
	FetchRandom(ctx context.Context, limit int) ([]domain.Article, error)
}

type UserArticlesLister interface {
	// FetchArticlesForUser returns every article the user has endorsed.
	FetchArticlesForUser(ctx context.Context, userID int64) ([]domain.Article, error)
}

type EndorsementAdder interface {
	// AddEndorsement links a user to an article. Idempotent: repeated calls
	// for the same pair change nothing.
	AddEndorsement(ctx context.Context, userID, articleID int64) error
}

type UserCreator interface {
	// CreateUser registers a user with an already-hashed secret.
	// Returns domain.ErrDuplicateUsername if the username is taken.
	CreateUser(ctx context.Context, username, secretHash string, role domain.Role) (int64, error)
}

type UserByUsernameGetter interface {
	// UserByUsername returns domain.ErrNotFound if no such user exists.
	UserByUsername(ctx context.Context, username string) (domain.User, error)
}

type ReportSubmitter interface {
	// SubmitReport creates a report. Uniqueness of (user, article) is
	// enforced by the storage primary key within the insert itself, never by
	// a read-then-write. Returns domain.ErrDuplicateReport on resubmission
	// and domain.ErrNotFound if the article no longer exists.
	SubmitReport(ctx context.Context, userID, articleID int64, content string) error
}

type ReportsLister interface {
	FetchAllReports(ctx context.Context) ([]domain.Report, error)
}

type ReportResolver interface {
	// ResolveReport atomically closes the (userID, articleID) report with
	// the given action. Toggle returns the article's new label; delete and
	// dismiss return the zero Label. A missing report yields
	// domain.ErrNotFound, which callers treat as already handled.
	ResolveReport(ctx context.Context, action domain.ResolveAction, userID, articleID int64) (domain.Label, error)
}

// Seeder is the bulk-load contract used at startup to mirror the dataset
// into the store.
type Seeder interface {
	// EnsureGuest creates the well-known guest account if absent and
	// returns its id.
	EnsureGuest(ctx context.Context, secretHash string) (int64, error)
	// ReplaceArticles wipes the articles table and inserts the given
	// articles, endorsing each for the guest user.
	ReplaceArticles(ctx context.Context, articles []domain.Article, guestID int64) error
}
