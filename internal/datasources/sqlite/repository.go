package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/huandu/go-sqlbuilder"
	"github.com/newsgauge/veracity/internal/datasources"
	"github.com/newsgauge/veracity/internal/domain"
	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var _ datasources.ArticleRepository = (*Repository)(nil)
var _ datasources.Seeder = (*Repository)(nil)

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const articleColumns = "id, title, content, label, confidence"

func (r *Repository) InsertArticle(
	ctx context.Context, title, content string, label domain.Label, confidence float64,
) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO articles (title, content, label, confidence) VALUES (?, ?, ?, ?)",
		title, content, string(label), confidence,
	)
	if err != nil {
		if isConstraintViolation(err) {
			return 0, fmt.Errorf("inserting article: %w: %v", domain.ErrIntegrity, err)
		}
		return 0, fmt.Errorf("inserting article: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading inserted article id: %w", err)
	}
	return id, nil
}

func (r *Repository) FetchArticles(ctx context.Context, limit int) ([]domain.Article, error) {
	sb := sqlbuilder.SQLite.NewSelectBuilder()
	sb.Select(articleColumns)
	sb.From("articles")
	sb.OrderBy("id DESC")
	sb.Limit(limit)

	return r.queryArticles(ctx, sb)
}

func (r *Repository) FetchRecent(ctx context.Context, limit int) ([]domain.Article, error) {
	return r.FetchArticles(ctx, limit)
}

func (r *Repository) FetchRandom(ctx context.Context, limit int) ([]domain.Article, error) {
	sb := sqlbuilder.SQLite.NewSelectBuilder()
	sb.Select(articleColumns)
	sb.From("articles")
	sb.OrderBy("RANDOM()")
	sb.Limit(limit)

	return r.queryArticles(ctx, sb)
}

func (r *Repository) FetchArticlesForUser(ctx context.Context, userID int64) ([]domain.Article, error) {
	sb := sqlbuilder.SQLite.NewSelectBuilder()
	sb.Select("a.id, a.title, a.content, a.label, a.confidence")
	sb.From("articles a")
	sb.JoinWithOption(sqlbuilder.InnerJoin, "endorsements e", "a.id = e.article_id")
	sb.Where(sb.Equal("e.user_id", userID))
	sb.OrderBy("a.id DESC")

	return r.queryArticles(ctx, sb)
}

func (r *Repository) FetchPopular(ctx context.Context, limit int) ([]domain.RankedArticle, error) {
	sb := sqlbuilder.SQLite.NewSelectBuilder()
	sb.Select("a.id, a.title, a.content, a.label, a.confidence, COUNT(e.user_id) AS endorsements")
	sb.From("articles a")
	sb.JoinWithOption(sqlbuilder.LeftJoin, "endorsements e", "a.id = e.article_id")
	sb.GroupBy("a.id")
	sb.OrderBy("endorsements DESC", "a.id ASC")
	sb.Limit(limit)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running popular articles query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var articles []domain.RankedArticle
	for rows.Next() {
		var a domain.RankedArticle
		if err := rows.Scan(&a.ID, &a.Title, &a.Content, &a.Label, &a.Confidence, &a.Endorsements); err != nil {
			return nil, fmt.Errorf("scanning popular articles: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating popular articles: %w", err)
	}

	return articles, nil
}

func (r *Repository) queryArticles(ctx context.Context, sb *sqlbuilder.SelectBuilder) ([]domain.Article, error) {
	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running articles query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var articles []domain.Article
	for rows.Next() {
		var a domain.Article
		if err := rows.Scan(&a.ID, &a.Title, &a.Content, &a.Label, &a.Confidence); err != nil {
			return nil, fmt.Errorf("scanning articles: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating articles: %w", err)
	}

	return articles, nil
}

func (r *Repository) AddEndorsement(ctx context.Context, userID, articleID int64) error {
	// Insert-or-ignore on the primary key keeps this commutative and
	// idempotent under concurrent submission. FK violations still surface.
	_, err := r.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO endorsements (user_id, article_id) VALUES (?, ?)",
		userID, articleID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("endorsing article %d: %w", articleID, domain.ErrNotFound)
		}
		return fmt.Errorf("adding endorsement: %w", err)
	}
	return nil
}

func (r *Repository) CreateUser(
	ctx context.Context, username, secretHash string, role domain.Role,
) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO users (username, secret_hash, role) VALUES (?, ?, ?)",
		username, secretHash, string(role),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("creating user %q: %w", username, domain.ErrDuplicateUsername)
		}
		if isConstraintViolation(err) {
			return 0, fmt.Errorf("creating user: %w: %v", domain.ErrIntegrity, err)
		}
		return 0, fmt.Errorf("creating user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading created user id: %w", err)
	}
	return id, nil
}

func (r *Repository) UserByUsername(ctx context.Context, username string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, username, secret_hash, role FROM users WHERE username = ?",
		username,
	)

	var u domain.User
	err := row.Scan(&u.ID, &u.Username, &u.SecretHash, &u.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, fmt.Errorf("user %q: %w", username, domain.ErrNotFound)
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("fetching user by username: %w", err)
	}
	return u, nil
}

func (r *Repository) SubmitReport(ctx context.Context, userID, articleID int64, content string) error {
	// Uniqueness rides on the (user_id, article_id) primary key inside the
	// insert itself, so a concurrent duplicate cannot slip through.
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO reports (user_id, article_id, content) VALUES (?, ?, ?)",
		userID, articleID, content,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("submitting report: %w", domain.ErrDuplicateReport)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("submitting report for article %d: %w", articleID, domain.ErrNotFound)
		}
		if isConstraintViolation(err) {
			return fmt.Errorf("submitting report: %w: %v", domain.ErrIntegrity, err)
		}
		return fmt.Errorf("submitting report: %w", err)
	}
	return nil
}

func (r *Repository) FetchAllReports(ctx context.Context) ([]domain.Report, error) {
	sb := sqlbuilder.SQLite.NewSelectBuilder()
	sb.Select("r.article_id, a.title, r.content, r.user_id")
	sb.From("reports r")
	sb.JoinWithOption(sqlbuilder.InnerJoin, "articles a", "r.article_id = a.id")
	sb.OrderBy("r.article_id ASC", "r.user_id ASC")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running reports query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var reports []domain.Report
	for rows.Next() {
		var rep domain.Report
		if err := rows.Scan(&rep.ArticleID, &rep.ArticleTitle, &rep.Content, &rep.UserID); err != nil {
			return nil, fmt.Errorf("scanning reports: %w", err)
		}
		reports = append(reports, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reports: %w", err)
	}

	return reports, nil
}

// ResolveReport closes one report inside a single transaction, so the label
// flip (or article deletion) and the report deletion commit together or not
// at all.
func (r *Repository) ResolveReport(
	ctx context.Context, action domain.ResolveAction, userID, articleID int64,
) (domain.Label, error) {
	if !action.Valid() {
		return "", fmt.Errorf("unknown resolve action %q", action)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		"DELETE FROM reports WHERE user_id = ? AND article_id = ?",
		userID, articleID,
	)
	if err != nil {
		return "", fmt.Errorf("deleting report: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return "", fmt.Errorf("checking report deletion: %w", err)
	}
	if affected == 0 {
		return "", fmt.Errorf("report by user %d on article %d: %w", userID, articleID, domain.ErrNotFound)
	}

	var newLabel domain.Label
	switch action {
	case domain.ResolveToggle:
		var current domain.Label
		err := tx.QueryRowContext(ctx, "SELECT label FROM articles WHERE id = ?", articleID).Scan(&current)
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("article %d: %w", articleID, domain.ErrNotFound)
		}
		if err != nil {
			return "", fmt.Errorf("fetching article label: %w", err)
		}

		newLabel = current.Toggle()
		if _, err := tx.ExecContext(ctx,
			"UPDATE articles SET label = ? WHERE id = ?", string(newLabel), articleID,
		); err != nil {
			return "", fmt.Errorf("toggling article label: %w", err)
		}

	case domain.ResolveDelete:
		// Cascades delete every remaining report and endorsement on the
		// article via the schema's FK actions.
		if _, err := tx.ExecContext(ctx, "DELETE FROM articles WHERE id = ?", articleID); err != nil {
			return "", fmt.Errorf("deleting article: %w", err)
		}

	case domain.ResolveDismiss:
		// Only the triggering report goes away.
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing resolution: %w", err)
	}

	return newLabel, nil
}

func (r *Repository) EnsureGuest(ctx context.Context, secretHash string) (int64, error) {
	_, err := r.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO users (username, secret_hash, role) VALUES (?, ?, ?)",
		domain.GuestUsername, secretHash, string(domain.RoleNormal),
	)
	if err != nil {
		return 0, fmt.Errorf("ensuring guest user: %w", err)
	}

	guest, err := r.UserByUsername(ctx, domain.GuestUsername)
	if err != nil {
		return 0, err
	}
	return guest.ID, nil
}

// ReplaceArticles wipes the articles table and reloads it from the dataset,
// endorsing every article for the guest user so seeded articles start with a
// popularity of one. User accounts are left untouched.
func (r *Repository) ReplaceArticles(ctx context.Context, articles []domain.Article, guestID int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM articles"); err != nil {
		return fmt.Errorf("clearing articles: %w", err)
	}

	for _, a := range articles {
		res, err := tx.ExecContext(ctx,
			"INSERT INTO articles (title, content, label, confidence) VALUES (?, ?, ?, ?)",
			a.Title, a.Content, string(a.Label), a.Confidence,
		)
		if err != nil {
			return fmt.Errorf("seeding article %q: %w", a.Title, err)
		}

		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("reading seeded article id: %w", err)
		}

		if _, err := tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO endorsements (user_id, article_id) VALUES (?, ?)",
			guestID, id,
		); err != nil {
			return fmt.Errorf("endorsing seeded article: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed: %w", err)
	}
	return nil
}

func sqliteErrCode(err error) (int, bool) {
	var serr *sqlite.Error
	if errors.As(err, &serr) {
		return serr.Code(), true
	}
	return 0, false
}

func isConstraintViolation(err error) bool {
	code, ok := sqliteErrCode(err)
	return ok && code&0xff == sqlite3.SQLITE_CONSTRAINT
}

func isUniqueViolation(err error) bool {
	code, ok := sqliteErrCode(err)
	return ok && (code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY)
}

func isForeignKeyViolation(err error) bool {
	code, ok := sqliteErrCode(err)
	return ok && code == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY
}
