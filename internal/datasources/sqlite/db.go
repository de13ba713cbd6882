package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS articles (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	title      TEXT NOT NULL CHECK (title <> ''),
	content    TEXT NOT NULL CHECK (content <> ''),
	label      TEXT NOT NULL CHECK (label IN ('FAKE', 'REAL')),
	confidence REAL NOT NULL DEFAULT 0.0
);

CREATE TABLE IF NOT EXISTS users (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	username    TEXT NOT NULL UNIQUE CHECK (username <> ''),
	secret_hash TEXT NOT NULL,
	role        TEXT NOT NULL CHECK (role IN ('normal', 'admin'))
);

CREATE TABLE IF NOT EXISTS endorsements (
	user_id    INTEGER NOT NULL,
	article_id INTEGER NOT NULL,
	PRIMARY KEY (user_id, article_id),
	FOREIGN KEY (user_id) REFERENCES users(id),
	FOREIGN KEY (article_id) REFERENCES articles(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS reports (
	user_id    INTEGER NOT NULL,
	article_id INTEGER NOT NULL,
	content    TEXT NOT NULL,
	PRIMARY KEY (user_id, article_id),
	FOREIGN KEY (user_id) REFERENCES users(id),
	FOREIGN KEY (article_id) REFERENCES articles(id) ON DELETE CASCADE
);
`

// Connect opens the SQLite database at path, applies the pragmas the
// repository relies on (FK cascades in particular) and runs migrations.
func Connect(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening SQLite DB: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return nil, fmt.Errorf("applying %s: %w", pragma, err)
		}
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("migrating SQLite schema: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("checking SQLite DB connection: %w", err)
	}

	return db, nil
}
