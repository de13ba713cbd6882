package domain

import (
	"context"
	"log/slog"
)

type contextKey string

const loggerContextKey contextKey = "logger"

func ContextWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

func LoggerFromContext(ctx context.Context) *slog.Logger {
	logger := ctx.Value(loggerContextKey)
	if logger == nil {
		logger = slog.Default()
	}

	return logger.(*slog.Logger)
}

const userContextKey contextKey = "user"

// ContextWithUser attaches the authenticated (or guest) user to the request
// context. The core never reads identity from ambient globals; it always
// flows through here.
func ContextWithUser(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// UserFromContext returns the user attached to the context, or the zero
// User if none was attached.
func UserFromContext(ctx context.Context) User {
	user := ctx.Value(userContextKey)
	if user == nil {
		return User{}
	}
	return user.(User)
}
