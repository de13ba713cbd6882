package router

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/newsgauge/veracity/internal/domain"
)

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()

		logger := domain.LoggerFromContext(r.Context())
		logger = logger.With("request_id", requestID)

		w.Header().Set("X-Request-ID", requestID)

		ctx := domain.ContextWithLogger(r.Context(), logger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
