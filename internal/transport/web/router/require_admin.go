package router

import (
	"net/http"

	"github.com/newsgauge/veracity/internal/domain"
)

func requireAdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := domain.UserFromContext(r.Context())
		if !user.IsAdmin() {
			logger := domain.LoggerFromContext(r.Context())
			logger.ErrorContext(r.Context(), "attempt to use admin endpoint without admin role",
				"username", user.Username)
			w.WriteHeader(http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
