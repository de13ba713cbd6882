package router

import (
	"fmt"
	"net/http"

	"github.com/newsgauge/veracity/internal/command"
	"github.com/newsgauge/veracity/internal/domain"
)

// AuthResult represents the result of a successful authentication.
type AuthResult struct {
	User domain.User
}

// AuthValidator attempts to validate authentication from a request.
// Returns nil, nil if this validator doesn't apply (no credentials of its
// kind present). Returns AuthResult, nil on success.
// Returns nil, error if validation was attempted but failed.
type AuthValidator func(r *http.Request) (*AuthResult, error)

// NewAuthMiddleware creates a middleware that resolves the request identity.
// Requests that carry no recognised credentials proceed as the guest user,
// so classification stays open to unauthenticated submissions.
func NewAuthMiddleware(validators []AuthValidator, guest domain.User) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, validate := range validators {
				result, err := validate(r)
				if result == nil && err == nil {
					continue // This validator doesn't apply
				}

				if err != nil {
					logger := domain.LoggerFromContext(r.Context())
					logger.WarnContext(r.Context(), "authentication failed", "error", err)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusUnauthorized)
					_, _ = fmt.Fprintf(w, `{"message":%q}`, err.Error())
					return
				}

				ctx := domain.ContextWithUser(r.Context(), result.User)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			ctx := domain.ContextWithUser(r.Context(), guest)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// NewBasicAuthValidator validates username+secret credentials carried in the
// HTTP basic auth header against the stored bcrypt hashes.
func NewBasicAuthValidator(
	authCmd command.Command[command.AuthenticateUserRequest, command.AuthenticateUserResult],
) AuthValidator {
	return func(r *http.Request) (*AuthResult, error) {
		username, secret, ok := r.BasicAuth()
		if !ok {
			return nil, nil
		}

		result, err := authCmd.Execute(r.Context(), command.AuthenticateUserRequest{
			Username: username,
			Secret:   secret,
		})
		if err != nil {
			return nil, fmt.Errorf("verifying credentials")
		}
		if !result.Authenticated {
			return nil, fmt.Errorf("invalid username or secret")
		}

		return &AuthResult{User: result.User}, nil
	}
}
