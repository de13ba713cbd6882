package command

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/newsgauge/veracity/internal/datasources"
	"github.com/newsgauge/veracity/internal/domain"
)

// AuthenticateUserRequest is the request for the AuthenticateUser command.
type AuthenticateUserRequest struct {
	Username string
	Secret   string
}

// AuthenticateUserResult reports whether the credentials matched.
// User is only populated when Authenticated is true.
type AuthenticateUserResult struct {
	User          domain.User
	Authenticated bool
}

// AuthenticateUser verifies a username+secret pair against the stored bcrypt
// hash. An unknown username and a wrong secret are indistinguishable to the
// caller: both yield Authenticated false without error.
type AuthenticateUser struct {
	Users datasources.UserByUsernameGetter
}

// NewAuthenticateUser creates a properly initialized AuthenticateUser command.
func NewAuthenticateUser(users datasources.UserByUsernameGetter) *AuthenticateUser {
	return &AuthenticateUser{Users: users}
}

func (c *AuthenticateUser) Execute(ctx context.Context, req AuthenticateUserRequest) (AuthenticateUserResult, error) {
	user, err := c.Users.UserByUsername(ctx, req.Username)
	if errors.Is(err, domain.ErrNotFound) {
		return AuthenticateUserResult{}, nil
	}
	if err != nil {
		return AuthenticateUserResult{}, fmt.Errorf("looking up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.SecretHash), []byte(req.Secret)); err != nil {
		return AuthenticateUserResult{}, nil
	}

	return AuthenticateUserResult{User: user, Authenticated: true}, nil
}
