package command

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/newsgauge/veracity/internal/datasources"
	"github.com/newsgauge/veracity/internal/domain"
)

// RegisterUserRequest is the request for the RegisterUser command.
// A zero Role defaults to normal.
type RegisterUserRequest struct {
	Username string
	Secret   string
	Role     domain.Role
}

// RegisterUserResult is the result of a successful registration.
type RegisterUserResult struct {
	UserID int64
}

// RegisterUser creates an account with a bcrypt-hashed secret. The plaintext
// secret never reaches storage.
type RegisterUser struct {
	Users datasources.UserCreator
}

// NewRegisterUser creates a properly initialized RegisterUser command.
func NewRegisterUser(users datasources.UserCreator) *RegisterUser {
	return &RegisterUser{Users: users}
}

func (c *RegisterUser) Execute(ctx context.Context, req RegisterUserRequest) (RegisterUserResult, error) {
	if req.Username == "" {
		return RegisterUserResult{}, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}
	if req.Username == domain.GuestUsername {
		return RegisterUserResult{}, fmt.Errorf("%w: username %q is reserved", domain.ErrValidation, domain.GuestUsername)
	}
	if req.Secret == "" {
		return RegisterUserResult{}, fmt.Errorf("%w: secret is required", domain.ErrValidation)
	}

	role := req.Role
	if role == "" {
		role = domain.RoleNormal
	}
	if !role.Valid() {
		return RegisterUserResult{}, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, req.Role)
	}

	hash, err := HashSecret(req.Secret)
	if err != nil {
		return RegisterUserResult{}, fmt.Errorf("hashing secret: %w", err)
	}

	userID, err := c.Users.CreateUser(ctx, req.Username, hash, role)
	if err != nil {
		return RegisterUserResult{}, err
	}

	logger := domain.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "user registered", "user_id", userID, "role", role)

	return RegisterUserResult{UserID: userID}, nil
}

// HashSecret bcrypt-hashes a plaintext secret for storage.
func HashSecret(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
