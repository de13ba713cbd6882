package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/newsgauge/veracity/internal/datasources/mocks"
	"github.com/newsgauge/veracity/internal/domain"
)

func TestRegisterUser_Execute(t *testing.T) {
	cases := []struct {
		name       string
		req        RegisterUserRequest
		wantRole   domain.Role
		createErr  error
		wantErr    error
		skipCreate bool
	}{
		{
			name:     "successful_registration",
			req:      RegisterUserRequest{Username: "alice", Secret: "pw123"},
			wantRole: domain.RoleNormal,
		},
		{
			name:     "admin_registration",
			req:      RegisterUserRequest{Username: "root", Secret: "pw123", Role: domain.RoleAdmin},
			wantRole: domain.RoleAdmin,
		},
		{
			name:       "missing_username",
			req:        RegisterUserRequest{Secret: "pw123"},
			wantErr:    domain.ErrValidation,
			skipCreate: true,
		},
		{
			name:       "reserved_username",
			req:        RegisterUserRequest{Username: domain.GuestUsername, Secret: "pw123"},
			wantErr:    domain.ErrValidation,
			skipCreate: true,
		},
		{
			name:       "missing_secret",
			req:        RegisterUserRequest{Username: "alice"},
			wantErr:    domain.ErrValidation,
			skipCreate: true,
		},
		{
			name:       "unknown_role",
			req:        RegisterUserRequest{Username: "alice", Secret: "pw123", Role: domain.Role("owner")},
			wantErr:    domain.ErrValidation,
			skipCreate: true,
		},
		{
			name:      "duplicate_username_passes_through",
			req:       RegisterUserRequest{Username: "alice", Secret: "pw123"},
			wantRole:  domain.RoleNormal,
			createErr: domain.ErrDuplicateUsername,
			wantErr:   domain.ErrDuplicateUsername,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			users := mocks.NewMockUserCreator(t)

			if !tc.skipCreate {
				users.EXPECT().
					CreateUser(mock.Anything, tc.req.Username, mock.Anything, tc.wantRole).
					Return(int64(7), tc.createErr)
			}

			cmd := NewRegisterUser(users)
			result, err := cmd.Execute(testContext(), tc.req)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(7), result.UserID)
		})
	}
}

func TestRegisterUser_StoresBcryptHash(t *testing.T) {
	users := mocks.NewMockUserCreator(t)

	var storedHash string
	users.EXPECT().
		CreateUser(mock.Anything, "alice", mock.Anything, domain.RoleNormal).
		Run(func(_ context.Context, _ string, secretHash string, _ domain.Role) {
			storedHash = secretHash
		}).
		Return(int64(7), nil)

	cmd := NewRegisterUser(users)
	_, err := cmd.Execute(testContext(), RegisterUserRequest{Username: "alice", Secret: "pw123"})
	require.NoError(t, err)

	assert.NotEqual(t, "pw123", storedHash, "plaintext must never reach storage")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("pw123")))
}

func TestHashSecret(t *testing.T) {
	hash, err := HashSecret("pw123")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("pw123")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("wrong")))
}
