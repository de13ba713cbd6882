package controller

import (
	"encoding/json"
	"net/http"

	"github.com/newsgauge/veracity/internal/command"
	"github.com/newsgauge/veracity/internal/domain"
)

// UserRegister creates a normal-role account. Admin accounts are seeded at
// startup, never created through the API.
type UserRegister struct {
	RegisterCmd command.Command[command.RegisterUserRequest, command.RegisterUserResult]
}

type UserRegisterRequest struct {
	Username string `json:"username"`
	Secret   string `json:"secret"`
}

type UserRegisterResponse struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

func (c UserRegister) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var req UserRegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "unable to decode registration body", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := c.RegisterCmd.Execute(ctx, command.RegisterUserRequest{
		Username: req.Username,
		Secret:   req.Secret,
		Role:     domain.RoleNormal,
	})
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, UserRegisterResponse{
		UserID:   result.UserID,
		Username: req.Username,
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write registration response", "error", err)
	}
}
