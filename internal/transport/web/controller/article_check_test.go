package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsgauge/veracity/internal/command"
	"github.com/newsgauge/veracity/internal/domain"
)

func testContext() func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.DiscardHandler))
		return r.WithContext(ctx)
	}
}

func testContextWithUser(user domain.User) func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.DiscardHandler))
		ctx = domain.ContextWithUser(ctx, user)
		return r.WithContext(ctx)
	}
}

// stubCommand records the last request and returns canned results.
type stubCommand[Req, Res any] struct {
	result  Res
	err     error
	lastReq Req
}

func (c *stubCommand[Req, Res]) Execute(_ context.Context, req Req) (Res, error) {
	c.lastReq = req
	return c.result, c.err
}

func TestArticleCheck_ServeHTTP(t *testing.T) {
	alice := domain.User{ID: 7, Username: "alice", Role: domain.RoleNormal}

	cases := []struct {
		name       string
		body       string
		cmdResult  command.ClassifyArticleResult
		cmdErr     error
		wantStatus int
	}{
		{
			name: "successful_check",
			body: `{"title": "Aliens Landed", "content": "They came at night"}`,
			cmdResult: command.ClassifyArticleResult{
				ArticleID:  42,
				Label:      domain.LabelFake,
				Confidence: 0.91,
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "malformed_body",
			body:       `{"title": `,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "validation_error",
			body:       `{"title": "", "content": ""}`,
			cmdErr:     fmt.Errorf("%w: both a headline and content are required", domain.ErrValidation),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "command_failure",
			body:       `{"title": "Aliens Landed", "content": "They came at night"}`,
			cmdErr:     fmt.Errorf("database error"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := &stubCommand[command.ClassifyArticleRequest, command.ClassifyArticleResult]{
				result: tc.cmdResult,
				err:    tc.cmdErr,
			}
			controller := ArticleCheck{ClassifyCmd: cmd}

			req := httptest.NewRequest(http.MethodPost, "/v1/articles/check", strings.NewReader(tc.body))
			req = testContextWithUser(alice)(req)
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantStatus == http.StatusOK {
				var resp ArticleCheckResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, int64(42), resp.ArticleID)
				assert.Equal(t, domain.LabelFake, resp.Label)
				assert.Equal(t, 0.91, resp.Confidence)

				assert.Equal(t, alice, cmd.lastReq.User, "identity flows from context into the command")
			}
		})
	}
}
