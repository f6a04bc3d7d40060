package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"assistec/internal/adapter/http/dto/response"
	"assistec/internal/adapter/http/handlers/mocks"
	"assistec/internal/domain/entities"
	"assistec/internal/usecase"
	"assistec/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *mocks.MockIAuthSessionUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIAuthSessionUseCase(ctrl)
	h := NewAuthHandler(uc)

	r := gin.New()
	r.GET("/v1/auth/session", h.Session)
	r.POST("/v1/auth/magic-link", h.MagicLink)
	r.GET("/v1/auth/callback", h.Callback)
	r.POST("/v1/auth/callback", h.Callback)
	r.POST("/v1/auth/sign-out", h.SignOut)
	return r, uc
}

func TestAuthHandler_Session(t *testing.T) {
	t.Run("loading", func(t *testing.T) {
		r, uc := newAuthRouter(t)
		uc.EXPECT().State().Return(entities.SessionStateLoading)
		uc.EXPECT().Configured().Return(true)
		uc.EXPECT().Session().Return(nil)

		w := serve(r, http.MethodGet, "/v1/auth/session", nil)
		var body response.SessionResponse
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if w.Code != http.StatusOK || body.State != entities.SessionStateLoading || body.Authenticated {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("signed in hides tokens", func(t *testing.T) {
		r, uc := newAuthRouter(t)
		uc.EXPECT().State().Return(entities.SessionStateResolved)
		uc.EXPECT().Configured().Return(true)
		uc.EXPECT().Session().Return(&entities.Session{
			AccessToken:  "secret-access",
			RefreshToken: "secret-refresh",
			ExpiresAt:    time.Date(2024, 5, 1, 13, 0, 0, 0, time.UTC),
			User:         entities.User{ID: "u1", Email: "dono@oficina.com"},
		})

		w := serve(r, http.MethodGet, "/v1/auth/session", nil)
		if strings.Contains(w.Body.String(), "secret") {
			t.Fatalf("tokens leaked: %s", w.Body.String())
		}
		var body response.SessionResponse
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if !body.Authenticated || body.User == nil || body.User.Email != "dono@oficina.com" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestAuthHandler_MagicLink(t *testing.T) {
	t.Run("invalid email", func(t *testing.T) {
		r, uc := newAuthRouter(t)
		uc.EXPECT().SignInWithMagicLink(gomock.Any(), "nope").Return(&usecase.ValidationError{
			Kind:   usecase.ErrInvalidEmail,
			Fields: []pkg.FieldError{{Field: "email", Message: "Email inválido"}},
		})

		w := serve(r, http.MethodPost, "/v1/auth/magic-link", bytes.NewBufferString(`{"email":"nope"}`))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not configured", func(t *testing.T) {
		r, uc := newAuthRouter(t)
		uc.EXPECT().SignInWithMagicLink(gomock.Any(), "dono@oficina.com").Return(usecase.ErrAuthNotConfigured)

		w := serve(r, http.MethodPost, "/v1/auth/magic-link", bytes.NewBufferString(`{"email":"dono@oficina.com"}`))
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("sent", func(t *testing.T) {
		r, uc := newAuthRouter(t)
		uc.EXPECT().SignInWithMagicLink(gomock.Any(), "dono@oficina.com").Return(nil)

		w := serve(r, http.MethodPost, "/v1/auth/magic-link", bytes.NewBufferString(`{"email":"dono@oficina.com"}`))
		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
	})
}

func TestAuthHandler_Callback(t *testing.T) {
	session := entities.Session{AccessToken: "a", User: entities.User{ID: "u1", Email: "dono@oficina.com"}}

	t.Run("query parameters", func(t *testing.T) {
		r, uc := newAuthRouter(t)
		uc.EXPECT().CompleteMagicLink(gomock.Any(), "hash-1", "magiclink").Return(session, nil)
		uc.EXPECT().State().Return(entities.SessionStateResolved)
		uc.EXPECT().Configured().Return(true)

		w := serve(r, http.MethodGet, "/v1/auth/callback?token_hash=hash-1&type=magiclink", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("json body", func(t *testing.T) {
		r, uc := newAuthRouter(t)
		uc.EXPECT().CompleteMagicLink(gomock.Any(), "hash-2", "email").Return(session, nil)
		uc.EXPECT().State().Return(entities.SessionStateResolved)
		uc.EXPECT().Configured().Return(true)

		w := serve(r, http.MethodPost, "/v1/auth/callback", bytes.NewBufferString(`{"token_hash":"hash-2","type":"email"}`))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("expired link", func(t *testing.T) {
		r, uc := newAuthRouter(t)
		uc.EXPECT().CompleteMagicLink(gomock.Any(), "", "").Return(entities.Session{}, usecase.ErrInvalidMagicLink)

		w := serve(r, http.MethodGet, "/v1/auth/callback", nil)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestAuthHandler_SignOut(t *testing.T) {
	r, uc := newAuthRouter(t)
	uc.EXPECT().SignOut(gomock.Any()).Return(nil)

	w := serve(r, http.MethodPost, "/v1/auth/sign-out", nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}
