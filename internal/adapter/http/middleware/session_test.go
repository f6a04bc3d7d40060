package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"assistec/internal/adapter/http/handlers/mocks"
	"assistec/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestRequireSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		configured bool
		state      entities.SessionState
		user       *entities.User
		want       int
	}{
		{name: "identity not configured", configured: false, want: http.StatusOK},
		{name: "loading", configured: true, state: entities.SessionStateLoading, want: http.StatusServiceUnavailable},
		{name: "signed out", configured: true, state: entities.SessionStateResolved, want: http.StatusUnauthorized},
		{name: "signed in", configured: true, state: entities.SessionStateResolved, user: &entities.User{ID: "u1"}, want: http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := mocks.NewMockIAuthSessionUseCase(ctrl)
			auth.EXPECT().Configured().Return(tc.configured)
			auth.EXPECT().State().Return(tc.state).AnyTimes()
			auth.EXPECT().User().Return(tc.user).AnyTimes()

			r := gin.New()
			r.GET("/v1/clientes", RequireSession(auth), func(c *gin.Context) { c.Status(http.StatusOK) })

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/clientes", nil))
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), RequestLogger())
	r.GET("/v1/ping", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(requestIDKey)) })

	t.Run("kept from caller", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Header().Get(RequestIDHeader) != "abc-123" || w.Body.String() != "abc-123" {
			t.Fatalf("unexpected request id: header=%q body=%q", w.Header().Get(RequestIDHeader), w.Body.String())
		}
	})

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
		if len(w.Header().Get(RequestIDHeader)) != 36 {
			t.Fatalf("expected a uuid, got %q", w.Header().Get(RequestIDHeader))
		}
	})
}
