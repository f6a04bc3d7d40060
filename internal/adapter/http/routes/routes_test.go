package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"assistec/internal/adapter/http/handlers"
	"assistec/internal/adapter/http/handlers/mocks"
	"assistec/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newSignedOutRouter(t *testing.T) (*gin.Engine, *mocks.MockISettingsUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	auth := mocks.NewMockIAuthSessionUseCase(ctrl)
	auth.EXPECT().Configured().Return(true).AnyTimes()
	auth.EXPECT().State().Return(entities.SessionStateResolved).AnyTimes()
	auth.EXPECT().User().Return(nil).AnyTimes()
	settings := mocks.NewMockISettingsUseCase(ctrl)

	app := &application{
		auth:        auth,
		customers:   handlers.NewCustomerHandler(nil),
		orders:      handlers.NewOrderHandler(nil),
		products:    handlers.NewProductHandler(nil),
		finance:     handlers.NewFinanceHandler(nil),
		backup:      handlers.NewBackupHandler(nil),
		billing:     handlers.NewBillingHandler(nil),
		payments:    handlers.NewInvoicePaymentHandler(nil),
		whatsapp:    handlers.NewWhatsAppHandler(nil),
		settings:    handlers.NewSettingsHandler(settings),
		authHandler: handlers.NewAuthHandler(auth),
		dashboard:   handlers.NewDashboardHandler(nil),
	}
	r := gin.New()
	getRoutes(r, app)
	return r, settings
}

func TestGetRoutes_SettingsRequireSession(t *testing.T) {
	cases := []struct {
		method string
		path   string
		body   string
	}{
		{method: http.MethodGet, path: "/v1/settings/profile"},
		{method: http.MethodPut, path: "/v1/settings/profile", body: `{"nome":"x"}`},
		{method: http.MethodGet, path: "/v1/settings/customization"},
		{method: http.MethodPut, path: "/v1/settings/customization", body: `{}`},
		{method: http.MethodGet, path: "/v1/settings/preferences"},
		{method: http.MethodPut, path: "/v1/settings/preferences", body: `{"backup_automatico":true}`},
		{method: http.MethodGet, path: "/v1/clientes"},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			r, _ := newSignedOutRouter(t)

			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", w.Code)
			}
		})
	}
}

func TestGetRoutes_ThemeIsPublic(t *testing.T) {
	r, settings := newSignedOutRouter(t)
	settings.EXPECT().Theme(gomock.Any(), gomock.Nil()).Return(entities.Theme{Class: "light"})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/settings/theme", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
