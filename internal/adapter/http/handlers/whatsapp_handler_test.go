package handlers

import (
	"bytes"
	"net/http"
	"testing"
	"time"

	"assistec/internal/adapter/http/handlers/mocks"
	"assistec/internal/domain/entities"
	"assistec/internal/infrastructure/httpclient"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestWhatsAppHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(t *testing.T) (*gin.Engine, *mocks.MockIWhatsAppUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIWhatsAppUseCase(ctrl)
		h := NewWhatsAppHandler(uc)
		r := gin.New()
		r.GET("/v1/whatsapp/status", h.Status)
		r.POST("/v1/whatsapp/send", h.Send)
		r.POST("/v1/whatsapp/bot/simulate", h.SimulateBot)
		return r, uc
	}

	t.Run("status from backend error", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().Status(gomock.Any()).Return(entities.WhatsAppStatus{}, &httpclient.APIError{Status: http.StatusServiceUnavailable, Message: "WhatsApp indisponível"})

		w := serve(r, http.MethodGet, "/v1/whatsapp/status", nil)
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("send", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().SendMessage(gomock.Any(), entities.OutgoingMessage{Phone: "11999999999", Message: "Olá"}).Return(nil)

		w := serve(r, http.MethodPost, "/v1/whatsapp/send", bytes.NewBufferString(`{"telefone":"11999999999","mensagem":"Olá"}`))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("simulate requires message", func(t *testing.T) {
		r, _ := newRouter(t)

		w := serve(r, http.MethodPost, "/v1/whatsapp/bot/simulate", bytes.NewBufferString(`{}`))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("simulate", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().SimulateBot(gomock.Any(), "qual o horário?").Return(entities.BotReply{Message: "qual o horário?", Reply: "Abrimos às 8h", Matched: true, Keyword: "horario"}, nil)

		w := serve(r, http.MethodPost, "/v1/whatsapp/bot/simulate", bytes.NewBufferString(`{"mensagem":"qual o horário?"}`))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestDashboardHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIStatusMonitorUseCase(ctrl)
	h := NewDashboardHandler(uc)
	r := gin.New()
	r.GET("/v1/dashboard", h.Get)

	snap := entities.Dashboard{Orders: entities.OrderStats{Total: 3}, RefreshedAt: time.Now().UTC()}
	gomock.InOrder(
		uc.EXPECT().Snapshot().Return(snap),
		uc.EXPECT().Refresh(gomock.Any()),
		uc.EXPECT().Snapshot().Return(snap),
	)

	if w := serve(r, http.MethodGet, "/v1/dashboard", nil); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := serve(r, http.MethodGet, "/v1/dashboard?refresh=true", nil); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
