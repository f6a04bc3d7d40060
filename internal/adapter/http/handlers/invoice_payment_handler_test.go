package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"assistec/internal/adapter/http/handlers/mocks"
	"assistec/internal/domain/entities"
	"assistec/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newPaymentRouter(t *testing.T) (*gin.Engine, *mocks.MockIInvoicePaymentUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIInvoicePaymentUseCase(ctrl)
	h := NewInvoicePaymentHandler(uc)

	r := gin.New()
	r.POST("/v1/billing/faturas/:id/pagamentos", h.PayInvoice)
	r.GET("/v1/billing/faturas/:id/pagamentos", h.ListByInvoice)
	r.GET("/v1/billing/faturas/:id/pagamentos/:paymentId", h.Get)
	return r, uc
}

func TestInvoicePaymentHandler_PayInvoice(t *testing.T) {
	t.Run("invalid payload is left to the use case", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().PayInvoice(gomock.Any(), "fat-1", json.RawMessage(nil)).Return(entities.InvoicePayment{}, usecase.ErrInvalidMPPayload)

		w := serve(r, http.MethodPost, "/v1/billing/faturas/fat-1/pagamentos", bytes.NewBufferString("{"))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invoice not payable", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().PayInvoice(gomock.Any(), "fat-1", gomock.Any()).Return(entities.InvoicePayment{}, usecase.ErrInvoiceNotPayable)

		w := serve(r, http.MethodPost, "/v1/billing/faturas/fat-1/pagamentos", bytes.NewBufferString(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().PayInvoice(gomock.Any(), "fat-1", gomock.Any()).Return(entities.InvoicePayment{}, usecase.ErrPaymentGatewayNotConfigured)

		w := serve(r, http.MethodPost, "/v1/billing/faturas/fat-1/pagamentos", bytes.NewBufferString(`{}`))
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("wrapped payload", func(t *testing.T) {
		r, uc := newPaymentRouter(t)

		now := time.Now().UTC()
		uc.EXPECT().
			PayInvoice(gomock.Any(), "fat-1", json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`)).
			Return(entities.InvoicePayment{ID: "pay-1", InvoiceID: "fat-1", Date: now, Amount: 99.9, Status: entities.PaymentStatusAprovado}, nil)

		w := serve(r, http.MethodPost, "/v1/billing/faturas/fat-1/pagamentos", bytes.NewBufferString(`{"mp_payload":{"payment_method_id":"pix","payer":{"email":"x@test.com"}}}`))
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_id"] != "pay-1" || body["invoice_id"] != "fat-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("charged but not confirmed", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().
			PayInvoice(gomock.Any(), "fat-1", gomock.Any()).
			Return(entities.InvoicePayment{ID: "pay-1", InvoiceID: "fat-1", Status: entities.PaymentStatusAprovado}, errors.New("backend down"))

		w := serve(r, http.MethodPost, "/v1/billing/faturas/fat-1/pagamentos", bytes.NewBufferString(`{}`))
		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
	})
}

func TestInvoicePaymentHandler_ListByInvoice(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().ListByInvoiceID(gomock.Any(), "fat-1").Return(nil, nil)

		w := serve(r, http.MethodGet, "/v1/billing/faturas/fat-1/pagamentos", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "[]" {
			t.Fatalf("expected empty array, got %s", w.Body.String())
		}
	})

	t.Run("invalid invoice id", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().ListByInvoiceID(gomock.Any(), "fat-1").Return(nil, usecase.ErrInvalidInvoiceID)

		w := serve(r, http.MethodGet, "/v1/billing/faturas/fat-1/pagamentos", nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestInvoicePaymentHandler_Get(t *testing.T) {
	r, uc := newPaymentRouter(t)
	uc.EXPECT().GetByID(gomock.Any(), "pay-9").Return(entities.InvoicePayment{}, usecase.ErrInvoicePaymentNotFound)

	w := serve(r, http.MethodGet, "/v1/billing/faturas/fat-1/pagamentos/pay-9", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestReadMPPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{name: "empty body", body: "", want: "{}"},
		{name: "bare body", body: `{"payment_method_id":"pix"}`, want: `{"payment_method_id":"pix"}`},
		{name: "wrapped", body: `{"mp_payload":{"token":"abc"}}`, want: `{"token":"abc"}`},
		{name: "null wrapper", body: `{"mp_payload":null}`, wantErr: true},
		{name: "invalid json", body: `{`, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tc.body))

			got, err := readMPPayload(c)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %s", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}
