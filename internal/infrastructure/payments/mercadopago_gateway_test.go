package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/mercadopago/sdk-go/pkg/payment"
)

type fakePaymentClient struct {
	req  payment.Request
	resp *payment.Response
	err  error
}

func (f *fakePaymentClient) Create(_ context.Context, req payment.Request) (*payment.Response, error) {
	f.req = req
	return f.resp, f.err
}

func TestMercadoPagoGateway_Mock(t *testing.T) {
	g, err := NewMercadoPagoGateway("", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":99.9,"external_reference":"42"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == "" || status != "approved" {
		t.Fatalf("unexpected id=%q status=%q", id, status)
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("invalid provider response: %v", err)
	}
	if body["external_reference"] != "42" || body["status_detail"] != "accredited" {
		t.Fatalf("unexpected mock body: %v", body)
	}
}

func TestNewMercadoPagoGateway_MissingToken(t *testing.T) {
	if _, err := NewMercadoPagoGateway("", false); !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}
}

func TestMercadoPagoGateway_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fake := &fakePaymentClient{resp: &payment.Response{ID: 123, Status: "approved"}}
		g := &MercadoPagoGateway{client: fake, now: time.Now}

		id, status, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":10,"payment_method_id":"pix"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != "123" || status != "approved" {
			t.Fatalf("unexpected id=%q status=%q", id, status)
		}
		if fake.req.PaymentMethodID != "pix" {
			t.Fatalf("payload not forwarded: %+v", fake.req)
		}
	})

	t.Run("sdk error", func(t *testing.T) {
		g := &MercadoPagoGateway{client: &fakePaymentClient{err: errors.New(`{"status":400,"error":"bad_request"}`)}, now: time.Now}
		if _, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`)); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("not configured", func(t *testing.T) {
		g := &MercadoPagoGateway{now: time.Now}
		if _, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`)); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
			t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
		}
	})
}
