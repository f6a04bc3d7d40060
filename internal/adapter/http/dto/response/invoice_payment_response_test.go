package response

import (
	"encoding/json"
	"testing"
	"time"

	"assistec/internal/domain/entities"
)

func TestFromInvoicePayment(t *testing.T) {
	now := time.Now().UTC()
	payload := map[string]interface{}{"a": "b"}
	raw := json.RawMessage(`{"id":123}`)

	p := entities.InvoicePayment{
		ID:             "pay-1",
		InvoiceID:      "f1",
		Date:           now,
		Amount:         49.9,
		Status:         entities.PaymentStatusAprovado,
		ProviderStatus: "approved",
		MPPayloadRaw:   raw,
		MPPayload:      payload,
	}

	res := FromInvoicePayment(p)
	if res.ID != "pay-1" || res.PaymentID != "pay-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.InvoiceID != "f1" || res.Status != "aprovado" || res.ProviderStatus != "approved" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.Amount != 49.9 || !res.PaymentDate.Equal(now) {
		t.Fatalf("unexpected amount/date: %+v", res)
	}
	if res.MPPayloadRaw != string(raw) {
		t.Fatalf("unexpected raw payload: %s", res.MPPayloadRaw)
	}
	if res.MPPayload["a"] != "b" {
		t.Fatalf("unexpected parsed payload: %+v", res.MPPayload)
	}
}

func TestFromInvoicePayments_NeverNil(t *testing.T) {
	if got := FromInvoicePayments(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}
