package response

import (
	"time"

	"assistec/internal/domain/entities"
)

type InvoicePaymentResponse struct {
	PaymentID      string    `json:"payment_id"`
	ID             string    `json:"id"`
	InvoiceID      string    `json:"invoice_id"`
	PaymentDate    time.Time `json:"payment_date"`
	Amount         float64   `json:"amount"`
	Status         string    `json:"status"`
	ProviderStatus string    `json:"provider_status,omitempty"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromInvoicePayment(p entities.InvoicePayment) InvoicePaymentResponse {
	return InvoicePaymentResponse{
		PaymentID:      p.ID,
		ID:             p.ID,
		InvoiceID:      string(p.InvoiceID),
		PaymentDate:    p.Date,
		Amount:         p.Amount,
		Status:         string(p.Status),
		ProviderStatus: p.ProviderStatus,
		MPPayloadRaw:   string(p.MPPayloadRaw),
		MPPayload:      p.MPPayload,
	}
}

func FromInvoicePayments(ps []entities.InvoicePayment) []InvoicePaymentResponse {
	out := make([]InvoicePaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromInvoicePayment(p))
	}
	return out
}
