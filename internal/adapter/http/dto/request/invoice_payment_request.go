package request

import "encoding/json"

// InvoicePaymentRequest is the payload of POST /billing/faturas/:id/pagamentos.
//
// `mp_payload` is forwarded as-is (raw JSON) to support varying Mercado Pago
// schemas. A bare Mercado Pago body is accepted too.
type InvoicePaymentRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
