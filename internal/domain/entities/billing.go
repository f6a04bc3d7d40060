package entities

import (
	"encoding/json"
	"time"
)

// InvoiceStatus is the status of a subscription invoice (fatura).
type InvoiceStatus string

const (
	InvoiceStatusPendente  InvoiceStatus = "pendente"
	InvoiceStatusPaga      InvoiceStatus = "paga"
	InvoiceStatusVencida   InvoiceStatus = "vencida"
	InvoiceStatusCancelada InvoiceStatus = "cancelada"
)

type Plan struct {
	ID       ID       `json:"id"`
	Name     string   `json:"nome"`
	Price    float64  `json:"preco"`
	Interval string   `json:"intervalo"`
	Features []string `json:"recursos,omitempty"`
}

type Subscription struct {
	ID               ID     `json:"id"`
	PlanID           ID     `json:"plano_id"`
	PlanName         string `json:"plano_nome,omitempty"`
	Status           string `json:"status"`
	CurrentPeriodEnd string `json:"periodo_fim,omitempty"`
}

type Invoice struct {
	ID          ID            `json:"id"`
	Description string        `json:"descricao,omitempty"`
	Amount      float64       `json:"valor"`
	Status      InvoiceStatus `json:"status"`
	DueDate     string        `json:"data_vencimento,omitempty"`
	PaidAt      string        `json:"data_pagamento,omitempty"`
}

// PaymentStatus is the local outcome of a provider payment.
type PaymentStatus string

const (
	PaymentStatusAprovado PaymentStatus = "aprovado"
	PaymentStatusNegado   PaymentStatus = "negado"
	PaymentStatusPendente PaymentStatus = "pendente"
)

// PaymentStatusFromProvider maps a Mercado Pago status onto PaymentStatus.
func PaymentStatusFromProvider(s string) PaymentStatus {
	switch s {
	case "approved", "authorized":
		return PaymentStatusAprovado
	case "rejected", "cancelled", "refunded", "charged_back":
		return PaymentStatusNegado
	default:
		return PaymentStatusPendente
	}
}

// InvoicePaymentConfirmation is sent to /billing/faturas/:id/pagar once the
// provider accepted the payment.
type InvoicePaymentConfirmation struct {
	ProviderPaymentID string `json:"provider_payment_id"`
	ProviderStatus    string `json:"provider_status"`
	Provider          string `json:"provider"`
}

// InvoicePayment is the outcome of paying an invoice.
//
// MercadoPago payload:
//   - MPPayloadRaw keeps the provider body (JSON) for traceability.
//   - MPPayload is the parsed representation, useful for debugging.
type InvoicePayment struct {
	ID             string        `json:"id"`
	InvoiceID      ID            `json:"invoice_id"`
	Date           time.Time     `json:"date"`
	Amount         float64       `json:"amount"`
	Status         PaymentStatus `json:"status"`
	ProviderStatus string        `json:"provider_status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}
