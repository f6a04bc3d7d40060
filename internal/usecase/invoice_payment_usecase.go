package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"assistec/internal/domain/entities"
	"assistec/internal/infrastructure/logger"
	"assistec/internal/usecase/interfaces"
)

var (
	ErrInvoicePaymentNotFound         = errors.New("invoice payment not found")
	ErrInvalidInvoiceID               = errors.New("invalid invoice id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrInvoiceNotPayable              = errors.New("invoice not payable")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// sandboxFallbackEmail is the test payer Mercado Pago accepts with TEST-
// access tokens.
const sandboxFallbackEmail = "test_user_br@testuser.com"

// PaymentSandbox holds the Mercado Pago test-account settings used to fill
// the payer of sandbox payments.
type PaymentSandbox struct {
	Enabled         bool
	TestPayerEmail  string
	TestPayerUserID string
}

// IInvoicePaymentUseCase pays subscription invoices through the payment
// gateway.
//
// Flow:
//   - load the invoice from the backend (amount is taken from it);
//   - create the provider payment and persist the outcome;
//   - confirm the invoice on the backend when the provider approved it.
type IInvoicePaymentUseCase interface {
	PayInvoice(ctx context.Context, invoiceID string, mpPayload json.RawMessage) (entities.InvoicePayment, error)
	GetByID(ctx context.Context, id string) (entities.InvoicePayment, error)
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.InvoicePayment, error)
}

type InvoicePaymentUseCase struct {
	repo    interfaces.IInvoicePaymentRepository
	billing interfaces.IBillingService
	gateway interfaces.IPaymentGateway
	sandbox PaymentSandbox
	now     func() time.Time
}

var _ IInvoicePaymentUseCase = (*InvoicePaymentUseCase)(nil)

func NewInvoicePaymentUseCase(repo interfaces.IInvoicePaymentRepository, billing interfaces.IBillingService, gateway interfaces.IPaymentGateway, sandbox PaymentSandbox) *InvoicePaymentUseCase {
	return &InvoicePaymentUseCase{repo: repo, billing: billing, gateway: gateway, sandbox: sandbox, now: time.Now}
}

func (u *InvoicePaymentUseCase) PayInvoice(ctx context.Context, invoiceID string, mpPayload json.RawMessage) (entities.InvoicePayment, error) {
	log := logger.For("payment.usecase")
	log.Info().Str("raw_invoice_id", invoiceID).Int("payload_len", len(mpPayload)).Msg("pay invoice start")

	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return entities.InvoicePayment{}, ErrInvalidInvoiceID
	}
	if u.gateway == nil {
		log.Warn().Str("invoice_id", invoiceID).Msg("gateway not configured")
		return entities.InvoicePayment{}, ErrPaymentGatewayNotConfigured
	}
	mockMode := u.gateway.MockMode()

	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			log.Warn().Str("invoice_id", invoiceID).Msg("invalid payload")
			return entities.InvoicePayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		if !mockMode {
			log.Warn().Str("invoice_id", invoiceID).Msg("payload is not an object")
			return entities.InvoicePayment{}, ErrInvalidMPPayload
		}
		reqMap = map[string]any{}
	}

	inv, err := u.billing.GetInvoice(ctx, invoiceID)
	if err != nil {
		log.Warn().Str("invoice_id", invoiceID).Err(err).Msg("failed loading invoice")
		return entities.InvoicePayment{}, err
	}
	if inv.Status != entities.InvoiceStatusPendente && inv.Status != entities.InvoiceStatusVencida {
		log.Warn().Str("invoice_id", invoiceID).Str("status", string(inv.Status)).Msg("invoice not payable")
		return entities.InvoicePayment{}, ErrInvoiceNotPayable
	}

	if !mockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
		log.Warn().Str("invoice_id", invoiceID).Msg("missing payment_method_id")
		return entities.InvoicePayment{}, ErrInvalidMPPayload
	}
	if !mockMode {
		u.normalizeSandboxPayer(reqMap)
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			log.Warn().Str("invoice_id", invoiceID).Msg("missing or invalid payer")
			return entities.InvoicePayment{}, ErrInvalidMPPayload
		}
	}

	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = invoiceID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = invoiceDescription(inv)
	}
	reqMap["transaction_amount"] = inv.Amount
	mpPayload, err = json.Marshal(reqMap)
	if err != nil {
		log.Error().Str("invoice_id", invoiceID).Err(err).Msg("payload marshal failed")
		return entities.InvoicePayment{}, err
	}

	var (
		providerPaymentID string
		providerStatus    string
		providerResp      json.RawMessage
	)
	if mockMode {
		log.Info().Str("invoice_id", invoiceID).Msg("mock mode; skipping external payment gateway")
		providerPaymentID, providerStatus, providerResp, err = u.mockPayment(invoiceID, inv.Amount, mpPayload)
	} else {
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, mpPayload)
		err = classifyGatewayError(err)
	}
	if err != nil {
		log.Warn().Str("invoice_id", invoiceID).Err(err).Msg("payment gateway failed")
		return entities.InvoicePayment{}, err
	}
	log.Info().
		Str("invoice_id", invoiceID).
		Str("provider_payment_id", providerPaymentID).
		Str("provider_status", providerStatus).
		Msg("payment gateway success")

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Debug().Str("invoice_id", invoiceID).Err(err).Msg("provider response unmarshal failed")
	}

	p := entities.InvoicePayment{
		ID:             providerPaymentID,
		InvoiceID:      entities.ID(invoiceID),
		Date:           u.now().UTC(),
		Amount:         inv.Amount,
		Status:         entities.PaymentStatusFromProvider(providerStatus),
		ProviderStatus: providerStatus,
		MPPayloadRaw:   providerResp,
		MPPayload:      parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Error().Str("invoice_id", invoiceID).Str("payment_id", p.ID).Err(err).Msg("payment repository create failed")
		return entities.InvoicePayment{}, err
	}

	if created.Status == entities.PaymentStatusAprovado {
		_, err := u.billing.PayInvoice(ctx, invoiceID, entities.InvoicePaymentConfirmation{
			ProviderPaymentID: created.ID,
			ProviderStatus:    providerStatus,
			Provider:          "mercadopago",
		})
		if err != nil {
			// The provider already charged; the stored payment is the
			// reconciliation record.
			log.Error().Str("invoice_id", invoiceID).Str("payment_id", created.ID).Err(err).Msg("invoice confirmation failed")
			return created, err
		}
	}
	log.Info().
		Str("invoice_id", invoiceID).
		Str("payment_id", created.ID).
		Str("status", string(created.Status)).
		Msg("pay invoice success")
	return created, nil
}

func (u *InvoicePaymentUseCase) GetByID(ctx context.Context, id string) (entities.InvoicePayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.InvoicePayment{}, errors.New("invalid payment id")
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.InvoicePayment{}, err
	}
	if p.ID == "" {
		return entities.InvoicePayment{}, ErrInvoicePaymentNotFound
	}
	return p, nil
}

func (u *InvoicePaymentUseCase) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.InvoicePayment, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return nil, ErrInvalidInvoiceID
	}
	return u.repo.ListByInvoiceID(ctx, invoiceID)
}

func (u *InvoicePaymentUseCase) mockPayment(invoiceID string, amount float64, payload json.RawMessage) (string, string, json.RawMessage, error) {
	now := u.now().UTC()
	id := strconv.FormatInt(now.UnixNano(), 10)
	resp := map[string]any{}
	_ = json.Unmarshal(payload, &resp)
	if resp == nil {
		resp = map[string]any{}
	}
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now.Format(time.RFC3339Nano)
	resp["date_approved"] = now.Format(time.RFC3339Nano)
	if _, ok := resp["external_reference"]; !ok {
		resp["external_reference"] = invoiceID
	}
	if _, ok := resp["transaction_amount"]; !ok {
		resp["transaction_amount"] = amount
	}
	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return id, "approved", b, nil
}

func invoiceDescription(inv entities.Invoice) string {
	if d := strings.TrimSpace(inv.Description); d != "" {
		return d
	}
	return fmt.Sprintf("Fatura %s", inv.ID)
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	return strings.TrimSpace(fmt.Sprintf("%v", v)) != ""
}

func (u *InvoicePaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// Either payer.id or payer.email identifies the payer; fill the email
	// only when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(u.sandbox.TestPayerEmail); email != "" {
			payer["email"] = email
		} else if u.sandbox.Enabled {
			payer["email"] = sandboxFallbackEmail
		}
	}
}

// normalizeSandboxPayer swaps the configured test user id for its email,
// which is what the sandbox accepts.
func (u *InvoicePaymentUseCase) normalizeSandboxPayer(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok || !u.sandbox.Enabled {
		return
	}
	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	userID := strings.TrimSpace(u.sandbox.TestPayerUserID)
	email := strings.TrimSpace(u.sandbox.TestPayerEmail)
	if userID == "" || email == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return
	}
	payer["email"] = email
	delete(payer, "id")
	logger.For("payment.usecase").Debug().Msg("mapped sandbox payer user id to payer email")
}

func classifyGatewayError(err error) error {
	switch {
	case err == nil:
		return nil
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, `"error":"bad_request"`) || strings.Contains(msg, `"status":400`)
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, `"error":"unauthorized"`) || strings.Contains(msg, `"status":401`)
}

func isGatewayInvalidUsers(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, `"code":2034`)
}

func isGatewayCustomerNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, `"code":2002`)
}
