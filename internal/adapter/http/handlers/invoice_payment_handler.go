package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"assistec/internal/adapter/http/dto/response"
	"assistec/internal/infrastructure/logger"
	"assistec/internal/usecase"
	"assistec/pkg"

	"github.com/gin-gonic/gin"
)

// InvoicePaymentHandler handles invoice payments through Mercado Pago.
type InvoicePaymentHandler struct {
	usecase usecase.IInvoicePaymentUseCase
}

func NewInvoicePaymentHandler(uc usecase.IInvoicePaymentUseCase) *InvoicePaymentHandler {
	return &InvoicePaymentHandler{usecase: uc}
}

// PayInvoice godoc
// @Summary      Paga uma fatura
// @Description  Cria o pagamento no Mercado Pago com o valor da fatura e confirma no backend quando aprovado.
// @Tags         billing
// @Accept       json
// @Produce      json
// @Param        id       path  string                         true  "ID da fatura"
// @Param        payload  body  request.InvoicePaymentRequest  true  "Payload Mercado Pago"
// @Success      201  {object}  response.InvoicePaymentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /billing/faturas/{id}/pagamentos [post]
func (h *InvoicePaymentHandler) PayInvoice(c *gin.Context) {
	log := logger.For("payment.handler")
	invoiceID := c.Param("id")
	log.Info().Str("invoice_id", invoiceID).Msg("pay start")

	// an unreadable payload is passed on empty; the use case decides whether
	// mock mode tolerates it
	mpPayload, err := readMPPayload(c)
	if err != nil {
		log.Warn().Str("invoice_id", invoiceID).Err(err).Msg("invalid payload")
	}

	created, err := h.usecase.PayInvoice(c.Request.Context(), invoiceID, mpPayload)
	if err != nil {
		log.Warn().Str("invoice_id", invoiceID).Err(err).Msg("pay failed")
		if created.ID != "" {
			// payment exists but the backend did not confirm the invoice
			appErr := mapError(err, invoicePaymentError)
			c.JSON(http.StatusAccepted, gin.H{
				"payment": response.FromInvoicePayment(created),
				"error":   appErr.ToHTTPError(),
			})
			return
		}
		respondError(c, err, invoicePaymentError)
		return
	}
	log.Info().Str("invoice_id", invoiceID).Str("payment_id", created.ID).Str("status", string(created.Status)).Msg("pay success")

	c.JSON(http.StatusCreated, response.FromInvoicePayment(created))
}

// ListByInvoice returns every payment attempt of an invoice.
func (h *InvoicePaymentHandler) ListByInvoice(c *gin.Context) {
	payments, err := h.usecase.ListByInvoiceID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, invoicePaymentError)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoicePayments(payments))
}

func (h *InvoicePaymentHandler) Get(c *gin.Context) {
	payment, err := h.usecase.GetByID(c.Request.Context(), c.Param("paymentId"))
	if err != nil {
		respondError(c, err, invoicePaymentError)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoicePayment(payment))
}

// readMPPayload accepts {"mp_payload": {...}} or a bare Mercado Pago body.
func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func invoicePaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Requisição de pagamento inválida", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Pagador não encontrado no ambiente de testes do Mercado Pago", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Usuários inválidos entre o token do vendedor e o pagador de teste", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Mercado Pago recusou as credenciais", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_NOT_CONFIGURED", "Pagamentos não configurados", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrInvoiceNotPayable):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_PAYABLE", "Fatura não está pendente", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvoicePaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Pagamento não encontrado", http.StatusNotFound)
	}
	return nil
}
