package handlers

import (
	"net/http"

	"assistec/internal/adapter/http/dto/request"
	"assistec/internal/usecase"
	"assistec/pkg/query"

	"github.com/gin-gonic/gin"
)

var billingErrors = []domainMapper{
	sentinel(usecase.ErrInvalidPlanID, "INVALID_PLAN_ID", "Plano inválido", http.StatusBadRequest),
	sentinel(usecase.ErrInvalidInvoiceID, "INVALID_INVOICE_ID", "Fatura inválida", http.StatusBadRequest),
}

// BillingHandler handles the subscription side of /v1/billing.
type BillingHandler struct {
	usecase usecase.IBillingUseCase
}

func NewBillingHandler(uc usecase.IBillingUseCase) *BillingHandler {
	return &BillingHandler{usecase: uc}
}

func (h *BillingHandler) Plans(c *gin.Context) {
	plans, err := h.usecase.Plans(c.Request.Context())
	if err != nil {
		respondError(c, err, billingErrors...)
		return
	}
	c.JSON(http.StatusOK, plans)
}

func (h *BillingHandler) Subscription(c *gin.Context) {
	sub, err := h.usecase.Subscription(c.Request.Context())
	if err != nil {
		respondError(c, err, billingErrors...)
		return
	}
	c.JSON(http.StatusOK, sub)
}

func (h *BillingHandler) ChangePlan(c *gin.Context) {
	var req request.ChangePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	sub, err := h.usecase.ChangePlan(c.Request.Context(), req.PlanID)
	if err != nil {
		respondError(c, err, billingErrors...)
		return
	}
	c.JSON(http.StatusOK, sub)
}

func (h *BillingHandler) CancelSubscription(c *gin.Context) {
	sub, err := h.usecase.CancelSubscription(c.Request.Context())
	if err != nil {
		respondError(c, err, billingErrors...)
		return
	}
	c.JSON(http.StatusOK, sub)
}

func (h *BillingHandler) Invoices(c *gin.Context) {
	page, err := h.usecase.Invoices(c.Request.Context(), query.FromValues(c.Request.URL.Query()))
	if err != nil {
		respondError(c, err, billingErrors...)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *BillingHandler) Invoice(c *gin.Context) {
	inv, err := h.usecase.GetInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, billingErrors...)
		return
	}
	c.JSON(http.StatusOK, inv)
}
