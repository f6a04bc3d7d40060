package handlers

import (
	"net/http"

	"assistec/internal/domain/entities"
	"assistec/internal/usecase"
	"assistec/pkg/query"

	"github.com/gin-gonic/gin"
)

var financeErrors = []domainMapper{
	sentinel(usecase.ErrInvalidEntryKind, "INVALID_ENTRY_KIND", "Tipo de lançamento inválido", http.StatusNotFound),
	sentinel(usecase.ErrInvalidEntryID, "INVALID_ENTRY_ID", "Lançamento inválido", http.StatusBadRequest),
	sentinel(usecase.ErrSettleCashFlowKind, "INVALID_SETTLEMENT", "Lançamentos do fluxo de caixa não podem ser quitados", http.StatusBadRequest),
}

// FinanceHandler handles /v1/financeiro. The entry handlers are built per
// book (fluxo-caixa, contas-pagar, contas-receber).
type FinanceHandler struct {
	usecase usecase.IFinanceUseCase
}

func NewFinanceHandler(uc usecase.IFinanceUseCase) *FinanceHandler {
	return &FinanceHandler{usecase: uc}
}

func (h *FinanceHandler) List(kind entities.EntryKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := h.usecase.List(c.Request.Context(), kind, query.FromValues(c.Request.URL.Query()))
		if err != nil {
			respondError(c, err, financeErrors...)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

func (h *FinanceHandler) Create(kind entities.EntryKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in entities.FinancialEntry
		if err := c.ShouldBindJSON(&in); err != nil {
			badJSON(c)
			return
		}
		created, err := h.usecase.Create(c.Request.Context(), kind, in)
		if err != nil {
			respondError(c, err, financeErrors...)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func (h *FinanceHandler) Update(kind entities.EntryKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in entities.FinancialEntry
		if err := c.ShouldBindJSON(&in); err != nil {
			badJSON(c)
			return
		}
		updated, err := h.usecase.Update(c.Request.Context(), kind, c.Param("id"), in)
		if err != nil {
			respondError(c, err, financeErrors...)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func (h *FinanceHandler) Delete(kind entities.EntryKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h.usecase.Delete(c.Request.Context(), kind, c.Param("id")); err != nil {
			respondError(c, err, financeErrors...)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// Settle registers the payment of a payable or the receipt of a receivable.
// An empty body settles with today's date.
func (h *FinanceHandler) Settle(kind entities.EntryKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in entities.Settlement
		if c.Request.ContentLength != 0 {
			if err := c.ShouldBindJSON(&in); err != nil {
				badJSON(c)
				return
			}
		}
		entry, err := h.usecase.Settle(c.Request.Context(), kind, c.Param("id"), in)
		if err != nil {
			respondError(c, err, financeErrors...)
			return
		}
		c.JSON(http.StatusOK, entry)
	}
}

func (h *FinanceHandler) Categories(c *gin.Context) {
	categories, err := h.usecase.Categories(c.Request.Context(), query.FromValues(c.Request.URL.Query()))
	if err != nil {
		respondError(c, err, financeErrors...)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *FinanceHandler) Summary(c *gin.Context) {
	summary, err := h.usecase.Summary(c.Request.Context(), query.FromValues(c.Request.URL.Query()))
	if err != nil {
		respondError(c, err, financeErrors...)
		return
	}
	c.JSON(http.StatusOK, summary)
}
