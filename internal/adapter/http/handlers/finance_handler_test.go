package handlers

import (
	"bytes"
	"net/http"
	"testing"

	"assistec/internal/adapter/http/handlers/mocks"
	"assistec/internal/domain/entities"
	"assistec/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestFinanceHandler_Settle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(t *testing.T) (*gin.Engine, *mocks.MockIFinanceUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIFinanceUseCase(ctrl)
		h := NewFinanceHandler(uc)
		r := gin.New()
		r.PATCH("/v1/financeiro/contas-pagar/:id/pagar", h.Settle(entities.EntryKindPayable))
		r.PATCH("/v1/financeiro/fluxo-caixa/:id/pagar", h.Settle(entities.EntryKindCashFlow))
		return r, uc
	}

	t.Run("empty body", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().Settle(gomock.Any(), entities.EntryKindPayable, "5", entities.Settlement{}).Return(entities.FinancialEntry{ID: "5"}, nil)

		w := serve(r, http.MethodPatch, "/v1/financeiro/contas-pagar/5/pagar", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("with date", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().Settle(gomock.Any(), entities.EntryKindPayable, "5", entities.Settlement{PaidDate: "2024-03-10", PaymentMethod: "pix"}).Return(entities.FinancialEntry{ID: "5"}, nil)

		w := serve(r, http.MethodPatch, "/v1/financeiro/contas-pagar/5/pagar", bytes.NewBufferString(`{"data_pagamento":"2024-03-10","forma_pagamento":"pix"}`))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("cash flow cannot be settled", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().Settle(gomock.Any(), entities.EntryKindCashFlow, "5", gomock.Any()).Return(entities.FinancialEntry{}, usecase.ErrSettleCashFlowKind)

		w := serve(r, http.MethodPatch, "/v1/financeiro/fluxo-caixa/5/pagar", nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
