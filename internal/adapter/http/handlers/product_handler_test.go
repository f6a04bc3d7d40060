package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"assistec/internal/adapter/http/handlers/mocks"
	"assistec/internal/domain/entities"
	"assistec/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newProductRouter(t *testing.T) (*gin.Engine, *mocks.MockIProductUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIProductUseCase(ctrl)
	h := NewProductHandler(uc)

	r := gin.New()
	r.POST("/v1/produtos/:id/movimentar", h.MoveStock)
	return r, uc
}

func TestProductHandler_MoveStock(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		r, uc := newProductRouter(t)
		in := entities.StockMovement{Type: entities.MovementEntrada, Quantity: 3}
		uc.EXPECT().
			MoveStock(gomock.Any(), "9", in).
			Return(entities.StockMovement{ID: "mv1", Type: entities.MovementEntrada, Quantity: 3}, nil)

		w := serve(r, http.MethodPost, "/v1/produtos/9/movimentar", strings.NewReader(`{"tipo":"entrada","quantidade":3}`))
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body entities.StockMovement
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.ID != "mv1" || body.Quantity != 3 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("invalid product id", func(t *testing.T) {
		r, uc := newProductRouter(t)
		uc.EXPECT().MoveStock(gomock.Any(), "x", gomock.Any()).Return(entities.StockMovement{}, usecase.ErrInvalidProductID)

		w := serve(r, http.MethodPost, "/v1/produtos/x/movimentar", strings.NewReader(`{"tipo":"saida","quantidade":1}`))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		r, _ := newProductRouter(t)

		w := serve(r, http.MethodPost, "/v1/produtos/9/movimentar", strings.NewReader(`{`))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
