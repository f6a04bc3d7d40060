package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"assistec/internal/adapter/http/handlers/mocks"
	"assistec/internal/domain/entities"
	"assistec/internal/infrastructure/httpclient"
	"assistec/internal/usecase"
	"assistec/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newCustomerRouter(t *testing.T) (*gin.Engine, *mocks.MockICustomerUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICustomerUseCase(ctrl)
	h := NewCustomerHandler(uc)

	r := gin.New()
	r.GET("/v1/clientes", h.List)
	r.GET("/v1/clientes/:id", h.Get)
	r.POST("/v1/clientes", h.Create)
	r.PUT("/v1/clientes/:id", h.Update)
	r.DELETE("/v1/clientes/:id", h.Delete)
	return r, uc
}

func TestCustomerHandler_List(t *testing.T) {
	r, uc := newCustomerRouter(t)

	uc.EXPECT().
		List(gomock.Any(), map[string]any{"busca": "ana", "page": "2"}).
		Return(entities.Page[entities.Customer]{
			Items:      []entities.Customer{{ID: "1", Name: "Ana"}},
			Pagination: entities.Pagination{Page: 2, Limit: 10, Total: 11, TotalPages: 2},
		}, nil)

	w := serve(r, http.MethodGet, "/v1/clientes?busca=ana&page=2", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body entities.Page[entities.Customer]
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(body.Items) != 1 || body.Items[0].Name != "Ana" || body.Pagination.TotalPages != 2 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestCustomerHandler_Get(t *testing.T) {
	t.Run("backend unreachable", func(t *testing.T) {
		r, uc := newCustomerRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "7").Return(entities.Customer{}, &httpclient.APIError{Message: "Erro ao carregar cliente", Err: errors.New("dial tcp: connection refused")})

		w := serve(r, http.MethodGet, "/v1/clientes/7", nil)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		r, uc := newCustomerRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), " ").Return(entities.Customer{}, usecase.ErrInvalidCustomerID)

		w := serve(r, http.MethodGet, "/v1/clientes/%20", nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestCustomerHandler_Create(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newCustomerRouter(t)

		w := serve(r, http.MethodPost, "/v1/clientes", bytes.NewBufferString("{"))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error lists fields", func(t *testing.T) {
		r, uc := newCustomerRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Customer{}, &usecase.ValidationError{
			Kind:   usecase.ErrInvalidCustomerInput,
			Fields: []pkg.FieldError{{Field: "nome", Message: "Nome é obrigatório"}},
		})

		w := serve(r, http.MethodPost, "/v1/clientes", bytes.NewBufferString(`{"telefone":"11999999999"}`))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body pkg.HTTPError
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Code != "VALIDATION_ERROR" || len(body.Details) != 1 || body.Details[0].Field != "nome" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newCustomerRouter(t)
		uc.EXPECT().Create(gomock.Any(), entities.Customer{Name: "Ana", Phone: "11999999999"}).Return(entities.Customer{ID: "9", Name: "Ana", Phone: "11999999999"}, nil)

		w := serve(r, http.MethodPost, "/v1/clientes", bytes.NewBufferString(`{"nome":"Ana","telefone":"11999999999"}`))
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestCustomerHandler_Delete(t *testing.T) {
	t.Run("backend message is shown verbatim", func(t *testing.T) {
		r, uc := newCustomerRouter(t)
		uc.EXPECT().Delete(gomock.Any(), "42").Return(&httpclient.APIError{Status: http.StatusNotFound, Message: "Cliente não encontrado"})

		w := serve(r, http.MethodDelete, "/v1/clientes/42", nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var body pkg.HTTPError
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Message != "Cliente não encontrado" || body.Error != "Cliente não encontrado" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newCustomerRouter(t)
		uc.EXPECT().Delete(gomock.Any(), "42").Return(nil)

		w := serve(r, http.MethodDelete, "/v1/clientes/42", nil)
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
