package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"assistec/internal/domain/entities"
	"assistec/internal/infrastructure/httpclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method      string
	Path        string
	RawQuery    string
	ContentType string
	Body        []byte
}

// stubBackend answers every request with status and body and records what
// it received.
type stubBackend struct {
	mu       sync.Mutex
	requests []recordedRequest
	status   int
	body     string
	header   http.Header
}

func newStubBackend(t *testing.T, status int, body string) (*stubBackend, *httpclient.Client) {
	t.Helper()
	stub := &stubBackend{status: status, body: body, header: http.Header{}}
	srv := httptest.NewServer(stub)
	t.Cleanup(srv.Close)
	return stub, httpclient.New(httpclient.Config{
		BaseURL:               srv.URL + "/api",
		Timeout:               2 * time.Second,
		NetworkRetryDelay:     10 * time.Millisecond,
		UnavailableRetryDelay: 10 * time.Millisecond,
	})
}

func (s *stubBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	s.mu.Lock()
	s.requests = append(s.requests, recordedRequest{
		Method:      r.Method,
		Path:        r.URL.Path,
		RawQuery:    r.URL.RawQuery,
		ContentType: r.Header.Get("Content-Type"),
		Body:        body,
	})
	s.mu.Unlock()

	for k, vs := range s.header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/json")
	}
	w.WriteHeader(s.status)
	_, _ = io.WriteString(w, s.body)
}

func (s *stubBackend) last(t *testing.T) recordedRequest {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	require.NotEmpty(t, s.requests)
	return s.requests[len(s.requests)-1]
}

func TestCustomerService(t *testing.T) {
	ctx := context.Background()

	t.Run("list unwraps a doubled envelope", func(t *testing.T) {
		stub, c := newStubBackend(t, http.StatusOK,
			`{"data":{"data":[{"id":7,"nome":"Ana"},{"id":"c-8","nome":"Bia"}],"pagination":{"page":2,"limit":10,"total":12,"totalPages":2}}}`)
		svc := NewCustomerService(c)

		page, err := svc.List(ctx, map[string]any{"busca": "a", "data_inicio": "2024-13-01", "page": 2})
		require.NoError(t, err)
		require.Len(t, page.Items, 2)
		assert.Equal(t, entities.ID("7"), page.Items[0].ID)
		assert.Equal(t, entities.ID("c-8"), page.Items[1].ID)
		assert.Equal(t, 12, page.Pagination.Total)

		req := stub.last(t)
		assert.Equal(t, http.MethodGet, req.Method)
		assert.Equal(t, "/api/clientes", req.Path)
		assert.Equal(t, "busca=a&page=2", req.RawQuery)
	})

	t.Run("list with empty body is an empty page", func(t *testing.T) {
		_, c := newStubBackend(t, http.StatusOK, ``)
		page, err := NewCustomerService(c).List(ctx, nil)
		require.NoError(t, err)
		assert.NotNil(t, page.Items)
		assert.Empty(t, page.Items)
	})

	t.Run("list accepts a raw array", func(t *testing.T) {
		_, c := newStubBackend(t, http.StatusOK, `[{"id":1,"nome":"Ana"}]`)
		page, err := NewCustomerService(c).List(ctx, nil)
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, 1, page.Pagination.Total)
	})

	t.Run("delete surfaces the server message verbatim", func(t *testing.T) {
		stub, c := newStubBackend(t, http.StatusNotFound, `{"error":"Cliente não encontrado"}`)
		err := NewCustomerService(c).Delete(ctx, "99")

		var apiErr *httpclient.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusNotFound, apiErr.Status)
		assert.Equal(t, "Cliente não encontrado", apiErr.Message)

		req := stub.last(t)
		assert.Equal(t, http.MethodDelete, req.Method)
		assert.Equal(t, "/api/clientes/99", req.Path)
	})

	t.Run("delete without server message uses the fallback", func(t *testing.T) {
		_, c := newStubBackend(t, http.StatusInternalServerError, `<html>oops</html>`)
		err := NewCustomerService(c).Delete(ctx, "99")
		assert.Equal(t, "Erro ao excluir cliente", httpclient.Message(err))
	})

	t.Run("create carries validation details", func(t *testing.T) {
		_, c := newStubBackend(t, http.StatusBadRequest,
			`{"message":"Dados inválidos","details":[{"field":"email","message":"Email inválido"}]}`)
		_, err := NewCustomerService(c).Create(ctx, entities.Customer{Name: "Ana", Email: "x"})

		var apiErr *httpclient.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, "Dados inválidos", apiErr.Message)
		require.Len(t, apiErr.Details, 1)
		assert.Equal(t, "email", apiErr.Details[0].Field)
	})

	t.Run("undecodable body is not a network failure", func(t *testing.T) {
		_, c := newStubBackend(t, http.StatusOK, `{"id":1,"nome":12345}`)
		_, err := NewCustomerService(c).GetByID(ctx, "1")

		var apiErr *httpclient.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.True(t, apiErr.Invalid())
		assert.False(t, apiErr.Network())
		assert.Equal(t, http.StatusOK, apiErr.Status)
		assert.ErrorIs(t, err, httpclient.ErrInvalidResponse)
		assert.Equal(t, "Erro ao carregar cliente", apiErr.Message)
	})

	t.Run("undecodable list is not a network failure", func(t *testing.T) {
		_, c := newStubBackend(t, http.StatusOK, `{"data":[{"id":1,"nome":false}]}`)
		_, err := NewCustomerService(c).List(ctx, nil)

		var apiErr *httpclient.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.True(t, apiErr.Invalid())
		assert.False(t, apiErr.Network())
	})

	t.Run("unreachable backend", func(t *testing.T) {
		c := httpclient.New(httpclient.Config{
			BaseURL:               "http://127.0.0.1:1",
			Timeout:               time.Second,
			NetworkRetryDelay:     time.Millisecond,
			UnavailableRetryDelay: time.Millisecond,
		})
		_, err := NewCustomerService(c).GetByID(ctx, "1")

		var apiErr *httpclient.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.True(t, apiErr.Network())
		assert.Equal(t, "Erro ao carregar cliente", apiErr.Message)
	})
}

func TestOrderService(t *testing.T) {
	ctx := context.Background()

	t.Run("update status", func(t *testing.T) {
		stub, c := newStubBackend(t, http.StatusOK, `{"data":{"id":3,"status":"pronto"}}`)
		got, err := NewOrderService(c).UpdateStatus(ctx, "3", entities.StatusChange{Status: entities.OrderStatusPronto})
		require.NoError(t, err)
		assert.Equal(t, entities.OrderStatusPronto, got.Status)

		req := stub.last(t)
		assert.Equal(t, http.MethodPatch, req.Method)
		assert.Equal(t, "/api/ordens/3/status", req.Path)
		assert.JSONEq(t, `{"status":"pronto"}`, string(req.Body))
	})

	t.Run("upload photos as multipart", func(t *testing.T) {
		stub, c := newStubBackend(t, http.StatusCreated, `{"data":[{"id":1,"url":"/uploads/1.jpg"}]}`)
		photos, err := NewOrderService(c).UploadPhotos(ctx, "3", []entities.PhotoUpload{
			{Filename: "a.jpg", ContentType: "image/jpeg", Data: []byte{0xff, 0xd8, 0xff}},
		})
		require.NoError(t, err)
		require.Len(t, photos, 1)

		req := stub.last(t)
		assert.Equal(t, "/api/ordens/3/fotos", req.Path)
		assert.Contains(t, req.ContentType, "multipart/form-data")
		assert.Contains(t, string(req.Body), `name="fotos"; filename="a.jpg"`)
	})

	t.Run("history", func(t *testing.T) {
		_, c := newStubBackend(t, http.StatusOK, `[{"id":1,"status_anterior":"aguardando","status_novo":"pronto","created_at":"2024-01-01"}]`)
		history, err := NewOrderService(c).History(ctx, "3")
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, "pronto", history[0].NewStatus)
	})
}

func TestProductService_MoveStock(t *testing.T) {
	stub, c := newStubBackend(t, http.StatusOK, `{"data":{"tipo":"entrada","quantidade":5,"estoque_novo":12}}`)
	got, err := NewProductService(c).MoveStock(context.Background(), "p1", entities.StockMovement{Type: entities.MovementEntrada, Quantity: 5})
	require.NoError(t, err)
	require.NotNil(t, got.NewStock)
	assert.Equal(t, 12, *got.NewStock)

	req := stub.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/api/produtos/p1/movimentar", req.Path)
}

func TestFinanceService(t *testing.T) {
	ctx := context.Background()

	t.Run("cash flow entry with a scalar data field is not an envelope", func(t *testing.T) {
		_, c := newStubBackend(t, http.StatusCreated, `{"id":4,"descricao":"Venda","valor":10,"tipo":"entrada","data":"2024-03-01"}`)
		got, err := NewFinanceService(c).Create(ctx, entities.EntryKindCashFlow, entities.FinancialEntry{Description: "Venda"})
		require.NoError(t, err)
		assert.Equal(t, "2024-03-01", got.Date)
		assert.Equal(t, entities.ID("4"), got.ID)
	})

	t.Run("settle payable", func(t *testing.T) {
		stub, c := newStubBackend(t, http.StatusOK, `{"data":{"id":9,"status":"pago"}}`)
		_, err := NewFinanceService(c).Settle(ctx, entities.EntryKindPayable, "9", entities.Settlement{PaidDate: "2024-03-10"})
		require.NoError(t, err)
		assert.Equal(t, "/api/financeiro/contas-pagar/9/pagar", stub.last(t).Path)
	})

	t.Run("settle receivable fallback", func(t *testing.T) {
		stub, c := newStubBackend(t, http.StatusBadGateway, `{}`)
		_, err := NewFinanceService(c).Settle(ctx, entities.EntryKindReceivable, "9", entities.Settlement{PaidDate: "2024-03-10"})
		assert.Equal(t, "Erro ao registrar recebimento", httpclient.Message(err))
		assert.Equal(t, "/api/financeiro/contas-receber/9/receber", stub.last(t).Path)
	})

	t.Run("list filters by due date", func(t *testing.T) {
		stub, c := newStubBackend(t, http.StatusOK, `{"data":[],"total":0}`)
		page, err := NewFinanceService(c).List(ctx, entities.EntryKindReceivable, map[string]any{
			"data_vencimento_inicio": "2024-02-30",
			"status":                 "pendente",
		})
		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.Equal(t, "status=pendente", stub.last(t).RawQuery)
	})
}

func TestBackupService_Download(t *testing.T) {
	stub, c := newStubBackend(t, http.StatusOK, "PK\x03\x04backup")
	stub.header.Set("Content-Type", "application/zip")
	stub.header.Set("Content-Disposition", `attachment; filename="backup-2024.zip"`)

	file, err := NewBackupService(c).Download(context.Background(), "backup-2024.zip")
	require.NoError(t, err)
	assert.Equal(t, "backup-2024.zip", file.Filename)
	assert.Equal(t, "application/zip", file.ContentType)
	assert.Equal(t, []byte("PK\x03\x04backup"), file.Data)
	assert.Equal(t, "/api/backup/download/backup-2024.zip", stub.last(t).Path)
}

func TestBillingService_PayInvoice(t *testing.T) {
	stub, c := newStubBackend(t, http.StatusOK, `{"data":{"id":"f1","status":"paga","valor":99.9}}`)
	inv, err := NewBillingService(c).PayInvoice(context.Background(), "f1", entities.InvoicePaymentConfirmation{
		ProviderPaymentID: "123",
		ProviderStatus:    "approved",
		Provider:          "mercadopago",
	})
	require.NoError(t, err)
	assert.Equal(t, entities.InvoiceStatusPaga, inv.Status)

	req := stub.last(t)
	assert.Equal(t, "/api/billing/faturas/f1/pagar", req.Path)
	var body map[string]string
	require.NoError(t, json.Unmarshal(req.Body, &body))
	assert.Equal(t, "123", body["provider_payment_id"])
}

func TestWhatsAppService_SendMessage(t *testing.T) {
	stub, c := newStubBackend(t, http.StatusOK, `{"success":true}`)
	err := NewWhatsAppService(c).SendMessage(context.Background(), entities.OutgoingMessage{Phone: "5511999999999", Message: "Olá"})
	require.NoError(t, err)

	req := stub.last(t)
	assert.Equal(t, "/api/whatsapp/send", req.Path)
	assert.JSONEq(t, `{"telefone":"5511999999999","mensagem":"Olá"}`, string(req.Body))
}
