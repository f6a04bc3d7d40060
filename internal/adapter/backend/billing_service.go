package backend

import (
	"context"

	"assistec/internal/domain/entities"
	"assistec/internal/infrastructure/httpclient"
	"assistec/internal/usecase/interfaces"
)

type BillingService struct {
	c *httpclient.Client
}

var _ interfaces.IBillingService = (*BillingService)(nil)

func NewBillingService(c *httpclient.Client) *BillingService {
	return &BillingService{c: c}
}

func (s *BillingService) Plans(ctx context.Context) ([]entities.Plan, error) {
	resp, err := s.c.Get(ctx, "/billing/planos")
	items, _, err := fetchList[entities.Plan](resp, err, "Erro ao carregar planos")
	return items, err
}

func (s *BillingService) Subscription(ctx context.Context) (entities.Subscription, error) {
	resp, err := s.c.Get(ctx, "/billing/assinatura")
	return fetch[entities.Subscription](resp, err, "Erro ao carregar assinatura")
}

func (s *BillingService) ChangePlan(ctx context.Context, planID string) (entities.Subscription, error) {
	resp, err := s.c.Put(ctx, "/billing/assinatura", map[string]string{"plano_id": planID})
	return fetch[entities.Subscription](resp, err, "Erro ao alterar plano")
}

func (s *BillingService) CancelSubscription(ctx context.Context) (entities.Subscription, error) {
	resp, err := s.c.Delete(ctx, "/billing/assinatura")
	return fetch[entities.Subscription](resp, err, "Erro ao cancelar assinatura")
}

func (s *BillingService) Invoices(ctx context.Context, filters map[string]any) (entities.Page[entities.Invoice], error) {
	resp, err := s.c.Get(ctx, withQuery("/billing/faturas", filters))
	return fetchPage[entities.Invoice](resp, err, "Erro ao carregar faturas")
}

func (s *BillingService) GetInvoice(ctx context.Context, id string) (entities.Invoice, error) {
	resp, err := s.c.Get(ctx, "/billing/faturas/"+seg(id))
	return fetch[entities.Invoice](resp, err, "Erro ao carregar fatura")
}

// PayInvoice confirms a provider payment on the backend, which marks the
// invoice as paid.
func (s *BillingService) PayInvoice(ctx context.Context, id string, conf entities.InvoicePaymentConfirmation) (entities.Invoice, error) {
	resp, err := s.c.Post(ctx, "/billing/faturas/"+seg(id)+"/pagar", conf)
	return fetch[entities.Invoice](resp, err, "Erro ao pagar fatura")
}
