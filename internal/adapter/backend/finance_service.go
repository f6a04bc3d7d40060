package backend

import (
	"context"

	"assistec/internal/domain/entities"
	"assistec/internal/infrastructure/httpclient"
	"assistec/internal/usecase/interfaces"
)

var financeLabels = map[entities.EntryKind]string{
	entities.EntryKindCashFlow:   "lançamento",
	entities.EntryKindPayable:    "conta a pagar",
	entities.EntryKindReceivable: "conta a receber",
}

type FinanceService struct {
	c *httpclient.Client
}

var _ interfaces.IFinanceService = (*FinanceService)(nil)

func NewFinanceService(c *httpclient.Client) *FinanceService {
	return &FinanceService{c: c}
}

func financePath(kind entities.EntryKind) string {
	return "/financeiro/" + string(kind)
}

func (s *FinanceService) List(ctx context.Context, kind entities.EntryKind, filters map[string]any) (entities.Page[entities.FinancialEntry], error) {
	resp, err := s.c.Get(ctx, withQuery(financePath(kind), filters))
	return fetchPage[entities.FinancialEntry](resp, err, "Erro ao carregar "+plural(kind))
}

func (s *FinanceService) Create(ctx context.Context, kind entities.EntryKind, e entities.FinancialEntry) (entities.FinancialEntry, error) {
	resp, err := s.c.Post(ctx, financePath(kind), e)
	return fetch[entities.FinancialEntry](resp, err, "Erro ao criar "+financeLabels[kind])
}

func (s *FinanceService) Update(ctx context.Context, kind entities.EntryKind, id string, e entities.FinancialEntry) (entities.FinancialEntry, error) {
	resp, err := s.c.Put(ctx, financePath(kind)+"/"+seg(id), e)
	return fetch[entities.FinancialEntry](resp, err, "Erro ao atualizar "+financeLabels[kind])
}

func (s *FinanceService) Delete(ctx context.Context, kind entities.EntryKind, id string) error {
	_, err := s.c.Delete(ctx, financePath(kind)+"/"+seg(id))
	return httpclient.Normalize(err, "Erro ao excluir "+financeLabels[kind])
}

// Settle marks a payable as paid or a receivable as received.
func (s *FinanceService) Settle(ctx context.Context, kind entities.EntryKind, id string, st entities.Settlement) (entities.FinancialEntry, error) {
	action, fallback := "/receber", "Erro ao registrar recebimento"
	if kind == entities.EntryKindPayable {
		action, fallback = "/pagar", "Erro ao registrar pagamento"
	}
	resp, err := s.c.Patch(ctx, financePath(kind)+"/"+seg(id)+action, st)
	return fetch[entities.FinancialEntry](resp, err, fallback)
}

func (s *FinanceService) Categories(ctx context.Context, filters map[string]any) ([]entities.FinanceCategory, error) {
	resp, err := s.c.Get(ctx, withQuery("/financeiro/categorias", filters))
	items, _, err := fetchList[entities.FinanceCategory](resp, err, "Erro ao carregar categorias financeiras")
	return items, err
}

func (s *FinanceService) Summary(ctx context.Context, filters map[string]any) (entities.FinanceSummary, error) {
	resp, err := s.c.Get(ctx, withQuery("/financeiro/resumo", filters))
	return fetch[entities.FinanceSummary](resp, err, "Erro ao carregar resumo financeiro")
}

func plural(kind entities.EntryKind) string {
	switch kind {
	case entities.EntryKindPayable:
		return "contas a pagar"
	case entities.EntryKindReceivable:
		return "contas a receber"
	}
	return "fluxo de caixa"
}
