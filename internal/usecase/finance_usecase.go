package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"assistec/internal/domain/entities"
	"assistec/internal/infrastructure/logger"
	"assistec/internal/usecase/interfaces"
)

// DueSoonWindow is how far ahead an open entry is flagged as due soon.
const DueSoonWindow = 7 * 24 * time.Hour

var (
	ErrInvalidEntryKind   = errors.New("invalid financial entry kind")
	ErrInvalidEntryID     = errors.New("invalid financial entry id")
	ErrInvalidEntryInput  = errors.New("invalid financial entry input")
	ErrInvalidSettlement  = errors.New("invalid settlement")
	ErrSettleCashFlowKind = errors.New("cash flow entries cannot be settled")
)

type IFinanceUseCase interface {
	List(ctx context.Context, kind entities.EntryKind, filters map[string]any) (entities.Page[entities.FinancialEntry], error)
	Create(ctx context.Context, kind entities.EntryKind, e entities.FinancialEntry) (entities.FinancialEntry, error)
	Update(ctx context.Context, kind entities.EntryKind, id string, e entities.FinancialEntry) (entities.FinancialEntry, error)
	Delete(ctx context.Context, kind entities.EntryKind, id string) error
	Settle(ctx context.Context, kind entities.EntryKind, id string, s entities.Settlement) (entities.FinancialEntry, error)
	Categories(ctx context.Context, filters map[string]any) ([]entities.FinanceCategory, error)
	Summary(ctx context.Context, filters map[string]any) (entities.FinanceSummary, error)
}

type FinanceUseCase struct {
	service interfaces.IFinanceService
	now     func() time.Time
}

var _ IFinanceUseCase = (*FinanceUseCase)(nil)

func NewFinanceUseCase(service interfaces.IFinanceService) *FinanceUseCase {
	return &FinanceUseCase{service: service, now: time.Now}
}

// List decorates every entry with its display status; the stored status is
// left untouched.
func (u *FinanceUseCase) List(ctx context.Context, kind entities.EntryKind, filters map[string]any) (entities.Page[entities.FinancialEntry], error) {
	if !kind.Valid() {
		return entities.Page[entities.FinancialEntry]{}, ErrInvalidEntryKind
	}
	page, err := u.service.List(ctx, kind, withPagination(filters))
	if err != nil {
		return entities.Page[entities.FinancialEntry]{}, err
	}
	page = ensureItems(page)
	today := u.now()
	for i := range page.Items {
		page.Items[i].DisplayStatus = DisplayStatus(page.Items[i], today)
	}
	return page, nil
}

func (u *FinanceUseCase) Create(ctx context.Context, kind entities.EntryKind, e entities.FinancialEntry) (entities.FinancialEntry, error) {
	if !kind.Valid() {
		return entities.FinancialEntry{}, ErrInvalidEntryKind
	}
	e = normalizeEntry(kind, e)
	if err := validateEntry(kind, e); err != nil {
		return entities.FinancialEntry{}, err
	}
	created, err := u.service.Create(ctx, kind, e)
	if err != nil {
		return entities.FinancialEntry{}, err
	}
	logger.For("finance.usecase").Info().
		Str("kind", string(kind)).
		Str("entry_id", created.ID.String()).
		Float64("amount", created.Amount).
		Msg("entry created")
	created.DisplayStatus = DisplayStatus(created, u.now())
	return created, nil
}

func (u *FinanceUseCase) Update(ctx context.Context, kind entities.EntryKind, id string, e entities.FinancialEntry) (entities.FinancialEntry, error) {
	if !kind.Valid() {
		return entities.FinancialEntry{}, ErrInvalidEntryKind
	}
	id, err := requireID(id, ErrInvalidEntryID)
	if err != nil {
		return entities.FinancialEntry{}, err
	}
	e = normalizeEntry(kind, e)
	if err := validateEntry(kind, e); err != nil {
		return entities.FinancialEntry{}, err
	}
	updated, err := u.service.Update(ctx, kind, id, e)
	if err != nil {
		return entities.FinancialEntry{}, err
	}
	updated.DisplayStatus = DisplayStatus(updated, u.now())
	return updated, nil
}

func (u *FinanceUseCase) Delete(ctx context.Context, kind entities.EntryKind, id string) error {
	if !kind.Valid() {
		return ErrInvalidEntryKind
	}
	id, err := requireID(id, ErrInvalidEntryID)
	if err != nil {
		return err
	}
	return u.service.Delete(ctx, kind, id)
}

// Settle pays a payable or receives a receivable. PaidDate defaults to
// today.
func (u *FinanceUseCase) Settle(ctx context.Context, kind entities.EntryKind, id string, s entities.Settlement) (entities.FinancialEntry, error) {
	if !kind.Valid() {
		return entities.FinancialEntry{}, ErrInvalidEntryKind
	}
	if kind == entities.EntryKindCashFlow {
		return entities.FinancialEntry{}, ErrSettleCashFlowKind
	}
	id, err := requireID(id, ErrInvalidEntryID)
	if err != nil {
		return entities.FinancialEntry{}, err
	}

	s.PaidDate = strings.TrimSpace(s.PaidDate)
	if s.PaidDate == "" {
		s.PaidDate = u.now().Format("2006-01-02")
	}
	var errs fieldErrors
	if !validDate(s.PaidDate) {
		errs.add("data_pagamento", "Data inválida")
	}
	if s.Amount < 0 {
		errs.add("valor", "Valor não pode ser negativo")
	}
	if err := errs.err(ErrInvalidSettlement); err != nil {
		return entities.FinancialEntry{}, err
	}

	settled, err := u.service.Settle(ctx, kind, id, s)
	if err != nil {
		return entities.FinancialEntry{}, err
	}
	logger.For("finance.usecase").Info().
		Str("kind", string(kind)).
		Str("entry_id", id).
		Str("paid_date", s.PaidDate).
		Msg("entry settled")
	settled.DisplayStatus = DisplayStatus(settled, u.now())
	return settled, nil
}

func (u *FinanceUseCase) Categories(ctx context.Context, filters map[string]any) ([]entities.FinanceCategory, error) {
	cats, err := u.service.Categories(ctx, filters)
	if err != nil {
		return nil, err
	}
	if cats == nil {
		cats = []entities.FinanceCategory{}
	}
	return cats, nil
}

func (u *FinanceUseCase) Summary(ctx context.Context, filters map[string]any) (entities.FinanceSummary, error) {
	return u.service.Summary(ctx, filters)
}

// DisplayStatus derives the status shown next to an entry. Settled and
// cancelled entries keep their status; open ones are overdue, due soon or
// pending depending on the due date relative to today.
func DisplayStatus(e entities.FinancialEntry, today time.Time) entities.EntryStatus {
	switch e.Status {
	case entities.EntryStatusPago, entities.EntryStatusRecebido:
		return entities.EntryStatusPago
	case entities.EntryStatusCancelado:
		return entities.EntryStatusCancelado
	}
	if e.PaidDate != "" {
		return entities.EntryStatusPago
	}

	due, err := time.ParseInLocation("2006-01-02", e.DueDate, today.Location())
	if err != nil {
		return entities.EntryStatusPendente
	}
	y, m, d := today.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, today.Location())
	switch {
	case due.Before(start):
		return entities.EntryStatusVencido
	case !due.After(start.Add(DueSoonWindow)):
		return entities.EntryStatusVenceEmBreve
	default:
		return entities.EntryStatusPendente
	}
}

func normalizeEntry(kind entities.EntryKind, e entities.FinancialEntry) entities.FinancialEntry {
	e.Description = strings.TrimSpace(e.Description)
	e.Amount = round2(e.Amount)
	e.DisplayStatus = ""
	switch kind {
	case entities.EntryKindPayable:
		e.Type = entities.EntryTypeSaida
	case entities.EntryKindReceivable:
		e.Type = entities.EntryTypeEntrada
	}
	if e.Status == "" && kind != entities.EntryKindCashFlow {
		e.Status = entities.EntryStatusPendente
	}
	return e
}

func validateEntry(kind entities.EntryKind, e entities.FinancialEntry) error {
	var errs fieldErrors
	if e.Description == "" {
		errs.add("descricao", "Descrição é obrigatória")
	}
	if e.Amount <= 0 {
		errs.add("valor", "Valor deve ser maior que zero")
	}
	if e.Type != entities.EntryTypeEntrada && e.Type != entities.EntryTypeSaida {
		errs.add("tipo", "Tipo inválido")
	}
	if kind == entities.EntryKindCashFlow {
		if e.Date == "" {
			errs.add("data", "Data é obrigatória")
		} else if !validDate(e.Date) {
			errs.add("data", "Data inválida")
		}
	} else {
		if e.DueDate == "" {
			errs.add("data_vencimento", "Data de vencimento é obrigatória")
		} else if !validDate(e.DueDate) {
			errs.add("data_vencimento", "Data inválida")
		}
	}
	if e.PaidDate != "" && !validDate(e.PaidDate) {
		errs.add("data_pagamento", "Data inválida")
	}
	return errs.err(ErrInvalidEntryInput)
}
