package usecase

import (
	"context"
	"errors"
	"strings"

	"assistec/internal/domain/entities"
	"assistec/internal/infrastructure/logger"
	"assistec/internal/usecase/interfaces"
)

var ErrInvalidPlanID = errors.New("invalid plan id")

type IBillingUseCase interface {
	Plans(ctx context.Context) ([]entities.Plan, error)
	Subscription(ctx context.Context) (entities.Subscription, error)
	ChangePlan(ctx context.Context, planID string) (entities.Subscription, error)
	CancelSubscription(ctx context.Context) (entities.Subscription, error)
	Invoices(ctx context.Context, filters map[string]any) (entities.Page[entities.Invoice], error)
	GetInvoice(ctx context.Context, id string) (entities.Invoice, error)
}

type BillingUseCase struct {
	service interfaces.IBillingService
}

var _ IBillingUseCase = (*BillingUseCase)(nil)

func NewBillingUseCase(service interfaces.IBillingService) *BillingUseCase {
	return &BillingUseCase{service: service}
}

func (u *BillingUseCase) Plans(ctx context.Context) ([]entities.Plan, error) {
	plans, err := u.service.Plans(ctx)
	if err != nil {
		return nil, err
	}
	if plans == nil {
		plans = []entities.Plan{}
	}
	return plans, nil
}

func (u *BillingUseCase) Subscription(ctx context.Context) (entities.Subscription, error) {
	return u.service.Subscription(ctx)
}

func (u *BillingUseCase) ChangePlan(ctx context.Context, planID string) (entities.Subscription, error) {
	planID = strings.TrimSpace(planID)
	if planID == "" {
		return entities.Subscription{}, ErrInvalidPlanID
	}
	sub, err := u.service.ChangePlan(ctx, planID)
	if err != nil {
		return entities.Subscription{}, err
	}
	logger.For("billing.usecase").Info().Str("plan_id", planID).Msg("plan changed")
	return sub, nil
}

func (u *BillingUseCase) CancelSubscription(ctx context.Context) (entities.Subscription, error) {
	sub, err := u.service.CancelSubscription(ctx)
	if err != nil {
		return entities.Subscription{}, err
	}
	logger.For("billing.usecase").Warn().Str("subscription_id", sub.ID.String()).Msg("subscription cancelled")
	return sub, nil
}

func (u *BillingUseCase) Invoices(ctx context.Context, filters map[string]any) (entities.Page[entities.Invoice], error) {
	page, err := u.service.Invoices(ctx, withPagination(filters))
	if err != nil {
		return entities.Page[entities.Invoice]{}, err
	}
	return ensureItems(page), nil
}

func (u *BillingUseCase) GetInvoice(ctx context.Context, id string) (entities.Invoice, error) {
	id, err := requireID(id, ErrInvalidInvoiceID)
	if err != nil {
		return entities.Invoice{}, err
	}
	return u.service.GetInvoice(ctx, id)
}
