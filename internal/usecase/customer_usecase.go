package usecase

import (
	"context"
	"errors"
	"strings"

	"assistec/internal/domain/entities"
	"assistec/internal/infrastructure/logger"
	"assistec/internal/usecase/interfaces"
)

var (
	ErrInvalidCustomerID    = errors.New("invalid customer id")
	ErrInvalidCustomerInput = errors.New("invalid customer input")
)

type ICustomerUseCase interface {
	List(ctx context.Context, filters map[string]any) (entities.Page[entities.Customer], error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	Update(ctx context.Context, id string, c entities.Customer) (entities.Customer, error)
	Delete(ctx context.Context, id string) error
}

type CustomerUseCase struct {
	service interfaces.ICustomerService
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(service interfaces.ICustomerService) *CustomerUseCase {
	return &CustomerUseCase{service: service}
}

func (u *CustomerUseCase) List(ctx context.Context, filters map[string]any) (entities.Page[entities.Customer], error) {
	page, err := u.service.List(ctx, withPagination(filters))
	if err != nil {
		return entities.Page[entities.Customer]{}, err
	}
	return ensureItems(page), nil
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	id, err := requireID(id, ErrInvalidCustomerID)
	if err != nil {
		return entities.Customer{}, err
	}
	return u.service.GetByID(ctx, id)
}

func (u *CustomerUseCase) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	c = normalizeCustomer(c)
	if err := validateCustomer(c); err != nil {
		return entities.Customer{}, err
	}
	created, err := u.service.Create(ctx, c)
	if err != nil {
		logger.For("customer.usecase").Warn().Err(err).Msg("create failed")
		return entities.Customer{}, err
	}
	logger.For("customer.usecase").Info().Str("customer_id", created.ID.String()).Msg("customer created")
	return created, nil
}

func (u *CustomerUseCase) Update(ctx context.Context, id string, c entities.Customer) (entities.Customer, error) {
	id, err := requireID(id, ErrInvalidCustomerID)
	if err != nil {
		return entities.Customer{}, err
	}
	c = normalizeCustomer(c)
	if err := validateCustomer(c); err != nil {
		return entities.Customer{}, err
	}
	return u.service.Update(ctx, id, c)
}

func (u *CustomerUseCase) Delete(ctx context.Context, id string) error {
	id, err := requireID(id, ErrInvalidCustomerID)
	if err != nil {
		return err
	}
	if err := u.service.Delete(ctx, id); err != nil {
		logger.For("customer.usecase").Warn().Str("customer_id", id).Err(err).Msg("delete failed")
		return err
	}
	return nil
}

func normalizeCustomer(c entities.Customer) entities.Customer {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Document = strings.TrimSpace(c.Document)
	c.State = strings.ToUpper(strings.TrimSpace(c.State))
	return c
}

func validateCustomer(c entities.Customer) error {
	var errs fieldErrors
	if c.Name == "" {
		errs.add("nome", "Nome é obrigatório")
	}
	if c.Email != "" && !validEmail(c.Email) {
		errs.add("email", "Email inválido")
	}
	if c.State != "" && len(c.State) != 2 {
		errs.add("estado", "Use a sigla do estado (UF)")
	}
	return errs.err(ErrInvalidCustomerInput)
}
