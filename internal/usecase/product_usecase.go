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
	ErrInvalidProductID     = errors.New("invalid product id")
	ErrInvalidProductInput  = errors.New("invalid product input")
	ErrInvalidCategoryInput = errors.New("invalid category input")
	ErrInvalidMovement      = errors.New("invalid stock movement")
)

type IProductUseCase interface {
	List(ctx context.Context, filters map[string]any) (entities.Page[entities.Product], error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	Create(ctx context.Context, p entities.ProductInput) (entities.Product, error)
	Update(ctx context.Context, id string, p entities.ProductInput) (entities.Product, error)
	Delete(ctx context.Context, id string) error
	Categories(ctx context.Context) ([]entities.Category, error)
	CreateCategory(ctx context.Context, c entities.Category) (entities.Category, error)
	Alerts(ctx context.Context) ([]entities.StockAlert, error)
	MoveStock(ctx context.Context, id string, mv entities.StockMovement) (entities.StockMovement, error)
	Movements(ctx context.Context, id string, filters map[string]any) (entities.Page[entities.StockMovement], error)
}

type ProductUseCase struct {
	service interfaces.IProductService
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(service interfaces.IProductService) *ProductUseCase {
	return &ProductUseCase{service: service}
}

func (u *ProductUseCase) List(ctx context.Context, filters map[string]any) (entities.Page[entities.Product], error) {
	page, err := u.service.List(ctx, withPagination(filters))
	if err != nil {
		return entities.Page[entities.Product]{}, err
	}
	return ensureItems(page), nil
}

func (u *ProductUseCase) GetByID(ctx context.Context, id string) (entities.Product, error) {
	id, err := requireID(id, ErrInvalidProductID)
	if err != nil {
		return entities.Product{}, err
	}
	return u.service.GetByID(ctx, id)
}

func (u *ProductUseCase) Create(ctx context.Context, p entities.ProductInput) (entities.Product, error) {
	p = normalizeProduct(p)
	if p.InitialStock != nil && *p.InitialStock < 0 {
		return entities.Product{}, (fieldErrors{{Field: "estoque_atual", Message: "Estoque inicial não pode ser negativo"}}).err(ErrInvalidProductInput)
	}
	if err := validateProduct(p); err != nil {
		return entities.Product{}, err
	}
	created, err := u.service.Create(ctx, p)
	if err != nil {
		return entities.Product{}, err
	}
	logger.For("product.usecase").Info().Str("product_id", created.ID.String()).Msg("product created")
	return created, nil
}

// Update never sends a stock value: stock only changes through movements.
func (u *ProductUseCase) Update(ctx context.Context, id string, p entities.ProductInput) (entities.Product, error) {
	id, err := requireID(id, ErrInvalidProductID)
	if err != nil {
		return entities.Product{}, err
	}
	p = normalizeProduct(p)
	p.InitialStock = nil
	if err := validateProduct(p); err != nil {
		return entities.Product{}, err
	}
	return u.service.Update(ctx, id, p)
}

func (u *ProductUseCase) Delete(ctx context.Context, id string) error {
	id, err := requireID(id, ErrInvalidProductID)
	if err != nil {
		return err
	}
	return u.service.Delete(ctx, id)
}

func (u *ProductUseCase) Categories(ctx context.Context) ([]entities.Category, error) {
	cats, err := u.service.Categories(ctx)
	if err != nil {
		return nil, err
	}
	if cats == nil {
		cats = []entities.Category{}
	}
	return cats, nil
}

func (u *ProductUseCase) CreateCategory(ctx context.Context, c entities.Category) (entities.Category, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return entities.Category{}, (fieldErrors{{Field: "nome", Message: "Nome é obrigatório"}}).err(ErrInvalidCategoryInput)
	}
	return u.service.CreateCategory(ctx, c)
}

func (u *ProductUseCase) Alerts(ctx context.Context) ([]entities.StockAlert, error) {
	alerts, err := u.service.Alerts(ctx)
	if err != nil {
		return nil, err
	}
	if alerts == nil {
		alerts = []entities.StockAlert{}
	}
	return alerts, nil
}

func (u *ProductUseCase) MoveStock(ctx context.Context, id string, m entities.StockMovement) (entities.StockMovement, error) {
	id, err := requireID(id, ErrInvalidProductID)
	if err != nil {
		return entities.StockMovement{}, err
	}
	m.Reason = strings.TrimSpace(m.Reason)

	var errs fieldErrors
	if !m.Type.Valid() {
		errs.add("tipo", "Tipo de movimentação inválido")
	}
	if m.Quantity <= 0 {
		errs.add("quantidade", "Quantidade deve ser maior que zero")
	}
	if m.Type == entities.MovementAjuste && m.Reason == "" {
		errs.add("motivo", "Informe o motivo do ajuste")
	}
	if err := errs.err(ErrInvalidMovement); err != nil {
		return entities.StockMovement{}, err
	}

	moved, err := u.service.MoveStock(ctx, id, m)
	if err != nil {
		return entities.StockMovement{}, err
	}
	logger.For("product.usecase").Info().
		Str("product_id", id).
		Str("type", string(m.Type)).
		Int("quantity", m.Quantity).
		Msg("stock moved")
	return moved, nil
}

func (u *ProductUseCase) Movements(ctx context.Context, id string, filters map[string]any) (entities.Page[entities.StockMovement], error) {
	id, err := requireID(id, ErrInvalidProductID)
	if err != nil {
		return entities.Page[entities.StockMovement]{}, err
	}
	page, err := u.service.Movements(ctx, id, withPagination(filters))
	if err != nil {
		return entities.Page[entities.StockMovement]{}, err
	}
	return ensureItems(page), nil
}

// ComputeMargin is the markup over cost, in percent, rounded to two places.
// A zero cost yields zero.
func ComputeMargin(cost, sale float64) float64 {
	if cost <= 0 {
		return 0
	}
	return round2((sale - cost) / cost * 100)
}

func normalizeProduct(p entities.ProductInput) entities.ProductInput {
	p.Name = strings.TrimSpace(p.Name)
	p.Code = strings.TrimSpace(p.Code)
	if p.Type == "" {
		p.Type = entities.ProductTypePeca
	}
	p.Margin = ComputeMargin(p.CostPrice, p.SalePrice)
	return p
}

func validateProduct(p entities.ProductInput) error {
	var errs fieldErrors
	if p.Name == "" {
		errs.add("nome", "Nome é obrigatório")
	}
	if !p.Type.Valid() {
		errs.add("tipo", "Tipo inválido")
	}
	if p.CostPrice < 0 {
		errs.add("preco_custo", "Preço de custo não pode ser negativo")
	}
	if p.SalePrice < 0 {
		errs.add("preco_venda", "Preço de venda não pode ser negativo")
	}
	if p.StockMin < 0 {
		errs.add("estoque_minimo", "Estoque mínimo não pode ser negativo")
	}
	if p.StockMax > 0 && p.StockMax < p.StockMin {
		errs.add("estoque_maximo", "Estoque máximo deve ser maior que o mínimo")
	}
	return errs.err(ErrInvalidProductInput)
}
