package backend

import (
	"context"

	"assistec/internal/domain/entities"
	"assistec/internal/infrastructure/httpclient"
	"assistec/internal/usecase/interfaces"
)

type ProductService struct {
	c *httpclient.Client
}

var _ interfaces.IProductService = (*ProductService)(nil)

func NewProductService(c *httpclient.Client) *ProductService {
	return &ProductService{c: c}
}

func (s *ProductService) List(ctx context.Context, filters map[string]any) (entities.Page[entities.Product], error) {
	resp, err := s.c.Get(ctx, withQuery("/produtos", filters))
	return fetchPage[entities.Product](resp, err, "Erro ao carregar produtos")
}

func (s *ProductService) GetByID(ctx context.Context, id string) (entities.Product, error) {
	resp, err := s.c.Get(ctx, "/produtos/"+seg(id))
	return fetch[entities.Product](resp, err, "Erro ao carregar produto")
}

func (s *ProductService) Create(ctx context.Context, p entities.ProductInput) (entities.Product, error) {
	resp, err := s.c.Post(ctx, "/produtos", p)
	return fetch[entities.Product](resp, err, "Erro ao criar produto")
}

func (s *ProductService) Update(ctx context.Context, id string, p entities.ProductInput) (entities.Product, error) {
	resp, err := s.c.Put(ctx, "/produtos/"+seg(id), p)
	return fetch[entities.Product](resp, err, "Erro ao atualizar produto")
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	_, err := s.c.Delete(ctx, "/produtos/"+seg(id))
	return httpclient.Normalize(err, "Erro ao excluir produto")
}

func (s *ProductService) Categories(ctx context.Context) ([]entities.Category, error) {
	resp, err := s.c.Get(ctx, "/produtos/categorias")
	items, _, err := fetchList[entities.Category](resp, err, "Erro ao carregar categorias")
	return items, err
}

func (s *ProductService) CreateCategory(ctx context.Context, c entities.Category) (entities.Category, error) {
	resp, err := s.c.Post(ctx, "/produtos/categorias", c)
	return fetch[entities.Category](resp, err, "Erro ao criar categoria")
}

func (s *ProductService) Alerts(ctx context.Context) ([]entities.StockAlert, error) {
	resp, err := s.c.Get(ctx, "/produtos/alertas")
	items, _, err := fetchList[entities.StockAlert](resp, err, "Erro ao carregar alertas de estoque")
	return items, err
}

func (s *ProductService) MoveStock(ctx context.Context, id string, m entities.StockMovement) (entities.StockMovement, error) {
	resp, err := s.c.Post(ctx, "/produtos/"+seg(id)+"/movimentar", m)
	return fetch[entities.StockMovement](resp, err, "Erro ao movimentar estoque")
}

func (s *ProductService) Movements(ctx context.Context, id string, filters map[string]any) (entities.Page[entities.StockMovement], error) {
	resp, err := s.c.Get(ctx, withQuery("/produtos/"+seg(id)+"/movimentacoes", filters))
	return fetchPage[entities.StockMovement](resp, err, "Erro ao carregar movimentações")
}
