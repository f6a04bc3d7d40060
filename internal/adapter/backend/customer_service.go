package backend

import (
	"context"

	"assistec/internal/domain/entities"
	"assistec/internal/infrastructure/httpclient"
	"assistec/internal/usecase/interfaces"
)

type CustomerService struct {
	c *httpclient.Client
}

var _ interfaces.ICustomerService = (*CustomerService)(nil)

func NewCustomerService(c *httpclient.Client) *CustomerService {
	return &CustomerService{c: c}
}

func (s *CustomerService) List(ctx context.Context, filters map[string]any) (entities.Page[entities.Customer], error) {
	resp, err := s.c.Get(ctx, withQuery("/clientes", filters))
	return fetchPage[entities.Customer](resp, err, "Erro ao carregar clientes")
}

func (s *CustomerService) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	resp, err := s.c.Get(ctx, "/clientes/"+seg(id))
	return fetch[entities.Customer](resp, err, "Erro ao carregar cliente")
}

func (s *CustomerService) Create(ctx context.Context, in entities.Customer) (entities.Customer, error) {
	resp, err := s.c.Post(ctx, "/clientes", in)
	return fetch[entities.Customer](resp, err, "Erro ao criar cliente")
}

func (s *CustomerService) Update(ctx context.Context, id string, in entities.Customer) (entities.Customer, error) {
	resp, err := s.c.Put(ctx, "/clientes/"+seg(id), in)
	return fetch[entities.Customer](resp, err, "Erro ao atualizar cliente")
}

func (s *CustomerService) Delete(ctx context.Context, id string) error {
	_, err := s.c.Delete(ctx, "/clientes/"+seg(id))
	return httpclient.Normalize(err, "Erro ao excluir cliente")
}
