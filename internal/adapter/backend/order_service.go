package backend

import (
	"context"

	"assistec/internal/domain/entities"
	"assistec/internal/infrastructure/httpclient"
	"assistec/internal/usecase/interfaces"
)

// photoField is the multipart field the backend reads order photos from.
const photoField = "fotos"

type OrderService struct {
	c *httpclient.Client
}

var _ interfaces.IOrderService = (*OrderService)(nil)

func NewOrderService(c *httpclient.Client) *OrderService {
	return &OrderService{c: c}
}

func (s *OrderService) List(ctx context.Context, filters map[string]any) (entities.Page[entities.ServiceOrder], error) {
	resp, err := s.c.Get(ctx, withQuery("/ordens", filters))
	return fetchPage[entities.ServiceOrder](resp, err, "Erro ao carregar ordens de serviço")
}

func (s *OrderService) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	resp, err := s.c.Get(ctx, "/ordens/"+seg(id))
	return fetch[entities.ServiceOrder](resp, err, "Erro ao carregar ordem de serviço")
}

func (s *OrderService) Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	resp, err := s.c.Post(ctx, "/ordens", o)
	return fetch[entities.ServiceOrder](resp, err, "Erro ao criar ordem de serviço")
}

func (s *OrderService) Update(ctx context.Context, id string, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	resp, err := s.c.Put(ctx, "/ordens/"+seg(id), o)
	return fetch[entities.ServiceOrder](resp, err, "Erro ao atualizar ordem de serviço")
}

func (s *OrderService) Delete(ctx context.Context, id string) error {
	_, err := s.c.Delete(ctx, "/ordens/"+seg(id))
	return httpclient.Normalize(err, "Erro ao excluir ordem de serviço")
}

func (s *OrderService) UpdateStatus(ctx context.Context, id string, change entities.StatusChange) (entities.ServiceOrder, error) {
	resp, err := s.c.Patch(ctx, "/ordens/"+seg(id)+"/status", change)
	return fetch[entities.ServiceOrder](resp, err, "Erro ao atualizar status da ordem")
}

func (s *OrderService) History(ctx context.Context, id string) ([]entities.OrderHistoryEntry, error) {
	resp, err := s.c.Get(ctx, "/ordens/"+seg(id)+"/historico")
	items, _, err := fetchList[entities.OrderHistoryEntry](resp, err, "Erro ao carregar histórico da ordem")
	return items, err
}

func (s *OrderService) Stats(ctx context.Context, filters map[string]any) (entities.OrderStats, error) {
	resp, err := s.c.Get(ctx, withQuery("/ordens/stats", filters))
	return fetch[entities.OrderStats](resp, err, "Erro ao carregar estatísticas das ordens")
}

func (s *OrderService) UploadPhotos(ctx context.Context, id string, photos []entities.PhotoUpload) ([]entities.OrderPhoto, error) {
	files := make([]httpclient.FilePart, 0, len(photos))
	for _, p := range photos {
		files = append(files, httpclient.FilePart{
			Field:       photoField,
			Filename:    p.Filename,
			ContentType: p.ContentType,
			Data:        p.Data,
		})
	}
	resp, err := s.c.Upload(ctx, "/ordens/"+seg(id)+"/fotos", nil, files)
	items, _, err := fetchList[entities.OrderPhoto](resp, err, "Erro ao enviar fotos")
	return items, err
}

func (s *OrderService) DeletePhoto(ctx context.Context, id, photoID string) error {
	_, err := s.c.Delete(ctx, "/ordens/"+seg(id)+"/fotos/"+seg(photoID))
	return httpclient.Normalize(err, "Erro ao excluir foto")
}
