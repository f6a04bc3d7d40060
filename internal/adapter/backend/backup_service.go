package backend

import (
	"context"
	"mime"

	"assistec/internal/domain/entities"
	"assistec/internal/infrastructure/httpclient"
	"assistec/internal/usecase/interfaces"
)

type BackupService struct {
	c *httpclient.Client
}

var _ interfaces.IBackupService = (*BackupService)(nil)

func NewBackupService(c *httpclient.Client) *BackupService {
	return &BackupService{c: c}
}

func (s *BackupService) List(ctx context.Context) ([]entities.Backup, error) {
	resp, err := s.c.Get(ctx, "/backup")
	items, _, err := fetchList[entities.Backup](resp, err, "Erro ao carregar backups")
	return items, err
}

func (s *BackupService) Create(ctx context.Context, t entities.BackupType) (entities.Backup, error) {
	resp, err := s.c.Post(ctx, "/backup/create", map[string]any{"type": t})
	return fetch[entities.Backup](resp, err, "Erro ao criar backup")
}

func (s *BackupService) Restore(ctx context.Context, filename string) error {
	_, err := s.c.Post(ctx, "/backup/restore/"+seg(filename), nil)
	return httpclient.Normalize(err, "Erro ao restaurar backup")
}

func (s *BackupService) Delete(ctx context.Context, filename string) error {
	_, err := s.c.Delete(ctx, "/backup/"+seg(filename))
	return httpclient.Normalize(err, "Erro ao excluir backup")
}

func (s *BackupService) Download(ctx context.Context, filename string) (entities.BackupFile, error) {
	resp, err := s.c.Download(ctx, "/backup/download/"+seg(filename))
	if err != nil {
		return entities.BackupFile{}, httpclient.Normalize(err, "Erro ao baixar backup")
	}
	file := entities.BackupFile{
		Filename:    filename,
		ContentType: resp.Header.Get("Content-Type"),
		Data:        resp.Body,
	}
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil && params["filename"] != "" {
		file.Filename = params["filename"]
	}
	return file, nil
}

func (s *BackupService) Status(ctx context.Context) (entities.BackupStatus, error) {
	resp, err := s.c.Get(ctx, "/backup/status")
	return fetch[entities.BackupStatus](resp, err, "Erro ao carregar status do backup")
}
