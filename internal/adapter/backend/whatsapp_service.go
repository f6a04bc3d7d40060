package backend

import (
	"context"

	"assistec/internal/domain/entities"
	"assistec/internal/infrastructure/httpclient"
	"assistec/internal/usecase/interfaces"
)

type WhatsAppService struct {
	c *httpclient.Client
}

var _ interfaces.IWhatsAppService = (*WhatsAppService)(nil)

func NewWhatsAppService(c *httpclient.Client) *WhatsAppService {
	return &WhatsAppService{c: c}
}

func (s *WhatsAppService) Status(ctx context.Context) (entities.WhatsAppStatus, error) {
	resp, err := s.c.Get(ctx, "/whatsapp/status")
	return fetch[entities.WhatsAppStatus](resp, err, "Erro ao verificar status do WhatsApp")
}

func (s *WhatsAppService) QRCode(ctx context.Context) (entities.WhatsAppQRCode, error) {
	resp, err := s.c.Get(ctx, "/whatsapp/qrcode")
	return fetch[entities.WhatsAppQRCode](resp, err, "Erro ao gerar QR Code")
}

func (s *WhatsAppService) Disconnect(ctx context.Context) error {
	_, err := s.c.Post(ctx, "/whatsapp/disconnect", nil)
	return httpclient.Normalize(err, "Erro ao desconectar WhatsApp")
}

func (s *WhatsAppService) SendMessage(ctx context.Context, msg entities.OutgoingMessage) error {
	_, err := s.c.Post(ctx, "/whatsapp/send", msg)
	return httpclient.Normalize(err, "Erro ao enviar mensagem")
}

func (s *WhatsAppService) BotConfig(ctx context.Context) (entities.BotConfig, error) {
	resp, err := s.c.Get(ctx, "/whatsapp/bot/config")
	return fetch[entities.BotConfig](resp, err, "Erro ao carregar configuração do bot")
}

func (s *WhatsAppService) UpdateBotConfig(ctx context.Context, cfg entities.BotConfig) (entities.BotConfig, error) {
	resp, err := s.c.Put(ctx, "/whatsapp/bot/config", cfg)
	return fetch[entities.BotConfig](resp, err, "Erro ao salvar configuração do bot")
}
