package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"assistec/internal/domain/entities"
	"assistec/internal/infrastructure/logger"
	"assistec/internal/usecase/interfaces"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	ErrInvalidMessage   = errors.New("invalid whatsapp message")
	ErrInvalidBotConfig = errors.New("invalid bot config")
)

const defaultBotFallback = "Desculpe, não entendi. Um atendente vai responder em breve."

type IWhatsAppUseCase interface {
	Status(ctx context.Context) (entities.WhatsAppStatus, error)
	QRCode(ctx context.Context) (entities.WhatsAppQRCode, error)
	Disconnect(ctx context.Context) error
	SendMessage(ctx context.Context, msg entities.OutgoingMessage) error
	BotConfig(ctx context.Context) (entities.BotConfig, error)
	UpdateBotConfig(ctx context.Context, cfg entities.BotConfig) (entities.BotConfig, error)
	SimulateBot(ctx context.Context, message string) (entities.BotReply, error)
}

type WhatsAppUseCase struct {
	service interfaces.IWhatsAppService
}

var _ IWhatsAppUseCase = (*WhatsAppUseCase)(nil)

func NewWhatsAppUseCase(service interfaces.IWhatsAppService) *WhatsAppUseCase {
	return &WhatsAppUseCase{service: service}
}

func (u *WhatsAppUseCase) Status(ctx context.Context) (entities.WhatsAppStatus, error) {
	return u.service.Status(ctx)
}

func (u *WhatsAppUseCase) QRCode(ctx context.Context) (entities.WhatsAppQRCode, error) {
	return u.service.QRCode(ctx)
}

func (u *WhatsAppUseCase) Disconnect(ctx context.Context) error {
	if err := u.service.Disconnect(ctx); err != nil {
		return err
	}
	logger.For("whatsapp.usecase").Info().Msg("session disconnected")
	return nil
}

func (u *WhatsAppUseCase) SendMessage(ctx context.Context, msg entities.OutgoingMessage) error {
	msg.Phone = strings.TrimSpace(msg.Phone)
	msg.Message = strings.TrimSpace(msg.Message)

	var errs fieldErrors
	if digits(msg.Phone) < 10 {
		errs.add("telefone", "Telefone inválido")
	}
	if msg.Message == "" {
		errs.add("mensagem", "Mensagem é obrigatória")
	}
	if err := errs.err(ErrInvalidMessage); err != nil {
		return err
	}
	return u.service.SendMessage(ctx, msg)
}

func (u *WhatsAppUseCase) BotConfig(ctx context.Context) (entities.BotConfig, error) {
	cfg, err := u.service.BotConfig(ctx)
	if err != nil {
		return entities.BotConfig{}, err
	}
	if cfg.Rules == nil {
		cfg.Rules = []entities.BotRule{}
	}
	return cfg, nil
}

func (u *WhatsAppUseCase) UpdateBotConfig(ctx context.Context, cfg entities.BotConfig) (entities.BotConfig, error) {
	cfg = normalizeBotConfig(cfg)

	var errs fieldErrors
	for i, r := range cfg.Rules {
		if len(r.Keywords) == 0 {
			errs.add(ruleField(i, "palavras_chave"), "Informe ao menos uma palavra-chave")
		}
		if r.Response == "" {
			errs.add(ruleField(i, "resposta"), "Resposta é obrigatória")
		}
	}
	if err := errs.err(ErrInvalidBotConfig); err != nil {
		return entities.BotConfig{}, err
	}
	return u.service.UpdateBotConfig(ctx, cfg)
}

// SimulateBot answers message with the stored bot configuration.
func (u *WhatsAppUseCase) SimulateBot(ctx context.Context, message string) (entities.BotReply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return entities.BotReply{}, (fieldErrors{{Field: "mensagem", Message: "Mensagem é obrigatória"}}).err(ErrInvalidMessage)
	}
	cfg, err := u.service.BotConfig(ctx)
	if err != nil {
		return entities.BotReply{}, err
	}
	return MatchBotReply(cfg, message), nil
}

// MatchBotReply returns the response of the first rule with a keyword found
// in message, ignoring case and accents. Without a match it answers with the
// fallback message.
func MatchBotReply(cfg entities.BotConfig, message string) entities.BotReply {
	reply := entities.BotReply{Message: message}
	folded := fold(message)
	for _, rule := range cfg.Rules {
		for _, kw := range rule.Keywords {
			k := fold(kw)
			if k == "" || !strings.Contains(folded, k) {
				continue
			}
			reply.Reply = rule.Response
			reply.Matched = true
			reply.Keyword = kw
			return reply
		}
	}
	reply.Reply = cfg.FallbackMessage
	if reply.Reply == "" {
		reply.Reply = defaultBotFallback
	}
	return reply
}

func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

func normalizeBotConfig(cfg entities.BotConfig) entities.BotConfig {
	cfg.WelcomeMessage = strings.TrimSpace(cfg.WelcomeMessage)
	cfg.FallbackMessage = strings.TrimSpace(cfg.FallbackMessage)
	rules := make([]entities.BotRule, 0, len(cfg.Rules))
	for _, r := range cfg.Rules {
		kws := make([]string, 0, len(r.Keywords))
		for _, k := range r.Keywords {
			if k = strings.TrimSpace(k); k != "" {
				kws = append(kws, k)
			}
		}
		rules = append(rules, entities.BotRule{Keywords: kws, Response: strings.TrimSpace(r.Response)})
	}
	cfg.Rules = rules
	return cfg
}

func ruleField(i int, name string) string {
	return fmt.Sprintf("regras.%d.%s", i, name)
}

func digits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
