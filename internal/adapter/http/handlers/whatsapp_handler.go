package handlers

import (
	"net/http"

	"assistec/internal/adapter/http/dto/request"
	"assistec/internal/domain/entities"
	"assistec/internal/usecase"

	"github.com/gin-gonic/gin"
)

// WhatsAppHandler handles /v1/whatsapp.
type WhatsAppHandler struct {
	usecase usecase.IWhatsAppUseCase
}

func NewWhatsAppHandler(uc usecase.IWhatsAppUseCase) *WhatsAppHandler {
	return &WhatsAppHandler{usecase: uc}
}

func (h *WhatsAppHandler) Status(c *gin.Context) {
	status, err := h.usecase.Status(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

func (h *WhatsAppHandler) QRCode(c *gin.Context) {
	qr, err := h.usecase.QRCode(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, qr)
}

func (h *WhatsAppHandler) Disconnect(c *gin.Context) {
	if err := h.usecase.Disconnect(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WhatsAppHandler) Send(c *gin.Context) {
	var msg entities.OutgoingMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		badJSON(c)
		return
	}
	if err := h.usecase.SendMessage(c.Request.Context(), msg); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Mensagem enviada"})
}

func (h *WhatsAppHandler) BotConfig(c *gin.Context) {
	cfg, err := h.usecase.BotConfig(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

func (h *WhatsAppHandler) UpdateBotConfig(c *gin.Context) {
	var cfg entities.BotConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		badJSON(c)
		return
	}
	saved, err := h.usecase.UpdateBotConfig(c.Request.Context(), cfg)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// SimulateBot answers a test message with the configured rules.
func (h *WhatsAppHandler) SimulateBot(c *gin.Context) {
	var req request.BotSimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	reply, err := h.usecase.SimulateBot(c.Request.Context(), req.Message)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reply)
}
