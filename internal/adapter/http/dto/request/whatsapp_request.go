package request

type BotSimulateRequest struct {
	Message string `json:"mensagem" binding:"required"`
}
