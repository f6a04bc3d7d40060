package entities

// WhatsAppStatus is the connection state of the shop's WhatsApp session.
type WhatsAppStatus struct {
	Connected bool   `json:"conectado"`
	State     string `json:"status"`
	Phone     string `json:"numero,omitempty"`
	Name      string `json:"nome,omitempty"`
}

type WhatsAppQRCode struct {
	QRCode    string `json:"qrcode"`
	ExpiresIn int    `json:"expira_em,omitempty"`
}

type OutgoingMessage struct {
	Phone   string `json:"telefone"`
	Message string `json:"mensagem"`
}

// BotRule answers with Response when any keyword occurs in the message.
type BotRule struct {
	Keywords []string `json:"palavras_chave"`
	Response string   `json:"resposta"`
}

type BotConfig struct {
	Enabled         bool      `json:"ativo"`
	WelcomeMessage  string    `json:"mensagem_boas_vindas"`
	FallbackMessage string    `json:"mensagem_padrao"`
	BusinessHours   string    `json:"horario_atendimento,omitempty"`
	Rules           []BotRule `json:"regras"`
}

// BotReply is the simulated answer to a test message.
type BotReply struct {
	Message string `json:"mensagem"`
	Reply   string `json:"resposta"`
	Matched bool   `json:"correspondeu"`
	Keyword string `json:"palavra_chave,omitempty"`
}
