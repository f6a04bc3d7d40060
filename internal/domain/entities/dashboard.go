package entities

import "time"

// Dashboard is the periodically refreshed snapshot served to the home
// screen. A failed refresh keeps the previous values and records the error.
type Dashboard struct {
	Orders      OrderStats     `json:"ordens"`
	WhatsApp    WhatsAppStatus `json:"whatsapp"`
	RefreshedAt time.Time      `json:"atualizado_em"`
	Errors      []string       `json:"erros,omitempty"`
}
