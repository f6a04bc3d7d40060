package interfaces

import "context"

// INotificationSender delivers a WhatsApp text to a customer phone and
// returns the provider message id.
type INotificationSender interface {
	SendWhatsApp(ctx context.Context, phone, body string) (string, error)
}
