package interfaces

import (
	"context"

	"assistec/internal/domain/entities"
)

// IInvoicePaymentRepository abstracts DynamoDB persistence for invoice
// payments made through the payment gateway.

type IInvoicePaymentRepository interface {
	Create(ctx context.Context, p entities.InvoicePayment) (entities.InvoicePayment, error)
	GetByID(ctx context.Context, id string) (entities.InvoicePayment, error)
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.InvoicePayment, error)
}
