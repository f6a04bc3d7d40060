package interfaces

import (
	"context"

	"assistec/internal/domain/entities"
)

// Backend resource services. Filters are loose maps; implementations pass
// them through the safe-filter builder before serializing. Every error is an
// *httpclient.APIError carrying the server message or a domain fallback.

type ICustomerService interface {
	List(ctx context.Context, filters map[string]any) (entities.Page[entities.Customer], error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	Update(ctx context.Context, id string, c entities.Customer) (entities.Customer, error)
	Delete(ctx context.Context, id string) error
}

type IOrderService interface {
	List(ctx context.Context, filters map[string]any) (entities.Page[entities.ServiceOrder], error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	Update(ctx context.Context, id string, o entities.ServiceOrder) (entities.ServiceOrder, error)
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id string, change entities.StatusChange) (entities.ServiceOrder, error)
	History(ctx context.Context, id string) ([]entities.OrderHistoryEntry, error)
	Stats(ctx context.Context, filters map[string]any) (entities.OrderStats, error)
	UploadPhotos(ctx context.Context, id string, photos []entities.PhotoUpload) ([]entities.OrderPhoto, error)
	DeletePhoto(ctx context.Context, id, photoID string) error
}

type IProductService interface {
	List(ctx context.Context, filters map[string]any) (entities.Page[entities.Product], error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	Create(ctx context.Context, p entities.ProductInput) (entities.Product, error)
	Update(ctx context.Context, id string, p entities.ProductInput) (entities.Product, error)
	Delete(ctx context.Context, id string) error
	Categories(ctx context.Context) ([]entities.Category, error)
	CreateCategory(ctx context.Context, c entities.Category) (entities.Category, error)
	Alerts(ctx context.Context) ([]entities.StockAlert, error)
	MoveStock(ctx context.Context, id string, mv entities.StockMovement) (entities.StockMovement, error)
	Movements(ctx context.Context, id string, filters map[string]any) (entities.Page[entities.StockMovement], error)
}

type IFinanceService interface {
	List(ctx context.Context, kind entities.EntryKind, filters map[string]any) (entities.Page[entities.FinancialEntry], error)
	Create(ctx context.Context, kind entities.EntryKind, e entities.FinancialEntry) (entities.FinancialEntry, error)
	Update(ctx context.Context, kind entities.EntryKind, id string, e entities.FinancialEntry) (entities.FinancialEntry, error)
	Delete(ctx context.Context, kind entities.EntryKind, id string) error
	Settle(ctx context.Context, kind entities.EntryKind, id string, s entities.Settlement) (entities.FinancialEntry, error)
	Categories(ctx context.Context, filters map[string]any) ([]entities.FinanceCategory, error)
	Summary(ctx context.Context, filters map[string]any) (entities.FinanceSummary, error)
}

type IBackupService interface {
	List(ctx context.Context) ([]entities.Backup, error)
	Create(ctx context.Context, t entities.BackupType) (entities.Backup, error)
	Restore(ctx context.Context, filename string) error
	Delete(ctx context.Context, filename string) error
	Download(ctx context.Context, filename string) (entities.BackupFile, error)
	Status(ctx context.Context) (entities.BackupStatus, error)
}

type IBillingService interface {
	Plans(ctx context.Context) ([]entities.Plan, error)
	Subscription(ctx context.Context) (entities.Subscription, error)
	ChangePlan(ctx context.Context, planID string) (entities.Subscription, error)
	CancelSubscription(ctx context.Context) (entities.Subscription, error)
	Invoices(ctx context.Context, filters map[string]any) (entities.Page[entities.Invoice], error)
	GetInvoice(ctx context.Context, id string) (entities.Invoice, error)
	PayInvoice(ctx context.Context, id string, conf entities.InvoicePaymentConfirmation) (entities.Invoice, error)
}

type IWhatsAppService interface {
	Status(ctx context.Context) (entities.WhatsAppStatus, error)
	QRCode(ctx context.Context) (entities.WhatsAppQRCode, error)
	Disconnect(ctx context.Context) error
	SendMessage(ctx context.Context, msg entities.OutgoingMessage) error
	BotConfig(ctx context.Context) (entities.BotConfig, error)
	UpdateBotConfig(ctx context.Context, cfg entities.BotConfig) (entities.BotConfig, error)
}
