package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"assistec/internal/domain/entities"
	"assistec/internal/infrastructure/logger"
	"assistec/internal/usecase/interfaces"
)

const (
	MaxPhotosPerUpload = 5
	MaxPhotoSize       = 5 << 20
)

var (
	ErrInvalidOrderID     = errors.New("invalid order id")
	ErrInvalidPhotoID     = errors.New("invalid photo id")
	ErrInvalidOrderInput  = errors.New("invalid order input")
	ErrInvalidOrderStatus = errors.New("invalid order status")
	ErrInvalidPhotoUpload = errors.New("invalid photo upload")
)

type IOrderUseCase interface {
	List(ctx context.Context, filters map[string]any) (entities.Page[entities.ServiceOrder], error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	Update(ctx context.Context, id string, o entities.ServiceOrder) (entities.ServiceOrder, error)
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id string, change entities.StatusChange, notify bool) (entities.ServiceOrder, error)
	History(ctx context.Context, id string) ([]entities.OrderHistoryEntry, error)
	Stats(ctx context.Context, filters map[string]any) (entities.OrderStats, error)
	UploadPhotos(ctx context.Context, id string, photos []entities.PhotoUpload) ([]entities.OrderPhoto, error)
	DeletePhoto(ctx context.Context, id, photoID string) error
}

type OrderUseCase struct {
	orders    interfaces.IOrderService
	customers interfaces.ICustomerService
	whatsapp  interfaces.IWhatsAppService
	sender    interfaces.INotificationSender
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

// NewOrderUseCase wires the order flow. sender may be nil, in which case
// ready-for-pickup notifications go through the backend WhatsApp session.
func NewOrderUseCase(orders interfaces.IOrderService, customers interfaces.ICustomerService, whatsapp interfaces.IWhatsAppService, sender interfaces.INotificationSender) *OrderUseCase {
	return &OrderUseCase{orders: orders, customers: customers, whatsapp: whatsapp, sender: sender}
}

func (u *OrderUseCase) List(ctx context.Context, filters map[string]any) (entities.Page[entities.ServiceOrder], error) {
	page, err := u.orders.List(ctx, withPagination(filters))
	if err != nil {
		return entities.Page[entities.ServiceOrder]{}, err
	}
	return ensureItems(page), nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	id, err := requireID(id, ErrInvalidOrderID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	return u.orders.GetByID(ctx, id)
}

func (u *OrderUseCase) Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	if o.Status == "" {
		o.Status = entities.OrderStatusAguardando
	}
	if o.Priority == "" {
		o.Priority = entities.OrderPriorityNormal
	}
	o = normalizeOrder(o)
	if err := validateOrder(o); err != nil {
		return entities.ServiceOrder{}, err
	}
	o = ComputeOrderTotals(o)

	created, err := u.orders.Create(ctx, o)
	if err != nil {
		logger.For("order.usecase").Warn().Err(err).Msg("create failed")
		return entities.ServiceOrder{}, err
	}
	logger.For("order.usecase").Info().
		Str("order_id", created.ID.String()).
		Float64("total", created.Total).
		Msg("order created")
	return created, nil
}

func (u *OrderUseCase) Update(ctx context.Context, id string, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	id, err := requireID(id, ErrInvalidOrderID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	o = normalizeOrder(o)
	if err := validateOrder(o); err != nil {
		return entities.ServiceOrder{}, err
	}
	return u.orders.Update(ctx, id, ComputeOrderTotals(o))
}

func (u *OrderUseCase) Delete(ctx context.Context, id string) error {
	id, err := requireID(id, ErrInvalidOrderID)
	if err != nil {
		return err
	}
	return u.orders.Delete(ctx, id)
}

// UpdateStatus changes the order status. Moving to "pronto" with notify set
// sends the customer a WhatsApp message; a failed notification is logged and
// never fails the status change.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, id string, change entities.StatusChange, notify bool) (entities.ServiceOrder, error) {
	id, err := requireID(id, ErrInvalidOrderID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if !change.Status.Valid() {
		return entities.ServiceOrder{}, ErrInvalidOrderStatus
	}
	change.Note = strings.TrimSpace(change.Note)

	updated, err := u.orders.UpdateStatus(ctx, id, change)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	logger.For("order.usecase").Info().
		Str("order_id", id).
		Str("status", string(change.Status)).
		Msg("status updated")

	if notify && change.Status == entities.OrderStatusPronto {
		u.notifyReady(ctx, id, updated)
	}
	return updated, nil
}

func (u *OrderUseCase) notifyReady(ctx context.Context, id string, o entities.ServiceOrder) {
	log := logger.For("order.usecase")

	phone, name := o.CustomerPhone, o.CustomerName
	if phone == "" && !o.CustomerID.IsZero() && u.customers != nil {
		c, err := u.customers.GetByID(ctx, o.CustomerID.String())
		if err != nil {
			log.Warn().Str("order_id", id).Err(err).Msg("notification skipped: customer lookup failed")
			return
		}
		phone, name = c.Phone, c.Name
	}
	if strings.TrimSpace(phone) == "" {
		log.Warn().Str("order_id", id).Msg("notification skipped: customer has no phone")
		return
	}

	msg := ReadyMessage(name, o)
	if u.sender != nil {
		if _, err := u.sender.SendWhatsApp(ctx, phone, msg); err != nil {
			log.Warn().Str("order_id", id).Err(err).Msg("twilio notification failed")
			return
		}
	} else if u.whatsapp != nil {
		if err := u.whatsapp.SendMessage(ctx, entities.OutgoingMessage{Phone: phone, Message: msg}); err != nil {
			log.Warn().Str("order_id", id).Err(err).Msg("whatsapp notification failed")
			return
		}
	} else {
		return
	}
	log.Info().Str("order_id", id).Msg("customer notified")
}

// ReadyMessage is the ready-for-pickup text sent to the customer.
func ReadyMessage(customerName string, o entities.ServiceOrder) string {
	greeting := "Olá!"
	if first := strings.Fields(customerName); len(first) > 0 {
		greeting = fmt.Sprintf("Olá, %s!", first[0])
	}
	ref := o.Number
	if ref == "" {
		ref = o.ID.String()
	}
	equipment := o.Equipment
	if equipment == "" {
		equipment = "equipamento"
	}
	return fmt.Sprintf("%s Seu %s (OS %s) está pronto para retirada. Total: R$ %.2f",
		greeting, equipment, ref, o.Total)
}

func (u *OrderUseCase) History(ctx context.Context, id string) ([]entities.OrderHistoryEntry, error) {
	id, err := requireID(id, ErrInvalidOrderID)
	if err != nil {
		return nil, err
	}
	history, err := u.orders.History(ctx, id)
	if err != nil {
		return nil, err
	}
	if history == nil {
		history = []entities.OrderHistoryEntry{}
	}
	return history, nil
}

func (u *OrderUseCase) Stats(ctx context.Context, filters map[string]any) (entities.OrderStats, error) {
	return u.orders.Stats(ctx, filters)
}

// UploadPhotos checks the batch before anything is sent: at most
// MaxPhotosPerUpload images of up to MaxPhotoSize bytes each.
func (u *OrderUseCase) UploadPhotos(ctx context.Context, id string, photos []entities.PhotoUpload) ([]entities.OrderPhoto, error) {
	id, err := requireID(id, ErrInvalidOrderID)
	if err != nil {
		return nil, err
	}
	photos, err = validatePhotos(photos)
	if err != nil {
		return nil, err
	}
	return u.orders.UploadPhotos(ctx, id, photos)
}

func (u *OrderUseCase) DeletePhoto(ctx context.Context, id, photoID string) error {
	id, err := requireID(id, ErrInvalidOrderID)
	if err != nil {
		return err
	}
	photoID, err = requireID(photoID, ErrInvalidPhotoID)
	if err != nil {
		return err
	}
	return u.orders.DeletePhoto(ctx, id, photoID)
}

// ComputeOrderTotals recomputes parts, services and grand total:
// parts + services + labour - discount, floored at zero.
func ComputeOrderTotals(o entities.ServiceOrder) entities.ServiceOrder {
	var parts, services float64
	for _, p := range o.Parts {
		parts += float64(p.Quantity) * p.UnitPrice
	}
	for _, s := range o.Services {
		services += s.Price
	}
	o.PartsTotal = round2(parts)
	o.ServicesTotal = round2(services)
	o.Total = round2(max(parts+services+o.LaborCost-o.Discount, 0))
	return o
}

func normalizeOrder(o entities.ServiceOrder) entities.ServiceOrder {
	o.Equipment = strings.TrimSpace(o.Equipment)
	o.ReportedDefect = strings.TrimSpace(o.ReportedDefect)
	if o.Parts == nil {
		o.Parts = []entities.OrderPart{}
	}
	if o.Services == nil {
		o.Services = []entities.OrderService{}
	}
	return o
}

func validateOrder(o entities.ServiceOrder) error {
	var errs fieldErrors
	if o.CustomerID.IsZero() {
		errs.add("cliente_id", "Cliente é obrigatório")
	}
	if o.Equipment == "" {
		errs.add("equipamento", "Equipamento é obrigatório")
	}
	if o.ReportedDefect == "" {
		errs.add("defeito_relatado", "Defeito relatado é obrigatório")
	}
	if o.Status != "" && !o.Status.Valid() {
		errs.add("status", "Status inválido")
	}
	if o.Priority != "" && !o.Priority.Valid() {
		errs.add("prioridade", "Prioridade inválida")
	}
	for i, p := range o.Parts {
		if p.Quantity <= 0 {
			errs.add(fmt.Sprintf("pecas.%d.quantidade", i), "Quantidade deve ser maior que zero")
		}
		if p.UnitPrice < 0 {
			errs.add(fmt.Sprintf("pecas.%d.valor_unitario", i), "Valor não pode ser negativo")
		}
	}
	for i, s := range o.Services {
		if strings.TrimSpace(s.Description) == "" {
			errs.add(fmt.Sprintf("servicos.%d.descricao", i), "Descrição é obrigatória")
		}
		if s.Price < 0 {
			errs.add(fmt.Sprintf("servicos.%d.valor", i), "Valor não pode ser negativo")
		}
	}
	if o.LaborCost < 0 {
		errs.add("valor_mao_obra", "Valor não pode ser negativo")
	}
	if o.Discount < 0 {
		errs.add("desconto", "Desconto não pode ser negativo")
	}
	return errs.err(ErrInvalidOrderInput)
}

func validatePhotos(photos []entities.PhotoUpload) ([]entities.PhotoUpload, error) {
	var errs fieldErrors
	switch {
	case len(photos) == 0:
		errs.add("fotos", "Selecione ao menos uma foto")
	case len(photos) > MaxPhotosPerUpload:
		errs.add("fotos", fmt.Sprintf("Máximo de %d fotos por envio", MaxPhotosPerUpload))
	}
	if len(errs) > 0 {
		return nil, errs.err(ErrInvalidPhotoUpload)
	}

	out := make([]entities.PhotoUpload, 0, len(photos))
	for i, p := range photos {
		field := fmt.Sprintf("fotos.%d", i)
		if len(p.Data) > MaxPhotoSize {
			errs.add(field, fmt.Sprintf("%s excede 5MB", p.Filename))
			continue
		}
		if p.ContentType == "" || p.ContentType == "application/octet-stream" {
			p.ContentType = http.DetectContentType(p.Data)
		}
		if !strings.HasPrefix(p.ContentType, "image/") {
			errs.add(field, fmt.Sprintf("%s não é uma imagem", p.Filename))
			continue
		}
		out = append(out, p)
	}
	if err := errs.err(ErrInvalidPhotoUpload); err != nil {
		return nil, err
	}
	return out, nil
}
