package request

import "assistec/internal/domain/entities"

// StatusChangeRequest is the payload of PATCH /ordens/:id/status.
// NotifyCustomer asks for a WhatsApp message when the order becomes ready.
type StatusChangeRequest struct {
	Status         entities.OrderStatus `json:"status" binding:"required"`
	Note           string               `json:"observacao"`
	NotifyCustomer bool                 `json:"notificar_cliente"`
}

func (r StatusChangeRequest) ToStatusChange() entities.StatusChange {
	return entities.StatusChange{Status: r.Status, Note: r.Note}
}
