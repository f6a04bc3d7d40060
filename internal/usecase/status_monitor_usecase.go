package usecase

import (
	"context"
	"sync"
	"time"

	"assistec/internal/domain/entities"
	"assistec/internal/infrastructure/logger"
	"assistec/internal/usecase/interfaces"
)

// IStatusMonitorUseCase keeps the dashboard snapshot that the scheduler
// refreshes periodically.
type IStatusMonitorUseCase interface {
	Refresh(ctx context.Context)
	Snapshot() entities.Dashboard
}

type StatusMonitorUseCase struct {
	orders   interfaces.IOrderService
	whatsapp interfaces.IWhatsAppService
	now      func() time.Time

	mu       sync.RWMutex
	snapshot entities.Dashboard
}

var _ IStatusMonitorUseCase = (*StatusMonitorUseCase)(nil)

func NewStatusMonitorUseCase(orders interfaces.IOrderService, whatsapp interfaces.IWhatsAppService) *StatusMonitorUseCase {
	return &StatusMonitorUseCase{orders: orders, whatsapp: whatsapp, now: time.Now}
}

// Refresh re-fetches order stats and the WhatsApp status. A failed source
// keeps its previous value and its message is listed in Errors.
func (u *StatusMonitorUseCase) Refresh(ctx context.Context) {
	log := logger.For("status.monitor")

	u.mu.RLock()
	next := u.snapshot
	u.mu.RUnlock()
	next.Errors = nil

	if stats, err := u.orders.Stats(ctx, nil); err != nil {
		log.Warn().Err(err).Msg("order stats refresh failed")
		next.Errors = append(next.Errors, "ordens: "+err.Error())
	} else {
		next.Orders = stats
	}
	if status, err := u.whatsapp.Status(ctx); err != nil {
		log.Warn().Err(err).Msg("whatsapp status refresh failed")
		next.Errors = append(next.Errors, "whatsapp: "+err.Error())
	} else {
		next.WhatsApp = status
	}
	next.RefreshedAt = u.now().UTC()

	u.mu.Lock()
	u.snapshot = next
	u.mu.Unlock()
	log.Debug().Int("errors", len(next.Errors)).Msg("dashboard refreshed")
}

func (u *StatusMonitorUseCase) Snapshot() entities.Dashboard {
	u.mu.RLock()
	defer u.mu.RUnlock()
	s := u.snapshot
	s.Errors = append([]string(nil), u.snapshot.Errors...)
	return s
}
