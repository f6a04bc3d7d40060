package interfaces

import (
	"context"
	"encoding/json"

	"assistec/internal/domain/entities"
)

// ISettingsRepository stores JSON settings values under fixed keys. A
// missing key returns (nil, nil).
type ISettingsRepository interface {
	Get(ctx context.Context, key string) (json.RawMessage, error)
	Put(ctx context.Context, key string, value json.RawMessage) error
	Delete(ctx context.Context, key string) error
}

// ISessionRepository persists the operator session between restarts. Load
// returns (nil, nil) when nothing is stored.
type ISessionRepository interface {
	Load(ctx context.Context) (*entities.Session, error)
	Save(ctx context.Context, s entities.Session) error
	Clear(ctx context.Context) error
}
