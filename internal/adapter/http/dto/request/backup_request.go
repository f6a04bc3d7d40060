package request

import "assistec/internal/domain/entities"

// BackupCreateRequest defaults to a full backup when Type is empty.
type BackupCreateRequest struct {
	Type entities.BackupType `json:"type"`
}
