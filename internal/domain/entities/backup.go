package entities

type BackupType string

const (
	BackupTypeFull        BackupType = "full"
	BackupTypeIncremental BackupType = "incremental"
)

func (t BackupType) Valid() bool {
	return t == BackupTypeFull || t == BackupTypeIncremental
}

// Backup is a read-only backup record; restore/delete/download are actions
// on the backend.
type Backup struct {
	Filename  string     `json:"filename"`
	Type      BackupType `json:"type"`
	Size      int64      `json:"size"`
	Timestamp string     `json:"timestamp"`
}

type BackupStatus struct {
	LastBackup  string `json:"ultimo_backup,omitempty"`
	AutoEnabled bool   `json:"automatico"`
	Schedule    string `json:"agendamento,omitempty"`
	TotalSize   int64  `json:"tamanho_total"`
	Count       int    `json:"quantidade"`
}

// BackupFile is a downloaded backup.
type BackupFile struct {
	Filename    string
	ContentType string
	Data        []byte
}
