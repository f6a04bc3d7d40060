package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"assistec/internal/domain/entities"
	"assistec/internal/infrastructure/logger"
	"assistec/internal/usecase/interfaces"
)

var (
	ErrInvalidBackupFilename = errors.New("invalid backup filename")
	ErrInvalidBackupType     = errors.New("invalid backup type")
)

var backupFilenamePattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// PreferencesReader exposes the stored operator preferences.
type PreferencesReader interface {
	Preferences(ctx context.Context) entities.Preferences
}

type IBackupUseCase interface {
	List(ctx context.Context) ([]entities.Backup, error)
	Create(ctx context.Context, t entities.BackupType) (entities.Backup, error)
	Restore(ctx context.Context, filename string) error
	Delete(ctx context.Context, filename string) error
	Download(ctx context.Context, filename string) (entities.BackupFile, error)
	Status(ctx context.Context) (entities.BackupStatus, error)
	RunScheduled(ctx context.Context)
}

type BackupUseCase struct {
	service interfaces.IBackupService
	prefs   PreferencesReader
}

var _ IBackupUseCase = (*BackupUseCase)(nil)

func NewBackupUseCase(service interfaces.IBackupService, prefs PreferencesReader) *BackupUseCase {
	return &BackupUseCase{service: service, prefs: prefs}
}

func (u *BackupUseCase) List(ctx context.Context) ([]entities.Backup, error) {
	backups, err := u.service.List(ctx)
	if err != nil {
		return nil, err
	}
	if backups == nil {
		backups = []entities.Backup{}
	}
	return backups, nil
}

func (u *BackupUseCase) Create(ctx context.Context, t entities.BackupType) (entities.Backup, error) {
	if t == "" {
		t = entities.BackupTypeFull
	}
	if !t.Valid() {
		return entities.Backup{}, ErrInvalidBackupType
	}
	b, err := u.service.Create(ctx, t)
	if err != nil {
		return entities.Backup{}, err
	}
	logger.For("backup.usecase").Info().
		Str("filename", b.Filename).
		Str("type", string(t)).
		Msg("backup created")
	return b, nil
}

func (u *BackupUseCase) Restore(ctx context.Context, filename string) error {
	filename, err := checkBackupFilename(filename)
	if err != nil {
		return err
	}
	if err := u.service.Restore(ctx, filename); err != nil {
		return err
	}
	logger.For("backup.usecase").Warn().Str("filename", filename).Msg("backup restored")
	return nil
}

func (u *BackupUseCase) Delete(ctx context.Context, filename string) error {
	filename, err := checkBackupFilename(filename)
	if err != nil {
		return err
	}
	return u.service.Delete(ctx, filename)
}

func (u *BackupUseCase) Download(ctx context.Context, filename string) (entities.BackupFile, error) {
	filename, err := checkBackupFilename(filename)
	if err != nil {
		return entities.BackupFile{}, err
	}
	f, err := u.service.Download(ctx, filename)
	if err != nil {
		return entities.BackupFile{}, err
	}
	if f.Filename == "" {
		f.Filename = filename
	}
	if f.ContentType == "" {
		f.ContentType = "application/octet-stream"
	}
	return f, nil
}

func (u *BackupUseCase) Status(ctx context.Context) (entities.BackupStatus, error) {
	return u.service.Status(ctx)
}

// RunScheduled requests an incremental backup when automatic backups are
// enabled in the preferences. Errors are logged only.
func (u *BackupUseCase) RunScheduled(ctx context.Context) {
	log := logger.For("backup.usecase")
	if u.prefs != nil {
		if !u.prefs.Preferences(ctx).AutoBackup {
			log.Debug().Msg("scheduled backup disabled")
			return
		}
	}
	if _, err := u.Create(ctx, entities.BackupTypeIncremental); err != nil {
		log.Error().Err(err).Msg("scheduled backup failed")
	}
}

func checkBackupFilename(name string) (string, error) {
	name = strings.TrimSpace(name)
	if !backupFilenamePattern.MatchString(name) || strings.Contains(name, "..") {
		return "", ErrInvalidBackupFilename
	}
	return name, nil
}
