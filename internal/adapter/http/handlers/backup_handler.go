package handlers

import (
	"mime"
	"net/http"

	"assistec/internal/adapter/http/dto/request"
	"assistec/internal/usecase"

	"github.com/gin-gonic/gin"
)

var backupErrors = []domainMapper{
	sentinel(usecase.ErrInvalidBackupFilename, "INVALID_BACKUP_FILENAME", "Nome de arquivo de backup inválido", http.StatusBadRequest),
	sentinel(usecase.ErrInvalidBackupType, "INVALID_BACKUP_TYPE", "Tipo de backup inválido", http.StatusBadRequest),
}

// BackupHandler handles /v1/backup.
type BackupHandler struct {
	usecase usecase.IBackupUseCase
}

func NewBackupHandler(uc usecase.IBackupUseCase) *BackupHandler {
	return &BackupHandler{usecase: uc}
}

func (h *BackupHandler) List(c *gin.Context) {
	backups, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondError(c, err, backupErrors...)
		return
	}
	c.JSON(http.StatusOK, backups)
}

func (h *BackupHandler) Create(c *gin.Context) {
	var req request.BackupCreateRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badJSON(c)
			return
		}
	}
	backup, err := h.usecase.Create(c.Request.Context(), req.Type)
	if err != nil {
		respondError(c, err, backupErrors...)
		return
	}
	c.JSON(http.StatusCreated, backup)
}

func (h *BackupHandler) Restore(c *gin.Context) {
	if err := h.usecase.Restore(c.Request.Context(), c.Param("filename")); err != nil {
		respondError(c, err, backupErrors...)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Backup restaurado com sucesso"})
}

func (h *BackupHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("filename")); err != nil {
		respondError(c, err, backupErrors...)
		return
	}
	c.Status(http.StatusNoContent)
}

// Download streams the backup file back as an attachment.
func (h *BackupHandler) Download(c *gin.Context) {
	file, err := h.usecase.Download(c.Request.Context(), c.Param("filename"))
	if err != nil {
		respondError(c, err, backupErrors...)
		return
	}
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": file.Filename}))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

func (h *BackupHandler) Status(c *gin.Context) {
	status, err := h.usecase.Status(c.Request.Context())
	if err != nil {
		respondError(c, err, backupErrors...)
		return
	}
	c.JSON(http.StatusOK, status)
}
