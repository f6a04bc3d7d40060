package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"assistec/internal/adapter/http/dto/request"
	"assistec/internal/domain/entities"
	"assistec/internal/usecase"
	"assistec/pkg"
	"assistec/pkg/query"

	"github.com/gin-gonic/gin"
)

const photoFormField = "fotos"

var orderErrors = []domainMapper{
	sentinel(usecase.ErrInvalidOrderID, "INVALID_ORDER_ID", "Ordem de serviço inválida", http.StatusBadRequest),
	sentinel(usecase.ErrInvalidPhotoID, "INVALID_PHOTO_ID", "Foto inválida", http.StatusBadRequest),
}

// OrderHandler handles /v1/ordens.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

func (h *OrderHandler) List(c *gin.Context) {
	page, err := h.usecase.List(c.Request.Context(), query.FromValues(c.Request.URL.Query()))
	if err != nil {
		respondError(c, err, orderErrors...)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, orderErrors...)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Create(c *gin.Context) {
	var in entities.ServiceOrder
	if err := c.ShouldBindJSON(&in); err != nil {
		badJSON(c)
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, orderErrors...)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *OrderHandler) Update(c *gin.Context) {
	var in entities.ServiceOrder
	if err := c.ShouldBindJSON(&in); err != nil {
		badJSON(c)
		return
	}
	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err, orderErrors...)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, orderErrors...)
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateStatus godoc
// @Summary      Altera o status de uma ordem
// @Description  Com notificar_cliente=true e status "pronto" o cliente recebe uma mensagem no WhatsApp.
// @Tags         ordens
// @Accept       json
// @Produce      json
// @Param        id      path  string                       true  "ID da ordem"
// @Param        status  body  request.StatusChangeRequest  true  "Novo status"
// @Success      200  {object}  entities.ServiceOrder
// @Failure      400  {object}  pkg.HTTPError
// @Router       /ordens/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req request.StatusChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	order, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), req.ToStatusChange(), req.NotifyCustomer)
	if err != nil {
		respondError(c, err, orderErrors...)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) History(c *gin.Context) {
	history, err := h.usecase.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, orderErrors...)
		return
	}
	c.JSON(http.StatusOK, history)
}

func (h *OrderHandler) Stats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context(), query.FromValues(c.Request.URL.Query()))
	if err != nil {
		respondError(c, err, orderErrors...)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// UploadPhotos godoc
// @Summary      Envia fotos da ordem
// @Description  Até 5 imagens de no máximo 5 MB cada, no campo multipart "fotos".
// @Tags         ordens
// @Accept       multipart/form-data
// @Produce      json
// @Param        id     path      string  true  "ID da ordem"
// @Param        fotos  formData  file    true  "Imagens"
// @Success      201  {array}   entities.OrderPhoto
// @Failure      400  {object}  pkg.HTTPError
// @Router       /ordens/{id}/fotos [post]
func (h *OrderHandler) UploadPhotos(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_PHOTO_UPLOAD", "Envie as fotos no campo \"fotos\"", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	files := form.File[photoFormField]
	if len(files) > usecase.MaxPhotosPerUpload {
		respondError(c, &usecase.ValidationError{
			Kind:   usecase.ErrInvalidPhotoUpload,
			Fields: []pkg.FieldError{{Field: photoFormField, Message: fmt.Sprintf("Máximo de %d fotos por envio", usecase.MaxPhotosPerUpload)}},
		}, orderErrors...)
		return
	}

	photos := make([]entities.PhotoUpload, 0, len(files))
	for _, fh := range files {
		photo, err := readPhoto(fh)
		if err != nil {
			appErr := pkg.NewDomainError("INVALID_PHOTO_UPLOAD", "Não foi possível ler a foto "+fh.Filename, err, http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		photos = append(photos, photo)
	}

	uploaded, err := h.usecase.UploadPhotos(c.Request.Context(), c.Param("id"), photos)
	if err != nil {
		respondError(c, err, orderErrors...)
		return
	}
	c.JSON(http.StatusCreated, uploaded)
}

func (h *OrderHandler) DeletePhoto(c *gin.Context) {
	if err := h.usecase.DeletePhoto(c.Request.Context(), c.Param("id"), c.Param("photoId")); err != nil {
		respondError(c, err, orderErrors...)
		return
	}
	c.Status(http.StatusNoContent)
}

// readPhoto reads at most one byte past the size limit so oversized files
// are still reported by validation.
func readPhoto(fh *multipart.FileHeader) (entities.PhotoUpload, error) {
	f, err := fh.Open()
	if err != nil {
		return entities.PhotoUpload{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, usecase.MaxPhotoSize+1))
	if err != nil {
		return entities.PhotoUpload{}, err
	}
	return entities.PhotoUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
