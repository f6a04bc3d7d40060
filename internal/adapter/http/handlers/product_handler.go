package handlers

import (
	"net/http"

	"assistec/internal/domain/entities"
	"assistec/internal/usecase"
	"assistec/pkg/query"

	"github.com/gin-gonic/gin"
)

var productErrors = []domainMapper{
	sentinel(usecase.ErrInvalidProductID, "INVALID_PRODUCT_ID", "Produto inválido", http.StatusBadRequest),
}

// ProductHandler handles /v1/produtos.
type ProductHandler struct {
	usecase usecase.IProductUseCase
}

func NewProductHandler(uc usecase.IProductUseCase) *ProductHandler {
	return &ProductHandler{usecase: uc}
}

func (h *ProductHandler) List(c *gin.Context) {
	page, err := h.usecase.List(c.Request.Context(), query.FromValues(c.Request.URL.Query()))
	if err != nil {
		respondError(c, err, productErrors...)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, productErrors...)
		return
	}
	c.JSON(http.StatusOK, product)
}

// Create godoc
// @Summary      Cadastra um produto
// @Description  A margem é calculada a partir dos preços de custo e venda.
// @Tags         produtos
// @Accept       json
// @Produce      json
// @Param        produto  body  entities.ProductInput  true  "Produto"
// @Success      201  {object}  entities.Product
// @Failure      400  {object}  pkg.HTTPError
// @Router       /produtos [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var in entities.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badJSON(c)
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, productErrors...)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update never changes the current stock; use MoveStock.
func (h *ProductHandler) Update(c *gin.Context) {
	var in entities.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badJSON(c)
		return
	}
	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err, productErrors...)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, productErrors...)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProductHandler) Categories(c *gin.Context) {
	categories, err := h.usecase.Categories(c.Request.Context())
	if err != nil {
		respondError(c, err, productErrors...)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *ProductHandler) CreateCategory(c *gin.Context) {
	var in entities.Category
	if err := c.ShouldBindJSON(&in); err != nil {
		badJSON(c)
		return
	}
	created, err := h.usecase.CreateCategory(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, productErrors...)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ProductHandler) Alerts(c *gin.Context) {
	alerts, err := h.usecase.Alerts(c.Request.Context())
	if err != nil {
		respondError(c, err, productErrors...)
		return
	}
	c.JSON(http.StatusOK, alerts)
}

func (h *ProductHandler) MoveStock(c *gin.Context) {
	var in entities.StockMovement
	if err := c.ShouldBindJSON(&in); err != nil {
		badJSON(c)
		return
	}
	movement, err := h.usecase.MoveStock(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err, productErrors...)
		return
	}
	c.JSON(http.StatusCreated, movement)
}

func (h *ProductHandler) Movements(c *gin.Context) {
	page, err := h.usecase.Movements(c.Request.Context(), c.Param("id"), query.FromValues(c.Request.URL.Query()))
	if err != nil {
		respondError(c, err, productErrors...)
		return
	}
	c.JSON(http.StatusOK, page)
}
