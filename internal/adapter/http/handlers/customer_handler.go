package handlers

import (
	"net/http"

	"assistec/internal/domain/entities"
	"assistec/internal/usecase"
	"assistec/pkg/query"

	"github.com/gin-gonic/gin"
)

var customerErrors = []domainMapper{
	sentinel(usecase.ErrInvalidCustomerID, "INVALID_CUSTOMER_ID", "Cliente inválido", http.StatusBadRequest),
}

// CustomerHandler handles /v1/clientes.
type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

// List godoc
// @Summary      Lista clientes
// @Tags         clientes
// @Produce      json
// @Param        busca  query  string  false  "Nome, telefone ou email"
// @Param        page   query  int     false  "Página"
// @Param        limit  query  int     false  "Itens por página (1-100)"
// @Success      200  {object}  entities.Page[entities.Customer]
// @Failure      502  {object}  pkg.HTTPError
// @Router       /clientes [get]
func (h *CustomerHandler) List(c *gin.Context) {
	page, err := h.usecase.List(c.Request.Context(), query.FromValues(c.Request.URL.Query()))
	if err != nil {
		respondError(c, err, customerErrors...)
		return
	}
	c.JSON(http.StatusOK, page)
}

// Get godoc
// @Summary      Busca um cliente
// @Tags         clientes
// @Produce      json
// @Param        id   path  string  true  "ID do cliente"
// @Success      200  {object}  entities.Customer
// @Failure      404  {object}  pkg.HTTPError
// @Router       /clientes/{id} [get]
func (h *CustomerHandler) Get(c *gin.Context) {
	customer, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, customerErrors...)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// Create godoc
// @Summary      Cadastra um cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        cliente  body  entities.Customer  true  "Cliente"
// @Success      201  {object}  entities.Customer
// @Failure      400  {object}  pkg.HTTPError
// @Router       /clientes [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var in entities.Customer
	if err := c.ShouldBindJSON(&in); err != nil {
		badJSON(c)
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, customerErrors...)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	var in entities.Customer
	if err := c.ShouldBindJSON(&in); err != nil {
		badJSON(c)
		return
	}
	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err, customerErrors...)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary      Exclui um cliente
// @Description  Um erro do backend (ex.: cliente inexistente) é devolvido com a mensagem original.
// @Tags         clientes
// @Param        id   path  string  true  "ID do cliente"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /clientes/{id} [delete]
func (h *CustomerHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, customerErrors...)
		return
	}
	c.Status(http.StatusNoContent)
}
