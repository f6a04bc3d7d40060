package handlers

import (
	"net/http"
	"strings"

	"assistec/internal/adapter/http/dto/request"
	"assistec/internal/adapter/http/dto/response"
	"assistec/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes the operator session kept by the auth use case.
type AuthHandler struct {
	usecase usecase.IAuthSessionUseCase
}

func NewAuthHandler(uc usecase.IAuthSessionUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Session godoc
// @Summary      Sessão atual
// @Description  Estado da sessão (loading/resolved) e usuário autenticado. Tokens nunca são expostos.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.SessionResponse
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromSession(h.usecase.State(), h.usecase.Configured(), h.usecase.Session()))
}

// MagicLink godoc
// @Summary      Envia link mágico
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body  request.MagicLinkRequest  true  "Email"
// @Success      202  {object}  map[string]string
// @Failure      400  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /auth/magic-link [post]
func (h *AuthHandler) MagicLink(c *gin.Context) {
	var req request.MagicLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	if err := h.usecase.SignInWithMagicLink(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "Link de acesso enviado para " + strings.TrimSpace(req.Email)})
}

// Callback completes a magic-link sign in. The emailed link lands here with
// token_hash and type in the query; the SPA may also POST them as JSON.
func (h *AuthHandler) Callback(c *gin.Context) {
	var req request.MagicLinkCallback
	var err error
	if c.Request.Method == http.MethodPost && c.Request.ContentLength != 0 {
		err = c.ShouldBindJSON(&req)
	} else {
		err = c.ShouldBindQuery(&req)
	}
	if err != nil {
		badJSON(c)
		return
	}

	session, err := h.usecase.CompleteMagicLink(c.Request.Context(), req.TokenHash, req.Type)
	if err != nil {
		respondError(c, err, sentinel(usecase.ErrInvalidMagicLink, "INVALID_MAGIC_LINK", "Link de acesso inválido ou expirado", http.StatusUnauthorized))
		return
	}
	c.JSON(http.StatusOK, response.FromSession(h.usecase.State(), h.usecase.Configured(), &session))
}

func (h *AuthHandler) SignOut(c *gin.Context) {
	if err := h.usecase.SignOut(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
