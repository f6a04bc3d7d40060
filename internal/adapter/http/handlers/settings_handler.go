package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"assistec/internal/adapter/http/dto/request"
	"assistec/internal/domain/entities"
	"assistec/internal/usecase"

	"github.com/gin-gonic/gin"
)

// prefersColorSchemeHeader is the client hint browsers send when the server
// asks for it through Accept-CH.
const prefersColorSchemeHeader = "Sec-CH-Prefers-Color-Scheme"

type SettingsHandler struct {
	usecase usecase.ISettingsUseCase
}

func NewSettingsHandler(uc usecase.ISettingsUseCase) *SettingsHandler {
	return &SettingsHandler{usecase: uc}
}

// Theme godoc
// @Summary      Tema atual
// @Description  Retorna a escolha explícita ou, sem ela, a preferência de cor do sistema do cliente.
// @Tags         settings
// @Produce      json
// @Param        prefers_dark  query  bool  false  "Preferência do sistema quando o navegador não envia o client hint"
// @Success      200  {object}  entities.Theme
// @Router       /settings/theme [get]
func (h *SettingsHandler) Theme(c *gin.Context) {
	c.Header("Accept-CH", prefersColorSchemeHeader)
	c.JSON(http.StatusOK, h.usecase.Theme(c.Request.Context(), prefersDark(c)))
}

func (h *SettingsHandler) SetTheme(c *gin.Context) {
	var req request.ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	theme, err := h.usecase.SetTheme(c.Request.Context(), *req.DarkMode)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, theme)
}

func (h *SettingsHandler) ToggleTheme(c *gin.Context) {
	theme, err := h.usecase.ToggleTheme(c.Request.Context(), prefersDark(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, theme)
}

// ClearTheme forgets the explicit choice; the system preference applies again.
func (h *SettingsHandler) ClearTheme(c *gin.Context) {
	theme, err := h.usecase.ClearTheme(c.Request.Context(), prefersDark(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, theme)
}

func (h *SettingsHandler) Profile(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.Profile(c.Request.Context()))
}

func (h *SettingsHandler) SetProfile(c *gin.Context) {
	var p entities.Profile
	if err := c.ShouldBindJSON(&p); err != nil {
		badJSON(c)
		return
	}
	saved, err := h.usecase.SetProfile(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (h *SettingsHandler) Customization(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.Customization(c.Request.Context()))
}

func (h *SettingsHandler) SetCustomization(c *gin.Context) {
	var cust entities.Customization
	if err := c.ShouldBindJSON(&cust); err != nil {
		badJSON(c)
		return
	}
	saved, err := h.usecase.SetCustomization(c.Request.Context(), cust)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (h *SettingsHandler) Preferences(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.Preferences(c.Request.Context()))
}

func (h *SettingsHandler) SetPreferences(c *gin.Context) {
	var p entities.Preferences
	if err := c.ShouldBindJSON(&p); err != nil {
		badJSON(c)
		return
	}
	saved, err := h.usecase.SetPreferences(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// prefersDark reads the client's color-scheme preference: the client hint
// first, then ?prefers_dark=. Nil when neither is usable.
func prefersDark(c *gin.Context) *bool {
	switch strings.ToLower(strings.Trim(c.GetHeader(prefersColorSchemeHeader), `" `)) {
	case "dark":
		v := true
		return &v
	case "light":
		v := false
		return &v
	}
	if raw, ok := c.GetQuery("prefers_dark"); ok {
		if v, err := strconv.ParseBool(raw); err == nil {
			return &v
		}
	}
	return nil
}
