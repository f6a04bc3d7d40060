package routes

import (
	"assistec/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth     = "/auth"
	PathSettings = "/settings"
)

func addAuthRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler) {
	auth := rg.Group(PathAuth)
	{
		auth.GET("/session", h.Session)
		auth.POST("/magic-link", h.MagicLink)
		auth.GET("/callback", h.Callback)
		auth.POST("/callback", h.Callback)
		auth.POST("/sign-out", h.SignOut)
	}
}

// addThemeRoutes stays public so the sign-in page renders with the stored theme.
func addThemeRoutes(rg *gin.RouterGroup, h *handlers.SettingsHandler) {
	settings := rg.Group(PathSettings)
	{
		settings.GET("/theme", h.Theme)
		settings.PUT("/theme", h.SetTheme)
		settings.POST("/theme/toggle", h.ToggleTheme)
		settings.DELETE("/theme", h.ClearTheme)
	}
}

func addSettingsRoutes(rg *gin.RouterGroup, h *handlers.SettingsHandler) {
	settings := rg.Group(PathSettings)
	{
		settings.GET("/profile", h.Profile)
		settings.PUT("/profile", h.SetProfile)
		settings.GET("/customization", h.Customization)
		settings.PUT("/customization", h.SetCustomization)
		settings.GET("/preferences", h.Preferences)
		settings.PUT("/preferences", h.SetPreferences)
	}
}
