package request

type ThemeRequest struct {
	DarkMode *bool `json:"dark_mode" binding:"required"`
}
