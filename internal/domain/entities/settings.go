package entities

// Settings keys persisted by the settings store.
const (
	SettingsKeyTheme         = "theme_mode"
	SettingsKeyProfile       = "user_profile"
	SettingsKeyCustomization = "customization"
	SettingsKeyPreferences   = "preferences"
)

type Profile struct {
	Name     string `json:"nome" validate:"max=120"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"telefone" validate:"max=30"`
	Company  string `json:"empresa" validate:"max=120"`
	Document string `json:"cnpj" validate:"max=20"`
	Address  string `json:"endereco" validate:"max=255"`
}

// Customization is the shop branding shown by the UI.
type Customization struct {
	BrandName    string `json:"nome_marca" validate:"max=60"`
	LogoURL      string `json:"logo_url" validate:"omitempty,url"`
	PrimaryColor string `json:"cor_primaria" validate:"omitempty,hexcolor"`
}

type Preferences struct {
	Notifications bool   `json:"notificacoes"`
	Language      string `json:"idioma" validate:"oneof=pt-BR en-US es-ES"`
	Currency      string `json:"moeda" validate:"len=3"`
	ItemsPerPage  int    `json:"itens_por_pagina" validate:"min=1,max=100"`
	AutoBackup    bool   `json:"backup_automatico"`
}

// ThemeMode is the persisted explicit choice. Nil DarkMode means "follow the
// operating system".
type ThemeMode struct {
	DarkMode *bool `json:"dark_mode"`
}

// Theme is the resolved theme for one client.
type Theme struct {
	DarkMode bool   `json:"dark_mode"`
	Explicit bool   `json:"explicit"`
	Class    string `json:"class"`
}

func DefaultProfile() Profile {
	return Profile{}
}

func DefaultCustomization() Customization {
	return Customization{BrandName: "AssisTec", PrimaryColor: "#1976d2"}
}

func DefaultPreferences() Preferences {
	return Preferences{
		Notifications: true,
		Language:      "pt-BR",
		Currency:      "BRL",
		ItemsPerPage:  10,
	}
}

// SettingsChange is broadcast to settings subscribers after a write.
type SettingsChange struct {
	Key   string
	Value any
}
