package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"assistec/internal/domain/entities"
	"assistec/internal/infrastructure/logger"
	"assistec/internal/usecase/interfaces"
	"assistec/pkg"

	"github.com/go-playground/validator/v10"
)

var ErrInvalidSettings = errors.New("invalid settings")

const (
	ThemeClassDark  = "dark"
	ThemeClassLight = "light"
)

// ISettingsUseCase is the typed settings store. Reads never fail: missing,
// unreadable or invalid values fall back to defaults. Writes are validated.
//
// prefersDark is the client's operating-system preference, nil when the
// client did not send one.
type ISettingsUseCase interface {
	Theme(ctx context.Context, prefersDark *bool) entities.Theme
	SetTheme(ctx context.Context, dark bool) (entities.Theme, error)
	ToggleTheme(ctx context.Context, prefersDark *bool) (entities.Theme, error)
	ClearTheme(ctx context.Context, prefersDark *bool) (entities.Theme, error)

	Profile(ctx context.Context) entities.Profile
	SetProfile(ctx context.Context, p entities.Profile) (entities.Profile, error)
	Customization(ctx context.Context) entities.Customization
	SetCustomization(ctx context.Context, c entities.Customization) (entities.Customization, error)
	Preferences(ctx context.Context) entities.Preferences
	SetPreferences(ctx context.Context, p entities.Preferences) (entities.Preferences, error)

	Subscribe(fn func(entities.SettingsChange)) (unsubscribe func())
}

type SettingsUseCase struct {
	repo     interfaces.ISettingsRepository
	validate *validator.Validate
	changes  broadcaster[entities.SettingsChange]
}

var (
	_ ISettingsUseCase  = (*SettingsUseCase)(nil)
	_ PreferencesReader = (*SettingsUseCase)(nil)
)

func NewSettingsUseCase(repo interfaces.ISettingsRepository) *SettingsUseCase {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &SettingsUseCase{repo: repo, validate: v}
}

// ResolveTheme applies the precedence explicit choice, then OS preference,
// then light.
func ResolveTheme(stored, prefersDark *bool) entities.Theme {
	t := entities.Theme{}
	switch {
	case stored != nil:
		t.DarkMode = *stored
		t.Explicit = true
	case prefersDark != nil:
		t.DarkMode = *prefersDark
	}
	t.Class = ThemeClassLight
	if t.DarkMode {
		t.Class = ThemeClassDark
	}
	return t
}

func (u *SettingsUseCase) Theme(ctx context.Context, prefersDark *bool) entities.Theme {
	return ResolveTheme(u.storedTheme(ctx), prefersDark)
}

func (u *SettingsUseCase) SetTheme(ctx context.Context, dark bool) (entities.Theme, error) {
	if err := u.put(ctx, entities.SettingsKeyTheme, entities.ThemeMode{DarkMode: &dark}); err != nil {
		return entities.Theme{}, err
	}
	theme := ResolveTheme(&dark, nil)
	u.changes.publish(entities.SettingsChange{Key: entities.SettingsKeyTheme, Value: theme})
	return theme, nil
}

func (u *SettingsUseCase) ToggleTheme(ctx context.Context, prefersDark *bool) (entities.Theme, error) {
	current := u.Theme(ctx, prefersDark)
	return u.SetTheme(ctx, !current.DarkMode)
}

// ClearTheme forgets the explicit choice so the OS preference applies again.
func (u *SettingsUseCase) ClearTheme(ctx context.Context, prefersDark *bool) (entities.Theme, error) {
	if err := u.repo.Delete(ctx, entities.SettingsKeyTheme); err != nil {
		logger.For("settings.usecase").Error().Str("key", entities.SettingsKeyTheme).Err(err).Msg("delete failed")
		return entities.Theme{}, err
	}
	theme := ResolveTheme(nil, prefersDark)
	u.changes.publish(entities.SettingsChange{Key: entities.SettingsKeyTheme, Value: theme})
	return theme, nil
}

func (u *SettingsUseCase) Profile(ctx context.Context) entities.Profile {
	p := entities.DefaultProfile()
	u.read(ctx, entities.SettingsKeyProfile, &p, entities.DefaultProfile())
	return p
}

func (u *SettingsUseCase) SetProfile(ctx context.Context, p entities.Profile) (entities.Profile, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)
	if err := u.write(ctx, entities.SettingsKeyProfile, p); err != nil {
		return entities.Profile{}, err
	}
	return p, nil
}

func (u *SettingsUseCase) Customization(ctx context.Context) entities.Customization {
	c := entities.DefaultCustomization()
	u.read(ctx, entities.SettingsKeyCustomization, &c, entities.DefaultCustomization())
	return c
}

func (u *SettingsUseCase) SetCustomization(ctx context.Context, c entities.Customization) (entities.Customization, error) {
	c.BrandName = strings.TrimSpace(c.BrandName)
	if err := u.write(ctx, entities.SettingsKeyCustomization, c); err != nil {
		return entities.Customization{}, err
	}
	return c, nil
}

func (u *SettingsUseCase) Preferences(ctx context.Context) entities.Preferences {
	p := entities.DefaultPreferences()
	u.read(ctx, entities.SettingsKeyPreferences, &p, entities.DefaultPreferences())
	return p
}

func (u *SettingsUseCase) SetPreferences(ctx context.Context, p entities.Preferences) (entities.Preferences, error) {
	if err := u.write(ctx, entities.SettingsKeyPreferences, p); err != nil {
		return entities.Preferences{}, err
	}
	return p, nil
}

func (u *SettingsUseCase) Subscribe(fn func(entities.SettingsChange)) func() {
	return u.changes.subscribe(fn)
}

// storedTheme returns the explicit choice. A bare JSON boolean is accepted
// for values written by older clients.
func (u *SettingsUseCase) storedTheme(ctx context.Context) *bool {
	raw, err := u.repo.Get(ctx, entities.SettingsKeyTheme)
	if err != nil {
		logger.For("settings.usecase").Warn().Str("key", entities.SettingsKeyTheme).Err(err).Msg("read failed; using default")
		return nil
	}
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var legacy bool
	if err := json.Unmarshal(raw, &legacy); err == nil {
		return &legacy
	}
	var mode entities.ThemeMode
	if err := json.Unmarshal(raw, &mode); err != nil {
		logger.For("settings.usecase").Warn().Str("key", entities.SettingsKeyTheme).Err(err).Msg("invalid stored value; using default")
		return nil
	}
	return mode.DarkMode
}

// read decodes key into dst, resetting dst to def when the stored value is
// unreadable or fails validation.
func (u *SettingsUseCase) read(ctx context.Context, key string, dst any, def any) {
	log := logger.For("settings.usecase")
	raw, err := u.repo.Get(ctx, key)
	if err != nil {
		log.Warn().Str("key", key).Err(err).Msg("read failed; using default")
		return
	}
	if len(raw) == 0 {
		return
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		log.Warn().Str("key", key).Err(err).Msg("invalid stored value; using default")
		reflect.ValueOf(dst).Elem().Set(reflect.ValueOf(def))
		return
	}
	if err := u.validate.Struct(dst); err != nil {
		log.Warn().Str("key", key).Err(err).Msg("stored value failed validation; using default")
		reflect.ValueOf(dst).Elem().Set(reflect.ValueOf(def))
	}
}

func (u *SettingsUseCase) write(ctx context.Context, key string, v any) error {
	if err := u.validate.Struct(v); err != nil {
		return u.validationError(err)
	}
	if err := u.put(ctx, key, v); err != nil {
		return err
	}
	u.changes.publish(entities.SettingsChange{Key: key, Value: v})
	return nil
}

func (u *SettingsUseCase) put(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if err := u.repo.Put(ctx, key, b); err != nil {
		logger.For("settings.usecase").Error().Str("key", key).Err(err).Msg("write failed")
		return err
	}
	logger.For("settings.usecase").Info().Str("key", key).Msg("settings saved")
	return nil
}

func (u *SettingsUseCase) validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ValidationError{Kind: ErrInvalidSettings, Fields: []pkg.FieldError{{Message: err.Error()}}}
	}
	var fields fieldErrors
	for _, fe := range verrs {
		fields.add(fe.Field(), settingsMessage(fe))
	}
	return fields.err(ErrInvalidSettings)
}

func settingsMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "email":
		return "Email inválido"
	case "url":
		return "URL inválida"
	case "hexcolor":
		return "Cor inválida"
	case "oneof":
		return "Valor deve ser um de: " + fe.Param()
	case "max":
		return "Valor acima do máximo (" + fe.Param() + ")"
	case "min":
		return "Valor abaixo do mínimo (" + fe.Param() + ")"
	case "len":
		return "Tamanho deve ser " + fe.Param()
	}
	return "Valor inválido"
}
