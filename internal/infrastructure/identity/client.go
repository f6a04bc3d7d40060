// Package identity talks to the hosted identity provider (GoTrue-compatible
// REST API) used for passwordless magic-link sign-in.
package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"assistec/internal/domain/entities"

	"github.com/go-resty/resty/v2"
)

var ErrNotConfigured = errors.New("identity provider not configured")

type Config struct {
	URL         string
	AnonKey     string
	JWTSecret   string
	RedirectURL string
	Timeout     time.Duration
}

// ProviderError is a non-2xx answer from the identity provider.
type ProviderError struct {
	Status  int
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("identity provider status %d: %s", e.Status, e.Message)
}

type Client struct {
	rc     *resty.Client
	cfg    Config
	claims *ClaimsParser
	now    func() time.Time
}

type tokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int64        `json:"expires_in"`
	ExpiresAt    int64        `json:"expires_at"`
	User         userResponse `json:"user"`
}

type userResponse struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	UserMetadata map[string]any `json:"user_metadata"`
}

func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	rc := resty.New().
		SetBaseURL(strings.TrimRight(cfg.URL, "/")+"/auth/v1").
		SetTimeout(timeout).
		SetHeader("apikey", cfg.AnonKey).
		SetHeader("Content-Type", "application/json")
	return &Client{
		rc:     rc,
		cfg:    cfg,
		claims: NewClaimsParser(cfg.JWTSecret),
		now:    time.Now,
	}
}

// Configured reports whether the provider URL and key are set.
func (c *Client) Configured() bool {
	return c != nil && c.cfg.URL != "" && c.cfg.AnonKey != ""
}

// SendMagicLink asks the provider to e-mail a sign-in link.
func (c *Client) SendMagicLink(ctx context.Context, email string) error {
	if !c.Configured() {
		return ErrNotConfigured
	}
	req := c.rc.R().SetContext(ctx).SetBody(map[string]any{
		"email":       email,
		"create_user": true,
	})
	if c.cfg.RedirectURL != "" {
		req.SetQueryParam("redirect_to", c.cfg.RedirectURL)
	}
	resp, err := req.Post("/otp")
	return checkResponse(resp, err)
}

// VerifyTokenHash exchanges the token hash carried by the magic link for a
// session.
func (c *Client) VerifyTokenHash(ctx context.Context, tokenHash, linkType string) (*entities.Session, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}
	if linkType == "" {
		linkType = "magiclink"
	}
	var out tokenResponse
	resp, err := c.rc.R().SetContext(ctx).
		SetBody(map[string]any{"token_hash": tokenHash, "type": linkType}).
		SetResult(&out).
		Post("/verify")
	if err := checkResponse(resp, err); err != nil {
		return nil, err
	}
	return c.toSession(out), nil
}

// Refresh trades a refresh token for a new session.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*entities.Session, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}
	var out tokenResponse
	resp, err := c.rc.R().SetContext(ctx).
		SetQueryParam("grant_type", "refresh_token").
		SetBody(map[string]any{"refresh_token": refreshToken}).
		SetResult(&out).
		Post("/token")
	if err := checkResponse(resp, err); err != nil {
		return nil, err
	}
	return c.toSession(out), nil
}

// GetUser validates an access token against the provider.
func (c *Client) GetUser(ctx context.Context, accessToken string) (*entities.User, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}
	var out userResponse
	resp, err := c.rc.R().SetContext(ctx).
		SetAuthToken(accessToken).
		SetResult(&out).
		Get("/user")
	if err := checkResponse(resp, err); err != nil {
		return nil, err
	}
	u := toUser(out)
	return &u, nil
}

func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	if !c.Configured() {
		return ErrNotConfigured
	}
	resp, err := c.rc.R().SetContext(ctx).
		SetAuthToken(accessToken).
		Post("/logout")
	return checkResponse(resp, err)
}

// Claims parses the access token claims.
func (c *Client) Claims(accessToken string) (*Claims, error) {
	return c.claims.Parse(accessToken)
}

func (c *Client) toSession(out tokenResponse) *entities.Session {
	s := &entities.Session{
		AccessToken:  out.AccessToken,
		RefreshToken: out.RefreshToken,
		User:         toUser(out.User),
	}
	switch {
	case out.ExpiresAt > 0:
		s.ExpiresAt = time.Unix(out.ExpiresAt, 0).UTC()
	case out.ExpiresIn > 0:
		s.ExpiresAt = c.now().Add(time.Duration(out.ExpiresIn) * time.Second).UTC()
	default:
		if claims, err := c.claims.Parse(out.AccessToken); err == nil && !claims.ExpiresAt.IsZero() {
			s.ExpiresAt = claims.ExpiresAt
		}
	}
	return s
}

func toUser(u userResponse) entities.User {
	user := entities.User{ID: u.ID, Email: u.Email}
	for _, key := range []string{"full_name", "name", "nome"} {
		if v, ok := u.UserMetadata[key].(string); ok && v != "" {
			user.Name = v
			break
		}
	}
	return user
}

func checkResponse(resp *resty.Response, err error) error {
	if err != nil {
		return err
	}
	if !resp.IsError() {
		return nil
	}
	return &ProviderError{Status: resp.StatusCode(), Message: providerMessage(resp.Body(), resp.StatusCode())}
}

func providerMessage(body []byte, status int) string {
	var payload struct {
		Msg              string `json:"msg"`
		Message          string `json:"message"`
		Error            string `json:"error"`
		ErrorDescription string `json:"error_description"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		for _, m := range []string{payload.ErrorDescription, payload.Msg, payload.Message, payload.Error} {
			if m != "" {
				return m
			}
		}
	}
	return http.StatusText(status)
}
