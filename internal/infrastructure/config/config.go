package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultAPIBaseURL = "http://localhost:3001/api"

	defaultTimeout               = 30 * time.Second
	defaultNetworkRetryDelay     = 1 * time.Second
	defaultUnavailableRetryDelay = 3 * time.Second
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string
	ServiceName string
	PublicHost  string

	API      APIConfig
	Identity IdentityConfig
	Dynamo   DynamoConfig
	Payments PaymentsConfig
	Twilio   TwilioConfig
	Jobs     JobsConfig

	OTLPEndpoint string
}

// APIConfig configures the shared client to the shop backend.
type APIConfig struct {
	BaseURL               string
	Timeout               time.Duration
	NetworkRetryDelay     time.Duration
	UnavailableRetryDelay time.Duration
}

type IdentityConfig struct {
	URL         string
	AnonKey     string
	JWTSecret   string
	RedirectURL string
}

// Configured reports whether magic-link auth can be used.
func (c IdentityConfig) Configured() bool {
	return c.URL != "" && c.AnonKey != ""
}

type DynamoConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string

	SettingsTable string
	SessionsTable string
	PaymentsTable string
}

type PaymentsConfig struct {
	MercadoPagoAccessToken string
	MockMode               bool

	// Sandbox payer used when a TEST- access token is configured.
	TestPayerEmail  string
	TestPayerUserID string
}

// Sandbox reports whether the access token is a Mercado Pago test token.
func (c PaymentsConfig) Sandbox() bool {
	return strings.HasPrefix(c.MercadoPagoAccessToken, "TEST-")
}

type TwilioConfig struct {
	AccountSID     string
	AuthToken      string
	WhatsAppNumber string
}

func (c TwilioConfig) Configured() bool {
	return c.AccountSID != "" && c.AuthToken != "" && c.WhatsAppNumber != ""
}

type JobsConfig struct {
	StatusRefreshSchedule  string
	BackupSchedule         string
	SessionRefreshSchedule string
}

// Load reads configuration from the environment.
// Precedence: explicit env var > .env file (autoloaded in main) > default.
func Load() Config {
	return load(os.Getenv)
}

func load(env func(string) string) Config {
	get := func(key, def string) string {
		if v := strings.TrimSpace(env(key)); v != "" {
			return v
		}
		return def
	}

	cfg := Config{
		Port:        get("PORT", "8080"),
		Environment: get("APP_ENV", "development"),
		LogLevel:    get("LOG_LEVEL", "info"),
		ServiceName: get("SERVICE_NAME", "assistec-bff"),
		PublicHost:  get("APP_PUBLIC_HOST", ""),
		API: APIConfig{
			Timeout:               millis(env("API_TIMEOUT_MS"), defaultTimeout),
			NetworkRetryDelay:     millis(env("API_RETRY_NETWORK_DELAY_MS"), defaultNetworkRetryDelay),
			UnavailableRetryDelay: millis(env("API_RETRY_UNAVAILABLE_DELAY_MS"), defaultUnavailableRetryDelay),
		},
		Identity: IdentityConfig{
			URL:         strings.TrimRight(get("SUPABASE_URL", ""), "/"),
			AnonKey:     get("SUPABASE_ANON_KEY", ""),
			JWTSecret:   get("SUPABASE_JWT_SECRET", ""),
			RedirectURL: get("AUTH_REDIRECT_URL", ""),
		},
		Dynamo: DynamoConfig{
			Region:          get("AWS_REGION", "us-east-1"),
			Endpoint:        get("DYNAMODB_ENDPOINT", ""),
			AccessKeyID:     get("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: get("AWS_SECRET_ACCESS_KEY", "local"),
			SettingsTable:   get("SETTINGS_TABLE", "settings"),
			SessionsTable:   get("SESSIONS_TABLE", "sessions"),
			PaymentsTable:   get("PAYMENTS_TABLE", "invoice_payments"),
		},
		Payments: PaymentsConfig{
			MercadoPagoAccessToken: get("MERCADOPAGO_ACCESS_TOKEN", ""),
			MockMode:               truthy(env("PAYMENT_GATEWAY_MOCK")) || truthy(env("MERCADOPAGO_MOCK")),
			TestPayerEmail:         get("MERCADOPAGO_TEST_PAYER_EMAIL", ""),
			TestPayerUserID:        get("MERCADOPAGO_TEST_PAYER_USER_ID", ""),
		},
		Twilio: TwilioConfig{
			AccountSID:     get("TWILIO_ACCOUNT_SID", ""),
			AuthToken:      get("TWILIO_AUTH_TOKEN", ""),
			WhatsAppNumber: get("TWILIO_WHATSAPP_NUMBER", ""),
		},
		Jobs: JobsConfig{
			StatusRefreshSchedule:  get("STATUS_REFRESH_SCHEDULE", "@every 30s"),
			BackupSchedule:         get("BACKUP_SCHEDULE", "0 3 * * *"),
			SessionRefreshSchedule: get("SESSION_REFRESH_SCHEDULE", "@every 10m"),
		},
		OTLPEndpoint: get("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
	}
	cfg.API.BaseURL = ResolveAPIBaseURL(cfg.PublicHost, env)
	return cfg
}

// ResolveAPIBaseURL picks the backend base URL: the production URL when the
// BFF is served under the production host, else API_URL, else localhost.
func ResolveAPIBaseURL(publicHost string, env func(string) string) string {
	prodHost := strings.TrimSpace(env("PRODUCTION_HOST"))
	prodURL := strings.TrimSpace(env("PRODUCTION_API_URL"))
	if prodHost != "" && prodURL != "" && strings.EqualFold(hostOnly(publicHost), hostOnly(prodHost)) {
		return strings.TrimRight(prodURL, "/")
	}
	if v := strings.TrimSpace(env("API_URL")); v != "" {
		return strings.TrimRight(v, "/")
	}
	return DefaultAPIBaseURL
}

func hostOnly(h string) string {
	h = strings.TrimSpace(h)
	if i := strings.Index(h, "://"); i >= 0 {
		h = h[i+3:]
	}
	if i := strings.IndexAny(h, ":/"); i >= 0 {
		h = h[:i]
	}
	return h
}

func millis(raw string, def time.Duration) time.Duration {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return time.Duration(n) * time.Millisecond
}

func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
