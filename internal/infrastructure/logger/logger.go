package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Level       string
	Environment string
	ServiceName string
}

// New builds the process logger and installs it as the zerolog global.
// Development gets the console writer, everything else JSON lines.
func New(cfg Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level)))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var w io.Writer = os.Stdout
	if cfg.Environment == "" || cfg.Environment == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	l := zerolog.New(w).Level(level).With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Logger()
	log.Logger = l
	return l
}

// For returns the global logger tagged with a component, e.g.
// "payment.usecase".
func For(component string) *zerolog.Logger {
	l := log.With().Str("component", component).Logger()
	return &l
}
