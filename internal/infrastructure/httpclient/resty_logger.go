package httpclient

import (
	"strings"

	"assistec/internal/infrastructure/logger"

	"github.com/rs/zerolog"
)

// restyLogger routes resty's internal log lines through zerolog.
type restyLogger struct {
	l *zerolog.Logger
}

func newRestyLogger() restyLogger {
	return restyLogger{l: logger.For("resty")}
}

func (r restyLogger) Errorf(format string, v ...interface{}) {
	r.l.Error().Msgf(strings.TrimSpace(format), v...)
}

func (r restyLogger) Warnf(format string, v ...interface{}) {
	r.l.Warn().Msgf(strings.TrimSpace(format), v...)
}

func (r restyLogger) Debugf(format string, v ...interface{}) {
	r.l.Debug().Msgf(strings.TrimSpace(format), v...)
}
