package httpclient

import (
	"context"
	"errors"
	"net/http"
	"time"

	"assistec/internal/infrastructure/logger"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// shouldRetry selects the two retryable failure classes: no HTTP response at
// all, and 503. Caller cancellation is never retried.
func shouldRetry(resp *resty.Response, err error) bool {
	if err != nil {
		return !errors.Is(err, context.Canceled)
	}
	return resp != nil && resp.StatusCode() == http.StatusServiceUnavailable
}

// retryAfter returns the fixed delay for the failure class. The resty wait
// bounds are set to the same two values so the delay is used as is.
func (c *Client) retryAfter(_ *resty.Client, resp *resty.Response) (time.Duration, error) {
	if resp != nil && resp.StatusCode() == http.StatusServiceUnavailable {
		return positive(c.cfg.UnavailableRetryDelay), nil
	}
	return positive(c.cfg.NetworkRetryDelay), nil
}

func (c *Client) onRetry(resp *resty.Response, err error) {
	// the hook also runs after the final attempt
	if resp == nil || resp.Request == nil || resp.Request.Attempt > 1 {
		return
	}

	class := "network"
	if err == nil {
		class = "unavailable"
	}
	ev := logger.For("httpclient").Warn().
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Str("class", class)
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Msg("retrying backend request once")

	if c.retries != nil {
		c.retries.Add(resp.Request.Context(), 1, metric.WithAttributes(attribute.String("class", class)))
	}
}

func minDelay(cfg Config) time.Duration {
	return positive(min(cfg.NetworkRetryDelay, cfg.UnavailableRetryDelay))
}

func maxDelay(cfg Config) time.Duration {
	return positive(max(cfg.NetworkRetryDelay, cfg.UnavailableRetryDelay))
}

// positive keeps resty's jittered fallback away from a zero range.
func positive(d time.Duration) time.Duration {
	if d <= 0 {
		return time.Millisecond
	}
	return d
}
