// Package httpclient is the single configured client to the shop backend:
// base URL, timeout, a flat retry-once policy and envelope/error
// normalization at the transport boundary.
package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"assistec/internal/domain/entities"
	"assistec/internal/infrastructure/logger"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	instrumentationName = "assistec/httpclient"
	requestIDHeader     = "X-Request-ID"
)

type Config struct {
	BaseURL               string
	Timeout               time.Duration
	NetworkRetryDelay     time.Duration
	UnavailableRetryDelay time.Duration
	// Transport replaces the default round tripper when set.
	Transport http.RoundTripper
}

type Client struct {
	rc      *resty.Client
	cfg     Config
	tracer  trace.Tracer
	retries metric.Int64Counter

	mu    sync.RWMutex
	token string
}

// Response is a successful backend response after envelope unwrapping.
type Response struct {
	Status     int
	Header     http.Header
	Shape      Shape
	Payload    json.RawMessage
	Pagination *entities.Pagination
	Body       []byte
}

// Decode unmarshals the unwrapped payload into v. Empty payloads leave v
// untouched.
func (r *Response) Decode(v any) error {
	if r == nil || len(r.Payload) == 0 {
		return nil
	}
	return json.Unmarshal(r.Payload, v)
}

func New(cfg Config) *Client {
	c := &Client{
		cfg:    cfg,
		tracer: otel.Tracer(instrumentationName),
	}

	retries, err := otel.Meter(instrumentationName).Int64Counter(
		"backend.client.retries",
		metric.WithDescription("Backend requests retried by the retry-once policy"),
	)
	if err != nil {
		logger.For("httpclient").Warn().Err(err).Msg("retry counter unavailable")
	}
	c.retries = retries

	rc := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		SetLogger(newRestyLogger()).
		SetRetryCount(1).
		SetRetryWaitTime(minDelay(cfg)).
		SetRetryMaxWaitTime(maxDelay(cfg)).
		SetRetryAfter(c.retryAfter).
		AddRetryCondition(shouldRetry).
		AddRetryHook(c.onRetry).
		OnBeforeRequest(c.beforeRequest).
		OnAfterResponse(afterResponse)
	if cfg.Transport != nil {
		rc.SetTransport(cfg.Transport)
	}
	c.rc = rc
	return c
}

// SetAuthToken sets the bearer token sent on every request. An empty token
// removes the header.
func (c *Client) SetAuthToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) authToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, http.MethodGet, path, nil)
}

func (c *Client) Post(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, http.MethodPost, path, body)
}

func (c *Client) Put(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, http.MethodPut, path, body)
}

func (c *Client) Patch(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, http.MethodPatch, path, body)
}

func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, http.MethodDelete, path, nil)
}

// Do sends a JSON request. path is relative to the base URL and may carry a
// query string.
func (c *Client) Do(ctx context.Context, method, path string, body any) (*Response, error) {
	req := c.rc.R()
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	resp, err := c.send(ctx, req, method, path)
	if err != nil {
		return nil, err
	}
	shape, payload, pg := Unwrap(resp.Body)
	resp.Shape, resp.Payload, resp.Pagination = shape, payload, pg
	return resp, nil
}

// Download fetches a raw body, e.g. a backup file. No envelope handling.
func (c *Client) Download(ctx context.Context, path string) (*Response, error) {
	req := c.rc.R().SetHeader("Accept", "*/*")
	resp, err := c.send(ctx, req, http.MethodGet, path)
	if err != nil {
		return nil, err
	}
	resp.Shape, resp.Payload = ShapeRaw, resp.Body
	return resp, nil
}

func (c *Client) send(ctx context.Context, req *resty.Request, method, path string) (*Response, error) {
	ctx, span := c.tracer.Start(ctx, "backend "+method, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("http.request.method", method),
		attribute.String("url.path", stripQuery(path)),
	)

	resp, err := req.SetContext(ctx).Execute(method, path)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport failure")
		return nil, &APIError{Err: err}
	}

	status := resp.StatusCode()
	span.SetAttributes(attribute.Int("http.response.status_code", status))
	if resp.IsError() {
		span.SetStatus(codes.Error, http.StatusText(status))
		return nil, errorFromBody(status, resp.Body())
	}
	return &Response{
		Status: status,
		Header: resp.Header(),
		Body:   resp.Body(),
	}, nil
}

func (c *Client) beforeRequest(_ *resty.Client, r *resty.Request) error {
	if r.Header.Get(requestIDHeader) == "" {
		r.SetHeader(requestIDHeader, uuid.NewString())
	}
	if token := c.authToken(); token != "" {
		r.SetAuthToken(token)
	}
	otel.GetTextMapPropagator().Inject(r.Context(), propagation.HeaderCarrier(r.Header))

	logger.For("httpclient").Debug().
		Str("method", r.Method).
		Str("url", r.URL).
		Str("request_id", r.Header.Get(requestIDHeader)).
		Msg("backend request")
	return nil
}

func afterResponse(_ *resty.Client, resp *resty.Response) error {
	logger.For("httpclient").Debug().
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Msg("backend response")
	return nil
}

func stripQuery(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		return path[:i]
	}
	return path
}
