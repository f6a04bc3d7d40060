package httpclient

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"assistec/pkg"
)

// ErrInvalidResponse marks a 2xx response whose body could not be decoded.
var ErrInvalidResponse = errors.New("invalid backend response")

// APIError is a failed backend call. Status is 0 when no HTTP response was
// received.
type APIError struct {
	Status  int
	Message string
	Details []pkg.FieldError
	Err     error
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Invalid() {
		return fmt.Sprintf("backend status %d: %s: %v", e.Status, msg, e.Err)
	}
	if e.Status == 0 {
		return fmt.Sprintf("backend unreachable: %s", msg)
	}
	return fmt.Sprintf("backend status %d: %s", e.Status, msg)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Network reports whether the call failed before any HTTP response.
func (e *APIError) Network() bool {
	return e.Status == 0 && !e.Invalid()
}

// Invalid reports whether the backend answered with a body that does not
// match the expected payload.
func (e *APIError) Invalid() bool {
	return errors.Is(e.Err, ErrInvalidResponse)
}

// Normalize turns any failure of a backend call into an *APIError whose
// message is the server's when it sent one, else fallback.
func Normalize(err error, fallback string) error {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		out := *apiErr
		if strings.TrimSpace(out.Message) == "" {
			out.Message = fallback
		}
		return &out
	}
	return &APIError{Message: fallback, Err: err}
}

// InvalidResponse reports a decode failure of resp's payload. The status of
// the answered call is kept.
func InvalidResponse(resp *Response, err error, fallback string) error {
	status := 0
	if resp != nil {
		status = resp.Status
	}
	return &APIError{Status: status, Message: fallback, Err: fmt.Errorf("%w: %w", ErrInvalidResponse, err)}
}

// Message returns the message carried by err when it is an *APIError.
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}

func errorFromBody(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(bytes.TrimSpace(body), &obj); err != nil {
		return apiErr
	}
	apiErr.Message = extractMessage(obj)
	apiErr.Details = extractDetails(obj)
	return apiErr
}

func extractMessage(obj map[string]json.RawMessage) string {
	for _, key := range []string{"error", "message", "erro", "mensagem"} {
		raw, ok := obj[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			if s = strings.TrimSpace(s); s != "" {
				return s
			}
			continue
		}
		var nested map[string]json.RawMessage
		if err := json.Unmarshal(raw, &nested); err == nil {
			if s := extractMessage(nested); s != "" {
				return s
			}
		}
	}
	return ""
}

func extractDetails(obj map[string]json.RawMessage) []pkg.FieldError {
	for _, key := range []string{"details", "errors"} {
		raw, ok := obj[key]
		if !ok {
			continue
		}
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			continue
		}
		out := make([]pkg.FieldError, 0, len(items))
		for _, item := range items {
			if fe, ok := fieldError(item); ok {
				out = append(out, fe)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

func fieldError(raw json.RawMessage) (pkg.FieldError, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return pkg.FieldError{Message: s}, s != ""
	}

	var item map[string]any
	if err := json.Unmarshal(raw, &item); err != nil {
		return pkg.FieldError{}, false
	}
	fe := pkg.FieldError{
		Field:   firstString(item, "field", "path", "campo", "param"),
		Message: firstString(item, "message", "msg", "mensagem"),
	}
	return fe, fe.Message != ""
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		switch v := m[k].(type) {
		case string:
			if v != "" {
				return v
			}
		case []any:
			parts := make([]string, 0, len(v))
			for _, p := range v {
				parts = append(parts, fmt.Sprint(p))
			}
			if len(parts) > 0 {
				return strings.Join(parts, ".")
			}
		}
	}
	return ""
}
