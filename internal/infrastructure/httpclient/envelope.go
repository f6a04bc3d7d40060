package httpclient

import (
	"bytes"
	"encoding/json"

	"assistec/internal/domain/entities"
)

// Shape is how a backend response body was laid out.
type Shape int

const (
	// ShapeEmpty is a blank body or a JSON null.
	ShapeEmpty Shape = iota
	// ShapeRaw is a body returned as the resource itself.
	ShapeRaw
	// ShapeEnveloped is {"data": <object|array|null>, ...}.
	ShapeEnveloped
)

func (s Shape) String() string {
	switch s {
	case ShapeEmpty:
		return "empty"
	case ShapeRaw:
		return "raw"
	case ShapeEnveloped:
		return "enveloped"
	}
	return "unknown"
}

// Unwrap classifies body and returns its payload. A "data" key holding a
// scalar is a regular field, not an envelope. Envelope siblings describing
// paging are returned as pagination.
func Unwrap(body []byte) (Shape, json.RawMessage, *entities.Pagination) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ShapeEmpty, nil, nil
	}
	if trimmed[0] != '{' {
		return ShapeRaw, json.RawMessage(trimmed), nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return ShapeRaw, json.RawMessage(trimmed), nil
	}
	data, ok := obj["data"]
	if !ok || !isContainer(data) {
		return ShapeRaw, json.RawMessage(trimmed), nil
	}

	pg := pagination(obj)
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return ShapeEnveloped, nil, pg
	}
	return ShapeEnveloped, data, pg
}

func isContainer(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return false
	}
	switch raw[0] {
	case '{', '[':
		return true
	case 'n':
		return bytes.Equal(raw, []byte("null"))
	}
	return false
}

func pagination(obj map[string]json.RawMessage) *entities.Pagination {
	if raw, ok := obj["pagination"]; ok {
		var pg entities.Pagination
		if err := json.Unmarshal(raw, &pg); err == nil {
			return &pg
		}
	}

	var pg entities.Pagination
	found := false
	for key, dst := range map[string]*int{
		"page":       &pg.Page,
		"limit":      &pg.Limit,
		"total":      &pg.Total,
		"totalPages": &pg.TotalPages,
	} {
		raw, ok := obj[key]
		if !ok {
			continue
		}
		var n float64
		if err := json.Unmarshal(raw, &n); err != nil {
			continue
		}
		*dst = int(n)
		found = true
	}
	if !found {
		return nil
	}
	return &pg
}
