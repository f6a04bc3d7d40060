package usecase

import (
	"errors"
	"math"
	"regexp"
	"strings"
	"time"

	"assistec/internal/domain/entities"
	"assistec/pkg"
	"assistec/pkg/query"
)

var ErrValidation = errors.New("validation failed")

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationError lists the invalid fields of a payload. It matches
// ErrValidation and, when set, Kind.
type ValidationError struct {
	Kind   error
	Fields []pkg.FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		if f.Field == "" {
			msgs = append(msgs, f.Message)
			continue
		}
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation || (e.Kind != nil && target == e.Kind)
}

type fieldErrors []pkg.FieldError

func (f *fieldErrors) add(field, message string) {
	*f = append(*f, pkg.FieldError{Field: field, Message: message})
}

func (f fieldErrors) err(kind error) error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Kind: kind, Fields: f}
}

func validEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// withPagination copies filters and replaces page/limit with their clamped
// values.
func withPagination(filters map[string]any) map[string]any {
	out := make(map[string]any, len(filters)+2)
	for k, v := range filters {
		out[k] = v
	}
	for k, v := range query.BuildPagination(filters["page"], filters["limit"]).Params() {
		out[k] = v
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func requireID(id string, sentinel error) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", sentinel
	}
	return id, nil
}

func ensureItems[T any](p entities.Page[T]) entities.Page[T] {
	if p.Items == nil {
		p.Items = []T{}
	}
	return p
}
