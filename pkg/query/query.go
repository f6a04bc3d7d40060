// Package query turns loosely typed filter maps into server-ready query
// strings. Every function here is total: malformed input is omitted, never
// reported.
package query

import (
	"fmt"
	"math"
	"net/url"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	dateLayout = "2006-01-02"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Pagination is the clamped page/limit pair sent to list endpoints.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Params returns the pagination as filter entries.
func (p Pagination) Params() map[string]any {
	return map[string]any{"page": p.Page, "limit": p.Limit}
}

// BuildSafeFilters drops empty values and date-shaped keys whose value is not
// a real YYYY-MM-DD calendar date.
func BuildSafeFilters(filters map[string]any) map[string]any {
	out := make(map[string]any, len(filters))
	for key, raw := range filters {
		v, ok := normalize(raw)
		if !ok {
			continue
		}
		if isDateKey(key) {
			s, ok := dateValue(v)
			if !ok {
				continue
			}
			v = s
		}
		out[key] = v
	}
	return out
}

// BuildQuery serializes params into "?k=v&..." with sorted keys. Slices become
// repeated keys. Returns "" when nothing survives.
func BuildQuery(params map[string]any) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := url.Values{}
	for _, key := range keys {
		v, ok := normalize(params[key])
		if !ok {
			continue
		}
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
			for i := 0; i < rv.Len(); i++ {
				item, ok := normalize(rv.Index(i).Interface())
				if !ok {
					continue
				}
				values.Add(key, format(item))
			}
			continue
		}
		values.Add(key, format(v))
	}

	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

// BuildPagination clamps page to >= 1 and limit to [1, MaxLimit]. Non-numeric
// input falls back to the defaults.
func BuildPagination(page, limit any) Pagination {
	p, ok := toInt(page)
	if !ok {
		p = DefaultPage
	}
	if p < 1 {
		p = 1
	}

	l, ok := toInt(limit)
	if !ok {
		l = DefaultLimit
	}
	if l < 1 {
		l = 1
	}
	if l > MaxLimit {
		l = MaxLimit
	}
	return Pagination{Page: p, Limit: l}
}

// FromValues converts request query values into a filter map. Keys with a
// single value map to a string, repeated keys to a []string.
func FromValues(values url.Values, skip ...string) map[string]any {
	out := make(map[string]any, len(values))
	for key, vs := range values {
		if contains(skip, key) {
			continue
		}
		switch len(vs) {
		case 0:
		case 1:
			out[key] = vs[0]
		default:
			out[key] = append([]string(nil), vs...)
		}
	}
	return out
}

func isDateKey(key string) bool {
	k := strings.ToLower(key)
	return strings.Contains(k, "data") || k == "de" || k == "ate"
}

func dateValue(v any) (string, bool) {
	switch t := v.(type) {
	case time.Time:
		return t.Format(dateLayout), true
	case string:
		if !datePattern.MatchString(t) {
			return "", false
		}
		if _, err := time.Parse(dateLayout, t); err != nil {
			return "", false
		}
		return t, true
	default:
		return "", false
	}
}

// normalize dereferences pointers and reports whether v carries a value.
func normalize(v any) (any, bool) {
	if v == nil {
		return nil, false
	}
	switch t := v.(type) {
	case string:
		if strings.TrimSpace(t) == "" {
			return nil, false
		}
		return t, true
	case []string:
		kept := make([]string, 0, len(t))
		for _, s := range t {
			if strings.TrimSpace(s) != "" {
				kept = append(kept, s)
			}
		}
		if len(kept) == 0 {
			return nil, false
		}
		return kept, true
	case time.Time:
		if t.IsZero() {
			return nil, false
		}
		return t, true
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil, false
		}
		return t, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil, false
		}
		return normalize(rv.Elem().Interface())
	case reflect.Slice, reflect.Map:
		if rv.IsNil() || rv.Len() == 0 {
			return nil, false
		}
	case reflect.Array:
		if rv.Len() == 0 {
			return nil, false
		}
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return nil, false
	}
	return v, true
}

func format(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case time.Time:
		if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
			return t.Format(dateLayout)
		}
		return t.Format(time.RFC3339)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(v)
	}
}

func toInt(v any) (int, bool) {
	v, ok := normalize(v)
	if !ok {
		return 0, false
	}
	switch t := v.(type) {
	case int:
		return t, true
	case int8:
		return int(t), true
	case int16:
		return int(t), true
	case int32:
		return int(t), true
	case int64:
		return clampInt64(t), true
	case uint:
		return clampInt64(int64(min(uint64(t), math.MaxInt64))), true
	case uint8:
		return int(t), true
	case uint16:
		return int(t), true
	case uint32:
		return int(t), true
	case uint64:
		return clampInt64(int64(min(t, math.MaxInt64))), true
	case float32:
		return floatToInt(float64(t))
	case float64:
		return floatToInt(t)
	case string:
		s := strings.TrimSpace(t)
		if n, err := strconv.Atoi(s); err == nil {
			return n, true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return floatToInt(f)
		}
		return 0, false
	default:
		return 0, false
	}
}

func floatToInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f > math.MaxInt32 {
		return math.MaxInt32, true
	}
	if f < math.MinInt32 {
		return math.MinInt32, true
	}
	return int(f), true
}

func clampInt64(n int64) int {
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	if n < math.MinInt32 {
		return math.MinInt32
	}
	return int(n)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
