package apps

import (
	"strconv"
	"strings"
)

// rawIndexer is the wire shape of an indexer record on the *arr APIs.
// Settings live in a flat name/value field list whose value types vary
// by field, so lookups go through the coercion helpers below.
type rawIndexer struct {
	ID                      int64   `json:"id,omitempty"`
	Name                    string  `json:"name"`
	Implementation          string  `json:"implementation"`
	ConfigContract          string  `json:"configContract"`
	Protocol                string  `json:"protocol"`
	Priority                int     `json:"priority"`
	EnableRss               bool    `json:"enableRss"`
	EnableAutomaticSearch   bool    `json:"enableAutomaticSearch"`
	EnableInteractiveSearch bool    `json:"enableInteractiveSearch"`
	Tags                    []int   `json:"tags"`
	Fields                  []field `json:"fields"`
}

type field struct {
	Name  string `json:"name"`
	Value any    `json:"value,omitempty"`
}

// fieldValue returns the named field's raw value, or nil if absent.
func (r rawIndexer) fieldValue(name string) any {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value
		}
	}
	return nil
}

func (r rawIndexer) stringField(name string) string {
	return toString(r.fieldValue(name))
}

func (r rawIndexer) intSliceField(name string) []int {
	return toIntSlice(r.fieldValue(name))
}

// toString coerces a field value to a string.
func toString(v any) string {
	s, _ := v.(string)
	return s
}

// toInt coerces a field value to an int. JSON numbers decode as float64;
// numeric strings also appear in older API versions.
func toInt(v any) int {
	switch t := v.(type) {
	case float64:
		return int(t)
	case int:
		return t
	case int64:
		return int(t)
	case string:
		i, _ := strconv.Atoi(strings.TrimSpace(t))
		return i
	default:
		return 0
	}
}

// toIntSlice coerces a field value to a list of ints. Category fields decode
// as []any of float64.
func toIntSlice(v any) []int {
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]int, 0, len(raw))
	for _, item := range raw {
		if n := toInt(item); n > 0 {
			out = append(out, n)
		}
	}
	return out
}
