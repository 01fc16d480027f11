package standardize

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// minYear bounds the accepted year range; the upper bound is currentYear+1 so
// answers recorded around a year boundary survive clock skew.
const minYear = 1900

// asString coerces scalar answer values to a trimmed string.
func asString(v any) string {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case bool:
		return strconv.FormatBool(s)
	}
	return ""
}

// asFloat parses a numeric answer from float64, int, or a numeric string.
// Returns nil when the value is absent or not numeric.
func asFloat(v any) *float64 {
	switch n := v.(type) {
	case float64:
		return &n
	case int:
		f := float64(n)
		return &f
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return &f
		}
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return &f
		}
	}
	return nil
}

func asInt(v any) *int {
	f := asFloat(v)
	if f == nil {
		return nil
	}
	i := int(*f)
	return &i
}

// asBool recognizes the truthy answer spellings seen across questionnaire
// versions.
func asBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true", "yes", "y", "1":
			return true
		}
	case float64:
		return b != 0
	case int:
		return b != 0
	}
	return false
}

// asStringSlice accepts a JSON-encoded string array, a native []any, a
// []string, or a single scalar, and returns the values as strings.
func asStringSlice(v any) []string {
	switch s := v.(type) {
	case []string:
		return s
	case []any:
		out := make([]string, 0, len(s))
		for _, item := range s {
			if str := asString(item); str != "" {
				out = append(out, str)
			}
		}
		return out
	case string:
		t := strings.TrimSpace(s)
		if t == "" {
			return nil
		}
		if strings.HasPrefix(t, "[") {
			var arr []any
			if err := json.Unmarshal([]byte(t), &arr); err == nil {
				return asStringSlice(arr)
			}
			return nil
		}
		return []string{t}
	}
	return nil
}

// parseRecordGroup decodes a JSON-encoded repeating group. A non-string,
// empty, or malformed value yields an empty slice, and a bare object is
// wrapped as a one-element slice.
func parseRecordGroup(v any) []map[string]any {
	switch g := v.(type) {
	case []map[string]any:
		return g
	case []any:
		out := make([]map[string]any, 0, len(g))
		for _, item := range g {
			if m, ok := item.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	case map[string]any:
		return []map[string]any{g}
	case string:
		t := strings.TrimSpace(g)
		if t == "" {
			return nil
		}
		if strings.HasPrefix(t, "{") {
			var obj map[string]any
			if err := json.Unmarshal([]byte(t), &obj); err != nil {
				return nil
			}
			return []map[string]any{obj}
		}
		var arr []map[string]any
		if err := json.Unmarshal([]byte(t), &arr); err != nil {
			return nil
		}
		return arr
	}
	return nil
}

// parseYear accepts a 4-digit year or an ISO date and rejects anything outside
// [1900, currentYear+1]. Returns nil for unparseable or out-of-range values.
func parseYear(v any, now time.Time) *int {
	var year int
	switch y := v.(type) {
	case float64:
		year = int(y)
	case int:
		year = y
	case string:
		s := strings.TrimSpace(y)
		if s == "" {
			return nil
		}
		if len(s) >= 4 {
			if t, err := time.Parse("2006-01-02", s); err == nil {
				year = t.Year()
				break
			}
			if t, err := time.Parse(time.RFC3339, s); err == nil {
				year = t.Year()
				break
			}
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil
		}
		year = n
	default:
		return nil
	}
	if year < minYear || year > now.Year()+1 {
		return nil
	}
	return &year
}
