package workbench

import (
	"fmt"
	"strconv"
	"strings"
)

// Params is one operation's argument mapping. Values are the decoded JSON
// primitives the registry hands over: strings, float64 numbers, bools,
// and nested maps or slices.
type Params map[string]any

// Require verifies that every key is present and non-empty. The returned
// error names all missing keys at once.
func (p Params) Require(keys ...string) error {
	var missing []string
	for _, key := range keys {
		if isEmpty(p[key]) {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("Missing required parameters: %s", strings.Join(missing, ", "))
	}
	return nil
}

// String returns a string parameter, converting numbers when a numeric ID
// arrives as a JSON number.
func (p Params) String(key string) string {
	switch v := p[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case nil:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

// Int returns an integer parameter with a default for absent values.
func (p Params) Int(key string, def int) int {
	switch v := p[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return def
		}
		return parsed
	default:
		return def
	}
}

// StringSlice returns a list parameter. Accepts []string, []any of
// strings, or a single string.
func (p Params) StringSlice(key string) []string {
	switch v := p[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
		return out
	case string:
		if strings.TrimSpace(v) == "" {
			return nil
		}
		return []string{strings.TrimSpace(v)}
	default:
		return nil
	}
}

// Has reports whether key is present with a non-empty value.
func (p Params) Has(key string) bool {
	return !isEmpty(p[key])
}

// mergeOptional copies recognized optional parameters into a request
// body. Absent or nil parameters are omitted, never sent as null.
func mergeOptional(body map[string]any, params Params, keys ...string) {
	for _, key := range keys {
		if value, ok := params[key]; ok && value != nil {
			if s, isStr := value.(string); isStr && strings.TrimSpace(s) == "" {
				continue
			}
			body[key] = value
		}
	}
}

func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case []any:
		return len(v) == 0
	case []string:
		return len(v) == 0
	default:
		return false
	}
}
