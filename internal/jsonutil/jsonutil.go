// Package jsonutil provides helpers for loosely-typed JSON responses from
// third-party services.
package jsonutil

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v interface{}, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// GetString safely extracts a string value from a map[string]interface{}.
// Returns the value if it's a string, otherwise returns empty string.
func GetString(m map[string]interface{}, key string) string {
	if val, ok := m[key].(string); ok {
		return val
	}
	return ""
}

// ToString converts an interface{} value to a string representation.
// Handles string, float64 (formatted as integer), bool, and other types.
func ToString(v interface{}) string {
	if v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case float64:
		if val == float64(int64(val)) {
			return fmt.Sprintf("%.0f", val)
		}
		return fmt.Sprintf("%g", val)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// Bool reads m[key] as a boolean. Services disagree on whether flags are
// JSON booleans or the strings "true"/"false", so both are accepted.
// ok is false when the key is absent or not boolean-like.
func Bool(m map[string]interface{}, key string) (value bool, ok bool) {
	v, present := m[key]
	if !present || v == nil {
		return false, false
	}
	b, err := strconv.ParseBool(ToString(v))
	if err != nil {
		return false, false
	}
	return b, true
}
