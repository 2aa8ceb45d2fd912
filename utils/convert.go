package utils

import (
	"strconv"
	"strings"
)

// SafeFloat coerces a form string or decoded JSON value to float64.
// Unparsable input yields 0.
func SafeFloat(v interface{}) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case float32:
		return float64(val)
	case int:
		return float64(val)
	case int64:
		return float64(val)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// SafeInt coerces a form string or decoded JSON value to int.
// JSON numbers arrive as float64. Unparsable input yields 0.
func SafeInt(v interface{}) int {
	switch val := v.(type) {
	case int:
		return val
	case int64:
		return int(val)
	case float64:
		return int(val)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}
