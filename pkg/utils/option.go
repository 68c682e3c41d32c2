package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Option is a bag of recognized, independently optional settings keyed by
// dotted names (e.g. "listen.language"). Typed getters fail when the key is
// absent or the value has the wrong shape; callers fall back to defaults.
type Option map[string]interface{}

func (o Option) GetString(key string) (string, error) {
	v, ok := o[key]
	if !ok {
		return "", fmt.Errorf("option %q is not set", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("option %q is not a string", key)
	}
	return s, nil
}

func (o Option) GetBool(key string) (bool, error) {
	v, ok := o[key]
	if !ok {
		return false, fmt.Errorf("option %q is not set", key)
	}
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		parsed, err := strconv.ParseBool(b)
		if err != nil {
			return false, fmt.Errorf("option %q is not a bool: %w", key, err)
		}
		return parsed, nil
	}
	return false, fmt.Errorf("option %q is not a bool", key)
}

func (o Option) GetUint64(key string) (uint64, error) {
	v, ok := o[key]
	if !ok {
		return 0, fmt.Errorf("option %q is not set", key)
	}
	switch n := v.(type) {
	case uint64:
		return n, nil
	case int:
		if n < 0 {
			return 0, fmt.Errorf("option %q is negative", key)
		}
		return uint64(n), nil
	case float64:
		if n < 0 {
			return 0, fmt.Errorf("option %q is negative", key)
		}
		return uint64(n), nil
	case string:
		parsed, err := strconv.ParseUint(n, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("option %q is not an unsigned integer: %w", key, err)
		}
		return parsed, nil
	}
	return 0, fmt.Errorf("option %q is not an unsigned integer", key)
}

func (o Option) GetFloat64(key string) (float64, error) {
	v, ok := o[key]
	if !ok {
		return 0, fmt.Errorf("option %q is not set", key)
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case string:
		parsed, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, fmt.Errorf("option %q is not a number: %w", key, err)
		}
		return parsed, nil
	}
	return 0, fmt.Errorf("option %q is not a number", key)
}

// GetStringSlice accepts []string, []interface{} of strings, or the literal
// "[a b c]" form some settings stores hand back.
func (o Option) GetStringSlice(key string) ([]string, error) {
	v, ok := o[key]
	if !ok {
		return nil, fmt.Errorf("option %q is not set", key)
	}
	switch s := v.(type) {
	case []string:
		return s, nil
	case []interface{}:
		out := make([]string, 0, len(s))
		for _, item := range s {
			str, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("option %q contains a non-string element", key)
			}
			out = append(out, str)
		}
		return out, nil
	case string:
		trimmed := strings.TrimSpace(s)
		trimmed = strings.TrimPrefix(trimmed, "[")
		trimmed = strings.TrimSuffix(trimmed, "]")
		if IsEmpty(trimmed) {
			return []string{}, nil
		}
		return strings.Fields(trimmed), nil
	}
	return nil, fmt.Errorf("option %q is not a string slice", key)
}
