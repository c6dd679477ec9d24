// Package config converts an already-decoded policy document into a Policy.
// Decoding the document itself (YAML, JSON) is the caller's job; this package
// only interprets the resulting key-value map.
package config

import (
	"fmt"

	domainerrors "github.com/SayeemRaza50/compliance-checker/domain/errors"
)

// Config represents a decoded policy document as a key-value map.
type Config = map[string]any

// GetBool extracts a bool from config, returning (value, found).
func GetBool(config Config, key string) (bool, bool) {
	v, ok := config[key]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// GetStringSlice extracts a []string from config, returning (value, found).
// The result is non-nil when found, even for an empty list.
func GetStringSlice(config Config, key string) ([]string, bool) {
	v, ok := config[key]
	if !ok {
		return nil, false
	}
	switch arr := v.(type) {
	case []string:
		return append(make([]string, 0, len(arr)), arr...), true
	case []any:
		// YAML and JSON arrays decode as []any
		result := make([]string, 0, len(arr))
		for _, item := range arr {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			result = append(result, s)
		}
		return result, true
	default:
		return nil, false
	}
}

// MustGetBool extracts a required bool from config or returns error.
func MustGetBool(config Config, key string) (bool, error) {
	b, ok := GetBool(config, key)
	if !ok {
		return false, &domainerrors.ConfigError{
			Field: key,
			Err:   fmt.Errorf("required bool field '%s' is missing or not a boolean", key),
		}
	}
	return b, nil
}

// MustGetStringSlice extracts a required list of strings from config or returns error.
func MustGetStringSlice(config Config, key string) ([]string, error) {
	s, ok := GetStringSlice(config, key)
	if !ok {
		return nil, &domainerrors.ConfigError{
			Field: key,
			Err:   fmt.Errorf("required field '%s' is missing or not a list of strings", key),
		}
	}
	return s, nil
}
