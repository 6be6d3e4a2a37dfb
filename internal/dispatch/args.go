// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dispatch

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pdiddy/doctool/pkg/types"
)

// Argument bags arrive as map[string]any from JSON or YAML decoding, so the
// helpers below accept both decoders' concrete types (float64 from JSON,
// int from YAML, []any for lists of either).

// requireString returns the trimmed string value of key. Missing keys,
// non-string values, and blank strings are errors.
func requireString(args map[string]any, key string) (string, error) {
	raw, ok := args[key]
	if !ok {
		return "", fmt.Errorf("%s is required", key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string", key)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%s must be a non-empty string", key)
	}
	return s, nil
}

// requireLiteral returns the string value of key without trimming, for
// fields where whitespace is significant. Missing keys, non-string values,
// and empty strings are errors.
func requireLiteral(args map[string]any, key string) (string, error) {
	raw, ok := args[key]
	if !ok {
		return "", fmt.Errorf("%s is required", key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string", key)
	}
	if s == "" {
		return "", fmt.Errorf("%s must be a non-empty string", key)
	}
	return s, nil
}

// requireInt returns the integer value of key. JSON numbers (float64 with
// no fraction), native ints, and numeric strings all qualify.
func requireInt(args map[string]any, key string) (int, error) {
	raw, ok := args[key]
	if !ok {
		return 0, fmt.Errorf("%s is required", key)
	}
	return intValue(raw, key)
}

// intValue converts one decoded value to an int, naming field in errors.
func intValue(v any, field string) (int, error) {
	switch n := v.(type) {
	case nil:
		return 0, fmt.Errorf("%s is required", field)
	case float64:
		if math.Trunc(n) != n {
			return 0, fmt.Errorf("%s must be an integer, got %v", field, n)
		}
		return int(n), nil
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("%s must be an integer, got %q", field, n)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("%s must be an integer", field)
	}
}

// requireStringList returns the value of key as a non-empty list of
// non-blank strings.
func requireStringList(args map[string]any, key string) ([]string, error) {
	raw, ok := args[key]
	if !ok {
		return nil, fmt.Errorf("%s is required", key)
	}

	var items []any
	switch v := raw.(type) {
	case []any:
		items = v
	case []string:
		items = make([]any, len(v))
		for i, s := range v {
			items[i] = s
		}
	default:
		return nil, fmt.Errorf("%s must be a list of strings", key)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%s must not be empty", key)
	}

	out := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%s[%d] must be a string", key, i)
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil, fmt.Errorf("%s[%d] must be a non-empty string", key, i)
		}
		out = append(out, s)
	}
	return out, nil
}

// requireRangeList returns the value of key as a non-empty list of page
// ranges. Each element must be an object with integer start and end fields;
// bounds against the document are checked later, by the page engine.
func requireRangeList(args map[string]any, key string) ([]types.PageRange, error) {
	raw, ok := args[key]
	if !ok {
		return nil, fmt.Errorf("%s is required", key)
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%s must be a list of {start, end} objects", key)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%s must not be empty", key)
	}

	out := make([]types.PageRange, 0, len(items))
	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%s[%d] must be a {start, end} object", key, i)
		}
		start, err := intValue(m["start"], fmt.Sprintf("%s[%d].start", key, i))
		if err != nil {
			return nil, err
		}
		end, err := intValue(m["end"], fmt.Sprintf("%s[%d].end", key, i))
		if err != nil {
			return nil, err
		}
		out = append(out, types.PageRange{Start: start, End: end})
	}
	return out, nil
}
