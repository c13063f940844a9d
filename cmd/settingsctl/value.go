// FILE: lixenwraith/settings/cmd/settingsctl/value.go
package main

import (
	"math"
	"strconv"
	"strings"

	"github.com/lixenwraith/settings"
)

// parseValue converts a command-line argument to a Value. JSON-looking input
// must be valid JSON; anything else falls back to bool, int, float, string.
func parseValue(s string) (settings.Value, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "null" || strings.HasPrefix(trimmed, "[") ||
		strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, `"`) {
		return settings.ParseJSON([]byte(trimmed))
	}

	switch s {
	case "true":
		return settings.Bool(true), nil
	case "false":
		return settings.Bool(false), nil
	}

	// Try int64
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return settings.Int(v), nil
	}

	// Try float64; NaN and Inf stay strings
	if v, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
		return settings.Float(v), nil
	}

	return settings.String(s), nil
}
