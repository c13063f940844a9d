// File: lixenwraith/settings/helper.go
package settings

import "strings"

// setNestedValue sets a value in a nested map using a dot-notation path.
// It creates intermediate maps if they don't exist.
// If a segment exists but is not a map, it will be overwritten by a new map.
func setNestedValue(nested map[string]any, path string, value any) {
	segments := strings.Split(path, ".")
	current := nested

	for i := 0; i < len(segments)-1; i++ {
		segment := segments[i]

		next, exists := current[segment]
		if nextMap, isMap := next.(map[string]any); exists && isMap {
			current = nextMap
			continue
		}
		newMap := make(map[string]any)
		current[segment] = newMap
		current = newMap
	}

	current[segments[len(segments)-1]] = value
}

// nestedUnder builds a nested map from the keys of doc that start with prefix.
// The prefix is stripped and the rest of each key is split on dots. Keys are
// visited in sorted order, so "a.b" refines an Object stored under "a".
func nestedUnder(doc Document, prefix string) map[string]any {
	if prefix != "" && !strings.HasSuffix(prefix, ".") {
		prefix += "."
	}

	nested := make(map[string]any)
	for _, key := range doc.Keys() {
		rest, found := strings.CutPrefix(key, prefix)
		if !found || rest == "" {
			continue
		}
		setNestedValue(nested, rest, doc[key].Interface())
	}
	return nested
}

// joinPath joins a dotted prefix and a key segment.
func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	if strings.HasSuffix(prefix, ".") {
		return prefix + key
	}
	return prefix + "." + key
}
