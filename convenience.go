// File: lixenwraith/settings/convenience.go
package settings

import (
	"fmt"
	"strings"
)

// Quick opens the store of appName at its default location and seeds it with
// defaults (may be nil). This is the usual composition-root entry point.
func Quick(appName string, defaults any) (*Store, error) {
	return NewBuilder().
		WithAppName(appName).
		WithDefaults("", defaults).
		Build()
}

// MustQuick is like Quick but panics on error
func MustQuick(appName string, defaults any) *Store {
	s, err := Quick(appName, defaults)
	if err != nil {
		panic(fmt.Sprintf("settings initialization failed: %v", err))
	}
	return s
}

// Require returns a validator that fails when any of keys is absent.
func Require(keys ...string) ValidatorFunc {
	return func(s *Store) error {
		var missing []string
		for _, key := range keys {
			if !s.Has(key) {
				missing = append(missing, key)
			}
		}
		if len(missing) > 0 {
			return fmt.Errorf("%w: %s", ErrKeyNotFound, strings.Join(missing, ", "))
		}
		return nil
	}
}

// Debug returns a formatted string showing every key, its kind and value in
// both documents, and the delegate count per persistent key.
func (s *Store) Debug() string {
	var b strings.Builder
	b.WriteString("Settings Debug Info:\n")
	fmt.Fprintf(&b, "File: %s (%s)\n", s.path, s.Codec().Format())
	fmt.Fprintf(&b, "Profiles: %s\n", s.ProfileDir())

	b.WriteString("Persistent:\n")
	for _, key := range s.persistent.Keys() {
		v := s.persistent[key]
		fmt.Fprintf(&b, "  %s (%s) = %s", key, v.Kind(), v)
		if n := s.delegates.Count(key); n > 0 {
			fmt.Fprintf(&b, " [%d delegate(s)]", n)
		}
		b.WriteByte('\n')
	}

	b.WriteString("Transient:\n")
	for _, key := range s.transient.Keys() {
		v := s.transient[key]
		fmt.Fprintf(&b, "  %s (%s) = %s\n", key, v.Kind(), v)
	}
	return b.String()
}
