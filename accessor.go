// FILE: lixenwraith/settings/accessor.go
package settings

import "fmt"

// Get returns the persistent value under key as T.
// It fails with ErrKeyNotFound when key is absent and ErrTypeMismatch when the
// stored Kind cannot be read as T.
func Get[T Type](s *Store, key string) (T, error) {
	return read[T](s.persistent, key, "")
}

// GetOr returns the persistent value under key as T, or def when key is absent.
// def only covers a missing key: a present value of the wrong Kind still fails
// with ErrTypeMismatch.
func GetOr[T Type](s *Store, key string, def T) (T, error) {
	return readOr(s.persistent, key, def)
}

// Is reports whether key is present and stored with the Kind T expects.
func Is[T Type](s *Store, key string) bool {
	v, ok := s.persistent[key]
	return ok && matches[T](v)
}

// Set stores v under key and runs the key's delegates.
func Set[T Type](s *Store, key string, v T) {
	s.SetValue(key, valueFrom(v))
}

// SetIfEmpty sets key only when it is absent and reports whether it did.
func SetIfEmpty[T Type](s *Store, key string, v T) bool {
	if s.Has(key) {
		return false
	}
	Set(s, key, v)
	return true
}

// GetTemp is Get for the transient document.
func GetTemp[T Type](s *Store, key string) (T, error) {
	return read[T](s.transient, key, "temp ")
}

// GetTempOr is GetOr for the transient document.
func GetTempOr[T Type](s *Store, key string, def T) (T, error) {
	return readOr(s.transient, key, def)
}

// IsTemp is Is for the transient document.
func IsTemp[T Type](s *Store, key string) bool {
	v, ok := s.transient[key]
	return ok && matches[T](v)
}

// SetTemp stores v in the transient document. No delegates run.
func SetTemp[T Type](s *Store, key string, v T) {
	s.SetTempValue(key, valueFrom(v))
}

func read[T Type](doc Document, key, scope string) (T, error) {
	v, ok := doc[key]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %s%q", ErrKeyNotFound, scope, key)
	}
	return convert[T](key, v)
}

func readOr[T Type](doc Document, key string, def T) (T, error) {
	v, ok := doc[key]
	if !ok {
		return def, nil
	}
	return convert[T](key, v)
}
