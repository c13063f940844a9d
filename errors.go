// FILE: lixenwraith/settings/errors.go
package settings

import (
	"errors"
	"fmt"
)

var (
	// ErrKeyNotFound is returned by fallible reads of an absent key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrTypeMismatch is returned when a stored Kind cannot be read as the requested type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrProfileNotFound is returned when a profile has no backing file.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrCorruptData is returned when a store or profile file exists but cannot be decoded.
	ErrCorruptData = errors.New("corrupt data")

	// ErrIO wraps filesystem failures during load, save, list or delete.
	ErrIO = errors.New("io failure")

	// ErrInvalidProfileName is returned for names that cannot be used as a file name unchanged.
	ErrInvalidProfileName = errors.New("invalid profile name")

	// ErrUnsupportedValue is returned when a value cannot be represented in a Value or a file format.
	ErrUnsupportedValue = errors.New("unsupported value")

	// ErrUnknownFormat is returned for a format name no codec handles.
	ErrUnknownFormat = errors.New("unknown file format")

	// ErrInvalidTarget is returned when Scan or ApplyDefaults receives an unusable argument.
	ErrInvalidTarget = errors.New("invalid decode target")
)

// TypeError describes a failed conversion of a stored value.
type TypeError struct {
	Key    string
	Want   string
	Got    Kind
	Reason string
}

func (e *TypeError) Error() string {
	msg := fmt.Sprintf("%s: key %q holds %s, want %s", ErrTypeMismatch, e.Key, e.Got, e.Want)
	if e.Reason != "" {
		msg += " (" + e.Reason + ")"
	}
	return msg
}

// Unwrap lets errors.Is match ErrTypeMismatch.
func (e *TypeError) Unwrap() error {
	return ErrTypeMismatch
}
