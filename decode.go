// FILE: lixenwraith/settings/decode.go
package settings

import (
	"fmt"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
)

// Scan decodes the persistent keys under a dotted prefix into target, which
// must be a non-nil pointer to a struct or map. Fields are matched by their
// `toml` tag; "bypass.copybypass" fills field `toml:"copybypass"` when
// scanning with prefix "bypass". Durations and times may be stored as strings.
func (s *Store) Scan(prefix string, target any) error {
	return scan(s.persistent, prefix, target)
}

// ScanTemp is Scan for the transient document.
func (s *Store) ScanTemp(prefix string, target any) error {
	return scan(s.transient, prefix, target)
}

func scan(doc Document, prefix string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("%w: must be a non-nil pointer, got %T", ErrInvalidTarget, target)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "toml",
		WeaklyTypedInput: true,
		DecodeHook:       getDecodeHook(),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(nestedUnder(doc, prefix)); err != nil {
		return fmt.Errorf("%w: decode failed for prefix %q: %w", ErrTypeMismatch, prefix, err)
	}
	return nil
}

// getDecodeHook returns the composite decode hook for all type conversions
func getDecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToTimeHookFunc(time.RFC3339),
		mapstructure.StringToSliceHookFunc(","),
	)
}
