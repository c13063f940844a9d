// FILE: lixenwraith/settings/errors_test.go
package settings

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelErrors(t *testing.T) {
	sentinels := []error{
		ErrKeyNotFound, ErrTypeMismatch, ErrProfileNotFound, ErrCorruptData, ErrIO,
		ErrInvalidProfileName, ErrUnsupportedValue, ErrUnknownFormat, ErrInvalidTarget,
	}

	for i, err := range sentinels {
		t.Run(err.Error(), func(t *testing.T) {
			wrapped := fmt.Errorf("%w: context", err)
			assert.ErrorIs(t, wrapped, err)
			for j, other := range sentinels {
				if i != j {
					assert.False(t, errors.Is(wrapped, other), "%v matched %v", err, other)
				}
			}
		})
	}

	te := &TypeError{Key: "k", Want: "string", Got: KindInt}
	assert.ErrorIs(t, te, ErrTypeMismatch)
	assert.Contains(t, te.Error(), `key "k" holds int, want string`)
}
