// FILE: lixenwraith/settings/document.go
package settings

import (
	"maps"
	"slices"
)

// Document maps opaque string keys to Values. Dots in keys are a naming
// convention only; "a.b" and "a" are unrelated entries.
type Document map[string]Value

// NewDocument returns an empty Document.
func NewDocument() Document {
	return make(Document)
}

// Has reports whether key is present.
func (d Document) Has(key string) bool {
	_, ok := d[key]
	return ok
}

// Lookup returns a copy of the Value stored under key.
func (d Document) Lookup(key string) (Value, bool) {
	v, ok := d[key]
	if !ok {
		return Value{}, false
	}
	return v.Clone(), true
}

// Put stores a copy of v under key, replacing any previous entry.
func (d Document) Put(key string, v Value) {
	d[key] = v.Clone()
}

// Keys returns the keys in lexicographic order.
func (d Document) Keys() []string {
	return slices.Sorted(maps.Keys(d))
}

// Clone returns a deep copy of d.
func (d Document) Clone() Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v.Clone()
	}
	return out
}

// Equal reports whether both documents hold the same keys with equal values.
func (d Document) Equal(o Document) bool {
	return maps.EqualFunc(d, o, Value.Equal)
}

// unionKeys returns the sorted union of the keys of a and b.
func unionKeys(a, b Document) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	for k := range a {
		seen[k] = struct{}{}
	}
	for k := range b {
		seen[k] = struct{}{}
	}
	return slices.Sorted(maps.Keys(seen))
}
