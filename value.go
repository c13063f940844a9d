// FILE: lixenwraith/settings/value.go
package settings

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"time"
)

// Kind is the tag of a stored Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindObject
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Value is a single configuration entry. It carries exactly one Kind.
// The zero Value is Null.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	arr  []Value
	obj  map[string]Value
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an integer value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a floating-point value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Array returns an ordered list value. The elements are copied.
func Array(elems ...Value) Value {
	arr := make([]Value, len(elems))
	for i, e := range elems {
		arr[i] = e.Clone()
	}
	return Value{kind: KindArray, arr: arr}
}

// Object returns a mapping value. The entries are copied.
func Object(entries map[string]Value) Value {
	obj := make(map[string]Value, len(entries))
	for k, e := range entries {
		obj[k] = e.Clone()
	}
	return Value{kind: KindObject, obj: obj}
}

// Kind reports the tag of v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean payload and whether v is a Bool.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsInt returns the integer payload and whether v is an Int.
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == KindInt }

// AsFloat returns the float payload and whether v is a Float.
func (v Value) AsFloat() (float64, bool) { return v.f, v.kind == KindFloat }

// AsString returns the string payload and whether v is a String.
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsArray returns a copy of the elements and whether v is an Array.
func (v Value) AsArray() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return Array(v.arr...).arr, true
}

// AsObject returns a copy of the entries and whether v is an Object.
func (v Value) AsObject() (map[string]Value, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	return Object(v.obj).obj, true
}

// Len returns the number of elements of an Array or entries of an Object, 0 otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return len(v.obj)
	}
	return 0
}

// Clone returns a deep copy of v.
func (v Value) Clone() Value {
	switch v.kind {
	case KindArray:
		return Array(v.arr...)
	case KindObject:
		return Object(v.obj)
	}
	return v
}

// Equal reports whether v and o carry the same kind and the same payload.
// Int(1) and Float(1) are not equal.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f
	case KindString:
		return v.s == o.s
	case KindArray:
		return slices.EqualFunc(v.arr, o.arr, Value.Equal)
	case KindObject:
		return maps.EqualFunc(v.obj, o.obj, Value.Equal)
	}
	return false
}

// Interface returns v as plain Go data: nil, bool, int64, float64, string,
// []any or map[string]any.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindArray:
		out := make([]any, len(v.arr))
		for i, e := range v.arr {
			out[i] = e.Interface()
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.obj))
		for k, e := range v.obj {
			out[k] = e.Interface()
		}
		return out
	}
	return nil
}

// String renders v as compact JSON text.
func (v Value) String() string {
	data, err := v.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("<%s: %v>", v.kind, err)
	}
	return string(data)
}

// ValueOf converts plain Go data to a Value. Signed and unsigned integers
// become Int, floats become Float, durations and times become String.
// Slices, arrays and string-keyed maps are converted recursively.
func ValueOf(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t.Clone(), nil
	case time.Duration:
		return String(t.String()), nil
	case time.Time:
		return String(t.Format(time.RFC3339Nano)), nil
	}
	return valueOfReflect(reflect.ValueOf(x))
}

func valueOfReflect(rv reflect.Value) (Value, error) {
	switch rv.Kind() {
	case reflect.Invalid:
		return Null(), nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
		return ValueOf(rv.Elem().Interface())
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if rv.Type() == reflect.TypeOf(time.Duration(0)) {
			return String(time.Duration(rv.Int()).String()), nil
		}
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > uint64(1<<63-1) {
			return Value{}, fmt.Errorf("%w: unsigned integer %d overflows int64", ErrUnsupportedValue, u)
		}
		return Int(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float()), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Array(), nil
		}
		arr := make([]Value, rv.Len())
		for i := range arr {
			elem, err := ValueOf(rv.Index(i).Interface())
			if err != nil {
				return Value{}, fmt.Errorf("index %d: %w", i, err)
			}
			arr[i] = elem
		}
		return Value{kind: KindArray, arr: arr}, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Value{}, fmt.Errorf("%w: map key type %s", ErrUnsupportedValue, rv.Type().Key())
		}
		obj := make(map[string]Value, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			elem, err := ValueOf(iter.Value().Interface())
			if err != nil {
				return Value{}, fmt.Errorf("key %q: %w", iter.Key().String(), err)
			}
			obj[iter.Key().String()] = elem
		}
		return Value{kind: KindObject, obj: obj}, nil
	}
	return Value{}, fmt.Errorf("%w: cannot store %s", ErrUnsupportedValue, rv.Type())
}
