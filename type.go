// FILE: lixenwraith/settings/type.go
package settings

import (
	"math"
)

// Type lists the static types the typed accessors can read and write.
type Type interface {
	bool | int | int32 | int64 | float32 | float64 | string | []string | []Value | map[string]Value | Value
}

// kindFor returns the Kind a value of T is stored as. ok is false for Value,
// which accepts every Kind.
func kindFor[T Type]() (kind Kind, ok bool) {
	var zero T
	switch any(zero).(type) {
	case bool:
		return KindBool, true
	case int, int32, int64:
		return KindInt, true
	case float32, float64:
		return KindFloat, true
	case string:
		return KindString, true
	case []string, []Value:
		return KindArray, true
	case map[string]Value:
		return KindObject, true
	}
	return KindNull, false
}

// typeName returns the Go name of T for error messages.
func typeName[T Type]() string {
	var zero T
	switch any(zero).(type) {
	case bool:
		return "bool"
	case int:
		return "int"
	case int32:
		return "int32"
	case int64:
		return "int64"
	case float32:
		return "float32"
	case float64:
		return "float64"
	case string:
		return "string"
	case []string:
		return "[]string"
	case []Value:
		return "[]Value"
	case map[string]Value:
		return "map[string]Value"
	}
	return "Value"
}

// convert is the single place a stored Value is checked against and converted
// to a requested static type. Every typed read goes through it.
func convert[T Type](key string, v Value) (T, error) {
	var out T
	mismatch := func(reason string) (T, error) {
		var zero T
		return zero, &TypeError{Key: key, Want: typeName[T](), Got: v.kind, Reason: reason}
	}

	switch p := any(&out).(type) {
	case *Value:
		*p = v.Clone()
	case *bool:
		if v.kind != KindBool {
			return mismatch("")
		}
		*p = v.b
	case *int64:
		if v.kind != KindInt {
			return mismatch("")
		}
		*p = v.i
	case *int:
		if v.kind != KindInt {
			return mismatch("")
		}
		if v.i < math.MinInt || v.i > math.MaxInt {
			return mismatch("out of range")
		}
		*p = int(v.i)
	case *int32:
		if v.kind != KindInt {
			return mismatch("")
		}
		if v.i < math.MinInt32 || v.i > math.MaxInt32 {
			return mismatch("out of range")
		}
		*p = int32(v.i)
	case *float64:
		switch v.kind {
		case KindFloat:
			*p = v.f
		case KindInt:
			*p = float64(v.i)
		default:
			return mismatch("")
		}
	case *float32:
		switch v.kind {
		case KindFloat:
			*p = float32(v.f)
		case KindInt:
			*p = float32(v.i)
		default:
			return mismatch("")
		}
	case *string:
		if v.kind != KindString {
			return mismatch("")
		}
		*p = v.s
	case *[]string:
		if v.kind != KindArray {
			return mismatch("")
		}
		strs := make([]string, len(v.arr))
		for i, e := range v.arr {
			if e.kind != KindString {
				return mismatch("element is " + e.kind.String())
			}
			strs[i] = e.s
		}
		*p = strs
	case *[]Value:
		if v.kind != KindArray {
			return mismatch("")
		}
		*p, _ = v.AsArray()
	case *map[string]Value:
		if v.kind != KindObject {
			return mismatch("")
		}
		*p, _ = v.AsObject()
	}
	return out, nil
}

// valueFrom wraps a typed Go value into a Value.
func valueFrom[T Type](x T) Value {
	switch t := any(x).(type) {
	case Value:
		return t.Clone()
	case bool:
		return Bool(t)
	case int:
		return Int(int64(t))
	case int32:
		return Int(int64(t))
	case int64:
		return Int(t)
	case float32:
		return Float(float64(t))
	case float64:
		return Float(t)
	case string:
		return String(t)
	case []string:
		arr := make([]Value, len(t))
		for i, s := range t {
			arr[i] = String(s)
		}
		return Value{kind: KindArray, arr: arr}
	case []Value:
		return Array(t...)
	case map[string]Value:
		return Object(t)
	}
	return Null()
}

// matches reports whether v is stored with the Kind T expects.
func matches[T Type](v Value) bool {
	want, ok := kindFor[T]()
	if !ok {
		return true
	}
	if v.kind != want {
		return false
	}
	if _, isStrings := any(*new(T)).([]string); isStrings {
		for _, e := range v.arr {
			if e.kind != KindString {
				return false
			}
		}
	}
	return true
}
