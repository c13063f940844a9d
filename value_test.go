// FILE: lixenwraith/settings/value_test.go
package settings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueKinds(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		kind  Kind
	}{
		{"Zero", Value{}, KindNull},
		{"Null", Null(), KindNull},
		{"Bool", Bool(true), KindBool},
		{"Int", Int(-7), KindInt},
		{"Float", Float(0.5), KindFloat},
		{"String", String("x"), KindString},
		{"Array", Array(Int(1), String("a")), KindArray},
		{"Object", Object(map[string]Value{"a": Bool(false)}), KindObject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.value.Kind())
			assert.NotEmpty(t, tt.kind.String())
		})
	}
}

func TestValueEqual(t *testing.T) {
	assert.True(t, Int(1).Equal(Int(1)))
	assert.False(t, Int(1).Equal(Float(1)), "kinds differ")
	assert.True(t, Null().Equal(Value{}))
	assert.True(t, Array(Int(1), Array(String("x"))).Equal(Array(Int(1), Array(String("x")))))
	assert.False(t, Array(Int(1)).Equal(Array(Int(1), Int(2))))
	assert.True(t, Object(map[string]Value{"a": Int(1)}).Equal(Object(map[string]Value{"a": Int(1)})))
	assert.False(t, Object(map[string]Value{"a": Int(1)}).Equal(Object(map[string]Value{"b": Int(1)})))
}

func TestValueCloneIsolation(t *testing.T) {
	inner := []Value{Int(1), Int(2)}
	arr := Array(inner...)
	inner[0] = Int(99)

	got, ok := arr.AsArray()
	require.True(t, ok)
	assert.Equal(t, Int(1), got[0], "constructor copies")

	got[1] = Int(42)
	again, _ := arr.AsArray()
	assert.Equal(t, Int(2), again[1], "accessor copies")

	entries := map[string]Value{"k": String("v")}
	obj := Object(entries)
	entries["k"] = String("changed")
	v, _ := obj.AsObject()
	assert.Equal(t, String("v"), v["k"])
}

func TestValueOf(t *testing.T) {
	type named string

	tests := []struct {
		name string
		in   any
		want Value
	}{
		{"Nil", nil, Null()},
		{"Bool", true, Bool(true)},
		{"Int", 42, Int(42)},
		{"Int8", int8(-3), Int(-3)},
		{"Uint16", uint16(7), Int(7)},
		{"Float32", float32(0.5), Float(0.5)},
		{"NamedString", named("hello"), String("hello")},
		{"Duration", 90 * time.Second, String("1m30s")},
		{"StringSlice", []string{"a", "b"}, Array(String("a"), String("b"))},
		{"NilSlice", []int(nil), Array()},
		{"Map", map[string]any{"n": 1, "s": "x"}, Object(map[string]Value{"n": Int(1), "s": String("x")})},
		{"Value", Float(2), Float(2)},
		{"NilPointer", (*int)(nil), Null()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValueOf(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}

	t.Run("Unsupported", func(t *testing.T) {
		_, err := ValueOf(struct{ A int }{1})
		assert.ErrorIs(t, err, ErrUnsupportedValue)

		_, err = ValueOf(map[int]string{1: "a"})
		assert.ErrorIs(t, err, ErrUnsupportedValue)

		_, err = ValueOf(uint64(1 << 63))
		assert.ErrorIs(t, err, ErrUnsupportedValue)
	})
}

func TestValueInterface(t *testing.T) {
	v := Object(map[string]Value{
		"list": Array(Int(1), Float(1.5), Null()),
		"flag": Bool(true),
	})
	assert.Equal(t, map[string]any{
		"list": []any{int64(1), 1.5, nil},
		"flag": true,
	}, v.Interface())
}

func TestValueString(t *testing.T) {
	assert.Equal(t, `{"a":[1,2.0,"x",null],"b":true}`,
		Object(map[string]Value{
			"b": Bool(true),
			"a": Array(Int(1), Float(2), String("x"), Null()),
		}).String())
}
