// FILE: lixenwraith/settings/codec_test.go
package settings

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument(withNull bool) Document {
	doc := Document{
		"bool":   Bool(true),
		"int":    Int(-12),
		"big":    Int(math.MaxInt64),
		"float":  Float(0.25),
		"whole":  Float(4),
		"string": String("a \"quoted\" <value>"),
		"list":   Array(String("x"), Int(1), Float(1.5)),
		"empty":  Array(),
		"object": Object(map[string]Value{
			"inner": Object(map[string]Value{"deep": Bool(false)}),
			"n":     Int(3),
		}),
		"digits": String("123"),
	}
	if withNull {
		doc["null"] = Null()
		doc["list"] = Array(String("x"), Null())
	}
	return doc
}

func TestCodecRoundTrip(t *testing.T) {
	tests := []struct {
		format   string
		withNull bool
	}{
		{"json", true},
		{"yaml", true},
		{"toml", false},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			codec, err := CodecFor(tt.format)
			require.NoError(t, err)
			assert.Equal(t, Format(tt.format), codec.Format())

			doc := sampleDocument(tt.withNull)
			data, err := codec.Marshal(doc)
			require.NoError(t, err)

			got, err := codec.Unmarshal(data)
			require.NoError(t, err)
			for _, key := range doc.Keys() {
				assert.True(t, doc[key].Equal(got[key]), "%s: want %s, got %s", key, doc[key], got[key])
			}
			assert.Equal(t, doc.Keys(), got.Keys())
		})
	}
}

func TestCodecFor(t *testing.T) {
	for in, want := range map[string]Format{
		"":      FormatJSON,
		"auto":  FormatJSON,
		"JSONC": FormatJSON,
		"yml":   FormatYAML,
		"toml":  FormatTOML,
	} {
		codec, err := CodecFor(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, codec.Format(), in)
	}

	_, err := CodecFor("ini")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestCodecCorruptInput(t *testing.T) {
	tests := []struct {
		format string
		data   string
	}{
		{"json", `{"a": `},
		{"json", `[1, 2]`},
		{"json", `{"a": 1} {"b": 2}`},
		{"json", ``},
		{"yaml", "a: [1, 2"},
		{"yaml", "- 1\n- 2\n"},
		{"yaml", ""},
		{"toml", "a = "},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			codec, err := CodecFor(tt.format)
			require.NoError(t, err)
			_, err = codec.Unmarshal([]byte(tt.data))
			assert.ErrorIs(t, err, ErrCorruptData, "input %q", tt.data)
		})
	}
}

func TestJSONCodec(t *testing.T) {
	codec := jsonCodec{}

	t.Run("IntegralFloatKeepsPoint", func(t *testing.T) {
		data, err := codec.Marshal(Document{"f": Float(1), "e": Float(1e21)})
		require.NoError(t, err)
		assert.Contains(t, string(data), `"f": 1.0`)
		assert.Contains(t, string(data), `"e": 1e+21`)
	})

	t.Run("CommentsAndTrailingCommas", func(t *testing.T) {
		doc, err := codec.Unmarshal([]byte(`{
			// editor settings
			"tab": 4, /* spaces */
			"wrap": true,
		}`))
		require.NoError(t, err)
		assert.Equal(t, Int(4), doc["tab"])
		assert.Equal(t, Bool(true), doc["wrap"])
	})

	t.Run("NumberKinds", func(t *testing.T) {
		doc, err := codec.Unmarshal([]byte(`{"i": 10, "f": 10.0, "over": 99999999999999999999}`))
		require.NoError(t, err)
		assert.Equal(t, KindInt, doc["i"].Kind())
		assert.Equal(t, KindFloat, doc["f"].Kind())
		assert.Equal(t, KindFloat, doc["over"].Kind())

		_, err = codec.Unmarshal([]byte(`{"huge": 1e400}`))
		assert.ErrorIs(t, err, ErrCorruptData)
	})

	t.Run("NaNUnsupported", func(t *testing.T) {
		_, err := codec.Marshal(Document{"nan": Float(math.NaN())})
		assert.ErrorIs(t, err, ErrUnsupportedValue)
	})

	t.Run("NoHTMLEscape", func(t *testing.T) {
		data, err := codec.Marshal(Document{"s": String("<&>")})
		require.NoError(t, err)
		assert.Contains(t, string(data), `"<&>"`)
	})
}

func TestYAMLCodec(t *testing.T) {
	codec := yamlCodec{}

	t.Run("QuotedScalarsStayStrings", func(t *testing.T) {
		data, err := codec.Marshal(Document{"yes": String("yes"), "num": String("42")})
		require.NoError(t, err)
		doc, err := codec.Unmarshal(data)
		require.NoError(t, err)
		assert.Equal(t, String("yes"), doc["yes"])
		assert.Equal(t, String("42"), doc["num"])
	})

	t.Run("SpecialFloats", func(t *testing.T) {
		data, err := codec.Marshal(Document{"inf": Float(math.Inf(1)), "nan": Float(math.NaN())})
		require.NoError(t, err)
		doc, err := codec.Unmarshal(data)
		require.NoError(t, err)
		f, _ := doc["inf"].AsFloat()
		assert.True(t, math.IsInf(f, 1))
		n, _ := doc["nan"].AsFloat()
		assert.True(t, math.IsNaN(n))
	})

	t.Run("Anchors", func(t *testing.T) {
		doc, err := codec.Unmarshal([]byte("base: &b\n  x: 1\ncopy: *b\n"))
		require.NoError(t, err)
		assert.True(t, doc["base"].Equal(doc["copy"]))
	})

	t.Run("SortedOutput", func(t *testing.T) {
		data, err := codec.Marshal(Document{"b": Int(1), "a": Int(2)})
		require.NoError(t, err)
		assert.Less(t, strings.Index(string(data), "a:"), strings.Index(string(data), "b:"))
	})
}

func TestTOMLCodec(t *testing.T) {
	codec := tomlCodec{}

	t.Run("NullUnsupported", func(t *testing.T) {
		_, err := codec.Marshal(Document{"n": Null()})
		assert.ErrorIs(t, err, ErrUnsupportedValue)

		_, err = codec.Marshal(Document{"list": Array(Null())})
		assert.ErrorIs(t, err, ErrUnsupportedValue)
	})

	t.Run("DatetimeReadAsString", func(t *testing.T) {
		doc, err := codec.Unmarshal([]byte("when = 2024-01-02T03:04:05Z\n"))
		require.NoError(t, err)
		assert.Equal(t, String("2024-01-02T03:04:05Z"), doc["when"])
	})

	t.Run("Tables", func(t *testing.T) {
		doc, err := codec.Unmarshal([]byte("[server]\nport = 8080\n\n[[peers]]\nname = \"a\"\n"))
		require.NoError(t, err)
		server, ok := doc["server"].AsObject()
		require.True(t, ok)
		assert.Equal(t, Int(8080), server["port"])
		peers, ok := doc["peers"].AsArray()
		require.True(t, ok)
		assert.Len(t, peers, 1)
	})
}
