// FILE: lixenwraith/settings/codec_json.go
package settings

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/jsonc"
)

// jsonCodec stores a Document as one JSON object. Integral floats are written
// with a trailing ".0" so they decode back as Float. Comments and trailing
// commas are accepted on read.
type jsonCodec struct{}

func (jsonCodec) Format() Format { return FormatJSON }
func (jsonCodec) Ext() string    { return ".json" }

func (jsonCodec) Marshal(doc Document) ([]byte, error) {
	compact, err := Object(doc).MarshalJSON()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", "  "); err != nil {
		return nil, fmt.Errorf("failed to indent JSON: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func (jsonCodec) Unmarshal(data []byte) (Document, error) {
	v, err := ParseJSON(data)
	if err != nil {
		return nil, err
	}
	obj, ok := v.AsObject()
	if !ok {
		return nil, fmt.Errorf("%w: top-level JSON value is %s, want object", ErrCorruptData, v.Kind())
	}
	return Document(obj), nil
}

// ParseJSON decodes JSON (comments allowed) into a Value.
func ParseJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return Value{}, fmt.Errorf("%w: %w", ErrCorruptData, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Value{}, fmt.Errorf("%w: trailing data after JSON value", ErrCorruptData)
	}
	return fromJSON(raw)
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.appendJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := ParseJSON(data)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func (v Value) appendJSON(buf *bytes.Buffer) error {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.b))
	case KindInt:
		buf.WriteString(strconv.FormatInt(v.i, 10))
	case KindFloat:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return fmt.Errorf("%w: %v cannot be encoded as JSON", ErrUnsupportedValue, v.f)
		}
		buf.WriteString(formatFloat(v.f))
	case KindString:
		writeJSONString(buf, v.s)
	case KindArray:
		buf.WriteByte('[')
		for i, e := range v.arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := e.appendJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		for i, k := range Document(v.obj).Keys() {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeJSONString(buf, k)
			buf.WriteByte(':')
			if err := v.obj[k].appendJSON(buf); err != nil {
				return fmt.Errorf("key %q: %w", k, err)
			}
		}
		buf.WriteByte('}')
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s) // strings always encode
	buf.Truncate(buf.Len() - 1)
}

// formatFloat renders f so that it is never mistaken for an integer.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

func fromJSON(raw any) (Value, error) {
	switch t := raw.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case json.Number:
		return parseNumber(string(t))
	case string:
		return String(t), nil
	case []any:
		arr := make([]Value, len(t))
		for i, e := range t {
			v, err := fromJSON(e)
			if err != nil {
				return Value{}, err
			}
			arr[i] = v
		}
		return Value{kind: KindArray, arr: arr}, nil
	case map[string]any:
		obj := make(map[string]Value, len(t))
		for k, e := range t {
			v, err := fromJSON(e)
			if err != nil {
				return Value{}, err
			}
			obj[k] = v
		}
		return Value{kind: KindObject, obj: obj}, nil
	}
	return Value{}, fmt.Errorf("%w: unexpected JSON element %T", ErrCorruptData, raw)
}

// parseNumber keeps integers integral. Integers beyond int64 degrade to Float.
func parseNumber(s string) (Value, error) {
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return Int(i), nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Value{}, fmt.Errorf("%w: invalid number %q", ErrCorruptData, s)
	}
	return Float(f), nil
}
