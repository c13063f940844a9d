// FILE: lixenwraith/settings/codec_toml.go
package settings

import (
	"bytes"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// tomlCodec stores a Document as a TOML table. Keys are written quoted so
// dotted names stay single entries. TOML has no null, so documents holding
// Null values are rejected on save.
type tomlCodec struct{}

func (tomlCodec) Format() Format { return FormatTOML }
func (tomlCodec) Ext() string    { return ".toml" }

func (tomlCodec) Marshal(doc Document) ([]byte, error) {
	table := make(map[string]any, len(doc))
	for _, k := range doc.Keys() {
		native, err := toTOML(doc[k])
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		table[k] = native
	}

	var buf bytes.Buffer
	encoder := toml.NewEncoder(&buf)
	if err := encoder.Encode(table); err != nil {
		return nil, fmt.Errorf("failed to marshal data to TOML: %w", err)
	}
	return buf.Bytes(), nil
}

func (tomlCodec) Unmarshal(data []byte) (Document, error) {
	table := make(map[string]any)
	if err := toml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptData, err)
	}
	doc := make(Document, len(table))
	for k, raw := range table {
		v, err := fromTOML(raw)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		doc[k] = v
	}
	return doc, nil
}

func toTOML(v Value) (any, error) {
	switch v.kind {
	case KindNull:
		return nil, fmt.Errorf("%w: TOML cannot encode null", ErrUnsupportedValue)
	case KindArray:
		arr := make([]any, len(v.arr))
		for i, e := range v.arr {
			native, err := toTOML(e)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			arr[i] = native
		}
		return arr, nil
	case KindObject:
		obj := make(map[string]any, len(v.obj))
		for k, e := range v.obj {
			native, err := toTOML(e)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			obj[k] = native
		}
		return obj, nil
	}
	return v.Interface(), nil
}

func fromTOML(raw any) (Value, error) {
	switch t := raw.(type) {
	case bool:
		return Bool(t), nil
	case int64:
		return Int(t), nil
	case float64:
		return Float(t), nil
	case string:
		return String(t), nil
	case time.Time:
		return String(t.Format(time.RFC3339Nano)), nil
	case []any:
		arr := make([]Value, len(t))
		for i, e := range t {
			v, err := fromTOML(e)
			if err != nil {
				return Value{}, err
			}
			arr[i] = v
		}
		return Value{kind: KindArray, arr: arr}, nil
	case []map[string]any:
		arr := make([]Value, len(t))
		for i, e := range t {
			v, err := fromTOML(e)
			if err != nil {
				return Value{}, err
			}
			arr[i] = v
		}
		return Value{kind: KindArray, arr: arr}, nil
	case map[string]any:
		obj := make(map[string]Value, len(t))
		for k, e := range t {
			v, err := fromTOML(e)
			if err != nil {
				return Value{}, err
			}
			obj[k] = v
		}
		return Value{kind: KindObject, obj: obj}, nil
	}
	return Value{}, fmt.Errorf("%w: unexpected TOML value %T", ErrCorruptData, raw)
}
