// FILE: lixenwraith/settings/codec_yaml.go
package settings

import (
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// yamlCodec builds yaml.Node trees directly so every scalar carries an
// explicit tag and Int/Float/String survive a round trip unchanged.
type yamlCodec struct{}

func (yamlCodec) Format() Format { return FormatYAML }
func (yamlCodec) Ext() string    { return ".yaml" }

func (yamlCodec) Marshal(doc Document) ([]byte, error) {
	node := toYAMLNode(Object(doc))
	data, err := yaml.Marshal(node)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return data, nil
}

func (yamlCodec) Unmarshal(data []byte) (Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptData, err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) != 1 {
		return nil, fmt.Errorf("%w: empty YAML document", ErrCorruptData)
	}
	v, err := fromYAMLNode(root.Content[0])
	if err != nil {
		return nil, err
	}
	obj, ok := v.AsObject()
	if !ok {
		return nil, fmt.Errorf("%w: top-level YAML value is %s, want mapping", ErrCorruptData, v.Kind())
	}
	return Document(obj), nil
}

func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func toYAMLNode(v Value) *yaml.Node {
	switch v.kind {
	case KindBool:
		return scalarNode("!!bool", strconv.FormatBool(v.b))
	case KindInt:
		return scalarNode("!!int", strconv.FormatInt(v.i, 10))
	case KindFloat:
		switch {
		case math.IsNaN(v.f):
			return scalarNode("!!float", ".nan")
		case math.IsInf(v.f, 1):
			return scalarNode("!!float", ".inf")
		case math.IsInf(v.f, -1):
			return scalarNode("!!float", "-.inf")
		}
		return scalarNode("!!float", formatFloat(v.f))
	case KindString:
		return scalarNode("!!str", v.s)
	case KindArray:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, e := range v.arr {
			seq.Content = append(seq.Content, toYAMLNode(e))
		}
		return seq
	case KindObject:
		m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, k := range Document(v.obj).Keys() {
			m.Content = append(m.Content, scalarNode("!!str", k), toYAMLNode(v.obj[k]))
		}
		return m
	}
	return scalarNode("!!null", "null")
}

func fromYAMLNode(n *yaml.Node) (Value, error) {
	switch n.Kind {
	case yaml.AliasNode:
		if n.Alias == nil {
			return Value{}, fmt.Errorf("%w: dangling YAML alias at line %d", ErrCorruptData, n.Line)
		}
		return fromYAMLNode(n.Alias)
	case yaml.SequenceNode:
		arr := make([]Value, 0, len(n.Content))
		for _, c := range n.Content {
			e, err := fromYAMLNode(c)
			if err != nil {
				return Value{}, err
			}
			arr = append(arr, e)
		}
		return Value{kind: KindArray, arr: arr}, nil
	case yaml.MappingNode:
		obj := make(map[string]Value, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, vn := n.Content[i], n.Content[i+1]
			if k.Kind != yaml.ScalarNode {
				return Value{}, fmt.Errorf("%w: non-scalar YAML key at line %d", ErrCorruptData, k.Line)
			}
			e, err := fromYAMLNode(vn)
			if err != nil {
				return Value{}, err
			}
			obj[k.Value] = e
		}
		return Value{kind: KindObject, obj: obj}, nil
	case yaml.ScalarNode:
		return fromYAMLScalar(n)
	}
	return Value{}, fmt.Errorf("%w: unexpected YAML node kind %d at line %d", ErrCorruptData, n.Kind, n.Line)
}

func fromYAMLScalar(n *yaml.Node) (Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return Null(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return Value{}, fmt.Errorf("%w: %w", ErrCorruptData, err)
		}
		return Bool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return Int(i), nil
		}
		var f float64
		if err := n.Decode(&f); err != nil {
			return Value{}, fmt.Errorf("%w: invalid integer %q at line %d", ErrCorruptData, n.Value, n.Line)
		}
		return Float(f), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return Value{}, fmt.Errorf("%w: %w", ErrCorruptData, err)
		}
		return Float(f), nil
	}
	// !!str, !!timestamp, !!binary and custom tags keep their literal text.
	return String(n.Value), nil
}
