package convert

import (
	"bytes"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/noders-team/go-manifest/pkg/manifest"
)

// ToYAML renders m as a sequence of mappings.
func ToYAML(m manifest.Manifest) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.SequenceNode}
	for _, s := range m {
		mapping := &yaml.Node{Kind: yaml.MappingNode}
		for name, v := range s.All() {
			val, err := valueNode(v)
			if err != nil {
				return nil, fmt.Errorf("failed to marshal %q: %w", name, err)
			}
			mapping.Content = append(mapping.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
				val,
			)
		}
		root.Content = append(root.Content, mapping)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func valueNode(v manifest.Value) (*yaml.Node, error) {
	switch v.Kind() {
	case manifest.KindString:
		s, _ := v.AsString()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}, nil
	case manifest.KindBool:
		b, _ := v.AsBool()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(b)}, nil
	default:
		n := &yaml.Node{}
		if err := n.Encode(v.Interface()); err != nil {
			return nil, err
		}
		return n, nil
	}
}

// FromYAML reads a sequence of mappings. String and bool scalars become
// string and bool values, anything else a custom value.
func FromYAML(data []byte) (manifest.Manifest, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	m := manifest.Manifest{}
	if doc.Kind == 0 {
		return m, nil
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) == 1 {
		root = root.Content[0]
	}
	if root.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: expected a sequence of sections", root.Line)
	}

	for _, item := range root.Content {
		if item.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("line %d: expected a mapping of attributes", item.Line)
		}
		sect := manifest.NewSection()
		for i := 0; i+1 < len(item.Content); i += 2 {
			key, val := item.Content[i], item.Content[i+1]
			v, err := nodeValue(val)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", val.Line, err)
			}
			sect.Set(key.Value, v)
		}
		m = append(m, sect)
	}
	return m, nil
}

func nodeValue(n *yaml.Node) (manifest.Value, error) {
	if n.Kind == yaml.ScalarNode {
		switch n.ShortTag() {
		case "!!str":
			return manifest.String(n.Value), nil
		case "!!bool":
			var b bool
			if err := n.Decode(&b); err != nil {
				return manifest.Value{}, err
			}
			return manifest.Bool(b), nil
		}
	}
	var v interface{}
	if err := n.Decode(&v); err != nil {
		return manifest.Value{}, err
	}
	return manifest.ValueOf(v), nil
}
