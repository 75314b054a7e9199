// Package convert renders manifests as JSON or YAML and reads them back,
// keeping section and attribute order.
package convert

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/noders-team/go-manifest/pkg/manifest"
)

type orderedSection struct {
	s *manifest.Section
}

func (o orderedSection) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	i := 0
	for name, v := range o.s.All() {
		if i > 0 {
			buf.WriteByte(',')
		}
		i++

		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(v.Interface())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %q: %w", name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ToJSON renders m as an indented array of objects.
func ToJSON(m manifest.Manifest) ([]byte, error) {
	sections := make([]orderedSection, 0, len(m))
	for _, s := range m {
		sections = append(sections, orderedSection{s: s})
	}
	return json.MarshalIndent(sections, "", "  ")
}

// FromJSON reads an array of objects. Strings and booleans become string
// and bool values; numbers (int64 or float64), nulls and nested values
// become custom values.
func FromJSON(data []byte) (manifest.Manifest, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err := expectDelim(dec, '['); err != nil {
		return nil, err
	}
	m := manifest.Manifest{}
	for dec.More() {
		if err := expectDelim(dec, '{'); err != nil {
			return nil, err
		}
		sect := manifest.NewSection()
		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			name, ok := tok.(string)
			if !ok {
				return nil, fmt.Errorf("expected attribute name, got %v", tok)
			}
			var v interface{}
			if err := dec.Decode(&v); err != nil {
				return nil, fmt.Errorf("failed to decode %q: %w", name, err)
			}
			sect.Set(name, manifest.ValueOf(jsonValue(v)))
		}
		if err := expectDelim(dec, '}'); err != nil {
			return nil, err
		}
		m = append(m, sect)
	}
	if err := expectDelim(dec, ']'); err != nil {
		return nil, err
	}
	return m, nil
}

// jsonValue turns integral numbers into int64 and other numbers into
// float64, so encode errors name a Go numeric type.
func jsonValue(v interface{}) interface{} {
	n, ok := v.(json.Number)
	if !ok {
		return v
	}
	if i, err := n.Int64(); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return v
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}
