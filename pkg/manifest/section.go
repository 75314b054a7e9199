package manifest

import "iter"

// Attribute is a single "Name: value" pair.
type Attribute struct {
	Name  string
	Value Value
}

func Attr(name string, v interface{}) Attribute {
	return Attribute{Name: name, Value: ValueOf(v)}
}

// Section is an ordered set of attributes with unique names.
type Section struct {
	attrs []Attribute
}

// NewSection builds a section from attrs in order. A repeated name keeps
// its first position and takes the last value.
func NewSection(attrs ...Attribute) *Section {
	s := &Section{}
	for _, a := range attrs {
		s.Set(a.Name, a.Value)
	}
	return s
}

func (s *Section) index(name string) int {
	if s == nil {
		return -1
	}
	for i, a := range s.attrs {
		if a.Name == name {
			return i
		}
	}
	return -1
}

// Set stores v under name. An existing attribute is overwritten in place,
// a new one is appended.
func (s *Section) Set(name string, v Value) {
	if i := s.index(name); i >= 0 {
		s.attrs[i].Value = v
		return
	}
	s.attrs = append(s.attrs, Attribute{Name: name, Value: v})
}

func (s *Section) Get(name string) (Value, bool) {
	if i := s.index(name); i >= 0 {
		return s.attrs[i].Value, true
	}
	return Value{}, false
}

// Lookup returns the display form of the named value.
func (s *Section) Lookup(name string) (string, bool) {
	v, ok := s.Get(name)
	if !ok {
		return "", false
	}
	return v.String(), true
}

func (s *Section) Has(name string) bool {
	return s.index(name) >= 0
}

func (s *Section) Delete(name string) bool {
	i := s.index(name)
	if i < 0 {
		return false
	}
	s.attrs = append(s.attrs[:i], s.attrs[i+1:]...)
	return true
}

func (s *Section) Len() int {
	if s == nil {
		return 0
	}
	return len(s.attrs)
}

func (s *Section) Names() []string {
	names := make([]string, 0, s.Len())
	for name := range s.All() {
		names = append(names, name)
	}
	return names
}

// Attributes returns a copy of the attributes in order.
func (s *Section) Attributes() []Attribute {
	if s == nil {
		return nil
	}
	return append([]Attribute(nil), s.attrs...)
}

func (s *Section) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if s == nil {
			return
		}
		for _, a := range s.attrs {
			if !yield(a.Name, a.Value) {
				return
			}
		}
	}
}

// Manifest is an ordered list of sections. The first one is the main
// section.
type Manifest []*Section

// Main returns the main section, or nil for an empty manifest.
func (m Manifest) Main() *Section {
	if len(m) == 0 {
		return nil
	}
	return m[0]
}
