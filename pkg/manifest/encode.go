package manifest

import (
	"bytes"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/noders-team/go-manifest/internal/linefold"
)

// An Encoder writes manifests to an output stream.
type Encoder struct {
	w   io.Writer
	cfg *config
}

func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{
		w:   w,
		cfg: newConfig(opts),
	}
}

// Encode writes every section of m followed by a blank line. Sections
// without attributes have no representation and are skipped.
//
// Each section is encoded in memory before it is written, so a failing
// attribute never leaves half a section in w. Sections before it have
// already been written though; callers that cannot discard partial output
// should use Marshal.
func (e *Encoder) Encode(m Manifest) error {
	width, err := e.cfg.width()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	for _, sect := range m {
		if sect.Len() == 0 {
			continue
		}
		buf.Reset()
		if err := e.appendSection(&buf, sect, width); err != nil {
			return err
		}
		if _, err := e.w.Write(buf.Bytes()); err != nil {
			return err
		}
	}
	return nil
}

func (e *Encoder) appendSection(buf *bytes.Buffer, sect *Section, width int) error {
	for _, a := range sect.attrs {
		if err := validateName(a.Name); err != nil {
			return err
		}
		raw, err := e.cfg.encode(a.Name, a.Value)
		if err != nil {
			return err
		}
		if err := validateValue(a.Name, raw); err != nil {
			return err
		}

		for _, line := range linefold.Fold(a.Name+Separator+raw, width) {
			buf.WriteString(line)
			buf.WriteString(e.cfg.lineEnding)
		}
	}
	buf.WriteString(e.cfg.lineEnding)
	return nil
}

func validateName(name string) error {
	reason := ""
	switch {
	case name == "":
		reason = "empty"
	case strings.ContainsAny(name, "\r\n\x00"):
		reason = "contains a line terminator or NUL"
	case strings.Contains(name, Separator):
		reason = "contains the separator"
	case strings.HasPrefix(name, linefold.Marker):
		reason = "starts with a space"
	case !utf8.ValidString(name):
		reason = "not valid UTF-8"
	default:
		return nil
	}
	return &AttributeError{Key: name, Err: ErrInvalidHeader, Reason: reason}
}

func validateValue(name, raw string) error {
	reason := ""
	switch {
	case strings.ContainsAny(raw, "\r\n\x00"):
		reason = "contains a line terminator or NUL"
	case !utf8.ValidString(raw):
		reason = "not valid UTF-8"
	default:
		return nil
	}
	return &AttributeError{Key: name, Err: ErrInvalidValue, Reason: reason}
}

// Marshal encodes m in memory. On error no output is returned.
func Marshal(m Manifest, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf, opts...).Encode(m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func MarshalString(m Manifest, opts ...Option) (string, error) {
	b, err := Marshal(m, opts...)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
