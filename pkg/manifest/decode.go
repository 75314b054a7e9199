package manifest

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/noders-team/go-manifest/internal/linefold"
)

// A Decoder reads a manifest from an input stream.
type Decoder struct {
	sc  *linefold.Scanner
	cfg *config
}

func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return &Decoder{
		sc:  linefold.NewScanner(r),
		cfg: newConfig(opts),
	}
}

// Decode reads the stream to its end and returns the sections found.
// Blank lines separate sections; any number of them may appear before,
// between or after sections. Nothing is returned on error.
func (d *Decoder) Decode() (Manifest, error) {
	m := Manifest{}
	var sect *Section

	for d.sc.Scan() {
		line := d.sc.Line()
		if line.Text == "" {
			if sect != nil {
				m = append(m, sect)
				sect = nil
			}
			continue
		}

		name, raw, err := splitLine(line.Text)
		if err != nil {
			return nil, &FormatError{Line: line.Number, Err: err}
		}
		if sect == nil {
			sect = &Section{}
		}
		if d.cfg.duplicates == DuplicateReject && sect.Has(name) {
			return nil, &FormatError{Line: line.Number, Err: ErrDuplicateHeader}
		}

		v, err := d.cfg.decode(name, raw)
		if err != nil {
			return nil, err
		}
		sect.Set(name, v)
	}

	if err := d.sc.Err(); err != nil {
		var lerr *linefold.Error
		if errors.As(err, &lerr) {
			return nil, &FormatError{Line: lerr.Line, Err: lerr.Err}
		}
		return nil, err
	}
	if sect != nil {
		m = append(m, sect)
	}
	return m, nil
}

func splitLine(line string) (string, string, error) {
	if !utf8.ValidString(line) {
		return "", "", ErrInvalidUTF8
	}
	if strings.ContainsAny(line, "\r\x00") {
		return "", "", ErrControlCharacter
	}
	name, raw, ok := strings.Cut(line, Separator)
	if !ok {
		return "", "", ErrMalformedLine
	}
	if name == "" {
		return "", "", ErrEmptyHeader
	}
	return name, raw, nil
}

// Unmarshal decodes a manifest held in memory.
func Unmarshal(data []byte, opts ...Option) (Manifest, error) {
	return NewDecoder(bytes.NewReader(data), opts...).Decode()
}

func UnmarshalString(s string, opts ...Option) (Manifest, error) {
	return NewDecoder(strings.NewReader(s), opts...).Decode()
}
