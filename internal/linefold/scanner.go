package linefold

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Line is a logical line together with the physical line it started on.
type Line struct {
	Text   string
	Number int
}

// Scanner reads physical lines from a stream and yields unfolded logical
// lines. Both "\n" and "\r\n" terminators are accepted, and the last line
// does not need one.
type Scanner struct {
	r      *bufio.Reader
	lineNo int
	eof    bool

	peeked bool
	peek   string
	peekNo int

	line Line
	err  error
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReader(r)}
}

// Scan advances to the next logical line. It returns false at the end of
// input or on the first error, which Err then reports.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}

	first, number, ok := s.next()
	if !ok {
		return false
	}
	if strings.HasPrefix(first, Marker) {
		s.err = &Error{Line: number, Err: ErrOrphanContinuation}
		return false
	}

	var b strings.Builder
	b.WriteString(first)
	// an empty line is a separator, nothing continues it
	for first != "" {
		p, n, ok := s.next()
		if !ok {
			break
		}
		if !strings.HasPrefix(p, Marker) {
			s.peeked, s.peek, s.peekNo = true, p, n
			break
		}
		b.WriteString(p[len(Marker):])
	}
	if s.err != nil {
		return false
	}

	s.line = Line{Text: b.String(), Number: number}
	return true
}

// Line returns the logical line produced by the last call to Scan.
func (s *Scanner) Line() Line {
	return s.line
}

// Err returns the first read or *Error encountered, nil at a clean end of
// input.
func (s *Scanner) Err() error {
	return s.err
}

func (s *Scanner) next() (string, int, bool) {
	if s.peeked {
		s.peeked = false
		return s.peek, s.peekNo, true
	}
	if s.eof || s.err != nil {
		return "", 0, false
	}

	text, err := s.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			s.err = err
			return "", 0, false
		}
		s.eof = true
		if text == "" {
			return "", 0, false
		}
	}
	s.lineNo++
	text = strings.TrimSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\r")
	return text, s.lineNo, true
}
