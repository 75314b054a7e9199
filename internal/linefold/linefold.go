// Package linefold converts between logical manifest lines and the folded
// physical lines they are stored as.
//
// A logical line longer than the physical width is split into a first line
// followed by continuation lines, each prefixed with a single space.
package linefold

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Marker prefixes every continuation line. It is not part of the content.
const Marker = " "

// MinWidth is the smallest physical width that still leaves room for one
// content byte after the marker.
const MinWidth = len(Marker) + 1

// ErrOrphanContinuation is reported for a continuation line that has no
// logical line to attach to.
var ErrOrphanContinuation = errors.New("continuation line not continuing anything")

// Error reports a problem at a physical line, counted from 1.
type Error struct {
	Line int
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Fold splits line into physical lines of at most width bytes, marker
// included, terminator excluded. Lines are only split on UTF-8 code point
// boundaries; when not even one code point fits a continuation line it is
// emitted whole and the line runs over width.
func Fold(line string, width int) []string {
	if width < MinWidth {
		width = MinWidth
	}
	if len(line) <= width {
		return []string{line}
	}

	folded := make([]string, 0, len(line)/(width-len(Marker))+1)
	n := cut(line, width)
	folded = append(folded, line[:n])
	line = line[n:]
	for len(line) > 0 {
		n = cut(line, width-len(Marker))
		folded = append(folded, Marker+line[:n])
		line = line[n:]
	}
	return folded
}

// cut returns the length of the longest prefix of s that fits in limit
// bytes and ends on a code point boundary. At least one code point is taken.
func cut(s string, limit int) int {
	if len(s) <= limit {
		return len(s)
	}
	n := limit
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	if n == 0 {
		_, size := utf8.DecodeRuneInString(s)
		return size
	}
	return n
}

// Unfold joins continuation lines onto the logical line before them. Empty
// physical lines are kept as empty logical lines; a continuation directly
// after one, or at the very start, is an ErrOrphanContinuation.
func Unfold(physical []string) ([]string, error) {
	logical := make([]string, 0, len(physical))
	for i, p := range physical {
		if !strings.HasPrefix(p, Marker) {
			logical = append(logical, p)
			continue
		}
		last := len(logical) - 1
		if last < 0 || logical[last] == "" {
			return nil, &Error{Line: i + 1, Err: ErrOrphanContinuation}
		}
		logical[last] += p[len(Marker):]
	}
	return logical, nil
}
