package manifest

import (
	"fmt"

	"github.com/noders-team/go-manifest/internal/linefold"
)

const (
	// DefaultMaxLineLength is the JAR limit for a physical line, terminator
	// included.
	DefaultMaxLineLength = 72

	CRLF = "\r\n"
	LF   = "\n"

	// Separator splits a logical line into name and value.
	Separator = ": "
)

// DuplicatePolicy decides what decoding does with a name repeated inside
// one section.
type DuplicatePolicy int

const (
	// DuplicateReject fails decoding with ErrDuplicateHeader.
	DuplicateReject DuplicatePolicy = iota
	// DuplicateLastWins keeps the first position and the last value.
	DuplicateLastWins
)

type config struct {
	maxLineLength int
	lineEnding    string
	decode        DecodeFunc
	encode        EncodeFunc
	duplicates    DuplicatePolicy
}

type Option func(*config)

// WithMaxLineLength sets the byte limit of a physical line, terminator
// included.
func WithMaxLineLength(n int) Option {
	return func(c *config) {
		c.maxLineLength = n
	}
}

// WithLineEnding sets the terminator written after every line, CRLF or LF.
// Decoding accepts both regardless.
func WithLineEnding(ending string) Option {
	return func(c *config) {
		c.lineEnding = ending
	}
}

func WithDecodeFunc(fn DecodeFunc) Option {
	return func(c *config) {
		if fn != nil {
			c.decode = fn
		}
	}
}

func WithEncodeFunc(fn EncodeFunc) Option {
	return func(c *config) {
		if fn != nil {
			c.encode = fn
		}
	}
}

func WithDuplicatePolicy(p DuplicatePolicy) Option {
	return func(c *config) {
		c.duplicates = p
	}
}

func newConfig(opts []Option) *config {
	cfg := &config{
		maxLineLength: DefaultMaxLineLength,
		lineEnding:    CRLF,
		decode:        DefaultDecode,
		encode:        DefaultEncode,
		duplicates:    DuplicateReject,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// width is the number of content bytes a physical line may hold.
func (c *config) width() (int, error) {
	if c.lineEnding != CRLF && c.lineEnding != LF {
		return 0, fmt.Errorf("%w: %q", ErrLineEnding, c.lineEnding)
	}
	w := c.maxLineLength - len(c.lineEnding)
	if w < linefold.MinWidth {
		return 0, fmt.Errorf("%w: %d", ErrLineLength, c.maxLineLength)
	}
	return w, nil
}
