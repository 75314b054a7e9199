package linefold

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanAll(t *testing.T, r io.Reader) ([]Line, error) {
	t.Helper()

	var lines []Line
	sc := NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Line())
	}
	return lines, sc.Err()
}

func TestScanner(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Line
	}{
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:     "no trailing terminator",
			input:    "a: b",
			expected: []Line{{Text: "a: b", Number: 1}},
		},
		{
			name:  "crlf and lf mixed",
			input: "a: b\r\nc: d\ne: f\r\n",
			expected: []Line{
				{Text: "a: b", Number: 1},
				{Text: "c: d", Number: 2},
				{Text: "e: f", Number: 3},
			},
		},
		{
			name:  "continuations report first physical line",
			input: "a: b\r\n c\r\n d\r\n\r\ne: f\r\n g",
			expected: []Line{
				{Text: "a: bcd", Number: 1},
				{Text: "", Number: 4},
				{Text: "e: fg", Number: 5},
			},
		},
		{
			name:  "blank lines",
			input: "\n\na: b\n\n\n",
			expected: []Line{
				{Text: "", Number: 1},
				{Text: "", Number: 2},
				{Text: "a: b", Number: 3},
				{Text: "", Number: 4},
				{Text: "", Number: 5},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := scanAll(t, strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, lines)
		})
	}
}

func TestScanner_Orphan(t *testing.T) {
	t.Run("first line", func(t *testing.T) {
		_, err := scanAll(t, strings.NewReader(" a: b\r\n"))
		require.ErrorIs(t, err, ErrOrphanContinuation)

		var lerr *Error
		require.ErrorAs(t, err, &lerr)
		assert.Equal(t, 1, lerr.Line)
	})

	t.Run("after separator", func(t *testing.T) {
		lines, err := scanAll(t, strings.NewReader("a: b\r\n\r\n c\r\n"))
		require.ErrorIs(t, err, ErrOrphanContinuation)
		assert.Len(t, lines, 2)

		var lerr *Error
		require.ErrorAs(t, err, &lerr)
		assert.Equal(t, 3, lerr.Line)
	})
}

type failingReader struct {
	data string
	err  error
}

func (r *failingReader) Read(p []byte) (int, error) {
	if r.data == "" {
		return 0, r.err
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestScanner_ReadError(t *testing.T) {
	readErr := errors.New("disk on fire")

	lines, err := scanAll(t, &failingReader{data: "a: b\r\nc: d\r\n e", err: readErr})
	require.ErrorIs(t, err, readErr)
	assert.Equal(t, []Line{{Text: "a: b", Number: 1}}, lines)
}

func TestScanner_MatchesUnfold(t *testing.T) {
	inputs := [][]string{
		nil,
		{""},
		{"a: b"},
		{"a: b", " c", " d", "e: f"},
		{"a: b", "", "", "c: d", ""},
		{"a: b", "  c", " ", " d"},
		{"", "", "a: b", " c"},
		{" a: b"},
		{"a: b", "", " c"},
		{"a: b", " c", "", "d: e", " f", "", " g"},
		{"Name: caf\xc3", " \xa9"},
	}

	for _, physical := range inputs {
		var b strings.Builder
		for _, p := range physical {
			b.WriteString(p)
			b.WriteString("\r\n")
		}

		unfolded, unfoldErr := Unfold(physical)

		scanned := make([]string, 0, len(physical))
		sc := NewScanner(strings.NewReader(b.String()))
		for sc.Scan() {
			scanned = append(scanned, sc.Line().Text)
		}
		scanErr := sc.Err()

		if unfoldErr != nil {
			var uerr, serr *Error
			require.ErrorAs(t, unfoldErr, &uerr, "%q", physical)
			require.ErrorAs(t, scanErr, &serr, "%q", physical)
			assert.Equal(t, uerr.Line, serr.Line, "%q", physical)
			assert.ErrorIs(t, serr, uerr.Err, "%q", physical)
			continue
		}
		require.NoError(t, scanErr, "%q", physical)
		assert.Equal(t, unfolded, scanned, "%q", physical)
	}
}
