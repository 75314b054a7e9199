package linefold

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFold(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		width    int
		expected []string
	}{
		{
			name:     "empty line",
			line:     "",
			width:    70,
			expected: []string{""},
		},
		{
			name:     "fits exactly",
			line:     "abcd",
			width:    4,
			expected: []string{"abcd"},
		},
		{
			name:     "one continuation",
			line:     "abcdef",
			width:    4,
			expected: []string{"abcd", " ef"},
		},
		{
			name:     "several continuations",
			line:     "abcdefghij",
			width:    4,
			expected: []string{"abcd", " efg", " hij"},
		},
		{
			name:     "minimum width",
			line:     "abc",
			width:    2,
			expected: []string{"ab", " c"},
		},
		{
			name:     "width below minimum is raised",
			line:     "abc",
			width:    0,
			expected: []string{"ab", " c"},
		},
		{
			name:     "backs off to code point boundary",
			line:     "abécd",
			width:    3,
			expected: []string{"ab", " é", " cd"},
		},
		{
			name:     "code point wider than continuation",
			line:     "a\U0001F600b",
			width:    2,
			expected: []string{"a", " \U0001F600", " b"},
		},
		{
			name:     "content starting with a space",
			line:     "abcd  ef",
			width:    4,
			expected: []string{"abcd", "   e", " f"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Fold(tt.line, tt.width))
		})
	}
}

func TestFold_JarWidth(t *testing.T) {
	line := "test: " + strings.Repeat("a", 133)

	folded := Fold(line, 70)
	require.Len(t, folded, 2)
	assert.Equal(t, "test: "+strings.Repeat("a", 64), folded[0])
	assert.Equal(t, " "+strings.Repeat("a", 69), folded[1])
}

func TestFold_RoundTrip(t *testing.T) {
	lines := []string{
		"",
		"k: v",
		"Class-Path: " + strings.Repeat("lib/dependency.jar ", 20),
		"Name: " + strings.Repeat("日本語", 40),
		"Emoji: " + strings.Repeat("\U0001F600x", 30),
		"Mixed: " + strings.Repeat("aé€\U0001F600", 25),
	}

	for _, line := range lines {
		for width := 2; width <= 80; width++ {
			folded := Fold(line, width)
			for i, p := range folded {
				require.True(t, utf8.ValidString(p), "width %d line %d not valid UTF-8: %q", width, i, p)
				if i > 0 {
					require.True(t, strings.HasPrefix(p, Marker))
					require.Greater(t, len(p), len(Marker))
				}
				_, size := utf8.DecodeRuneInString(strings.TrimPrefix(p, Marker))
				if len(p) > width {
					// only a single code point too wide for the line may overrun
					require.Equal(t, len(Marker)+size, len(p))
				}
			}

			unfolded, err := Unfold(folded)
			require.NoError(t, err)
			require.Equal(t, []string{line}, unfolded, "width %d", width)
		}
	}
}

func TestUnfold(t *testing.T) {
	t.Run("joins continuations without separator", func(t *testing.T) {
		logical, err := Unfold([]string{"a: b", " cd", " ef", "g: h"})
		require.NoError(t, err)
		assert.Equal(t, []string{"a: bcdef", "g: h"}, logical)
	})

	t.Run("keeps empty lines", func(t *testing.T) {
		logical, err := Unfold([]string{"a: b", "", "", "c: d"})
		require.NoError(t, err)
		assert.Equal(t, []string{"a: b", "", "", "c: d"}, logical)
	})

	t.Run("strips exactly one marker", func(t *testing.T) {
		logical, err := Unfold([]string{"a: b", "  c"})
		require.NoError(t, err)
		assert.Equal(t, []string{"a: b c"}, logical)
	})

	t.Run("leading continuation", func(t *testing.T) {
		_, err := Unfold([]string{" a: b"})
		require.Error(t, err)
		require.ErrorIs(t, err, ErrOrphanContinuation)

		var lerr *Error
		require.ErrorAs(t, err, &lerr)
		assert.Equal(t, 1, lerr.Line)
	})

	t.Run("continuation after blank line", func(t *testing.T) {
		_, err := Unfold([]string{"a: b", "", " c"})
		require.ErrorIs(t, err, ErrOrphanContinuation)

		var lerr *Error
		require.ErrorAs(t, err, &lerr)
		assert.Equal(t, 3, lerr.Line)
		assert.Equal(t, "line 3: continuation line not continuing anything", err.Error())
	})
}
