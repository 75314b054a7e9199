package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDecode(t *testing.T) {
	tests := []struct {
		raw      string
		expected Value
	}{
		{raw: "true", expected: Bool(true)},
		{raw: "false", expected: Bool(false)},
		{raw: "True", expected: String("True")},
		{raw: "False", expected: String("False")},
		{raw: "TRUE", expected: String("TRUE")},
		{raw: " true", expected: String(" true")},
		{raw: "1", expected: String("1")},
		{raw: "", expected: String("")},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			v, err := DefaultDecode("key", tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestDefaultEncode(t *testing.T) {
	s, err := DefaultEncode("k", String("value"))
	require.NoError(t, err)
	assert.Equal(t, "value", s)

	s, err = DefaultEncode("k", Bool(true))
	require.NoError(t, err)
	assert.Equal(t, "true", s)

	s, err = DefaultEncode("k", Bool(false))
	require.NoError(t, err)
	assert.Equal(t, "false", s)

	s, err = DefaultEncode("k", Value{})
	require.NoError(t, err)
	assert.Equal(t, "", s)

	_, err = DefaultEncode("list", ValueOf([]string{"a"}))
	var terr *ValueTypeError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, "list", terr.Key)
	assert.Equal(t, "[]string", terr.Type)

	_, err = DefaultEncode("nil", ValueOf(nil))
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, "<nil>", terr.Type)
}

func TestValueOf(t *testing.T) {
	assert.Equal(t, KindString, ValueOf("x").Kind())
	assert.Equal(t, KindBool, ValueOf(false).Kind())
	assert.Equal(t, KindCustom, ValueOf(42).Kind())
	assert.Equal(t, Bool(true), ValueOf(Bool(true)))

	s, ok := ValueOf("x").AsString()
	assert.True(t, ok)
	assert.Equal(t, "x", s)

	_, ok = ValueOf(true).AsString()
	assert.False(t, ok)

	_, ok = ValueOf("true").AsBool()
	assert.False(t, ok)

	assert.Equal(t, 42, ValueOf(42).Interface())
	assert.Equal(t, "42", ValueOf(42).String())
	assert.Equal(t, "false", Bool(false).String())
	assert.Equal(t, "custom", KindCustom.String())
}
