package manifest

import (
	"fmt"
	"strconv"
)

// DecodeFunc turns the raw text of the attribute key into a Value. Errors
// are returned to the caller of Decode unchanged.
type DecodeFunc func(key, raw string) (Value, error)

// EncodeFunc turns the value of the attribute key into the text written to
// the manifest. Errors are returned to the caller of Encode unchanged.
type EncodeFunc func(key string, v Value) (string, error)

// DefaultDecode returns a bool for the exact literals "true" and "false"
// and the raw string for everything else, including "True" or "FALSE".
func DefaultDecode(_ string, raw string) (Value, error) {
	switch raw {
	case "true":
		return Bool(true), nil
	case "false":
		return Bool(false), nil
	default:
		return String(raw), nil
	}
}

// RawDecode keeps every value as a string.
func RawDecode(_ string, raw string) (Value, error) {
	return String(raw), nil
}

// DefaultEncode writes strings unchanged and bools as "true" or "false".
// Custom values fail with a *ValueTypeError.
func DefaultEncode(key string, v Value) (string, error) {
	switch v.kind {
	case KindString:
		return v.str, nil
	case KindBool:
		return strconv.FormatBool(v.b), nil
	default:
		return "", &ValueTypeError{Key: key, Type: fmt.Sprintf("%T", v.custom)}
	}
}
