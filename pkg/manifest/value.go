package manifest

import (
	"fmt"
	"strconv"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindString Kind = iota
	KindBool
	// KindCustom holds any other Go value, typically produced by a caller
	// supplied DecodeFunc.
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindCustom:
		return "custom"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is an attribute value. The zero Value is the empty string.
type Value struct {
	kind   Kind
	str    string
	b      bool
	custom interface{}
}

func String(s string) Value {
	return Value{kind: KindString, str: s}
}

func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// ValueOf wraps v. Go strings and bools become KindString and KindBool
// values, a Value is returned as is, anything else is KindCustom.
func ValueOf(v interface{}) Value {
	switch x := v.(type) {
	case Value:
		return x
	case string:
		return String(x)
	case bool:
		return Bool(x)
	default:
		return Value{kind: KindCustom, custom: v}
	}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) AsString() (string, bool) {
	return v.str, v.kind == KindString
}

func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// Interface returns the held string, bool or custom value.
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindString:
		return v.str
	case KindBool:
		return v.b
	default:
		return v.custom
	}
}

// String formats the value for display. It is not the encoded form of a
// custom value; use an EncodeFunc for that.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return fmt.Sprint(v.custom)
	}
}
