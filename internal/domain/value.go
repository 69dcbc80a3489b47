package domain

import "strings"

// Type is the tag of a scalar Value.
type Type string

const (
	TypeString  Type = "STRING"
	TypeInt     Type = "INT"
	TypeFloat   Type = "FLOAT"
	TypeBoolean Type = "BOOLEAN"
)

// ValidType reports whether t is one of the four recognized type tags.
func ValidType(t Type) bool {
	switch t {
	case TypeString, TypeInt, TypeFloat, TypeBoolean:
		return true
	default:
		return false
	}
}

// Value is a tagged scalar carrying exactly one of String, Int, Float, or
// Bool, selected by Tag. It is a sum type, not a record of four nullable
// fields; the four-nullable-field shape is reserved for the wire format
// and converted at the boundary (see internal/model).
type Value struct {
	Tag   Type
	Str   string
	Int   int64
	Float float64
	Bool  bool
}

// String constructs a STRING Value.
func String(s string) Value { return Value{Tag: TypeString, Str: s} }

// Int64 constructs an INT Value.
func Int64(i int64) Value { return Value{Tag: TypeInt, Int: i} }

// Float64 constructs a FLOAT Value.
func Float64(f float64) Value { return Value{Tag: TypeFloat, Float: f} }

// Bool constructs a BOOLEAN Value.
func Bool(b bool) Value { return Value{Tag: TypeBoolean, Bool: b} }

// Zero returns the zero value for the given type tag: "" / 0 / 0.0 / false.
func Zero(t Type) Value {
	switch t {
	case TypeString:
		return String("")
	case TypeInt:
		return Int64(0)
	case TypeFloat:
		return Float64(0)
	case TypeBoolean:
		return Bool(false)
	default:
		return Value{}
	}
}

// TypeOf returns the type tag of v.
func TypeOf(v Value) Type { return v.Tag }

// Equal reports structural equality: same tag, same underlying scalar.
func Equal(a, b Value) bool {
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case TypeString:
		return a.Str == b.Str
	case TypeInt:
		return a.Int == b.Int
	case TypeFloat:
		return a.Float == b.Float
	case TypeBoolean:
		return a.Bool == b.Bool
	default:
		return false
	}
}

// Compare returns -1, 0, or 1 for a<b, a==b, a>b. Ordering is defined for
// INT, FLOAT (numeric), and STRING (lexicographic); both operands must
// carry the same tag. No INT/FLOAT coercion happens here or in the
// comparison operator table: operands with different tags are not
// ordered (ok is false). BOOLEAN has no ordering: ok is false.
func Compare(a, b Value) (int, bool) {
	if a.Tag != b.Tag {
		return 0, false
	}
	switch a.Tag {
	case TypeInt:
		switch {
		case a.Int < b.Int:
			return -1, true
		case a.Int > b.Int:
			return 1, true
		default:
			return 0, true
		}
	case TypeFloat:
		return numCompare(a.Float, b.Float), true
	case TypeString:
		return strings.Compare(a.Str, b.Str), true
	default:
		return 0, false
	}
}

func numCompare(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
