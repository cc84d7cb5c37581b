package interp

import "strconv"

// Kind is the kind of a runtime value.
type Kind string

// The closed set of jot value kinds.
const (
	KindNumber   Kind = "Number"
	KindString   Kind = "String"
	KindBool     Kind = "Bool"
	KindNull     Kind = "Null"
	KindFunction Kind = "Function"
)

// Value is a jot runtime value.
type Value interface {
	// Kind returns the kind of value this is.
	Kind() Kind

	// Truthy reports whether the value is considered true in a condition.
	Truthy() bool

	// String renders the value the way print shows it.
	String() string
}

// Number is a jot number, all numbers are float64s.
type Number float64

// Kind returns [KindNumber].
func (n Number) Kind() Kind {
	return KindNumber
}

// Truthy reports whether the number is non zero.
func (n Number) Truthy() bool {
	return n != 0
}

// String renders the number in the shortest form that round trips,
// whole numbers have no decimal point.
func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

// String is a jot string.
type String string

// Kind returns [KindString].
func (s String) Kind() Kind {
	return KindString
}

// Truthy always returns true, even the empty string is truthy.
func (s String) Truthy() bool {
	return true
}

// String returns the string itself, unquoted.
func (s String) String() string {
	return string(s)
}

// Bool is a jot boolean.
type Bool bool

// Kind returns [KindBool].
func (b Bool) Kind() Kind {
	return KindBool
}

// Truthy returns the boolean itself.
func (b Bool) Truthy() bool {
	return bool(b)
}

// String returns "true" or "false".
func (b Bool) String() string {
	return strconv.FormatBool(bool(b))
}

// Null is the jot null value.
type Null struct{}

// Kind returns [KindNull].
func (n Null) Kind() Kind {
	return KindNull
}

// Truthy always returns false.
func (n Null) Truthy() bool {
	return false
}

// String returns "null".
func (n Null) String() string {
	return "null"
}

// equal implements jot's == semantics.
//
// Values of different kinds are never equal, there is no implicit
// coercion so 1 == "1" is simply false, not an error. Functions are
// compared by identity.
func equal(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}

	switch a.Kind() {
	case KindNull:
		return true
	default:
		// Numbers, strings and bools compare by value, functions are
		// pointers so interface equality is identity
		return a == b
	}
}
