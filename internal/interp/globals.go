package interp

import (
	"math/rand/v2"
	"time"
)

// Builtin is a single native function entry, a name, an arity, and the
// Go implementation.
type Builtin struct {
	Fn    NativeFunc // The Go implementation
	Name  string     // The name the function is bound to
	Arity int        // How many arguments it takes
}

// DefaultGlobals returns the standard set of native functions bound
// into the global environment:
//
//   - clock() returns the number of seconds since the unix epoch
//   - random() returns a number in the half open interval [0, 1)
func DefaultGlobals() []Builtin {
	return []Builtin{
		{
			Name:  "clock",
			Arity: 0,
			Fn: func(_ *Interpreter, _ []Value) (Value, error) {
				return Number(float64(time.Now().UnixMilli()) / 1000), nil
			},
		},
		{
			Name:  "random",
			Arity: 0,
			Fn: func(_ *Interpreter, _ []Value) (Value, error) {
				return Number(rand.Float64()), nil
			},
		},
	}
}
