package interp

import "fmt"

// Environment is a lexically scoped set of variable bindings.
//
// Every block gets a fresh child environment, lookups walk out through
// the enclosing scopes so inner scopes may shadow outer ones. Closures
// hold a pointer to the environment they were declared in, so bindings
// shared between closures are shared for real, not copied.
type Environment struct {
	values    map[string]Value
	enclosing *Environment
}

// NewEnvironment returns a new, empty [Environment] with no
// enclosing scope.
func NewEnvironment() *Environment {
	return &Environment{
		values: make(map[string]Value),
	}
}

// NewGlobalEnvironment returns an [Environment] pre-populated with the
// given native functions.
//
// Use [DefaultGlobals] for the standard library, tests may inject
// deterministic implementations instead.
func NewGlobalEnvironment(builtins []Builtin) *Environment {
	env := NewEnvironment()

	for _, builtin := range builtins {
		env.Define(builtin.Name, NewNativeFunction(builtin.Name, builtin.Arity, builtin.Fn))
	}

	return env
}

// Define binds name to value in the innermost scope, shadowing any
// binding of the same name in an enclosing scope.
//
// Declaring a name that already exists in this scope simply rebinds it.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Get looks a variable up by name, walking out through the enclosing
// scopes. If the name is not bound anywhere, it returns an error
// wrapping [ErrUndefinedVariable].
func (e *Environment) Get(name string) (Value, error) {
	if value, ok := e.values[name]; ok {
		return value, nil
	}

	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}

	return nil, fmt.Errorf("%w: %s", ErrUndefinedVariable, name)
}

// Assign rebinds an existing variable, walking out through the
// enclosing scopes to find it.
//
// Unlike [Environment.Define], assignment never creates a binding, if
// the name is not bound anywhere an error wrapping
// [ErrUndefinedVariable] is returned.
func (e *Environment) Assign(name string, value Value) error {
	if _, ok := e.values[name]; ok {
		e.values[name] = value
		return nil
	}

	if e.enclosing != nil {
		return e.enclosing.Assign(name, value)
	}

	return fmt.Errorf("%w: %s", ErrUndefinedVariable, name)
}

// Child returns a new, empty [Environment] using the calling one as
// its enclosing scope.
func (e *Environment) Child() *Environment {
	return &Environment{
		values:    make(map[string]Value),
		enclosing: e,
	}
}
