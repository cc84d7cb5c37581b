package interp

import (
	"go.followtheprocess.codes/jot/internal/syntax/ast"
)

// Callable is a [Value] that can be invoked with arguments.
type Callable interface {
	Value

	// Name returns the function's name, empty for an anonymous function.
	Name() string

	// Arity returns the number of parameters the function takes.
	Arity() int

	// Call invokes the function.
	Call(interp *Interpreter, args []Value) (Value, error)
}

// Function is a user defined jot function, carrying the environment it
// was declared in so that it closes over the variables in scope there.
type Function struct {
	closure *Environment
	name    string
	params  []ast.Ident
	body    ast.Block
}

// NewFunction returns a new [Function]. The name may be empty for an
// anonymous function expression.
func NewFunction(name string, params []ast.Ident, body ast.Block, closure *Environment) *Function {
	return &Function{
		closure: closure,
		name:    name,
		params:  params,
		body:    body,
	}
}

// Kind returns [KindFunction].
func (f *Function) Kind() Kind {
	return KindFunction
}

// Truthy always returns true.
func (f *Function) Truthy() bool {
	return true
}

// String renders the function as e.g. "<function add>".
func (f *Function) String() string {
	if f.name == "" {
		return "<anonymous function>"
	}

	return "<function " + f.name + ">"
}

// Name returns the function's name, empty if it is anonymous.
func (f *Function) Name() string {
	return f.name
}

// Arity returns the number of parameters.
func (f *Function) Arity() int {
	return len(f.params)
}

// Adopt names a previously anonymous function.
//
// An anonymous function bound to a variable adopts the variable's name,
// so "let add = function(a, b) {...}" prints as "<function add>". It is
// a no-op on a function that already has a name.
func (f *Function) Adopt(name string) {
	if f.name == "" {
		f.name = name
	}
}

// Call invokes the function, binding the arguments to the parameters in
// a fresh scope enclosed by the function's closure.
//
// The caller is responsible for arity checking, args must have exactly
// [Function.Arity] elements.
func (f *Function) Call(interp *Interpreter, args []Value) (Value, error) {
	env := f.closure.Child()

	for index, param := range f.params {
		env.Define(param.Name, args[index])
	}

	ctrl, err := interp.executeBlock(f.body, env)
	if err != nil {
		return nil, err
	}

	if ctrl.kind == controlReturn {
		return ctrl.value, nil
	}

	// Falling off the end of a function returns null
	return Null{}, nil
}

// NativeFunc is the signature of a host implemented function.
type NativeFunc func(interp *Interpreter, args []Value) (Value, error)

// NativeFunction is a function implemented in Go and injected into the
// global environment, e.g. clock and random.
type NativeFunction struct {
	fn    NativeFunc
	name  string
	arity int
}

// NewNativeFunction returns a new [NativeFunction].
func NewNativeFunction(name string, arity int, fn NativeFunc) *NativeFunction {
	return &NativeFunction{
		fn:    fn,
		name:  name,
		arity: arity,
	}
}

// Kind returns [KindFunction].
func (n *NativeFunction) Kind() Kind {
	return KindFunction
}

// Truthy always returns true.
func (n *NativeFunction) Truthy() bool {
	return true
}

// String renders the function as e.g. "<native function clock>".
func (n *NativeFunction) String() string {
	return "<native function " + n.name + ">"
}

// Name returns the function's name.
func (n *NativeFunction) Name() string {
	return n.name
}

// Arity returns the number of arguments the function takes.
func (n *NativeFunction) Arity() int {
	return n.arity
}

// Call invokes the Go implementation.
func (n *NativeFunction) Call(interp *Interpreter, args []Value) (Value, error) {
	return n.fn(interp, args)
}
