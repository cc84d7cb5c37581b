// Package interp implements the jot tree-walking interpreter.
//
// The interpreter evaluates an [ast.Program] directly, no bytecode or
// compilation step. Statements execute against an [Environment], a
// chain of lexical scopes, and expressions evaluate to a [Value].
package interp

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"go.followtheprocess.codes/jot/internal/syntax/ast"
	"go.followtheprocess.codes/jot/internal/syntax/token"
)

// Runtime error sentinels, callers may test for these with [errors.Is].
var (
	// ErrUndefinedVariable is returned when reading or assigning a name
	// that has no binding in any enclosing scope.
	ErrUndefinedVariable = errors.New("undefined variable")

	// ErrTypeMismatch is returned when an operator is applied to operands
	// of the wrong kind, e.g. subtracting strings or calling a number.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrArityMismatch is returned when a function is called with the
	// wrong number of arguments.
	ErrArityMismatch = errors.New("arity mismatch")
)

// controlKind describes how execution of a statement finished.
type controlKind int

const (
	controlNone   controlKind = iota // Ran to completion
	controlReturn                    // Hit a return statement
)

// control carries a return value up through nested blocks until a
// function call boundary catches it.
type control struct {
	value Value
	kind  controlKind
}

// Interpreter executes jot programs.
type Interpreter struct {
	stdout io.Writer
}

// New returns a new [Interpreter] writing print output to stdout.
func New(stdout io.Writer) *Interpreter {
	return &Interpreter{stdout: stdout}
}

// Run executes a parsed program against the given environment.
//
// The environment is typically a [NewGlobalEnvironment] but the REPL
// passes the same one in repeatedly so bindings persist across lines. A
// top level return stops nothing, execution simply carries on with the
// next statement.
func (i *Interpreter) Run(program ast.Program, env *Environment) error {
	for _, statement := range program.Statements {
		if _, err := i.execute(statement, env); err != nil {
			return err
		}
	}

	return nil
}

// execute runs a single statement, returning how it finished so that
// return may propagate out of nested blocks.
func (i *Interpreter) execute(statement ast.Statement, env *Environment) (control, error) {
	switch stmt := statement.(type) {
	case ast.LetStatement:
		if stmt.Value == nil {
			// An uninitialised "let x" binds x to null
			env.Define(stmt.Name.Name, Null{})

			return control{}, nil
		}

		value, err := i.evaluate(stmt.Value, env)
		if err != nil {
			return control{}, err
		}

		if fn, ok := value.(*Function); ok {
			fn.Adopt(stmt.Name.Name)
		}

		env.Define(stmt.Name.Name, value)

		return control{}, nil
	case ast.FunctionStatement:
		env.Define(stmt.Name.Name, NewFunction(stmt.Name.Name, stmt.Params, stmt.Body, env))

		return control{}, nil
	case ast.IfStatement:
		condition, err := i.evaluate(stmt.Condition, env)
		if err != nil {
			return control{}, err
		}

		if condition.Truthy() {
			return i.execute(stmt.Then, env)
		}

		if stmt.Else != nil {
			return i.execute(stmt.Else, env)
		}

		return control{}, nil
	case ast.WhileStatement:
		for {
			condition, err := i.evaluate(stmt.Condition, env)
			if err != nil {
				return control{}, err
			}

			if !condition.Truthy() {
				return control{}, nil
			}

			ctrl, err := i.execute(stmt.Body, env)
			if err != nil {
				return control{}, err
			}

			if ctrl.kind != controlNone {
				return ctrl, nil
			}
		}
	case ast.Block:
		return i.executeBlock(stmt, env.Child())
	case ast.ExpressionStatement:
		if _, err := i.evaluate(stmt.Expression, env); err != nil {
			return control{}, err
		}

		return control{}, nil
	case ast.PrintStatement:
		value, err := i.evaluate(stmt.Value, env)
		if err != nil {
			return control{}, err
		}

		fmt.Fprintln(i.stdout, value.String())

		return control{}, nil
	case ast.ReturnStatement:
		if stmt.Value == nil {
			return control{value: Null{}, kind: controlReturn}, nil
		}

		value, err := i.evaluate(stmt.Value, env)
		if err != nil {
			return control{}, err
		}

		return control{value: value, kind: controlReturn}, nil
	default:
		return control{}, fmt.Errorf("unhandled statement: %T", statement)
	}
}

// executeBlock runs a block's statements in the given environment.
//
// The caller chooses the scope: a block statement executes in a fresh
// child, a function body executes in the scope its parameters were
// bound into.
func (i *Interpreter) executeBlock(block ast.Block, env *Environment) (control, error) {
	for _, statement := range block.Statements {
		ctrl, err := i.execute(statement, env)
		if err != nil {
			return control{}, err
		}

		if ctrl.kind != controlNone {
			return ctrl, nil
		}
	}

	return control{}, nil
}

// evaluate computes the [Value] of an expression.
func (i *Interpreter) evaluate(expression ast.Expression, env *Environment) (Value, error) {
	switch expr := expression.(type) {
	case ast.Ident:
		return env.Get(expr.Name)
	case ast.NumberLiteral:
		number, err := strconv.ParseFloat(expr.Text, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number literal %q: %w", expr.Text, err)
		}

		return Number(number), nil
	case ast.StringLiteral:
		return String(expr.Value), nil
	case ast.BoolLiteral:
		return Bool(expr.Value), nil
	case ast.NullLiteral:
		return Null{}, nil
	case ast.FunctionLiteral:
		return NewFunction("", expr.Params, expr.Body, env), nil
	case ast.Grouping:
		return i.evaluate(expr.Expression, env)
	case ast.Assign:
		value, err := i.evaluate(expr.Value, env)
		if err != nil {
			return nil, err
		}

		if fn, ok := value.(*Function); ok {
			fn.Adopt(expr.Name.Name)
		}

		if err := env.Assign(expr.Name.Name, value); err != nil {
			return nil, err
		}

		// Assignment is an expression, it evaluates to the assigned value
		return value, nil
	case ast.Unary:
		return i.evaluateUnary(expr, env)
	case ast.Binary:
		return i.evaluateBinary(expr, env)
	case ast.Call:
		return i.evaluateCall(expr, env)
	default:
		return nil, fmt.Errorf("unhandled expression: %T", expression)
	}
}

// evaluateUnary evaluates a prefix expression, "!" negates truthiness
// of any value, "-" works on numbers only.
func (i *Interpreter) evaluateUnary(expr ast.Unary, env *Environment) (Value, error) {
	operand, err := i.evaluate(expr.Operand, env)
	if err != nil {
		return nil, err
	}

	switch expr.Op.Kind {
	case token.Bang:
		return Bool(!operand.Truthy()), nil
	case token.Minus:
		number, ok := operand.(Number)
		if !ok {
			return nil, fmt.Errorf("%w: operand of unary '-' must be a number, got %s", ErrTypeMismatch, operand.Kind())
		}

		return -number, nil
	default:
		return nil, fmt.Errorf("unhandled unary operator: %s", expr.Op.Kind)
	}
}

// evaluateBinary evaluates an infix expression.
//
// "and" and "or" evaluate both sides and return a [Bool], there is no
// short circuiting. "+" adds numbers or concatenates strings, the
// remaining arithmetic operators require numbers, and the comparison
// operators accept a pair of numbers or a pair of strings.
func (i *Interpreter) evaluateBinary(expr ast.Binary, env *Environment) (Value, error) {
	left, err := i.evaluate(expr.Left, env)
	if err != nil {
		return nil, err
	}

	right, err := i.evaluate(expr.Right, env)
	if err != nil {
		return nil, err
	}

	switch expr.Op.Kind {
	case token.And:
		return Bool(left.Truthy() && right.Truthy()), nil
	case token.Or:
		return Bool(left.Truthy() || right.Truthy()), nil
	case token.Eq:
		return Bool(equal(left, right)), nil
	case token.NotEq:
		return Bool(!equal(left, right)), nil
	case token.Plus:
		if l, ok := left.(Number); ok {
			if r, ok := right.(Number); ok {
				return l + r, nil
			}
		}

		if l, ok := left.(String); ok {
			if r, ok := right.(String); ok {
				return l + r, nil
			}
		}

		return nil, fmt.Errorf(
			"%w: operands of '+' must be two numbers or two strings, got %s and %s",
			ErrTypeMismatch,
			left.Kind(),
			right.Kind(),
		)
	case token.Minus, token.Star, token.Slash:
		l, r, err := numberOperands(expr.Op.Kind, left, right)
		if err != nil {
			return nil, err
		}

		switch expr.Op.Kind {
		case token.Minus:
			return l - r, nil
		case token.Star:
			return l * r, nil
		default:
			// Division by zero follows IEEE 754, producing an infinity
			return l / r, nil
		}
	case token.Less, token.LessEq, token.Greater, token.GreaterEq:
		return compare(expr.Op.Kind, left, right)
	default:
		return nil, fmt.Errorf("unhandled binary operator: %s", expr.Op.Kind)
	}
}

// evaluateCall evaluates the callee and arguments left to right, checks
// arity, then invokes the function.
func (i *Interpreter) evaluateCall(expr ast.Call, env *Environment) (Value, error) {
	value, err := i.evaluate(expr.Callee, env)
	if err != nil {
		return nil, err
	}

	callee, ok := value.(Callable)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not callable", ErrTypeMismatch, value.Kind())
	}

	args := make([]Value, 0, len(expr.Args))

	for _, arg := range expr.Args {
		value, err := i.evaluate(arg, env)
		if err != nil {
			return nil, err
		}

		args = append(args, value)
	}

	if len(args) != callee.Arity() {
		name := callee.Name()
		if name == "" {
			name = "anonymous function"
		}

		return nil, fmt.Errorf(
			"%w: %s takes %d arguments, got %d",
			ErrArityMismatch,
			name,
			callee.Arity(),
			len(args),
		)
	}

	return callee.Call(i, args)
}

// numberOperands asserts that both operands are numbers, returning a
// [ErrTypeMismatch] naming the operator otherwise.
func numberOperands(op token.Kind, left, right Value) (l, r Number, err error) {
	l, leftOk := left.(Number)
	r, rightOk := right.(Number)

	if !leftOk || !rightOk {
		return 0, 0, fmt.Errorf(
			"%w: operands of '%s' must be numbers, got %s and %s",
			ErrTypeMismatch,
			lexeme(op),
			left.Kind(),
			right.Kind(),
		)
	}

	return l, r, nil
}

// compare implements the ordered comparison operators on a pair of
// numbers or a pair of strings.
func compare(op token.Kind, left, right Value) (Value, error) {
	if l, ok := left.(Number); ok {
		if r, ok := right.(Number); ok {
			return orderResult(op, float64(l), float64(r)), nil
		}
	}

	if l, ok := left.(String); ok {
		if r, ok := right.(String); ok {
			return orderResult(op, string(l), string(r)), nil
		}
	}

	return nil, fmt.Errorf(
		"%w: operands of '%s' must be two numbers or two strings, got %s and %s",
		ErrTypeMismatch,
		lexeme(op),
		left.Kind(),
		right.Kind(),
	)
}

// orderResult applies an ordered comparison to two values of the same
// ordered type.
func orderResult[T float64 | string](op token.Kind, l, r T) Bool {
	switch op {
	case token.Less:
		return Bool(l < r)
	case token.LessEq:
		return Bool(l <= r)
	case token.Greater:
		return Bool(l > r)
	default:
		return Bool(l >= r)
	}
}

// lexeme returns the source text of an operator, for error messages.
func lexeme(kind token.Kind) string {
	switch kind {
	case token.Plus:
		return "+"
	case token.Minus:
		return "-"
	case token.Star:
		return "*"
	case token.Slash:
		return "/"
	case token.Less:
		return "<"
	case token.LessEq:
		return "<="
	case token.Greater:
		return ">"
	case token.GreaterEq:
		return ">="
	case token.Eq:
		return "=="
	case token.NotEq:
		return "!="
	default:
		return kind.String()
	}
}
