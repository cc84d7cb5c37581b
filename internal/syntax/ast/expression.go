package ast

import "go.followtheprocess.codes/jot/internal/syntax/token"

// Expression is an expression node.
type Expression interface {
	Node
	expressionNode() // Prevents accidental misuse as another node type
}

// Ident is a named identifier expression.
type Ident struct {
	// Name is the ident's name.
	Name string `json:"name"`

	// Token is the [token.Ident] token.
	Token token.Token `json:"token"`

	// Type is [KindIdent].
	Type Kind `json:"type"`
}

// Start returns the first token in the Ident, which is
// the [token.Ident].
func (i Ident) Start() token.Token {
	return i.Token
}

// End returns the last token in the Ident, which is also
// the [token.Ident].
func (i Ident) End() token.Token {
	return i.Token
}

// Kind returns [KindIdent].
func (i Ident) Kind() Kind {
	return i.Type
}

// expressionNode marks an [Ident] as an [ast.Expression].
func (i Ident) expressionNode() {}

// NumberLiteral is a literal number expression.
//
// The literal text is kept as written in the source, conversion
// to a float happens at evaluation time.
type NumberLiteral struct {
	// Text is the literal text e.g. "3.14".
	Text string `json:"text"`

	// Token is the [token.Number] token.
	Token token.Token `json:"token"`

	// Type is [KindNumberLiteral].
	Type Kind `json:"type"`
}

// Start returns the [token.Number].
func (n NumberLiteral) Start() token.Token {
	return n.Token
}

// End also returns the [token.Number].
func (n NumberLiteral) End() token.Token {
	return n.Token
}

// Kind returns [KindNumberLiteral].
func (n NumberLiteral) Kind() Kind {
	return n.Type
}

// expressionNode marks a [NumberLiteral] as an [ast.Expression].
func (n NumberLiteral) expressionNode() {}

// StringLiteral is a literal string expression.
type StringLiteral struct {
	// Value is the string value with the surrounding quotes stripped.
	Value string `json:"value"`

	// Token is the [token.String] token.
	Token token.Token `json:"token"`

	// Type is [KindStringLiteral].
	Type Kind `json:"type"`
}

// Start returns the [token.String].
func (s StringLiteral) Start() token.Token {
	return s.Token
}

// End also returns the [token.String].
func (s StringLiteral) End() token.Token {
	return s.Token
}

// Kind returns [KindStringLiteral].
func (s StringLiteral) Kind() Kind {
	return s.Type
}

// expressionNode marks a [StringLiteral] as an [ast.Expression].
func (s StringLiteral) expressionNode() {}

// BoolLiteral is a literal boolean expression, "true" or "false".
type BoolLiteral struct {
	// Value is the boolean value.
	Value bool `json:"value"`

	// Token is the [token.True] or [token.False] token.
	Token token.Token `json:"token"`

	// Type is [KindBoolLiteral].
	Type Kind `json:"type"`
}

// Start returns the bool token.
func (b BoolLiteral) Start() token.Token {
	return b.Token
}

// End also returns the bool token.
func (b BoolLiteral) End() token.Token {
	return b.Token
}

// Kind returns [KindBoolLiteral].
func (b BoolLiteral) Kind() Kind {
	return b.Type
}

// expressionNode marks a [BoolLiteral] as an [ast.Expression].
func (b BoolLiteral) expressionNode() {}

// NullLiteral is the literal "null" expression.
type NullLiteral struct {
	// Token is the [token.Null] token.
	Token token.Token `json:"token"`

	// Type is [KindNullLiteral].
	Type Kind `json:"type"`
}

// Start returns the [token.Null].
func (n NullLiteral) Start() token.Token {
	return n.Token
}

// End also returns the [token.Null].
func (n NullLiteral) End() token.Token {
	return n.Token
}

// Kind returns [KindNullLiteral].
func (n NullLiteral) Kind() Kind {
	return n.Type
}

// expressionNode marks a [NullLiteral] as an [ast.Expression].
func (n NullLiteral) expressionNode() {}

// FunctionLiteral is an anonymous function expression.
type FunctionLiteral struct {
	// Params is the list of parameter names.
	Params []Ident `json:"params"`

	// Body is the function body.
	Body Block `json:"body"`

	// Function is the "function" keyword token.
	Function token.Token `json:"function"`

	// Type is [KindFunctionLiteral].
	Type Kind `json:"type"`
}

// Start returns the "function" keyword token.
func (f FunctionLiteral) Start() token.Token {
	return f.Function
}

// End returns the final token of the body.
func (f FunctionLiteral) End() token.Token {
	return f.Body.End()
}

// Kind returns [KindFunctionLiteral].
func (f FunctionLiteral) Kind() Kind {
	return f.Type
}

// expressionNode marks a [FunctionLiteral] as an [ast.Expression].
func (f FunctionLiteral) expressionNode() {}

// Grouping is a parenthesised expression.
type Grouping struct {
	// Expression is the expression inside the parens.
	Expression Expression `json:"expression"`

	// OpenParen is the '(' token.
	OpenParen token.Token `json:"openParen"`

	// CloseParen is the ')' token.
	CloseParen token.Token `json:"closeParen"`

	// Type is [KindGrouping].
	Type Kind `json:"type"`
}

// Start returns the '(' token.
func (g Grouping) Start() token.Token {
	return g.OpenParen
}

// End returns the ')' token.
func (g Grouping) End() token.Token {
	return g.CloseParen
}

// Kind returns [KindGrouping].
func (g Grouping) Kind() Kind {
	return g.Type
}

// expressionNode marks a [Grouping] as an [ast.Expression].
func (g Grouping) expressionNode() {}

// Assign is an assignment expression, it evaluates to the
// assigned value.
type Assign struct {
	// Value is the expression being assigned.
	Value Expression `json:"value"`

	// Name is the identifier being assigned to.
	Name Ident `json:"name"`

	// Type is [KindAssign].
	Type Kind `json:"type"`
}

// Start returns the first token of the target identifier.
func (a Assign) Start() token.Token {
	return a.Name.Start()
}

// End returns the final token of the value expression.
func (a Assign) End() token.Token {
	return a.Value.End()
}

// Kind returns [KindAssign].
func (a Assign) Kind() Kind {
	return a.Type
}

// expressionNode marks an [Assign] as an [ast.Expression].
func (a Assign) expressionNode() {}

// Unary is a prefix expression, '!' or '-' applied to an operand.
type Unary struct {
	// Operand is the expression the operator applies to.
	Operand Expression `json:"operand"`

	// Op is the operator token.
	Op token.Token `json:"op"`

	// Type is [KindUnary].
	Type Kind `json:"type"`
}

// Start returns the operator token.
func (u Unary) Start() token.Token {
	return u.Op
}

// End returns the final token of the operand.
func (u Unary) End() token.Token {
	return u.Operand.End()
}

// Kind returns [KindUnary].
func (u Unary) Kind() Kind {
	return u.Type
}

// expressionNode marks a [Unary] as an [ast.Expression].
func (u Unary) expressionNode() {}

// Binary is an infix expression, two operands joined by an operator.
//
// The logical operators "and" and "or" are also binary expressions.
type Binary struct {
	// Left is the left operand.
	Left Expression `json:"left"`

	// Right is the right operand.
	Right Expression `json:"right"`

	// Op is the operator token.
	Op token.Token `json:"op"`

	// Type is [KindBinary].
	Type Kind `json:"type"`
}

// Start returns the first token of the left operand.
func (b Binary) Start() token.Token {
	return b.Left.Start()
}

// End returns the final token of the right operand.
func (b Binary) End() token.Token {
	return b.Right.End()
}

// Kind returns [KindBinary].
func (b Binary) Kind() Kind {
	return b.Type
}

// expressionNode marks a [Binary] as an [ast.Expression].
func (b Binary) expressionNode() {}

// Call is a function call expression.
type Call struct {
	// Callee is the expression being called.
	Callee Expression `json:"callee"`

	// Args is the list of argument expressions.
	Args []Expression `json:"args"`

	// CloseParen is the ')' closing the argument list.
	CloseParen token.Token `json:"closeParen"`

	// Type is [KindCall].
	Type Kind `json:"type"`
}

// Start returns the first token of the callee.
func (c Call) Start() token.Token {
	return c.Callee.Start()
}

// End returns the ')' closing the argument list.
func (c Call) End() token.Token {
	return c.CloseParen
}

// Kind returns [KindCall].
func (c Call) Kind() Kind {
	return c.Type
}

// expressionNode marks a [Call] as an [ast.Expression].
func (c Call) expressionNode() {}
