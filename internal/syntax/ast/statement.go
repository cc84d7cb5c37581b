package ast

import "go.followtheprocess.codes/jot/internal/syntax/token"

// Statement is a statement node.
type Statement interface {
	Node
	statementNode() // Prevents accidental misuse as another node type
}

// A LetStatement is a single variable declaration.
type LetStatement struct {
	// Value is the expression [Name] is bound to, may be nil in which
	// case the variable is bound to null.
	Value Expression `json:"value,omitempty"`

	// Name is the identifier being declared.
	Name Ident `json:"name"`

	// Let is the "let" keyword token.
	Let token.Token `json:"let"`

	// Type is [KindLetStatement].
	Type Kind `json:"type"`
}

// Start returns the "let" keyword token.
func (l LetStatement) Start() token.Token {
	return l.Let
}

// End returns the final token of the value expression if present,
// otherwise the name being declared.
func (l LetStatement) End() token.Token {
	if l.Value != nil {
		return l.Value.End()
	}

	return l.Name.End()
}

// Kind returns [KindLetStatement].
func (l LetStatement) Kind() Kind {
	return l.Type
}

// statementNode marks a [LetStatement] as an [ast.Statement].
func (l LetStatement) statementNode() {}

// A FunctionStatement is a named function declaration.
type FunctionStatement struct {
	// Name is the function name.
	Name Ident `json:"name"`

	// Params is the list of parameter names.
	Params []Ident `json:"params"`

	// Body is the function body.
	Body Block `json:"body"`

	// Function is the "function" keyword token.
	Function token.Token `json:"function"`

	// Type is [KindFunctionStatement].
	Type Kind `json:"type"`
}

// Start returns the "function" keyword token.
func (f FunctionStatement) Start() token.Token {
	return f.Function
}

// End returns the final token of the body.
func (f FunctionStatement) End() token.Token {
	return f.Body.End()
}

// Kind returns [KindFunctionStatement].
func (f FunctionStatement) Kind() Kind {
	return f.Type
}

// statementNode marks a [FunctionStatement] as an [ast.Statement].
func (f FunctionStatement) statementNode() {}

// An IfStatement is a conditional statement with an optional else branch.
//
// Use [NewIf] to construct one, it enforces that neither branch is a
// bare let declaration.
type IfStatement struct {
	// Condition is the condition expression.
	Condition Expression `json:"condition"`

	// Then is the statement executed when the condition is truthy.
	Then Statement `json:"then"`

	// Else is the statement executed when the condition is falsy,
	// may be nil.
	Else Statement `json:"else,omitempty"`

	// If is the "if" keyword token.
	If token.Token `json:"if"`

	// Type is [KindIfStatement].
	Type Kind `json:"type"`
}

// Start returns the "if" keyword token.
func (i IfStatement) Start() token.Token {
	return i.If
}

// End returns the final token of the else branch if present, otherwise
// the final token of the then branch.
func (i IfStatement) End() token.Token {
	if i.Else != nil {
		return i.Else.End()
	}

	return i.Then.End()
}

// Kind returns [KindIfStatement].
func (i IfStatement) Kind() Kind {
	return i.Type
}

// statementNode marks an [IfStatement] as an [ast.Statement].
func (i IfStatement) statementNode() {}

// A WhileStatement is a loop, executing its body while the condition
// remains truthy.
//
// There is no dedicated for node, a for loop is desugared at parse time
// into a block containing the initialiser and a while loop.
type WhileStatement struct {
	// Condition is the loop condition.
	Condition Expression `json:"condition"`

	// Body is the loop body.
	Body Statement `json:"body"`

	// While is the "while" keyword token.
	While token.Token `json:"while"`

	// Type is [KindWhileStatement].
	Type Kind `json:"type"`
}

// Start returns the "while" keyword token.
func (w WhileStatement) Start() token.Token {
	return w.While
}

// End returns the final token of the body.
func (w WhileStatement) End() token.Token {
	return w.Body.End()
}

// Kind returns [KindWhileStatement].
func (w WhileStatement) Kind() Kind {
	return w.Type
}

// statementNode marks a [WhileStatement] as an [ast.Statement].
func (w WhileStatement) statementNode() {}

// A Block is a braced list of statements, introducing a new scope.
type Block struct {
	// Statements is the list of statements in the block.
	Statements []Statement `json:"statements"`

	// OpenBrace is the '{' token.
	OpenBrace token.Token `json:"openBrace"`

	// CloseBrace is the '}' token.
	CloseBrace token.Token `json:"closeBrace"`

	// Type is [KindBlock].
	Type Kind `json:"type"`
}

// Start returns the '{' token.
func (b Block) Start() token.Token {
	return b.OpenBrace
}

// End returns the '}' token.
func (b Block) End() token.Token {
	return b.CloseBrace
}

// Kind returns [KindBlock].
func (b Block) Kind() Kind {
	return b.Type
}

// statementNode marks a [Block] as an [ast.Statement].
func (b Block) statementNode() {}

// An ExpressionStatement is an expression evaluated for its side
// effects, its value is discarded.
type ExpressionStatement struct {
	// Expression is the wrapped expression.
	Expression Expression `json:"expression"`

	// Type is [KindExpressionStatement].
	Type Kind `json:"type"`
}

// Start returns the first token of the expression.
func (e ExpressionStatement) Start() token.Token {
	return e.Expression.Start()
}

// End returns the final token of the expression.
func (e ExpressionStatement) End() token.Token {
	return e.Expression.End()
}

// Kind returns [KindExpressionStatement].
func (e ExpressionStatement) Kind() Kind {
	return e.Type
}

// statementNode marks an [ExpressionStatement] as an [ast.Statement].
func (e ExpressionStatement) statementNode() {}

// A PrintStatement writes the value of an expression to the
// interpreter's output.
type PrintStatement struct {
	// Value is the expression to print.
	Value Expression `json:"value"`

	// Print is the "print" keyword token.
	Print token.Token `json:"print"`

	// Type is [KindPrintStatement].
	Type Kind `json:"type"`
}

// Start returns the "print" keyword token.
func (p PrintStatement) Start() token.Token {
	return p.Print
}

// End returns the final token of the value expression.
func (p PrintStatement) End() token.Token {
	return p.Value.End()
}

// Kind returns [KindPrintStatement].
func (p PrintStatement) Kind() Kind {
	return p.Type
}

// statementNode marks a [PrintStatement] as an [ast.Statement].
func (p PrintStatement) statementNode() {}

// A ReturnStatement returns control (and optionally a value) from the
// enclosing function.
type ReturnStatement struct {
	// Value is the expression to return, may be nil in which case
	// the function returns null.
	Value Expression `json:"value,omitempty"`

	// Return is the "return" keyword token.
	Return token.Token `json:"return"`

	// Type is [KindReturnStatement].
	Type Kind `json:"type"`
}

// Start returns the "return" keyword token.
func (r ReturnStatement) Start() token.Token {
	return r.Return
}

// End returns the final token of the value expression if present,
// otherwise the "return" keyword itself.
func (r ReturnStatement) End() token.Token {
	if r.Value != nil {
		return r.Value.End()
	}

	return r.Return
}

// Kind returns [KindReturnStatement].
func (r ReturnStatement) Kind() Kind {
	return r.Type
}

// statementNode marks a [ReturnStatement] as an [ast.Statement].
func (r ReturnStatement) statementNode() {}
