package ast

// Kind is the type of an ast Node.
type Kind int

// AST Node kinds.
//
//go:generate stringer -type Kind -linecomment
const (
	KindInvalid             Kind = iota // Invalid
	KindProgram                         // Program
	KindIdent                           // Ident
	KindNumberLiteral                   // NumberLiteral
	KindStringLiteral                   // StringLiteral
	KindBoolLiteral                     // BoolLiteral
	KindNullLiteral                     // NullLiteral
	KindFunctionLiteral                 // FunctionLiteral
	KindGrouping                        // Grouping
	KindAssign                          // Assign
	KindUnary                           // Unary
	KindBinary                          // Binary
	KindCall                            // Call
	KindLetStatement                    // LetStatement
	KindFunctionStatement               // FunctionStatement
	KindIfStatement                     // IfStatement
	KindWhileStatement                  // WhileStatement
	KindBlock                           // Block
	KindExpressionStatement             // ExpressionStatement
	KindPrintStatement                  // PrintStatement
	KindReturnStatement                 // ReturnStatement
)

// MarshalText implements [encoding.TextMarshaler] for [Kind].
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
