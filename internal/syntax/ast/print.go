package ast

import (
	"strconv"
	"strings"

	"go.followtheprocess.codes/jot/internal/syntax/token"
)

// This file implements the String methods rendering ast nodes back to
// canonical jot source. The rendering is whitespace-normalised, so for
// any valid program parse(print(parse(src))) produces the same tree
// modulo token positions.

// lexeme returns the canonical source text for an operator token kind.
func lexeme(kind token.Kind) string {
	switch kind {
	case token.Bang:
		return "!"
	case token.Minus:
		return "-"
	case token.Plus:
		return "+"
	case token.Star:
		return "*"
	case token.Slash:
		return "/"
	case token.Assign:
		return "="
	case token.Eq:
		return "=="
	case token.NotEq:
		return "!="
	case token.Less:
		return "<"
	case token.LessEq:
		return "<="
	case token.Greater:
		return ">"
	case token.GreaterEq:
		return ">="
	case token.And:
		return "and"
	case token.Or:
		return "or"
	default:
		return kind.String()
	}
}

// indent prefixes every line of s with 4 spaces.
func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = "    " + line
		}
	}

	return strings.Join(lines, "\n")
}

// joinIdents renders a comma separated parameter list.
func joinIdents(idents []Ident) string {
	names := make([]string, 0, len(idents))
	for _, ident := range idents {
		names = append(names, ident.Name)
	}

	return strings.Join(names, ", ")
}

// String returns the ident's name.
func (i Ident) String() string {
	return i.Name
}

// String returns the number literal as written in the source.
func (n NumberLiteral) String() string {
	return n.Text
}

// String returns the quoted string literal.
func (s StringLiteral) String() string {
	return `"` + s.Value + `"`
}

// String returns "true" or "false".
func (b BoolLiteral) String() string {
	return strconv.FormatBool(b.Value)
}

// String returns "null".
func (n NullLiteral) String() string {
	return "null"
}

// String renders an anonymous function expression.
func (f FunctionLiteral) String() string {
	return "function(" + joinIdents(f.Params) + ") " + f.Body.String()
}

// String renders a parenthesised expression.
func (g Grouping) String() string {
	return "(" + g.Expression.String() + ")"
}

// String renders an assignment expression.
func (a Assign) String() string {
	return a.Name.String() + " = " + a.Value.String()
}

// String renders a prefix expression.
func (u Unary) String() string {
	return lexeme(u.Op.Kind) + u.Operand.String()
}

// String renders an infix expression.
func (b Binary) String() string {
	return b.Left.String() + " " + lexeme(b.Op.Kind) + " " + b.Right.String()
}

// String renders a call expression.
func (c Call) String() string {
	args := make([]string, 0, len(c.Args))
	for _, arg := range c.Args {
		args = append(args, arg.String())
	}

	return c.Callee.String() + "(" + strings.Join(args, ", ") + ")"
}

// String renders a let declaration.
func (l LetStatement) String() string {
	if l.Value == nil {
		return "let " + l.Name.String() + ";"
	}

	return "let " + l.Name.String() + " = " + l.Value.String() + ";"
}

// String renders a named function declaration.
func (f FunctionStatement) String() string {
	return "function " + f.Name.String() + "(" + joinIdents(f.Params) + ") " + f.Body.String()
}

// String renders an if statement.
func (i IfStatement) String() string {
	s := "if (" + i.Condition.String() + ") " + i.Then.String()
	if i.Else != nil {
		s += " else " + i.Else.String()
	}

	return s
}

// String renders a while loop.
func (w WhileStatement) String() string {
	return "while (" + w.Condition.String() + ") " + w.Body.String()
}

// String renders a braced block, one statement per line.
func (b Block) String() string {
	if len(b.Statements) == 0 {
		return "{}"
	}

	s := &strings.Builder{}
	s.WriteString("{\n")

	for _, statement := range b.Statements {
		s.WriteString(indent(statement.String()))
		s.WriteByte('\n')
	}

	s.WriteString("}")

	return s.String()
}

// String renders an expression statement.
func (e ExpressionStatement) String() string {
	return e.Expression.String() + ";"
}

// String renders a print statement.
func (p PrintStatement) String() string {
	return "print " + p.Value.String() + ";"
}

// String renders a return statement.
func (r ReturnStatement) String() string {
	if r.Value == nil {
		return "return;"
	}

	return "return " + r.Value.String() + ";"
}
