// Package ast defines an abstract syntax tree for the jot grammar.
package ast

import (
	"errors"
	"strings"

	"go.followtheprocess.codes/jot/internal/syntax/token"
)

// Node is the interface for ast nodes.
type Node interface {
	// Start returns the first token associated with the node.
	Start() token.Token

	// End returns the last token associated with the node.
	End() token.Token

	// Kind returns the kind of node this is.
	Kind() Kind

	// String renders the node back to canonical jot source.
	String() string
}

// Program is an ast [Node] representing a single jot program.
type Program struct {
	// Name is the name of the file the program was parsed from.
	Name string `json:"name"`

	// Statements is the list of ast statements in the program.
	Statements []Statement `json:"statements"`

	// Type is the type of the node, in this case [KindProgram].
	Type Kind `json:"type"`
}

// Start returns the first token in a program.
//
// If the program is empty, [token.EOF] is returned.
func (p Program) Start() token.Token {
	if len(p.Statements) == 0 {
		return token.Token{Kind: token.EOF}
	}

	return p.Statements[0].Start()
}

// End returns the final token in the program.
func (p Program) End() token.Token {
	if len(p.Statements) == 0 {
		return token.Token{Kind: token.EOF}
	}

	return p.Statements[len(p.Statements)-1].End()
}

// Kind returns [KindProgram].
func (p Program) Kind() Kind {
	return p.Type
}

// String renders the whole program back to canonical jot source, one
// statement per line.
func (p Program) String() string {
	s := &strings.Builder{}
	for _, statement := range p.Statements {
		s.WriteString(statement.String())
		s.WriteByte('\n')
	}

	return s.String()
}

// NewIf returns a new [IfStatement], validating the branches.
//
// A branch of an if may be any statement other than a bare let
// declaration, a binding whose scope would end with the branch
// is useless. Wrapping the declaration in a block is fine.
func NewIf(ifToken token.Token, condition Expression, then, alternative Statement) (IfStatement, error) {
	if then == nil {
		return IfStatement{}, errors.New("if statement must have a then branch")
	}

	if then.Kind() == KindLetStatement {
		return IfStatement{}, errors.New("a let declaration cannot be the body of an if")
	}

	if alternative != nil && alternative.Kind() == KindLetStatement {
		return IfStatement{}, errors.New("a let declaration cannot be the body of an else")
	}

	statement := IfStatement{
		Condition: condition,
		Then:      then,
		Else:      alternative,
		If:        ifToken,
		Type:      KindIfStatement,
	}

	return statement, nil
}
