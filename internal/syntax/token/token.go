// Package token provides the set of lexical tokens for a jot program.
package token

import (
	"fmt"
	"slices"
)

// Kind is the kind of a token.
type Kind int

//go:generate stringer -type Kind -linecomment
const (
	EOF        Kind = iota // EOF
	Error                  // Error
	Ident                  // Ident
	Number                 // Number
	String                 // String
	Let                    // Let
	If                     // If
	Else                   // Else
	While                  // While
	For                    // For
	Do                     // Do
	Function               // Function
	Return                 // Return
	Print                  // Print
	True                   // True
	False                  // False
	Null                   // Null
	And                    // And
	Or                     // Or
	Bang                   // Bang
	Assign                 // Assign
	Eq                     // Eq
	NotEq                  // NotEq
	Less                   // Less
	LessEq                 // LessEq
	Greater                // Greater
	GreaterEq              // GreaterEq
	Plus                   // Plus
	Minus                  // Minus
	Star                   // Star
	Slash                  // Slash
	Comma                  // Comma
	Semicolon              // Semicolon
	OpenParen              // OpenParen
	CloseParen             // CloseParen
	OpenBrace              // OpenBrace
	CloseBrace             // CloseBrace
)

// MarshalText implements [encoding.TextMarshaler] for [Kind].
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Token is a lexical token in a jot program.
type Token struct {
	Kind  Kind `json:"kind"`  // The kind of token this is
	Start int  `json:"start"` // Byte offset from the start of the file to the start of this token
	End   int  `json:"end"`   // Byte offset from the start of the file to the end of this token
}

// String implement [fmt.Stringer] for a [Token].
func (t Token) String() string {
	return fmt.Sprintf("<Token::%s start=%d, end=%d>", t.Kind, t.Start, t.End)
}

// Is reports whether the token is any of the provided [Kind]s.
func (t Token) Is(kinds ...Kind) bool {
	return slices.Contains(kinds, t.Kind)
}

// Keyword reports whether a string refers to a keyword, returning it's [Kind]
// and true if it is. Otherwise [Ident] and false are returned.
func Keyword(text string) (kind Kind, ok bool) {
	switch text {
	case "let":
		return Let, true
	case "if":
		return If, true
	case "else":
		return Else, true
	case "while":
		return While, true
	case "for":
		return For, true
	case "do":
		return Do, true
	case "function":
		return Function, true
	case "return":
		return Return, true
	case "print":
		return Print, true
	case "true":
		return True, true
	case "false":
		return False, true
	case "null":
		return Null, true
	case "and":
		return And, true
	case "or":
		return Or, true
	default:
		return Ident, false
	}
}
