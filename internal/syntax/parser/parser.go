// Package parser implements the jot parser.
//
// The parser is a recursive descent parser with Pratt style operator
// precedence for expressions. It parses a stream of tokens from the
// scanner into ast nodes.
//
// There is no error recovery, the first parse error aborts the parse and
// no partial tree is returned. Diagnostics carry the position detail,
// the returned error simply signifies that parsing failed.
package parser

import (
	"errors"
	"fmt"
	"slices"

	"go.followtheprocess.codes/jot/internal/syntax"
	"go.followtheprocess.codes/jot/internal/syntax/ast"
	"go.followtheprocess.codes/jot/internal/syntax/scanner"
	"go.followtheprocess.codes/jot/internal/syntax/token"
)

// ErrParse is a generic parsing error, details on the error are
// available via [Parser.Diagnostics].
var ErrParse = errors.New("parse error")

// Functions may not have more than this many parameters, nor calls more
// than this many arguments.
const maxArity = 255

// Operator precedence levels, from lowest to highest binding power.
const (
	lowestPrecedence = iota
	precedenceAssign
	precedenceOr
	precedenceAnd
	precedenceEquality
	precedenceComparison
	precedenceTerm
	precedenceFactor
	precedenceUnary
	precedenceCall
)

// precedence returns the binding power of an infix operator kind,
// or lowestPrecedence for any other kind.
//
// Assignment and call are not in here, they get dedicated handling
// in parseExpression.
func precedence(kind token.Kind) int {
	switch kind {
	case token.Or:
		return precedenceOr
	case token.And:
		return precedenceAnd
	case token.Eq, token.NotEq:
		return precedenceEquality
	case token.Less, token.LessEq, token.Greater, token.GreaterEq:
		return precedenceComparison
	case token.Plus, token.Minus:
		return precedenceTerm
	case token.Star, token.Slash:
		return precedenceFactor
	default:
		return lowestPrecedence
	}
}

// Parser is the jot parser.
type Parser struct {
	diagnostics []syntax.Diagnostic // Diagnostics gathered during parsing
	scanner     *scanner.Scanner    // Scanner to produce tokens
	name        string              // Name of the file being parsed
	src         []byte              // Raw source text
	current     token.Token         // Current token under inspection
	next        token.Token         // Next token in the stream
}

// New initialises and returns a new [Parser] that parses src.
func New(name string, src []byte) *Parser {
	p := &Parser{
		scanner: scanner.New(name, src),
		name:    name,
		src:     src,
	}

	// Read 2 tokens so current and next are set
	p.advance()
	p.advance()

	return p
}

// Parse parses the program to completion returning an [ast.Program] and
// any parsing errors.
//
// The first error aborts the parse, the zero [ast.Program] is returned
// alongside [ErrParse] and the detail is available from [Parser.Diagnostics].
func (p *Parser) Parse() (ast.Program, error) {
	if p == nil {
		return ast.Program{}, errors.New("Parse called on nil parser")
	}

	program := ast.Program{
		Name:       p.name,
		Statements: make([]ast.Statement, 0),
		Type:       ast.KindProgram,
	}

	for !p.current.Is(token.EOF) {
		if p.current.Is(token.Error) {
			p.error("Error token from scanner")
			p.drain()

			return ast.Program{}, ErrParse
		}

		// Stray semicolons between statements are harmless
		if p.current.Is(token.Semicolon) {
			p.advance()
			continue
		}

		statement, err := p.parseStatement()
		if err != nil {
			p.drain()
			return ast.Program{}, ErrParse
		}

		program.Statements = append(program.Statements, statement)

		p.advance()
	}

	return program, nil
}

// Diagnostics returns any [syntax.Diagnostic] gathered during parsing.
func (p *Parser) Diagnostics() []syntax.Diagnostic {
	combined := slices.Concat(p.scanner.Diagnostics(), p.diagnostics)

	// Sort by file and line number
	slices.SortFunc(combined, func(a, b syntax.Diagnostic) int {
		return syntax.ComparePosition(a.Position, b.Position)
	})

	return combined
}

// advance advances the parser by a single token.
func (p *Parser) advance() {
	p.current = p.next
	p.next = p.scanner.Scan()
}

// drain consumes any remaining tokens from the scanner so that its
// goroutine may exit, the token channel is closed once the final token
// has been read.
//
// It must be called before abandoning a parse, otherwise the scanner
// goroutine leaks.
func (p *Parser) drain() {
	for !p.next.Is(token.EOF, token.Error) {
		p.advance()
	}
}

// expect asserts that the next token is one of the given kinds, emitting a syntax error if not.
//
// The parser is advanced only if the next token is of one of these kinds such that after returning
// p.current will be one of the kinds.
//
// It returns an [ErrParse] if the expectation is violated, nil otherwise.
func (p *Parser) expect(kinds ...token.Kind) error {
	if p.next.Is(token.Error) {
		// Nobody expects an error!
		p.error("Error token from scanner")
		return ErrParse
	}

	switch len(kinds) {
	case 0:
		return nil
	case 1:
		if !p.next.Is(kinds[0]) {
			p.errorf("expected %s, got %s", kinds[0], p.next.Kind)
			return ErrParse
		}
	default:
		if !p.next.Is(kinds...) {
			p.errorf("expected one of %v, got %s", kinds, p.next.Kind)
			return ErrParse
		}
	}

	p.advance()

	return nil
}

// position returns the parser's current position in the input as a [syntax.Position].
//
// The position is calculated based on the start offset of the current token.
func (p *Parser) position() syntax.Position {
	line := 1              // Line counter
	lastNewLineOffset := 0 // The byte offset of the (end of the) last newline seen

	for index, byt := range p.src {
		if index >= p.current.Start {
			break
		}

		if byt == '\n' {
			lastNewLineOffset = index + 1 // +1 to account for len("\n")
			line++
		}
	}

	// If the next token is EOF, we use the end of the current token as the syntax
	// error is likely to be unexpected EOF so we want to point to the end of the
	// current token as in "something should have gone here"
	start := p.current.Start
	if p.next.Is(token.EOF) {
		start = p.current.End
	}

	end := p.current.End

	// The column is therefore the number of bytes between the end of the last newline
	// and the current position, +1 because editors columns start at 1. Applying this
	// correction here means you can click a syntax error in the terminal and be
	// taken to a precise location in an editor which is probably what we want to happen
	startCol := 1 + start - lastNewLineOffset
	endCol := 1 + end - lastNewLineOffset

	return syntax.Position{
		Name:     p.name,
		Offset:   p.current.Start,
		Line:     line,
		StartCol: startCol,
		EndCol:   endCol,
	}
}

// error calculates the current position and appends a syntax diagnostic to
// the parser.
func (p *Parser) error(msg string) {
	diag := syntax.Diagnostic{
		Msg:      msg,
		Position: p.position(),
	}

	p.diagnostics = append(p.diagnostics, diag)
}

// errorf calls error with a formatted message.
func (p *Parser) errorf(format string, a ...any) {
	p.error(fmt.Sprintf(format, a...))
}

// text returns the chunk of source text described by the p.current token.
func (p *Parser) text() string {
	return string(p.src[p.current.Start:p.current.End])
}

// parseStatement parses a statement.
//
// Statement parsers are entered with p.current on the first token of the
// construct, and leave p.current on its final token, the caller advances
// past it.
func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.current.Kind {
	case token.Let:
		return p.parseLet()
	case token.Function:
		if p.next.Is(token.Ident) {
			return p.parseFunctionStatement()
		}

		// An anonymous function expression in statement position
		return p.parseExpressionStatement()
	case token.If:
		return p.parseIf()
	case token.While:
		return p.parseWhile()
	case token.For:
		return p.parseFor()
	case token.OpenBrace:
		return p.parseBlock()
	case token.Print:
		return p.parsePrint()
	case token.Return:
		return p.parseReturn()
	case token.Do:
		p.error("'do' is a reserved word")
		return nil, ErrParse
	default:
		return p.parseExpressionStatement()
	}
}

// parseLet parses a let declaration, the initialiser is optional.
func (p *Parser) parseLet() (ast.LetStatement, error) {
	result := ast.LetStatement{
		Let:  p.current,
		Type: ast.KindLetStatement,
	}

	if err := p.expect(token.Ident); err != nil {
		return result, err
	}

	result.Name = p.parseIdent()

	if !p.next.Is(token.Assign) {
		// A bare "let x", the variable is bound to null
		return result, nil
	}

	p.advance() // The '='
	p.advance()

	value, err := p.parseExpression(lowestPrecedence)
	if err != nil {
		return result, err
	}

	result.Value = value

	return result, nil
}

// parseFunctionStatement parses a named function declaration.
func (p *Parser) parseFunctionStatement() (ast.FunctionStatement, error) {
	result := ast.FunctionStatement{
		Function: p.current,
		Type:     ast.KindFunctionStatement,
	}

	if err := p.expect(token.Ident); err != nil {
		return result, err
	}

	result.Name = p.parseIdent()

	if err := p.expect(token.OpenParen); err != nil {
		return result, err
	}

	params, err := p.parseParams()
	if err != nil {
		return result, err
	}

	result.Params = params

	if err := p.expect(token.OpenBrace); err != nil {
		return result, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return result, err
	}

	result.Body = body

	return result, nil
}

// parseIf parses an if statement with an optional else branch.
func (p *Parser) parseIf() (ast.Statement, error) {
	ifToken := p.current

	if err := p.expect(token.OpenParen); err != nil {
		return nil, err
	}

	p.advance()

	condition, err := p.parseExpression(lowestPrecedence)
	if err != nil {
		return nil, err
	}

	if err := p.expect(token.CloseParen); err != nil {
		return nil, err
	}

	p.advance()

	then, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	var alternative ast.Statement

	if p.next.Is(token.Else) {
		p.advance() // The "else"
		p.advance()

		alternative, err = p.parseStatement()
		if err != nil {
			return nil, err
		}
	}

	statement, err := ast.NewIf(ifToken, condition, then, alternative)
	if err != nil {
		p.error(err.Error())
		return nil, ErrParse
	}

	return statement, nil
}

// parseWhile parses a while loop.
func (p *Parser) parseWhile() (ast.WhileStatement, error) {
	result := ast.WhileStatement{
		While: p.current,
		Type:  ast.KindWhileStatement,
	}

	if err := p.expect(token.OpenParen); err != nil {
		return result, err
	}

	p.advance()

	condition, err := p.parseExpression(lowestPrecedence)
	if err != nil {
		return result, err
	}

	result.Condition = condition

	if err := p.expect(token.CloseParen); err != nil {
		return result, err
	}

	p.advance()

	body, err := p.parseStatement()
	if err != nil {
		return result, err
	}

	result.Body = body

	return result, nil
}

// parseFor parses a for loop.
//
// There is no for node in the ast, the loop is desugared at parse time:
//
//	for (let i = 0; i < 10; i = i + 1) print i;
//
// becomes:
//
//	{
//	    let i = 0;
//	    while (i < 10) {
//	        print i;
//	        i = i + 1;
//	    }
//	}
//
// A missing condition defaults to true.
func (p *Parser) parseFor() (ast.Statement, error) {
	forToken := p.current

	if err := p.expect(token.OpenParen); err != nil {
		return nil, err
	}

	var (
		initialiser ast.Statement
		err         error
	)

	if !p.next.Is(token.Semicolon) {
		p.advance()

		if p.current.Is(token.Let) {
			initialiser, err = p.parseLet()
		} else {
			initialiser, err = p.parseExpressionStatement()
		}

		if err != nil {
			return nil, err
		}
	}

	if err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}

	var condition ast.Expression = ast.BoolLiteral{Value: true, Type: ast.KindBoolLiteral}

	if !p.next.Is(token.Semicolon) {
		p.advance()

		condition, err = p.parseExpression(lowestPrecedence)
		if err != nil {
			return nil, err
		}
	}

	if err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}

	var increment ast.Expression

	if !p.next.Is(token.CloseParen) {
		p.advance()

		increment, err = p.parseExpression(lowestPrecedence)
		if err != nil {
			return nil, err
		}
	}

	if err := p.expect(token.CloseParen); err != nil {
		return nil, err
	}

	p.advance()

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	if increment != nil {
		body = ast.Block{
			Statements: []ast.Statement{
				body,
				ast.ExpressionStatement{Expression: increment, Type: ast.KindExpressionStatement},
			},
			Type: ast.KindBlock,
		}
	}

	loop := ast.WhileStatement{
		Condition: condition,
		Body:      body,
		While:     forToken,
		Type:      ast.KindWhileStatement,
	}

	if initialiser == nil {
		return loop, nil
	}

	// The initialiser gets its own scope so the loop variable does not
	// leak into the surrounding one
	block := ast.Block{
		Statements: []ast.Statement{initialiser, loop},
		Type:       ast.KindBlock,
	}

	return block, nil
}

// parseBlock parses a braced block of statements.
func (p *Parser) parseBlock() (ast.Block, error) {
	result := ast.Block{
		OpenBrace: p.current,
		Type:      ast.KindBlock,
	}

	for !p.next.Is(token.CloseBrace, token.EOF, token.Error) {
		p.advance()

		// Stray semicolons between statements are harmless
		if p.current.Is(token.Semicolon) {
			continue
		}

		statement, err := p.parseStatement()
		if err != nil {
			return result, err
		}

		result.Statements = append(result.Statements, statement)
	}

	if err := p.expect(token.CloseBrace); err != nil {
		return result, err
	}

	result.CloseBrace = p.current

	return result, nil
}

// parsePrint parses a print statement.
func (p *Parser) parsePrint() (ast.PrintStatement, error) {
	result := ast.PrintStatement{
		Print: p.current,
		Type:  ast.KindPrintStatement,
	}

	p.advance()

	value, err := p.parseExpression(lowestPrecedence)
	if err != nil {
		return result, err
	}

	result.Value = value

	return result, nil
}

// parseReturn parses a return statement, the value is optional.
func (p *Parser) parseReturn() (ast.ReturnStatement, error) {
	result := ast.ReturnStatement{
		Return: p.current,
		Type:   ast.KindReturnStatement,
	}

	if p.next.Is(token.Semicolon, token.CloseBrace, token.EOF) {
		// A bare "return", the function returns null
		return result, nil
	}

	p.advance()

	value, err := p.parseExpression(lowestPrecedence)
	if err != nil {
		return result, err
	}

	result.Value = value

	return result, nil
}

// parseExpressionStatement parses an expression in statement position.
func (p *Parser) parseExpressionStatement() (ast.ExpressionStatement, error) {
	result := ast.ExpressionStatement{
		Type: ast.KindExpressionStatement,
	}

	expression, err := p.parseExpression(lowestPrecedence)
	if err != nil {
		return result, err
	}

	result.Expression = expression

	return result, nil
}

// parseExpression parses an expression with a Pratt style precedence
// climbing loop.
//
// It is entered with p.current on the first token of the expression and
// leaves p.current on its final token.
func (p *Parser) parseExpression(prec int) (ast.Expression, error) {
	var (
		expr ast.Expression
		err  error
	)

	// Prefix position, the tokens an expression may begin with
	switch p.current.Kind {
	case token.Number:
		expr = ast.NumberLiteral{Text: p.text(), Token: p.current, Type: ast.KindNumberLiteral}
	case token.String:
		expr = p.parseStringLiteral()
	case token.True:
		expr = ast.BoolLiteral{Value: true, Token: p.current, Type: ast.KindBoolLiteral}
	case token.False:
		expr = ast.BoolLiteral{Value: false, Token: p.current, Type: ast.KindBoolLiteral}
	case token.Null:
		expr = ast.NullLiteral{Token: p.current, Type: ast.KindNullLiteral}
	case token.Ident:
		expr = p.parseIdent()
	case token.Bang, token.Minus:
		expr, err = p.parseUnary()
	case token.OpenParen:
		expr, err = p.parseGrouping()
	case token.Function:
		expr, err = p.parseFunctionLiteral()
	default:
		p.errorf("parseExpression: unexpected token %s", p.current.Kind)
		return nil, ErrParse
	}

	if err != nil {
		return nil, err
	}

	// Infix position, climb while the next operator binds tighter than
	// the level we were called at
	for {
		switch {
		case p.next.Is(token.OpenParen) && prec < precedenceCall:
			p.advance()

			expr, err = p.parseCall(expr)
		case p.next.Is(token.Assign) && prec < precedenceAssign:
			expr, err = p.parseAssign(expr)
		case prec < precedence(p.next.Kind):
			p.advance()

			expr, err = p.parseBinary(expr)
		default:
			return expr, nil
		}

		if err != nil {
			return nil, err
		}
	}
}

// parseStringLiteral parses a string literal, stripping the surrounding
// quotes from the value.
func (p *Parser) parseStringLiteral() ast.StringLiteral {
	text := p.text()

	return ast.StringLiteral{
		Value: text[1 : len(text)-1],
		Token: p.current,
		Type:  ast.KindStringLiteral,
	}
}

// parseIdent parses an Ident.
func (p *Parser) parseIdent() ast.Ident {
	ident := ast.Ident{
		Name:  p.text(),
		Token: p.current,
		Type:  ast.KindIdent,
	}

	return ident
}

// parseUnary parses a prefix expression, '!' or '-'.
func (p *Parser) parseUnary() (ast.Unary, error) {
	result := ast.Unary{
		Op:   p.current,
		Type: ast.KindUnary,
	}

	p.advance()

	operand, err := p.parseExpression(precedenceUnary)
	if err != nil {
		return result, err
	}

	result.Operand = operand

	return result, nil
}

// parseGrouping parses a parenthesised expression.
func (p *Parser) parseGrouping() (ast.Grouping, error) {
	result := ast.Grouping{
		OpenParen: p.current,
		Type:      ast.KindGrouping,
	}

	p.advance()

	expression, err := p.parseExpression(lowestPrecedence)
	if err != nil {
		return result, err
	}

	result.Expression = expression

	if err := p.expect(token.CloseParen); err != nil {
		return result, err
	}

	result.CloseParen = p.current

	return result, nil
}

// parseFunctionLiteral parses an anonymous function expression.
func (p *Parser) parseFunctionLiteral() (ast.FunctionLiteral, error) {
	result := ast.FunctionLiteral{
		Function: p.current,
		Type:     ast.KindFunctionLiteral,
	}

	if err := p.expect(token.OpenParen); err != nil {
		return result, err
	}

	params, err := p.parseParams()
	if err != nil {
		return result, err
	}

	result.Params = params

	if err := p.expect(token.OpenBrace); err != nil {
		return result, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return result, err
	}

	result.Body = body

	return result, nil
}

// parseParams parses a parenthesised parameter list, it is entered with
// p.current on the '(' and leaves p.current on the ')'.
func (p *Parser) parseParams() ([]ast.Ident, error) {
	var params []ast.Ident

	for !p.next.Is(token.CloseParen) {
		if err := p.expect(token.Ident); err != nil {
			return nil, err
		}

		params = append(params, p.parseIdent())

		if len(params) > maxArity {
			p.errorf("cannot have more than %d parameters", maxArity)
			return nil, ErrParse
		}

		if !p.next.Is(token.Comma) {
			break
		}

		p.advance() // The comma
	}

	if err := p.expect(token.CloseParen); err != nil {
		return nil, err
	}

	return params, nil
}

// parseCall parses a call expression, it is entered with p.current on
// the '(' opening the argument list.
func (p *Parser) parseCall(callee ast.Expression) (ast.Call, error) {
	result := ast.Call{
		Callee: callee,
		Type:   ast.KindCall,
	}

	for !p.next.Is(token.CloseParen) {
		p.advance()

		arg, err := p.parseExpression(lowestPrecedence)
		if err != nil {
			return result, err
		}

		result.Args = append(result.Args, arg)

		if len(result.Args) > maxArity {
			p.errorf("cannot have more than %d arguments", maxArity)
			return result, ErrParse
		}

		if !p.next.Is(token.Comma) {
			break
		}

		p.advance() // The comma
	}

	if err := p.expect(token.CloseParen); err != nil {
		return result, err
	}

	result.CloseParen = p.current

	return result, nil
}

// parseAssign parses an assignment expression, the left hand side must
// be a plain identifier.
func (p *Parser) parseAssign(left ast.Expression) (ast.Assign, error) {
	result := ast.Assign{
		Type: ast.KindAssign,
	}

	name, ok := left.(ast.Ident)
	if !ok {
		p.errorf("invalid assignment target: %s", left.Kind())
		return result, ErrParse
	}

	result.Name = name

	p.advance() // The '='
	p.advance()

	// Assignment is right associative, a = b = c assigns c to both
	value, err := p.parseExpression(precedenceAssign - 1)
	if err != nil {
		return result, err
	}

	result.Value = value

	return result, nil
}

// parseBinary parses an infix expression, including "and" and "or".
func (p *Parser) parseBinary(left ast.Expression) (ast.Binary, error) {
	result := ast.Binary{
		Left: left,
		Op:   p.current,
		Type: ast.KindBinary,
	}

	prec := precedence(p.current.Kind)

	p.advance()

	right, err := p.parseExpression(prec)
	if err != nil {
		return result, err
	}

	result.Right = right

	return result, nil
}
