// Package scanner implements a lexical scanner for jot source code, reading the raw
// source text and emitting a stream of tokens.
//
// The scanner is a concurrent, state-function based scanner similar to that described by
// Rob Pike in his talk [Lexical Scanning in Go], based on the implementation of [text/template].
//
// The scanner proceeds one utf8 rune at a time until a particular token is recognised, the token
// is then emitted over a channel where it may be consumed by the parser. The state of the scanner
// is maintained between token emits unlike a more traditional switch-based lexer.
//
// A similar approach is taken in [BurntSushi/toml].
//
// [Lexical Scanning in Go]: https://go.dev/talks/2011/lex.slide#1
// [BurntSushi/toml]: https://github.com/BurntSushi/toml/blob/master/lex.go
package scanner

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"go.followtheprocess.codes/jot/internal/syntax"
	"go.followtheprocess.codes/jot/internal/syntax/token"
)

const (
	eof        = rune(-1) // eof signifies we have reached the end of the input.
	bufferSize = 32       // benchmarks suggest this is the optimum token channel buffer size.
)

// stateFn represents the state of the scanner as a function that does the work
// associated with the current state, then returns the next state.
type stateFn func(*Scanner) stateFn

// Scanner is the jot source code scanner.
type Scanner struct {
	tokens      chan token.Token    // Channel on which to emit scanned tokens.
	name        string              // Name of the file
	diagnostics []syntax.Diagnostic // Diagnostics gathered during scanning
	src         []byte              // Raw source text

	start             int          // The start position of the current token
	pos               int          // Current scanner position in src (bytes, 0 indexed)
	line              int          // Current line number (1 indexed)
	currentLineOffset int          // Offset at which the current line started, used for column calculation
	mu                sync.RWMutex // Guards diagnostics
}

// New returns a new [Scanner].
func New(name string, src []byte) *Scanner {
	s := &Scanner{
		tokens: make(chan token.Token, bufferSize),
		name:   name,
		src:    src,
		line:   1,
	}

	// run terminates when the scanning state machine is finished and all the
	// tokens are drained from s.tokens, so no other synchronisation needed here
	go s.run()

	return s
}

// Scan scans the input and returns the next token.
func (s *Scanner) Scan() token.Token {
	return <-s.tokens
}

// Diagnostics returns the list of diagnostics gathered during scanning.
func (s *Scanner) Diagnostics() []syntax.Diagnostic {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Create a copy so caller can't mutate the original diagnostics slice
	diagCopy := make([]syntax.Diagnostic, 0, len(s.diagnostics))
	diagCopy = append(diagCopy, s.diagnostics...)

	return diagCopy
}

// atEOF reports whether the scanner is at the end of the input.
func (s *Scanner) atEOF() bool {
	return s.pos >= len(s.src)
}

// char returns the next utf8 rune in the input or [eof], along with it's width.
func (s *Scanner) char() (rune, int) {
	if s.atEOF() {
		return eof, 0
	}

	r, width := utf8.DecodeRune(s.src[s.pos:])
	if r == utf8.RuneError || r == 0 {
		s.errorf("invalid utf8 character at position %d: %q", s.pos, s.src[s.pos])
		// Prevent cascading errors by "consuming" all remaining input
		s.pos = len(s.src)

		return utf8.RuneError, 0
	}

	return r, width
}

// next returns the next utf8 rune in the input or [eof], and advances
// the scanner over that rune such that successive calls to next iterate
// through src one rune at a time.
func (s *Scanner) next() rune {
	char, width := s.char()

	// Advance the state of the scanner
	s.pos += width

	if char == '\n' {
		s.line++
		s.currentLineOffset = s.pos
	}

	return char
}

// peek returns the next utf8 rune in the input or [eof], but does not
// advance the scanner. Successive calls to peek return the same char
// over and over again.
func (s *Scanner) peek() rune {
	// No advancing the state
	char, _ := s.char()
	return char
}

// discard brings the start position up to current, effectively discarding
// any text the scanner has "collected" up to this point.
func (s *Scanner) discard() {
	s.start = s.pos
}

// rest returns the rest of the input from the current scanner position,
// or nil if the scanner is an EOF.
func (s *Scanner) rest() []byte {
	if s.atEOF() {
		return nil
	}

	return s.src[s.pos:]
}

// skip ignores any characters for which the predicate returns true, stopping at the
// first one that returns false such that after it returns, [Scanner.next] returns the
// first 'false' char.
//
// The scanner start position is brought up to the current position before returning, effectively
// ignoring everything it's travelled over in the meantime.
func (s *Scanner) skip(predicate func(r rune) bool) {
	for predicate(s.peek()) {
		s.next()
	}

	s.discard()
}

// take consumes the next rune if it's from the valid set, and returns
// whether it was accepted.
func (s *Scanner) take(valid string) bool {
	if strings.ContainsRune(valid, s.peek()) {
		s.next()
		return true
	}

	return false
}

// takeWhile consumes characters so long as the predicate returns true, stopping at the
// first one that returns false such that after it returns, [Scanner.next] returns the first 'false' rune.
func (s *Scanner) takeWhile(predicate func(r rune) bool) {
	for predicate(s.peek()) {
		s.next()
	}
}

// takeUntil consumes characters until it hits any of the specified runes.
//
// It stops before it consumes the first specified rune such that after it returns,
// the next call to [Scanner.next] returns the offending rune.
//
//	s.takeUntil('\n', '\t') // Consume runes until you hit a newline or a tab
func (s *Scanner) takeUntil(runes ...rune) {
	// Implicitly also break on RuneError
	runes = append(runes, utf8.RuneError)

	for {
		next := s.peek()
		if slices.Contains(runes, next) {
			return
		}

		// Otherwise, advance the scanner
		s.next()
	}
}

// emit passes a token over the tokens channel, using the scanner's internal
// state to populate position information.
func (s *Scanner) emit(kind token.Kind) {
	s.tokens <- token.Token{
		Kind:  kind,
		Start: s.start,
		End:   s.pos,
	}

	// We've just emitted it, no need to keep it
	s.discard()
}

// error records a diagnostic with position information and emits an error
// token, halting the state machine.
func (s *Scanner) error(msg string) stateFn {
	// Column is the number of bytes between the last newline and the current position.
	// Capture both before emit discards the token start.
	startCol := s.start - s.currentLineOffset
	endCol := s.pos - s.currentLineOffset

	s.emit(token.Error)

	// If startCol and endCol only differ by 1, it's pointing
	// at a single character so we don't need a range, just point
	// at the start of the char.
	if math.Abs(float64(startCol-endCol)) <= 1 {
		endCol = startCol
	}

	position := syntax.Position{
		Name:     s.name,
		Offset:   s.pos,
		Line:     s.line,
		StartCol: startCol,
		EndCol:   endCol,
	}

	diag := syntax.Diagnostic{
		Position: position,
		Msg:      msg,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.diagnostics = append(s.diagnostics, diag)

	return nil
}

// errorf calls error with a formatted message.
func (s *Scanner) errorf(format string, a ...any) stateFn {
	return s.error(fmt.Sprintf(format, a...))
}

// run starts the state machine for the scanner, it runs with each [stateFn] returning the next
// state until one returns nil (typically in response to an error or eof), at which point the tokens channel
// is closed as a signal to the receiver that no more tokens will be sent.
func (s *Scanner) run() {
	for state := scanStart; state != nil; {
		state = state(s)
	}

	close(s.tokens)
}

// scanStart is the initial state of the scanner, and the state every
// complete token returns to.
//
// Unlike e.g. an http file, jot is regular enough that every construct
// can be recognised from its first character, so there is no state
// stack, every scan function comes straight back here.
//
// Whitespace is ignored.
func scanStart(s *Scanner) stateFn {
	s.skip(unicode.IsSpace)

	switch char := s.next(); {
	case char == eof:
		s.emit(token.EOF)
		return nil
	case char == utf8.RuneError:
		// next() already emits an error for this
		return nil
	case char == '"':
		return scanString
	case isDigit(char):
		return scanNumber
	case char == '.':
		// A leading '.' followed by a digit begins a number e.g. ".5"
		if isDigit(s.peek()) {
			return scanNumber
		}

		return s.errorf("unexpected character: %q", char)
	case isAlpha(char) || char == '_':
		return scanIdent
	default:
		return scanOperator(s, char)
	}
}

// scanIdent scans an identifier or keyword. The first character has
// already been consumed.
func scanIdent(s *Scanner) stateFn {
	s.takeWhile(isIdent)

	// Is it a keyword?
	text := string(s.src[s.start:s.pos])
	kind, _ := token.Keyword(text)

	s.emit(kind)

	return scanStart
}

// scanNumber scans a number literal. The first character, either a digit
// or a '.' immediately followed by a digit, has already been consumed.
//
// A number may contain at most one decimal point, and the point is only
// part of the number if a digit follows it. So "2.3.4" scans as the
// number "2.3" followed by the number ".4", and "7." scans as the number
// "7" with the dot left for the next token (where it is an error).
func scanNumber(s *Scanner) stateFn {
	seenDot := s.src[s.start] == '.'

	s.takeWhile(isDigit)

	if !seenDot && s.peek() == '.' {
		if rest := s.rest(); len(rest) > 1 && isDigit(rune(rest[1])) {
			s.next() // The '.'
			s.takeWhile(isDigit)
		}
	}

	s.emit(token.Number)

	return scanStart
}

// scanString scans a string literal delimited by double quotes. The
// opening quote has already been consumed.
//
// There are no escape sequences, the emitted token includes both quotes.
func scanString(s *Scanner) stateFn {
	s.takeUntil('"', eof)

	if s.peek() == eof {
		return s.error("unterminated string literal")
	}

	s.next() // The closing '"'
	s.emit(token.String)

	return scanStart
}

// scanOperator scans a single or double character operator or
// punctuation token. The first character char has already been consumed.
//
// Two character operators are greedy, "==" is always [token.Eq] and
// never two [token.Assign] tokens. "&&" and "||" are the symbolic
// spellings of "and" and "or", a lone '&' or '|' is an error.
func scanOperator(s *Scanner, char rune) stateFn {
	switch char {
	case '&':
		if !s.take("&") {
			return s.errorf("unexpected character: %q", char)
		}

		s.emit(token.And)
	case '|':
		if !s.take("|") {
			return s.errorf("unexpected character: %q", char)
		}

		s.emit(token.Or)
	case '=':
		if s.take("=") {
			s.emit(token.Eq)
		} else {
			s.emit(token.Assign)
		}
	case '!':
		if s.take("=") {
			s.emit(token.NotEq)
		} else {
			s.emit(token.Bang)
		}
	case '<':
		if s.take("=") {
			s.emit(token.LessEq)
		} else {
			s.emit(token.Less)
		}
	case '>':
		if s.take("=") {
			s.emit(token.GreaterEq)
		} else {
			s.emit(token.Greater)
		}
	case '+':
		s.emit(token.Plus)
	case '-':
		s.emit(token.Minus)
	case '*':
		s.emit(token.Star)
	case '/':
		s.emit(token.Slash)
	case ',':
		s.emit(token.Comma)
	case ';':
		s.emit(token.Semicolon)
	case '(':
		s.emit(token.OpenParen)
	case ')':
		s.emit(token.CloseParen)
	case '{':
		s.emit(token.OpenBrace)
	case '}':
		s.emit(token.CloseBrace)
	default:
		return s.errorf("unexpected character: %q", char)
	}

	return scanStart
}

// isDigit reports whether r is a valid ASCII digit.
func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isAlpha reports whether r is an alpha character.
func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// isIdent reports whether r is a valid identifier character.
//
// Identifiers are letters and underscores only, a digit ends the
// identifier and begins a number token.
func isIdent(r rune) bool {
	return isAlpha(r) || r == '_'
}
