package lexer

import (
	"errors"
	"time"

	"github.com/RafaelVVolkmer/Frost-Compiler/pkgs/diagnostics"
	"github.com/RafaelVVolkmer/Frost-Compiler/pkgs/token"
)

// Character classification lookup tables for fast byte-level dispatch
var (
	isWhitespace [256]bool
	isLetter     [256]bool
	isDigit      [256]bool
	isIdentStart [256]bool
	isIdentPart  [256]bool
)

func init() {
	for i := 0; i < 256; i++ {
		ch := byte(i)
		isWhitespace[i] = ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
		isLetter[i] = ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
		isDigit[i] = '0' <= ch && ch <= '9'
		isIdentStart[i] = isLetter[i] || ch == '_'
		isIdentPart[i] = isIdentStart[i] || isDigit[i]
	}
}

// ErrNoSource is returned by New when given a nil source buffer.
var ErrNoSource = errors.New("lexer: nil source buffer")

// Diagnostic codes reported through the injected sink
const (
	CodeUnrecognizedChar   = "L0001"
	CodeUnterminatedString = "L0002"
	CodeUnterminatedChar   = "L0003"
	CodeUnterminatedBlock  = "L0004"
)

// Option configures a Lexer at construction time
type Option func(*Lexer)

// WithReporter injects a diagnostics sink. Lexical error conditions
// (unrecognized characters, unterminated literals and comments) are
// reported there in addition to surfacing as ERROR tokens.
func WithReporter(r diagnostics.Reporter) Option {
	return func(l *Lexer) {
		if r != nil {
			l.reporter = r
		}
	}
}

// WithComments makes NextToken emit COMMENT tokens instead of treating
// comments as whitespace.
func WithComments() Option {
	return func(l *Lexer) {
		l.emitComments = true
	}
}

// Lexer tokenizes Frost source code one token per NextToken call.
//
// The lexer borrows the source buffer for its lifetime and never
// aliases it into returned tokens: every lexeme is an independent
// copy. A Lexer is single-threaded; concurrent lexing of independent
// buffers takes one Lexer each.
type Lexer struct {
	src    []byte
	pos    int  // 0 <= pos <= len(src)
	ch     byte // src[pos], or 0 once pos == len(src)
	line   int
	column int

	reporter     diagnostics.Reporter
	emitComments bool

	tokenCount int
	elapsed    time.Duration
}

// New creates a lexer over src. The buffer must be non-nil; empty
// input is valid and lexes straight to EOF.
func New(src []byte, opts ...Option) (*Lexer, error) {
	if src == nil {
		return nil, ErrNoSource
	}

	l := &Lexer{
		src:      src,
		line:     1,
		column:   1,
		reporter: diagnostics.Discard,
	}
	if len(src) > 0 {
		l.ch = src[0]
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Peek returns the byte at offset from the current position without
// advancing. Reads at or past the end of the buffer return 0, never an
// out-of-bounds byte.
func (l *Lexer) Peek(offset int) byte {
	idx := l.pos + offset
	if idx < 0 || idx >= len(l.src) {
		return 0
	}
	return l.src[idx]
}

// advance moves the cursor one byte forward. At end of input it is a
// no-op, so repeated calls past EOF are safe.
func (l *Lexer) advance() {
	if l.pos >= len(l.src) || l.ch == 0 {
		return
	}
	if l.ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	l.pos++
	if l.pos < len(l.src) {
		l.ch = l.src[l.pos]
	} else {
		l.ch = 0
	}
}

// TokenCount returns the number of tokens produced so far
func (l *Lexer) TokenCount() int {
	return l.tokenCount
}

// Duration returns the cumulative time spent inside NextToken
func (l *Lexer) Duration() time.Duration {
	return l.elapsed
}

// Tokenize drains the lexer and returns the full EOF-terminated stream
func (l *Lexer) Tokenize() []token.Token {
	estimated := len(l.src) / 5
	if estimated < 16 {
		estimated = 16
	}
	result := make([]token.Token, 0, estimated)

	for {
		tok := l.NextToken()
		result = append(result, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return result
}

// NextToken returns the next token from the input. Malformed source
// never aborts the stream: unrecognized characters come back as ERROR
// tokens one character at a time, and once EOF is reached every
// further call returns EOF again.
func (l *Lexer) NextToken() token.Token {
	start := time.Now()
	defer func() {
		l.elapsed += time.Since(start)
		l.tokenCount++
	}()

	// Comments are lexically whitespace unless the caller asked for them
	for {
		l.skipWhitespace()
		if l.ch == '/' && l.Peek(1) == '/' {
			tok := l.lexLineComment()
			if l.emitComments {
				return tok
			}
			continue
		}
		if l.ch == '/' && l.Peek(1) == '*' {
			tok, terminated := l.lexBlockComment()
			if !terminated || l.emitComments {
				return tok
			}
			continue
		}
		break
	}

	if l.ch == 0 {
		return token.Token{Kind: token.EOF, Line: l.line, Column: l.column}
	}

	if isIdentStart[l.ch] {
		return l.lexIdentifier()
	}
	if isDigit[l.ch] {
		return l.lexNumber()
	}
	if l.ch == '"' {
		return l.lexString()
	}
	if l.ch == '\'' {
		return l.lexChar()
	}

	return l.lexOperator()
}

// skipWhitespace advances past a maximal run of space, tab, CR and LF
func (l *Lexer) skipWhitespace() {
	for isWhitespace[l.ch] && l.ch != 0 {
		l.advance()
	}
}

// lexIdentifier reads an identifier or keyword at the current position
func (l *Lexer) lexIdentifier() token.Token {
	line, column := l.line, l.column
	start := l.pos

	for isIdentPart[l.ch] && l.ch != 0 {
		l.advance()
	}

	lexeme := string(l.src[start:l.pos])
	kind := token.IDENTIFIER
	if kw, ok := token.Keywords[lexeme]; ok {
		kind = kw
	}

	return token.Token{Kind: kind, Lexeme: lexeme, Line: line, Column: column}
}

// lexNumber reads an integer or float literal. A '.' continues the run
// as a float only when a digit follows; anything else terminates the
// number and is re-lexed as its own token.
func (l *Lexer) lexNumber() token.Token {
	line, column := l.line, l.column
	start := l.pos

	for isDigit[l.ch] {
		l.advance()
	}

	kind := token.INT_LIT
	if l.ch == '.' && isDigit[l.Peek(1)] {
		l.advance()
		for isDigit[l.ch] {
			l.advance()
		}
		kind = token.FLOAT_LIT
	}

	return token.Token{
		Kind:   kind,
		Lexeme: string(l.src[start:l.pos]),
		Line:   line,
		Column: column,
	}
}

// lexString reads a string literal. The lexeme keeps the source text
// verbatim, delimiters and escape sequences included; escape decoding
// belongs to a later stage.
func (l *Lexer) lexString() token.Token {
	line, column := l.line, l.column
	start := l.pos
	l.advance() // opening quote

	for {
		if l.ch == 0 || l.ch == '\n' {
			lexeme := string(l.src[start:l.pos])
			l.report(diagnostics.Diagnostic{
				Severity: diagnostics.Error,
				Code:     CodeUnterminatedString,
				Message:  "unterminated string literal",
				Line:     line,
				Column:   column,
				Snippet:  lexeme,
			})
			return token.Token{Kind: token.ERROR, Lexeme: lexeme, Line: line, Column: column}
		}
		if l.ch == '\\' {
			l.advance()
			if l.ch == 0 {
				continue // unterminated, reported on next pass
			}
			l.advance()
			continue
		}
		if l.ch == '"' {
			l.advance() // closing quote
			break
		}
		l.advance()
	}

	return token.Token{
		Kind:   token.STRING_LIT,
		Lexeme: string(l.src[start:l.pos]),
		Line:   line,
		Column: column,
	}
}

// lexChar reads a character literal. Empty and multi-character
// payloads are preserved as-is; validating them is not this layer's
// job.
func (l *Lexer) lexChar() token.Token {
	line, column := l.line, l.column
	start := l.pos
	l.advance() // opening quote

	for {
		if l.ch == 0 || l.ch == '\n' {
			lexeme := string(l.src[start:l.pos])
			l.report(diagnostics.Diagnostic{
				Severity: diagnostics.Error,
				Code:     CodeUnterminatedChar,
				Message:  "unterminated character literal",
				Line:     line,
				Column:   column,
				Snippet:  lexeme,
			})
			return token.Token{Kind: token.ERROR, Lexeme: lexeme, Line: line, Column: column}
		}
		if l.ch == '\\' {
			l.advance()
			if l.ch == 0 {
				continue
			}
			l.advance()
			continue
		}
		if l.ch == '\'' {
			l.advance() // closing quote
			break
		}
		l.advance()
	}

	return token.Token{
		Kind:   token.CHAR_LIT,
		Lexeme: string(l.src[start:l.pos]),
		Line:   line,
		Column: column,
	}
}

// lexLineComment reads a // comment up to, not including, the newline
func (l *Lexer) lexLineComment() token.Token {
	line, column := l.line, l.column
	start := l.pos

	for l.ch != '\n' && l.ch != 0 {
		l.advance()
	}

	return token.Token{
		Kind:   token.COMMENT,
		Lexeme: string(l.src[start:l.pos]),
		Line:   line,
		Column: column,
	}
}

// lexBlockComment reads a /* */ comment, closer included. Reaching end
// of input first yields an ERROR token carrying the partial text.
func (l *Lexer) lexBlockComment() (token.Token, bool) {
	line, column := l.line, l.column
	start := l.pos
	l.advance() // '/'
	l.advance() // '*'

	for {
		if l.ch == 0 {
			lexeme := string(l.src[start:l.pos])
			l.report(diagnostics.Diagnostic{
				Severity: diagnostics.Error,
				Code:     CodeUnterminatedBlock,
				Message:  "unterminated block comment",
				Line:     line,
				Column:   column,
				Snippet:  lexeme,
			})
			return token.Token{Kind: token.ERROR, Lexeme: lexeme, Line: line, Column: column}, false
		}
		if l.ch == '*' && l.Peek(1) == '/' {
			l.advance()
			l.advance()
			break
		}
		l.advance()
	}

	tok := token.Token{
		Kind:   token.COMMENT,
		Lexeme: string(l.src[start:l.pos]),
		Line:   line,
		Column: column,
	}
	return tok, true
}

// lexOperator handles operators and delimiters with maximal munch:
// the longest lexeme that matches at the current position wins, so
// "<=" is one token and never '<' then '='.
func (l *Lexer) lexOperator() token.Token {
	switch l.ch {
	case '=':
		return l.selectTwo('=', token.EQ_EQ, token.ASSIGN)
	case '!':
		return l.selectTwo('=', token.NOT_EQ, token.NOT)
	case '<':
		return l.lexLess()
	case '>':
		return l.lexGreater()
	case '&':
		return l.selectTwo('&', token.AND_AND, token.BIT_AND)
	case '|':
		return l.selectTwo('|', token.OR_OR, token.BIT_OR)
	case '+':
		return l.selectTwo('=', token.PLUS_ASSIGN, token.PLUS)
	case '-':
		return l.selectTwo('=', token.MINUS_ASSIGN, token.MINUS)
	case '*':
		// Always MULTIPLY here: pointer-vs-multiply needs operator
		// position, which only the parser has
		return l.selectTwo('=', token.MULTIPLY_ASSIGN, token.MULTIPLY)
	case '/':
		return l.selectTwo('=', token.DIVIDE_ASSIGN, token.DIVIDE)
	case ':':
		return l.selectTwo(':', token.DOUBLE_COLON, token.COLON)
	case '%':
		return l.fixed(token.MODULO)
	case '^':
		return l.fixed(token.BIT_XOR)
	case '~':
		return l.fixed(token.BIT_NOT)
	case ';':
		return l.fixed(token.SEMICOLON)
	case ',':
		return l.fixed(token.COMMA)
	case '.':
		return l.fixed(token.PERIOD)
	case '(':
		return l.fixed(token.LPAREN)
	case ')':
		return l.fixed(token.RPAREN)
	case '{':
		return l.fixed(token.LBRACE)
	case '}':
		return l.fixed(token.RBRACE)
	case '[':
		return l.fixed(token.LSQUARE)
	case ']':
		return l.fixed(token.RSQUARE)
	}

	// Unrecognized character: consume exactly one byte so the stream
	// always makes forward progress
	line, column := l.line, l.column
	lexeme := string(l.src[l.pos : l.pos+1])
	l.report(diagnostics.Diagnostic{
		Severity: diagnostics.Error,
		Code:     CodeUnrecognizedChar,
		Message:  "unrecognized character " + lexeme,
		Line:     line,
		Column:   column,
		Snippet:  lexeme,
	})
	l.advance()
	return token.Token{Kind: token.ERROR, Lexeme: lexeme, Line: line, Column: column}
}

// lexLess handles '<', '<=' and '<<'
func (l *Lexer) lexLess() token.Token {
	switch l.Peek(1) {
	case '=':
		return l.fixedWide(token.LT_EQ, 2)
	case '<':
		return l.fixedWide(token.LSHIFT, 2)
	}
	return l.fixed(token.LT)
}

// lexGreater handles '>', '>=' and '>>'
func (l *Lexer) lexGreater() token.Token {
	switch l.Peek(1) {
	case '=':
		return l.fixedWide(token.GT_EQ, 2)
	case '>':
		return l.fixedWide(token.RSHIFT, 2)
	}
	return l.fixed(token.GT)
}

// selectTwo emits the two-character kind when the next byte matches
// follow, the single-character kind otherwise
func (l *Lexer) selectTwo(follow byte, twoChar, oneChar token.Kind) token.Token {
	if l.Peek(1) == follow {
		return l.fixedWide(twoChar, 2)
	}
	return l.fixed(oneChar)
}

// fixed emits a fixed-spelling single-character token
func (l *Lexer) fixed(kind token.Kind) token.Token {
	return l.fixedWide(kind, 1)
}

// fixedWide consumes width characters and emits a fixed-spelling token
func (l *Lexer) fixedWide(kind token.Kind, width int) token.Token {
	tok := token.Token{Kind: kind, Line: l.line, Column: l.column}
	for i := 0; i < width; i++ {
		l.advance()
	}
	return tok
}

func (l *Lexer) report(d diagnostics.Diagnostic) {
	l.reporter.Report(d)
}
