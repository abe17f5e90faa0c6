package token

import (
	"errors"
	"fmt"
)

// Kind represents the lexical category of a Frost token
type Kind int

const (
	// Special tokens
	EOF   Kind = iota
	ERROR      // unrecognized input, one offending character per token

	// Identifiers
	IDENTIFIER // variable, function and type names

	// Keywords
	IF     // if
	ELSE   // else
	WHILE  // while
	FOR    // for
	RETURN // return
	INT    // int
	FLOAT  // float
	CHAR   // char
	VOID   // void
	STRUCT // struct
	CONST  // const

	// Literals
	INT_LIT    // 42
	FLOAT_LIT  // 3.14
	CHAR_LIT   // 'a' (delimiters and escapes kept verbatim)
	STRING_LIT // "hello" (delimiters and escapes kept verbatim)

	// Arithmetic operators
	PLUS     // +
	MINUS    // -
	MULTIPLY // *
	DIVIDE   // /
	MODULO   // %

	// Relational operators
	EQ_EQ  // ==
	NOT_EQ // !=
	LT     // <
	GT     // >
	LT_EQ  // <=
	GT_EQ  // >=

	// Logical operators
	AND_AND // &&
	OR_OR   // ||
	NOT     // !

	// Assignment operators
	ASSIGN          // =
	PLUS_ASSIGN     // +=
	MINUS_ASSIGN    // -=
	MULTIPLY_ASSIGN // *=
	DIVIDE_ASSIGN   // /=

	// Bitwise operators
	BIT_AND // &
	BIT_OR  // |
	BIT_XOR // ^
	BIT_NOT // ~
	LSHIFT  // <<
	RSHIFT  // >>

	// Pointer operators. The lexer never emits these: '*' and '&' always
	// come out as MULTIPLY and BIT_AND, and the parser re-tags them where
	// operator position says dereference or address-of.
	POINTER // * in pointer position
	ADDRESS // & in address-of position

	// Delimiters
	SEMICOLON    // ;
	COMMA        // ,
	PERIOD       // .
	COLON        // :
	DOUBLE_COLON // ::
	LPAREN       // (
	RPAREN       // )
	LBRACE       // {
	RBRACE       // }
	LSQUARE      // [
	RSQUARE      // ]

	// Comments
	COMMENT // // line or /* block */, emitted only when the lexer asks for them
)

// Pre-computed kind name lookup for fast debugging
var kindNames = [...]string{
	EOF:             "EOF",
	ERROR:           "ERROR",
	IDENTIFIER:      "IDENTIFIER",
	IF:              "IF",
	ELSE:            "ELSE",
	WHILE:           "WHILE",
	FOR:             "FOR",
	RETURN:          "RETURN",
	INT:             "INT",
	FLOAT:           "FLOAT",
	CHAR:            "CHAR",
	VOID:            "VOID",
	STRUCT:          "STRUCT",
	CONST:           "CONST",
	INT_LIT:         "INT_LIT",
	FLOAT_LIT:       "FLOAT_LIT",
	CHAR_LIT:        "CHAR_LIT",
	STRING_LIT:      "STRING_LIT",
	PLUS:            "PLUS",
	MINUS:           "MINUS",
	MULTIPLY:        "MULTIPLY",
	DIVIDE:          "DIVIDE",
	MODULO:          "MODULO",
	EQ_EQ:           "EQ_EQ",
	NOT_EQ:          "NOT_EQ",
	LT:              "LT",
	GT:              "GT",
	LT_EQ:           "LT_EQ",
	GT_EQ:           "GT_EQ",
	AND_AND:         "AND_AND",
	OR_OR:           "OR_OR",
	NOT:             "NOT",
	ASSIGN:          "ASSIGN",
	PLUS_ASSIGN:     "PLUS_ASSIGN",
	MINUS_ASSIGN:    "MINUS_ASSIGN",
	MULTIPLY_ASSIGN: "MULTIPLY_ASSIGN",
	DIVIDE_ASSIGN:   "DIVIDE_ASSIGN",
	BIT_AND:         "BIT_AND",
	BIT_OR:          "BIT_OR",
	BIT_XOR:         "BIT_XOR",
	BIT_NOT:         "BIT_NOT",
	LSHIFT:          "LSHIFT",
	RSHIFT:          "RSHIFT",
	POINTER:         "POINTER",
	ADDRESS:         "ADDRESS",
	SEMICOLON:       "SEMICOLON",
	COMMA:           "COMMA",
	PERIOD:          "PERIOD",
	COLON:           "COLON",
	DOUBLE_COLON:    "DOUBLE_COLON",
	LPAREN:          "LPAREN",
	RPAREN:          "RPAREN",
	LBRACE:          "LBRACE",
	RBRACE:          "RBRACE",
	LSQUARE:         "LSQUARE",
	RSQUARE:         "RSQUARE",
	COMMENT:         "COMMENT",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && int(k) >= 0 {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Keywords maps reserved words to their kinds. Lookup is exact and
// case-sensitive: "While" and "while1" are identifiers.
var Keywords = map[string]Kind{
	"if":     IF,
	"else":   ELSE,
	"while":  WHILE,
	"for":    FOR,
	"return": RETURN,
	"int":    INT,
	"float":  FLOAT,
	"char":   CHAR,
	"void":   VOID,
	"struct": STRUCT,
	"const":  CONST,
}

// spellings holds the fixed source form of kinds whose text is implied
// by the kind itself. These tokens carry no lexeme.
var spellings = map[Kind]string{
	PLUS:            "+",
	MINUS:           "-",
	MULTIPLY:        "*",
	DIVIDE:          "/",
	MODULO:          "%",
	EQ_EQ:           "==",
	NOT_EQ:          "!=",
	LT:              "<",
	GT:              ">",
	LT_EQ:           "<=",
	GT_EQ:           ">=",
	AND_AND:         "&&",
	OR_OR:           "||",
	NOT:             "!",
	ASSIGN:          "=",
	PLUS_ASSIGN:     "+=",
	MINUS_ASSIGN:    "-=",
	MULTIPLY_ASSIGN: "*=",
	DIVIDE_ASSIGN:   "/=",
	BIT_AND:         "&",
	BIT_OR:          "|",
	BIT_XOR:         "^",
	BIT_NOT:         "~",
	LSHIFT:          "<<",
	RSHIFT:          ">>",
	POINTER:         "*",
	ADDRESS:         "&",
	SEMICOLON:       ";",
	COMMA:           ",",
	PERIOD:          ".",
	COLON:           ":",
	DOUBLE_COLON:    "::",
	LPAREN:          "(",
	RPAREN:          ")",
	LBRACE:          "{",
	RBRACE:          "}",
	LSQUARE:         "[",
	RSQUARE:         "]",
}

// Spelling returns the fixed source form for punctuation and operator
// kinds, or "" for kinds whose text lives in the token's lexeme.
func (k Kind) Spelling() string {
	return spellings[k]
}

// HasLexeme reports whether tokens of this kind carry their source text
// in the Lexeme field. Punctuation, operators and EOF do not: their
// spelling is implied by the kind.
func (k Kind) HasLexeme() bool {
	switch k {
	case IDENTIFIER, INT_LIT, FLOAT_LIT, CHAR_LIT, STRING_LIT, COMMENT, ERROR:
		return true
	}
	_, keyword := keywordKinds[k]
	return keyword
}

// keywordKinds is the reverse of Keywords, built once at init
var keywordKinds = func() map[Kind]string {
	m := make(map[Kind]string, len(Keywords))
	for word, kind := range Keywords {
		m[kind] = word
	}
	return m
}()

var (
	// ErrMissingLexeme is returned by New when a lexeme-bearing kind is
	// constructed without one.
	ErrMissingLexeme = errors.New("token: kind requires a lexeme")

	// ErrUnexpectedLexeme is returned by New when a fixed-spelling kind
	// is given a lexeme.
	ErrUnexpectedLexeme = errors.New("token: kind does not carry a lexeme")
)

// Token represents a single lexed token with position information.
// Tokens are plain values: once built they are never mutated, and the
// lexeme is always an independent copy of the source text.
type Token struct {
	Kind   Kind   `json:"kind"`
	Lexeme string `json:"lexeme,omitempty"`
	Line   int    `json:"line"`   // 1-based
	Column int    `json:"column"` // 1-based
}

// New builds a token, validating that the lexeme is present exactly
// when the kind demands one. The lexer constructs tokens directly;
// this is the checked entry point for everything else.
func New(kind Kind, lexeme string) (Token, error) {
	if kind.HasLexeme() && lexeme == "" {
		return Token{}, fmt.Errorf("%w: %s", ErrMissingLexeme, kind)
	}
	if !kind.HasLexeme() && lexeme != "" {
		return Token{}, fmt.Errorf("%w: %s got %q", ErrUnexpectedLexeme, kind, lexeme)
	}
	return Token{Kind: kind, Lexeme: lexeme}, nil
}

// Text returns the source form of the token: the lexeme when the kind
// carries one, the fixed spelling otherwise. EOF yields "".
func (t Token) Text() string {
	if t.Lexeme != "" {
		return t.Lexeme
	}
	return t.Kind.Spelling()
}

// Position returns a formatted position string for error reporting
func (t Token) Position() string {
	return fmt.Sprintf("%d:%d", t.Line, t.Column)
}

func (t Token) String() string {
	if t.Kind.HasLexeme() {
		return fmt.Sprintf("%s(%q)", t.Kind, t.Lexeme)
	}
	return t.Kind.String()
}
