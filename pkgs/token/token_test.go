package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequiresLexemeForTextKinds(t *testing.T) {
	_, err := New(IDENTIFIER, "")
	require.ErrorIs(t, err, ErrMissingLexeme)

	_, err = New(STRING_LIT, "")
	require.ErrorIs(t, err, ErrMissingLexeme)

	tok, err := New(IDENTIFIER, "foo")
	require.NoError(t, err)
	assert.Equal(t, IDENTIFIER, tok.Kind)
	assert.Equal(t, "foo", tok.Lexeme)
}

func TestNewRejectsLexemeOnFixedKinds(t *testing.T) {
	_, err := New(PLUS, "+")
	require.ErrorIs(t, err, ErrUnexpectedLexeme)

	tok, err := New(PLUS, "")
	require.NoError(t, err)
	assert.Equal(t, "+", tok.Text())
}

func TestIndependentLexemeCopies(t *testing.T) {
	a, err := New(IDENTIFIER, "foo")
	require.NoError(t, err)
	b, err := New(IDENTIFIER, "foo")
	require.NoError(t, err)

	// Tokens are values: nothing one token does can touch another
	a.Lexeme = "bar"
	assert.Equal(t, "foo", b.Lexeme)
}

func TestKeywordTableIsComplete(t *testing.T) {
	assert.Len(t, Keywords, 11)
	for word, kind := range Keywords {
		assert.Truef(t, kind.HasLexeme(), "keyword %s should carry its lexeme", word)
	}
}

func TestSpelling(t *testing.T) {
	assert.Equal(t, "<=", LT_EQ.Spelling())
	assert.Equal(t, "::", DOUBLE_COLON.Spelling())
	assert.Equal(t, "", IDENTIFIER.Spelling())
	assert.Equal(t, "", EOF.Spelling())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "IDENTIFIER", IDENTIFIER.String())
	assert.Equal(t, "EOF", EOF.String())
	assert.Equal(t, "Kind(999)", Kind(999).String())
}

func TestTokenString(t *testing.T) {
	tok := Token{Kind: IDENTIFIER, Lexeme: "main", Line: 3, Column: 5}
	assert.Equal(t, `IDENTIFIER("main")`, tok.String())
	assert.Equal(t, "3:5", tok.Position())

	assert.Equal(t, "SEMICOLON", Token{Kind: SEMICOLON}.String())
}

func TestKindFromName(t *testing.T) {
	kind, ok := KindFromName("identifier")
	require.True(t, ok)
	assert.Equal(t, IDENTIFIER, kind)

	_, ok = KindFromName("NOPE_NOT_A_KIND")
	assert.False(t, ok)
}

func TestSuggestKind(t *testing.T) {
	suggestion, ok := SuggestKind("IDENTIFER")
	require.True(t, ok)
	assert.Equal(t, "IDENTIFIER", suggestion)
}
