package lang

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// joined concatenates token literals, which makes inserted tokens visible.
func joined(tokens []Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		sb.WriteString(t.Literal)
	}
	return sb.String()
}

func TestLexNormalizes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1+2", "1+2)"},
		{" 1 + 2 ", "1+2)"},
		{"1 2 + 3", "12+3)"},
		{"2(1/2)4(5-7)(0+1)", "2*(1/2)*4*(5-7)*(0+1))"},
		{"(1)5", "(1)*5)"},
		{"(1) 5", "(1)*5)"},
		{"(1)(2)", "(1)*(2))"},
		{"5 (1)", "5*(1))"},
		{"+--+-5", "+--+-5)"},
		{"3*-5", "3*-5)"},
		{"\t7\r\n", "7)"},
	}

	for _, tt := range tests {
		tokens, err := Lex(tt.input, DefaultPrecision)
		if !assert.NoError(t, err, "Lex(%q)", tt.input) {
			continue
		}
		assert.Equal(t, tt.want, joined(tokens), "Lex(%q)", tt.input)
	}
}

func TestLexSyntheticTokens(t *testing.T) {
	tokens, err := Lex("2(3)4", DefaultPrecision)
	require.NoError(t, err)

	var synthetic []Token
	for _, tok := range tokens {
		if tok.Synthetic {
			synthetic = append(synthetic, tok)
		}
	}
	require.Len(t, synthetic, 3)
	assert.Equal(t, TOKEN_STAR, synthetic[0].Type)
	assert.Equal(t, 1, synthetic[0].Pos)
	assert.Equal(t, TOKEN_STAR, synthetic[1].Type)
	assert.Equal(t, 4, synthetic[1].Pos)

	sentinel := tokens[len(tokens)-1]
	assert.Equal(t, TOKEN_RPAREN, sentinel.Type)
	assert.Equal(t, 5, sentinel.Pos)
	assert.Equal(t, sentinel, synthetic[2])
}

func TestLexNumberToken(t *testing.T) {
	tokens, err := Lex("12 34*5", DefaultPrecision)
	require.NoError(t, err)
	require.Len(t, tokens, 4)
	assert.Equal(t, Token{Type: TOKEN_NUMBER, Literal: "1234", Pos: 0}, tokens[0])
	assert.Equal(t, Token{Type: TOKEN_STAR, Literal: "*", Pos: 5}, tokens[1])
	assert.Equal(t, Token{Type: TOKEN_NUMBER, Literal: "5", Pos: 6}, tokens[2])
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  ErrorKind
		pos   int
	}{
		{"", KindEmpty, -1},
		{"   ", KindEmpty, -1},
		{"()", KindEmptyParens, 0},
		{"( )", KindEmptyParens, 0},
		{"7+()", KindEmptyParens, 2},
		{"(", KindUnmatchedParen, 0},
		{")", KindUnmatchedParen, 0},
		{"4+5)", KindUnmatchedParen, 3},
		{"(4+5", KindUnmatchedParen, 0},
		{"((1)", KindUnmatchedParen, 0},
		{"((1+(2+(3+(4+(5+(6+(7))))))))))", KindUnmatchedParen, 29},
		{"*3+5", KindLeadingOperator, 0},
		{"(*3)", KindLeadingOperator, 1},
		{"/2", KindLeadingOperator, 0},
		{"4*/6", KindAdjacentOperators, 2},
		{"5++*3", KindAdjacentOperators, 3},
		{"10/**2", KindAdjacentOperators, 3},
		{"8+/-2", KindAdjacentOperators, 2},
		{"3 + * 4", KindAdjacentOperators, 4},
		{"5 + - * 7", KindAdjacentOperators, 6},
		{"7+", KindTrailingOperator, 1},
		{"3+5-", KindTrailingOperator, 3},
		{"4/4*4*", KindTrailingOperator, 5},
		{"(7+)6", KindTrailingOperator, 2},
		{"-", KindTrailingOperator, 0},
		{"2^3", KindInvalidCharacter, 1},
		{"x", KindInvalidCharacter, 0},
		{"1.5", KindInvalidCharacter, 1},
		{"1234567890123456", KindDigitOverflow, 15},
	}

	for _, tt := range tests {
		_, err := Lex(tt.input, DefaultPrecision)
		var e *Error
		if !assert.True(t, errors.As(err, &e), "Lex(%q) error = %v, want *Error", tt.input, err) {
			continue
		}
		assert.Equal(t, tt.kind, e.Kind, "Lex(%q) kind; error %v", tt.input, err)
		assert.Equal(t, tt.pos, e.Pos, "Lex(%q) pos", tt.input)
	}
}

func TestLexFirstErrorWins(t *testing.T) {
	// The invalid character comes before the unmatched parenthesis.
	_, err := Lex("a(", DefaultPrecision)
	assert.ErrorIs(t, err, ErrInvalidCharacter)

	_, err = Lex("(*a", DefaultPrecision)
	assert.ErrorIs(t, err, ErrLeadingOperator)
}

func TestLexInvalidCharacterMessage(t *testing.T) {
	_, err := Lex("1+é", DefaultPrecision)
	require.Error(t, err)
	assert.Equal(t, `invalid character 'é' at position 2`, err.Error())
}

func TestLexRejectsBadPrecision(t *testing.T) {
	_, err := Lex("1+2", Precision(0))
	assert.ErrorIs(t, err, ErrPrecision)

	_, err = Lex("1+2", MaxPrecision+1)
	assert.ErrorIs(t, err, ErrPrecision)
}

func TestLexDigitBoundary(t *testing.T) {
	p := Precision(5)

	_, err := Lex("12345", p)
	assert.NoError(t, err, "exactly P digits")

	_, err = Lex("123456", p)
	assert.ErrorIs(t, err, ErrDigitOverflow, "P+1 digits")

	_, err = Lex("123 456", p)
	assert.ErrorIs(t, err, ErrDigitOverflow, "run continues across whitespace")

	_, err = Lex("12345(1)", p)
	assert.NoError(t, err, "implicit multiplication ends the run")

	// Leading zeros carry no magnitude.
	_, err = Lex("0000000012345", p)
	assert.NoError(t, err)
	_, err = Lex("00000000000000000000", p)
	assert.NoError(t, err)
}
