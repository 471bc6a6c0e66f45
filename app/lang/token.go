package lang

import "fmt"

// TokenType represents the type of a lexer token.
type TokenType int

const (
	TOKEN_NUMBER TokenType = iota
	TOKEN_PLUS
	TOKEN_MINUS
	TOKEN_STAR
	TOKEN_SLASH
	TOKEN_LPAREN
	TOKEN_RPAREN
)

var tokenNames = [...]string{
	TOKEN_NUMBER: "number",
	TOKEN_PLUS:   "+",
	TOKEN_MINUS:  "-",
	TOKEN_STAR:   "*",
	TOKEN_SLASH:  "/",
	TOKEN_LPAREN: "(",
	TOKEN_RPAREN: ")",
}

func (t TokenType) String() string {
	if t >= 0 && int(t) < len(tokenNames) {
		return tokenNames[t]
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// IsOperator reports whether t is one of the four binary operators.
func (t TokenType) IsOperator() bool {
	return t == TOKEN_PLUS || t == TOKEN_MINUS || t == TOKEN_STAR || t == TOKEN_SLASH
}

// Token represents a single lexer token.
type Token struct {
	Type    TokenType
	Literal string // digits only for TOKEN_NUMBER, whitespace removed
	Pos     int    // byte offset in the input

	// Synthetic marks tokens the lexer inserted: implicit multiplications
	// and the closing sentinel.
	Synthetic bool
}

func (t Token) String() string {
	return fmt.Sprintf("Token(%s, %q, %d)", t.Type, t.Literal, t.Pos)
}
