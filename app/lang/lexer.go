package lang

import (
	"fmt"
	"unicode/utf8"
)

// Lex tokenizes a single line of input into a validated token slice.
//
// Whitespace is dropped everywhere, including inside a digit run, so
// "1 2" lexes as the number 12. A '*' token is inserted for implicit
// multiplication in ")5", "5(" and ")(". The returned slice always ends
// with a synthetic ')' sentinel so the parser's expression loop has a
// uniform stop condition. The first defect found aborts the scan.
func Lex(input string, p Precision) ([]Token, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var tokens []Token
	var opens []int // positions of unmatched '('
	sig := 0        // significant digits in the current number

	// last returns the previous real token, if any.
	last := func() (Token, bool) {
		if len(tokens) == 0 {
			return Token{}, false
		}
		return tokens[len(tokens)-1], true
	}
	implicitMul := func(pos int) {
		tokens = append(tokens, Token{Type: TOKEN_STAR, Literal: "*", Pos: pos, Synthetic: true})
	}

	i := 0
	for i < len(input) {
		ch := input[i]

		// Skip whitespace
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			i++
			continue
		}

		prev, hasPrev := last()

		switch ch {
		case '+':
			tokens = append(tokens, Token{Type: TOKEN_PLUS, Literal: "+", Pos: i})
		case '-':
			tokens = append(tokens, Token{Type: TOKEN_MINUS, Literal: "-", Pos: i})
		case '*', '/':
			if !hasPrev || prev.Type == TOKEN_LPAREN {
				return nil, syntaxErr(KindLeadingOperator, i, fmt.Sprintf("invalid unary %c", ch))
			}
			if prev.Type.IsOperator() {
				return nil, syntaxErr(KindAdjacentOperators, i, "invalid adjacent operators")
			}
			typ := TOKEN_STAR
			if ch == '/' {
				typ = TOKEN_SLASH
			}
			tokens = append(tokens, Token{Type: typ, Literal: string(ch), Pos: i})
		case '(':
			if hasPrev && (prev.Type == TOKEN_NUMBER || prev.Type == TOKEN_RPAREN) {
				implicitMul(i)
			}
			opens = append(opens, i)
			tokens = append(tokens, Token{Type: TOKEN_LPAREN, Literal: "(", Pos: i})
		case ')':
			if len(opens) == 0 {
				return nil, syntaxErr(KindUnmatchedParen, i, "closing parenthesis with no open match")
			}
			if prev.Type.IsOperator() {
				return nil, syntaxErr(KindTrailingOperator, prev.Pos, "operator is missing its right operand")
			}
			if prev.Type == TOKEN_LPAREN {
				return nil, syntaxErr(KindEmptyParens, prev.Pos, "empty parentheses")
			}
			opens = opens[:len(opens)-1]
			tokens = append(tokens, Token{Type: TOKEN_RPAREN, Literal: ")", Pos: i})
		default:
			if !isDigit(ch) {
				r, _ := utf8.DecodeRuneInString(input[i:])
				return nil, syntaxErr(KindInvalidCharacter, i, fmt.Sprintf("invalid character %q", r))
			}
			if hasPrev && prev.Type == TOKEN_NUMBER {
				// Continue the run across whitespace.
				tokens[len(tokens)-1].Literal += string(ch)
			} else {
				if hasPrev && prev.Type == TOKEN_RPAREN {
					implicitMul(i)
				}
				tokens = append(tokens, Token{Type: TOKEN_NUMBER, Literal: string(ch), Pos: i})
				sig = 0
			}
			// Leading zeros do not add to the literal's magnitude.
			if sig > 0 || ch != '0' {
				sig++
			}
			if sig > int(p) {
				return nil, syntaxErr(KindDigitOverflow, i,
					fmt.Sprintf("number exceeds %d digits", int(p)))
			}
		}
		i++
	}

	prev, hasPrev := last()
	if !hasPrev {
		return nil, syntaxErr(KindEmpty, -1, "expression is empty")
	}
	if len(opens) != 0 {
		return nil, syntaxErr(KindUnmatchedParen, opens[len(opens)-1], "unmatched open parenthesis")
	}
	if prev.Type.IsOperator() {
		return nil, syntaxErr(KindTrailingOperator, prev.Pos, "operator is missing its right operand")
	}

	tokens = append(tokens, Token{Type: TOKEN_RPAREN, Literal: ")", Pos: len(input), Synthetic: true})
	return tokens, nil
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
