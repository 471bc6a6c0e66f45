package lang

import (
	"fmt"
	"strconv"
)

// Parser holds the state for parsing a token stream.
//
// Grammar:
//
//	O := sign* ( integer | '(' E ')' )
//	T := O ( ('*'|'/') O )*
//	E := T ( ('+'|'-') T )*
//
// The lexer has already rejected malformed input, so any surprise here
// is reported as KindInternal.
type Parser struct {
	tokens []Token
	pos    int
	tree   *Tree
}

// Parse parses a lexed token slice, which must end with the ')'
// sentinel, into a Tree.
func Parse(tokens []Token) (*Tree, error) {
	if len(tokens) == 0 {
		return nil, syntaxErr(KindEmpty, -1, "expression is empty")
	}

	p := &Parser{tokens: tokens, tree: &Tree{nodes: make([]Node, 0, len(tokens))}}

	root, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	// Only the sentinel may remain.
	if tok := p.peek(); tok.Type != TOKEN_RPAREN || !tok.Synthetic || p.pos != len(p.tokens)-1 {
		return nil, p.unexpected(tok)
	}

	p.tree.root = root
	return p.tree, nil
}

// ParseLine lexes and parses a single line into a Tree without evaluating.
func ParseLine(line string, prec Precision) (*Tree, error) {
	tokens, err := Lex(line, prec)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: TOKEN_RPAREN, Pos: -1}
	}
	return p.tokens[p.pos]
}

func (p *Parser) advance() Token {
	t := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return t
}

func (p *Parser) unexpected(tok Token) *Error {
	return &Error{Kind: KindInternal, Pos: tok.Pos, Msg: fmt.Sprintf("unexpected token %q", tok.Literal)}
}

// parseExpression: term ( ("+" | "-") term )*
func (p *Parser) parseExpression() (NodeID, error) {
	left, err := p.parseTerm()
	if err != nil {
		return 0, err
	}

	for p.peek().Type == TOKEN_PLUS || p.peek().Type == TOKEN_MINUS {
		op := p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return 0, err
		}
		left, err = p.fold(op, left, right)
		if err != nil {
			return 0, err
		}
	}

	return left, nil
}

// parseTerm: operand ( ("*" | "/") operand )*
func (p *Parser) parseTerm() (NodeID, error) {
	left, err := p.parseOperand()
	if err != nil {
		return 0, err
	}

	for p.peek().Type == TOKEN_STAR || p.peek().Type == TOKEN_SLASH {
		op := p.advance()
		right, err := p.parseOperand()
		if err != nil {
			return 0, err
		}
		left, err = p.fold(op, left, right)
		if err != nil {
			return 0, err
		}
	}

	return left, nil
}

// fold builds the binary node for op around left and right.
func (p *Parser) fold(op Token, left, right NodeID) (NodeID, error) {
	var kind NodeKind
	switch op.Type {
	case TOKEN_PLUS:
		kind = NodeAdd
	case TOKEN_MINUS:
		kind = NodeSubtract
	case TOKEN_STAR:
		kind = NodeMultiply
	case TOKEN_SLASH:
		kind = NodeDivide
	default:
		return 0, p.unexpected(op)
	}
	return p.tree.binary(kind, left, right), nil
}

// parseOperand: ("+" | "-")* ( NUMBER | "(" expression ")" )
func (p *Parser) parseOperand() (NodeID, error) {
	neg := false
	for p.peek().Type == TOKEN_PLUS || p.peek().Type == TOKEN_MINUS {
		if p.advance().Type == TOKEN_MINUS {
			neg = !neg
		}
	}

	tok := p.peek()
	switch tok.Type {
	case TOKEN_LPAREN:
		p.advance() // consume '('
		inner, err := p.parseExpression()
		if err != nil {
			return 0, err
		}
		if closing := p.peek(); closing.Type != TOKEN_RPAREN || closing.Synthetic {
			return 0, p.unexpected(closing)
		}
		p.advance() // consume ')'
		if neg {
			return p.tree.negate(inner), nil
		}
		return inner, nil

	case TOKEN_NUMBER:
		p.advance()
		// The lexer bounds the digit count, so this fits in a uint64.
		n, err := strconv.ParseUint(tok.Literal, 10, 64)
		if err != nil {
			return 0, &Error{Kind: KindDigitOverflow, Pos: tok.Pos, Msg: "invalid number " + tok.Literal}
		}
		return p.tree.literal(Int(n, neg)), nil

	default:
		return 0, p.unexpected(tok)
	}
}
