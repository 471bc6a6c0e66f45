package lang

import "fmt"

// ErrorKind classifies why an expression was rejected.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindEmpty
	KindInvalidCharacter
	KindUnmatchedParen
	KindEmptyParens
	KindLeadingOperator
	KindAdjacentOperators
	KindTrailingOperator
	KindDigitOverflow
	KindOverflow
	KindDivisionByZero
	KindPrecision
)

func (k ErrorKind) String() string {
	switch k {
	case KindInternal:
		return "internal"
	case KindEmpty:
		return "empty expression"
	case KindInvalidCharacter:
		return "invalid character"
	case KindUnmatchedParen:
		return "unmatched parenthesis"
	case KindEmptyParens:
		return "empty parentheses"
	case KindLeadingOperator:
		return "leading operator"
	case KindAdjacentOperators:
		return "adjacent operators"
	case KindTrailingOperator:
		return "trailing operator"
	case KindDigitOverflow:
		return "digit overflow"
	case KindOverflow:
		return "arithmetic overflow"
	case KindDivisionByZero:
		return "division by zero"
	case KindPrecision:
		return "invalid precision"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is the error type returned by every stage of the pipeline.
type Error struct {
	Kind ErrorKind
	Pos  int // byte offset of the offending input, -1 when not tied to the text
	Msg  string
}

func (e *Error) Error() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("%s at position %d", e.Msg, e.Pos)
	}
	return e.Msg
}

// Is matches any *Error of the same kind, so the Err* sentinels work
// with errors.Is regardless of position or message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrInternal          = &Error{Kind: KindInternal, Pos: -1, Msg: "internal parser error"}
	ErrEmpty             = &Error{Kind: KindEmpty, Pos: -1, Msg: "expression is empty"}
	ErrInvalidCharacter  = &Error{Kind: KindInvalidCharacter, Pos: -1, Msg: "invalid character"}
	ErrUnmatchedParen    = &Error{Kind: KindUnmatchedParen, Pos: -1, Msg: "unmatched parenthesis"}
	ErrEmptyParens       = &Error{Kind: KindEmptyParens, Pos: -1, Msg: "empty parentheses"}
	ErrLeadingOperator   = &Error{Kind: KindLeadingOperator, Pos: -1, Msg: "invalid unary * or /"}
	ErrAdjacentOperators = &Error{Kind: KindAdjacentOperators, Pos: -1, Msg: "invalid adjacent operators"}
	ErrTrailingOperator  = &Error{Kind: KindTrailingOperator, Pos: -1, Msg: "operator is missing its right operand"}
	ErrDigitOverflow     = &Error{Kind: KindDigitOverflow, Pos: -1, Msg: "number has too many digits"}
	ErrOverflow          = &Error{Kind: KindOverflow, Pos: -1, Msg: "max number of digits exceeded"}
	ErrDivisionByZero    = &Error{Kind: KindDivisionByZero, Pos: -1, Msg: "division by zero"}
	ErrPrecision         = &Error{Kind: KindPrecision, Pos: -1, Msg: "precision out of range"}
)

func syntaxErr(kind ErrorKind, pos int, msg string) *Error {
	return &Error{Kind: kind, Pos: pos, Msg: msg}
}

func overflowErr(p Precision) *Error {
	return &Error{
		Kind: KindOverflow,
		Pos:  -1,
		Msg:  fmt.Sprintf("max number of digits (currently %d) exceeded", int(p)),
	}
}
