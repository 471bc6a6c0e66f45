package lang

import (
	"fmt"
	"strconv"
)

// Precision is the maximum number of decimal digits allowed in a literal,
// numerator or denominator. The lexer and the arithmetic share one value.
type Precision int

const (
	// DefaultPrecision is used when no configuration is given.
	DefaultPrecision Precision = 15
	// MaxPrecision keeps every bounded integer exactly representable as a
	// float64 and keeps a sum of two bounded products inside uint64.
	MaxPrecision Precision = 15
)

// Validate reports whether p is usable by the lexer and the arithmetic.
// Every exported entry point taking a Precision checks it, since the
// digit-count bounds only rule out uint64 wraparound up to MaxPrecision.
func (p Precision) Validate() error {
	if p < 1 || p > MaxPrecision {
		return &Error{
			Kind: KindPrecision,
			Pos:  -1,
			Msg:  fmt.Sprintf("precision %d out of range [1, %d]", int(p), int(MaxPrecision)),
		}
	}
	return nil
}

// bounded reports whether x has at most p decimal digits.
func (p Precision) bounded(x uint64) bool {
	return digits(x) <= int(p)
}

// productBounded reports whether a*b is guaranteed to stay within p digits.
// The digit-count sum overestimates the product by at most one digit.
// Multiplying by 0 or 1 is exact.
func (p Precision) productBounded(a, b uint64) bool {
	if a <= 1 || b <= 1 {
		return p.bounded(a * b)
	}
	return digits(a)+digits(b) <= int(p)
}

// Rational is an exact signed fraction. Arithmetic results are always
// reduced and zero is always {0, 1, false}.
type Rational struct {
	Num uint64
	Den uint64
	Neg bool
}

// Zero is the canonical zero value.
var Zero = Rational{Num: 0, Den: 1}

// NewRational builds a reduced fraction. A zero denominator is a division
// by zero.
func NewRational(num, den uint64, neg bool) (Rational, error) {
	if den == 0 {
		return Rational{}, ErrDivisionByZero
	}
	return Rational{Num: num, Den: den, Neg: neg}.Reduce(), nil
}

// Int returns the integer n as a Rational.
func Int(n uint64, neg bool) Rational {
	return Rational{Num: n, Den: 1, Neg: neg}.Reduce()
}

// Reduce divides numerator and denominator by their gcd.
func (r Rational) Reduce() Rational {
	if r.Num == 0 {
		return Zero
	}
	if g := gcd(r.Num, r.Den); g > 1 {
		r.Num /= g
		r.Den /= g
	}
	return r
}

// IsZero reports whether r is zero.
func (r Rational) IsZero() bool {
	return r.Num == 0
}

// IsInt reports whether r has denominator 1.
func (r Rational) IsInt() bool {
	return r.Den == 1
}

// Float64 returns the nearest float64 to r.
func (r Rational) Float64() float64 {
	f := float64(r.Num) / float64(r.Den)
	if r.Neg {
		f = -f
	}
	return f
}

// String formats r as "n" or "n/d", with a leading '-' when negative.
func (r Rational) String() string {
	s := strconv.FormatUint(r.Num, 10)
	if r.Den != 1 {
		s += "/" + strconv.FormatUint(r.Den, 10)
	}
	if r.Neg && r.Num != 0 {
		s = "-" + s
	}
	return s
}

// Negate flips the sign of r. The magnitude is unchanged so no bound check
// is needed.
func (r Rational) Negate() Rational {
	if r.Num == 0 {
		return Zero
	}
	r.Neg = !r.Neg
	return r
}

// Add returns l + r.
func (p Precision) Add(l, r Rational) (Rational, error) {
	if err := p.Validate(); err != nil {
		return Rational{}, err
	}
	// Zero carries no sign, so the rewrite below would never settle.
	switch {
	case r.IsZero():
		return l, nil
	case l.IsZero():
		return r, nil
	}
	if l.Neg != r.Neg {
		// l + r == l - (-r), and -r carries l's sign.
		return p.Sub(l, r.Negate())
	}
	if !p.productBounded(l.Den, r.Den) ||
		!p.productBounded(l.Num, r.Den) ||
		!p.productBounded(l.Den, r.Num) {
		return Rational{}, overflowErr(p)
	}
	// Each addend is below 10^p, so the sum cannot wrap uint64.
	num := l.Num*r.Den + l.Den*r.Num
	if !p.bounded(num) {
		return Rational{}, overflowErr(p)
	}
	return Rational{Num: num, Den: l.Den * r.Den, Neg: l.Neg}.Reduce(), nil
}

// Sub returns l - r.
func (p Precision) Sub(l, r Rational) (Rational, error) {
	if err := p.Validate(); err != nil {
		return Rational{}, err
	}
	switch {
	case r.IsZero():
		return l, nil
	case l.IsZero():
		return r.Negate(), nil
	}
	if l.Neg != r.Neg {
		return p.Add(l, r.Negate())
	}
	if !p.productBounded(l.Den, r.Den) ||
		!p.productBounded(l.Num, r.Den) ||
		!p.productBounded(l.Den, r.Num) {
		return Rational{}, overflowErr(p)
	}
	left := l.Num * r.Den
	right := l.Den * r.Num
	neg := l.Neg
	var num uint64
	if right <= left {
		num = left - right
	} else {
		num = right - left
		neg = !neg
	}
	return Rational{Num: num, Den: l.Den * r.Den, Neg: neg}.Reduce(), nil
}

// Mul returns l * r.
func (p Precision) Mul(l, r Rational) (Rational, error) {
	if err := p.Validate(); err != nil {
		return Rational{}, err
	}
	if !p.productBounded(l.Num, r.Num) || !p.productBounded(l.Den, r.Den) {
		return Rational{}, overflowErr(p)
	}
	return Rational{
		Num: l.Num * r.Num,
		Den: l.Den * r.Den,
		Neg: l.Neg != r.Neg,
	}.Reduce(), nil
}

// Div returns l / r.
func (p Precision) Div(l, r Rational) (Rational, error) {
	if err := p.Validate(); err != nil {
		return Rational{}, err
	}
	if r.Num == 0 {
		return Rational{}, ErrDivisionByZero
	}
	return p.Mul(l, Rational{Num: r.Den, Den: r.Num, Neg: r.Neg})
}

// digits returns the number of decimal digits in x; zero has none.
func digits(x uint64) int {
	n := 0
	for x != 0 {
		x /= 10
		n++
	}
	return n
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
