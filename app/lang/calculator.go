package lang

import (
	"errors"
	"log/slog"
	"strconv"
)

// Calculator evaluates expressions and remembers the last successful one.
// A Calculator must not be shared between goroutines without external
// locking.
type Calculator struct {
	prec   Precision
	logger *slog.Logger

	lastExpression string
	lastAnswer     float64
	lastValue      Rational
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithLogger sets the logger used for debug output. Nil keeps the default,
// which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *Calculator) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewCalculator returns a Calculator using cfg.
func NewCalculator(cfg Config, opts ...Option) (*Calculator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Calculator{
		prec:           Precision(cfg.Precision),
		logger:         slog.New(slog.DiscardHandler),
		lastExpression: "0",
		lastValue:      Zero,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Calculate evaluates expr and returns the result as a float64. On error the
// previous expression and answer are kept.
func (c *Calculator) Calculate(expr string) (float64, error) {
	value, err := Evaluate(expr, c.prec)
	if err != nil {
		var e *Error
		if errors.As(err, &e) {
			c.logger.Debug("calculate failed", "expr", expr, "kind", e.Kind.String(), "pos", e.Pos)
		} else {
			c.logger.Debug("calculate failed", "expr", expr, "err", err)
		}
		return 0, err
	}

	answer := value.Float64()
	c.lastExpression = expr
	c.lastAnswer = answer
	c.lastValue = value
	c.logger.Debug("calculated", "expr", expr, "value", value.String(), "answer", answer)
	return answer, nil
}

// LastExpression returns the text of the last successful calculation, "0"
// before the first one.
func (c *Calculator) LastExpression() string { return c.lastExpression }

// LastAnswer returns the result of the last successful calculation.
func (c *Calculator) LastAnswer() float64 { return c.lastAnswer }

// LastValue returns the exact result of the last successful calculation.
func (c *Calculator) LastValue() Rational { return c.lastValue }

// Precision returns the digit ceiling in use.
func (c *Calculator) Precision() Precision { return c.prec }

// Format renders v with Precision significant digits. Every result is a
// single correctly rounded division of two exactly representable
// integers, so no margin digit is dropped.
func (c *Calculator) Format(v float64) string {
	return strconv.FormatFloat(v, 'g', int(c.prec), 64)
}
