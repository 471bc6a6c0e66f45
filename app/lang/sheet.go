package lang

import "strings"

// SheetResult is the result of evaluating a single line.
type SheetResult struct {
	Text  string // formatted answer or error message, empty for blank lines
	IsErr bool
	Value Rational
}

// cachedLine holds the cached state for a single line.
type cachedLine struct {
	text   string
	result SheetResult
	valid  bool // false until the slot has been evaluated
}

// Sheet evaluates a list of independent lines, reusing the cached result
// of every line whose text has not changed since the previous call. It is
// not safe for concurrent use.
type Sheet struct {
	calc  *Calculator
	lines []cachedLine

	// evaluated counts lines actually run through the pipeline.
	evaluated int
}

// NewSheet returns a Sheet that formats results with c.
func NewSheet(c *Calculator) *Sheet {
	return &Sheet{calc: c}
}

// EvalAll evaluates lines, one result per line.
func (s *Sheet) EvalAll(lines []string) []SheetResult {
	results := make([]SheetResult, len(lines))

	// Grow or shrink the cache to match
	for len(s.lines) < len(lines) {
		s.lines = append(s.lines, cachedLine{})
	}
	s.lines = s.lines[:len(lines)]

	for i, line := range lines {
		cached := &s.lines[i]
		if cached.valid && cached.text == line {
			results[i] = cached.result
			continue
		}

		*cached = cachedLine{text: line, result: s.eval(line), valid: true}
		results[i] = cached.result
	}

	return results
}

func (s *Sheet) eval(line string) SheetResult {
	if strings.TrimSpace(line) == "" {
		return SheetResult{}
	}
	s.evaluated++
	v, err := Evaluate(line, s.calc.prec)
	if err != nil {
		s.calc.logger.Debug("sheet line failed", "line", line, "err", err)
		return SheetResult{Text: err.Error(), IsErr: true}
	}
	return SheetResult{Text: s.calc.Format(v.Float64()), Value: v}
}

// Evaluated returns how many lines have been evaluated rather than served
// from the cache.
func (s *Sheet) Evaluated() int { return s.evaluated }
