// SPDX-License-Identifier: MIT

package swalign

// Scorer supplies the substitution score and the gap cost. Implementations
// must be pure: the engine may call them from any goroutine and one Scorer
// may be shared by many engines.
type Scorer interface {
	// Score returns the substitution score for aligning a against b.
	Score(a, b byte) int

	// GapCost returns the total cost of a gap of the given length (>= 1).
	// The engine treats it as an opaque function of length.
	GapCost(length int) int
}

// Default scoring constants.
const (
	DefaultMatch     = 3
	DefaultMismatch  = -2
	DefaultGapOpen   = -4
	DefaultGapExtend = -3
)

// BaseScorer is a fixed match/mismatch scorer with an affine gap cost.
// Setting GapOpen == GapExtend gives a linear gap cost.
type BaseScorer struct {
	Match     int
	Mismatch  int
	GapOpen   int
	GapExtend int
}

var _ Scorer = BaseScorer{}

// DefaultScorer returns match=+3, mismatch=−2, open=−4, extend=−3.
func DefaultScorer() BaseScorer {
	return BaseScorer{
		Match:     DefaultMatch,
		Mismatch:  DefaultMismatch,
		GapOpen:   DefaultGapOpen,
		GapExtend: DefaultGapExtend,
	}
}

// LinearScorer returns a BaseScorer whose gap cost is gap·length.
func LinearScorer(match, mismatch, gap int) BaseScorer {
	return BaseScorer{Match: match, Mismatch: mismatch, GapOpen: gap, GapExtend: gap}
}

// Score returns Match when a == b and Mismatch otherwise.
func (s BaseScorer) Score(a, b byte) int {
	if a == b {
		return s.Match
	}

	return s.Mismatch
}

// GapCost returns GapOpen + GapExtend·(length−1).
func (s BaseScorer) GapCost(length int) int {
	return s.GapOpen + s.GapExtend*(length-1)
}

// FuncScorer adapts two plain functions to Scorer. Both must be non-nil.
type FuncScorer struct {
	ScoreFn func(a, b byte) int
	GapFn   func(length int) int
}

var _ Scorer = FuncScorer{}

// Score calls ScoreFn.
func (f FuncScorer) Score(a, b byte) int { return f.ScoreFn(a, b) }

// GapCost calls GapFn.
func (f FuncScorer) GapCost(length int) int { return f.GapFn(length) }

// Transposed returns a Scorer that calls s with its substitution arguments
// swapped. Aligning (col, row) with Transposed(s) produces the transpose of
// the (row, col) score matrix.
func Transposed(s Scorer) Scorer {
	if t, ok := s.(transposed); ok {
		return t.inner
	}

	return transposed{inner: s}
}

type transposed struct{ inner Scorer }

func (t transposed) Score(a, b byte) int { return t.inner.Score(b, a) }
func (t transposed) GapCost(length int) int { return t.inner.GapCost(length) }
