// SPDX-License-Identifier: MIT

package scheme

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/katalvlaran/lvalign/swalign"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	"github.com/zclconf/go-cty/cty/gocty"
)

// asciiSymbols is the substitution table width; swalign rejects other bytes.
const asciiSymbols = 128

// Scorer is a compiled Scheme: a full ASCII substitution table and a gap cost
// table indexed by length. It implements swalign.Scorer and is read-only.
type Scorer struct {
	sub [asciiSymbols * asciiSymbols]int
	gap []int // gap[k] for k in 1..maxGap; gap[0] unused

	match, mismatch int
}

var _ swalign.Scorer = (*Scorer)(nil)

// gapFunctions are the functions available inside a gap cost expression.
var gapFunctions = map[string]function.Function{
	"abs":   stdlib.AbsoluteFunc,
	"ceil":  stdlib.CeilFunc,
	"floor": stdlib.FloorFunc,
	"log":   stdlib.LogFunc,
	"max":   stdlib.MaxFunc,
	"min":   stdlib.MinFunc,
	"pow":   stdlib.PowFunc,
}

// Compile tabulates the scheme for gaps up to maxGap symbols. Pass the longer
// sequence length; longer gaps are extrapolated from the last increment.
//
// Errors: ErrMaxGap, ErrGapCost.
//
// Complexity: O(maxGap) expression evaluations, O(128²) table fill.
func (s *Scheme) Compile(maxGap int) (*Scorer, error) {
	if maxGap < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrMaxGap, maxGap)
	}

	sc := &Scorer{gap: make([]int, maxGap+1), match: s.Match, mismatch: s.Mismatch}
	for a := 0; a < asciiSymbols; a++ {
		for b := 0; b < asciiSymbols; b++ {
			v := s.Mismatch
			if a == b {
				v = s.Match
			}
			sc.sub[a*asciiSymbols+b] = v
		}
	}
	for _, sub := range s.Substitutions {
		sc.sub[int(sub.A)*asciiSymbols+int(sub.B)] = sub.Score
		if sub.Symmetric {
			sc.sub[int(sub.B)*asciiSymbols+int(sub.A)] = sub.Score
		}
	}

	for k := 1; k <= maxGap; k++ {
		if s.gapExpr == nil {
			sc.gap[k] = s.GapOpen + s.GapExtend*(k-1)
			continue
		}
		v, err := evalGap(s.gapExpr, k)
		if err != nil {
			return nil, err
		}
		sc.gap[k] = v
	}

	return sc, nil
}

// evalGap evaluates expr with len bound to k.
func evalGap(expr hcl.Expression, k int) (int, error) {
	ctx := &hcl.EvalContext{
		Variables: map[string]cty.Value{"len": cty.NumberIntVal(int64(k))},
		Functions: gapFunctions,
	}
	v, diags := expr.Value(ctx)
	if diags.HasErrors() {
		return 0, fmt.Errorf("%w: len=%d: %s", ErrGapCost, k, diags.Error())
	}
	if v.IsNull() || !v.IsWhollyKnown() {
		return 0, fmt.Errorf("%w: len=%d: expression is null or unknown", ErrGapCost, k)
	}
	var n int
	if err := gocty.FromCtyValue(v, &n); err != nil {
		return 0, fmt.Errorf("%w: len=%d: %v", ErrGapCost, k, err)
	}

	return n, nil
}

// Score looks up the substitution table.
func (sc *Scorer) Score(a, b byte) int {
	if a >= asciiSymbols || b >= asciiSymbols {
		if a == b {
			return sc.match
		}
		return sc.mismatch
	}

	return sc.sub[int(a)*asciiSymbols+int(b)]
}

// GapCost returns the tabulated cost, extending linearly past the table.
func (sc *Scorer) GapCost(length int) int {
	if length < 1 {
		return 0
	}
	last := len(sc.gap) - 1
	if length <= last {
		return sc.gap[length]
	}
	step := 0
	if last >= 2 {
		step = sc.gap[last] - sc.gap[last-1]
	}

	return sc.gap[last] + step*(length-last)
}

// MaxGap returns the longest tabulated gap length.
func (sc *Scorer) MaxGap() int {
	return len(sc.gap) - 1
}
