// SPDX-License-Identifier: MIT

package swalign

import "fmt"

// DefaultGapSymbol marks a gap position in an AlignedPair.
const DefaultGapSymbol byte = '-'

// Coord addresses a matrix cell. Row and Col are 1-based for sequence
// positions; row 0 and column 0 are boundary sentinels.
type Coord struct {
	Row int
	Col int
}

// String implements fmt.Stringer.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// noOrigin is the back-pointer of boundary cells. It is never dereferenced.
var noOrigin = Coord{Row: -1, Col: -1}

// Cell is one DP matrix entry.
//
// Origin is a back-pointer: (r-1,c-1) for a diagonal step, (r-k,c) for a
// vertical gap of length k and (r,c-k) for a horizontal gap of length k.
type Cell struct {
	Score  int
	Origin Coord
}

// BestCell is the highest-scoring cell found during a fill. Its Coord is the
// traceback entry point, not a further back-pointer.
type BestCell struct {
	Coord
	Score int
}

// AlignedPair holds the two gapped alignment strings. Both strings have the
// same length. Traceback returns them in reverse emission order; use Forward
// to obtain the display orientation.
type AlignedPair struct {
	Row string
	Col string
}

// Len returns the number of alignment columns.
func (p AlignedPair) Len() int {
	return len(p.Row)
}

// Forward returns a copy of p with both strings reversed.
func (p AlignedPair) Forward() AlignedPair {
	return AlignedPair{Row: reverse(p.Row), Col: reverse(p.Col)}
}

// Stats summarises an alignment column by column.
type Stats struct {
	Columns    int // total alignment columns
	Matches    int // identical symbol pairs
	Mismatches int // differing symbol pairs
	Gaps       int // columns holding a gap marker
	GapOpens   int // maximal runs of gap columns on either side
}

// Identity returns Matches/Columns, or 0 for an empty alignment.
func (s Stats) Identity() float64 {
	if s.Columns == 0 {
		return 0
	}

	return float64(s.Matches) / float64(s.Columns)
}

// Stats counts matches, mismatches and gaps using gap as the marker symbol.
// Orientation does not matter; runs are counted per side.
func (p AlignedPair) Stats(gap byte) Stats {
	var (
		st           Stats
		inRow, inCol bool
	)
	n := len(p.Row)
	if len(p.Col) < n {
		n = len(p.Col)
	}
	for i := 0; i < n; i++ {
		a, b := p.Row[i], p.Col[i]
		st.Columns++
		switch {
		case a == gap:
			st.Gaps++
			if !inRow {
				st.GapOpens++
			}
			inRow, inCol = true, false
		case b == gap:
			st.Gaps++
			if !inCol {
				st.GapOpens++
			}
			inRow, inCol = false, true
		case a == b:
			st.Matches++
			inRow, inCol = false, false
		default:
			st.Mismatches++
			inRow, inCol = false, false
		}
	}

	return st
}

// Span is a 1-based inclusive range of sequence positions. The zero Span is
// empty.
type Span struct {
	Start int
	End   int
}

// Len returns the number of positions covered by s.
func (s Span) Len() int {
	if s.End < s.Start || s.Start == 0 {
		return 0
	}

	return s.End - s.Start + 1
}

// Result is the outcome of Align.
type Result struct {
	Best    BestCell
	Pair    AlignedPair // forward orientation
	RowSpan Span
	ColSpan Span
}

// reverse returns s with its bytes in reverse order.
func reverse(s string) string {
	b := []byte(s)
	for l, r := 0, len(b)-1; l < r; l, r = l+1, r-1 {
		b[l], b[r] = b[r], b[l]
	}

	return string(b)
}
