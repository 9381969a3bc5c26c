package swalign_test

import (
	"testing"

	"github.com/katalvlaran/lvalign/swalign"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTraceback_RequiredGap covers the scenario where the row side needs a
// three-symbol gap and the column side a one-symbol gap.
func TestTraceback_RequiredGap(t *testing.T) {
	const (
		row = "GATTACATAAAAATGGGGGC"
		col = "GATACATAAAAAAAATGGGGGC"
	)
	eng := mustEngine(t, row, col, swalign.DefaultScorer())
	best := eng.GenerateScores()
	assert.Equal(t, swalign.BestCell{Coord: swalign.Coord{Row: 20, Col: 22}, Score: 43}, best)

	pair, err := eng.Traceback(best)
	require.NoError(t, err)
	assert.Equal(t, "CGGGGGTAAAAA---TACATTAG", pair.Row, "traceback emits in reverse")
	assert.Equal(t, "CGGGGGTAAAAAAAATACAT-AG", pair.Col)

	fwd := pair.Forward()
	assert.Equal(t, "GATTACAT---AAAAATGGGGGC", fwd.Row)
	assert.Equal(t, "GA-TACATAAAAAAAATGGGGGC", fwd.Col)
	assert.Contains(t, fwd.Row, "-", "shorter sequence carries a gap")
	assert.Equal(t, len(fwd.Row), len(fwd.Col))
	assert.Equal(t, row, degap(fwd.Row, '-'))
	assert.Equal(t, col, degap(fwd.Col, '-'))
}

// TestTraceback_GapSidesFollowAdvance puts markers on the side whose index
// did not move, in both orientations.
func TestTraceback_GapSidesFollowAdvance(t *testing.T) {
	eng := mustEngine(t, "CGXCG", "CGCG", swalign.DefaultScorer())
	best := eng.GenerateScores()
	require.Equal(t, 8, best.Score)
	pair, err := eng.Traceback(best)
	require.NoError(t, err)
	assert.Equal(t, swalign.AlignedPair{Row: "CGXCG", Col: "CG-CG"}, pair.Forward())

	eng = mustEngine(t, "CGCG", "CGXCG", swalign.DefaultScorer())
	best = eng.GenerateScores()
	require.Equal(t, 8, best.Score)
	pair, err = eng.Traceback(best)
	require.NoError(t, err)
	assert.Equal(t, swalign.AlignedPair{Row: "CG-CG", Col: "CGXCG"}, pair.Forward())
}

// TestTraceback_CustomGapSymbol uses the configured marker.
func TestTraceback_CustomGapSymbol(t *testing.T) {
	eng := mustEngine(t, "CGXCG", "CGCG", swalign.DefaultScorer(), swalign.WithGapSymbol('_'))
	pair, err := eng.Traceback(eng.GenerateScores())
	require.NoError(t, err)
	assert.Equal(t, "CG_CG", pair.Forward().Col)
}

// TestTraceback_OutOfRange rejects a best cell from another engine.
func TestTraceback_OutOfRange(t *testing.T) {
	eng := mustEngine(t, "AC", "AC", swalign.DefaultScorer())
	eng.GenerateScores()
	_, err := eng.Traceback(swalign.BestCell{Coord: swalign.Coord{Row: 9, Col: 1}, Score: 3})
	assert.ErrorIs(t, err, swalign.ErrOutOfRange)
}

// TestTraceback_UnfilledMatrix yields an empty pair.
func TestTraceback_UnfilledMatrix(t *testing.T) {
	eng := mustEngine(t, "ACGT", "ACGT", swalign.DefaultScorer())
	pair, err := eng.Traceback(swalign.BestCell{Coord: swalign.Coord{Row: 4, Col: 4}})
	require.NoError(t, err)
	assert.Zero(t, pair.Len())
}

// TestAlignedPair_Stats counts columns, identities and gap runs.
func TestAlignedPair_Stats(t *testing.T) {
	p := swalign.AlignedPair{
		Row: "GATTACAT---AAAAATGGGGGC",
		Col: "GA-TACATAAAAAAAATGGGGGC",
	}
	st := p.Stats('-')
	assert.Equal(t, swalign.Stats{Columns: 23, Matches: 19, Mismatches: 0, Gaps: 4, GapOpens: 2}, st)
	assert.InDelta(t, 19.0/23.0, st.Identity(), 1e-12)
	assert.Zero(t, swalign.Stats{}.Identity())

	mm := swalign.AlignedPair{Row: "ACGT", Col: "AGGT"}.Stats('-')
	assert.Equal(t, 1, mm.Mismatches)
	assert.Equal(t, 3, mm.Matches)
}
