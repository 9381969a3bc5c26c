package scheme_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/lvalign/scheme"
	"github.com/katalvlaran/lvalign/swalign"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustCompile parses src and compiles it for maxGap or fails the test.
func mustCompile(t *testing.T, src string, maxGap int) *scheme.Scorer {
	t.Helper()
	s, err := scheme.Parse([]byte(src), "test.hcl")
	require.NoError(t, err)
	sc, err := s.Compile(maxGap)
	require.NoError(t, err)

	return sc
}

// TestParse_EmptyIsDefault keeps every default when the file is empty.
func TestParse_EmptyIsDefault(t *testing.T) {
	s, err := scheme.Parse(nil, "empty.hcl")
	require.NoError(t, err)
	assert.Equal(t, swalign.DefaultMatch, s.Match)
	assert.Equal(t, swalign.DefaultMismatch, s.Mismatch)
	assert.Equal(t, swalign.DefaultGapOpen, s.GapOpen)
	assert.Equal(t, swalign.DefaultGapExtend, s.GapExtend)
	assert.False(t, s.HasGapExpression())
}

// TestCompile_DefaultMatchesBaseScorer compares the compiled default scheme
// with swalign.DefaultScorer symbol by symbol and length by length.
func TestCompile_DefaultMatchesBaseScorer(t *testing.T) {
	sc, err := scheme.Default().Compile(16)
	require.NoError(t, err)
	base := swalign.DefaultScorer()
	for _, a := range []byte("ACGTN") {
		for _, b := range []byte("ACGTN") {
			assert.Equal(t, base.Score(a, b), sc.Score(a, b), "%c/%c", a, b)
		}
	}
	for k := 1; k <= 20; k++ {
		assert.Equal(t, base.GapCost(k), sc.GapCost(k), "GapCost(%d)", k)
	}
}

// TestParse_Affine reads open/extend.
func TestParse_Affine(t *testing.T) {
	sc := mustCompile(t, `
match    = 2
mismatch = -1
gap {
  open   = -5
  extend = -1
}
`, 10)
	assert.Equal(t, 2, sc.Score('A', 'A'))
	assert.Equal(t, -1, sc.Score('A', 'C'))
	assert.Equal(t, -5, sc.GapCost(1))
	assert.Equal(t, -7, sc.GapCost(3))
	assert.Equal(t, 10, sc.MaxGap())
}

// TestParse_LoneOpenIsLinear treats a single open penalty as linear.
func TestParse_LoneOpenIsLinear(t *testing.T) {
	sc := mustCompile(t, `gap { open = -2 }`, 5)
	for k := 1; k <= 5; k++ {
		assert.Equal(t, -2*k, sc.GapCost(k))
	}
}

// TestCompile_ExtrapolatesPastTable extends by the last increment.
func TestCompile_ExtrapolatesPastTable(t *testing.T) {
	sc, err := scheme.Default().Compile(3)
	require.NoError(t, err)
	assert.Equal(t, swalign.DefaultScorer().GapCost(7), sc.GapCost(7))

	one, err := scheme.Default().Compile(1)
	require.NoError(t, err)
	assert.Equal(t, -4, one.GapCost(5), "single entry extends flat")
	assert.Zero(t, one.GapCost(0))
}

// TestLoadFile_Expression evaluates the log-shaped gap cost per length.
func TestLoadFile_Expression(t *testing.T) {
	s, err := scheme.LoadFile("testdata/dna_log.hcl")
	require.NoError(t, err)
	assert.Equal(t, "dna-log", s.Name)
	assert.True(t, s.HasGapExpression())

	sc, err := s.Compile(16)
	require.NoError(t, err)
	want := map[int]int{1: -4, 2: -6, 3: -6, 4: -8, 7: -8, 8: -10, 16: -12}
	for k, v := range want {
		assert.Equal(t, v, sc.GapCost(k), "GapCost(%d)", k)
	}
}

// TestLoadFile_ExpressionDrivesAlignment runs the engine with a compiled
// non-affine scheme: one long cheap gap beats the affine alternative.
func TestLoadFile_ExpressionDrivesAlignment(t *testing.T) {
	const row, col = "ACGTACGTTTTTTTTACGTACGT", "ACGTACGTACGTACGT"
	s, err := scheme.LoadFile("testdata/dna_log.hcl")
	require.NoError(t, err)
	sc, err := s.Compile(len(row))
	require.NoError(t, err)

	res, err := swalign.Align(context.Background(), row, col, sc)
	require.NoError(t, err)
	assert.Equal(t, 40, res.Best.Score)
	assert.Equal(t, "ACGTACG-------TACGTACGT", res.Pair.Col)
}

// TestLoadFile_Substitutions applies symmetric and one-way overrides.
func TestLoadFile_Substitutions(t *testing.T) {
	s, err := scheme.LoadFile("testdata/transitions.hcl")
	require.NoError(t, err)
	require.Len(t, s.Substitutions, 3)

	sc, err := s.Compile(8)
	require.NoError(t, err)
	assert.Equal(t, 5, sc.Score('A', 'A'))
	assert.Equal(t, -4, sc.Score('A', 'C'))
	assert.Equal(t, -1, sc.Score('A', 'G'))
	assert.Equal(t, -1, sc.Score('G', 'A'), "symmetric by default")
	assert.Equal(t, -1, sc.Score('T', 'C'))
	assert.Equal(t, 0, sc.Score('N', 'A'))
	assert.Equal(t, -4, sc.Score('A', 'N'), "symmetric = false")
	assert.Equal(t, -12, sc.GapCost(3))
}

// TestParse_Errors maps every rejection to its sentinel.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"syntax", `match = `, scheme.ErrParse},
		{"unknown attribute", `bonus = 1`, scheme.ErrParse},
		{"wrong type", `match = "three"`, scheme.ErrParse},
		{"gap conflict", "gap {\n  open = -1\n  cost = -len\n}", scheme.ErrGapConflict},
		{"long label", "substitution \"AG\" \"C\" {\n  score = 1\n}", scheme.ErrBadSymbol},
		{"empty label", "substitution \"\" \"C\" {\n  score = 1\n}", scheme.ErrBadSymbol},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scheme.Parse([]byte(tc.src), "bad.hcl")
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestCompile_Errors covers evaluation failures and a bad table size.
func TestCompile_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"fractional", "gap {\n  cost = len / 3\n}", scheme.ErrGapCost},
		{"unknown function", "gap {\n  cost = sqrt(len)\n}", scheme.ErrGapCost},
		{"unknown variable", "gap {\n  cost = length * -1\n}", scheme.ErrGapCost},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := scheme.Parse([]byte(tc.src), "bad.hcl")
			require.NoError(t, err)
			_, err = s.Compile(4)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := scheme.Default().Compile(0)
	assert.ErrorIs(t, err, scheme.ErrMaxGap)
}

// TestLoadFile_Missing reports the path in a parse error.
func TestLoadFile_Missing(t *testing.T) {
	_, err := scheme.LoadFile("testdata/does-not-exist.hcl")
	assert.ErrorIs(t, err, scheme.ErrParse)
	assert.Contains(t, err.Error(), "does-not-exist.hcl")
}
