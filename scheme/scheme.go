// SPDX-License-Identifier: MIT

package scheme

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/katalvlaran/lvalign/swalign"
)

var (
	// ErrParse wraps HCL syntax and decode diagnostics.
	ErrParse = errors.New("scheme: parse failed")

	// ErrGapConflict indicates a gap block mixing open/extend with cost.
	ErrGapConflict = errors.New("scheme: gap block sets both open/extend and cost")

	// ErrBadSymbol indicates a substitution label that is not one ASCII symbol.
	ErrBadSymbol = errors.New("scheme: substitution labels must be single ASCII symbols")

	// ErrGapCost indicates a gap cost expression that failed to evaluate to a
	// whole number.
	ErrGapCost = errors.New("scheme: invalid gap cost")

	// ErrMaxGap indicates Compile was called with maxGap < 1.
	ErrMaxGap = errors.New("scheme: maxGap must be >= 1")
)

// fileSchema is the HCL layout of a scheme file.
type fileSchema struct {
	Name          string              `hcl:"name,optional"`
	Match         *int                `hcl:"match,optional"`
	Mismatch      *int                `hcl:"mismatch,optional"`
	Gap           *gapBlock           `hcl:"gap,block"`
	Substitutions []substitutionBlock `hcl:"substitution,block"`
}

type gapBlock struct {
	Open   *int           `hcl:"open,optional"`
	Extend *int           `hcl:"extend,optional"`
	Cost   hcl.Expression `hcl:"cost,optional"`
}

type substitutionBlock struct {
	A         string `hcl:"a,label"`
	B         string `hcl:"b,label"`
	Score     int    `hcl:"score"`
	Symmetric *bool  `hcl:"symmetric,optional"`
}

// Substitution overrides the score of one symbol pair.
type Substitution struct {
	A, B      byte
	Score     int
	Symmetric bool // also applies to (B, A)
}

// Scheme is a decoded scoring scheme. Call Compile to obtain a Scorer.
type Scheme struct {
	Name          string
	Match         int
	Mismatch      int
	GapOpen       int
	GapExtend     int
	Substitutions []Substitution

	// gapExpr, when non-nil, replaces the affine GapOpen/GapExtend model.
	gapExpr hcl.Expression
}

// Default returns the scheme equivalent to swalign.DefaultScorer.
func Default() *Scheme {
	return &Scheme{
		Name:      "default",
		Match:     swalign.DefaultMatch,
		Mismatch:  swalign.DefaultMismatch,
		GapOpen:   swalign.DefaultGapOpen,
		GapExtend: swalign.DefaultGapExtend,
	}
}

// HasGapExpression reports whether the gap cost comes from an expression.
func (s *Scheme) HasGapExpression() bool {
	return s.gapExpr != nil
}

// LoadFile parses and decodes an HCL scheme file.
func LoadFile(path string) (*Scheme, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s: %s", ErrParse, path, diags.Error())
	}

	return decode(file, path)
}

// Parse decodes a scheme from src; filename is used in diagnostics only.
func Parse(src []byte, filename string) (*Scheme, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s: %s", ErrParse, filename, diags.Error())
	}

	return decode(file, filename)
}

// decode maps the HCL body onto a Scheme, starting from Default so every
// attribute is optional.
func decode(file *hcl.File, filename string) (*Scheme, error) {
	var raw fileSchema
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s: %s", ErrParse, filename, diags.Error())
	}

	s := Default()
	s.Name = raw.Name
	if raw.Match != nil {
		s.Match = *raw.Match
	}
	if raw.Mismatch != nil {
		s.Mismatch = *raw.Mismatch
	}
	if g := raw.Gap; g != nil {
		hasAffine := g.Open != nil || g.Extend != nil
		hasExpr := !isNullExpr(g.Cost)
		if hasAffine && hasExpr {
			return nil, fmt.Errorf("%s: %w", filename, ErrGapConflict)
		}
		if g.Open != nil {
			s.GapOpen = *g.Open
			// A lone open penalty gives a linear cost.
			s.GapExtend = *g.Open
		}
		if g.Extend != nil {
			s.GapExtend = *g.Extend
		}
		if hasExpr {
			s.gapExpr = g.Cost
		}
	}

	for _, sb := range raw.Substitutions {
		if len(sb.A) != 1 || len(sb.B) != 1 || sb.A[0] >= 0x80 || sb.B[0] >= 0x80 {
			return nil, fmt.Errorf("%s: substitution %q %q: %w", filename, sb.A, sb.B, ErrBadSymbol)
		}
		sym := true
		if sb.Symmetric != nil {
			sym = *sb.Symmetric
		}
		s.Substitutions = append(s.Substitutions, Substitution{
			A: sb.A[0], B: sb.B[0], Score: sb.Score, Symmetric: sym,
		})
	}

	return s, nil
}

// isNullExpr reports whether expr is missing. gohcl fills an absent optional
// hcl.Expression with a static null.
func isNullExpr(expr hcl.Expression) bool {
	if expr == nil {
		return true
	}
	v, diags := expr.Value(nil)

	return !diags.HasErrors() && v.IsNull()
}
