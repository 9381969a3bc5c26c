// SPDX-License-Identifier: MIT

package swalign

import (
	"context"
	"fmt"
	"math"
)

// GenerateScores fills the whole matrix and returns the best cell.
//
// Algorithm Outline:
//  1. Reset the matrix; row 0 and column 0 stay {0, (-1,-1)}.
//  2. For r = 1..R, c = 1..C (row-major):
//     diag  = M[r-1][c-1] + Score(row[r-1], col[c-1])
//     up    = max_{k=r-1..1} M[r-k][c] + GapCost(k)   (shorter gap wins ties)
//     left  = max_{k=c-1..1} M[r][c-k] + GapCost(k)   (shorter gap wins ties)
//     pick diag if diag ≥ up and diag ≥ left, else up if up ≥ left, else left
//     clamp a negative pick to 0, keeping its origin
//  3. Track the best cell with a non-strict ≥, so the last cell visited in
//     row-major order wins among equal scores.
//
// Calling GenerateScores twice on the same engine yields the same matrix.
//
// Complexity: O(R·C·(R+C)) time, O(1) extra memory.
func (e *Engine) GenerateScores() BestCell {
	e.Reset()
	for e.advance() {
	}

	return e.best
}

// GenerateScoresContext is GenerateScores with cancellation checked between
// cells. When ctx is done it returns the best-so-far cell and an error that
// matches both ErrCancelled and ctx.Err(); the partial matrix stays readable.
func (e *Engine) GenerateScoresContext(ctx context.Context) (BestCell, error) {
	e.Reset()

	return e.Resume(ctx)
}

// Resume continues the fill from the cursor until the matrix is complete or
// ctx is done. It is a no-op on a complete matrix.
func (e *Engine) Resume(ctx context.Context) (BestCell, error) {
	for !e.done {
		if err := ctx.Err(); err != nil {
			return e.best, fmt.Errorf("%w at %v: %w", ErrCancelled, e.cursor, err)
		}
		e.advance()
	}

	return e.best, nil
}

// Step computes exactly one cell in row-major order and returns its
// coordinate. It returns false, doing nothing, once the matrix is complete.
func (e *Engine) Step() (Coord, bool) {
	here := e.cursor
	if !e.advance() {
		return Coord{}, false
	}

	return here, true
}

// advance computes the cell under the cursor and moves the cursor on.
func (e *Engine) advance() bool {
	if e.done {
		return false
	}
	r, c := e.cursor.Row, e.cursor.Col
	cell := e.scoreCell(r, c)
	e.m.set(r, c, cell)
	if cell.Score >= e.best.Score {
		e.best = BestCell{Coord: Coord{Row: r, Col: c}, Score: cell.Score}
	}

	c++
	if c == e.m.cols {
		r, c = r+1, 1
	}
	if r == e.m.rows {
		e.done = true
	}
	e.cursor = Coord{Row: r, Col: c}

	return true
}

// scoreCell selects between the diagonal and both gap candidates.
// Priority on equal scores: diagonal, then vertical, then horizontal.
func (e *Engine) scoreCell(r, c int) Cell {
	diag := Cell{
		Score:  e.m.at(r-1, c-1).Score + e.scorer.Score(e.row[r-1], e.col[c-1]),
		Origin: Coord{Row: r - 1, Col: c - 1},
	}
	up := e.gapUp(r, c)
	left := e.gapLeft(r, c)

	var pick Cell
	switch {
	case diag.Score >= up.Score && diag.Score >= left.Score:
		pick = diag
	case up.Score >= left.Score:
		pick = up
	default:
		pick = left
	}
	if pick.Score < 0 {
		pick.Score = 0
	}

	return pick
}

// noCandidate loses every comparison; it stands in for an empty gap search.
var noCandidate = Cell{Score: math.MinInt, Origin: noOrigin}

// gapUp finds the best vertical gap ending at (r, c). rUp ascends from the
// top of the column, i.e. gap length descends, and equal scores overwrite, so
// the shortest of equally good gaps is kept.
func (e *Engine) gapUp(r, c int) Cell {
	best := noCandidate
	for rUp := 1; rUp < r; rUp++ {
		s := e.m.at(rUp, c).Score + e.scorer.GapCost(r-rUp)
		if s >= best.Score {
			best = Cell{Score: s, Origin: Coord{Row: rUp, Col: c}}
		}
	}

	return best
}

// gapLeft is gapUp along the row.
func (e *Engine) gapLeft(r, c int) Cell {
	best := noCandidate
	for cLeft := 1; cLeft < c; cLeft++ {
		s := e.m.at(r, cLeft).Score + e.scorer.GapCost(c-cLeft)
		if s >= best.Score {
			best = Cell{Score: s, Origin: Coord{Row: r, Col: cLeft}}
		}
	}

	return best
}
