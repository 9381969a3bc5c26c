// SPDX-License-Identifier: MIT

package swalign

import "fmt"

// Engine owns the DP matrix and both input sequences for one alignment.
// An Engine is not safe for concurrent use; its Scorer may be shared.
//
// The fill state (cursor, best-so-far) lives on the Engine so several
// engines can be stepped independently.
type Engine struct {
	row, col []byte
	scorer   Scorer
	opts     options

	m      grid
	best   BestCell
	cursor Coord // next cell to compute
	done   bool
}

// New validates the inputs and allocates a (len(rowSeq)+1)×(len(colSeq)+1)
// matrix. The matrix starts empty; call GenerateScores or Step to fill it.
//
// Errors (all match ErrInvalidInput):
//   - ErrNilScorer        — scorer is nil.
//   - ErrEmptySequence    — either sequence is empty.
//   - ErrEncoding         — a byte ≥ 0x80 is present.
//   - ErrGapSymbolInInput — a sequence contains the gap marker.
//   - ErrMatrixTooLarge   — the matrix exceeds WithMaxCells.
//
// Complexity: O(R·C) time and memory for the allocation.
func New(rowSeq, colSeq string, scorer Scorer, opts ...Option) (*Engine, error) {
	if scorer == nil {
		return nil, ErrNilScorer
	}
	if len(rowSeq) == 0 || len(colSeq) == 0 {
		return nil, ErrEmptySequence
	}
	o := gatherOptions(opts)
	if err := validateSequence("row", rowSeq, o.gapSymbol); err != nil {
		return nil, err
	}
	if err := validateSequence("col", colSeq, o.gapSymbol); err != nil {
		return nil, err
	}
	rows, cols := len(rowSeq)+1, len(colSeq)+1
	if o.maxCells > 0 && rows > o.maxCells/cols {
		return nil, fmt.Errorf("%dx%d > %d cells: %w", rows, cols, o.maxCells, ErrMatrixTooLarge)
	}

	e := &Engine{
		row:    []byte(rowSeq),
		col:    []byte(colSeq),
		scorer: scorer,
		opts:   o,
		m:      newGrid(rows, cols),
	}
	e.Reset()

	return e, nil
}

func validateSequence(side, s string, gap byte) error {
	for i := 0; i < len(s); i++ {
		switch b := s[i]; {
		case b >= 0x80:
			return fmt.Errorf("%s sequence byte %d (0x%02x): %w", side, i, b, ErrEncoding)
		case b == gap:
			return fmt.Errorf("%s sequence position %d: %w", side, i, ErrGapSymbolInInput)
		}
	}

	return nil
}

// Reset clears the matrix and rewinds the cursor to (1,1).
func (e *Engine) Reset() {
	e.m.clear()
	e.best = BestCell{}
	e.cursor = Coord{Row: 1, Col: 1}
	e.done = false
}

// Dims returns the matrix dimensions, boundary row and column included.
func (e *Engine) Dims() (rows, cols int) {
	return e.m.rows, e.m.cols
}

// At returns a copy of the cell at (row, col).
func (e *Engine) At(row, col int) (Cell, error) {
	idx, err := e.m.index(row, col)
	if err != nil {
		return Cell{}, err
	}

	return e.m.cells[idx], nil
}

// Cursor returns the next cell the fill will compute, and false once the
// matrix is complete.
func (e *Engine) Cursor() (Coord, bool) {
	if e.done {
		return Coord{}, false
	}

	return e.cursor, true
}

// Done reports whether every cell has been computed.
func (e *Engine) Done() bool {
	return e.done
}

// Best returns the best cell computed so far.
func (e *Engine) Best() BestCell {
	return e.best
}

// RowSeq returns the sequence laid along the matrix rows.
func (e *Engine) RowSeq() string {
	return string(e.row)
}

// ColSeq returns the sequence laid along the matrix columns.
func (e *Engine) ColSeq() string {
	return string(e.col)
}

// GapSymbol returns the marker used for gap positions.
func (e *Engine) GapSymbol() byte {
	return e.opts.gapSymbol
}
