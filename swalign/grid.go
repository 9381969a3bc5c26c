// SPDX-License-Identifier: MIT

package swalign

import "fmt"

// grid is a row-major matrix of cells stored in one flat slice. Origins are
// plain coordinates into the same arena, so the back-pointer DAG needs no
// pointers between cells.
type grid struct {
	rows, cols int    // (R+1) and (C+1)
	cells      []Cell // len == rows*cols
}

func newGrid(rows, cols int) grid {
	return grid{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
}

// index computes the flat offset for (row, col) or returns ErrOutOfRange.
func (g *grid) index(row, col int) (int, error) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return 0, fmt.Errorf("cell(%d,%d) in %dx%d: %w", row, col, g.rows, g.cols, ErrOutOfRange)
	}

	return row*g.cols + col, nil
}

// at returns the cell at (row, col) without bounds checks. Callers inside the
// fill and traceback only ever pass coordinates derived from valid cells.
func (g *grid) at(row, col int) Cell {
	return g.cells[row*g.cols+col]
}

func (g *grid) set(row, col int, c Cell) {
	g.cells[row*g.cols+col] = c
}

// clear resets every cell to the boundary value {0, noOrigin}.
func (g *grid) clear() {
	for i := range g.cells {
		g.cells[i] = Cell{Score: 0, Origin: noOrigin}
	}
}
