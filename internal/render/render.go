// SPDX-License-Identifier: MIT

// Package render formats alignments and score matrices as plain text.
//
// Both renderers are read-only: Matrix takes a View, the inspection subset of
// *swalign.Engine, so dumping a partially filled engine never advances it.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvalign/swalign"
)

const (
	midMatch    = '|'
	midMismatch = '.'
	midGap      = ' '
	unfilled    = "."
)

// Layout controls Alignment output.
type Layout struct {
	RowID string
	ColID string
	Width int  // columns per block; <= 0 disables wrapping
	Gap   byte // gap marker; 0 means swalign.DefaultGapSymbol
}

// Alignment writes res.Pair as blocks of row line, midline and col line.
// Each sequence line carries its first and last 1-based position:
//
//	row   3 ACGT 6
//	        || |
//	query 1 AC-T 3
//
// An empty pair writes nothing.
//
// Complexity: O(L) for L alignment columns.
func Alignment(w io.Writer, res swalign.Result, lay Layout) error {
	pair := res.Pair
	n := pair.Len()
	if n == 0 {
		return nil
	}
	gap := lay.Gap
	if gap == 0 {
		gap = swalign.DefaultGapSymbol
	}
	width := lay.Width
	if width <= 0 || width > n {
		width = n
	}

	idW := max(len(lay.RowID), len(lay.ColID))
	numW := len(strconv.Itoa(max(res.RowSpan.End, res.ColSpan.End)))
	pad := strings.Repeat(" ", idW+1+numW+1)

	rowPos, colPos := res.RowSpan.Start, res.ColSpan.Start
	for lo := 0; lo < n; lo += width {
		hi := min(lo+width, n)
		rowText, colText := pair.Row[lo:hi], pair.Col[lo:hi]

		if lo > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		rowEnd := rowPos + symbols(rowText, gap) - 1
		colEnd := colPos + symbols(colText, gap) - 1
		_, err := fmt.Fprintf(w, "%-*s %*d %s %d\n%s%s\n%-*s %*d %s %d\n",
			idW, lay.RowID, numW, rowPos, rowText, rowEnd,
			pad, midline(rowText, colText, gap),
			idW, lay.ColID, numW, colPos, colText, colEnd)
		if err != nil {
			return err
		}
		rowPos, colPos = rowEnd+1, colEnd+1
	}

	return nil
}

// symbols counts non-gap bytes of s.
func symbols(s string, gap byte) int {
	return len(s) - strings.Count(s, string(gap))
}

func midline(row, col string, gap byte) string {
	b := make([]byte, len(row))
	for i := range b {
		switch {
		case row[i] == gap || col[i] == gap:
			b[i] = midGap
		case row[i] == col[i]:
			b[i] = midMatch
		default:
			b[i] = midMismatch
		}
	}

	return string(b)
}

// View is the read-only surface of a score matrix.
type View interface {
	Dims() (rows, cols int)
	At(row, col int) (swalign.Cell, error)
	Cursor() (swalign.Coord, bool)
	RowSeq() string
	ColSeq() string
}

// Matrix writes the score matrix of v with sequence symbols as headers.
// Cells the fill has not reached yet print as ".".
//
// Complexity: O(R·C).
func Matrix(w io.Writer, v View) error {
	rows, cols := v.Dims()
	rowSeq, colSeq := v.RowSeq(), v.ColSeq()
	cur, pending := v.Cursor()

	filled := func(r, c int) bool {
		if !pending || r == 0 || c == 0 {
			return true
		}
		return r < cur.Row || (r == cur.Row && c < cur.Col)
	}

	text := make([]string, rows*cols)
	cellW := 2
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			s := unfilled
			if filled(r, c) {
				cell, err := v.At(r, c)
				if err != nil {
					return err
				}
				s = strconv.Itoa(cell.Score)
			}
			text[r*cols+c] = s
			cellW = max(cellW, len(s))
		}
	}

	var b strings.Builder
	b.WriteByte(' ')
	fmt.Fprintf(&b, "%*s", cellW+1, "")
	for c := 1; c < cols; c++ {
		fmt.Fprintf(&b, "%*c", cellW+1, colSeq[c-1])
	}
	b.WriteByte('\n')
	for r := 0; r < rows; r++ {
		label := byte(' ')
		if r > 0 {
			label = rowSeq[r-1]
		}
		b.WriteByte(label)
		for c := 0; c < cols; c++ {
			fmt.Fprintf(&b, "%*s", cellW+1, text[r*cols+c])
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())

	return err
}
