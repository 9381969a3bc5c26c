// SPDX-License-Identifier: MIT

package swalign

// Traceback reconstructs the alignment ending at best by following origin
// pointers until it reaches a zero-score cell.
//
// Steps:
//   - here == origin+(1,1): one symbol from each sequence.
//   - here.Row == origin.Row: horizontal gap; the column sequence advances
//     by here.Col−origin.Col symbols against gap markers on the row side.
//   - otherwise: vertical gap; the row sequence advances by
//     here.Row−origin.Row symbols against gap markers on the column side.
//
// Both strings are returned in reverse order (end of the alignment first);
// call Forward before display. A zero-score best cell yields an empty pair.
//
// Errors: ErrOutOfRange if best lies outside the matrix.
//
// Complexity: O(R+C) time and memory.
func (e *Engine) Traceback(best BestCell) (AlignedPair, error) {
	pair, _, err := e.traceback(best)

	return pair, err
}

// traceback also returns the zero-score cell where the alignment starts.
func (e *Engine) traceback(best BestCell) (AlignedPair, Coord, error) {
	if _, err := e.m.index(best.Row, best.Col); err != nil {
		return AlignedPair{}, Coord{}, err
	}
	here := best.Coord
	target := e.m.at(here.Row, here.Col)
	if target.Score == 0 {
		return AlignedPair{}, here, nil
	}

	var (
		gap    = e.opts.gapSymbol
		n      = here.Row + here.Col // upper bound on columns
		rowOut = make([]byte, 0, n)
		colOut = make([]byte, 0, n)
	)
	for {
		o := target.Origin
		switch {
		case here.Row == o.Row+1 && here.Col == o.Col+1:
			rowOut = append(rowOut, e.row[here.Row-1])
			colOut = append(colOut, e.col[here.Col-1])
		case here.Row == o.Row:
			for c := here.Col; c > o.Col; c-- {
				rowOut = append(rowOut, gap)
				colOut = append(colOut, e.col[c-1])
			}
		default:
			for r := here.Row; r > o.Row; r-- {
				rowOut = append(rowOut, e.row[r-1])
				colOut = append(colOut, gap)
			}
		}

		next := e.m.at(o.Row, o.Col)
		if next.Score == 0 {
			return AlignedPair{Row: string(rowOut), Col: string(colOut)}, o, nil
		}
		here, target = o, next
	}
}
