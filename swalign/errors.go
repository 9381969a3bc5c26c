// SPDX-License-Identifier: MIT

package swalign

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "swalign: ". Construction errors all match
// ErrInvalidInput through errors.Is; callers may also match the specific
// sentinel.
var (
	// ErrInvalidInput is the umbrella for every rejected constructor input.
	ErrInvalidInput = errors.New("swalign: invalid input")

	// ErrEmptySequence indicates one or both sequences are empty.
	ErrEmptySequence = fmt.Errorf("%w: sequences must be non-empty", ErrInvalidInput)

	// ErrEncoding indicates a byte outside 7-bit ASCII. Multi-byte runes
	// would be split across matrix rows, so they are rejected up front.
	ErrEncoding = fmt.Errorf("%w: sequences must be 7-bit ASCII", ErrInvalidInput)

	// ErrGapSymbolInInput indicates a sequence contains the gap marker.
	ErrGapSymbolInInput = fmt.Errorf("%w: sequence contains the gap symbol", ErrInvalidInput)

	// ErrNilScorer indicates a nil Scorer was passed to New.
	ErrNilScorer = fmt.Errorf("%w: scorer is nil", ErrInvalidInput)

	// ErrMatrixTooLarge indicates the matrix would exceed WithMaxCells.
	ErrMatrixTooLarge = fmt.Errorf("%w: matrix exceeds cell limit", ErrInvalidInput)

	// ErrOutOfRange indicates a coordinate outside the matrix was passed to
	// a public accessor.
	ErrOutOfRange = errors.New("swalign: coordinate out of range")

	// ErrCancelled marks a fill that stopped early because its context was
	// done. The engine keeps the partial matrix and the best-so-far cell.
	ErrCancelled = errors.New("swalign: fill cancelled")
)
