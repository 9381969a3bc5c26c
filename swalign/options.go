// SPDX-License-Identifier: MIT

package swalign

// DefaultMaxCells is the default matrix size limit; 0 disables the check.
const DefaultMaxCells = 0

const (
	panicGapSymbolInvalid = "swalign: WithGapSymbol: symbol must be printable 7-bit ASCII"
	panicMaxCellsInvalid  = "swalign: WithMaxCells: limit must be >= 0"
)

// Option mutates engine options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*options)

type options struct {
	gapSymbol byte // DefaultGapSymbol
	maxCells  int  // DefaultMaxCells; counts (R+1)·(C+1)
}

func defaultOptions() options {
	return options{gapSymbol: DefaultGapSymbol, maxCells: DefaultMaxCells}
}

// WithGapSymbol sets the marker emitted for gap positions. Input sequences
// must not contain it.
func WithGapSymbol(b byte) Option {
	if b < 0x21 || b > 0x7e {
		panic(panicGapSymbolInvalid)
	}

	return func(o *options) { o.gapSymbol = b }
}

// WithMaxCells bounds the matrix allocation. New returns ErrMatrixTooLarge
// when (len(row)+1)·(len(col)+1) exceeds n. Zero means unlimited.
func WithMaxCells(n int) Option {
	if n < 0 {
		panic(panicMaxCellsInvalid)
	}

	return func(o *options) { o.maxCells = n }
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
