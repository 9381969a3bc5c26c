// SPDX-License-Identifier: MIT

package swalign

import "context"

// Align builds an engine, fills it and traces back the best local alignment
// in one call. Result.Pair is already in forward orientation.
//
// An empty rowSeq or colSeq is not an error here: the best local alignment
// of an empty sequence scores 0, so Align returns the zero Result. All other
// New errors are returned unchanged. When ctx is cancelled mid-fill the
// returned Result carries the best-so-far cell and the error matches
// ErrCancelled.
func Align(ctx context.Context, rowSeq, colSeq string, scorer Scorer, opts ...Option) (Result, error) {
	if scorer == nil {
		return Result{}, ErrNilScorer
	}
	if len(rowSeq) == 0 || len(colSeq) == 0 {
		return Result{}, nil
	}

	eng, err := New(rowSeq, colSeq, scorer, opts...)
	if err != nil {
		return Result{}, err
	}
	best, err := eng.GenerateScoresContext(ctx)
	if err != nil {
		return Result{Best: best}, err
	}

	return eng.Result(best)
}

// Result traces back from best and packages the forward alignment together
// with the sequence spans it covers.
func (e *Engine) Result(best BestCell) (Result, error) {
	pair, start, err := e.traceback(best)
	if err != nil {
		return Result{}, err
	}
	res := Result{Best: best, Pair: pair.Forward()}
	if pair.Len() > 0 {
		res.RowSpan = Span{Start: start.Row + 1, End: best.Row}
		res.ColSpan = Span{Start: start.Col + 1, End: best.Col}
	}

	return res, nil
}
