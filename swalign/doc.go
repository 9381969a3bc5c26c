// SPDX-License-Identifier: MIT

// Package swalign computes optimal local alignments (Smith–Waterman) between
// two byte sequences under a generalized gap-penalty model.
//
// 🚀 What is generalized-gap local alignment?
//
//	Classical Smith–Waterman scores every cell from its three neighbours.
//	Here the gap cost is an arbitrary function of the gap length, so each
//	cell searches every possible gap length above it and to its left:
//	  • affine gaps   (open + extend·(k−1)) are just one Scorer among many
//	  • logarithmic, stepped or table-driven gap costs work unchanged
//	  • the engine never assumes the gap function is affine
//
// ✨ Key features:
//   - pluggable Scorer (substitution score + gap cost)
//   - deterministic tie-breaking (diagonal > vertical > horizontal,
//     shorter gaps win equal scores, last-visited best cell wins)
//   - iterative traceback following multi-step gap back-pointers
//   - incremental Step/Cursor/At interface for renderers
//   - context-aware fill with a distinct ErrCancelled outcome
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvalign/swalign"
//
//	eng, err := swalign.New("GATTACA", "ACA", swalign.DefaultScorer())
//	if err != nil {
//	  // handle ErrEmptySequence, ErrEncoding, ...
//	}
//	best := eng.GenerateScores()
//	pair, _ := eng.Traceback(best)
//	fwd := pair.Forward() // traceback output is reversed
//
// Performance:
//
//   - Time:   O(R·C·(R+C))
//   - Memory: O(R·C)
//
// See example_test.go for runnable walkthroughs.
package swalign
