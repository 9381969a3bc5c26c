// SPDX-License-Identifier: MIT

// Package scheme loads scoring schemes for swalign from HCL files.
//
// A scheme sets the match/mismatch scores, optional per-pair substitution
// overrides and a gap cost that is either affine (open/extend) or an
// arbitrary HCL expression of the gap length `len`:
//
//	name     = "dna-log"
//	match    = 3
//	mismatch = -2
//
//	gap {
//	  cost = -4 - 2 * floor(log(len, 2))
//	}
//
//	substitution "A" "G" { score = 1 } # transitions are cheaper
//	substitution "C" "T" { score = 1 }
//
// Expressions may call abs, ceil, floor, log, max, min and pow, and must
// evaluate to a whole number for every length. Compile evaluates them once
// per length up front, so the resulting Scorer is a pair of lookup tables and
// is safe to share between engines.
package scheme
