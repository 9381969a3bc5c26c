// Package lvalign is an in-memory toolkit for local sequence alignment with
// arbitrary gap costs, from the scoring matrix up to a command-line tool.
//
// 🚀 What is lvalign?
//
//	A Smith–Waterman engine whose gap penalty is any function of gap length:
//		• Scoring: pluggable Scorer (substitution score + gap cost function)
//		• Fill: row-major score matrix, resumable and cancellable
//		• Traceback: iterative, from the best cell back to the first zero
//		• Schemes: HCL scoring files with gap-cost expressions
//		• I/O: FASTA / raw / gzip sequence input
//
// ✨ Why choose lvalign?
//
//   - Any gap model – affine, linear, logarithmic or a custom Go func
//   - Inspectable – step one cell at a time and read every cell back
//   - Deterministic – fixed tie-breaks, same input gives the same alignment
//
// Under the hood, everything is organized under these packages:
//
//	swalign/     — Engine, Scorer, matrix fill, traceback and Align
//	scheme/      — HCL scoring schemes compiled to a swalign.Scorer
//	seqio/       — sequence readers (FASTA, raw text, .gz, stdin)
//	cmd/lvalign/ — command-line front end
//
// Quick ASCII example (GATTACA vs ACA, default scorer):
//
//	row   5 ACA 7
//	        |||
//	col   1 ACA 3
//
//	go get github.com/katalvlaran/lvalign/swalign
package lvalign
