// SPDX-License-Identifier: MIT

// Command lvalign finds the best local alignment of two sequences.
//
//	lvalign GATTACA ACA
//	lvalign -row-file reads.fa.gz -col-file probe.fa -scheme dna.hcl -matrix
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/lvalign/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.App(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
