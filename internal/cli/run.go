// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lvalign/internal/ctxlog"
	"github.com/katalvlaran/lvalign/internal/render"
	"github.com/katalvlaran/lvalign/internal/telemetry"
	"github.com/katalvlaran/lvalign/scheme"
	"github.com/katalvlaran/lvalign/seqio"
	"github.com/katalvlaran/lvalign/swalign"
)

// Exit codes returned by App.
const (
	ExitOK        = 0
	ExitFailure   = 1
	ExitUsage     = 2
	ExitCancelled = 130
)

// App parses args, runs the command and maps the outcome to an exit code.
// Errors are reported on errOut.
func App(ctx context.Context, args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet("lvalign", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.Usage = func() {
		fmt.Fprintln(errOut, "usage: lvalign [flags] [ROW] [COL]")
		fs.PrintDefaults()
	}

	cfg, err := ParseConfig(fs, args)
	switch {
	case errors.Is(err, flag.ErrHelp):
		return ExitOK
	case err != nil:
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return ExitUsage
	}

	err = Run(ctx, cfg, out, errOut)
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, swalign.ErrCancelled):
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return ExitCancelled
	case errors.Is(err, ErrUsage):
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return ExitUsage
	default:
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return ExitFailure
	}
}

// Run aligns the configured sequences and writes the report to out. Logs go
// to errOut. A cancelled fill still reports the best cell found so far and
// returns an error matching swalign.ErrCancelled.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	logger := ctxlog.New(errOut, cfg.Verbose)
	ctx = ctxlog.WithLogger(ctx, logger)

	shutdown, err := telemetry.Setup(ctx, "lvalign")
	if err != nil {
		logger.Warn("tracing disabled", "error", err)
	}
	defer func() {
		if err := shutdown(context.WithoutCancel(ctx)); err != nil {
			logger.Warn("flush traces", "error", err)
		}
	}()

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	row, err := loadSequence(ctx, "row", cfg.Row, cfg.RowFile)
	if err != nil {
		return err
	}
	col, err := loadSequence(ctx, "col", cfg.Col, cfg.ColFile)
	if err != nil {
		return err
	}
	name, scorer, err := loadScorer(ctx, cfg.Scheme, max(len(row.Seq), len(col.Seq)))
	if err != nil {
		return err
	}

	gap := cfg.GapSymbol[0]
	eng, err := swalign.New(row.String(), col.String(), scorer,
		swalign.WithGapSymbol(gap), swalign.WithMaxCells(cfg.MaxCells))
	if err != nil {
		return fmt.Errorf("%s vs %s: %w", row.ID, col.ID, err)
	}

	fmt.Fprintf(out, "# scheme: %s\n# row: %s (%d symbols)\n# col: %s (%d symbols)\n",
		name, row.ID, len(row.Seq), col.ID, len(col.Seq))

	best, fillErr := fill(ctx, eng)
	if cfg.Matrix {
		if err := render.Matrix(out, eng); err != nil {
			return err
		}
	}
	if fillErr != nil {
		if cur, ok := eng.Cursor(); ok {
			fmt.Fprintf(out, "# cancelled at %v: best so far %d at %v\n", cur, best.Score, best.Coord)
		}
		return fillErr
	}

	res, err := eng.Result(best)
	if err != nil {
		return err
	}
	if res.Pair.Len() == 0 {
		_, err = fmt.Fprintf(out, "# score: 0\n# no local alignment\n")
		return err
	}

	st := res.Pair.Stats(gap)
	fmt.Fprintf(out, "# score: %d at %v\n# identity: %d/%d (%.1f%%), gaps: %d in %d runs\n\n",
		res.Best.Score, res.Best.Coord,
		st.Matches, st.Columns, 100*st.Identity(), st.Gaps, st.GapOpens)

	return render.Alignment(out, res, render.Layout{
		RowID: row.ID,
		ColID: col.ID,
		Width: cfg.Width,
		Gap:   gap,
	})
}

// fill runs the matrix fill inside a span.
func fill(ctx context.Context, eng *swalign.Engine) (swalign.BestCell, error) {
	rows, cols := eng.Dims()
	ctx, span := telemetry.Tracer().Start(ctx, "lvalign.fill", trace.WithAttributes(
		attribute.Int("lvalign.rows", rows),
		attribute.Int("lvalign.cols", cols),
	))
	defer span.End()

	logger := ctxlog.FromContext(ctx)
	start := time.Now()
	best, err := eng.GenerateScoresContext(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fill cancelled")
		logger.Warn("fill stopped", "error", err, "best", best.Score)
		return best, err
	}
	span.SetAttributes(attribute.Int("lvalign.score", best.Score))
	logger.Debug("fill complete", "cells", rows*cols, "score", best.Score, "at", best.Coord.String(),
		"elapsed", time.Since(start))

	return best, nil
}

func loadSequence(ctx context.Context, side, literal, file string) (seqio.Record, error) {
	var (
		rec seqio.Record
		err error
	)
	if file != "" {
		rec, err = seqio.ReadFile(file)
	} else {
		rec, err = seqio.FromLiteral(side, literal)
	}
	if err != nil {
		return seqio.Record{}, fmt.Errorf("load %s sequence: %w", side, err)
	}
	ctxlog.FromContext(ctx).Debug("loaded sequence", "side", side, "id", rec.ID, "length", len(rec.Seq))

	return rec, nil
}

func loadScorer(ctx context.Context, path string, maxGap int) (string, swalign.Scorer, error) {
	if path == "" {
		return "default", swalign.DefaultScorer(), nil
	}
	s, err := scheme.LoadFile(path)
	if err != nil {
		return "", nil, err
	}
	sc, err := s.Compile(maxGap)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", path, err)
	}
	name := s.Name
	if name == "" {
		name = path
	}
	ctxlog.FromContext(ctx).Debug("compiled scheme", "name", name, "max_gap", maxGap,
		"gap_expression", s.HasGapExpression())

	return name, sc, nil
}
