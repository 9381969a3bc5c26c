// SPDX-License-Identifier: MIT

// Package cli implements the lvalign command.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ErrUsage marks a configuration the command cannot run with.
var ErrUsage = errors.New("usage")

// Config holds lvalign command configuration. Every field has an LVALIGN_*
// environment default that the matching flag overrides.
type Config struct {
	Row       string        `env:"LVALIGN_ROW"`
	Col       string        `env:"LVALIGN_COL"`
	RowFile   string        `env:"LVALIGN_ROW_FILE"`
	ColFile   string        `env:"LVALIGN_COL_FILE"`
	Scheme    string        `env:"LVALIGN_SCHEME"`
	GapSymbol string        `env:"LVALIGN_GAP_SYMBOL" envDefault:"-"`
	MaxCells  int           `env:"LVALIGN_MAX_CELLS"  envDefault:"100000000"`
	Width     int           `env:"LVALIGN_WIDTH"      envDefault:"60"`
	Matrix    bool          `env:"LVALIGN_MATRIX"`
	Verbose   bool          `env:"LVALIGN_VERBOSE"`
	Timeout   time.Duration `env:"LVALIGN_TIMEOUT"`
}

// ParseConfig parses env defaults and then flags into a Config. Up to two
// positional arguments fill Row and Col when neither a literal nor a file
// was given for that side.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.Row, "row", cfg.Row, "row sequence literal")
	fs.StringVar(&cfg.Col, "col", cfg.Col, "column sequence literal")
	fs.StringVar(&cfg.RowFile, "row-file", cfg.RowFile, "row sequence file (FASTA or raw, .gz ok, - for stdin)")
	fs.StringVar(&cfg.ColFile, "col-file", cfg.ColFile, "column sequence file (FASTA or raw, .gz ok, - for stdin)")
	fs.StringVar(&cfg.Scheme, "scheme", cfg.Scheme, "HCL scoring scheme file (default: match 3, mismatch -2, gap -4/-3)")
	fs.StringVar(&cfg.GapSymbol, "gap-symbol", cfg.GapSymbol, "gap marker in the alignment")
	fs.IntVar(&cfg.MaxCells, "max-cells", cfg.MaxCells, "refuse matrices larger than this (0 = unlimited)")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "alignment columns per block (0 = no wrapping)")
	fs.BoolVar(&cfg.Matrix, "matrix", cfg.Matrix, "print the score matrix")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable debug logging")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "abort the fill after this long (0 = none)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	rest := fs.Args()
	if len(rest) > 2 {
		return Config{}, fmt.Errorf("%w: at most two positional sequences, got %d", ErrUsage, len(rest))
	}
	if len(rest) > 0 && cfg.Row == "" && cfg.RowFile == "" {
		cfg.Row, rest = rest[0], rest[1:]
	}
	if len(rest) > 0 && cfg.Col == "" && cfg.ColFile == "" {
		cfg.Col, rest = rest[0], rest[1:]
	}
	if len(rest) > 0 {
		return Config{}, fmt.Errorf("%w: positional sequence %q conflicts with flags", ErrUsage, rest[0])
	}

	return cfg, nil
}

// validate checks what flag parsing cannot.
func (c Config) validate() error {
	if err := sideSource("row", c.Row, c.RowFile); err != nil {
		return err
	}
	if err := sideSource("col", c.Col, c.ColFile); err != nil {
		return err
	}
	if len(c.GapSymbol) != 1 || c.GapSymbol[0] < 0x21 || c.GapSymbol[0] > 0x7e {
		return fmt.Errorf("%w: gap symbol %q must be one printable ASCII character", ErrUsage, c.GapSymbol)
	}
	if c.MaxCells < 0 {
		return fmt.Errorf("%w: max cells must be >= 0, got %d", ErrUsage, c.MaxCells)
	}

	return nil
}

func sideSource(side, literal, file string) error {
	switch {
	case literal != "" && file != "":
		return fmt.Errorf("%w: set either -%s or -%s-file", ErrUsage, side, side)
	case literal == "" && file == "":
		return fmt.Errorf("%w: %s sequence is required", ErrUsage, side)
	}

	return nil
}
