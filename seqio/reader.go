// SPDX-License-Identifier: MIT

// Package seqio reads alignment inputs: FASTA records or raw sequence text,
// from files, gzip files or stdin.
package seqio

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrNoSequence indicates the input holds no sequence symbols.
	ErrNoSequence = errors.New("seqio: no sequence found")

	// ErrEncoding indicates a non-ASCII byte in sequence data.
	ErrEncoding = errors.New("seqio: sequence data must be 7-bit ASCII")
)

// Record is one named sequence. Seq is upper-cased with whitespace removed.
type Record struct {
	ID  string
	Seq []byte
}

// String returns the sequence as a string.
func (r Record) String() string {
	return string(r.Seq)
}

// Read parses every record from r. Input without a '>' header is a single
// raw sequence named defaultID.
func Read(r io.Reader, defaultID string) ([]Record, error) {
	br := bufio.NewReader(r)
	var (
		recs []Record
		cur  *Record
		line int
	)
	for {
		raw, err := br.ReadBytes('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		eof := err == io.EOF
		line++
		raw = bytes.TrimRight(raw, "\r\n")

		switch {
		case len(raw) > 0 && raw[0] == '>':
			id := defaultID
			if f := strings.Fields(string(raw[1:])); len(f) > 0 {
				id = f[0]
			}
			recs = append(recs, Record{ID: id})
			cur = &recs[len(recs)-1]
		case len(raw) > 0 && raw[0] == ';':
			// FASTA comment line
		default:
			if cur == nil {
				if len(bytes.TrimSpace(raw)) == 0 {
					break
				}
				recs = append(recs, Record{ID: defaultID})
				cur = &recs[len(recs)-1]
			}
			if err := appendSymbols(cur, raw, line); err != nil {
				return nil, err
			}
		}
		if eof {
			break
		}
	}

	out := recs[:0]
	for _, rec := range recs {
		if len(rec.Seq) > 0 {
			out = append(out, rec)
		}
	}
	if len(out) == 0 {
		return nil, ErrNoSequence
	}

	return out, nil
}

// appendSymbols upper-cases line into rec, dropping whitespace.
func appendSymbols(rec *Record, line []byte, lineNo int) error {
	for _, b := range line {
		switch {
		case b >= 0x80:
			return fmt.Errorf("line %d: byte 0x%02x: %w", lineNo, b, ErrEncoding)
		case b == ' ' || b == '\t' || b == '\v' || b == '\f':
			continue
		case b >= 'a' && b <= 'z':
			b -= 'a' - 'A'
		}
		rec.Seq = append(rec.Seq, b)
	}

	return nil
}

// ReadFile returns the first record of path. "-" reads stdin and a ".gz"
// suffix is decompressed.
func ReadFile(path string) (Record, error) {
	recs, err := ReadAll(path)
	if err != nil {
		return Record{}, err
	}

	return recs[0], nil
}

// ReadAll returns every record of path.
func ReadAll(path string) ([]Record, error) {
	rc, err := open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	recs, err := Read(rc, defaultID(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return recs, nil
}

// FromLiteral wraps a sequence given on the command line.
func FromLiteral(id, seq string) (Record, error) {
	recs, err := Read(strings.NewReader(seq), id)
	if err != nil {
		return Record{}, err
	}
	if len(recs) != 1 {
		return Record{}, fmt.Errorf("literal %q: expected one sequence, got %d", id, len(recs))
	}

	return recs[0], nil
}

func defaultID(path string) string {
	if path == "-" {
		return "stdin"
	}
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, ".gz")

	return strings.TrimSuffix(base, filepath.Ext(base))
}

func open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			fh.Close()
			return nil, err
		}
		return struct {
			io.Reader
			io.Closer
		}{Reader: gr, Closer: fh}, nil
	}

	return fh, nil
}
