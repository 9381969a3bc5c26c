package seqio_test

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lvalign/seqio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRead_FASTA parses multi-line, multi-record FASTA.
func TestRead_FASTA(t *testing.T) {
	in := ">seq1 first read\nacgt\nACGT\n;comment\n>seq2\nGG CC\r\n>empty\n"
	recs, err := seqio.Read(strings.NewReader(in), "x")
	require.NoError(t, err)
	require.Len(t, recs, 2, "records without symbols are dropped")
	assert.Equal(t, "seq1", recs[0].ID)
	assert.Equal(t, "ACGTACGT", recs[0].String())
	assert.Equal(t, "seq2", recs[1].ID)
	assert.Equal(t, "GGCC", recs[1].String())
}

// TestRead_Raw names headerless input with the default id.
func TestRead_Raw(t *testing.T) {
	recs, err := seqio.Read(strings.NewReader("\n  gattaca\nTT"), "raw")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, seqio.Record{ID: "raw", Seq: []byte("GATTACATT")}, recs[0])
}

// TestRead_Errors covers empty and non-ASCII input.
func TestRead_Errors(t *testing.T) {
	_, err := seqio.Read(strings.NewReader(">only-header\n\n"), "x")
	assert.ErrorIs(t, err, seqio.ErrNoSequence)

	_, err = seqio.Read(strings.NewReader(""), "x")
	assert.ErrorIs(t, err, seqio.ErrNoSequence)

	_, err = seqio.Read(strings.NewReader(">a\nAC\nGÉT\n"), "x")
	assert.ErrorIs(t, err, seqio.ErrEncoding)
	assert.Contains(t, err.Error(), "line 3")
}

// TestFromLiteral wraps a command-line sequence.
func TestFromLiteral(t *testing.T) {
	rec, err := seqio.FromLiteral("row", "gattaca")
	require.NoError(t, err)
	assert.Equal(t, "GATTACA", rec.String())
	assert.Equal(t, "row", rec.ID)

	_, err = seqio.FromLiteral("row", "   ")
	assert.ErrorIs(t, err, seqio.ErrNoSequence)
}

// TestReadFile_PlainAndGzip reads the first record of plain and gzip files.
func TestReadFile_PlainAndGzip(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "reads.fa")
	require.NoError(t, os.WriteFile(plain, []byte(">r1\nACGT\n>r2\nTTTT\n"), 0o600))

	rec, err := seqio.ReadFile(plain)
	require.NoError(t, err)
	assert.Equal(t, seqio.Record{ID: "r1", Seq: []byte("ACGT")}, rec)

	all, err := seqio.ReadAll(plain)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	gz := filepath.Join(dir, "locus.fasta.gz")
	fh, err := os.Create(gz)
	require.NoError(t, err)
	zw := gzip.NewWriter(fh)
	_, err = zw.Write([]byte("gattaca\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, fh.Close())

	rec, err = seqio.ReadFile(gz)
	require.NoError(t, err)
	assert.Equal(t, seqio.Record{ID: "locus", Seq: []byte("GATTACA")}, rec)
}

// TestReadFile_Missing surfaces the open error.
func TestReadFile_Missing(t *testing.T) {
	_, err := seqio.ReadFile(filepath.Join(t.TempDir(), "nope.fa"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
