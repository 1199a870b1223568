package fileio

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const plain = ">seq1\r\nACGT\nAC\n>seq2\nTTTT"

func readAll(t *testing.T, r LineReader, size int) []Line {
	t.Helper()
	buf := make([]byte, size)
	var out []Line
	for {
		ln, err := r.ReadLine(buf)
		if err == io.EOF {
			return out
		}
		require.NoError(t, err)
		ln.Data = append([]byte(nil), ln.Data...)
		out = append(out, ln)
	}
}

func TestReadLineStripsTerminators(t *testing.T) {
	f, err := NewReader("mem", strings.NewReader(plain))
	require.NoError(t, err)

	lines := readAll(t, f, BufSize)
	require.Len(t, lines, 5)
	assert.Equal(t, ">seq1", string(lines[0].Data))
	assert.Equal(t, 7, lines[0].Raw)
	assert.Equal(t, "ACGT", string(lines[1].Data))
	assert.Equal(t, "TTTT", string(lines[4].Data))
	assert.True(t, lines[4].Complete, "last line without LF counts as complete")
	assert.Equal(t, int64(len(plain)), f.Offset())
}

func TestReadLineTruncates(t *testing.T) {
	f, err := NewReader("mem", strings.NewReader("ABCDEFG\nxy\n"))
	require.NoError(t, err)

	lines := readAll(t, f, 4) // 3 bytes per read
	require.Len(t, lines, 4)
	assert.Equal(t, "ABC", string(lines[0].Data))
	assert.False(t, lines[0].Complete)
	assert.Equal(t, "DEF", string(lines[1].Data))
	assert.False(t, lines[1].Complete)
	assert.Equal(t, "G", string(lines[2].Data))
	assert.True(t, lines[2].Complete)
	assert.Equal(t, 2, lines[2].Raw)
	assert.Equal(t, "xy", string(lines[3].Data))
}

func TestSeekPlain(t *testing.T) {
	f, err := NewReader("mem", strings.NewReader(plain))
	require.NoError(t, err)
	_ = readAll(t, f, BufSize)

	require.NoError(t, f.Seek(15))
	lines := readAll(t, f, BufSize)
	require.Len(t, lines, 2)
	assert.Equal(t, ">seq2", string(lines[0].Data))
}

func writeCompressed(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	fh, err := os.Create(path)
	require.NoError(t, err)
	switch Detect(name, nil) {
	case Gzip:
		gw := gzip.NewWriter(fh)
		_, err = gw.Write([]byte(data))
		require.NoError(t, err)
		require.NoError(t, gw.Close())
	case Zstd:
		zw, err := zstd.NewWriter(fh)
		require.NoError(t, err)
		_, err = zw.Write([]byte(data))
		require.NoError(t, err)
		require.NoError(t, zw.Close())
	default:
		_, err = fh.Write([]byte(data))
		require.NoError(t, err)
	}
	require.NoError(t, fh.Close())
	return path
}

func TestOpenCompressedAndSeekBackward(t *testing.T) {
	for _, name := range []string{"x.fa", "x.fa.gz", "x.fa.zst"} {
		t.Run(name, func(t *testing.T) {
			f, err := Open(writeCompressed(t, name, plain))
			require.NoError(t, err)
			defer func() { _ = f.Close() }()
			assert.Equal(t, Detect(name, nil), f.Compression())

			first := readAll(t, f, BufSize)
			require.Len(t, first, 5)

			// backward seek on a compressed stream rewinds and discards
			require.NoError(t, f.Seek(15))
			again := readAll(t, f, BufSize)
			require.Len(t, again, 2)
			assert.Equal(t, ">seq2", string(again[0].Data))

			require.NoError(t, f.Rewind())
			assert.Equal(t, first, readAll(t, f, BufSize))
		})
	}
}

func TestOpenEmptyGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.fa.gz")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	f, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	assert.Empty(t, readAll(t, f, BufSize))
}

func TestCreateCompressesBySuffix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.fa.gz")
	w, err := Create(path)
	require.NoError(t, err)
	_, err = io.WriteString(w, plain)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, gzipMagic))

	f, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	assert.Len(t, readAll(t, f, BufSize), 5)
}

func TestLineErrorUnwraps(t *testing.T) {
	err := Errorf("FASTA", "a.fa", 3, ErrLineTooLong, "cannot read line %d, line is too long", 3)
	assert.ErrorIs(t, err, ErrLineTooLong)
	assert.Equal(t, "reading FASTA file a.fa: cannot read line 3, line is too long", err.Error())
}
