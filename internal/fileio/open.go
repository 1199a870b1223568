// internal/fileio/open.go
package fileio

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Compression identifies the container a stream was detected in.
type Compression int

const (
	Plain Compression = iota
	Gzip
	Zstd
)

func (c Compression) String() string {
	switch c {
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	default:
		return "plain"
	}
}

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// Detect guesses the compression of a stream from its first bytes,
// falling back to the file name suffix.
func Detect(name string, head []byte) Compression {
	switch {
	case bytes.HasPrefix(head, gzipMagic):
		return Gzip
	case bytes.HasPrefix(head, zstdMagic):
		return Zstd
	case strings.HasSuffix(name, ".gz"):
		return Gzip
	case strings.HasSuffix(name, ".zst"):
		return Zstd
	}
	return Plain
}

// Open opens path for line reading. "-" reads STDIN. gzip and zstd inputs
// are decoded transparently; the returned reader seeks in decoded bytes.
func Open(path string) (*File, error) {
	if path == "-" {
		return newFile("<stdin>", os.Stdin, nil, Plain)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [4]byte
	n, _ := io.ReadFull(fh, sig[:])
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		_ = fh.Close()
		return nil, err
	}
	f, err := newFile(path, fh, fh, Detect(path, sig[:n]))
	if err != nil {
		_ = fh.Close()
		return nil, err
	}
	return f, nil
}

// NewReader wraps r as a LineReader named name. r is seekable when it
// implements io.Seeker; compression is sniffed the same way Open does.
func NewReader(name string, r io.Reader) (*File, error) {
	var head []byte
	if rs, ok := r.(io.ReadSeeker); ok {
		var sig [4]byte
		n, _ := io.ReadFull(rs, sig[:])
		if _, err := rs.Seek(0, io.SeekStart); err != nil {
			return nil, err
		}
		head = sig[:n]
	}
	return newFile(name, r, nil, Detect(name, head))
}

// multiWriteCloser closes multiple io.Closers when Close() is called.
type multiWriteCloser struct {
	io.Writer
	closers []io.Closer
}

func (m *multiWriteCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Create opens path for writing, compressing by suffix (.gz, .zst).
// "-" writes to STDOUT.
func Create(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	fh, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	switch Detect(path, nil) {
	case Gzip:
		gw := gzip.NewWriter(fh)
		return &multiWriteCloser{Writer: gw, closers: []io.Closer{gw, fh}}, nil
	case Zstd:
		zw, err := zstd.NewWriter(fh, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &multiWriteCloser{Writer: zw, closers: []io.Closer{zw, fh}}, nil
	}
	return fh, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
