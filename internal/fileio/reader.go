package fileio

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// BufSize is the line buffer capacity used by the parsers and writers.
// A physical line longer than BufSize-1 bytes (terminator included) is
// delivered in pieces.
const BufSize = 20002

// Line is one read from a LineReader.
//
// Data aliases the caller's buffer and is only valid until the next read.
// For complete lines the LF or CRLF terminator has been removed from Data.
// Raw is the number of bytes consumed from the stream, terminator included.
// Complete is false when the buffer filled before a terminator was seen.
type Line struct {
	Data     []byte
	Raw      int
	Complete bool
}

// LineReader is the byte-stream contract the parsers consume.
type LineReader interface {
	// ReadLine reads at most len(buf)-1 bytes. It returns io.EOF once the
	// stream is exhausted.
	ReadLine(buf []byte) (Line, error)
	// Seek repositions to an absolute offset in decoded bytes.
	Seek(offset int64) error
	Rewind() error
	// Name identifies the stream in diagnostics.
	Name() string
}

var errNotSeekable = errors.New("stream is not seekable")

// File is the LineReader over a plain, gzip or zstd stream.
type File struct {
	name   string
	src    io.Reader
	closer io.Closer
	comp   Compression

	gz  *gzip.Reader
	zd  *zstd.Decoder
	br  *bufio.Reader
	pos int64
}

func newFile(name string, src io.Reader, closer io.Closer, comp Compression) (*File, error) {
	f := &File{name: name, src: src, closer: closer, comp: comp}
	dec, err := f.decoder()
	if err != nil {
		return nil, fmt.Errorf("%s: open %s stream: %w", name, comp, err)
	}
	f.br = bufio.NewReaderSize(dec, 64*1024)
	return f, nil
}

// decoder (re)builds the decoded view of src, which must be at offset 0.
func (f *File) decoder() (io.Reader, error) {
	switch f.comp {
	case Gzip:
		var err error
		if f.gz == nil {
			f.gz, err = gzip.NewReader(f.src)
		} else {
			err = f.gz.Reset(f.src)
		}
		if errors.Is(err, io.EOF) {
			// empty file
			return strings.NewReader(""), nil
		}
		if err != nil {
			return nil, err
		}
		return f.gz, nil
	case Zstd:
		var err error
		if f.zd == nil {
			f.zd, err = zstd.NewReader(f.src, zstd.WithDecoderConcurrency(1))
		} else {
			err = f.zd.Reset(f.src)
		}
		if err != nil {
			return nil, err
		}
		return f.zd, nil
	}
	return f.src, nil
}

// Name implements LineReader.
func (f *File) Name() string { return f.name }

// Compression reports the detected container.
func (f *File) Compression() Compression { return f.comp }

// Offset is the number of decoded bytes consumed so far.
func (f *File) Offset() int64 { return f.pos }

// ReadLine implements LineReader.
func (f *File) ReadLine(buf []byte) (Line, error) {
	max := len(buf) - 1
	if max < 1 {
		return Line{}, fmt.Errorf("%s: line buffer too small (%d)", f.name, len(buf))
	}
	n := 0
	for n < max {
		if _, err := f.br.Peek(1); err != nil {
			if err != io.EOF {
				return Line{}, err
			}
			if n == 0 {
				return Line{}, io.EOF
			}
			// last line without terminator
			return Line{Data: trimEOL(buf[:n]), Raw: n, Complete: true}, nil
		}
		avail, _ := f.br.Peek(min(f.br.Buffered(), max-n))
		if i := bytes.IndexByte(avail, '\n'); i >= 0 {
			n += copy(buf[n:], avail[:i+1])
			f.consume(i + 1)
			return Line{Data: trimEOL(buf[:n]), Raw: n, Complete: true}, nil
		}
		n += copy(buf[n:], avail)
		f.consume(len(avail))
	}
	return Line{Data: buf[:n], Raw: n, Complete: false}, nil
}

func (f *File) consume(n int) {
	_, _ = f.br.Discard(n)
	f.pos += int64(n)
}

// Seek implements LineReader. Plain seekable sources reposition directly;
// compressed ones discard forward, rewinding first when moving backward.
func (f *File) Seek(offset int64) error {
	if offset < 0 {
		return fmt.Errorf("%s: negative offset %d", f.name, offset)
	}
	if offset == f.pos {
		return nil
	}
	if s, ok := f.src.(io.Seeker); ok && f.comp == Plain {
		if _, err := s.Seek(offset, io.SeekStart); err != nil {
			return fmt.Errorf("%s: seek to %d: %w", f.name, offset, err)
		}
		f.br.Reset(f.src)
		f.pos = offset
		return nil
	}
	if offset < f.pos {
		if err := f.Rewind(); err != nil {
			return err
		}
	}
	for offset > f.pos {
		step := offset - f.pos
		if step > 1<<30 {
			step = 1 << 30
		}
		k, err := f.br.Discard(int(step))
		f.pos += int64(k)
		if err != nil {
			return fmt.Errorf("%s: seek to %d: %w", f.name, offset, err)
		}
	}
	return nil
}

// Rewind implements LineReader.
func (f *File) Rewind() error {
	if f.pos == 0 {
		return nil
	}
	s, ok := f.src.(io.Seeker)
	if !ok {
		return fmt.Errorf("%s: rewind: %w", f.name, errNotSeekable)
	}
	if _, err := s.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("%s: rewind: %w", f.name, err)
	}
	dec, err := f.decoder()
	if err != nil {
		return fmt.Errorf("%s: rewind: %w", f.name, err)
	}
	f.br.Reset(dec)
	f.pos = 0
	return nil
}

// Close releases the decoder and the underlying file.
func (f *File) Close() error {
	var err error
	if f.gz != nil {
		err = f.gz.Close()
	}
	if f.zd != nil {
		f.zd.Close()
	}
	if f.closer != nil {
		if cerr := f.closer.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// trimEOL drops a trailing LF, then a trailing CR.
func trimEOL(b []byte) []byte {
	n := len(b)
	if n > 0 && b[n-1] == '\n' {
		n--
	}
	if n > 0 && b[n-1] == '\r' {
		n--
	}
	return b[:n]
}
