package fasta

import (
	"bufio"
	"fmt"
	"io"

	"fastx/internal/fileio"
	"fastx/internal/lkup"
	"fastx/internal/seqset"
)

const (
	DefaultWidth = 80
	// MaxWidth is the parser's line capacity. At this width the newline
	// spills into a second read, which the parser joins as sequence data.
	MaxWidth = fileio.BufSize - 1
)

// WriteOptions controls Write.
type WriteOptions struct {
	Width        int         // sequence bytes per line; 0 = DefaultWidth
	Lookup       *lkup.Table // applied to sequence bytes; nil = as stored
	RequireNames bool        // fail on unnamed sets and empty names
}

// Write emits every element of set as a FASTA record. A record whose name
// fails validation is rejected before any of its bytes are written.
func Write(w io.Writer, set *seqset.Set, opt WriteOptions) error {
	width := opt.Width
	if width == 0 {
		width = DefaultWidth
	}
	if width < 1 || width > MaxWidth {
		return fmt.Errorf("fasta: width must be in [1, %d], got %d", MaxWidth, width)
	}
	if set.Names != nil && len(set.Names) != set.Len() {
		return fmt.Errorf("fasta: %d names for %d sequences", len(set.Names), set.Len())
	}

	bw := bufio.NewWriterSize(w, 64*1024)
	line := make([]byte, width)
	for i := 0; i < set.Len(); i++ {
		name, named := set.Name(i)
		if opt.RequireNames && (!named || name == "") {
			return fmt.Errorf("fasta: record %d: %w", i+1, fileio.ErrMissingName)
		}
		bw.WriteByte(DescMarker)
		bw.WriteString(name)
		bw.WriteByte('\n')

		seq := set.At(i)
		for j := 0; j < len(seq); j += width {
			chunk := seq[j:min(j+width, len(seq))]
			if opt.Lookup != nil {
				out := line[:len(chunk)]
				for k, c := range chunk {
					v, ok := opt.Lookup.Lookup(c)
					if !ok {
						return fmt.Errorf("fasta: record %d: %q: %w", i+1, c, fileio.ErrInvalidByte)
					}
					out[k] = v
				}
				chunk = out
			}
			bw.Write(chunk)
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
