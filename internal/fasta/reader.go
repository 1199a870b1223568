// internal/fasta/reader.go
package fasta

import (
	"bytes"
	"context"

	"github.com/go-logr/logr"

	"fastx/internal/fileio"
)

// Record is one FASTA record.
type Record struct {
	File   string
	Index  int   // 0-based across all inputs
	RecNo  int   // 1-based within File
	Offset int64 // of the description line
	Desc   string
	Seq    []byte
}

// ID is the first whitespace-delimited token of the description.
func (r Record) ID() string { return parseHeaderID([]byte(r.Desc)) }

// Stream parses files as one stream and calls emit for each selected
// record, in order. A non-nil error from emit, or ctx cancellation, stops
// the stream and is returned.
func Stream(ctx context.Context, files []fileio.LineReader, cfg Config, emit func(Record) error) ([]fileio.Warning, error) {
	log := logr.FromContextOrDiscard(ctx)
	ld := NewRecordLoader(func(rec Record) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return emit(rec)
	})
	var (
		pos   Position
		warns []fileio.Warning
	)
	for _, r := range files {
		if err := ctx.Err(); err != nil {
			return warns, err
		}
		ld.startFile(r.Name(), pos.RecNo)
		pos.Offset, pos.Invalid = 0, 0
		if err := Parse(r, cfg, &ld.Loader, &pos); err != nil {
			return warns, err
		}
		if err := ld.Flush(); err != nil {
			return warns, err
		}
		if pos.Invalid != 0 {
			warns = append(warns, fileio.Warning{Format: format, File: r.Name(), Invalid: pos.Invalid})
		}
		log.V(1).Info("streamed FASTA file", "file", r.Name(), "records", ld.NRec())
	}
	return warns, nil
}

// StreamPaths opens paths ("-" is STDIN) and streams them like Stream.
func StreamPaths(ctx context.Context, paths []string, cfg Config, emit func(Record) error) ([]fileio.Warning, error) {
	fs, err := fileio.OpenAll(paths)
	if err != nil {
		return nil, err
	}
	defer fs.Close()
	return Stream(ctx, fs.Readers(), cfg, emit)
}

/* ---------------- small helpers ---------------- */

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
