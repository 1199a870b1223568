package fastq

import (
	"context"

	"github.com/go-logr/logr"

	"fastx/internal/fileio"
	"fastx/internal/seqset"
)

// Record is one FASTQ record.
type Record struct {
	File  string
	Index int // 0-based across all inputs
	RecNo int // 1-based within File
	ID    string
	Seq   []byte
	Qual  []byte
}

// parseAll runs Parse over files as one stream. before, if set, is called
// ahead of each file with the records seen so far.
func parseAll(ctx context.Context, files []fileio.LineReader, cfg Config, ld *Loader, before func(r fileio.LineReader, recno int)) ([]fileio.Warning, error) {
	log := logr.FromContextOrDiscard(ctx)
	var (
		pos   Position
		warns []fileio.Warning
	)
	for _, r := range files {
		if err := ctx.Err(); err != nil {
			return warns, err
		}
		if before != nil {
			before(r, pos.RecNo)
		}
		pos.Offset, pos.Invalid = 0, 0
		if err := Parse(r, cfg, ld, &pos); err != nil {
			return warns, err
		}
		if pos.Invalid != 0 {
			warns = append(warns, fileio.Warning{Format: format, File: r.Name(), Invalid: pos.Invalid})
		}
		log.V(1).Info("parsed FASTQ file", "file", r.Name(), "loaded", ld.NRec(), "bytes", pos.Offset)
	}
	return warns, nil
}

// Read loads the selected records of files. seqs is named by record id;
// quals is nil unless withQuals is set.
func Read(ctx context.Context, files []fileio.LineReader, cfg Config, withQuals bool) (seqs, quals *seqset.Set, warns []fileio.Warning, err error) {
	ld := NewFullLoader(withQuals)
	if warns, err = parseAll(ctx, files, cfg, &ld.Loader, nil); err != nil {
		return nil, nil, warns, err
	}
	seqs, quals = ld.Result()
	return seqs, quals, warns, nil
}

// SeqLengths returns the sequence length of every selected record.
func SeqLengths(ctx context.Context, files []fileio.LineReader, cfg Config) ([]int, []fileio.Warning, error) {
	ld := NewSeqLengthLoader()
	warns, err := parseAll(ctx, files, cfg, &ld.Loader, nil)
	if err != nil {
		return nil, warns, err
	}
	return ld.Lengths, warns, nil
}

// Stream calls emit for each selected record, in order. A non-nil error
// from emit, or ctx cancellation, stops the stream and is returned.
func Stream(ctx context.Context, files []fileio.LineReader, cfg Config, emit func(Record) error) ([]fileio.Warning, error) {
	ld := NewRecordLoader(cfg.Skip, func(rec Record) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return emit(rec)
	})
	return parseAll(ctx, files, cfg, &ld.Loader, func(r fileio.LineReader, recno int) {
		ld.startFile(r.Name(), recno)
	})
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
