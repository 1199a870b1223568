// internal/pipeline/sim.go
package pipeline

import (
	"context"

	"fastx/internal/fasta"
	"fastx/internal/fastq"
	"fastx/internal/fileio"
	"fastx/internal/matchbuf"
)

// Scanner is the minimal capability the pipeline needs.
// Any engine (including fakes in tests) can satisfy this.
type Scanner interface {
	NPairs() int
	MaxLen() int
	// Scan reports hits starting below limit into buf, shifted by shift.
	Scan(subject []byte, limit, shift int, buf *matchbuf.Buffer)
}

// Subject is one sequence to scan.
type Subject struct {
	File  string
	Index int // 0-based across inputs
	RecNo int // 1-based within File
	ID    string
	Seq   []byte
}

// Source streams subjects to emit, in order, and returns the translation
// warnings of its inputs.
type Source func(ctx context.Context, emit func(Subject) error) ([]fileio.Warning, error)

// FASTASource streams the records of FASTA files.
func FASTASource(paths []string, cfg fasta.Config) Source {
	return func(ctx context.Context, emit func(Subject) error) ([]fileio.Warning, error) {
		return fasta.StreamPaths(ctx, paths, cfg, func(r fasta.Record) error {
			return emit(Subject{File: r.File, Index: r.Index, RecNo: r.RecNo, ID: r.ID(), Seq: r.Seq})
		})
	}
}

// FASTQSource streams the records of FASTQ files.
func FASTQSource(paths []string, cfg fastq.Config) Source {
	return func(ctx context.Context, emit func(Subject) error) ([]fileio.Warning, error) {
		return fastq.StreamPaths(ctx, paths, cfg, func(r fastq.Record) error {
			return emit(Subject{File: r.File, Index: r.Index, RecNo: r.RecNo, ID: r.ID, Seq: r.Seq})
		})
	}
}
