package fasta

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"

	"fastx/internal/fileio"
	"fastx/internal/lkup"
	"fastx/internal/seqset"
)

// Index lists the loaded records of one or more files, in input order.
type Index []IndexEntry

// SeqLengths returns the sequence length of every entry.
func (ix Index) SeqLengths() []int {
	out := make([]int, len(ix))
	for i, e := range ix {
		out[i] = e.SeqLength
	}
	return out
}

// Descs returns the description of every entry.
func (ix Index) Descs() []string {
	out := make([]string, len(ix))
	for i, e := range ix {
		out[i] = e.Desc
	}
	return out
}

// Block is a run of consecutive records starting at Offset.
type Block struct {
	NRec   int
	Offset int64
}

// Blocks groups the entries into runs of consecutive records, per file.
// The result has nfiles elements; files without entries get none.
func (ix Index) Blocks(nfiles int) [][]Block {
	out := make([][]Block, nfiles)
	prev := IndexEntry{}
	for _, e := range ix {
		bs := out[e.FileNo-1]
		if len(bs) > 0 && prev.FileNo == e.FileNo && e.RecNo == prev.RecNo+1 {
			bs[len(bs)-1].NRec++
		} else {
			out[e.FileNo-1] = append(bs, Block{NRec: 1, Offset: e.Offset})
		}
		prev = e
	}
	return out
}

// IndexOptions tunes BuildIndex.
type IndexOptions struct {
	KeepDesc bool
	// OnFile, if set, is called after each file with its name and the
	// number of entries it contributed.
	OnFile func(name string, n int)
}

// BuildIndex parses files in order as one stream, so cfg.Skip and
// cfg.Limit count records across file boundaries. Each reader is rewound
// first. A file that had invalid sequence bytes dropped yields a Warning.
func BuildIndex(ctx context.Context, files []fileio.LineReader, cfg Config, opt IndexOptions) (Index, []fileio.Warning, error) {
	log := logr.FromContextOrDiscard(ctx)
	ld := NewIndexLoader(opt.KeepDesc)
	var (
		pos   Position
		warns []fileio.Warning
	)
	for i, r := range files {
		if err := ctx.Err(); err != nil {
			return nil, warns, err
		}
		if err := r.Rewind(); err != nil {
			return nil, warns, fmt.Errorf("reading FASTA file %s: %w", r.Name(), err)
		}
		before := len(ld.Entries)
		ld.startFile(i+1, pos.RecNo)
		pos.Offset, pos.Invalid = 0, 0
		if err := Parse(r, cfg, &ld.Loader, &pos); err != nil {
			return nil, warns, err
		}
		if pos.Invalid != 0 {
			warns = append(warns, fileio.Warning{Format: format, File: r.Name(), Invalid: pos.Invalid})
		}
		n := len(ld.Entries) - before
		log.V(1).Info("indexed FASTA file", "file", r.Name(), "records", n, "bytes", pos.Offset)
		if opt.OnFile != nil {
			opt.OnFile(r.Name(), n)
		}
	}
	return ld.Entries, warns, nil
}

// ReadBlocks seeks to each block of each file and loads exactly its
// records into ld. blocks[i] belongs to files[i]; offsets may go backward.
func ReadBlocks(ctx context.Context, files []fileio.LineReader, blocks [][]Block, lookup *lkup.Table, ld *Loader) error {
	if len(blocks) != len(files) {
		return fmt.Errorf("fasta: %d block lists for %d files", len(blocks), len(files))
	}
	log := logr.FromContextOrDiscard(ctx)
	for i, r := range files {
		for _, b := range blocks[i] {
			if b.NRec <= 0 {
				continue
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := r.Seek(b.Offset); err != nil {
				return fmt.Errorf("reading FASTA file %s: %w", r.Name(), err)
			}
			log.V(2).Info("reading FASTA block", "file", r.Name(), "offset", b.Offset, "records", b.NRec)
			pos := Position{Offset: b.Offset}
			if err := Parse(r, Config{Lookup: lookup, Limit: b.NRec}, ld, &pos); err != nil {
				return err
			}
		}
	}
	return nil
}

// ReadSet loads the selected records of files into a named set. It indexes
// first, then reads the sequence bytes back with LoadSet.
func ReadSet(ctx context.Context, files []fileio.LineReader, cfg Config) (*seqset.Set, []fileio.Warning, error) {
	ix, warns, err := BuildIndex(ctx, files, cfg, IndexOptions{KeepDesc: true})
	if err != nil {
		return nil, warns, err
	}
	set, err := LoadSet(ctx, files, ix, cfg.Lookup)
	return set, warns, err
}

// LoadSet allocates a set from the lengths in ix, names it by description
// and fills it block by block. ix must have been built over files.
func LoadSet(ctx context.Context, files []fileio.LineReader, ix Index, lookup *lkup.Table) (*seqset.Set, error) {
	set := seqset.Alloc(ix.SeqLengths())
	set.Names = ix.Descs()
	ld := NewSequenceLoader(set)
	if err := ReadBlocks(ctx, files, ix.Blocks(len(files)), lookup, &ld.Loader); err != nil {
		return nil, err
	}
	if ld.NRec() != set.Len() {
		return nil, fmt.Errorf("fasta: loaded %d of %d indexed records", ld.NRec(), set.Len())
	}
	return set, nil
}

// SeqLengths returns the sequence length of every selected record without
// keeping any sequence bytes.
func SeqLengths(ctx context.Context, files []fileio.LineReader, cfg Config) ([]int, []fileio.Warning, error) {
	ld := NewSeqLengthLoader()
	var (
		pos   Position
		warns []fileio.Warning
	)
	for _, r := range files {
		if err := ctx.Err(); err != nil {
			return nil, warns, err
		}
		pos.Offset, pos.Invalid = 0, 0
		if err := Parse(r, cfg, &ld.Loader, &pos); err != nil {
			return nil, warns, err
		}
		if pos.Invalid != 0 {
			warns = append(warns, fileio.Warning{Format: format, File: r.Name(), Invalid: pos.Invalid})
		}
	}
	return ld.Lengths, warns, nil
}
