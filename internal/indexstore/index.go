package indexstore

import (
	"context"

	"github.com/go-logr/logr"

	"fastx/internal/fasta"
	"fastx/internal/fileio"
)

// BuildIndex is fasta.BuildIndex with a cache. Every file is indexed in
// full (descriptions kept) or taken from the store, then cfg.Skip and
// cfg.Limit are applied to the concatenation. Inputs that cannot be stamped,
// such as STDIN, are indexed without caching. alphabet names cfg.Lookup.
// onFile, if not nil, is called after each file as in fasta.IndexOptions.
func (s *Store) BuildIndex(ctx context.Context, files []fileio.LineReader, alphabet string, cfg fasta.Config, onFile func(name string, n int)) (fasta.Index, []fileio.Warning, error) {
	log := logr.FromContextOrDiscard(ctx)
	full := cfg
	full.Skip, full.Limit = 0, fasta.NoLimit
	key := Key{Alphabet: alphabet, SeekFirstRecord: cfg.SeekFirstRecord}

	var (
		all   fasta.Index
		warns []fileio.Warning
	)
	for i, f := range files {
		stamp, serr := StampFile(f.Name())
		cacheable := serr == nil

		var (
			entries []fasta.IndexEntry
			invalid int64
			hit     bool
		)
		if cacheable {
			var err error
			entries, invalid, hit, err = s.Get(f.Name(), key, stamp)
			if err != nil {
				return nil, warns, err
			}
		}
		if !hit {
			ix, w, err := fasta.BuildIndex(ctx, []fileio.LineReader{f}, full, fasta.IndexOptions{KeepDesc: true})
			if err != nil {
				return nil, warns, err
			}
			entries, invalid = ix, 0
			for _, x := range w {
				invalid += x.Invalid
			}
			if cacheable {
				if err := s.Put(f.Name(), key, stamp, invalid, entries); err != nil {
					return nil, warns, err
				}
			}
		}
		log.V(1).Info("FASTA index", "file", f.Name(), "records", len(entries), "cached", hit)
		if onFile != nil {
			onFile(f.Name(), len(entries))
		}

		for _, e := range entries {
			e.FileNo = i + 1
			all = append(all, e)
		}
		if invalid > 0 {
			warns = append(warns, fileio.Warning{Format: "FASTA", File: f.Name(), Invalid: invalid})
		}
	}

	lo := min(cfg.Skip, len(all))
	hi := len(all)
	if cfg.Limit > 0 {
		hi = min(lo+cfg.Limit, hi)
	}
	return all[lo:hi], warns, nil
}
