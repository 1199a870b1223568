// internal/pattern/loader.go
package pattern

import (
	"context"
	"errors"
	"fmt"

	"fastx/internal/fasta"
	"fastx/internal/fileio"
	"fastx/internal/lkup"
)

// Load reads patterns from a FASTA file ("-" = STDIN). Sequences are
// upper-cased through the DNA table; a pattern that loses bytes to
// translation, or ends up empty, is an error.
func Load(ctx context.Context, path string) ([]Pattern, error) {
	f, err := fileio.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var list []Pattern
	warns, err := fasta.Stream(ctx, []fileio.LineReader{f}, fasta.Config{Lookup: lkup.DNA()}, func(r fasta.Record) error {
		id := r.ID()
		if id == "" {
			id = fmt.Sprintf("pattern%d", r.Index+1)
		}
		if len(r.Seq) == 0 {
			return fmt.Errorf("%s: pattern %q is empty", path, id)
		}
		list = append(list, Pattern{ID: id, Seq: r.Seq})
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(warns) > 0 {
		return nil, fmt.Errorf("%s: patterns contain %d non-IUPAC bytes", path, warns[0].Invalid)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%s: no patterns", path)
	}
	return list, nil
}

// Parse builds patterns from inline sequences, named pattern1, pattern2, ...
// in order. Non-IUPAC bytes are an error.
func Parse(seqs []string) ([]Pattern, error) {
	tbl := lkup.DNA()
	list := make([]Pattern, 0, len(seqs))
	for i, s := range seqs {
		dst := make([]byte, len(s))
		n, invalid := tbl.Translate(dst, []byte(s))
		if invalid > 0 {
			return nil, fmt.Errorf("pattern %q: %d non-IUPAC bytes", s, invalid)
		}
		if n == 0 {
			return nil, fmt.Errorf("pattern %d is empty", i+1)
		}
		list = append(list, Pattern{ID: fmt.Sprintf("pattern%d", i+1), Seq: dst[:n]})
	}
	if len(list) == 0 {
		return nil, errors.New("no patterns")
	}
	return list, nil
}
