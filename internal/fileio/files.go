package fileio

import (
	"errors"
	"fmt"
)

// Files is a list of opened inputs processed as one logical stream.
type Files []*File

// OpenAll opens every path. On failure the files opened so far are closed.
func OpenAll(paths []string) (Files, error) {
	fs := make(Files, 0, len(paths))
	for _, p := range paths {
		f, err := Open(p)
		if err != nil {
			_ = fs.Close()
			return nil, fmt.Errorf("open %s: %w", p, err)
		}
		fs = append(fs, f)
	}
	return fs, nil
}

// Readers returns fs as LineReaders.
func (fs Files) Readers() []LineReader {
	out := make([]LineReader, len(fs))
	for i, f := range fs {
		out[i] = f
	}
	return out
}

// Close closes every file and joins the errors.
func (fs Files) Close() error {
	var errs []error
	for _, f := range fs {
		if err := f.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
