// Package fasta parses and writes FASTA files.
//
// Parsing is a single pass over a fileio.LineReader with a fixed line
// buffer. The parser never builds records itself: it drives a Loader, whose
// hooks decide what gets materialized (an index, sequence lengths, full
// sequences, or a stream of records).
package fasta

import (
	"fmt"
	"io"

	"fastx/internal/fileio"
	"fastx/internal/lkup"
)

const (
	DescMarker    = '>'
	CommentMarker = ';'

	// NoLimit loads every record after the skipped ones.
	NoLimit = 0

	format = "FASTA"
)

// Config is the per-invocation parser setup.
type Config struct {
	Lookup          *lkup.Table // nil = bytes are loaded as read
	Skip            int         // records to skip before loading
	Limit           int         // records to load after Skip; NoLimit = all
	SeekFirstRecord bool        // discard input up to the first '>' line
}

// Position is the parser cursor. RecNo carries over between files so that
// Skip and Limit apply to the concatenation of the inputs; Offset and
// Invalid are per file and should be reset before parsing a new one.
type Position struct {
	RecNo   int   // logical records seen, loaded or not
	Offset  int64 // raw bytes consumed
	Invalid int64 // sequence bytes dropped by Lookup
}

// Loader receives parse events. Each hook is optional.
//
// Slices passed to hooks alias the parser's line buffer and are only valid
// for the duration of the call.
type Loader struct {
	// LoadDesc receives the description line without its marker, the
	// logical record number and the byte offset of the line.
	LoadDesc     func(recno int, offset int64, desc []byte)
	LoadEmptySeq func()
	LoadSeqData  func(data []byte)

	nrec int
	err  error
}

// NRec is the number of records loaded so far.
func (l *Loader) NRec() int { return l.nrec }

// Stop makes the running parse return err at the next event boundary.
func (l *Loader) Stop(err error) {
	if l.err == nil {
		l.err = err
	}
}

// Parse reads FASTA records from r and drives ld, which may be nil to only
// advance pos. Empty lines and ';' comment lines are ignored. Parsing stops
// without error at the first description line past Skip+Limit.
func Parse(r fileio.LineReader, cfg Config, ld *Loader, pos *Position) error {
	var (
		buf     = make([]byte, fileio.BufSize)
		seek    = cfg.SeekFirstRecord
		lineno  = 1
		prevEOL = true
		seen    bool // a description line was read
		load    bool // the current record is being loaded
	)
	for {
		ln, err := r.ReadLine(buf)
		if err == io.EOF {
			break
		}
		if err != nil {
			return fileio.Errorf(format, r.Name(), lineno, fmt.Errorf("%w: %w", fileio.ErrRead, err),
				"read error while reading characters from line %d", lineno)
		}
		cur, atStart := lineno, prevEOL
		if ln.Complete {
			lineno++
		}
		prevEOL = ln.Complete
		lineOffset := pos.Offset
		pos.Offset += int64(ln.Raw)

		data := ln.Data
		if seek {
			if !atStart || len(data) == 0 || data[0] != DescMarker {
				continue
			}
			seek = false
		}

		// A continuation of a truncated line is sequence data, whatever it
		// starts with.
		if atStart {
			if len(data) == 0 {
				continue
			}
			switch data[0] {
			case CommentMarker:
				if !ln.Complete {
					return fileio.Errorf(format, r.Name(), cur, fileio.ErrLineTooLong,
						"cannot read line %d, line is too long", cur)
				}
				continue
			case DescMarker:
				if !ln.Complete {
					return fileio.Errorf(format, r.Name(), cur, fileio.ErrLineTooLong,
						"cannot read line %d, line is too long", cur)
				}
				seen = true
				load = pos.RecNo >= cfg.Skip
				if load && cfg.Limit > 0 && pos.RecNo >= cfg.Skip+cfg.Limit {
					return nil
				}
				load = load && ld != nil
				if load {
					if ld.LoadDesc != nil {
						ld.LoadDesc(pos.RecNo, lineOffset, data[1:])
					}
					if ld.LoadEmptySeq != nil {
						ld.LoadEmptySeq()
					}
					ld.nrec++
					if ld.err != nil {
						return ld.err
					}
				}
				pos.RecNo++
				continue
			}
			if !seen {
				return fileio.Errorf(format, r.Name(), cur, fileio.ErrMarkerExpected,
					"%q expected at beginning of line %d", string(DescMarker), cur)
			}
		}

		if load && ld.LoadSeqData != nil {
			if cfg.Lookup != nil {
				n, bad := cfg.Lookup.Translate(data, data)
				data = data[:n]
				pos.Invalid += int64(bad)
			}
			ld.LoadSeqData(data)
			if ld.err != nil {
				return ld.err
			}
		}
	}
	if seek {
		return fileio.Errorf(format, r.Name(), 0, fileio.ErrNoRecord, "no FASTA record found")
	}
	return nil
}
