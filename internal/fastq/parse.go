// Package fastq parses and writes FASTQ files.
//
// A record is four non-empty lines: "@id", the sequence, "+" optionally
// followed by the id again, and a quality string as long as the sequence.
// Empty lines between or inside records are ignored and lines may not wrap.
package fastq

import (
	"bytes"
	"fmt"
	"io"

	"fastx/internal/fileio"
	"fastx/internal/lkup"
)

const (
	SeqIDMarker  = '@'
	QualIDMarker = '+'

	// NoLimit loads every record after the skipped ones.
	NoLimit = 0

	format = "FASTQ"
)

// Config is the per-invocation parser setup.
type Config struct {
	Lookup          *lkup.Table // applied to sequence lines only
	Skip            int
	Limit           int  // NoLimit = all
	SeekFirstRecord bool // discard input up to the first '@' line
	// CheckQualityID rejects a '+' line whose id is neither empty nor equal
	// to the '@' line's id.
	CheckQualityID bool
}

// Position is the parser cursor; see fasta.Position.
type Position struct {
	RecNo   int
	Offset  int64
	Invalid int64
}

// Loader receives parse events for loaded records. Each hook is optional
// and receives slices that are only valid during the call. When a lookup
// table drops sequence bytes, the quality bytes at the same positions are
// dropped too.
type Loader struct {
	LoadSeqID func(id []byte)
	LoadSeq   func(seq []byte)
	LoadQual  func(qual []byte)

	nrec int
	err  error
}

// NRec is the number of complete records loaded so far.
func (l *Loader) NRec() int { return l.nrec }

// Stop makes the running parse return err at the next event boundary.
func (l *Loader) Stop(err error) {
	if l.err == nil {
		l.err = err
	}
}

// Parse reads FASTQ records from r and drives ld, which may be nil.
func Parse(r fileio.LineReader, cfg Config, ld *Loader, pos *Position) error {
	var (
		buf     = make([]byte, fileio.BufSize)
		seek    = cfg.SeekFirstRecord
		lineno  = 1
		prevEOL = true
		phase   = 0 // line within record, 1..4
		load    bool
		seqLen  int
		seqID   []byte
		dropped []int // invalid positions of the current sequence line
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
		pos.Offset += int64(ln.Raw)

		data := ln.Data
		if seek {
			if !atStart || len(data) == 0 || data[0] != SeqIDMarker {
				continue
			}
			seek = false
		}
		if !ln.Complete {
			return fileio.Errorf(format, r.Name(), cur, fileio.ErrLineTooLong,
				"cannot read line %d, line is too long", cur)
		}
		if len(data) == 0 {
			continue
		}

		phase = phase%4 + 1
		switch phase {
		case 1:
			if data[0] != SeqIDMarker {
				return fileio.Errorf(format, r.Name(), cur, fileio.ErrMarkerExpected,
					"%q expected at beginning of line %d", string(SeqIDMarker), cur)
			}
			load = pos.RecNo >= cfg.Skip
			if load && cfg.Limit > 0 && pos.RecNo >= cfg.Skip+cfg.Limit {
				return nil
			}
			load = load && ld != nil
			if cfg.CheckQualityID {
				seqID = append(seqID[:0], data[1:]...)
			}
			if load && ld.LoadSeqID != nil {
				ld.LoadSeqID(data[1:])
			}
		case 2:
			seqLen = len(data)
			dropped = dropped[:0]
			if !load {
				break
			}
			if cfg.Lookup != nil {
				for i, b := range data {
					if _, ok := cfg.Lookup.Lookup(b); !ok {
						dropped = append(dropped, i)
					}
				}
				pos.Invalid += int64(len(dropped))
				n, _ := cfg.Lookup.Translate(data, data)
				data = data[:n]
			}
			if ld.LoadSeq != nil {
				ld.LoadSeq(data)
			}
		case 3:
			if data[0] != QualIDMarker {
				return fileio.Errorf(format, r.Name(), cur, fileio.ErrMarkerExpected,
					"%q expected at beginning of line %d", string(QualIDMarker), cur)
			}
			if cfg.CheckQualityID && len(data) > 1 && !bytes.Equal(data[1:], seqID) {
				return fileio.Errorf(format, r.Name(), cur, fileio.ErrQualityID,
					"id at line %d differs from the id of the corresponding sequence", cur)
			}
		case 4:
			if load {
				if len(data) != seqLen {
					return fileio.Errorf(format, r.Name(), cur, fileio.ErrQualityLength,
						"length of quality string at line %d differs from length of corresponding sequence", cur)
				}
				if ld.LoadQual != nil {
					ld.LoadQual(dropAt(data, dropped))
				}
				ld.nrec++
			}
			pos.RecNo++
		}
		if load && ld.err != nil {
			return ld.err
		}
	}
	if seek {
		return fileio.Errorf(format, r.Name(), 0, fileio.ErrNoRecord, "no FASTQ record found")
	}
	if phase != 0 && phase != 4 {
		return fileio.Errorf(format, r.Name(), lineno-1, fileio.ErrTruncatedRecord,
			"record %d ends after %d of 4 lines", pos.RecNo+1, phase)
	}
	return nil
}

// dropAt removes the bytes at the ascending positions idx, in place.
func dropAt(b []byte, idx []int) []byte {
	if len(idx) == 0 {
		return b
	}
	n, j := 0, 0
	for i, c := range b {
		if j < len(idx) && idx[j] == i {
			j++
			continue
		}
		b[n] = c
		n++
	}
	return b[:n]
}
