// Package matchbuf accumulates the matches reported by a scan of one subject
// against a fixed set of patterns (pattern/subject pairs, "pairs" below).
//
// What is kept per pair depends on the Mode chosen at construction: only
// whether it matched, how many times, or every match position. Buffers of
// the same shape can be merged, which is how partial scans of a subject
// (chunks, worker results) are combined.
//
// A Buffer is not safe for concurrent use.
package matchbuf

import (
	"fmt"
	"sort"
	"strings"
)

// Mode selects what a Buffer stores and renders.
type Mode int

const (
	None   Mode = iota // counts are kept but nothing is rendered
	Which              // ids of the pairs that matched
	Counts             // match count per pair
	Starts             // start of every match, per pair
	Ends               // end (start+width-1) of every match, per pair
	Ranges             // start and width of every match, per pair
)

var modeNames = [...]string{"none", "which", "counts", "starts", "ends", "ranges"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode resolves a mode name, case-insensitively.
func ParseMode(s string) (Mode, error) {
	for i, n := range modeNames {
		if strings.EqualFold(s, n) {
			return Mode(i), nil
		}
	}
	return None, fmt.Errorf("unknown match mode %q (want %s)", s, strings.Join(modeNames[:], " | "))
}

// positional reports whether m keeps match positions.
func (m Mode) positional() bool { return m >= Starts && m <= Ranges }

type positions struct {
	starts [][]int
	widths [][]int
}

// Buffer is a match accumulator over a fixed number of pairs.
//
// Invariant: a pair id is in touched iff its count is non-zero, and touched
// lists ids in first-report order.
type Buffer struct {
	mode    Mode
	counts  []int
	touched []int
	pos     *positions // nil unless mode.positional()
}

// New returns an empty buffer for nPairs pairs. It panics on an unknown
// mode or a negative pair count.
func New(mode Mode, nPairs int) *Buffer {
	if mode < None || mode > Ranges {
		panic(fmt.Sprintf("matchbuf: unsupported mode %d", int(mode)))
	}
	if nPairs < 0 {
		panic(fmt.Sprintf("matchbuf: negative pair count %d", nPairs))
	}
	b := &Buffer{mode: mode, counts: make([]int, nPairs)}
	if mode.positional() {
		b.pos = &positions{
			starts: make([][]int, nPairs),
			widths: make([][]int, nPairs),
		}
	}
	return b
}

func (b *Buffer) Mode() Mode { return b.mode }

// NPairs is the pair cardinality the buffer was built for.
func (b *Buffer) NPairs() int { return len(b.counts) }

// Report records one match of pair id.
func (b *Buffer) Report(id, start, width int) {
	if b.counts[id] == 0 {
		b.touched = append(b.touched, id)
	}
	b.counts[id]++
	if b.pos != nil {
		b.pos.starts[id] = append(b.pos.starts[id], start)
		b.pos.widths[id] = append(b.pos.widths[id], width)
	}
}

// Flush empties the buffer. Only touched pairs are visited, so the cost
// does not depend on the pair count.
func (b *Buffer) Flush() {
	for _, id := range b.touched {
		b.counts[id] = 0
		if b.pos != nil {
			b.pos.starts[id] = b.pos.starts[id][:0]
			b.pos.widths[id] = b.pos.widths[id][:0]
		}
	}
	b.touched = b.touched[:0]
}

// AppendAndFlush moves every match of other into b, shifting start
// positions by shift, then flushes other. It does nothing when either
// buffer is in None mode and panics when the buffers differ in mode or
// pair count.
func (b *Buffer) AppendAndFlush(other *Buffer, shift int) {
	if b.mode == None || other.mode == None {
		return
	}
	if b.mode != other.mode || len(b.counts) != len(other.counts) {
		panic(fmt.Sprintf("matchbuf: incompatible buffers (%s/%d vs %s/%d)",
			b.mode, len(b.counts), other.mode, len(other.counts)))
	}
	for _, id := range other.touched {
		if b.counts[id] == 0 {
			b.touched = append(b.touched, id)
		}
		b.counts[id] += other.counts[id]
		if b.pos != nil {
			for _, s := range other.pos.starts[id] {
				b.pos.starts[id] = append(b.pos.starts[id], s+shift)
			}
			b.pos.widths[id] = append(b.pos.widths[id], other.pos.widths[id]...)
		}
	}
	other.Flush()
}

// Count is the number of matches reported for pair id.
func (b *Buffer) Count(id int) int { return b.counts[id] }

// Empty reports whether nothing has been reported since the last flush.
func (b *Buffer) Empty() bool { return len(b.touched) == 0 }

// Which returns the ids of the pairs with at least one match, ascending.
func (b *Buffer) Which() []int {
	out := append([]int(nil), b.touched...)
	sort.Ints(out)
	return out
}

// Match is one reported occurrence.
type Match struct {
	Start int
	Width int
}

// End is the last position covered by the match.
func (m Match) End() int { return m.Start + m.Width - 1 }

// Matches returns the matches of pair id in report order, or nil when the
// mode keeps no positions.
func (b *Buffer) Matches(id int) []Match {
	if b.pos == nil || b.counts[id] == 0 {
		return nil
	}
	starts, widths := b.pos.starts[id], b.pos.widths[id]
	out := make([]Match, len(starts))
	for i := range starts {
		out[i] = Match{Start: starts[i], Width: widths[i]}
	}
	return out
}

// Result is a rendered copy of a buffer. Only the fields of its Mode are
// set; per-pair slices have one element per pair.
type Result struct {
	Mode   Mode
	Which  []int
	Counts []int
	Starts [][]int
	Ends   [][]int
	Widths [][]int
}

// Result renders the buffer according to its mode. The buffer is left
// untouched.
func (b *Buffer) Result() Result {
	r := Result{Mode: b.mode}
	switch b.mode {
	case Which:
		r.Which = b.Which()
	case Counts:
		r.Counts = append([]int(nil), b.counts...)
	case Starts:
		r.Starts = copyLists(b.pos.starts, 0, nil)
	case Ends:
		r.Ends = copyLists(b.pos.starts, -1, b.pos.widths)
	case Ranges:
		r.Starts = copyLists(b.pos.starts, 0, nil)
		r.Widths = copyLists(b.pos.widths, 0, nil)
	}
	return r
}

// copyLists copies src, adding add and the matching element of plus (if
// non-nil) to every value.
func copyLists(src [][]int, add int, plus [][]int) [][]int {
	out := make([][]int, len(src))
	for i, l := range src {
		if len(l) == 0 {
			continue
		}
		c := make([]int, len(l))
		for j, v := range l {
			c[j] = v + add
			if plus != nil {
				c[j] += plus[i][j]
			}
		}
		out[i] = c
	}
	return out
}

// Reporter reports matches of one pair into a buffer, shifting starts by a
// fixed offset.
type Reporter struct {
	buf   *Buffer
	pair  int
	shift int
}

// Reporter returns a Reporter for pair id with the given start shift.
func (b *Buffer) Reporter(pair, shift int) Reporter {
	return Reporter{buf: b, pair: pair, shift: shift}
}

// Report records a match at start (before shifting) of the given width.
func (r Reporter) Report(start, width int) {
	r.buf.Report(r.pair, start+r.shift, width)
}

// Pair is the pair id the reporter writes to.
func (r Reporter) Pair() int { return r.pair }
