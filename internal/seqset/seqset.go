// Package seqset stores a collection of byte sequences back to back in one
// allocation, with optional names. It is the container parsers load into.
package seqset

import "fmt"

// Set is an indexed collection of sequences.
type Set struct {
	Names []string // nil when the set is unnamed

	data []byte
	ends []int // exclusive end of element i in data
}

// Alloc returns a zero-filled Set with one slot per width.
func Alloc(widths []int) *Set {
	ends := make([]int, len(widths))
	total := 0
	for i, w := range widths {
		if w < 0 {
			panic(fmt.Sprintf("seqset: negative width %d at %d", w, i))
		}
		total += w
		ends[i] = total
	}
	return &Set{data: make([]byte, total), ends: ends}
}

// New copies seqs into a Set. names may be nil.
func New(names []string, seqs ...[]byte) *Set {
	var b Builder
	for _, s := range seqs {
		b.Add(s)
	}
	set := b.Set()
	set.Names = names
	return set
}

// FromStrings is New for string sequences.
func FromStrings(names []string, seqs ...string) *Set {
	var b Builder
	for _, s := range seqs {
		b.AddString(s)
	}
	set := b.Set()
	set.Names = names
	return set
}

// Len is the number of elements.
func (s *Set) Len() int { return len(s.ends) }

func (s *Set) start(i int) int {
	if i == 0 {
		return 0
	}
	return s.ends[i-1]
}

// Width is the length of element i.
func (s *Set) Width(i int) int { return s.ends[i] - s.start(i) }

// Widths returns the length of every element.
func (s *Set) Widths() []int {
	out := make([]int, len(s.ends))
	for i := range s.ends {
		out[i] = s.Width(i)
	}
	return out
}

// At returns element i. The slice aliases the set and must not be modified.
func (s *Set) At(i int) []byte {
	return s.data[s.start(i):s.ends[i]:s.ends[i]]
}

// Slot returns the writable storage of element i.
func (s *Set) Slot(i int) []byte { return s.At(i) }

// Name returns the name of element i, if the set is named.
func (s *Set) Name(i int) (string, bool) {
	if s.Names == nil || i >= len(s.Names) {
		return "", false
	}
	return s.Names[i], true
}

// Builder grows a Set one element at a time. The zero value is ready.
type Builder struct {
	data []byte
	ends []int
}

// Add appends a copy of p as a new element.
func (b *Builder) Add(p []byte) {
	b.data = append(b.data, p...)
	b.ends = append(b.ends, len(b.data))
}

// AddString appends s as a new element.
func (b *Builder) AddString(s string) {
	b.data = append(b.data, s...)
	b.ends = append(b.ends, len(b.data))
}

// Len is the number of elements added so far.
func (b *Builder) Len() int { return len(b.ends) }

// Set returns the built set. The builder must not be reused.
func (b *Builder) Set() *Set {
	return &Set{data: b.data, ends: b.ends}
}
