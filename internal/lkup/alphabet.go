package lkup

import (
	"fmt"
	"strings"
)

/* ------------------------------ alphabets ------------------------------ */

const (
	dnaLetters = "ACGTMRWSYKVHDBN-+."
	rnaLetters = "ACGUMRWSYKVHDBN-+."
	aaLetters  = "ACDEFGHIKLMNPQRSTVWYUOBJZX*-+."
)

// caseFolded accepts upper and lower case letters and emits upper case.
func caseFolded(letters string) *Table {
	t := Empty()
	for i := 0; i < len(letters); i++ {
		c := letters[i]
		t[c] = int16(c)
		if c >= 'A' && c <= 'Z' {
			t[c+'a'-'A'] = int16(c)
		}
	}
	return t
}

// DNA accepts IUPAC nucleotide codes (either case) plus '-', '+' and '.'.
func DNA() *Table { return caseFolded(dnaLetters) }

// RNA is DNA with U in place of T.
func RNA() *Table { return caseFolded(rnaLetters) }

// AA accepts one-letter amino acid codes plus '*', '-', '+' and '.'.
func AA() *Table { return caseFolded(aaLetters) }

// Complement maps IUPAC nucleotide codes to their complements. Unknown
// bytes are Invalid.
func Complement() *Table {
	t := Empty()
	set := func(a, b byte) {
		t[a], t[b] = int16(b), int16(a)
	}
	set('A', 'T')
	set('C', 'G')
	set('R', 'Y')
	set('K', 'M')
	set('B', 'V')
	set('D', 'H')
	for _, c := range []byte("SWN-+.") {
		t[c] = int16(c)
	}
	return t
}

// ByName resolves an alphabet name. "" and "none" mean no translation and
// yield a nil table.
func ByName(name string) (*Table, error) {
	switch strings.ToLower(name) {
	case "", "none":
		return nil, nil
	case "dna":
		return DNA(), nil
	case "rna":
		return RNA(), nil
	case "aa", "protein":
		return AA(), nil
	case "bytes":
		return Identity(), nil
	}
	return nil, fmt.Errorf("unknown alphabet %q (want dna | rna | aa | bytes | none)", name)
}
