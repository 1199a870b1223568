// Package lkup holds 256-entry byte translation tables applied to sequence
// data on read and write.
package lkup

import "fmt"

// Invalid marks a byte with no translation.
const Invalid = -1

// Table maps an input byte to an output byte, or Invalid.
type Table [256]int16

// Empty returns a table where every byte is Invalid.
func Empty() *Table {
	var t Table
	for i := range t {
		t[i] = Invalid
	}
	return &t
}

// Identity returns a table mapping every byte to itself.
func Identity() *Table {
	var t Table
	for i := range t {
		t[i] = int16(i)
	}
	return &t
}

// FromPairs maps in[i] to out[i]. All other bytes are Invalid.
func FromPairs(in, out string) (*Table, error) {
	if len(in) != len(out) {
		return nil, fmt.Errorf("lkup: %d keys but %d values", len(in), len(out))
	}
	t := Empty()
	for i := 0; i < len(in); i++ {
		t[in[i]] = int16(out[i])
	}
	return t, nil
}

// Lookup returns the translation of b.
func (t *Table) Lookup(b byte) (byte, bool) {
	v := t[b]
	if v == Invalid {
		return 0, false
	}
	return byte(v), true
}

// Translate writes the translation of src into dst, dropping invalid bytes.
// dst may alias src. It returns the number of bytes written and the number
// of invalid bytes dropped.
func (t *Table) Translate(dst, src []byte) (n, invalid int) {
	for _, b := range src {
		v := t[b]
		if v == Invalid {
			invalid++
			continue
		}
		dst[n] = byte(v)
		n++
	}
	return n, invalid
}

// Inverse returns the table mapping outputs back to inputs. When several
// inputs share an output the smallest input wins.
func (t *Table) Inverse() *Table {
	inv := Empty()
	for i := len(t) - 1; i >= 0; i-- {
		if v := t[i]; v != Invalid {
			inv[v] = int16(i)
		}
	}
	return inv
}
