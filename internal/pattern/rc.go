// internal/pattern/rc.go
package pattern

import "fastx/internal/lkup"

var complement = lkup.Complement()

// RevComp returns the reverse complement of seq. Bytes without a
// complement become 'N'.
func RevComp(seq []byte) []byte {
	n := len(seq)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		if c, ok := complement.Lookup(seq[n-1-i]); ok {
			out[i] = c
		} else {
			out[i] = 'N'
		}
	}
	return out
}
