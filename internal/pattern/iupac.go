// internal/pattern/iupac.go
package pattern

// Bit per unambiguous base: A=1 C=2 G=4 T=8.
var iupacMask = func() (m [256]uint8) {
	set := func(c byte, v uint8) {
		m[c] = v
		m[c+'a'-'A'] = v
	}
	set('A', 1)
	set('C', 2)
	set('G', 4)
	set('T', 8)
	set('U', 8)
	set('R', 1|4)
	set('Y', 2|8)
	set('S', 2|4)
	set('W', 1|8)
	set('K', 4|8)
	set('M', 1|2)
	set('B', 2|4|8)
	set('D', 1|4|8)
	set('H', 1|2|8)
	set('V', 1|2|4)
	set('N', 1|2|4|8)
	return m
}()

// BaseMatch reports whether subject base g is allowed by pattern code p.
// Both may be IUPAC codes; they match when their base sets intersect.
// Example: BaseMatch('G','R') == true because R = {A,G}
func BaseMatch(g, p byte) bool {
	return iupacMask[g]&iupacMask[p] != 0
}

// Unambiguous reports whether every byte of s is one of A, C, G, T.
func Unambiguous(s []byte) bool {
	for _, c := range s {
		switch iupacMask[c] {
		case 1, 2, 4, 8:
		default:
			return false
		}
	}
	return true
}
