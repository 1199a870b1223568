package pattern

// Match is one pattern occurrence in a subject.
type Match struct {
	Pos        int // 0-based
	Mismatches int
	Length     int
}

// Window protects pattern ends from mismatches: no mismatch is allowed in
// the first Left or the last Right positions.
type Window struct {
	Left, Right int
}

// MatchAt checks pat against seq at pos with IUPAC matching. maxMM < 0
// means unlimited mismatches.
func MatchAt(seq []byte, pos int, pat []byte, maxMM int, w Window) (Match, bool) {
	n := len(pat)
	if n == 0 || pos < 0 || pos+n > len(seq) {
		return Match{}, false
	}
	rightCut := n - w.Right
	mm := 0
	for j := 0; j < n; j++ {
		if BaseMatch(seq[pos+j], pat[j]) {
			continue
		}
		if j < w.Left || j >= rightCut {
			return Match{}, false
		}
		mm++
		if maxMM >= 0 && mm > maxMM {
			return Match{}, false
		}
	}
	return Match{Pos: pos, Mismatches: mm, Length: n}, true
}

// FindMatches returns every occurrence of pat in seq starting before limit
// (limit < 0 = anywhere). capHits == 0 means unlimited.
func FindMatches(seq, pat []byte, maxMM int, w Window, limit, capHits int) []Match {
	pl := len(pat)
	if pl == 0 || len(seq) < pl {
		return nil
	}
	end := len(seq) - pl
	if limit >= 0 && limit-1 < end {
		end = limit - 1
	}
	var out []Match
	for pos := 0; pos <= end; pos++ {
		m, ok := MatchAt(seq, pos, pat, maxMM, w)
		if !ok {
			continue
		}
		out = append(out, m)
		if capHits > 0 && len(out) >= capHits {
			break
		}
	}
	return out
}
