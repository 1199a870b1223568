package engine

import (
	"fastx/internal/matchbuf"
	"fastx/internal/pattern"
)

type Config struct {
	MaxMM int // mismatches allowed per hit
	// Terminal bases at the 3' end of a pattern must match exactly. On
	// minus-strand probes they sit at the left end.
	Terminal int
}

type Engine struct {
	cfg    Config
	probes []pattern.Probe
	nodes  []node // Aho–Corasick automaton; nil unless every probe is exact
	maxLen int
}

// New prepares probes for scanning. Probe i reports into pair i.
// When no mismatches are allowed and every probe is unambiguous, all probes
// are scanned in one pass with an Aho–Corasick automaton.
func New(c Config, probes []pattern.Probe) *Engine {
	e := &Engine{cfg: c, probes: probes}
	exact := c.MaxMM == 0
	for _, p := range probes {
		if len(p.Seq) > e.maxLen {
			e.maxLen = len(p.Seq)
		}
		exact = exact && pattern.Unambiguous(p.Seq)
	}
	if exact && len(probes) > 0 {
		pats := make([][]byte, len(probes))
		for i, p := range probes {
			pats[i] = make([]byte, len(p.Seq))
			for j, b := range p.Seq {
				pats[i][j] = upper[b]
			}
		}
		e.nodes = buildAC(pats)
	}
	return e
}

// NPairs is the number of probes, i.e. the pair cardinality of the buffers
// Scan reports into.
func (e *Engine) NPairs() int { return len(e.probes) }

// MaxLen is the longest probe length. Chunks of a subject must overlap by
// MaxLen-1 bases for no hit to be lost.
func (e *Engine) MaxLen() int { return e.maxLen }

// Exact reports whether the Aho–Corasick path is used.
func (e *Engine) Exact() bool { return e.nodes != nil }

func (e *Engine) window(p pattern.Probe) pattern.Window {
	if p.Strand == pattern.Minus {
		return pattern.Window{Left: e.cfg.Terminal}
	}
	return pattern.Window{Right: e.cfg.Terminal}
}

// Scan reports into buf every probe hit in subject whose 0-based start is
// below limit (limit < 0 = anywhere). Reported starts are 1-based and
// shifted by shift; the width is the probe length.
func (e *Engine) Scan(subject []byte, limit, shift int, buf *matchbuf.Buffer) {
	if e.nodes != nil {
		scanAC(subject, e.nodes, func(end, idx int) {
			n := len(e.probes[idx].Seq)
			start := end - n + 1
			if limit < 0 || start < limit {
				buf.Reporter(idx, shift).Report(start+1, n)
			}
		})
		return
	}
	for idx, p := range e.probes {
		n := len(p.Seq)
		if n == 0 || len(subject) < n {
			continue
		}
		last := len(subject) - n
		if limit >= 0 && limit-1 < last {
			last = limit - 1
		}
		rep := buf.Reporter(idx, shift)
		w := e.window(p)
		for pos := 0; pos <= last; pos++ {
			if _, ok := pattern.MatchAt(subject, pos, p.Seq, e.cfg.MaxMM, w); ok {
				rep.Report(pos+1, n)
			}
		}
	}
}
