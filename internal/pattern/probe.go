// internal/pattern/probe.go
package pattern

// Strand of a probe relative to its pattern.
const (
	Plus  = '+'
	Minus = '-'
)

// Pattern is a named query sequence.
type Pattern struct {
	ID  string
	Seq []byte
}

// Probe is one oriented pattern. Its index in a probe list is the pair id
// reported into match buffers.
type Probe struct {
	Pattern int  // index into the pattern list
	Strand  byte // Plus or Minus
	Seq     []byte
}

// Probes expands patterns into probes: every pattern on the plus strand,
// followed by its reverse complement when bothStrands is set.
func Probes(patterns []Pattern, bothStrands bool) []Probe {
	out := make([]Probe, 0, 2*len(patterns))
	for i, p := range patterns {
		out = append(out, Probe{Pattern: i, Strand: Plus, Seq: p.Seq})
		if bothStrands {
			out = append(out, Probe{Pattern: i, Strand: Minus, Seq: RevComp(p.Seq)})
		}
	}
	return out
}
