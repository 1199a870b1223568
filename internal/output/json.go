// internal/output/json.go
package output

import (
	"io"

	"fastx/internal/fasta"
	"fastx/internal/jsonutil"
	"fastx/internal/matchbuf"
	"fastx/internal/pattern"
	"fastx/pkg/api"
)

// Subject identifies the scanned sequence a buffer belongs to.
type Subject struct {
	File   string
	RecNo  int
	ID     string
	Length int
}

// Records converts a merged match buffer to wire records, one per probe
// with at least one match, in probe order. probes[i] is the probe of pair i
// and names a pattern in patterns. A None buffer yields nothing.
func Records(s Subject, buf *matchbuf.Buffer, patterns []pattern.Pattern, probes []pattern.Probe) []api.MatchRecordV1 {
	if buf.Mode() == matchbuf.None {
		return nil
	}
	res := buf.Result()
	ids := buf.Which()
	out := make([]api.MatchRecordV1, 0, len(ids))
	for _, id := range ids {
		pr := probes[id]
		r := api.MatchRecordV1{
			SourceFile: s.File,
			RecNo:      s.RecNo,
			SequenceID: s.ID,
			Length:     s.Length,
			Pattern:    patterns[pr.Pattern].ID,
			Strand:     string(pr.Strand),
			Count:      buf.Count(id),
		}
		if res.Starts != nil {
			r.Starts = res.Starts[id]
		}
		if res.Ends != nil {
			r.Ends = res.Ends[id]
		}
		if res.Widths != nil {
			r.Widths = res.Widths[id]
		}
		out = append(out, r)
	}
	return out
}

// WriteJSON writes a single JSON array of v1 match records (pretty-indented).
func WriteJSON(w io.Writer, list []api.MatchRecordV1) error {
	if list == nil {
		list = []api.MatchRecordV1{}
	}
	return jsonutil.EncodePretty(w, list)
}

// ToAPIIndex converts index entries to the wire schema.
func ToAPIIndex(ix fasta.Index) []api.IndexEntryV1 {
	out := make([]api.IndexEntryV1, 0, len(ix))
	for _, e := range ix {
		out = append(out, api.IndexEntryV1{RecNo: e.RecNo, FileNo: e.FileNo, Offset: e.Offset, Desc: e.Desc, SeqLength: e.SeqLength})
	}
	return out
}

// WriteIndexJSON writes an index as one JSON array.
func WriteIndexJSON(w io.Writer, ix fasta.Index) error {
	return jsonutil.EncodePretty(w, ToAPIIndex(ix))
}
