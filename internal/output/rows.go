// internal/output/rows.go
package output

import (
	"fmt"
	"strconv"
	"strings"

	"fastx/internal/fasta"
	"fastx/pkg/api"
)

func IntsCSV(a []int) string {
	if len(a) == 0 {
		return ""
	}
	ss := make([]string, len(a))
	for i, v := range a {
		ss[i] = strconv.Itoa(v)
	}
	return strings.Join(ss, ",")
}

// ends derives match ends from whatever positions r carries.
func ends(r api.MatchRecordV1) []int {
	if len(r.Ends) > 0 || len(r.Widths) == 0 {
		return r.Ends
	}
	out := make([]int, len(r.Starts))
	for i, s := range r.Starts {
		out[i] = s + r.Widths[i] - 1
	}
	return out
}

// FormatMatchRowTSV returns the TSVHeader columns of r (no trailing newline).
func FormatMatchRowTSV(r api.MatchRecordV1) string {
	return fmt.Sprintf("%s\t%d\t%s\t%d\t%s\t%s\t%d\t%s\t%s",
		r.SourceFile, r.RecNo, r.SequenceID, r.Length,
		r.Pattern, r.Strand, r.Count,
		IntsCSV(r.Starts), IntsCSV(ends(r)),
	)
}

// FormatIndexRowTSV returns the IndexTSVHeader columns of e.
func FormatIndexRowTSV(e fasta.IndexEntry) string {
	return fmt.Sprintf("%d\t%d\t%d\t%s\t%d", e.RecNo, e.FileNo, e.Offset, e.Desc, e.SeqLength)
}
