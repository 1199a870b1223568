// internal/common/sort.go
package common

import (
	"sort"

	"fastx/pkg/api"
)

// LessMatch defines a stable order for match records (for --sort).
func LessMatch(a, b api.MatchRecordV1) bool {
	if a.SequenceID != b.SequenceID {
		return a.SequenceID < b.SequenceID
	}
	if a.SourceFile != b.SourceFile {
		return a.SourceFile < b.SourceFile
	}
	if a.RecNo != b.RecNo {
		return a.RecNo < b.RecNo
	}
	if a.Pattern != b.Pattern {
		return a.Pattern < b.Pattern
	}
	return a.Strand < b.Strand
}

func SortMatches(ms []api.MatchRecordV1) {
	sort.SliceStable(ms, func(i, j int) bool { return LessMatch(ms[i], ms[j]) })
}
