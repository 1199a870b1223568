// pkg/api/match_v1.go
package api

// MatchRecordV1 is the stable JSON/JSONL schema for one pattern strand with
// at least one match in one subject sequence.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type MatchRecordV1 struct {
	SourceFile string `json:"source_file,omitempty"`
	RecNo      int    `json:"recno"` // 1-based within SourceFile
	SequenceID string `json:"sequence_id"`
	Length     int    `json:"length"`
	Pattern    string `json:"pattern"`
	Strand     string `json:"strand"` // "+" | "-"
	Count      int    `json:"count"`
	Starts     []int  `json:"starts,omitempty"` // 1-based
	Ends       []int  `json:"ends,omitempty"`
	Widths     []int  `json:"widths,omitempty"`
}

// IndexEntryV1 is the JSON schema of one record of `fastx index`.
type IndexEntryV1 struct {
	RecNo     int    `json:"recno"`
	FileNo    int    `json:"fileno"`
	Offset    int64  `json:"offset"`
	Desc      string `json:"desc"`
	SeqLength int    `json:"seqlength"`
}
