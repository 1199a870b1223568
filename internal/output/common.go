package output

// Output formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatTSV   = "tsv"
	FormatFASTA = "fasta"
	FormatFASTQ = "fastq"
)

// TSVHeader is the canonical header row for `match` text output.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "source_file\trecno\tsequence_id\tlength\tpattern\tstrand\tcount\tstarts\tends"

// IndexTSVHeader heads `index` and `read --output tsv` rows.
const IndexTSVHeader = "recno\tfileno\toffset\tdesc\tseqlength"
