package output

import "testing"

func TestTSVHeader_Stable(t *testing.T) {
	const want = "source_file\trecno\tsequence_id\tlength\tpattern\tstrand\tcount\tstarts\tends"
	if TSVHeader != want {
		t.Fatalf("TSVHeader changed:\n got:  %q\n want: %q", TSVHeader, want)
	}
	if IndexTSVHeader != "recno\tfileno\toffset\tdesc\tseqlength" {
		t.Fatalf("IndexTSVHeader changed: %q", IndexTSVHeader)
	}
}
