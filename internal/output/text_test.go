package output

import (
	"bytes"
	"testing"

	"fastx/internal/fasta"
	"fastx/internal/seqset"
)

func TestWriteIndexTSV(t *testing.T) {
	var b bytes.Buffer
	ix := fasta.Index{{RecNo: 1, FileNo: 1, Offset: 0, Desc: "s1 x", SeqLength: 6}, {RecNo: 2, FileNo: 1, Offset: 14, Desc: "s2", SeqLength: 0}}
	if err := WriteIndexTSV(&b, ix, true); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := IndexTSVHeader + "\n1\t1\t0\ts1 x\t6\n2\t1\t14\ts2\t0\n"
	if b.String() != want {
		t.Fatalf("got %q want %q", b.String(), want)
	}
}

func TestWriteSetTSV(t *testing.T) {
	var b bytes.Buffer
	seqs := seqset.FromStrings([]string{"r1", "r2"}, "ACGT", "")
	quals := seqset.FromStrings(nil, "IIII", "")
	if err := WriteSetTSV(&b, seqs, quals); err != nil {
		t.Fatalf("write: %v", err)
	}
	if b.String() != "r1\tACGT\tIIII\nr2\t\t\n" {
		t.Fatalf("got %q", b.String())
	}
	b.Reset()
	_ = WriteSetTSV(&b, seqset.FromStrings(nil, "A"), nil)
	if b.String() != "\tA\n" {
		t.Fatalf("unnamed: got %q", b.String())
	}
}
