package writers

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"syscall"
	"testing"

	"fastx/pkg/api"
)

func send(t *testing.T, format string, opt Options, recs ...api.MatchRecordV1) string {
	t.Helper()
	var buf bytes.Buffer
	in, done := StartMatchWriter(&buf, format, opt, 2)
	for _, r := range recs {
		in <- r
	}
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("writer err: %v", err)
	}
	return buf.String()
}

var recs = []api.MatchRecordV1{
	{SourceFile: "b.fa", RecNo: 1, SequenceID: "s2", Length: 9, Pattern: "p", Strand: "+", Count: 1, Starts: []int{3}, Ends: []int{5}},
	{SourceFile: "a.fa", RecNo: 4, SequenceID: "s1", Length: 9, Pattern: "p", Strand: "-", Count: 2},
}

func TestTextWriterSortAndHeader(t *testing.T) {
	got := send(t, "text", Options{Header: true, Sort: true}, recs...)
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 3 || !strings.HasPrefix(lines[0], "source_file\t") {
		t.Fatalf("unexpected output:\n%s", got)
	}
	if lines[1] != "a.fa\t4\ts1\t9\tp\t-\t2\t\t" || lines[2] != "b.fa\t1\ts2\t9\tp\t+\t1\t3\t5" {
		t.Fatalf("unexpected rows:\n%s", got)
	}
}

func TestMatchJSONL_StreamsValidV1(t *testing.T) {
	out := send(t, "jsonl", Options{}, recs...)
	sc := bufio.NewScanner(strings.NewReader(out))
	var n int
	for sc.Scan() {
		n++
		var v api.MatchRecordV1
		if err := json.Unmarshal(sc.Bytes(), &v); err != nil {
			t.Fatalf("bad json line %d: %v\n%s", n, err, sc.Text())
		}
	}
	if n != 2 {
		t.Fatalf("want 2 lines, got %d", n)
	}
}

func TestJSONWriterIsOneArray(t *testing.T) {
	var got []api.MatchRecordV1
	if err := json.Unmarshal([]byte(send(t, "json", Options{Sort: true}, recs...)), &got); err != nil {
		t.Fatalf("json: %v", err)
	}
	if len(got) != 2 || got[0].SequenceID != "s1" {
		t.Fatalf("unexpected array %+v", got)
	}
}

func TestIsBrokenPipe(t *testing.T) {
	if !IsBrokenPipe(syscall.EPIPE) || IsBrokenPipe(nil) {
		t.Fatalf("IsBrokenPipe misclassifies")
	}
}
