package appcore

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"fastx/internal/fileio"
	"fastx/internal/matchbuf"
	"fastx/internal/pipeline"
	"fastx/pkg/api"
)

type everyBase struct{}

func (everyBase) NPairs() int { return 1 }
func (everyBase) MaxLen() int { return 1 }
func (everyBase) Scan(seq []byte, limit, shift int, buf *matchbuf.Buffer) {
	for i := range seq {
		if limit >= 0 && i >= limit {
			break
		}
		buf.Report(0, shift+i+1, 1)
	}
}

func source(seqs ...string) pipeline.Source {
	return func(ctx context.Context, emit func(pipeline.Subject) error) ([]fileio.Warning, error) {
		for i, s := range seqs {
			if err := emit(pipeline.Subject{Index: i, RecNo: i + 1, ID: s, Seq: []byte(s)}); err != nil {
				return nil, err
			}
		}
		return nil, nil
	}
}

func visitCounts(r pipeline.Result) ([]api.MatchRecordV1, error) {
	if r.Buf.Empty() {
		return nil, nil
	}
	return []api.MatchRecordV1{{RecNo: r.Subject.RecNo, SequenceID: r.Subject.ID, Pattern: "p", Strand: "+", Count: r.Buf.Count(0)}}, nil
}

func TestRunWritesAndExitCodes(t *testing.T) {
	var out, errb bytes.Buffer
	o := Options{Threads: 2, ChunkSize: 2, Mode: matchbuf.Counts, NoMatchExitCode: 7}
	code := Run[api.MatchRecordV1](context.Background(), &out, &errb, o, source("ACGTA", "", "GG"),
		everyBase{}, visitCounts, NewMatchWriterFactory("text", false, false))
	if code != ExitOK {
		t.Fatalf("exit %d, stderr=%s", code, errb.String())
	}
	want := "\t1\tACGTA\t0\tp\t+\t5\t\t\n\t3\tGG\t0\tp\t+\t2\t\t\n"
	if out.String() != want {
		t.Fatalf("got %q want %q", out.String(), want)
	}

	out.Reset()
	code = Run[api.MatchRecordV1](context.Background(), &out, &errb, o, source(""),
		everyBase{}, visitCounts, NewMatchWriterFactory("text", false, false))
	if code != 7 {
		t.Fatalf("no-match exit = %d, want 7", code)
	}
}

func TestRunVisitErrorIsRuntime(t *testing.T) {
	var errb bytes.Buffer
	code := Run[api.MatchRecordV1](context.Background(), &bytes.Buffer{}, &errb, Options{Mode: matchbuf.Which},
		source("A"), everyBase{},
		func(pipeline.Result) ([]api.MatchRecordV1, error) { return nil, errors.New("kaboom") },
		NewMatchWriterFactory("jsonl", false, false))
	if code != ExitRuntime || !strings.Contains(errb.String(), "kaboom") {
		t.Fatalf("exit %d stderr %q", code, errb.String())
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	code := Run[api.MatchRecordV1](ctx, &bytes.Buffer{}, &bytes.Buffer{}, Options{Mode: matchbuf.Which},
		source("A", "C"), everyBase{}, visitCounts, NewMatchWriterFactory("json", false, false))
	if code != ExitCancelled {
		t.Fatalf("exit %d, want %d", code, ExitCancelled)
	}
}
