package cmdutil

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fastx/internal/fileio"
	"fastx/internal/matchbuf"
	"fastx/internal/pipeline"
)

func TestWarnings(t *testing.T) {
	var b bytes.Buffer
	warns := []fileio.Warning{{Format: "FASTA", File: "a.fa", Invalid: 3}}
	Warnings(&b, false, warns)
	assert.Equal(t, "WARN: reading FASTA file a.fa: ignored 3 invalid one-letter sequence codes\n", b.String())

	b.Reset()
	Warnings(&b, true, warns)
	assert.Zero(t, b.Len())
}

func TestLoggerVerbosity(t *testing.T) {
	var b bytes.Buffer
	log := NewLogger(&b, 1)
	log.V(1).Info("shown", "k", 1)
	log.V(2).Info("hidden")
	assert.Contains(t, b.String(), "shown")
	assert.NotContains(t, b.String(), "hidden")
}

func TestProgressDisabledIsNoop(t *testing.T) {
	var p *Progress
	p.OnFile("x", 1)
	p.Finish()
	q := StartProgress(&bytes.Buffer{}, false, 3)
	q.OnFile("x", 1)
	q.Finish()
}

type oneHit struct{}

func (oneHit) NPairs() int { return 2 }
func (oneHit) MaxLen() int { return 1 }
func (oneHit) Scan(seq []byte, limit, shift int, buf *matchbuf.Buffer) {
	buf.Report(0, shift+1, 1)
	buf.Report(1, shift+1, 1)
}

func TestRunStreamCountsSent(t *testing.T) {
	src := func(ctx context.Context, emit func(pipeline.Subject) error) ([]fileio.Warning, error) {
		for i, s := range []string{"AC", "GT"} {
			if err := emit(pipeline.Subject{Index: i, ID: s, Seq: []byte(s)}); err != nil {
				return nil, err
			}
		}
		return []fileio.Warning{{Format: "FASTA", File: "x", Invalid: 1}}, nil
	}
	var got []string
	n, warns, err := RunStream(context.Background(), pipeline.Config{Threads: 2, Mode: matchbuf.Which}, src, oneHit{},
		func(r pipeline.Result) ([]string, error) {
			var out []string
			for _, id := range r.Buf.Which() {
				out = append(out, r.Subject.ID+strings.Repeat("+", id))
			}
			return out, nil
		},
		func(s string) error {
			got = append(got, s)
			return nil
		})
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Len(t, warns, 1)
	assert.Equal(t, []string{"AC", "AC+", "GT", "GT+"}, got)
}
