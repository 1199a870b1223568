package pipeline

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fastx/internal/engine"
	"fastx/internal/fasta"
	"fastx/internal/fastq"
	"fastx/internal/lkup"
	"fastx/internal/matchbuf"
	"fastx/internal/pattern"
)

func randomFASTA(t *testing.T, nrec, maxLen int) string {
	t.Helper()
	rng := rand.New(rand.NewSource(7))
	var b strings.Builder
	for i := 0; i < nrec; i++ {
		fmt.Fprintf(&b, ">s%d\n", i)
		n := rng.Intn(maxLen)
		for j := 0; j < n; j++ {
			b.WriteByte("ACGT"[rng.Intn(4)])
			if j%60 == 59 {
				b.WriteByte('\n')
			}
		}
		b.WriteByte('\n')
	}
	path := filepath.Join(t.TempDir(), "subjects.fa")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
	return path
}

func scanAll(t *testing.T, cfg Config, src Source, eng *engine.Engine) []matchbuf.Result {
	t.Helper()
	var out []matchbuf.Result
	var ids []int
	_, err := Run(context.Background(), cfg, src, eng, func(r Result) error {
		out = append(out, r.Buf.Result())
		ids = append(ids, r.Subject.Index)
		return nil
	})
	require.NoError(t, err)
	for i, id := range ids {
		require.Equal(t, i, id, "subjects out of order")
	}
	return out
}

// Chunked, multi-threaded scans give the same answer as one thread over
// whole subjects.
func TestRun_MatchesSingleThreaded(t *testing.T) {
	path := randomFASTA(t, 25, 3000)
	src := FASTASource([]string{path}, fasta.Config{Lookup: lkup.DNA()})
	pats := []pattern.Pattern{{ID: "a", Seq: []byte("ACGTA")}, {ID: "b", Seq: []byte("GGN")}, {ID: "c", Seq: []byte("TTAGC")}}

	for _, ec := range []engine.Config{{}, {MaxMM: 1}} {
		eng := engine.New(ec, pattern.Probes(pats, true))
		want := scanAll(t, Config{Threads: 1, Mode: matchbuf.Ranges}, src, eng)
		require.Len(t, want, 25)
		for _, threads := range []int{1, 4} {
			for _, chunk := range []int{1, 7, 100, 5000} {
				got := scanAll(t, Config{Threads: threads, ChunkSize: chunk, Mode: matchbuf.Ranges}, src, eng)
				assert.Equal(t, want, got, "threads=%d chunk=%d mm=%d", threads, chunk, ec.MaxMM)
			}
		}
	}
}

func TestRun_FASTQSourceAndCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "r.fq")
	require.NoError(t, os.WriteFile(path, []byte("@r1\nAACC\n+\nIIII\n@r2\nGGTT\n+\nIIII\n"), 0o644))
	eng := engine.New(engine.Config{}, pattern.Probes([]pattern.Pattern{{ID: "p", Seq: []byte("AAC")}}, true))

	got := scanAll(t, Config{Threads: 2, Mode: matchbuf.Counts}, FASTQSource([]string{path}, fastq.Config{}), eng)
	require.Len(t, got, 2)
	assert.Equal(t, []int{1, 0}, got[0].Counts)
	assert.Equal(t, []int{0, 1}, got[1].Counts) // GTT on r2

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, Config{}, FASTQSource([]string{path}, fastq.Config{}), eng, func(Result) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}
