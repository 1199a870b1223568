// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-logr/logr"
	"golang.org/x/sync/errgroup"

	"fastx/internal/fileio"
	"fastx/internal/matchbuf"
)

// Config controls the scanning pipeline.
type Config struct {
	Threads   int // number of worker goroutines (>=1)
	ChunkSize int // bases of start positions per chunk; 0 disables chunking
	Mode      matchbuf.Mode
}

// Result is the merged scan of one subject. Buf belongs to the receiver.
type Result struct {
	Subject Subject
	Buf     *matchbuf.Buffer
}

type job struct {
	seqNum  int
	chunk   int
	nchunks int
	offset  int
	subject *Subject
}

type chunkResult struct {
	job
	buf *matchbuf.Buffer
}

// chunks is the number of chunks a subject of length n is cut into.
func chunks(n, size int) int {
	if size <= 0 || n <= size {
		return 1
	}
	return (n + size - 1) / size
}

// Run scans every subject of src with sc and calls visit once per subject,
// in source order. Chunks overlap by MaxLen-1 bases and each only reports
// hits starting inside its own range, so no hit is lost or duplicated.
// It returns the source warnings and the first error encountered
// (including context cancellation).
func Run(ctx context.Context, cfg Config, src Source, sc Scanner, visit func(Result) error) ([]fileio.Warning, error) {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	log := logr.FromContextOrDiscard(ctx)
	npairs, overlap := sc.NPairs(), sc.MaxLen()-1
	if overlap < 0 {
		overlap = 0
	}

	jobs := make(chan job, cfg.Threads*2)
	results := make(chan chunkResult, cfg.Threads*2)
	g, gctx := errgroup.WithContext(ctx)

	// Producer
	var warns []fileio.Warning
	g.Go(func() error {
		defer close(jobs)
		seqNum := 0
		w, err := src(gctx, func(s Subject) error {
			n := chunks(len(s.Seq), cfg.ChunkSize)
			subj := &s
			for c := 0; c < n; c++ {
				j := job{seqNum: seqNum, chunk: c, nchunks: n, subject: subj}
				if n > 1 {
					j.offset = c * cfg.ChunkSize
				}
				select {
				case jobs <- j:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			seqNum++
			return nil
		})
		warns = w
		if err != nil {
			return fmt.Errorf("reading subjects: %w", err)
		}
		log.V(1).Info("subjects queued", "count", seqNum)
		return nil
	})

	// Workers
	var wg sync.WaitGroup
	for range cfg.Threads {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			for j := range jobs {
				seq, limit := j.subject.Seq, -1
				if j.nchunks > 1 {
					end := min(j.offset+cfg.ChunkSize+overlap, len(seq))
					seq, limit = seq[j.offset:end], cfg.ChunkSize
				}
				buf := matchbuf.New(cfg.Mode, npairs)
				sc.Scan(seq, limit, 0, buf)
				select {
				case results <- chunkResult{job: j, buf: buf}:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	// Collector: merge chunks in order, emit subjects in order
	g.Go(func() error {
		return collect(gctx, results, visit)
	})

	return warns, g.Wait()
}

type pending struct {
	subject *Subject
	acc     *matchbuf.Buffer
	next    int // next chunk to merge
	nchunks int
	early   map[int]chunkResult
}

func collect(ctx context.Context, results <-chan chunkResult, visit func(Result) error) error {
	open := make(map[int]*pending)
	nextSeq := 0
	for r := range results {
		p := open[r.seqNum]
		if p == nil {
			p = &pending{subject: r.subject, nchunks: r.nchunks, early: map[int]chunkResult{}}
			open[r.seqNum] = p
		}
		p.early[r.chunk] = r
		for {
			c, ok := p.early[p.next]
			if !ok {
				break
			}
			delete(p.early, p.next)
			if p.acc == nil {
				p.acc = c.buf // chunk 0, offset 0
			} else {
				p.acc.AppendAndFlush(c.buf, c.offset)
			}
			p.next++
		}

		for {
			p, ok := open[nextSeq]
			if !ok || p.next < p.nchunks {
				break
			}
			delete(open, nextSeq)
			nextSeq++
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := visit(Result{Subject: *p.subject, Buf: p.acc}); err != nil {
				return err
			}
		}
	}
	return nil
}
