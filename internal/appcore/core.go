// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"fastx/internal/cmdutil"
	"fastx/internal/matchbuf"
	"fastx/internal/pipeline"
	"fastx/internal/runutil"
	"fastx/internal/writers"
)

// Exit codes shared by every command.
const (
	ExitOK        = 0
	ExitUsage     = 2
	ExitRuntime   = 3
	ExitCancelled = 130
)

type Options struct {
	Threads   int
	ChunkSize int
	Mode      matchbuf.Mode

	Quiet           bool
	NoMatchExitCode int
}

// VisitorFunc converts one merged subject into outputs.
type VisitorFunc[T any] func(pipeline.Result) ([]T, error)

type WriterFactory[T any] interface {
	Start(out io.Writer, bufSize int) (chan<- T, <-chan error)
}

// Run scans src with sc, writes what visit produces through wf and returns
// the process exit code.
func Run[T any](
	parent context.Context,
	stdout, stderr io.Writer,
	o Options,
	src pipeline.Source,
	sc pipeline.Scanner,
	visit VisitorFunc[T],
	wf WriterFactory[T],
) int {
	outw := bufio.NewWriter(stdout)

	chunkSize, warns := runutil.ValidateChunking(o.ChunkSize, sc.MaxLen())
	for _, w := range warns {
		cmdutil.Warnf(stderr, o.Quiet, "%s", w)
	}
	thr := runutil.EffectiveThreads(o.Threads)

	inCh, writeErr := wf.Start(outw, thr*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	total, srcWarns, perr := cmdutil.RunStream[T](
		ctx,
		pipeline.Config{Threads: thr, ChunkSize: chunkSize, Mode: o.Mode},
		src,
		sc,
		visit,
		func(x T) error {
			select {
			case inCh <- x:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)
	close(inCh)
	cmdutil.Warnings(stderr, o.Quiet, srcWarns)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return ExitOK
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return ExitRuntime
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return ExitRuntime
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return ExitCancelled
		}
		fmt.Fprintln(stderr, perr)
		return ExitRuntime
	}
	if total == 0 {
		return o.NoMatchExitCode
	}
	return ExitOK
}
