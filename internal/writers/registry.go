// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"

	"fastx/pkg/api"
)

// Options are the presentation switches shared by all match formats.
type Options struct {
	Header bool // text only
	Sort   bool // buffer everything and sort before writing
}

// StartFunc spins up a writer goroutine: records are sent on the returned
// channel, which the caller closes; the writer's result arrives on the error
// channel once it is done.
type StartFunc func(out io.Writer, opt Options, bufSize int) (chan<- api.MatchRecordV1, <-chan error)

// MatchWriters maps an output format to its writer. Formats register in
// init() blocks (last registration wins).
var MatchWriters = map[string]StartFunc{}

func RegisterMatch(format string, fn StartFunc) { MatchWriters[format] = fn }

// StartMatchWriter dispatches on format. An unknown format still returns a
// usable channel; the error is reported on the error channel once it is
// closed.
func StartMatchWriter(out io.Writer, format string, opt Options, bufSize int) (chan<- api.MatchRecordV1, <-chan error) {
	if fn, ok := MatchWriters[format]; ok {
		return fn(out, opt, bufSize)
	}
	in := make(chan api.MatchRecordV1, max(bufSize, 1))
	errCh := make(chan error, 1)
	go func() {
		for range in {
		}
		errCh <- fmt.Errorf("unknown match format %q (no writer registered)", format)
	}()
	return in, errCh
}
