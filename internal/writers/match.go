package writers

import (
	"io"

	"fastx/internal/common"
	"fastx/internal/output"
	"fastx/pkg/api"
)

func init() {
	RegisterMatch(output.FormatText, startText)
	RegisterMatch(output.FormatJSON, startJSON)
}

func collect(in <-chan api.MatchRecordV1, sort bool) []api.MatchRecordV1 {
	var buf []api.MatchRecordV1
	for r := range in {
		buf = append(buf, r)
	}
	if sort {
		common.SortMatches(buf)
	}
	return buf
}

func startText(out io.Writer, opt Options, bufSize int) (chan<- api.MatchRecordV1, <-chan error) {
	in := make(chan api.MatchRecordV1, max(bufSize, 1))
	errCh := make(chan error, 1)
	go func() {
		if opt.Sort {
			errCh <- output.WriteText(out, collect(in, true), opt.Header)
			return
		}
		errCh <- output.StreamText(out, in, opt.Header)
	}()
	return in, errCh
}

// JSON is one array, so records are always buffered.
func startJSON(out io.Writer, opt Options, bufSize int) (chan<- api.MatchRecordV1, <-chan error) {
	in := make(chan api.MatchRecordV1, max(bufSize, 1))
	errCh := make(chan error, 1)
	go func() {
		errCh <- output.WriteJSON(out, collect(in, opt.Sort))
	}()
	return in, errCh
}
