// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"fastx/internal/jsonlutil"
	"fastx/internal/output"
	"fastx/pkg/api"
)

func init() { RegisterMatch(output.FormatJSONL, StartMatchJSONLWriter) }

// StartMatchJSONLWriter streams each record as one JSON line (v1). Sorting
// is not supported by a streaming format and opt.Sort is ignored.
func StartMatchJSONLWriter(out io.Writer, _ Options, bufSize int) (chan<- api.MatchRecordV1, <-chan error) {
	return jsonlutil.Start[api.MatchRecordV1](out, bufSize,
		func(enc *json.Encoder, r api.MatchRecordV1) error {
			return enc.Encode(r)
		},
		IsBrokenPipe,
	)
}
