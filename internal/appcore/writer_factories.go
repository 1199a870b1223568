package appcore

import (
	"io"

	"fastx/internal/writers"
	"fastx/pkg/api"
)

// MatchWriterFactory starts the registered writer for Format.
type MatchWriterFactory struct {
	Format string
	Sort   bool
	Header bool
}

func NewMatchWriterFactory(format string, sort, header bool) MatchWriterFactory {
	return MatchWriterFactory{Format: format, Sort: sort, Header: header}
}

func (w MatchWriterFactory) Start(out io.Writer, bufSize int) (chan<- api.MatchRecordV1, <-chan error) {
	return writers.StartMatchWriter(out, w.Format, writers.Options{Header: w.Header, Sort: w.Sort}, bufSize)
}
