package cmdutil

import (
	"io"

	"github.com/cheggaaa/pb/v3"
)

// Progress counts processed input files on a terminal bar. The zero value
// (and a nil *Progress) is disabled.
type Progress struct {
	bar *pb.ProgressBar
}

func StartProgress(w io.Writer, enabled bool, files int) *Progress {
	if !enabled || files <= 0 {
		return &Progress{}
	}
	bar := pb.Full.New(files)
	bar.SetWriter(w)
	bar.Set(pb.Bytes, false)
	bar.Start()
	return &Progress{bar: bar}
}

// OnFile advances the bar; it fits fasta.IndexOptions.OnFile.
func (p *Progress) OnFile(string, int) {
	if p != nil && p.bar != nil {
		p.bar.Increment()
	}
}

func (p *Progress) Finish() {
	if p != nil && p.bar != nil {
		p.bar.Finish()
	}
}
