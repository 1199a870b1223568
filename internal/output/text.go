// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"fastx/internal/fasta"
	"fastx/internal/seqset"
	"fastx/pkg/api"
)

// WriteText prints one TSV line per match record.
func WriteText(w io.Writer, list []api.MatchRecordV1, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, r := range list {
		if _, err := fmt.Fprintln(w, FormatMatchRowTSV(r)); err != nil {
			return err
		}
	}
	return nil
}

// StreamText is WriteText over a channel. It keeps draining in after a
// write error so the sender never blocks.
func StreamText(w io.Writer, in <-chan api.MatchRecordV1, header bool) error {
	var err error
	if header {
		_, err = fmt.Fprintln(w, TSVHeader)
	}
	for r := range in {
		if err == nil {
			_, err = fmt.Fprintln(w, FormatMatchRowTSV(r))
		}
	}
	return err
}

// WriteIndexTSV prints an index, one line per entry.
func WriteIndexTSV(w io.Writer, ix fasta.Index, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, IndexTSVHeader); err != nil {
			return err
		}
	}
	for _, e := range ix {
		if _, err := fmt.Fprintln(w, FormatIndexRowTSV(e)); err != nil {
			return err
		}
	}
	return nil
}

// WriteSetTSV prints name, sequence and (when quals is not nil) quality,
// one record per line. Unnamed records get an empty first column.
func WriteSetTSV(w io.Writer, seqs, quals *seqset.Set) error {
	for i := range seqs.Len() {
		name, _ := seqs.Name(i)
		var err error
		if quals != nil {
			_, err = fmt.Fprintf(w, "%s\t%s\t%s\n", name, seqs.At(i), quals.At(i))
		} else {
			_, err = fmt.Fprintf(w, "%s\t%s\n", name, seqs.At(i))
		}
		if err != nil {
			return err
		}
	}
	return nil
}
