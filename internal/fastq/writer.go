package fastq

import (
	"bufio"
	"fmt"
	"io"

	"fastx/internal/fileio"
	"fastx/internal/lkup"
	"fastx/internal/seqset"
)

// FakeQual fills the quality line when no qualities are given.
const FakeQual = ';'

// recordID picks the id of record i from the sequence names, else the
// quality names. When both are named they must agree.
func recordID(seqs, quals *seqset.Set, i int) (string, error) {
	id, ok := seqs.Name(i)
	if quals != nil {
		qid, qok := quals.Name(i)
		switch {
		case ok && qok && id != qid:
			return "", fmt.Errorf("fastq: record %d: %q vs %q: %w", i+1, id, qid, fileio.ErrNameMismatch)
		case !ok && qok:
			id, ok = qid, true
		}
	}
	if !ok {
		return "", fmt.Errorf("fastq: record %d: %w", i+1, fileio.ErrMissingName)
	}
	return id, nil
}

// Write emits seqs as FASTQ. quals may be nil, in which case every quality
// byte is FakeQual; otherwise it must match seqs element for element. The
// id is repeated on the '+' line. Empty sequences are rejected. Validation
// failures for a record are reported before any of its bytes are written.
func Write(w io.Writer, seqs, quals *seqset.Set, lookup *lkup.Table) error {
	if quals != nil && quals.Len() != seqs.Len() {
		return fmt.Errorf("fastq: %d qualities for %d sequences", quals.Len(), seqs.Len())
	}
	bw := bufio.NewWriterSize(w, 64*1024)
	var scratch []byte
	for i := 0; i < seqs.Len(); i++ {
		id, err := recordID(seqs, quals, i)
		if err != nil {
			return err
		}
		seq := seqs.At(i)
		// empty lines are skipped on input, so the record would not read back
		if len(seq) == 0 {
			return fmt.Errorf("fastq: record %d (%s): %w", i+1, id, fileio.ErrEmptyRecord)
		}
		if quals != nil && quals.Width(i) != len(seq) {
			return fmt.Errorf("fastq: record %d: quality length %d, sequence length %d",
				i+1, quals.Width(i), len(seq))
		}
		if lookup != nil {
			scratch = scratch[:0]
			for _, c := range seq {
				v, ok := lookup.Lookup(c)
				if !ok {
					return fmt.Errorf("fastq: record %d: %q: %w", i+1, c, fileio.ErrInvalidByte)
				}
				scratch = append(scratch, v)
			}
			seq = scratch
		}

		bw.WriteByte(SeqIDMarker)
		bw.WriteString(id)
		bw.WriteByte('\n')
		bw.Write(seq)
		bw.WriteByte('\n')
		bw.WriteByte(QualIDMarker)
		bw.WriteString(id)
		bw.WriteByte('\n')
		if quals != nil {
			bw.Write(quals.At(i))
		} else {
			for range seq {
				bw.WriteByte(FakeQual)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
