package fastq

import "fastx/internal/seqset"

// SeqLengthLoader collects the sequence length of every loaded record.
type SeqLengthLoader struct {
	Loader
	Lengths []int
}

func NewSeqLengthLoader() *SeqLengthLoader {
	l := &SeqLengthLoader{}
	l.LoadSeq = func(seq []byte) { l.Lengths = append(l.Lengths, len(seq)) }
	return l
}

// FullLoader accumulates ids, sequences and optionally qualities in one
// pass. Unlike the FASTA path there is no index pass: FASTQ lines do not
// wrap, so each record's bytes arrive in a single call.
type FullLoader struct {
	Loader

	ids   []string
	seqs  seqset.Builder
	quals *seqset.Builder
}

func NewFullLoader(withQuals bool) *FullLoader {
	l := &FullLoader{}
	if withQuals {
		l.quals = &seqset.Builder{}
		l.LoadQual = l.quals.Add
	}
	l.LoadSeqID = func(id []byte) { l.ids = append(l.ids, string(id)) }
	l.LoadSeq = l.seqs.Add
	return l
}

// Result returns the loaded sequences, named by id, and the qualities
// (nil unless requested). The loader must not be reused.
func (l *FullLoader) Result() (seqs, quals *seqset.Set) {
	seqs = l.seqs.Set()
	seqs.Names = l.ids
	if seqs.Names == nil {
		seqs.Names = []string{}
	}
	if l.quals != nil {
		quals = l.quals.Set()
	}
	return seqs, quals
}

// RecordLoader hands each complete record to an emit function.
type RecordLoader struct {
	Loader

	emit func(Record) error
	skip int
	file string
	base int
	cur  Record
}

func NewRecordLoader(skip int, emit func(Record) error) *RecordLoader {
	l := &RecordLoader{emit: emit, skip: skip}
	l.LoadSeqID = l.loadSeqID
	l.LoadSeq = func(seq []byte) { l.cur.Seq = append([]byte(nil), seq...) }
	l.LoadQual = l.loadQual
	return l
}

func (l *RecordLoader) startFile(name string, recno int) {
	l.file, l.base = name, recno
}

// Loaded records are contiguous from skip, so the logical index follows
// from the load count.
func (l *RecordLoader) loadSeqID(id []byte) {
	idx := l.skip + l.NRec()
	l.cur = Record{File: l.file, Index: idx, RecNo: idx - l.base + 1, ID: string(id)}
}

func (l *RecordLoader) loadQual(qual []byte) {
	l.cur.Qual = append([]byte(nil), qual...)
	if err := l.emit(l.cur); err != nil {
		l.Stop(err)
	}
}
