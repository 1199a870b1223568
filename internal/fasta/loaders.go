package fasta

import (
	"fmt"

	"fastx/internal/seqset"
)

// IndexEntry describes one record without its sequence.
type IndexEntry struct {
	RecNo     int    // 1-based within its file
	FileNo    int    // 1-based position in the input list
	Offset    int64  // byte offset of the description line
	Desc      string // empty unless descriptions were kept
	SeqLength int    // after translation
}

// IndexLoader collects an IndexEntry per loaded record.
type IndexLoader struct {
	Loader
	Entries []IndexEntry

	keepDesc bool
	fileNo   int
	base     int // Position.RecNo when the current file started
}

func NewIndexLoader(keepDesc bool) *IndexLoader {
	l := &IndexLoader{keepDesc: keepDesc}
	l.LoadDesc = l.loadDesc
	l.LoadSeqData = l.loadSeqData
	return l
}

// startFile must be called before each file is parsed.
func (l *IndexLoader) startFile(fileNo, recno int) {
	l.fileNo, l.base = fileNo, recno
}

func (l *IndexLoader) loadDesc(recno int, offset int64, desc []byte) {
	e := IndexEntry{RecNo: recno - l.base + 1, FileNo: l.fileNo, Offset: offset}
	if l.keepDesc {
		e.Desc = string(desc)
	}
	l.Entries = append(l.Entries, e)
}

func (l *IndexLoader) loadSeqData(data []byte) {
	l.Entries[len(l.Entries)-1].SeqLength += len(data)
}

// SeqLengthLoader collects the length of every loaded record.
type SeqLengthLoader struct {
	Loader
	Lengths []int
}

func NewSeqLengthLoader() *SeqLengthLoader {
	l := &SeqLengthLoader{}
	l.LoadEmptySeq = func() { l.Lengths = append(l.Lengths, 0) }
	l.LoadSeqData = func(data []byte) { l.Lengths[len(l.Lengths)-1] += len(data) }
	return l
}

// SequenceLoader copies sequence bytes into the pre-sized slots of a set.
// Loading more records, or more bytes into a record, than the set was
// allocated for stops the parse.
type SequenceLoader struct {
	Loader
	set  *seqset.Set
	slot []byte
	n    int
}

func NewSequenceLoader(set *seqset.Set) *SequenceLoader {
	l := &SequenceLoader{set: set}
	l.LoadEmptySeq = l.loadEmptySeq
	l.LoadSeqData = l.loadSeqData
	return l
}

func (l *SequenceLoader) loadEmptySeq() {
	i := l.NRec()
	if i >= l.set.Len() {
		l.Stop(fmt.Errorf("fasta: record %d exceeds the %d allocated", i+1, l.set.Len()))
		l.slot = nil
		return
	}
	l.slot, l.n = l.set.Slot(i), 0
}

func (l *SequenceLoader) loadSeqData(data []byte) {
	if l.n+len(data) > len(l.slot) {
		l.Stop(fmt.Errorf("fasta: record %d is longer than its indexed length %d", l.NRec(), len(l.slot)))
		return
	}
	l.n += copy(l.slot[l.n:], data)
}

// RecordLoader hands complete records to an emit function. A record is
// complete when the next description line or the end of a file is reached;
// callers must call Flush after each file.
type RecordLoader struct {
	Loader

	emit   func(Record) error
	file   string
	base   int
	cur    Record
	active bool
}

func NewRecordLoader(emit func(Record) error) *RecordLoader {
	l := &RecordLoader{emit: emit}
	l.LoadDesc = l.loadDesc
	l.LoadSeqData = func(data []byte) { l.cur.Seq = append(l.cur.Seq, data...) }
	return l
}

func (l *RecordLoader) startFile(name string, recno int) {
	l.file, l.base = name, recno
}

func (l *RecordLoader) loadDesc(recno int, offset int64, desc []byte) {
	if err := l.Flush(); err != nil {
		return
	}
	l.cur = Record{
		File:   l.file,
		Index:  recno,
		RecNo:  recno - l.base + 1,
		Offset: offset,
		Desc:   string(desc),
	}
	l.active = true
}

// Flush emits the pending record, if any.
func (l *RecordLoader) Flush() error {
	if !l.active {
		return nil
	}
	l.active = false
	if err := l.emit(l.cur); err != nil {
		l.Stop(err)
		return err
	}
	return nil
}
