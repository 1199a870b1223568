// Package indexstore caches per-file FASTA indexes in a BadgerDB directory
// so that repeated reads of large files skip the indexing pass.
//
// Each file is keyed by an xxh3 hash of its absolute path and the parse
// settings that change its index: the alphabet (sequence lengths depend on
// the lookup table) and whether leading junk was skipped. A stamp of size
// and modification time invalidates stale entries.
package indexstore

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/zeebo/xxh3"

	"fastx/internal/fasta"
)

// Key tables.
const (
	metaTable  byte = 'm'
	entryTable byte = 'e'
)

// Store is a persistent index cache.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) a store in dir. An empty dir keeps everything in
// memory.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil // Disable default logger

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open index store: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Stamp identifies one version of a file.
type Stamp struct {
	Size    int64
	ModTime int64 // UnixNano
}

// StampFile stats path.
func StampFile(path string) (Stamp, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return Stamp{}, err
	}
	if !fi.Mode().IsRegular() {
		return Stamp{}, fmt.Errorf("%s: not a regular file", path)
	}
	return Stamp{Size: fi.Size(), ModTime: fi.ModTime().UnixNano()}, nil
}

// Key holds the parse settings an index depends on.
type Key struct {
	Alphabet        string
	SeekFirstRecord bool
}

// fileKey hashes the absolute path of an indexed file with k.
func fileKey(path string, k Key) ([16]byte, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return [16]byte{}, err
	}
	seek := "0"
	if k.SeekFirstRecord {
		seek = "1"
	}
	h := xxh3.Hash128([]byte(abs + "\x00" + k.Alphabet + "\x00" + seek))
	var out [16]byte
	binary.BigEndian.PutUint64(out[0:8], h.Hi)
	binary.BigEndian.PutUint64(out[8:16], h.Lo)
	return out, nil
}

func metaKey(fk [16]byte) []byte {
	return append([]byte{metaTable}, fk[:]...)
}

func entryPrefix(fk [16]byte) []byte {
	return append([]byte{entryTable}, fk[:]...)
}

func entryKey(fk [16]byte, i int) []byte {
	return binary.BigEndian.AppendUint64(entryPrefix(fk), uint64(i))
}

// meta is the per-file header: stamp, invalid byte count, entry count.
type meta struct {
	stamp   Stamp
	invalid int64
	count   int
}

func (m meta) encode() []byte {
	b := make([]byte, 0, 32)
	b = binary.BigEndian.AppendUint64(b, uint64(m.stamp.Size))
	b = binary.BigEndian.AppendUint64(b, uint64(m.stamp.ModTime))
	b = binary.BigEndian.AppendUint64(b, uint64(m.invalid))
	return binary.BigEndian.AppendUint64(b, uint64(m.count))
}

func decodeMeta(b []byte) (meta, error) {
	if len(b) != 32 {
		return meta{}, fmt.Errorf("corrupt index meta (%d bytes)", len(b))
	}
	u := func(i int) int64 { return int64(binary.BigEndian.Uint64(b[i*8:])) }
	return meta{stamp: Stamp{Size: u(0), ModTime: u(1)}, invalid: u(2), count: int(u(3))}, nil
}

func encodeEntry(e fasta.IndexEntry) []byte {
	b := make([]byte, 0, 24+len(e.Desc))
	b = binary.AppendUvarint(b, uint64(e.RecNo))
	b = binary.AppendUvarint(b, uint64(e.Offset))
	b = binary.AppendUvarint(b, uint64(e.SeqLength))
	return append(b, e.Desc...)
}

func decodeEntry(b []byte) (fasta.IndexEntry, error) {
	var e fasta.IndexEntry
	var vals [3]uint64
	for i := range vals {
		v, n := binary.Uvarint(b)
		if n <= 0 {
			return e, errors.New("corrupt index entry")
		}
		vals[i], b = v, b[n:]
	}
	e.RecNo, e.Offset, e.SeqLength = int(vals[0]), int64(vals[1]), int(vals[2])
	e.Desc = string(b)
	return e, nil
}

// Put replaces the cached index of path. FileNo is not stored.
func (s *Store) Put(path string, k Key, stamp Stamp, invalid int64, entries []fasta.IndexEntry) error {
	fk, err := fileKey(path, k)
	if err != nil {
		return err
	}

	// Collect the old entries first; they are deleted in the same batch.
	var stale [][]byte
	err = s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = entryPrefix(fk)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			stale = append(stale, it.Item().KeyCopy(nil))
		}
		return nil
	})
	if err != nil {
		return err
	}

	wb := s.db.NewWriteBatch()
	defer wb.Cancel()
	if err := wb.Delete(metaKey(fk)); err != nil {
		return err
	}
	for _, k := range stale {
		if err := wb.Delete(k); err != nil {
			return err
		}
	}
	for i, e := range entries {
		if err := wb.Set(entryKey(fk, i), encodeEntry(e)); err != nil {
			return err
		}
	}
	// meta last: its presence marks a complete index
	m := meta{stamp: stamp, invalid: invalid, count: len(entries)}
	if err := wb.Set(metaKey(fk), m.encode()); err != nil {
		return err
	}
	return wb.Flush()
}

// Get returns the cached index of path if its stamp matches. ok is false on
// a miss or a stale entry.
func (s *Store) Get(path string, k Key, stamp Stamp) (entries []fasta.IndexEntry, invalid int64, ok bool, err error) {
	fk, err := fileKey(path, k)
	if err != nil {
		return nil, 0, false, err
	}
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(metaKey(fk))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		var m meta
		if err := item.Value(func(val []byte) error {
			m, err = decodeMeta(val)
			return err
		}); err != nil {
			return err
		}
		if m.stamp != stamp {
			return nil
		}

		entries = make([]fasta.IndexEntry, 0, m.count)
		opts := badger.DefaultIteratorOptions
		opts.Prefix = entryPrefix(fk)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			if err := it.Item().Value(func(val []byte) error {
				e, err := decodeEntry(val)
				entries = append(entries, e)
				return err
			}); err != nil {
				return err
			}
		}
		if len(entries) != m.count {
			return fmt.Errorf("index of %s: %d entries, header says %d", path, len(entries), m.count)
		}
		invalid, ok = m.invalid, true
		return nil
	})
	if err != nil || !ok {
		return nil, 0, false, err
	}
	return entries, invalid, true, nil
}
