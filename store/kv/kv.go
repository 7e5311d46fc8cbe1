package kv

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/fox-one/msgpack"
)

var (
	// ErrDBClosed database is closed
	ErrDBClosed = errors.New("kv: database is closed")
	// ErrVersionConflict row changed since it was read
	ErrVersionConflict = errors.New("kv: version conflict")

	errStop = errors.New("stop")
)

// DB pebble database shared by the kv stores
type DB struct {
	db *pebble.DB
	// serializes commits and sequence allocation
	mu sync.Mutex
}

// Open open pebble database at path
func Open(path string) (*DB, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	return &DB{db: db}, nil
}

// OpenInMemory open pebble database on an in-memory file system
func OpenInMemory() (*DB, error) {
	db, err := pebble.Open("ledger", &pebble.Options{FS: vfs.NewMem()})
	if err != nil {
		return nil, err
	}

	return &DB{db: db}, nil
}

// MustOpen open database or panic, in memory when path is empty
func MustOpen(path string) *DB {
	var (
		db  *DB
		err error
	)

	if path == "" {
		db, err = OpenInMemory()
	} else {
		db, err = Open(path)
	}

	if err != nil {
		panic(err)
	}

	return db
}

// Close close database
func (d *DB) Close() error {
	if d.db == nil {
		return ErrDBClosed
	}

	err := d.db.Close()
	d.db = nil
	return err
}

func (d *DB) get(key []byte, v interface{}) (bool, error) {
	if d.db == nil {
		return false, ErrDBClosed
	}

	val, closer, err := d.db.Get(key)
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	defer closer.Close()

	if err := msgpack.Unmarshal(val, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}

	return true, nil
}

func (d *DB) scan(prefix []byte, fn func(key, value []byte) error) error {
	return d.scanRange(prefix, prefixEnd(prefix), fn)
}

// scanRange iterates [lower, upper), fn returns errStop to break
func (d *DB) scanRange(lower, upper []byte, fn func(key, value []byte) error) error {
	if d.db == nil {
		return ErrDBClosed
	}

	iter, err := d.db.NewIter(&pebble.IterOptions{
		LowerBound: lower,
		UpperBound: upper,
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		if err := fn(iter.Key(), iter.Value()); err != nil {
			if errors.Is(err, errStop) {
				return nil
			}
			return err
		}
	}

	return iter.Error()
}

func put(batch *pebble.Batch, key []byte, v interface{}) error {
	bs, err := msgpack.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	return batch.Set(key, bs, nil)
}

func prefixEnd(prefix []byte) []byte {
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}

	return nil
}

func (d *DB) nextSequence(key []byte) (int64, error) {
	var seq int64
	if _, err := d.get(key, &seq); err != nil {
		return 0, err
	}

	return seq + 1, nil
}
