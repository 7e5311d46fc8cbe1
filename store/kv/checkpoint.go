package kv

import (
	"context"

	"tokenledger/core"

	"github.com/cockroachdb/pebble"
)

func propertyKey(key string) []byte {
	return []byte("prop/" + key)
}

type checkpointStore struct {
	db *DB
}

// NewCheckpointStore new checkpoint store
func NewCheckpointStore(db *DB) core.CheckpointStore {
	return &checkpointStore{db: db}
}

func (s *checkpointStore) Checkpoint(ctx context.Context, key string) (int64, error) {
	var v int64
	if _, err := s.db.get(propertyKey(key), &v); err != nil {
		return 0, err
	}

	return v, nil
}

func (s *checkpointStore) SaveCheckpoint(ctx context.Context, key string, value int64) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if s.db.db == nil {
		return ErrDBClosed
	}

	batch := s.db.db.NewBatch()
	defer batch.Close()

	if err := put(batch, propertyKey(key), value); err != nil {
		return err
	}

	return batch.Commit(pebble.Sync)
}
