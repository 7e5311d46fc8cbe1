package property

import (
	"context"

	"tokenledger/core"

	"github.com/fox-one/pkg/property"
)

type checkpointStore struct {
	property property.Store
}

// New checkpoint store backed by a property store
func New(property property.Store) core.CheckpointStore {
	return &checkpointStore{property: property}
}

func (s *checkpointStore) Checkpoint(ctx context.Context, key string) (int64, error) {
	v, err := s.property.Get(ctx, key)
	if err != nil {
		return 0, err
	}

	return v.Int64(), nil
}

func (s *checkpointStore) SaveCheckpoint(ctx context.Context, key string, value int64) error {
	return s.property.Save(ctx, key, value)
}
