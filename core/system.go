package core

import (
	"context"
)

// System stores ledger deployment information.
type System struct {
	// Contract account hosting the ledger
	Contract string
	Admins   []string
	Version  string
}

// IsAdmin is admin
func (s *System) IsAdmin(account string) bool {
	if len(s.Admins) == 0 {
		return false
	}

	for _, a := range s.Admins {
		if a == account {
			return true
		}
	}

	return false
}

// IsOperator contract account or admin
func (s *System) IsOperator(account string) bool {
	return account == s.Contract || s.IsAdmin(account)
}

// CheckpointStore persists worker cursors
type CheckpointStore interface {
	Checkpoint(ctx context.Context, key string) (int64, error)
	SaveCheckpoint(ctx context.Context, key string, value int64) error
}
