package kv

import (
	"context"
	"fmt"
	"time"

	"tokenledger/core"

	"github.com/cockroachdb/pebble"
	"github.com/fox-one/msgpack"
)

var sequenceAccountKey = []byte("seq/account")

func accountKey(name string) []byte {
	return []byte("acct/" + name)
}

func permissionKey(account, name string) []byte {
	return []byte("perm/" + account + "/" + name)
}

type accountStore struct {
	db *DB
}

// NewAccountStore new account store
func NewAccountStore(db *DB) core.AccountStore {
	return &accountStore{db: db}
}

func (s *accountStore) Exists(ctx context.Context, name string) (bool, error) {
	account, err := s.Find(ctx, name)
	if err != nil {
		return false, err
	}

	return account.ID > 0, nil
}

func (s *accountStore) Create(ctx context.Context, account *core.Account, permissions ...*core.Permission) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if s.db.db == nil {
		return ErrDBClosed
	}

	var current core.Account
	found, err := s.db.get(accountKey(account.Name), &current)
	if err != nil {
		return err
	}

	if found {
		return fmt.Errorf("account %s already exists", account.Name)
	}

	seq, err := s.db.nextSequence(sequenceAccountKey)
	if err != nil {
		return err
	}

	batch := s.db.db.NewBatch()
	defer batch.Close()

	now := time.Now()
	next := *account
	next.ID = seq
	next.CreatedAt = now

	if err := put(batch, accountKey(next.Name), &next); err != nil {
		return err
	}
	if err := put(batch, sequenceAccountKey, seq); err != nil {
		return err
	}

	for _, p := range permissions {
		p.Account = next.Name
		p.CreatedAt = now
		if err := put(batch, permissionKey(p.Account, p.Name), p); err != nil {
			return err
		}
	}

	if err := batch.Commit(pebble.Sync); err != nil {
		return err
	}

	*account = next
	return nil
}

func (s *accountStore) Find(ctx context.Context, name string) (*core.Account, error) {
	var account core.Account
	if _, err := s.db.get(accountKey(name), &account); err != nil {
		return nil, err
	}

	return &account, nil
}

func (s *accountStore) List(ctx context.Context) ([]*core.Account, error) {
	var accounts []*core.Account
	err := s.db.scan([]byte("acct/"), func(_, value []byte) error {
		var account core.Account
		if err := msgpack.Unmarshal(value, &account); err != nil {
			return err
		}
		accounts = append(accounts, &account)
		return nil
	})

	return accounts, err
}

func (s *accountStore) FindPermission(ctx context.Context, account, name string) (*core.Permission, error) {
	var permission core.Permission
	if _, err := s.db.get(permissionKey(account, name), &permission); err != nil {
		return nil, err
	}

	return &permission, nil
}
