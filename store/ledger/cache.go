package ledger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"tokenledger/core"

	"github.com/bluele/gcache"
	"golang.org/x/sync/singleflight"
)

// Cache caches stats of store, size is the max cached symbols and ttl bounds
// how long a stat written by another process may be served
func Cache(store core.LedgerStore, size int, ttl time.Duration) core.LedgerStore {
	builder := gcache.New(size).LRU()
	if ttl > 0 {
		builder = builder.Expiration(ttl)
	}

	return &cacheLedgerStore{
		LedgerStore: store,
		cache:       builder.Build(),
		sf:          &singleflight.Group{},
	}
}

type cacheLedgerStore struct {
	core.LedgerStore
	cache gcache.Cache
	sf    *singleflight.Group

	// guards fills against commits, epoch counts commits
	mu    sync.Mutex
	epoch uint64
}

func (s *cacheLedgerStore) FindStat(ctx context.Context, symbol string) (*core.CurrencyStat, error) {
	key := s.statKey(symbol)
	if v, err := s.cache.Get(key); err == nil {
		if stat, ok := v.(core.CurrencyStat); ok {
			return &stat, nil
		}
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		epoch := s.currentEpoch()

		stat, err := s.LedgerStore.FindStat(ctx, symbol)
		if err != nil {
			return nil, err
		}

		if stat.Exists() {
			s.fill(key, *stat, epoch)
		}

		return *stat, nil
	})
	if err != nil {
		return nil, err
	}

	stat := v.(core.CurrencyStat)
	return &stat, nil
}

func (s *cacheLedgerStore) Commit(ctx context.Context, changes *core.Changeset) error {
	err := s.LedgerStore.Commit(ctx, changes)

	s.mu.Lock()
	s.epoch++
	for _, stat := range changes.Stats {
		s.cache.Remove(s.statKey(stat.Symbol))
	}
	s.mu.Unlock()

	return err
}

func (s *cacheLedgerStore) currentEpoch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.epoch
}

// fill caches a stat read at epoch, skipped if a commit happened since the read began
func (s *cacheLedgerStore) fill(key string, stat core.CurrencyStat, epoch uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.epoch != epoch {
		return
	}

	_ = s.cache.Set(key, stat)
}

func (s *cacheLedgerStore) statKey(symbol string) string {
	return fmt.Sprintf("stat:%s", symbol)
}
