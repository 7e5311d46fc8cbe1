package ledger

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"tokenledger/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingStore struct {
	core.LedgerStore

	mu        sync.Mutex
	stats     map[string]core.CurrencyStat
	finds     int
	commitErr error
	// afterRead runs once a stat is read, before it is returned
	afterRead func()
}

func (s *countingStore) FindStat(ctx context.Context, symbol string) (*core.CurrencyStat, error) {
	s.mu.Lock()
	s.finds++
	stat := s.stats[symbol]
	hook := s.afterRead
	s.mu.Unlock()

	if hook != nil {
		hook()
	}

	return &stat, nil
}

func (s *countingStore) Commit(ctx context.Context, changes *core.Changeset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.commitErr != nil {
		return s.commitErr
	}

	for _, stat := range changes.Stats {
		stat.Version++
		s.stats[stat.Symbol] = *stat
	}

	return nil
}

func (s *countingStore) findCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finds
}

func TestCacheFindStat(t *testing.T) {
	ctx := context.Background()
	raw := &countingStore{stats: map[string]core.CurrencyStat{
		"TOK": {Symbol: "TOK", Issuer: "alice", Version: 1},
	}}
	s := Cache(raw, 16, time.Minute)

	for i := 0; i < 3; i++ {
		stat, err := s.FindStat(ctx, "TOK")
		require.Nil(t, err)
		assert.Equal(t, "alice", stat.Issuer)
	}
	assert.Equal(t, 1, raw.findCount())

	// returned stats are copies
	stat, _ := s.FindStat(ctx, "TOK")
	stat.Issuer = "mallory"
	stat, _ = s.FindStat(ctx, "TOK")
	assert.Equal(t, "alice", stat.Issuer)

	// absent stats are not cached
	for i := 0; i < 2; i++ {
		missing, err := s.FindStat(ctx, "NONE")
		require.Nil(t, err)
		assert.False(t, missing.Exists())
	}
	assert.Equal(t, 3, raw.findCount())
}

func TestCacheCommit(t *testing.T) {
	ctx := context.Background()
	raw := &countingStore{stats: map[string]core.CurrencyStat{
		"TOK": {Symbol: "TOK", Issuer: "alice", Version: 1},
	}}
	s := Cache(raw, 16, time.Minute)

	stat, err := s.FindStat(ctx, "TOK")
	require.Nil(t, err)

	stat.Locked = true
	require.Nil(t, s.Commit(ctx, &core.Changeset{Stats: []*core.CurrencyStat{stat}}))

	// commits evict, the next read goes to the store
	got, err := s.FindStat(ctx, "TOK")
	require.Nil(t, err)
	assert.True(t, got.Locked)
	assert.EqualValues(t, 2, got.Version)
	assert.Equal(t, 2, raw.findCount())

	raw.mu.Lock()
	raw.commitErr = errors.New("conflict")
	raw.mu.Unlock()

	got.Locked = false
	assert.Error(t, s.Commit(ctx, &core.Changeset{Stats: []*core.CurrencyStat{got}}))

	got, err = s.FindStat(ctx, "TOK")
	require.Nil(t, err)
	assert.True(t, got.Locked)
	assert.EqualValues(t, 2, got.Version)
	assert.Equal(t, 3, raw.findCount())
}

func TestCacheCommitDuringRead(t *testing.T) {
	ctx := context.Background()
	sym := core.NewSymbol(4, "TOK")
	raw := &countingStore{stats: map[string]core.CurrencyStat{
		"TOK": {Symbol: "TOK", Supply: core.NewAsset(0, sym), Version: 1},
	}}
	s := Cache(raw, 16, time.Minute)

	read := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	raw.afterRead = func() {
		once.Do(func() {
			close(read)
			<-release
		})
	}

	done := make(chan *core.CurrencyStat)
	go func() {
		stat, err := s.FindStat(ctx, "TOK")
		assert.Nil(t, err)
		done <- stat
	}()

	// the reader holds version 1 while version 2 is committed
	<-read
	next := core.CurrencyStat{Symbol: "TOK", Supply: core.NewAsset(50000, sym), Version: 1}
	require.Nil(t, s.Commit(ctx, &core.Changeset{Stats: []*core.CurrencyStat{&next}}))
	close(release)

	stale := <-done
	assert.EqualValues(t, 1, stale.Version)

	got, err := s.FindStat(ctx, "TOK")
	require.Nil(t, err)
	assert.EqualValues(t, 2, got.Version)
	assert.Equal(t, "5.0000 TOK", got.Supply.String())
}

func TestCacheExpiration(t *testing.T) {
	ctx := context.Background()
	raw := &countingStore{stats: map[string]core.CurrencyStat{
		"TOK": {Symbol: "TOK", Issuer: "alice", Version: 1},
	}}
	s := Cache(raw, 16, 50*time.Millisecond)

	_, err := s.FindStat(ctx, "TOK")
	require.Nil(t, err)

	// written behind the cache, e.g. by another process
	raw.mu.Lock()
	raw.stats["TOK"] = core.CurrencyStat{Symbol: "TOK", Issuer: "alice", Locked: true, Version: 2}
	raw.mu.Unlock()

	got, err := s.FindStat(ctx, "TOK")
	require.Nil(t, err)
	assert.False(t, got.Locked)

	time.Sleep(100 * time.Millisecond)

	got, err = s.FindStat(ctx, "TOK")
	require.Nil(t, err)
	assert.True(t, got.Locked)
	assert.EqualValues(t, 2, got.Version)
}
