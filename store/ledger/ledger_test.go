package ledger

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"tokenledger/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *db.DB {
	database, err := db.Open(db.SqliteInMemory())
	require.Nil(t, err)
	// every connection of an in-memory sqlite is a new database
	database.Update().DB().SetMaxOpenConns(1)
	t.Cleanup(func() {
		database.Close()
	})

	require.Nil(t, db.Migrate(database))
	return database
}

func issueChanges(traceID string, stat *core.CurrencyStat, balances ...*core.Balance) *core.Changeset {
	changes := &core.Changeset{
		Transaction: core.NewTransaction(traceID, core.ActionTypeIssue, core.NewAuthorization(stat.Issuer), stat.Symbol, nil),
	}
	changes.PutStat(stat)
	for _, b := range balances {
		changes.PutBalance(b)
	}

	return changes
}

func newStat(supply string) *core.CurrencyStat {
	s := core.MustParseAsset(supply)
	return &core.CurrencyStat{
		Symbol:    s.Symbol.Code,
		Supply:    s,
		MaxSupply: core.NewAsset(core.MaxAmount, s.Symbol),
		Issuer:    "alice",
	}
}

func newBalance(owner, amount string) *core.Balance {
	a := core.MustParseAsset(amount)
	b := core.NewBalance(owner, a.Symbol)
	b.Balance = a
	return b
}

func TestLedgerStoreCommit(t *testing.T) {
	ctx := context.Background()
	s := New(setupTestDB(t))

	stat := newStat("500.0000 TOK")
	bob := newBalance("bob", "300.0000 TOK")
	carol := newBalance("carol", "200.0000 TOK")
	changes := issueChanges("trace-1", stat, bob, carol)
	require.Nil(t, s.Commit(ctx, changes))

	assert.EqualValues(t, 1, stat.Version)
	assert.EqualValues(t, 1, bob.Version)
	assert.EqualValues(t, 1, changes.Transaction.ID)
	assert.False(t, changes.Transaction.CreatedAt.IsZero())

	got, err := s.FindStat(ctx, "TOK")
	require.Nil(t, err)
	assert.True(t, got.Exists())
	assert.Equal(t, "500.0000 TOK", got.Supply.String())
	assert.Equal(t, core.MaxAmount, got.MaxSupply.Amount)
	assert.Equal(t, "alice", got.Issuer)

	missing, err := s.FindStat(ctx, "NONE")
	require.Nil(t, err)
	assert.False(t, missing.Exists())

	b, err := s.FindBalance(ctx, "bob", "TOK")
	require.Nil(t, err)
	assert.Equal(t, "300.0000 TOK", b.Balance.String())

	none, err := s.FindBalance(ctx, "dave", "TOK")
	require.Nil(t, err)
	assert.False(t, none.Exists())

	holders, err := s.ListHolders(ctx, "TOK")
	require.Nil(t, err)
	if assert.Len(t, holders, 2) {
		assert.Equal(t, "bob", holders[0].Owner)
		assert.Equal(t, "carol", holders[1].Owner)
	}

	balances, err := s.ListBalances(ctx, "bob")
	require.Nil(t, err)
	assert.Len(t, balances, 1)

	stats, err := s.ListStats(ctx)
	require.Nil(t, err)
	assert.Len(t, stats, 1)

	// update in place
	stat.Supply = core.MustParseAsset("501.0000 TOK")
	bob.Balance = core.MustParseAsset("301.0000 TOK")
	require.Nil(t, s.Commit(ctx, issueChanges("trace-2", stat, bob)))
	assert.EqualValues(t, 2, stat.Version)
	assert.EqualValues(t, 2, bob.Version)

	got, err = s.FindStat(ctx, "TOK")
	require.Nil(t, err)
	assert.Equal(t, "501.0000 TOK", got.Supply.String())
	assert.EqualValues(t, 2, got.Version)
}

func TestLedgerStoreVersionConflict(t *testing.T) {
	ctx := context.Background()
	s := New(setupTestDB(t))

	stat := newStat("500.0000 TOK")
	bob := newBalance("bob", "500.0000 TOK")
	require.Nil(t, s.Commit(ctx, issueChanges("trace-1", stat, bob)))

	t.Run("insert existing", func(t *testing.T) {
		dup := newStat("1.0000 TOK")
		assert.Error(t, s.Commit(ctx, issueChanges("trace-dup", dup)))
	})

	t.Run("stale stat", func(t *testing.T) {
		stale := *stat
		stat.Supply = core.MustParseAsset("600.0000 TOK")
		require.Nil(t, s.Commit(ctx, issueChanges("trace-2", stat)))

		bob.Balance = core.MustParseAsset("700.0000 TOK")
		stale.Supply = core.MustParseAsset("700.0000 TOK")
		err := s.Commit(ctx, issueChanges("trace-3", &stale, bob))
		assert.True(t, errors.Is(err, db.ErrOptimisticLock))
	})

	t.Run("stale balance", func(t *testing.T) {
		// the stat is written before the balance fails, it must roll back
		next := *stat
		next.Supply = core.MustParseAsset("650.0000 TOK")
		stale := newBalance("bob", "650.0000 TOK")
		stale.Version = 7
		err := s.Commit(ctx, issueChanges("trace-4", &next, stale))
		assert.True(t, errors.Is(err, db.ErrOptimisticLock))
		assert.EqualValues(t, 2, next.Version)
	})

	got, err := s.FindStat(ctx, "TOK")
	require.Nil(t, err)
	assert.Equal(t, "600.0000 TOK", got.Supply.String())

	b, err := s.FindBalance(ctx, "bob", "TOK")
	require.Nil(t, err)
	assert.Equal(t, "500.0000 TOK", b.Balance.String())
	assert.EqualValues(t, 1, b.Version)

	transactions, err := s.ListTransactions(ctx, 0, 10)
	require.Nil(t, err)
	assert.Len(t, transactions, 2)
}

func TestLedgerStoreConfirm(t *testing.T) {
	ctx := context.Background()
	s := New(setupTestDB(t))

	stat := newStat("500.0000 TOK")
	bob := newBalance("bob", "500.0000 TOK")
	changes := issueChanges("trace-1", stat, bob)

	var calls int
	changes.Confirm = func(ctx context.Context) error {
		calls++
		return errors.New("rejected")
	}

	assert.EqualError(t, s.Commit(ctx, changes), "rejected")
	assert.Equal(t, 1, calls)
	assert.EqualValues(t, 0, stat.Version)
	assert.EqualValues(t, 0, changes.Transaction.ID)

	got, err := s.FindStat(ctx, "TOK")
	require.Nil(t, err)
	assert.False(t, got.Exists())

	holders, err := s.ListHolders(ctx, "TOK")
	require.Nil(t, err)
	assert.Empty(t, holders)

	transactions, err := s.ListTransactions(ctx, 0, 10)
	require.Nil(t, err)
	assert.Empty(t, transactions)

	changes.Confirm = func(ctx context.Context) error {
		calls++
		return nil
	}
	require.Nil(t, s.Commit(ctx, changes))
	assert.Equal(t, 2, calls)
	assert.EqualValues(t, 1, stat.Version)
}

func TestLedgerStoreZeroBalance(t *testing.T) {
	ctx := context.Background()
	s := New(setupTestDB(t))

	stat := newStat("500.0000 TOK")
	bob := newBalance("bob", "500.0000 TOK")
	require.Nil(t, s.Commit(ctx, issueChanges("trace-1", stat, bob)))

	carol := newBalance("carol", "500.0000 TOK")
	bob.Balance = bob.Balance.Zero()

	changes := &core.Changeset{}
	changes.PutBalance(bob)
	changes.PutBalance(carol)
	require.Nil(t, s.Commit(ctx, changes))
	assert.EqualValues(t, 0, bob.Version)
	assert.False(t, bob.Exists())

	got, err := s.FindBalance(ctx, "bob", "TOK")
	require.Nil(t, err)
	assert.False(t, got.Exists())

	holders, err := s.ListHolders(ctx, "TOK")
	require.Nil(t, err)
	if assert.Len(t, holders, 1) {
		assert.Equal(t, "carol", holders[0].Owner)
	}

	// a zero balance that never existed writes nothing
	dave := core.NewBalance("dave", stat.Supply.Symbol)
	require.Nil(t, s.Commit(ctx, &core.Changeset{Balances: []*core.Balance{dave}}))

	holders, err = s.ListHolders(ctx, "TOK")
	require.Nil(t, err)
	assert.Len(t, holders, 1)

	// recreated after deletion
	bob.Balance = core.MustParseAsset("1.0000 TOK")
	require.Nil(t, s.Commit(ctx, &core.Changeset{Balances: []*core.Balance{bob}}))
	assert.EqualValues(t, 1, bob.Version)
}

func TestLedgerStoreListTransactions(t *testing.T) {
	ctx := context.Background()
	s := New(setupTestDB(t))

	stat := newStat("1.0000 TOK")
	require.Nil(t, s.Commit(ctx, issueChanges("trace-0", stat)))
	for i := 1; i < 5; i++ {
		stat.Supply.Amount += 10000
		require.Nil(t, s.Commit(ctx, issueChanges(fmt.Sprintf("trace-%d", i), stat)))
	}

	for _, tc := range []struct {
		from  int64
		limit int
		ids   []int64
	}{
		{0, 2, []int64{1, 2}},
		{2, 2, []int64{3, 4}},
		{4, 10, []int64{5}},
		{5, 10, nil},
	} {
		transactions, err := s.ListTransactions(ctx, tc.from, tc.limit)
		require.Nil(t, err)

		var ids []int64
		for _, tx := range transactions {
			ids = append(ids, tx.ID)
			assert.Equal(t, core.ActionTypeIssue, tx.Action)
			assert.Equal(t, "TOK", tx.Symbol)
		}
		assert.Equal(t, tc.ids, ids, "from %d limit %d", tc.from, tc.limit)
	}

	_, err := s.ListTransactions(ctx, 0, 0)
	assert.Error(t, err)

	// trace ids are unique
	assert.Error(t, s.Commit(ctx, issueChanges("trace-0", stat)))
}
