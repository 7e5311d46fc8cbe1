package kv

import (
	"context"
	"fmt"
	"time"

	"tokenledger/core"

	"github.com/cockroachdb/pebble"
	"github.com/fox-one/msgpack"
	"github.com/fox-one/pkg/logger"
	"github.com/sirupsen/logrus"
)

var (
	sequenceTxKey = []byte("seq/tx")
	holderPrefix  = "hold/"
)

func statKey(symbol string) []byte {
	return []byte("stat/" + symbol)
}

func balanceKey(owner, symbol string) []byte {
	return []byte("bal/" + owner + "/" + symbol)
}

func holderKey(symbol, owner string) []byte {
	return []byte(holderPrefix + symbol + "/" + owner)
}

func transactionKey(id int64) []byte {
	return []byte(fmt.Sprintf("tx/%020d", id))
}

func traceKey(traceID string) []byte {
	return []byte("trace/" + traceID)
}

type ledgerStore struct {
	db *DB
}

// NewLedgerStore new ledger store
func NewLedgerStore(db *DB) core.LedgerStore {
	return &ledgerStore{db: db}
}

func (s *ledgerStore) FindStat(ctx context.Context, symbol string) (*core.CurrencyStat, error) {
	var stat core.CurrencyStat
	if _, err := s.db.get(statKey(symbol), &stat); err != nil {
		return nil, err
	}

	return &stat, nil
}

func (s *ledgerStore) ListStats(ctx context.Context) ([]*core.CurrencyStat, error) {
	var stats []*core.CurrencyStat
	err := s.db.scan([]byte("stat/"), func(_, value []byte) error {
		var stat core.CurrencyStat
		if err := msgpack.Unmarshal(value, &stat); err != nil {
			return err
		}
		stats = append(stats, &stat)
		return nil
	})

	return stats, err
}

func (s *ledgerStore) FindBalance(ctx context.Context, owner, symbol string) (*core.Balance, error) {
	var balance core.Balance
	if _, err := s.db.get(balanceKey(owner, symbol), &balance); err != nil {
		return nil, err
	}

	return &balance, nil
}

func (s *ledgerStore) ListBalances(ctx context.Context, owner string) ([]*core.Balance, error) {
	var balances []*core.Balance
	err := s.db.scan([]byte("bal/"+owner+"/"), func(_, value []byte) error {
		var balance core.Balance
		if err := msgpack.Unmarshal(value, &balance); err != nil {
			return err
		}
		balances = append(balances, &balance)
		return nil
	})

	return balances, err
}

func (s *ledgerStore) ListHolders(ctx context.Context, symbol string) ([]*core.Balance, error) {
	prefix := holderPrefix + symbol + "/"

	var owners []string
	if err := s.db.scan([]byte(prefix), func(key, _ []byte) error {
		owners = append(owners, string(key[len(prefix):]))
		return nil
	}); err != nil {
		return nil, err
	}

	balances := make([]*core.Balance, 0, len(owners))
	for _, owner := range owners {
		balance, err := s.FindBalance(ctx, owner, symbol)
		if err != nil {
			return nil, err
		}

		if balance.Exists() {
			balances = append(balances, balance)
		}
	}

	return balances, nil
}

func (s *ledgerStore) ListTransactions(ctx context.Context, from int64, limit int) ([]*core.Transaction, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("invalid limit %d", limit)
	}

	if from < 0 {
		from = 0
	}

	var transactions []*core.Transaction
	err := s.db.scanRange(transactionKey(from+1), prefixEnd([]byte("tx/")), func(_, value []byte) error {
		var tx core.Transaction
		if err := msgpack.Unmarshal(value, &tx); err != nil {
			return err
		}

		transactions = append(transactions, &tx)
		if len(transactions) >= limit {
			return errStop
		}
		return nil
	})

	return transactions, err
}

// Commit applies changes in one pebble batch. Confirm runs between a version
// check and the write without holding the write lock, the versions are checked
// again before the batch is written.
func (s *ledgerStore) Commit(ctx context.Context, changes *core.Changeset) error {
	if changes.Confirm == nil {
		return s.apply(changes)
	}

	if err := s.check(changes); err != nil {
		return err
	}

	if err := changes.Confirm(ctx); err != nil {
		return err
	}

	if err := s.apply(changes); err != nil {
		logUnrecorded(ctx, changes, err)
		return err
	}

	return nil
}

func (s *ledgerStore) check(changes *core.Changeset) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if s.db.db == nil {
		return ErrDBClosed
	}

	return s.verify(changes)
}

// verify compares staged versions with the stored rows, db.mu must be held
func (s *ledgerStore) verify(changes *core.Changeset) error {
	for _, stat := range changes.Stats {
		var current core.CurrencyStat
		if _, err := s.db.get(statKey(stat.Symbol), &current); err != nil {
			return err
		}

		if current.Version != stat.Version {
			return fmt.Errorf("stat %s: %w", stat.Symbol, ErrVersionConflict)
		}
	}

	for _, balance := range changes.Balances {
		var current core.Balance
		if _, err := s.db.get(balanceKey(balance.Owner, balance.Symbol), &current); err != nil {
			return err
		}

		if current.Version != balance.Version {
			return fmt.Errorf("balance %s/%s: %w", balance.Owner, balance.Symbol, ErrVersionConflict)
		}
	}

	if changes.Transaction != nil {
		var id int64
		found, err := s.db.get(traceKey(changes.Transaction.TraceID), &id)
		if err != nil {
			return err
		}

		if found {
			return fmt.Errorf("trace %s already committed as #%d", changes.Transaction.TraceID, id)
		}
	}

	return nil
}

func (s *ledgerStore) apply(changes *core.Changeset) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if s.db.db == nil {
		return ErrDBClosed
	}

	if err := s.verify(changes); err != nil {
		return err
	}

	batch := s.db.db.NewBatch()
	defer batch.Close()

	now := time.Now()

	stats := make([]core.CurrencyStat, len(changes.Stats))
	for idx, stat := range changes.Stats {
		next := *stat
		next.Version++
		next.UpdatedAt = now
		if !stat.Exists() {
			next.CreatedAt = now
		}

		if err := put(batch, statKey(next.Symbol), &next); err != nil {
			return err
		}
		stats[idx] = next
	}

	balances := make([]core.Balance, len(changes.Balances))
	for idx, balance := range changes.Balances {
		next := *balance
		if next.Balance.Amount == 0 {
			if balance.Exists() {
				if err := batch.Delete(balanceKey(next.Owner, next.Symbol), nil); err != nil {
					return err
				}
				if err := batch.Delete(holderKey(next.Symbol, next.Owner), nil); err != nil {
					return err
				}
			}
			next.Version = 0
			balances[idx] = next
			continue
		}

		next.Version++
		next.UpdatedAt = now
		if !balance.Exists() {
			next.CreatedAt = now
		}

		if err := put(batch, balanceKey(next.Owner, next.Symbol), &next); err != nil {
			return err
		}
		if err := batch.Set(holderKey(next.Symbol, next.Owner), nil, nil); err != nil {
			return err
		}
		balances[idx] = next
	}

	var tx core.Transaction
	if changes.Transaction != nil {
		seq, err := s.db.nextSequence(sequenceTxKey)
		if err != nil {
			return err
		}

		tx = *changes.Transaction
		tx.ID = seq
		tx.CreatedAt = now

		if err := put(batch, transactionKey(seq), &tx); err != nil {
			return err
		}
		if err := put(batch, traceKey(tx.TraceID), seq); err != nil {
			return err
		}
		if err := put(batch, sequenceTxKey, seq); err != nil {
			return err
		}
	}

	if err := batch.Commit(pebble.Sync); err != nil {
		return err
	}

	for idx, stat := range changes.Stats {
		*stat = stats[idx]
	}

	for idx, balance := range changes.Balances {
		*balance = balances[idx]
	}

	if changes.Transaction != nil {
		*changes.Transaction = tx
	}

	return nil
}

// logUnrecorded the external effect of changes happened but the ledger did not record it
func logUnrecorded(ctx context.Context, changes *core.Changeset, err error) {
	fields := logrus.Fields{"confirm_ref": changes.ConfirmRef}
	if tx := changes.Transaction; tx != nil {
		fields["trace"] = tx.TraceID
		fields["action"] = tx.Action
	}

	logger.FromContext(ctx).WithError(err).WithFields(fields).Errorln("confirmed changes not committed, reconcile by hand")
}
