package ledger

import (
	"context"
	"errors"
	"time"

	"tokenledger/core"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store"
	"github.com/fox-one/pkg/store/db"
	"github.com/sirupsen/logrus"
)

type ledgerStore struct {
	db *db.DB
}

// New new ledger store
func New(db *db.DB) core.LedgerStore {
	return &ledgerStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.CurrencyStat{})
		if err := tx.AutoMigrate(core.CurrencyStat{}).Error; err != nil {
			return err
		}

		tx = db.Update().Model(core.Balance{})
		if err := tx.AutoMigrate(core.Balance{}).Error; err != nil {
			return err
		}

		if err := tx.AddIndex("idx_balances_symbol", "symbol").Error; err != nil {
			return err
		}

		tx = db.Update().Model(core.Transaction{})
		if err := tx.AutoMigrate(core.Transaction{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *ledgerStore) FindStat(ctx context.Context, symbol string) (*core.CurrencyStat, error) {
	var stat core.CurrencyStat
	if err := s.db.View().Where("symbol = ?", symbol).First(&stat).Error; err != nil {
		if store.IsErrNotFound(err) {
			return &core.CurrencyStat{}, nil
		}

		return nil, err
	}

	return &stat, nil
}

func (s *ledgerStore) ListStats(ctx context.Context) ([]*core.CurrencyStat, error) {
	var stats []*core.CurrencyStat
	if err := s.db.View().Order("symbol").Find(&stats).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

func (s *ledgerStore) FindBalance(ctx context.Context, owner, symbol string) (*core.Balance, error) {
	var balance core.Balance
	if err := s.db.View().Where("owner = ? AND symbol = ?", owner, symbol).First(&balance).Error; err != nil {
		if store.IsErrNotFound(err) {
			return &core.Balance{}, nil
		}

		return nil, err
	}

	return &balance, nil
}

func (s *ledgerStore) ListBalances(ctx context.Context, owner string) ([]*core.Balance, error) {
	var balances []*core.Balance
	if err := s.db.View().Where("owner = ?", owner).Order("symbol").Find(&balances).Error; err != nil {
		return nil, err
	}

	return balances, nil
}

func (s *ledgerStore) ListHolders(ctx context.Context, symbol string) ([]*core.Balance, error) {
	var balances []*core.Balance
	if err := s.db.View().Where("symbol = ?", symbol).Order("owner").Find(&balances).Error; err != nil {
		return nil, err
	}

	return balances, nil
}

func (s *ledgerStore) ListTransactions(ctx context.Context, from int64, limit int) ([]*core.Transaction, error) {
	if limit <= 0 {
		return nil, errors.New("invalid limit")
	}

	var transactions []*core.Transaction
	if err := s.db.View().Where("id > ?", from).Limit(limit).Order("id").Find(&transactions).Error; err != nil {
		return nil, err
	}

	return transactions, nil
}

func (s *ledgerStore) Commit(ctx context.Context, changes *core.Changeset) error {
	now := time.Now()

	stats := make([]core.CurrencyStat, len(changes.Stats))
	balances := make([]core.Balance, len(changes.Balances))
	var transaction core.Transaction
	var confirmed bool

	err := s.db.Tx(func(tx *db.DB) error {
		for idx, stat := range changes.Stats {
			next, err := saveStat(tx, stat, now)
			if err != nil {
				return err
			}
			stats[idx] = next
		}

		for idx, balance := range changes.Balances {
			next, err := saveBalance(tx, balance, now)
			if err != nil {
				return err
			}
			balances[idx] = next
		}

		if changes.Transaction != nil {
			transaction = *changes.Transaction
			transaction.CreatedAt = now
			if err := tx.Update().Create(&transaction).Error; err != nil {
				return err
			}
		}

		if changes.Confirm != nil {
			if err := changes.Confirm(ctx); err != nil {
				return err
			}
			confirmed = true
		}

		return nil
	})

	if err != nil {
		if confirmed {
			logUnrecorded(ctx, changes, err)
		}

		return err
	}

	for idx, stat := range changes.Stats {
		*stat = stats[idx]
	}

	for idx, balance := range changes.Balances {
		*balance = balances[idx]
	}

	if changes.Transaction != nil {
		*changes.Transaction = transaction
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

func saveStat(tx *db.DB, stat *core.CurrencyStat, now time.Time) (core.CurrencyStat, error) {
	next := *stat
	next.Version++
	next.UpdatedAt = now

	if !stat.Exists() {
		next.CreatedAt = now
		return next, tx.Update().Create(&next).Error
	}

	update := tx.Update().Model(core.CurrencyStat{}).
		Where("symbol = ? AND version = ?", stat.Symbol, stat.Version).
		Updates(map[string]interface{}{
			"supply":     next.Supply,
			"max_supply": next.MaxSupply,
			"issuer":     next.Issuer,
			"locked":     next.Locked,
			"version":    next.Version,
			"updated_at": now,
		})
	if update.Error != nil {
		return next, update.Error
	}

	if update.RowsAffected == 0 {
		return next, db.ErrOptimisticLock
	}

	return next, nil
}

func saveBalance(tx *db.DB, balance *core.Balance, now time.Time) (core.Balance, error) {
	next := *balance

	if next.Balance.Amount == 0 {
		next.Version = 0
		if !balance.Exists() {
			return next, nil
		}

		del := tx.Update().
			Where("owner = ? AND symbol = ? AND version = ?", balance.Owner, balance.Symbol, balance.Version).
			Delete(core.Balance{})
		if del.Error != nil {
			return next, del.Error
		}

		if del.RowsAffected == 0 {
			return next, db.ErrOptimisticLock
		}

		return next, nil
	}

	next.Version++
	next.UpdatedAt = now

	if !balance.Exists() {
		next.CreatedAt = now
		return next, tx.Update().Create(&next).Error
	}

	update := tx.Update().Model(core.Balance{}).
		Where("owner = ? AND symbol = ? AND version = ?", balance.Owner, balance.Symbol, balance.Version).
		Updates(map[string]interface{}{
			"balance":    next.Balance,
			"version":    next.Version,
			"updated_at": now,
		})
	if update.Error != nil {
		return next, update.Error
	}

	if update.RowsAffected == 0 {
		return next, db.ErrOptimisticLock
	}

	return next, nil
}
