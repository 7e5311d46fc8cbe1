package core

import (
	"context"
)

// Changeset all mutations of one action, applied atomically
type Changeset struct {
	// Stats with Version 0 are inserted, others updated
	Stats []*CurrencyStat
	// Balances with zero amount are deleted
	Balances    []*Balance
	Transaction *Transaction
	// Confirm runs after the writes are staged and before they become durable,
	// an error aborts the whole commit
	Confirm func(ctx context.Context) error
	// ConfirmRef identifies the external effect of Confirm, e.g. the trace id
	// of a withdrawal. Logged when the changes fail to commit after Confirm succeeded
	ConfirmRef string
}

// PutStat stage stat
func (c *Changeset) PutStat(stat *CurrencyStat) {
	c.Stats = append(c.Stats, stat)
}

// PutBalance stage balance
func (c *Changeset) PutBalance(balance *Balance) {
	c.Balances = append(c.Balances, balance)
}

// LedgerStore stat & balance tables
type LedgerStore interface {
	// FindStat returns an empty stat if not exists
	FindStat(ctx context.Context, symbol string) (*CurrencyStat, error)
	ListStats(ctx context.Context) ([]*CurrencyStat, error)
	// FindBalance returns an empty balance if not exists
	FindBalance(ctx context.Context, owner, symbol string) (*Balance, error)
	ListBalances(ctx context.Context, owner string) ([]*Balance, error)
	ListHolders(ctx context.Context, symbol string) ([]*Balance, error)
	ListTransactions(ctx context.Context, from int64, limit int) ([]*Transaction, error)
	Commit(ctx context.Context, changes *Changeset) error
}

// LedgerService token ledger actions and queries
type LedgerService interface {
	Create(ctx context.Context, auth Authorization, req *CreateRequest) (*Transaction, error)
	CreateLocked(ctx context.Context, auth Authorization, req *CreateRequest) (*Transaction, error)
	Issue(ctx context.Context, auth Authorization, req *IssueRequest) (*Transaction, error)
	Transfer(ctx context.Context, auth Authorization, req *TransferRequest) (*Transaction, error)
	Unlock(ctx context.Context, auth Authorization, req *UnlockRequest) (*Transaction, error)
	Withdraw(ctx context.Context, auth Authorization, req *WithdrawRequest) (*Transaction, error)
	Burn(ctx context.Context, auth Authorization, req *BurnRequest) (*Transaction, error)

	Stat(ctx context.Context, symbol string) (*CurrencyStat, error)
	Stats(ctx context.Context) ([]*CurrencyStat, error)
	Balance(ctx context.Context, owner, symbol string) (Asset, error)
	Balances(ctx context.Context, owner string) ([]*Balance, error)
	Transactions(ctx context.Context, from int64, limit int) ([]*Transaction, error)
}
