package ledger

import (
	"context"

	"tokenledger/core"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

func (s *service) Stat(ctx context.Context, symbol string) (*core.CurrencyStat, error) {
	return s.findStat(ctx, symbol)
}

func (s *service) Stats(ctx context.Context) ([]*core.CurrencyStat, error) {
	return s.store.ListStats(ctx)
}

// Balance zero asset of the symbol if owner holds none
func (s *service) Balance(ctx context.Context, owner, symbol string) (core.Asset, error) {
	stat, err := s.findStat(ctx, symbol)
	if err != nil {
		return core.Asset{}, err
	}

	balance, err := s.findBalance(ctx, owner, stat.MaxSupply.Symbol)
	if err != nil {
		return core.Asset{}, err
	}

	return balance.Balance, nil
}

func (s *service) Balances(ctx context.Context, owner string) ([]*core.Balance, error) {
	return s.store.ListBalances(ctx, owner)
}

func (s *service) Transactions(ctx context.Context, from int64, limit int) ([]*core.Transaction, error) {
	if limit <= 0 {
		limit = defaultLimit
	} else if limit > maxLimit {
		limit = maxLimit
	}

	return s.store.ListTransactions(ctx, from, limit)
}
