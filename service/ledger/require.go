package ledger

import (
	"context"
	"fmt"

	"tokenledger/core"
)

// requireAuth actor must be account and hold an active or owner permission on it
func (s *service) requireAuth(ctx context.Context, auth core.Authorization, account string) error {
	if auth.Actor == "" || auth.Actor != account {
		return core.ErrUnauthorized
	}

	permission := auth.Permission
	if permission == "" {
		permission = core.PermissionActive
	}

	if permission != core.PermissionActive && permission != core.PermissionOwner {
		return core.ErrUnauthorized
	}

	return core.Require(s.authz.HasPermission(ctx, account, permission), core.ErrUnauthorized)
}

// requireOperator actor must be the ledger account or an admin
func (s *service) requireOperator(ctx context.Context, auth core.Authorization) error {
	if !s.system.IsOperator(auth.Actor) {
		return core.ErrUnauthorized
	}

	return s.requireAuth(ctx, auth, auth.Actor)
}

func requireMemo(memo string) error {
	return core.Require(len(memo) <= core.MaxMemoSize, core.ErrMemoTooLong)
}

func requirePositive(quantity core.Asset) error {
	return core.Require(quantity.Amount > 0, core.ErrNonPositiveQuantity)
}

func requireCompatible(stat *core.CurrencyStat, quantity core.Asset) error {
	if quantity.Symbol.Code != stat.MaxSupply.Symbol.Code {
		return core.ErrSymbolMismatch
	}

	return core.Require(quantity.Symbol.Precision == stat.MaxSupply.Symbol.Precision, core.ErrInvalidPrecision)
}

// findStat copy of the stored stat, ErrStatNotFound if absent
func (s *service) findStat(ctx context.Context, symbol string) (*core.CurrencyStat, error) {
	stat, err := s.store.FindStat(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("find stat %s: %w", symbol, err)
	}

	if !stat.Exists() {
		return nil, core.ErrStatNotFound
	}

	clone := *stat
	return &clone, nil
}

// findBalance copy of the stored balance, an empty row if absent
func (s *service) findBalance(ctx context.Context, owner string, symbol core.Symbol) (*core.Balance, error) {
	balance, err := s.store.FindBalance(ctx, owner, symbol.Code)
	if err != nil {
		return nil, fmt.Errorf("find balance %s/%s: %w", owner, symbol.Code, err)
	}

	if !balance.Exists() {
		return core.NewBalance(owner, symbol), nil
	}

	clone := *balance
	return &clone, nil
}

func credit(balance *core.Balance, quantity core.Asset) error {
	next, err := balance.Balance.Add(quantity)
	if err != nil {
		return err
	}

	balance.Balance = next
	return nil
}

func debit(balance *core.Balance, quantity core.Asset) error {
	if balance.Balance.Amount < quantity.Amount {
		return core.ErrInsufficientBalance
	}

	next, err := balance.Balance.Sub(quantity)
	if err != nil {
		return err
	}

	balance.Balance = next
	return nil
}
