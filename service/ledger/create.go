package ledger

import (
	"context"
	"fmt"

	"tokenledger/core"
	"tokenledger/pkg/id"
)

func (s *service) Create(ctx context.Context, auth core.Authorization, req *core.CreateRequest) (*core.Transaction, error) {
	return s.create(ctx, auth, req, core.ActionTypeCreate)
}

func (s *service) CreateLocked(ctx context.Context, auth core.Authorization, req *core.CreateRequest) (*core.Transaction, error) {
	return s.create(ctx, auth, req, core.ActionTypeCreateLocked)
}

func (s *service) create(ctx context.Context, auth core.Authorization, req *core.CreateRequest, action core.ActionType) (*core.Transaction, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	maxSupply := req.MaximumSupply
	if !core.IsValidSymbolCode(maxSupply.Symbol.Code) {
		return nil, core.ErrInvalidSymbol
	}

	if maxSupply.Symbol.Precision > core.MaxPrecision ||
		maxSupply.Amount <= 0 ||
		maxSupply.Amount > core.MaxAmount {
		return nil, core.ErrInvalidSupply
	}

	unlock := s.lock(maxSupply.Symbol.Code)
	defer unlock()

	stat, err := s.store.FindStat(ctx, maxSupply.Symbol.Code)
	if err != nil {
		return nil, fmt.Errorf("find stat %s: %w", maxSupply.Symbol.Code, err)
	}

	if stat.Exists() {
		return nil, core.ErrSymbolAlreadyExists
	}

	if err := s.requireOperator(ctx, auth); err != nil {
		return nil, err
	}

	changes := &core.Changeset{
		Transaction: core.NewTransaction(id.GenTraceID(), action, auth, maxSupply.Symbol.Code, req),
	}
	changes.PutStat(&core.CurrencyStat{
		Symbol:    maxSupply.Symbol.Code,
		Supply:    maxSupply.Zero(),
		MaxSupply: maxSupply,
		Issuer:    req.Issuer,
		Locked:    action == core.ActionTypeCreateLocked,
	})

	return s.commit(ctx, changes)
}
