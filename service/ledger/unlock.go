package ledger

import (
	"context"

	"tokenledger/core"
	"tokenledger/pkg/id"
)

func (s *service) Unlock(ctx context.Context, auth core.Authorization, req *core.UnlockRequest) (*core.Transaction, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	unlock := s.lock(req.Symbol.Code)
	defer unlock()

	stat, err := s.findStat(ctx, req.Symbol.Code)
	if err != nil {
		return nil, err
	}

	// the symbol spec names precision and code
	if stat.MaxSupply.Symbol != req.Symbol {
		return nil, core.ErrStatNotFound
	}

	if err := s.requireAuth(ctx, auth, stat.Issuer); err != nil {
		return nil, err
	}

	if !stat.Locked {
		return nil, core.ErrAlreadyUnlocked
	}
	stat.Locked = false

	changes := &core.Changeset{
		Transaction: core.NewTransaction(id.GenTraceID(), core.ActionTypeUnlock, auth, stat.Symbol, req),
	}
	changes.PutStat(stat)

	return s.commit(ctx, changes)
}
