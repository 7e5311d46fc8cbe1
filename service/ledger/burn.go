package ledger

import (
	"context"

	"tokenledger/core"
	"tokenledger/pkg/id"
)

// Burn destroys quantity from the owner, lowering supply and max supply alike
func (s *service) Burn(ctx context.Context, auth core.Authorization, req *core.BurnRequest) (*core.Transaction, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	quantity := req.Quantity
	unlock := s.lock(quantity.Symbol.Code)
	defer unlock()

	stat, err := s.findStat(ctx, quantity.Symbol.Code)
	if err != nil {
		return nil, err
	}

	if err := s.requireAuth(ctx, auth, req.Owner); err != nil {
		return nil, err
	}

	if err := requirePositive(quantity); err != nil {
		return nil, err
	}

	if err := requireCompatible(stat, quantity); err != nil {
		return nil, err
	}

	owner, err := s.findBalance(ctx, req.Owner, quantity.Symbol)
	if err != nil {
		return nil, err
	}

	if err := debit(owner, quantity); err != nil {
		return nil, err
	}

	supply, err := stat.Supply.Sub(quantity)
	if err != nil || supply.Amount < 0 {
		return nil, core.ErrInvalidSupply
	}

	maxSupply, err := stat.MaxSupply.Sub(quantity)
	if err != nil || maxSupply.Amount <= 0 {
		return nil, core.ErrInvalidSupply
	}

	stat.Supply, stat.MaxSupply = supply, maxSupply

	changes := &core.Changeset{
		Transaction: core.NewTransaction(id.GenTraceID(), core.ActionTypeBurn, auth, stat.Symbol, req),
	}
	changes.PutStat(stat)
	changes.PutBalance(owner)

	return s.commit(ctx, changes)
}
