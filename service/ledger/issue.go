package ledger

import (
	"context"

	"tokenledger/core"
	"tokenledger/pkg/id"
)

func (s *service) Issue(ctx context.Context, auth core.Authorization, req *core.IssueRequest) (*core.Transaction, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := requireMemo(req.Memo); err != nil {
		return nil, err
	}

	quantity := req.Quantity
	unlock := s.lock(quantity.Symbol.Code)
	defer unlock()

	stat, err := s.findStat(ctx, quantity.Symbol.Code)
	if err != nil {
		return nil, err
	}

	if err := s.requireAuth(ctx, auth, stat.Issuer); err != nil {
		return nil, err
	}

	if err := requireCompatible(stat, quantity); err != nil {
		return nil, err
	}

	if err := requirePositive(quantity); err != nil {
		return nil, err
	}

	supply, err := stat.Supply.Add(quantity)
	if err != nil || supply.Amount > stat.MaxSupply.Amount {
		return nil, core.ErrSupplyExceeded
	}
	stat.Supply = supply

	to, err := s.findBalance(ctx, req.To, quantity.Symbol)
	if err != nil {
		return nil, err
	}

	if err := credit(to, quantity); err != nil {
		return nil, err
	}

	changes := &core.Changeset{
		Transaction: core.NewTransaction(id.GenTraceID(), core.ActionTypeIssue, auth, stat.Symbol, req),
	}
	changes.PutStat(stat)
	changes.PutBalance(to)

	return s.commit(ctx, changes)
}
