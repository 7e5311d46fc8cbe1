package ledger

import (
	"context"
	"fmt"

	"tokenledger/core"
	"tokenledger/pkg/id"
)

func (s *service) Transfer(ctx context.Context, auth core.Authorization, req *core.TransferRequest) (*core.Transaction, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := requireMemo(req.Memo); err != nil {
		return nil, err
	}

	if req.From == req.To {
		return nil, core.ErrSameAccount
	}

	quantity := req.Quantity
	unlock := s.lock(quantity.Symbol.Code)
	defer unlock()

	stat, err := s.findStat(ctx, quantity.Symbol.Code)
	if err != nil {
		return nil, err
	}

	if err := s.requireAuth(ctx, auth, req.From); err != nil {
		return nil, err
	}

	exists, err := s.accounts.Exists(ctx, req.To)
	if err != nil {
		return nil, fmt.Errorf("find account %s: %w", req.To, err)
	}

	if !exists {
		return nil, core.ErrRecipientNotFound
	}

	if err := requirePositive(quantity); err != nil {
		return nil, err
	}

	if err := requireCompatible(stat, quantity); err != nil {
		return nil, err
	}

	if stat.Locked && req.From != stat.Issuer {
		return nil, core.ErrTransferLocked
	}

	from, err := s.findBalance(ctx, req.From, quantity.Symbol)
	if err != nil {
		return nil, err
	}

	if err := debit(from, quantity); err != nil {
		return nil, err
	}

	to, err := s.findBalance(ctx, req.To, quantity.Symbol)
	if err != nil {
		return nil, err
	}

	if err := credit(to, quantity); err != nil {
		return nil, err
	}

	changes := &core.Changeset{
		Transaction: core.NewTransaction(id.GenTraceID(), core.ActionTypeTransfer, auth, stat.Symbol, req),
	}
	changes.PutBalance(from)
	changes.PutBalance(to)

	return s.commit(ctx, changes)
}
