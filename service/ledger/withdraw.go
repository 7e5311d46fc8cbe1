package ledger

import (
	"context"
	"fmt"

	"tokenledger/core"
	"tokenledger/pkg/id"
)

// Withdraw moves quantity held by the ledger account out to target contract.
// The debit is only durable once the external transfer is confirmed.
func (s *service) Withdraw(ctx context.Context, auth core.Authorization, req *core.WithdrawRequest) (*core.Transaction, error) {
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

	if err := s.requireOperator(ctx, auth); err != nil {
		return nil, err
	}

	if err := requirePositive(quantity); err != nil {
		return nil, err
	}

	if err := requireCompatible(stat, quantity); err != nil {
		return nil, err
	}

	holder, err := s.findBalance(ctx, s.system.Contract, quantity.Symbol)
	if err != nil {
		return nil, err
	}

	if err := debit(holder, quantity); err != nil {
		return nil, err
	}

	supply, err := stat.Supply.Sub(quantity)
	if err != nil || supply.Amount < 0 {
		return nil, core.ErrInvalidSupply
	}
	stat.Supply = supply

	tx := core.NewTransaction(id.GenTraceID(), core.ActionTypeWithdraw, auth, stat.Symbol, req)
	withdrawal := &core.Withdrawal{
		TraceID:  id.TraceIDFrom(tx.TraceID + ":" + req.Contract),
		Contract: req.Contract,
		From:     s.system.Contract,
		To:       auth.Actor,
		Quantity: quantity,
		Memo:     core.WithdrawMemo,
	}

	changes := &core.Changeset{
		Transaction: tx,
		Confirm: func(ctx context.Context) error {
			if s.transfers == nil {
				return core.ErrTransferFailed
			}

			if err := s.transfers.Send(ctx, withdrawal); err != nil {
				return fmt.Errorf("%w: %v", core.ErrTransferFailed, err)
			}

			return nil
		},
		ConfirmRef: withdrawal.TraceID,
	}
	changes.PutStat(stat)
	changes.PutBalance(holder)

	return s.commit(ctx, changes)
}
