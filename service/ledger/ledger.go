package ledger

import (
	"context"
	"fmt"

	"tokenledger/core"
	"tokenledger/pkg/concurrency"
)

type service struct {
	system    *core.System
	store     core.LedgerStore
	accounts  core.AccountRegistry
	authz     core.Authorizer
	transfers core.TransferService
	symbols   *concurrency.KeyedMutex
}

// New new ledger service
func New(
	system *core.System,
	store core.LedgerStore,
	accounts core.AccountRegistry,
	authz core.Authorizer,
	transfers core.TransferService,
) core.LedgerService {
	return &service{
		system:    system,
		store:     store,
		accounts:  accounts,
		authz:     authz,
		transfers: transfers,
		symbols:   concurrency.NewKeyedMutex(),
	}
}

// lock serialize mutating actions on symbol
func (s *service) lock(symbol string) func() {
	return s.symbols.Lock(symbol)
}

func (s *service) commit(ctx context.Context, changes *core.Changeset) (*core.Transaction, error) {
	if err := s.store.Commit(ctx, changes); err != nil {
		if _, ok := core.ErrorCodeOf(err); ok {
			return nil, err
		}

		return nil, fmt.Errorf("commit %s: %w", changes.Transaction.Action, err)
	}

	return changes.Transaction, nil
}
