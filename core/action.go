package core

import (
	"fmt"
)

// MaxMemoSize max memo bytes of issue and transfer
const MaxMemoSize = 256

// ActionType ledger action name
type ActionType string

const (
	// ActionTypeCreate create
	ActionTypeCreate ActionType = "create"
	// ActionTypeCreateLocked createlocked
	ActionTypeCreateLocked ActionType = "createlocked"
	// ActionTypeIssue issue
	ActionTypeIssue ActionType = "issue"
	// ActionTypeTransfer transfer
	ActionTypeTransfer ActionType = "transfer"
	// ActionTypeUnlock unlock
	ActionTypeUnlock ActionType = "unlock"
	// ActionTypeWithdraw withdraw
	ActionTypeWithdraw ActionType = "withdraw"
	// ActionTypeBurn burn
	ActionTypeBurn ActionType = "burn"
)

func (a ActionType) String() string {
	return string(a)
}

func requireAccount(field, name string) error {
	if !IsValidAccount(name) {
		return fmt.Errorf("%w: %s %q", ErrInvalidAccount, field, name)
	}

	return nil
}

// CreateRequest create & createlocked payload
type CreateRequest struct {
	Issuer        string `json:"issuer" valid:"required"`
	MaximumSupply Asset  `json:"maximum_supply"`
}

// Validate check fields
func (r *CreateRequest) Validate() error {
	return requireAccount("issuer", r.Issuer)
}

// IssueRequest issue payload
type IssueRequest struct {
	To       string `json:"to" valid:"required"`
	Quantity Asset  `json:"quantity"`
	Memo     string `json:"memo"`
}

// Validate check fields
func (r *IssueRequest) Validate() error {
	return requireAccount("to", r.To)
}

// TransferRequest transfer payload
type TransferRequest struct {
	From     string `json:"from" valid:"required"`
	To       string `json:"to" valid:"required"`
	Quantity Asset  `json:"quantity"`
	Memo     string `json:"memo"`
}

// Validate check fields
func (r *TransferRequest) Validate() error {
	if err := requireAccount("from", r.From); err != nil {
		return err
	}

	return requireAccount("to", r.To)
}

// UnlockRequest unlock payload
type UnlockRequest struct {
	Symbol Symbol `json:"symbol_spec"`
}

// Validate check fields
func (r *UnlockRequest) Validate() error {
	if !r.Symbol.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidSymbol, r.Symbol)
	}

	return nil
}

// WithdrawRequest withdraw payload
type WithdrawRequest struct {
	Contract string `json:"target_contract" valid:"required"`
	Quantity Asset  `json:"quantity"`
}

// Validate check fields
func (r *WithdrawRequest) Validate() error {
	return requireAccount("target_contract", r.Contract)
}

// BurnRequest burn payload
type BurnRequest struct {
	Owner    string `json:"owner" valid:"required"`
	Quantity Asset  `json:"quantity"`
}

// Validate check fields
func (r *BurnRequest) Validate() error {
	return requireAccount("owner", r.Owner)
}
