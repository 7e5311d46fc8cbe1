package core

import (
	"context"
)

// WithdrawMemo memo of the outgoing transfer
const WithdrawMemo = "withdraw"

// Withdrawal transfer sent to an external token contract
type Withdrawal struct {
	TraceID  string `json:"trace_id"`
	Contract string `json:"contract"`
	From     string `json:"from"`
	To       string `json:"to"`
	Quantity Asset  `json:"quantity"`
	Memo     string `json:"memo"`
}

// TransferService sends withdrawals to external contracts
type TransferService interface {
	Send(ctx context.Context, w *Withdrawal) error
}
