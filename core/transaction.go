package core

import (
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx/types"
)

// Transaction journal entry of a committed action
type Transaction struct {
	ID        int64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	TraceID   string         `sql:"size:36;unique_index:idx_transactions_trace_id" json:"trace_id"`
	Action    ActionType     `sql:"size:16" json:"action"`
	Actor     string         `sql:"size:12" json:"actor"`
	Symbol    string         `sql:"size:7;index:idx_transactions_symbol" json:"symbol"`
	Data      types.JSONText `sql:"type:TEXT" json:"data"`
}

// NewTransaction new journal entry, data is encoded as json
func NewTransaction(traceID string, action ActionType, auth Authorization, symbol string, data interface{}) *Transaction {
	tx := &Transaction{
		TraceID: traceID,
		Action:  action,
		Actor:   auth.Actor,
		Symbol:  symbol,
	}

	if bs, err := json.Marshal(data); err == nil {
		tx.Data = bs
	} else {
		tx.Data = types.JSONText("{}")
	}

	return tx
}
