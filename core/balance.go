package core

import (
	"time"
)

// Balance token balance of an owner, one row per (symbol, owner)
type Balance struct {
	Owner     string    `sql:"size:12;PRIMARY_KEY" json:"owner"`
	Symbol    string    `sql:"size:7;PRIMARY_KEY" json:"symbol"`
	Balance   Asset     `sql:"type:varchar(64)" json:"balance"`
	Version   int64     `sql:"default:0" json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Exists stored before
func (b *Balance) Exists() bool {
	return b.Version > 0
}

// NewBalance empty balance row of owner
func NewBalance(owner string, symbol Symbol) *Balance {
	return &Balance{
		Owner:   owner,
		Symbol:  symbol.Code,
		Balance: Asset{Symbol: symbol},
	}
}
