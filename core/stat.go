package core

import (
	"time"
)

// CurrencyStat per symbol supply record
type CurrencyStat struct {
	Symbol    string    `sql:"size:7;PRIMARY_KEY" json:"symbol"`
	Supply    Asset     `sql:"type:varchar(64)" json:"supply"`
	MaxSupply Asset     `sql:"type:varchar(64)" json:"max_supply"`
	Issuer    string    `sql:"size:12" json:"issuer"`
	Locked    bool      `json:"locked"`
	Version   int64     `sql:"default:0" json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Exists stored before
func (s *CurrencyStat) Exists() bool {
	return s.Version > 0
}

// Available max supply minus supply
func (s *CurrencyStat) Available() int64 {
	return s.MaxSupply.Amount - s.Supply.Amount
}
