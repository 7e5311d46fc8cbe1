package views

import (
	"time"

	"tokenledger/core"

	"github.com/shopspring/decimal"
)

// Default default view
type Default struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// DefaultSuccess default success view
var DefaultSuccess = Default{
	Code:    0,
	Message: "success",
}

// Asset asset view
type Asset struct {
	Quantity  string          `json:"quantity"`
	Amount    decimal.Decimal `json:"amount"`
	Precision uint8           `json:"precision"`
	Symbol    string          `json:"symbol"`
}

// AssetView asset view of a
func AssetView(a core.Asset) Asset {
	return Asset{
		Quantity:  a.String(),
		Amount:    a.Decimal(),
		Precision: a.Symbol.Precision,
		Symbol:    a.Symbol.Code,
	}
}

// Stat stat view
type Stat struct {
	Symbol    string    `json:"symbol"`
	Supply    Asset     `json:"supply"`
	MaxSupply Asset     `json:"max_supply"`
	Available Asset     `json:"available"`
	Issuer    string    `json:"issuer"`
	Locked    bool      `json:"locked"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StatView stat view of stat
func StatView(stat *core.CurrencyStat) Stat {
	return Stat{
		Symbol:    stat.Symbol,
		Supply:    AssetView(stat.Supply),
		MaxSupply: AssetView(stat.MaxSupply),
		Available: AssetView(core.NewAsset(stat.Available(), stat.MaxSupply.Symbol)),
		Issuer:    stat.Issuer,
		Locked:    stat.Locked,
		CreatedAt: stat.CreatedAt,
		UpdatedAt: stat.UpdatedAt,
	}
}

// Balance balance view
type Balance struct {
	Owner   string `json:"owner"`
	Balance Asset  `json:"balance"`
}

// BalanceView balance view of owner
func BalanceView(owner string, balance core.Asset) Balance {
	return Balance{
		Owner:   owner,
		Balance: AssetView(balance),
	}
}
