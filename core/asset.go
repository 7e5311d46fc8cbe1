package core

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// MaxAmount largest amount a max supply may hold, 2^62 - 1
const MaxAmount int64 = 1<<62 - 1

var pow10 = func() [MaxPrecision + 1]int64 {
	var p [MaxPrecision + 1]int64
	p[0] = 1
	for i := 1; i <= MaxPrecision; i++ {
		p[i] = p[i-1] * 10
	}
	return p
}()

// Asset fixed-point quantity of a token
type Asset struct {
	Amount int64  `json:"amount"`
	Symbol Symbol `json:"symbol"`
}

// NewAsset new asset
func NewAsset(amount int64, symbol Symbol) Asset {
	return Asset{Amount: amount, Symbol: symbol}
}

// ParseAsset parse "<integer>[.<fraction>] <CODE>", the fraction digits define the precision
func ParseAsset(text string) (Asset, error) {
	malformed := func(reason string) error {
		return fmt.Errorf("%w: %s in %q", ErrMalformedAsset, reason, text)
	}

	idx := strings.IndexByte(text, ' ')
	if idx < 0 {
		return Asset{}, malformed("missing space")
	}

	num, code := text[:idx], text[idx+1:]
	if !IsValidSymbolCode(code) {
		return Asset{}, malformed("invalid symbol")
	}

	negative := strings.HasPrefix(num, "-")
	if negative {
		num = num[1:]
	}

	intPart, fracPart := num, ""
	if dot := strings.IndexByte(num, '.'); dot >= 0 {
		intPart, fracPart = num[:dot], num[dot+1:]
		if fracPart == "" {
			return Asset{}, malformed("empty fraction")
		}
	}

	if intPart == "" || !isDigits(intPart) || !isDigits(fracPart) {
		return Asset{}, malformed("invalid number")
	}

	if len(fracPart) > MaxPrecision {
		return Asset{}, malformed("precision too high")
	}

	digits := intPart + fracPart
	if negative {
		digits = "-" + digits
	}

	amount, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return Asset{}, malformed("amount out of range")
	}

	return Asset{
		Amount: amount,
		Symbol: Symbol{Precision: uint8(len(fracPart)), Code: code},
	}, nil
}

// MustParseAsset parse asset or panic
func MustParseAsset(text string) Asset {
	a, err := ParseAsset(text)
	if err != nil {
		panic(err)
	}

	return a
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// String format to asset text, inverse of ParseAsset
func (a Asset) String() string {
	sign := ""
	abs := uint64(a.Amount)
	if a.Amount < 0 {
		sign = "-"
		abs = uint64(-(a.Amount + 1)) + 1
	}

	p := a.Symbol.Precision
	if p > MaxPrecision {
		return a.Decimal().StringFixed(int32(p)) + " " + a.Symbol.Code
	}

	if p == 0 {
		return fmt.Sprintf("%s%d %s", sign, abs, a.Symbol.Code)
	}

	unit := uint64(pow10[p])
	return fmt.Sprintf("%s%d.%0*d %s", sign, abs/unit, int(p), abs%unit, a.Symbol.Code)
}

// Decimal amount as decimal, e.g. 500.0000 TOK => 500
func (a Asset) Decimal() decimal.Decimal {
	return decimal.New(a.Amount, -int32(a.Symbol.Precision))
}

// IsValid amount within ±MaxAmount and valid symbol
func (a Asset) IsValid() bool {
	return a.Amount >= -MaxAmount && a.Amount <= MaxAmount && a.Symbol.IsValid()
}

// Compatible same precision and code
func (a Asset) Compatible(b Asset) bool {
	return a.Symbol == b.Symbol
}

// Zero zero asset of the same symbol
func (a Asset) Zero() Asset {
	return Asset{Symbol: a.Symbol}
}

// Add a + b, fails on symbol mismatch or overflow
func (a Asset) Add(b Asset) (Asset, error) {
	if !a.Compatible(b) {
		return Asset{}, fmt.Errorf("%w: %s + %s", ErrSymbolMismatch, a.Symbol, b.Symbol)
	}

	if b.Amount > 0 && a.Amount > math.MaxInt64-b.Amount {
		return Asset{}, ErrOverflow
	}

	if b.Amount < 0 && a.Amount < math.MinInt64-b.Amount {
		return Asset{}, ErrUnderflow
	}

	return Asset{Amount: a.Amount + b.Amount, Symbol: a.Symbol}, nil
}

// Sub a - b, fails on symbol mismatch or overflow
func (a Asset) Sub(b Asset) (Asset, error) {
	if !a.Compatible(b) {
		return Asset{}, fmt.Errorf("%w: %s - %s", ErrSymbolMismatch, a.Symbol, b.Symbol)
	}

	if b.Amount < 0 && a.Amount > math.MaxInt64+b.Amount {
		return Asset{}, ErrOverflow
	}

	if b.Amount > 0 && a.Amount < math.MinInt64+b.Amount {
		return Asset{}, ErrUnderflow
	}

	return Asset{Amount: a.Amount - b.Amount, Symbol: a.Symbol}, nil
}

// json encoding

// MarshalJSON encode as asset text
func (a Asset) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON decode from asset text
func (a *Asset) UnmarshalJSON(b []byte) error {
	var text string
	if err := json.Unmarshal(b, &text); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedAsset, err)
	}

	v, err := ParseAsset(text)
	if err != nil {
		return err
	}

	*a = v
	return nil
}

// sql

// Value implements driver.Valuer
func (a Asset) Value() (driver.Value, error) {
	return a.String(), nil
}

// Scan implements sql.Scanner
func (a *Asset) Scan(src interface{}) error {
	v, err := ParseAsset(cast.ToString(src))
	if err != nil {
		return err
	}

	*a = v
	return nil
}
