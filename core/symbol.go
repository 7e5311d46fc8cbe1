package core

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// MaxPrecision max fractional digits of an asset
	MaxPrecision = 18
	// MaxSymbolLength max letters of a symbol code
	MaxSymbolLength = 7
)

// Symbol precision and code of a token, e.g. 4,TOK
type Symbol struct {
	Precision uint8  `json:"precision"`
	Code      string `json:"code"`
}

// NewSymbol new symbol
func NewSymbol(precision uint8, code string) Symbol {
	return Symbol{Precision: precision, Code: code}
}

// ParseSymbol parse symbol spec "precision,CODE"
func ParseSymbol(text string) (Symbol, error) {
	parts := strings.Split(strings.TrimSpace(text), ",")
	if len(parts) != 2 {
		return Symbol{}, fmt.Errorf("%w: symbol spec %q", ErrInvalidSymbol, text)
	}

	p, err := strconv.ParseUint(parts[0], 10, 8)
	if err != nil || p > MaxPrecision {
		return Symbol{}, fmt.Errorf("%w: precision %q", ErrInvalidSymbol, parts[0])
	}

	s := Symbol{Precision: uint8(p), Code: parts[1]}
	if !s.IsValid() {
		return Symbol{}, fmt.Errorf("%w: code %q", ErrInvalidSymbol, parts[1])
	}

	return s, nil
}

// IsValidSymbolCode code must be 1-7 uppercase ascii letters
func IsValidSymbolCode(code string) bool {
	if len(code) == 0 || len(code) > MaxSymbolLength {
		return false
	}

	for i := 0; i < len(code); i++ {
		if c := code[i]; c < 'A' || c > 'Z' {
			return false
		}
	}

	return true
}

// IsValid check code and precision
func (s Symbol) IsValid() bool {
	return s.Precision <= MaxPrecision && IsValidSymbolCode(s.Code)
}

// String format as "precision,CODE"
func (s Symbol) String() string {
	return fmt.Sprintf("%d,%s", s.Precision, s.Code)
}

// MarshalText implements encoding.TextMarshaler
func (s Symbol) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *Symbol) UnmarshalText(b []byte) error {
	v, err := ParseSymbol(string(b))
	if err != nil {
		return err
	}

	*s = v
	return nil
}
