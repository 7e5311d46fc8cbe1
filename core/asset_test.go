package core

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAsset(t *testing.T) {
	for _, tc := range []struct {
		text      string
		amount    int64
		precision uint8
		code      string
	}{
		{"1000000.0000 TOK", 10000000000, 4, "TOK"},
		{"500.0000 TOK", 5000000, 4, "TOK"},
		{"0 A", 0, 0, "A"},
		{"1 ABCDEFG", 1, 0, "ABCDEFG"},
		{"0.000000000000000001 WEI", 1, 18, "WEI"},
		{"-1.5 EOS", -15, 1, "EOS"},
		{"4611686018427387903 TOK", MaxAmount, 0, "TOK"},
		{"9223372036854775807 MAX", math.MaxInt64, 0, "MAX"},
		{"-9223372036854775808 MIN", math.MinInt64, 0, "MIN"},
	} {
		t.Run(tc.text, func(t *testing.T) {
			a, err := ParseAsset(tc.text)
			require.Nil(t, err)
			assert.Equal(t, tc.amount, a.Amount)
			assert.Equal(t, tc.precision, a.Symbol.Precision)
			assert.Equal(t, tc.code, a.Symbol.Code)
			assert.Equal(t, tc.text, a.String())
		})
	}
}

func TestParseAssetMalformed(t *testing.T) {
	for _, text := range []string{
		"",
		"1.0000TOK",
		"1.0000  TOK",
		"1.0000 tok",
		"1.0000 TOOLONGX",
		"1.0000 T0K",
		"1. TOK",
		".5 TOK",
		"1.2.3 TOK",
		"abc TOK",
		"+1 TOK",
		"1.0000000000000000000 TOK",
		"9223372036854775808 TOK",
		"1 ",
	} {
		t.Run(text, func(t *testing.T) {
			_, err := ParseAsset(text)
			assert.ErrorIs(t, err, ErrMalformedAsset)
		})
	}
}

func TestAssetRoundTrip(t *testing.T) {
	codes := []string{"A", "TOK", "ABCDEFG"}
	amounts := []int64{0, 1, 7, 10, 999, 123456789, MaxAmount, math.MaxInt64, -1, -100, math.MinInt64}

	for p := uint8(0); p <= MaxPrecision; p++ {
		for _, code := range codes {
			for _, amount := range amounts {
				text := NewAsset(amount, NewSymbol(p, code)).String()
				a, err := ParseAsset(text)
				require.Nil(t, err, text)
				assert.Equal(t, text, a.String())
				assert.Equal(t, amount, a.Amount, text)
				assert.Equal(t, p, a.Symbol.Precision, text)
			}
		}
	}
}

func TestAssetArithmetic(t *testing.T) {
	a := MustParseAsset("1.0000 TOK")

	sum, err := a.Add(MustParseAsset("2.5000 TOK"))
	require.Nil(t, err)
	assert.Equal(t, "3.5000 TOK", sum.String())

	diff, err := a.Sub(MustParseAsset("2.5000 TOK"))
	require.Nil(t, err)
	assert.Equal(t, "-1.5000 TOK", diff.String())

	_, err = a.Add(MustParseAsset("1.00 TOK"))
	assert.ErrorIs(t, err, ErrSymbolMismatch)

	_, err = a.Sub(MustParseAsset("1.0000 EOS"))
	assert.ErrorIs(t, err, ErrSymbolMismatch)

	max := NewAsset(math.MaxInt64, a.Symbol)
	_, err = max.Add(NewAsset(1, a.Symbol))
	assert.ErrorIs(t, err, ErrOverflow)

	min := NewAsset(math.MinInt64, a.Symbol)
	_, err = min.Sub(NewAsset(1, a.Symbol))
	assert.ErrorIs(t, err, ErrUnderflow)

	_, err = min.Add(NewAsset(-1, a.Symbol))
	assert.ErrorIs(t, err, ErrUnderflow)

	_, err = max.Sub(NewAsset(-1, a.Symbol))
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestAssetJSON(t *testing.T) {
	var req IssueRequest
	require.Nil(t, json.Unmarshal([]byte(`{"to":"bob","quantity":"500.0000 TOK","memo":"m"}`), &req))
	assert.Equal(t, int64(5000000), req.Quantity.Amount)

	data, err := json.Marshal(req)
	require.Nil(t, err)
	assert.JSONEq(t, `{"to":"bob","quantity":"500.0000 TOK","memo":"m"}`, string(data))

	err = json.Unmarshal([]byte(`{"quantity":5}`), &req)
	assert.True(t, errors.Is(err, ErrMalformedAsset))
}

func TestAssetSQL(t *testing.T) {
	a := MustParseAsset("12.34 EOS")

	v, err := a.Value()
	require.Nil(t, err)
	assert.Equal(t, "12.34 EOS", v)

	var b Asset
	require.Nil(t, b.Scan([]byte("12.34 EOS")))
	assert.Equal(t, a, b)

	assert.Error(t, b.Scan(nil))
}

func TestAssetDecimal(t *testing.T) {
	assert.Equal(t, "500", MustParseAsset("500.0000 TOK").Decimal().String())
	assert.Equal(t, "0.0001", MustParseAsset("0.0001 TOK").Decimal().String())
}
