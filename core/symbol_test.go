package core

import (
	"testing"

	"github.com/bmizerany/assert"
)

func TestParseSymbol(t *testing.T) {
	s, err := ParseSymbol("4,TOK")
	assert.Equal(t, nil, err)
	assert.Equal(t, NewSymbol(4, "TOK"), s)
	assert.Equal(t, "4,TOK", s.String())

	for _, text := range []string{"", "TOK", "4,", ",TOK", "19,TOK", "-1,TOK", "4,tok", "4,TOOLONGX", "4,TOK,1", "256,TOK"} {
		_, err := ParseSymbol(text)
		assert.NotEqual(t, nil, err, text)
	}
}

func TestIsValidSymbolCode(t *testing.T) {
	assert.T(t, IsValidSymbolCode("A"))
	assert.T(t, IsValidSymbolCode("ABCDEFG"))
	assert.T(t, !IsValidSymbolCode(""))
	assert.T(t, !IsValidSymbolCode("ABCDEFGH"))
	assert.T(t, !IsValidSymbolCode("AbC"))
	assert.T(t, !IsValidSymbolCode("A1"))
}

func TestIsValidAccount(t *testing.T) {
	assert.T(t, IsValidAccount("alice"))
	assert.T(t, IsValidAccount("eosio.token"))
	assert.T(t, IsValidAccount("a12345"))
	assert.T(t, !IsValidAccount(""))
	assert.T(t, !IsValidAccount("thirteenchars"))
	assert.T(t, !IsValidAccount("Alice"))
	assert.T(t, !IsValidAccount("bob6"))
}
