package config

import (
	"testing"

	"github.com/bmizerany/assert"
)

func TestDefaults(t *testing.T) {
	var cfg Config
	defaults(&cfg)

	assert.Equal(t, DriverSQL, cfg.Store.Driver)
	assert.Equal(t, "tokenledger", cfg.Ledger.Contract)
	assert.Equal(t, 0, cfg.Cache.Size)
	assert.Equal(t, 60, cfg.Cache.TTL)
	assert.Equal(t, "@every 1h", cfg.Auditor.Sweep)

	cfg = Config{Store: Store{Driver: DriverPebble}}
	defaults(&cfg)
	assert.Equal(t, 1024, cfg.Cache.Size)

	cfg = Config{
		Store:  Store{Driver: DriverPebble},
		Ledger: Ledger{Contract: "eosio.token"},
		Cache:  Cache{Size: -1},
	}
	defaults(&cfg)

	assert.Equal(t, DriverPebble, cfg.Store.Driver)
	assert.Equal(t, "eosio.token", cfg.Ledger.Contract)
	assert.Equal(t, -1, cfg.Cache.Size)
}
