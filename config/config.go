package config

import (
	"github.com/fox-one/pkg/store/db"
)

const (
	// DriverSQL ledger tables in the sql database
	DriverSQL = "sql"
	// DriverPebble ledger tables in an embedded pebble database
	DriverPebble = "pebble"
)

// Config tokenledger config
type Config struct {
	DB       db.Config `json:"db"`
	Store    Store     `json:"store"`
	Ledger   Ledger    `json:"ledger"`
	Withdraw Withdraw  `json:"withdraw"`
	Cache    Cache     `json:"cache"`
	Auditor  Auditor   `json:"auditor"`
}

// Store store backend
type Store struct {
	// Driver sql or pebble
	Driver string `json:"driver"`
	// Path pebble data dir, in memory if empty
	Path string `json:"path"`
}

// Ledger ledger deployment
type Ledger struct {
	// Contract account hosting the ledger
	Contract string   `json:"contract"`
	Admins   []string `json:"admins"`
}

// Withdraw external transfer gateway
type Withdraw struct {
	Endpoint string `json:"endpoint"`
}

// Cache stat cache
type Cache struct {
	// Size stats kept in memory, negative disables the cache.
	// Off by default for the sql driver, other processes may write the same tables
	Size int `json:"size"`
	// TTL seconds a cached stat lives
	TTL int `json:"ttl"`
}

// Auditor supply auditor
type Auditor struct {
	// Sweep cron spec of the full sweep
	Sweep    string `json:"sweep"`
	Location string `json:"location"`
}
