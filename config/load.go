package config

import "github.com/fox-one/pkg/config"

// Load load config file
func Load(cfgFile string, cfg *Config) error {
	config.AutomaticLoadEnv("TOKENLEDGER")
	if err := config.LoadYaml(cfgFile, cfg); err != nil {
		return err
	}

	defaults(cfg)
	return nil
}

func defaults(cfg *Config) {
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = DriverSQL
	}

	if cfg.Ledger.Contract == "" {
		cfg.Ledger.Contract = "tokenledger"
	}

	if cfg.Cache.Size == 0 && cfg.Store.Driver == DriverPebble {
		cfg.Cache.Size = 1024
	}

	if cfg.Cache.TTL <= 0 {
		cfg.Cache.TTL = 60
	}

	if cfg.Auditor.Sweep == "" {
		cfg.Auditor.Sweep = "@every 1h"
	}

	if cfg.Auditor.Location == "" {
		cfg.Auditor.Location = "UTC"
	}
}
