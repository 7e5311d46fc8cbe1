package cmd

import (
	"context"
	"time"

	"tokenledger/config"
	"tokenledger/core"
	"tokenledger/handler/hc"
	"tokenledger/service/ledger"
	"tokenledger/service/transfer"
	accountstore "tokenledger/store/account"
	"tokenledger/store/kv"
	ledgerstore "tokenledger/store/ledger"
	"tokenledger/store/property"

	"github.com/fox-one/pkg/store/db"
	propertystore "github.com/fox-one/pkg/store/property"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

func provideDatabase() *db.DB {
	return db.MustOpen(cfg.DB)
}

func provideSystem() *core.System {
	return &core.System{
		Contract: cfg.Ledger.Contract,
		Admins:   cfg.Ledger.Admins,
		Version:  rootCmd.Version,
	}
}

// backend stores of the configured driver
type backend struct {
	ledgers     core.LedgerStore
	accounts    core.AccountStore
	checkpoints core.CheckpointStore
	close       func()
}

func (b *backend) ping(ctx context.Context) error {
	_, err := b.accounts.Exists(ctx, cfg.Ledger.Contract)
	return err
}

func (b *backend) pinger() hc.Pinger {
	return b.ping
}

func provideBackend() *backend {
	var b backend

	switch cfg.Store.Driver {
	case config.DriverPebble:
		database := kv.MustOpen(cfg.Store.Path)
		b = backend{
			ledgers:     kv.NewLedgerStore(database),
			accounts:    kv.NewAccountStore(database),
			checkpoints: kv.NewCheckpointStore(database),
			close: func() {
				if err := database.Close(); err != nil {
					logrus.WithError(err).Errorln("close pebble")
				}
			},
		}
	case config.DriverSQL:
		database := provideDatabase()
		b = backend{
			ledgers:     ledgerstore.New(database),
			accounts:    accountstore.New(database),
			checkpoints: property.New(propertystore.New(database)),
			close: func() {
				database.Close()
			},
		}
	default:
		logrus.Fatalf("unknown store driver %q", cfg.Store.Driver)
	}

	if cfg.Cache.Size > 0 {
		b.ledgers = ledgerstore.Cache(b.ledgers, cfg.Cache.Size, time.Duration(cfg.Cache.TTL)*time.Second)
	}

	return &b
}

func provideTransferService() core.TransferService {
	return transfer.New(transfer.Config{
		Endpoint: cfg.Withdraw.Endpoint,
	})
}

func provideLedgerService(b *backend, authz core.Authorizer) core.LedgerService {
	return ledger.New(provideSystem(), b.ledgers, b.accounts, authz, provideTransferService())
}
