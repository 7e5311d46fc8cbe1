package auditor

import (
	"context"
	"errors"
	"time"

	"tokenledger/core"

	"github.com/fox-one/pkg/logger"
	"github.com/sirupsen/logrus"
)

const (
	checkpointKey = "auditor_checkpoint"
	// reads of a symbol's stat and holders before it is skipped as busy
	auditAttempts = 3
)

// Report holdings of a symbol against its stat
type Report struct {
	Symbol    string
	Supply    core.Asset
	MaxSupply core.Asset
	Holdings  core.Asset
	Holders   int
	// Busy the stat kept changing while holders were read, nothing was checked
	Busy bool
}

// Conserved sum of balances equals supply
func (r *Report) Conserved() bool {
	return r.Holdings.Amount == r.Supply.Amount
}

// Bounded supply within max supply
func (r *Report) Bounded() bool {
	return r.Supply.Amount >= 0 && r.Supply.Amount <= r.MaxSupply.Amount
}

// OK no violation
func (r *Report) OK() bool {
	return r.Busy || (r.Conserved() && r.Bounded())
}

// Auditor walks the action journal and verifies every touched symbol
type Auditor struct {
	ledgers     core.LedgerStore
	checkpoints core.CheckpointStore
}

// New new supply auditor
func New(ledgers core.LedgerStore, checkpoints core.CheckpointStore) *Auditor {
	return &Auditor{
		ledgers:     ledgers,
		checkpoints: checkpoints,
	}
}

// Run worker run
func (w *Auditor) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", "auditor")
	ctx = logger.WithContext(ctx, log)

	dur := time.Millisecond

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(dur):
			if err := w.run(ctx); err == nil {
				dur = 100 * time.Millisecond
			} else {
				dur = time.Second
			}
		}
	}
}

func (w *Auditor) run(ctx context.Context) error {
	log := logger.FromContext(ctx)

	from, err := w.checkpoints.Checkpoint(ctx, checkpointKey)
	if err != nil {
		log.WithError(err).Errorln("checkpoints.Checkpoint")
		return err
	}

	const limit = 100
	transactions, err := w.ledgers.ListTransactions(ctx, from, limit)
	if err != nil {
		log.WithError(err).Errorln("ledgers.ListTransactions")
		return err
	}

	if len(transactions) == 0 {
		return errors.New("EOF")
	}

	audited := make(map[string]bool)
	for _, tx := range transactions {
		if tx.Symbol == "" || audited[tx.Symbol] {
			continue
		}

		if _, err := w.Audit(ctx, tx.Symbol); err != nil {
			return err
		}
		audited[tx.Symbol] = true
	}

	last := transactions[len(transactions)-1].ID
	if err := w.checkpoints.SaveCheckpoint(ctx, checkpointKey, last); err != nil {
		log.WithError(err).Errorln("checkpoints.SaveCheckpoint")
		return err
	}

	return nil
}

// Sweep audit every symbol
func (w *Auditor) Sweep(ctx context.Context) error {
	log := logger.FromContext(ctx)

	stats, err := w.ledgers.ListStats(ctx)
	if err != nil {
		log.WithError(err).Errorln("ledgers.ListStats")
		return err
	}

	var violations int
	for _, stat := range stats {
		report, err := w.Audit(ctx, stat.Symbol)
		if err != nil {
			return err
		}

		if !report.OK() {
			violations++
		}
	}

	log.WithField("violations", violations).Infof("swept %d symbols", len(stats))
	return nil
}

// Audit compare holdings of symbol with its stat, violations are logged.
// The stat is read again after the holders and the audit is retried if a
// write landed in between.
func (w *Auditor) Audit(ctx context.Context, symbol string) (*Report, error) {
	log := logger.FromContext(ctx).WithField("symbol", symbol)

	var (
		stat    *core.CurrencyStat
		holders []*core.Balance
	)

	for attempt := 0; ; attempt++ {
		if attempt == auditAttempts {
			log.Warnln("stat changed during every audit attempt, skipped")
			return &Report{Symbol: symbol, Busy: true}, nil
		}

		before, err := w.ledgers.FindStat(ctx, symbol)
		if err != nil {
			log.WithError(err).Errorln("ledgers.FindStat")
			return nil, err
		}

		holders, err = w.ledgers.ListHolders(ctx, symbol)
		if err != nil {
			log.WithError(err).Errorln("ledgers.ListHolders")
			return nil, err
		}

		after, err := w.ledgers.FindStat(ctx, symbol)
		if err != nil {
			log.WithError(err).Errorln("ledgers.FindStat")
			return nil, err
		}

		if before.Version == after.Version {
			stat = after
			break
		}
	}

	report := &Report{
		Symbol:    symbol,
		Supply:    stat.Supply,
		MaxSupply: stat.MaxSupply,
		Holdings:  stat.Supply.Zero(),
		Holders:   len(holders),
	}

	for _, h := range holders {
		holdings, err := report.Holdings.Add(h.Balance)
		if err != nil {
			log.WithError(err).WithField("owner", h.Owner).Errorln("sum holdings")
			return nil, err
		}
		report.Holdings = holdings
	}

	log = log.WithFields(logrus.Fields{
		"supply":     report.Supply.String(),
		"max_supply": report.MaxSupply.String(),
		"holdings":   report.Holdings.String(),
	})

	if !report.Conserved() {
		log.Errorln("sum of balances differs from supply")
	}

	if !report.Bounded() {
		log.Errorln("supply out of bounds")
	}

	return report, nil
}
