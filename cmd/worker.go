package cmd

import (
	"context"
	"sync"

	"tokenledger/worker"
	"tokenledger/worker/auditor"

	"github.com/drone/signal"
	"github.com/fox-one/pkg/logger"
	"github.com/spf13/cobra"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "run supply auditor",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := signal.WithContext(cmd.Context())
		log := logger.FromContext(ctx)
		ctx = logger.WithContext(ctx, log)

		b := provideBackend()
		defer b.close()

		audit := auditor.New(b.ledgers, b.checkpoints)
		sweep, err := worker.NewCronJob("sweeper", cfg.Auditor.Location, cfg.Auditor.Sweep, audit.Sweep)
		if err != nil {
			log.WithError(err).Fatalln("invalid auditor config")
		}

		workers := []worker.Worker{
			audit,
			sweep,
		}

		wg := sync.WaitGroup{}
		for _, w := range workers {
			wg.Add(1)

			go func(w worker.Worker) {
				defer wg.Done()
				if err := w.Run(ctx); err != nil && err != context.Canceled {
					log.WithError(err).Errorln("worker stopped")
				}
			}(w)
		}

		wg.Wait()
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
}
