package cmd

import (
	"fmt"

	"tokenledger/handler/views"
	"tokenledger/service/authz"

	"github.com/spf13/cobra"
)

var statCmd = &cobra.Command{
	Use:   "stat [symbol]",
	Short: "show the stat of a symbol, or all stats",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		b := provideBackend()
		defer b.close()
		ledgers := provideLedgerService(b, authz.Local(""))

		if len(args) == 1 {
			stat, err := ledgers.Stat(ctx, args[0])
			if err != nil {
				return fmt.Errorf("stat: %w", err)
			}

			printObject(cmd, statRowOf(stat))
			return nil
		}

		stats, err := ledgers.Stats(ctx)
		if err != nil {
			return fmt.Errorf("list stats: %w", err)
		}

		for _, stat := range stats {
			row := statRowOf(stat)
			cmd.Printf("%-7s %24s / %-24s issuer=%s locked=%v\n", row.Symbol, row.Supply, row.MaxSupply, row.Issuer, row.Locked)
		}

		return nil
	},
}

var balanceCmd = &cobra.Command{
	Use:     "balance <owner> [symbol]",
	Aliases: []string{"bal"},
	Short:   "show balances of an owner",
	Args:    cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		b := provideBackend()
		defer b.close()
		ledgers := provideLedgerService(b, authz.Local(""))

		owner := args[0]
		if len(args) == 2 {
			balance, err := ledgers.Balance(ctx, owner, args[1])
			if err != nil {
				return fmt.Errorf("balance: %w", err)
			}

			printJSON(cmd, views.BalanceView(owner, balance))
			return nil
		}

		balances, err := ledgers.Balances(ctx, owner)
		if err != nil {
			return fmt.Errorf("list balances: %w", err)
		}

		for _, balance := range balances {
			cmd.Println(balance.Balance.String())
		}

		return nil
	},
}

var transactionsCmd = &cobra.Command{
	Use:     "transactions",
	Aliases: []string{"txs"},
	Short:   "list journal entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		b := provideBackend()
		defer b.close()
		ledgers := provideLedgerService(b, authz.Local(""))

		from, _ := cmd.Flags().GetInt64("from")
		limit, _ := cmd.Flags().GetInt("limit")

		transactions, err := ledgers.Transactions(ctx, from, limit)
		if err != nil {
			return fmt.Errorf("list transactions: %w", err)
		}

		for _, tx := range transactions {
			cmd.Printf("#%-6d %-12s %-12s %-7s %s\n", tx.ID, tx.Action, tx.Actor, tx.Symbol, tx.Data)
		}

		return nil
	},
}

func init() {
	transactionsCmd.Flags().Int64("from", 0, "list entries after this id")
	transactionsCmd.Flags().Int("limit", 50, "max entries")

	rootCmd.AddCommand(statCmd, balanceCmd, transactionsCmd)
}
