package cmd

import (
	"context"
	"fmt"

	"tokenledger/core"
	"tokenledger/service/authz"

	"github.com/spf13/cobra"
)

type actionFunc func(ctx context.Context, ledgers core.LedgerService, auth core.Authorization) (*core.Transaction, error)

// runAction run do as --actor with the local authorizer and print the journal entry
func runAction(cmd *cobra.Command, do actionFunc) error {
	ctx := cmd.Context()

	actor, _ := cmd.Flags().GetString("actor")
	auth := core.NewAuthorization(actor)
	if p, _ := cmd.Flags().GetString("permission"); p != "" {
		auth.Permission = p
	}

	b := provideBackend()
	defer b.close()

	ledgers := provideLedgerService(b, authz.Local(actor))
	tx, err := do(ctx, ledgers, auth)
	if err != nil {
		return actionError(cmd.Name(), err)
	}

	printObject(cmd, transactionRowOf(tx))
	return nil
}

// actionError rejection of action with its ledger code
func actionError(action string, err error) error {
	code, _ := core.ErrorCodeOf(err)
	return fmt.Errorf("%s rejected (%d): %w", action, code, err)
}

func flagAsset(cmd *cobra.Command, name string) (core.Asset, error) {
	text, _ := cmd.Flags().GetString(name)
	asset, err := core.ParseAsset(text)
	if err != nil {
		return core.Asset{}, actionError(cmd.Name(), fmt.Errorf("--%s: %w", name, err))
	}

	return asset, nil
}

func newCreateCmd(use string, locked bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: "register a new symbol",
		RunE: func(cmd *cobra.Command, args []string) error {
			issuer, _ := cmd.Flags().GetString("issuer")
			maximumSupply, err := flagAsset(cmd, "maximum-supply")
			if err != nil {
				return err
			}

			req := &core.CreateRequest{
				Issuer:        issuer,
				MaximumSupply: maximumSupply,
			}

			return runAction(cmd, func(ctx context.Context, ledgers core.LedgerService, auth core.Authorization) (*core.Transaction, error) {
				if locked {
					return ledgers.CreateLocked(ctx, auth, req)
				}

				return ledgers.Create(ctx, auth, req)
			})
		},
	}

	cmd.Flags().String("issuer", "", "issuer account")
	cmd.Flags().String("maximum-supply", "", "maximum supply, e.g. \"1000000.0000 TOK\"")
	return cmd
}

var issueCmd = &cobra.Command{
	Use:   "issue",
	Short: "issue new tokens to an account",
	RunE: func(cmd *cobra.Command, args []string) error {
		to, _ := cmd.Flags().GetString("to")
		memo, _ := cmd.Flags().GetString("memo")
		quantity, err := flagAsset(cmd, "quantity")
		if err != nil {
			return err
		}

		req := &core.IssueRequest{
			To:       to,
			Quantity: quantity,
			Memo:     memo,
		}

		return runAction(cmd, func(ctx context.Context, ledgers core.LedgerService, auth core.Authorization) (*core.Transaction, error) {
			return ledgers.Issue(ctx, auth, req)
		})
	},
}

var transferCmd = &cobra.Command{
	Use:     "transfer",
	Aliases: []string{"tf"},
	Short:   "transfer tokens between accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")
		memo, _ := cmd.Flags().GetString("memo")
		quantity, err := flagAsset(cmd, "quantity")
		if err != nil {
			return err
		}

		req := &core.TransferRequest{
			From:     from,
			To:       to,
			Quantity: quantity,
			Memo:     memo,
		}

		return runAction(cmd, func(ctx context.Context, ledgers core.LedgerService, auth core.Authorization) (*core.Transaction, error) {
			return ledgers.Transfer(ctx, auth, req)
		})
	},
}

var unlockCmd = &cobra.Command{
	Use:   "unlock",
	Short: "unlock a symbol created locked",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, _ := cmd.Flags().GetString("symbol")
		symbol, err := core.ParseSymbol(text)
		if err != nil {
			return actionError(cmd.Name(), fmt.Errorf("--symbol: %w", err))
		}

		return runAction(cmd, func(ctx context.Context, ledgers core.LedgerService, auth core.Authorization) (*core.Transaction, error) {
			return ledgers.Unlock(ctx, auth, &core.UnlockRequest{Symbol: symbol})
		})
	},
}

var withdrawCmd = &cobra.Command{
	Use:     "withdraw",
	Aliases: []string{"ww"},
	Short:   "withdraw tokens held by the ledger account to an external contract",
	RunE: func(cmd *cobra.Command, args []string) error {
		contract, _ := cmd.Flags().GetString("contract")
		quantity, err := flagAsset(cmd, "quantity")
		if err != nil {
			return err
		}

		req := &core.WithdrawRequest{
			Contract: contract,
			Quantity: quantity,
		}

		return runAction(cmd, func(ctx context.Context, ledgers core.LedgerService, auth core.Authorization) (*core.Transaction, error) {
			return ledgers.Withdraw(ctx, auth, req)
		})
	},
}

var burnCmd = &cobra.Command{
	Use:   "burn",
	Short: "burn tokens of the owner",
	RunE: func(cmd *cobra.Command, args []string) error {
		owner, _ := cmd.Flags().GetString("owner")
		quantity, err := flagAsset(cmd, "quantity")
		if err != nil {
			return err
		}

		req := &core.BurnRequest{
			Owner:    owner,
			Quantity: quantity,
		}

		return runAction(cmd, func(ctx context.Context, ledgers core.LedgerService, auth core.Authorization) (*core.Transaction, error) {
			return ledgers.Burn(ctx, auth, req)
		})
	},
}

func init() {
	createCmd := newCreateCmd("create", false)
	createLockedCmd := newCreateCmd("createlocked", true)

	issueCmd.Flags().String("to", "", "receiver account")
	issueCmd.Flags().String("quantity", "", "quantity, e.g. \"500.0000 TOK\"")
	issueCmd.Flags().String("memo", "", "memo")

	transferCmd.Flags().String("from", "", "sender account")
	transferCmd.Flags().String("to", "", "receiver account")
	transferCmd.Flags().String("quantity", "", "quantity, e.g. \"1.0000 TOK\"")
	transferCmd.Flags().String("memo", "", "memo")

	unlockCmd.Flags().String("symbol", "", "symbol spec, e.g. \"4,TOK\"")

	withdrawCmd.Flags().String("contract", "", "target contract")
	withdrawCmd.Flags().String("quantity", "", "quantity, e.g. \"1.0000 TOK\"")

	burnCmd.Flags().String("owner", "", "owner account")
	burnCmd.Flags().String("quantity", "", "quantity, e.g. \"1.0000 TOK\"")

	for _, c := range []*cobra.Command{createCmd, createLockedCmd, issueCmd, transferCmd, unlockCmd, withdrawCmd, burnCmd} {
		c.Flags().String("actor", "", "acting account")
		c.Flags().String("permission", core.PermissionActive, "permission of the actor")
		rootCmd.AddCommand(c)
	}
}
