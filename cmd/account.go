package cmd

import (
	"fmt"

	"tokenledger/core"
	"tokenledger/pkg/security"

	"github.com/spf13/cobra"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "manage known accounts",
}

var accountAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "add an account and print its owner and active keys",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		name := args[0]
		if !core.IsValidAccount(name) {
			return fmt.Errorf("%w: %q", core.ErrInvalidAccount, name)
		}

		b := provideBackend()
		defer b.close()

		keys := map[string]string{}
		var permissions []*core.Permission
		for _, p := range []string{core.PermissionOwner, core.PermissionActive} {
			key, err := security.RandomKey()
			if err != nil {
				return err
			}

			keys[p] = key
			permissions = append(permissions, &core.Permission{
				Name:    p,
				KeyHash: security.HashKey(key),
			})
		}

		account := &core.Account{Name: name}
		if err := b.accounts.Create(ctx, account, permissions...); err != nil {
			return fmt.Errorf("create account: %w", err)
		}

		cmd.Println("account:", account.Name)
		cmd.Println("owner key:", keys[core.PermissionOwner])
		cmd.Println("active key:", keys[core.PermissionActive])
		return nil
	},
}

var accountListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "list accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		b := provideBackend()
		defer b.close()

		accounts, err := b.accounts.List(ctx)
		if err != nil {
			return fmt.Errorf("list accounts: %w", err)
		}

		for _, account := range accounts {
			cmd.Println(account.Name)
		}

		return nil
	},
}

func init() {
	accountCmd.AddCommand(accountAddCmd, accountListCmd)
	rootCmd.AddCommand(accountCmd)
}
