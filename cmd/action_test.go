package cmd

import (
	"errors"
	"testing"

	"tokenledger/core"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagAsset(t *testing.T) {
	cmd := &cobra.Command{Use: "issue"}
	cmd.Flags().String("quantity", "", "")

	require.Nil(t, cmd.Flags().Set("quantity", "1.0000 TOK"))
	asset, err := flagAsset(cmd, "quantity")
	require.Nil(t, err)
	assert.Equal(t, "1.0000 TOK", asset.String())

	require.Nil(t, cmd.Flags().Set("quantity", "1.0000TOK"))
	_, err = flagAsset(cmd, "quantity")
	assert.True(t, errors.Is(err, core.ErrMalformedAsset))
	assert.Contains(t, err.Error(), "issue rejected (100100)")
	assert.Contains(t, err.Error(), "--quantity")
}

func TestActionMalformedInput(t *testing.T) {
	for _, tc := range []struct {
		cmd  *cobra.Command
		flag string
		text string
		err  error
	}{
		{issueCmd, "quantity", "500 .0000 TOK", core.ErrMalformedAsset},
		{transferCmd, "quantity", "", core.ErrMalformedAsset},
		{withdrawCmd, "quantity", "1.0000 tok", core.ErrMalformedAsset},
		{burnCmd, "quantity", "1. TOK", core.ErrMalformedAsset},
		{unlockCmd, "symbol", "TOK", core.ErrInvalidSymbol},
	} {
		t.Run(tc.cmd.Name(), func(t *testing.T) {
			require.Nil(t, tc.cmd.Flags().Set(tc.flag, tc.text))
			err := tc.cmd.RunE(tc.cmd, nil)
			assert.True(t, errors.Is(err, tc.err), "%v", err)
		})
	}
}
