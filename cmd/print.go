package cmd

import (
	"encoding/json"
	"sort"
	"time"

	"tokenledger/core"

	"github.com/spf13/cobra"
	"github.com/yiplee/structs"
)

// printObject print the fields of a flat struct, one per line
func printObject(cmd *cobra.Command, v interface{}) {
	fields := structs.Map(v)

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		cmd.Printf("%-12s %v\n", k+":", fields[k])
	}
}

func printJSON(cmd *cobra.Command, v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		cmd.PrintErrln("encode json:", err)
		return
	}

	cmd.Println(string(data))
}

type transactionRow struct {
	ID        int64  `json:"id"`
	TraceID   string `json:"trace_id"`
	Action    string `json:"action"`
	Actor     string `json:"actor"`
	Symbol    string `json:"symbol"`
	Data      string `json:"data"`
	CreatedAt string `json:"created_at"`
}

func transactionRowOf(tx *core.Transaction) transactionRow {
	return transactionRow{
		ID:        tx.ID,
		TraceID:   tx.TraceID,
		Action:    tx.Action.String(),
		Actor:     tx.Actor,
		Symbol:    tx.Symbol,
		Data:      tx.Data.String(),
		CreatedAt: tx.CreatedAt.Format(time.RFC3339),
	}
}

type statRow struct {
	Symbol    string `json:"symbol"`
	Supply    string `json:"supply"`
	MaxSupply string `json:"max_supply"`
	Issuer    string `json:"issuer"`
	Locked    bool   `json:"locked"`
}

func statRowOf(stat *core.CurrencyStat) statRow {
	return statRow{
		Symbol:    stat.Symbol,
		Supply:    stat.Supply.String(),
		MaxSupply: stat.MaxSupply.String(),
		Issuer:    stat.Issuer,
		Locked:    stat.Locked,
	}
}
