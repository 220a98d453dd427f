package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/prateek041/typedpipes/ledger"
)

// Ledger command flags
var where string

var ledgerCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Record transactions and look them up",
	Long: `Records a handful of transactions in a ledger and lists the ones
matching a query. The query is an expression over id, data and
timestamp; without --where, transactions above 1000 are listed.

Examples:
  typedpipes ledger
  typedpipes ledger --where 'id startsWith "Transaction" && data < 2000'`,
	Args: cobra.NoArgs,
	RunE: runLedger,
}

func init() {
	ledgerCmd.Flags().StringVar(&where, "where", "", "expression selecting entries, e.g. 'data > 1000'")
}

func runLedger(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "--- Ledger ---")

	book := ledger.New[string, float64]()
	for _, tx := range []struct {
		id     string
		amount float64
	}{
		{"Transaction1", 1500.0},
		{"Transaction2", 800.0},
		{"Transaction3", 2500.0},
		{"Transaction4", 1200.0},
	} {
		if _, err := book.Add(tx.id, tx.amount); err != nil {
			return err
		}
	}

	var (
		found []ledger.Entry[string, float64]
		err   error
	)
	if where == "" {
		found = book.Find(func(e ledger.Entry[string, float64]) bool { return e.Data > 1000 })
	} else if found, err = book.FindWhere(where); err != nil {
		return err
	}

	fmt.Fprintf(out, "%d of %d entries match\n", len(found), book.Len())
	for _, e := range found {
		fmt.Fprintf(out, "  %s: %.2f at %s\n", e.ID, e.Data, e.Timestamp.Format(time.RFC3339))
	}
	logger.Debug("ledger query", zap.String("where", where), zap.Int("matches", len(found)))
	return nil
}
