package main

import (
	"fmt"
	"os"

	"github.com/quarryhq/tally/internal/importer"
	"github.com/spf13/cobra"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import data from files",
	}

	cmd.AddCommand(importTransactionsCmd())
	return cmd
}

func importTransactionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transactions <file.csv>",
		Short: "Import transactions from a CSV file",
		Long: `Import transactions from a CSV file with columns date, type, amount,
category, payment_method, payment_status, amount_paid, description, notes,
vendor, project. Vendors named in the file are created if missing; bad rows
are reported and skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer func() { _ = file.Close() }()

			result, err := importer.New(store, nil).ImportTransactions(ctx, file)
			if err != nil {
				return err
			}

			fmt.Printf("Imported %d transactions", result.Imported)
			if result.VendorsCreated > 0 {
				fmt.Printf(", created %d vendors", result.VendorsCreated)
			}
			fmt.Println()
			for _, rowErr := range result.RowErrors {
				fmt.Fprintf(os.Stderr, "skipped %v\n", rowErr)
			}
			return nil
		},
	}
}
