package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/quarryhq/tally/internal/storage"
	"github.com/spf13/cobra"
)

func backupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export and import ledger snapshots",
	}

	cmd.AddCommand(backupExportCmd())
	cmd.AddCommand(backupImportCmd())
	return cmd
}

func backupExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file.json>",
		Short: "Export the whole ledger to a JSON snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			snap, err := store.ExportSnapshot(ctx)
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(snap, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode snapshot: %w", err)
			}
			if err := os.WriteFile(args[0], data, 0600); err != nil {
				return fmt.Errorf("failed to write %s: %w", args[0], err)
			}

			fmt.Printf("Exported %d vendors, %d transactions, %d projects to %s\n",
				len(snap.Vendors), len(snap.Transactions), len(snap.Projects), args[0])
			return nil
		},
	}
}

func backupImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json>",
		Short: "Restore the ledger from a JSON snapshot",
		Long:  `Restore from a snapshot. Collections present in the file replace what is stored; absent collections are left untouched.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			var snap storage.Snapshot
			if err := json.Unmarshal(data, &snap); err != nil {
				return fmt.Errorf("failed to parse snapshot: %w", err)
			}

			if err := store.ImportSnapshot(ctx, &snap); err != nil {
				return err
			}

			fmt.Println("Snapshot imported")
			return nil
		},
	}
}
