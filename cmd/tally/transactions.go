package main

import (
	"fmt"
	"time"

	"github.com/quarryhq/tally/internal/model"
	"github.com/spf13/cobra"
)

func txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Manage transactions",
		Long:  `Record and inspect the money moving in and out of the business.`,
	}

	cmd.AddCommand(txListCmd())
	cmd.AddCommand(txAddCmd())
	cmd.AddCommand(txShowCmd())
	cmd.AddCommand(txEditCmd())
	cmd.AddCommand(txDeleteCmd())
	cmd.AddCommand(txMarkPaidCmd())

	return cmd
}

func txListCmd() *cobra.Command {
	var txType, vendorID, projectID, category, status, from, to, search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			var transactions []model.Transaction
			switch {
			case vendorID != "":
				transactions, err = store.ListTransactionsByVendor(ctx, vendorID)
			case projectID != "":
				transactions, err = store.ListTransactionsByProject(ctx, projectID)
			case from != "" || to != "":
				var start, end time.Time
				start = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)
				end = time.Now()
				if from != "" {
					if start, err = parseDateArg(from); err != nil {
						return err
					}
				}
				if to != "" {
					if end, err = parseDateArg(to); err != nil {
						return err
					}
					end = end.AddDate(0, 0, 1).Add(-time.Second)
				}
				transactions, err = store.ListTransactionsByDateRange(ctx, start, end)
			case search != "":
				transactions, err = store.SearchTransactions(ctx, search)
			default:
				transactions, err = store.ListTransactions(ctx)
			}
			if err != nil {
				return err
			}

			currency := currencyCode(ctx, store)
			table := newTable()
			fmt.Fprintln(table, "ID\tDATE\tTYPE\tAMOUNT\tSTATUS\tOUTSTANDING\tCATEGORY\tDESCRIPTION")
			for i := range transactions {
				txn := &transactions[i]
				if txType != "" && string(txn.Type) != txType {
					continue
				}
				if category != "" && txn.Category != category {
					continue
				}
				if status != "" && string(txn.PaymentStatus) != status {
					continue
				}
				fmt.Fprintf(table, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					txn.ID, formatDate(txn.Date), txn.Type,
					money(txn.Amount, currency), txn.PaymentStatus,
					money(txn.Outstanding(), currency), txn.Category, txn.Description)
			}
			return table.Flush()
		},
	}

	cmd.Flags().StringVar(&txType, "type", "", "filter by type (income, expense)")
	cmd.Flags().StringVar(&vendorID, "vendor", "", "filter by vendor id")
	cmd.Flags().StringVar(&projectID, "project", "", "filter by project id")
	cmd.Flags().StringVar(&category, "category", "", "filter by category")
	cmd.Flags().StringVar(&status, "status", "", "filter by payment status (paid, credit, partial)")
	cmd.Flags().StringVar(&from, "from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&search, "search", "", "substring search in description, notes, category")
	return cmd
}

func txAddCmd() *cobra.Command {
	var txType, amount, amountPaid, date, category, method, status string
	var vendorID, projectID, description, notes string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			when := time.Now()
			if date != "" {
				if when, err = parseDateArg(date); err != nil {
					return err
				}
			}

			txn := &model.Transaction{
				Type:          model.TransactionType(txType),
				Amount:        model.ParseAmount(amount),
				AmountPaid:    model.ParseAmount(amountPaid),
				Date:          when,
				Category:      category,
				PaymentMethod: method,
				PaymentStatus: model.PaymentStatus(status),
				VendorID:      vendorID,
				ProjectID:     projectID,
				Description:   description,
				Notes:         notes,
			}
			if err := store.AddTransaction(ctx, txn); err != nil {
				return err
			}
			fmt.Printf("Recorded %s of %s (%s)\n", txn.Type, txn.Amount.StringFixed(2), txn.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&txType, "type", "expense", "income or expense")
	cmd.Flags().StringVar(&amount, "amount", "", "transaction amount")
	cmd.Flags().StringVar(&amountPaid, "paid", "", "amount actually paid (for partial)")
	cmd.Flags().StringVar(&date, "date", "", "transaction date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&category, "category", "", "category label")
	cmd.Flags().StringVar(&method, "method", "", "payment method")
	cmd.Flags().StringVar(&status, "status", "", "payment status (paid, credit, partial; default paid)")
	cmd.Flags().StringVar(&vendorID, "vendor", "", "vendor id")
	cmd.Flags().StringVar(&projectID, "project", "", "project id")
	cmd.Flags().StringVar(&description, "description", "", "what the money was for")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("description")
	return cmd
}

func txShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			txn, err := store.GetTransaction(ctx, args[0])
			if err != nil {
				return err
			}
			currency := currencyCode(ctx, store)

			table := newTable()
			fmt.Fprintf(table, "ID:\t%s\n", txn.ID)
			fmt.Fprintf(table, "Date:\t%s\n", formatDate(txn.Date))
			fmt.Fprintf(table, "Type:\t%s\n", txn.Type)
			fmt.Fprintf(table, "Amount:\t%s\n", money(txn.Amount, currency))
			fmt.Fprintf(table, "Paid:\t%s\n", money(txn.AmountPaid, currency))
			fmt.Fprintf(table, "Outstanding:\t%s\n", money(txn.Outstanding(), currency))
			fmt.Fprintf(table, "Status:\t%s\n", txn.PaymentStatus)
			fmt.Fprintf(table, "Category:\t%s\n", txn.Category)
			fmt.Fprintf(table, "Method:\t%s\n", txn.PaymentMethod)
			if txn.VendorID != "" {
				fmt.Fprintf(table, "Vendor:\t%s\n", txn.VendorID)
			}
			if txn.ProjectID != "" {
				fmt.Fprintf(table, "Project:\t%s\n", txn.ProjectID)
			}
			fmt.Fprintf(table, "Description:\t%s\n", txn.Description)
			if txn.Notes != "" {
				fmt.Fprintf(table, "Notes:\t%s\n", txn.Notes)
			}
			return table.Flush()
		},
	}
}

func txEditCmd() *cobra.Command {
	var amount, amountPaid, date, category, method, status, description, notes string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			txn, err := store.GetTransaction(ctx, args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("amount") {
				txn.Amount = model.ParseAmount(amount)
			}
			if cmd.Flags().Changed("paid") {
				txn.AmountPaid = model.ParseAmount(amountPaid)
			}
			if cmd.Flags().Changed("date") {
				when, err := parseDateArg(date)
				if err != nil {
					return err
				}
				txn.Date = when
			}
			if cmd.Flags().Changed("category") {
				txn.Category = category
			}
			if cmd.Flags().Changed("method") {
				txn.PaymentMethod = method
			}
			if cmd.Flags().Changed("status") {
				txn.PaymentStatus = model.PaymentStatus(status)
			}
			if cmd.Flags().Changed("description") {
				txn.Description = description
			}
			if cmd.Flags().Changed("notes") {
				txn.Notes = notes
			}

			if err := store.UpdateTransaction(ctx, txn); err != nil {
				return err
			}
			fmt.Println("Transaction updated")
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "transaction amount")
	cmd.Flags().StringVar(&amountPaid, "paid", "", "amount actually paid")
	cmd.Flags().StringVar(&date, "date", "", "transaction date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&category, "category", "", "category label")
	cmd.Flags().StringVar(&method, "method", "", "payment method")
	cmd.Flags().StringVar(&status, "status", "", "payment status")
	cmd.Flags().StringVar(&description, "description", "", "what the money was for")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	return cmd
}

func txDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteTransaction(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println("Transaction deleted")
			return nil
		},
	}
}

func txMarkPaidCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mark-paid <id>",
		Short: "Settle a credit or partial transaction in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.MarkTransactionPaid(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println("Transaction marked paid")
			return nil
		},
	}
}
