package main

import (
	"fmt"

	"github.com/quarryhq/tally/internal/model"
	"github.com/quarryhq/tally/internal/report"
	"github.com/spf13/cobra"
)

func vendorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vendors",
		Short: "Manage vendors",
		Long:  `View, add, edit, and delete the suppliers and contractors the business trades with.`,
	}

	cmd.AddCommand(vendorsListCmd())
	cmd.AddCommand(vendorsAddCmd())
	cmd.AddCommand(vendorsShowCmd())
	cmd.AddCommand(vendorsEditCmd())
	cmd.AddCommand(vendorsDeleteCmd())
	cmd.AddCommand(vendorsSearchCmd())

	return cmd
}

func vendorsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all vendors",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			vendors, err := store.ListVendors(ctx)
			if err != nil {
				return err
			}
			transactions, err := store.ListTransactions(ctx)
			if err != nil {
				return err
			}
			currency := currencyCode(ctx, store)

			table := newTable()
			fmt.Fprintln(table, "NAME\tCATEGORY\tSTATUS\tTOTAL SPENT\tTXNS\tLAST ACTIVITY")
			for _, row := range report.VendorReport(vendors, transactions) {
				fmt.Fprintf(table, "%s\t%s\t%s\t%s\t%d\t%s\n",
					row.Vendor.Name, row.Vendor.Category, row.Vendor.Status,
					money(row.TotalSpent, currency), row.TransactionCount,
					formatDatePtr(row.LastTransaction))
			}
			return table.Flush()
		},
	}
}

func vendorsAddCmd() *cobra.Command {
	var category, contact, phone, email, address, notes string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a vendor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			vendor := &model.Vendor{
				Name:     args[0],
				Category: category,
				Contact:  contact,
				Phone:    phone,
				Email:    email,
				Address:  address,
				Notes:    notes,
			}
			if err := store.AddVendor(ctx, vendor); err != nil {
				return err
			}
			fmt.Printf("Added vendor %s (%s)\n", vendor.Name, vendor.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "vendor category")
	cmd.Flags().StringVar(&contact, "contact", "", "contact person")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&address, "address", "", "postal address")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	return cmd
}

func vendorsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a vendor with its balances",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			vendor, err := store.GetVendor(ctx, args[0])
			if err != nil {
				return err
			}
			transactions, err := store.ListTransactionsByVendor(ctx, vendor.ID)
			if err != nil {
				return err
			}
			currency := currencyCode(ctx, store)
			balance := report.BalanceForVendor(transactions, vendor.ID)

			table := newTable()
			fmt.Fprintf(table, "Name:\t%s\n", vendor.Name)
			fmt.Fprintf(table, "Category:\t%s\n", vendor.Category)
			fmt.Fprintf(table, "Status:\t%s\n", vendor.Status)
			if vendor.Contact != "" {
				fmt.Fprintf(table, "Contact:\t%s\n", vendor.Contact)
			}
			if vendor.Phone != "" {
				fmt.Fprintf(table, "Phone:\t%s\n", vendor.Phone)
			}
			if vendor.Email != "" {
				fmt.Fprintf(table, "Email:\t%s\n", vendor.Email)
			}
			fmt.Fprintf(table, "You gave:\t%s\n", money(balance.YouGive, currency))
			fmt.Fprintf(table, "You got:\t%s\n", money(balance.YouGot, currency))
			fmt.Fprintf(table, "Credit balance:\t%s\n", money(balance.CreditBalance, currency))
			fmt.Fprintf(table, "Net balance:\t%s\n", money(balance.NetBalance, currency))
			fmt.Fprintf(table, "Transactions:\t%d\n", balance.TransactionCount)
			return table.Flush()
		},
	}
}

func vendorsEditCmd() *cobra.Command {
	var name, category, contact, phone, email, address, notes, status string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a vendor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			vendor, err := store.GetVendor(ctx, args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				vendor.Name = name
			}
			if cmd.Flags().Changed("category") {
				vendor.Category = category
			}
			if cmd.Flags().Changed("contact") {
				vendor.Contact = contact
			}
			if cmd.Flags().Changed("phone") {
				vendor.Phone = phone
			}
			if cmd.Flags().Changed("email") {
				vendor.Email = email
			}
			if cmd.Flags().Changed("address") {
				vendor.Address = address
			}
			if cmd.Flags().Changed("notes") {
				vendor.Notes = notes
			}
			if cmd.Flags().Changed("status") {
				vendor.Status = model.VendorStatus(status)
			}

			if err := store.UpdateVendor(ctx, vendor); err != nil {
				return err
			}
			fmt.Printf("Updated vendor %s\n", vendor.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "vendor name")
	cmd.Flags().StringVar(&category, "category", "", "vendor category")
	cmd.Flags().StringVar(&contact, "contact", "", "contact person")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&address, "address", "", "postal address")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	cmd.Flags().StringVar(&status, "status", "", "active or inactive")
	return cmd
}

func vendorsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a vendor",
		Long:  `Delete a vendor. Its transactions are kept and keep referring to the deleted id.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteVendor(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println("Vendor deleted")
			return nil
		},
	}
}

func vendorsSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search vendors",
		Long:  `Search vendors by name, category, or contact details.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			vendors, err := store.SearchVendors(ctx, args[0])
			if err != nil {
				return err
			}

			table := newTable()
			fmt.Fprintln(table, "ID\tNAME\tCATEGORY\tSTATUS")
			for _, v := range vendors {
				fmt.Fprintf(table, "%s\t%s\t%s\t%s\n", v.ID, v.Name, v.Category, v.Status)
			}
			return table.Flush()
		},
	}
}
