package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage application settings",
	}

	cmd.AddCommand(settingsShowCmd())
	cmd.AddCommand(settingsSetCmd())
	cmd.AddCommand(settingsCategoriesCmd())

	return cmd
}

func settingsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			settings, err := store.GetSettings(ctx)
			if err != nil {
				return err
			}

			table := newTable()
			fmt.Fprintf(table, "Company:\t%s\n", settings.CompanyName)
			fmt.Fprintf(table, "Business type:\t%s\n", settings.BusinessType)
			fmt.Fprintf(table, "Currency:\t%s\n", settings.Currency)
			fmt.Fprintf(table, "Date format:\t%s\n", settings.DateFormat)
			fmt.Fprintf(table, "Theme:\t%s\n", settings.Theme)
			for kind, labels := range settings.CustomCategories {
				if len(labels) > 0 {
					fmt.Fprintf(table, "%s categories:\t%s\n", kind, strings.Join(labels, ", "))
				}
			}
			return table.Flush()
		},
	}
}

func settingsSetCmd() *cobra.Command {
	var company, businessType, currency, dateFormat, theme string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			settings, err := store.GetSettings(ctx)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("company") {
				settings.CompanyName = company
			}
			if cmd.Flags().Changed("business-type") {
				settings.BusinessType = businessType
			}
			if cmd.Flags().Changed("currency") {
				settings.Currency = currency
			}
			if cmd.Flags().Changed("date-format") {
				settings.DateFormat = dateFormat
			}
			if cmd.Flags().Changed("theme") {
				settings.Theme = theme
			}

			if err := store.SaveSettings(ctx, settings); err != nil {
				return err
			}
			fmt.Println("Settings saved")
			return nil
		},
	}

	cmd.Flags().StringVar(&company, "company", "", "company name")
	cmd.Flags().StringVar(&businessType, "business-type", "", "business type")
	cmd.Flags().StringVar(&currency, "currency", "", "currency code")
	cmd.Flags().StringVar(&dateFormat, "date-format", "", "date display format")
	cmd.Flags().StringVar(&theme, "theme", "", "light or dark")
	return cmd
}

func settingsCategoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage custom category lists",
	}

	var kind string
	add := &cobra.Command{
		Use:   "add <label>",
		Short: "Add a custom category",
		Long:  `Add a category label for vendors, transactions, or projects. Duplicate labels are rejected; the comparison is case-sensitive.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.AddCustomCategory(ctx, kind, args[0]); err != nil {
				return err
			}
			fmt.Printf("Added %s category %q\n", kind, args[0])
			return nil
		},
	}
	add.Flags().StringVar(&kind, "kind", "transaction", "category kind (vendor, transaction, project)")

	cmd.AddCommand(add)
	return cmd
}
