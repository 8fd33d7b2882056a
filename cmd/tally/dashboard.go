package main

import (
	"fmt"
	"time"

	"github.com/quarryhq/tally/internal/report"
	"github.com/spf13/cobra"
)

func dashboardCmd() *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the business dashboard",
		Long:  `Profit and loss for the selected period, top vendors, revenue series, and recent activity.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			transactions, err := store.ListTransactions(ctx)
			if err != nil {
				return err
			}
			vendors, err := store.ListVendors(ctx)
			if err != nil {
				return err
			}
			projects, err := store.ListProjects(ctx)
			if err != nil {
				return err
			}
			currency := currencyCode(ctx, store)

			now := time.Now()
			p := report.ParsePeriod(period)
			inPeriod := report.FilterByPeriod(transactions, p, now)
			summary := report.Summarize(inPeriod, p, now)

			fmt.Printf("Dashboard (%s)\n\n", p)
			table := newTable()
			fmt.Fprintf(table, "Income:\t%s\n", money(summary.Income, currency))
			fmt.Fprintf(table, "Expenses:\t%s\n", money(summary.Expenses, currency))
			fmt.Fprintf(table, "Net profit:\t%s\n", money(summary.NetProfit, currency))
			fmt.Fprintf(table, "Profit margin:\t%.1f%%\n", summary.ProfitMargin)
			fmt.Fprintf(table, "Transactions:\t%d\n", summary.TransactionCount)
			fmt.Fprintf(table, "Avg transaction:\t%s\n", money(summary.AverageTransaction, currency))
			fmt.Fprintf(table, "Daily avg income:\t%s\n", money(summary.DailyAverageIncome, currency))
			fmt.Fprintf(table, "Daily avg expenses:\t%s\n", money(summary.DailyAverageExpenses, currency))
			if err := table.Flush(); err != nil {
				return err
			}

			if top := report.TopVendorSpending(inPeriod, vendors, 5); len(top) > 0 {
				fmt.Println("\nTop vendor spending")
				table = newTable()
				for _, row := range top {
					fmt.Fprintf(table, "%s\t%s\n", row.Name, money(row.Amount, currency))
				}
				if err := table.Flush(); err != nil {
					return err
				}
			}

			fmt.Println("\nRevenue")
			table = newTable()
			fmt.Fprintln(table, "\tINCOME\tEXPENSES")
			for _, bucket := range report.RevenueSeries(inPeriod, p, now) {
				fmt.Fprintf(table, "%s\t%s\t%s\n", bucket.Label,
					money(bucket.Income, currency), money(bucket.Expenses, currency))
			}
			if err := table.Flush(); err != nil {
				return err
			}

			fmt.Println("\nLast 6 months")
			table = newTable()
			fmt.Fprintln(table, "\tINCOME\tEXPENSES")
			for _, bucket := range report.MonthlyTrend(transactions, now) {
				fmt.Fprintf(table, "%s\t%s\t%s\n", bucket.Label,
					money(bucket.Income, currency), money(bucket.Expenses, currency))
			}
			if err := table.Flush(); err != nil {
				return err
			}

			portfolio := report.SummarizePortfolio(projects, transactions)
			fmt.Println("\nProjects")
			table = newTable()
			fmt.Fprintf(table, "Total value:\t%s\n", money(portfolio.TotalProjectValue, currency))
			fmt.Fprintf(table, "Avg project cost:\t%s\n", money(portfolio.AvgProjectCost, currency))
			fmt.Fprintf(table, "Active:\t%d of %d\n", portfolio.ActiveProjects, portfolio.ProjectCount)
			if err := table.Flush(); err != nil {
				return err
			}

			if feed := report.RecentActivity(transactions, projects, vendors, 10); len(feed) > 0 {
				fmt.Println("\nRecent activity")
				table = newTable()
				for _, entry := range feed {
					fmt.Fprintf(table, "%s\t%s\n", entry.Timestamp.Format("2006-01-02 15:04"), entry.Description)
				}
				if err := table.Flush(); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&period, "period", "month", "reporting period (week, month, quarter, year)")
	return cmd
}
