package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/quarryhq/tally/internal/model"
	"github.com/quarryhq/tally/internal/report"
	"github.com/spf13/cobra"
)

func projectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Manage projects",
		Long:  `Track jobs and engagements, their budgets, and the money booked against them.`,
	}

	cmd.AddCommand(projectsListCmd())
	cmd.AddCommand(projectsAddCmd())
	cmd.AddCommand(projectsShowCmd())
	cmd.AddCommand(projectsEditCmd())
	cmd.AddCommand(projectsDeleteCmd())
	cmd.AddCommand(projectsProgressCmd())

	return cmd
}

func projectsListCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			var projects []model.Project
			if status != "" {
				projects, err = store.ListProjectsByStatus(ctx, model.ProjectStatus(status))
			} else {
				projects, err = store.ListProjects(ctx)
			}
			if err != nil {
				return err
			}
			currency := currencyCode(ctx, store)

			table := newTable()
			fmt.Fprintln(table, "ID\tNAME\tCLIENT\tSTATUS\tPROGRESS\tBUDGET")
			for i := range projects {
				p := &projects[i]
				budget := "-"
				if p.Budget != nil {
					budget = money(*p.Budget, currency)
				}
				fmt.Fprintf(table, "%s\t%s\t%s\t%s\t%d%%\t%s\n",
					p.ID, p.Name, p.Client, p.Status, p.Progress, budget)
			}
			return table.Flush()
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by status (planning, active, on-hold, completed)")
	return cmd
}

func projectsAddCmd() *cobra.Command {
	var client, location, description, notes, budget, startDate, endDate string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			project := &model.Project{
				Name:        args[0],
				Client:      client,
				Location:    location,
				Description: description,
				Notes:       notes,
			}
			if budget != "" {
				b := model.ParseAmount(budget)
				project.Budget = &b
			}
			if startDate != "" {
				d, err := parseDateArg(startDate)
				if err != nil {
					return err
				}
				project.StartDate = &d
			}
			if endDate != "" {
				d, err := parseDateArg(endDate)
				if err != nil {
					return err
				}
				project.EndDate = &d
			}

			if err := store.AddProject(ctx, project); err != nil {
				return err
			}
			fmt.Printf("Added project %s (%s)\n", project.Name, project.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&client, "client", "", "client name")
	cmd.Flags().StringVar(&location, "location", "", "site or location")
	cmd.Flags().StringVar(&description, "description", "", "project description")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	cmd.Flags().StringVar(&budget, "budget", "", "project budget")
	cmd.Flags().StringVar(&startDate, "start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end", "", "end date (YYYY-MM-DD)")
	return cmd
}

func projectsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a project with its financial summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			project, err := store.GetProject(ctx, args[0])
			if err != nil {
				return err
			}
			transactions, err := store.ListTransactionsByProject(ctx, project.ID)
			if err != nil {
				return err
			}
			currency := currencyCode(ctx, store)
			summary := report.SummarizeProject(*project, transactions, report.PeriodMonth, time.Now(), false)

			table := newTable()
			fmt.Fprintf(table, "Name:\t%s\n", project.Name)
			fmt.Fprintf(table, "Client:\t%s\n", project.Client)
			fmt.Fprintf(table, "Status:\t%s\n", project.Status)
			fmt.Fprintf(table, "Progress:\t%d%%\n", project.Progress)
			fmt.Fprintf(table, "Start:\t%s\n", formatDatePtr(project.StartDate))
			fmt.Fprintf(table, "End:\t%s\n", formatDatePtr(project.EndDate))
			if project.Budget != nil {
				fmt.Fprintf(table, "Budget:\t%s\n", money(*project.Budget, currency))
			} else {
				fmt.Fprintf(table, "Budget:\t-\n")
			}
			fmt.Fprintf(table, "Spent:\t%s\n", money(summary.TotalSpent, currency))
			fmt.Fprintf(table, "Income:\t%s\n", money(summary.TotalIncome, currency))
			fmt.Fprintf(table, "Net:\t%s\n", money(summary.NetAmount, currency))
			fmt.Fprintf(table, "Outstanding:\t%s\n", money(summary.Outstanding, currency))
			if summary.RemainingBudget != nil {
				fmt.Fprintf(table, "Remaining budget:\t%s\n", money(*summary.RemainingBudget, currency))
			}
			fmt.Fprintf(table, "Transactions:\t%d\n", summary.TransactionCount)
			return table.Flush()
		},
	}
}

func projectsEditCmd() *cobra.Command {
	var name, client, location, description, notes, budget, status, startDate, endDate string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			project, err := store.GetProject(ctx, args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				project.Name = name
			}
			if cmd.Flags().Changed("client") {
				project.Client = client
			}
			if cmd.Flags().Changed("location") {
				project.Location = location
			}
			if cmd.Flags().Changed("description") {
				project.Description = description
			}
			if cmd.Flags().Changed("notes") {
				project.Notes = notes
			}
			if cmd.Flags().Changed("status") {
				project.Status = model.ProjectStatus(status)
			}
			if cmd.Flags().Changed("budget") {
				if budget == "" {
					project.Budget = nil
				} else {
					b := model.ParseAmount(budget)
					project.Budget = &b
				}
			}
			if cmd.Flags().Changed("start") {
				d, err := parseDateArg(startDate)
				if err != nil {
					return err
				}
				project.StartDate = &d
			}
			if cmd.Flags().Changed("end") {
				d, err := parseDateArg(endDate)
				if err != nil {
					return err
				}
				project.EndDate = &d
			}

			if err := store.UpdateProject(ctx, project); err != nil {
				return err
			}
			fmt.Printf("Updated project %s\n", project.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "project name")
	cmd.Flags().StringVar(&client, "client", "", "client name")
	cmd.Flags().StringVar(&location, "location", "", "site or location")
	cmd.Flags().StringVar(&description, "description", "", "project description")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	cmd.Flags().StringVar(&budget, "budget", "", "project budget (empty clears it)")
	cmd.Flags().StringVar(&status, "status", "", "planning, active, on-hold, or completed")
	cmd.Flags().StringVar(&startDate, "start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end", "", "end date (YYYY-MM-DD)")
	return cmd
}

func projectsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a project",
		Long:  `Delete a project. Its transactions are kept and keep referring to the deleted id.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteProject(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println("Project deleted")
			return nil
		},
	}
}

func projectsProgressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress <id> <percent>",
		Short: "Update a project's completion percentage",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			percent, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid progress %q: %w", args[1], err)
			}

			project, err := store.GetProject(ctx, args[0])
			if err != nil {
				return err
			}
			project.Progress = percent
			if err := store.UpdateProject(ctx, project); err != nil {
				return err
			}
			fmt.Printf("Progress for %s set to %d%%\n", project.Name, percent)
			return nil
		},
	}
}
