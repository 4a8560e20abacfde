package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nikhilmn/fintrack/internal/alerts"
	"github.com/nikhilmn/fintrack/internal/cli"
	"github.com/nikhilmn/fintrack/internal/model"
	"github.com/nikhilmn/fintrack/internal/report"
	"github.com/nikhilmn/fintrack/internal/store"
)

var (
	flagBudgetLimit string
	flagBudgetSpent string
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Manage category budgets",
}

var budgetSetCmd = &cobra.Command{
	Use:   "set <category>",
	Short: "Create a monthly budget for a category",
	Args:  cobra.ExactArgs(1),
	RunE:  runBudgetSet,
}

var budgetListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show budgets with usage and status",
	RunE:  runBudgetList,
}

var budgetEditCmd = &cobra.Command{
	Use:   "edit <category>",
	Short: "Change a budget's limit or correct its spent total",
	Args:  cobra.ExactArgs(1),
	RunE:  runBudgetEdit,
}

var budgetDeleteCmd = &cobra.Command{
	Use:   "delete <category>",
	Short: "Remove a category budget",
	Args:  cobra.ExactArgs(1),
	RunE:  runBudgetDelete,
}

func init() {
	budgetSetCmd.Flags().StringVarP(&flagBudgetLimit, "limit", "l", "", "Monthly limit (positive)")
	budgetEditCmd.Flags().StringVarP(&flagBudgetLimit, "limit", "l", "", "New monthly limit")
	budgetEditCmd.Flags().StringVar(&flagBudgetSpent, "spent", "", "Corrected spent total")

	budgetCmd.AddCommand(budgetSetCmd, budgetListCmd, budgetEditCmd, budgetDeleteCmd)
	rootCmd.AddCommand(budgetCmd)
}

func runBudgetSet(_ *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()
	if err := requireAuth(s); err != nil {
		return err
	}

	limit, err := parseAmount(flagBudgetLimit)
	if err != nil {
		return err
	}

	b, ok := s.AddBudget(args[0], limit)
	if !ok {
		return fmt.Errorf("could not create budget: the limit must be positive and %q must not already have one", args[0])
	}

	fmt.Printf("\n  Budget set: %s at %s/month\n\n", b.Category, cli.FormatCurrency(b.MonthlyLimit))
	return nil
}

func runBudgetList(_ *cobra.Command, _ []string) error {
	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()
	if err := requireAuth(s); err != nil {
		return err
	}

	budgets := s.Budgets()
	if len(budgets) == 0 {
		fmt.Println("\n  No budgets yet. Create one with `fintrack budget set <category> --limit <amount>`.")
		return nil
	}

	rows := make([][]string, 0, len(budgets))
	for _, b := range budgets {
		r := report.ForBudget(b)
		rows = append(rows, []string{
			b.Category,
			cli.FormatCurrency(b.Spent),
			cli.FormatCurrency(b.MonthlyLimit),
			cli.FormatCurrency(r.Remaining),
			fmt.Sprintf("%.0f%%", r.Percent),
			cli.RenderMeter(r.DisplayPercent, 16, report.WarningPercent, report.ExceededPercent),
			string(r.Status),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Budgets",
		Headers: []string{"Category", "Spent", "Limit", "Remaining", "Used", "Bar", "Status"},
		Rows:    rows,
	}))
	return nil
}

func runBudgetEdit(cmd *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()
	if err := requireAuth(s); err != nil {
		return err
	}

	b, ok := budgetByCategory(s, args[0])
	if !ok {
		return fmt.Errorf("no budget for category %q", args[0])
	}

	var p store.BudgetPatch
	if cmd.Flags().Changed("limit") {
		limit, err := parseAmount(flagBudgetLimit)
		if err != nil {
			return err
		}
		p.MonthlyLimit = &limit
	}
	if cmd.Flags().Changed("spent") {
		spent, err := parseAmount(flagBudgetSpent)
		if err != nil {
			return err
		}
		p.Spent = &spent
	}

	s.UpdateBudget(b.ID, p)
	fmt.Println("\n  Updated.")

	if n := alerts.Scan(s, time.Now()); n > 0 {
		hint("%d new notification(s). Run `fintrack notifications`.", n)
	}
	return nil
}

func runBudgetDelete(_ *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()
	if err := requireAuth(s); err != nil {
		return err
	}

	b, ok := budgetByCategory(s, args[0])
	if !ok {
		return fmt.Errorf("no budget for category %q", args[0])
	}
	s.DeleteBudget(b.ID)
	fmt.Println("\n  Deleted.")
	return nil
}

func budgetByCategory(s *store.Store, category string) (model.Budget, bool) {
	for _, b := range s.Budgets() {
		if b.Category == category {
			return b, true
		}
	}
	return model.Budget{}, false
}
