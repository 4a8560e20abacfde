package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nikhilmn/fintrack/internal/cli"
	"github.com/nikhilmn/fintrack/internal/report"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Monthly overview: safe to spend, budgets, and goals",
	RunE:  runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(_ *cobra.Command, _ []string) error {
	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()
	if err := requireAuth(s); err != nil {
		return err
	}

	now := time.Now()
	txs := s.Transactions()
	goals := s.SavingsGoals()
	budgets := s.Budgets()

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("FINTRACK  %s %d", now.Month().String(), now.Year())))
	fmt.Println()

	// Safe to spend
	sts := report.ComputeSafeToSpend(txs, goals, now)
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Safe to Spend  [%s]", sts.Health),
		Headers: []string{"Item", "Amount"},
		Rows: [][]string{
			{"Monthly Income", cli.FormatCurrency(sts.Income)},
			{"Spent So Far", "-" + cli.FormatCurrency(sts.Expenses)},
			{"Goal Savings", "-" + cli.FormatCurrency(sts.GoalContribution)},
			{"---"},
			{"Safe to Spend", cli.FormatCurrency(sts.Safe)},
			{"Share of Income", cli.FormatPercent(sts.SafePercent)},
		},
	}))

	// Category breakdown
	summary := report.Summarize(txs, now)
	if len(summary.ByCategory) > 0 {
		rows := make([][]string, 0, len(summary.ByCategory))
		for _, cs := range summary.ByCategory {
			rows = append(rows, []string{
				cs.Category,
				cli.FormatCurrency(cs.Amount),
				cli.FormatPercent(cs.Share),
			})
		}
		rows = append(rows, []string{"---"})
		rows = append(rows, []string{"Net", cli.FormatCurrency(summary.Net), ""})
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "This Month by Category",
			Headers: []string{"Category", "Spent", "Share"},
			Rows:    rows,
		}))
	}

	// Budgets
	if len(budgets) > 0 {
		rows := make([][]string, 0, len(budgets))
		for _, b := range budgets {
			r := report.ForBudget(b)
			rows = append(rows, []string{
				b.Category,
				fmt.Sprintf("%.0f%%", r.Percent),
				cli.RenderMeter(r.DisplayPercent, 16, report.WarningPercent, report.ExceededPercent),
				string(r.Status),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Budgets",
			Headers: []string{"Category", "Used", "Bar", "Status"},
			Rows:    rows,
		}))
	}

	// Goals
	if len(goals) > 0 {
		rows := make([][]string, 0, len(goals))
		for _, g := range goals {
			r := report.ForGoal(g, now)
			rows = append(rows, []string{
				g.Name,
				cli.FormatPercent(r.Percent),
				cli.RenderMeter(r.Percent, 16, 101, 102),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Savings Goals",
			Headers: []string{"Goal", "Progress", "Bar"},
			Rows:    rows,
		}))
	}

	unread := 0
	for _, n := range s.Notifications() {
		if !n.Read {
			unread++
		}
	}
	if unread > 0 {
		hint("%d unread notification(s). Run `fintrack notifications`.", unread)
	}
	return nil
}
