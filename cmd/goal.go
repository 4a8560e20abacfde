package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nikhilmn/fintrack/internal/cli"
	"github.com/nikhilmn/fintrack/internal/model"
	"github.com/nikhilmn/fintrack/internal/report"
	"github.com/nikhilmn/fintrack/internal/store"
)

var (
	flagGoalTarget   string
	flagGoalDeadline string
	flagGoalAmount   string
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage savings goals",
}

var goalAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a savings goal",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalAdd,
}

var goalListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show goals with progress",
	RunE:  runGoalList,
}

var goalContributeCmd = &cobra.Command{
	Use:   "contribute <name>",
	Short: "Add money toward a goal",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalContribute,
}

var goalDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Remove a savings goal",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalDelete,
}

func init() {
	goalAddCmd.Flags().StringVarP(&flagGoalTarget, "target", "t", "", "Target amount (positive)")
	goalAddCmd.Flags().StringVar(&flagGoalDeadline, "deadline", "", "Deadline YYYY-MM-DD (default: one year out)")
	goalContributeCmd.Flags().StringVarP(&flagGoalAmount, "amount", "a", "", "Contribution amount (positive)")

	goalCmd.AddCommand(goalAddCmd, goalListCmd, goalContributeCmd, goalDeleteCmd)
	rootCmd.AddCommand(goalCmd)
}

func runGoalAdd(_ *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()
	if err := requireAuth(s); err != nil {
		return err
	}

	target, err := parseAmount(flagGoalTarget)
	if err != nil {
		return err
	}

	var deadline time.Time
	if flagGoalDeadline != "" {
		if deadline, err = parseDate(flagGoalDeadline); err != nil {
			return err
		}
	}

	g, ok := s.AddSavingsGoal(args[0], target, deadline)
	if !ok {
		return fmt.Errorf("could not create goal: name must be non-empty and target positive")
	}

	fmt.Printf("\n  Goal created: %q, target %s by %s\n\n",
		g.Name, cli.FormatCurrency(g.TargetAmount), cli.FormatDate(g.Deadline))
	return nil
}

func runGoalList(_ *cobra.Command, _ []string) error {
	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()
	if err := requireAuth(s); err != nil {
		return err
	}

	goals := s.SavingsGoals()
	if len(goals) == 0 {
		fmt.Println("\n  No savings goals yet. Create your first goal with `fintrack goal add`.")
		return nil
	}

	now := time.Now()
	rows := make([][]string, 0, len(goals))
	for _, g := range goals {
		r := report.ForGoal(g, now)
		deadline := fmt.Sprintf("%d days left", r.DaysLeft)
		if r.DaysLeft == 0 && !r.Completed {
			deadline = "Deadline passed"
		}
		if r.Completed {
			deadline = "Completed"
		}
		rows = append(rows, []string{
			g.Name,
			cli.FormatCurrency(g.CurrentAmount),
			cli.FormatCurrency(g.TargetAmount),
			cli.FormatPercent(r.Percent),
			cli.RenderMeter(r.Percent, 16, 101, 102),
			deadline,
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Savings Goals",
		Headers: []string{"Goal", "Saved", "Target", "Progress", "Bar", "Deadline"},
		Rows:    rows,
	}))
	return nil
}

func runGoalContribute(_ *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()
	if err := requireAuth(s); err != nil {
		return err
	}

	amount, err := parseAmount(flagGoalAmount)
	if err != nil {
		return err
	}

	g, ok := goalByName(s, args[0])
	if !ok {
		return fmt.Errorf("no goal named %q", args[0])
	}

	updated, ok := s.ContributeToGoal(g.ID, amount)
	if !ok {
		return fmt.Errorf("contribution must be positive")
	}

	r := report.ForGoal(updated, time.Now())
	if r.Completed {
		fmt.Printf("\n  Goal achieved! %q is fully funded at %s.\n\n",
			updated.Name, cli.FormatCurrency(updated.CurrentAmount))
	} else {
		fmt.Printf("\n  Added %s to %q (%s of %s, %.1f%%)\n\n",
			cli.FormatCurrency(amount), updated.Name,
			cli.FormatCurrency(updated.CurrentAmount),
			cli.FormatCurrency(updated.TargetAmount), r.Percent)
	}
	return nil
}

func runGoalDelete(_ *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()
	if err := requireAuth(s); err != nil {
		return err
	}

	g, ok := goalByName(s, args[0])
	if !ok {
		return fmt.Errorf("no goal named %q", args[0])
	}
	s.DeleteSavingsGoal(g.ID)
	fmt.Println("\n  Deleted.")
	return nil
}

func goalByName(s *store.Store, name string) (model.SavingsGoal, bool) {
	for _, g := range s.SavingsGoals() {
		if g.Name == name {
			return g, true
		}
	}
	return model.SavingsGoal{}, false
}
