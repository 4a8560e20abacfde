package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/nikhilmn/fintrack/internal/config"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()

	currency := cfg.Display.Currency
	dataDir := cfg.General.DataDir

	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Currency symbol").
			Options(
				huh.NewOption("₹ (rupee)", "₹"),
				huh.NewOption("$ (dollar)", "$"),
				huh.NewOption("€ (euro)", "€"),
				huh.NewOption("£ (pound)", "£"),
			).
			Value(&currency),
		huh.NewInput().
			Title("Data directory").
			Description("Leave empty for the default XDG data dir").
			Value(&dataDir),
	))
	if err := form.Run(); err != nil {
		return err
	}

	cfg.Display.Currency = currency
	cfg.General.DataDir = dataDir
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `fintrack setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}
