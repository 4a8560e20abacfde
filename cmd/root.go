package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/nikhilmn/fintrack/internal/cli"
	"github.com/nikhilmn/fintrack/internal/config"
	"github.com/nikhilmn/fintrack/internal/store"
)

var (
	flagDataDir string
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "fintrack",
	Short: "Personal finance tracker",
	Long:  "Track income and expenses, category budgets, and savings goals from the terminal.",
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory (default: XDG data dir)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress hints and secondary output")
}

// openStore loads config and the persisted application state. The
// caller owns the returned store and must Close it.
func openStore() (*store.Store, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, cfg, err
	}
	if cfg.Display.Currency != "" {
		cli.CurrencySymbol = cfg.Display.Currency
	}

	dir := flagDataDir
	if dir == "" {
		dir = cfg.General.DataDir
	}
	if dir == "" {
		dir = config.DataDir()
	}

	s, err := store.Open(filepath.Join(dir, "fintrack.db"))
	if err != nil {
		return nil, cfg, fmt.Errorf("opening state: %w", err)
	}
	return s, cfg, nil
}

// requireAuth guards data commands behind a session.
func requireAuth(s *store.Store) error {
	if s.IsAuthenticated() {
		return nil
	}
	return errors.New("not logged in. Run `fintrack login` first")
}

// parseAmount parses a positive decimal amount from a flag value.
func parseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", raw)
	}
	return d, nil
}

// parseDate parses a YYYY-MM-DD calendar date.
func parseDate(raw string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", raw)
	}
	return t, nil
}

func hint(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, "  "+format+"\n", args...)
}
