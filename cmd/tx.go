package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nikhilmn/fintrack/internal/alerts"
	"github.com/nikhilmn/fintrack/internal/cli"
	"github.com/nikhilmn/fintrack/internal/model"
	"github.com/nikhilmn/fintrack/internal/store"
)

var (
	flagTxAmount   string
	flagTxType     string
	flagTxCategory string
	flagTxDate     string
	flagTxNote     string
)

var txCmd = &cobra.Command{
	Use:   "tx",
	Short: "Manage transactions",
}

var txAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log an income or expense transaction",
	RunE:  runTxAdd,
}

var txListCmd = &cobra.Command{
	Use:   "list",
	Short: "List transactions, most recent first",
	RunE:  runTxList,
}

var txEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a transaction",
	Args:  cobra.ExactArgs(1),
	RunE:  runTxEdit,
}

var txDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a transaction",
	Args:  cobra.ExactArgs(1),
	RunE:  runTxDelete,
}

func init() {
	for _, c := range []*cobra.Command{txAddCmd, txEditCmd} {
		c.Flags().StringVarP(&flagTxAmount, "amount", "a", "", "Amount (positive)")
		c.Flags().StringVarP(&flagTxType, "type", "t", "", "income or expense")
		c.Flags().StringVarP(&flagTxCategory, "category", "c", "", "Category label")
		c.Flags().StringVar(&flagTxDate, "date", "", "Calendar date YYYY-MM-DD (default: today)")
		c.Flags().StringVar(&flagTxNote, "note", "", "Free-text note")
	}

	txCmd.AddCommand(txAddCmd, txListCmd, txEditCmd, txDeleteCmd)
	rootCmd.AddCommand(txCmd)
}

func runTxAdd(cmd *cobra.Command, _ []string) error {
	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()
	if err := requireAuth(s); err != nil {
		return err
	}

	amount, err := parseAmount(flagTxAmount)
	if err != nil {
		return err
	}

	tx := model.Transaction{
		Amount:   amount,
		Type:     model.TransactionType(flagTxType),
		Category: flagTxCategory,
		Note:     flagTxNote,
	}
	if flagTxDate != "" {
		if tx.Date, err = parseDate(flagTxDate); err != nil {
			return err
		}
	}

	stored, ok := s.AddTransaction(tx)
	if !ok {
		return fmt.Errorf("invalid transaction: amount must be positive, type income or expense, category non-empty")
	}

	fmt.Printf("\n  Recorded %s %s in %s (%s)\n\n",
		stored.Type, cli.FormatCurrency(stored.Amount), stored.Category, cli.ShortID(stored.ID))

	if n := alerts.Scan(s, time.Now()); n > 0 {
		hint("%d new notification(s). Run `fintrack notifications`.", n)
	}
	return nil
}

func runTxList(_ *cobra.Command, _ []string) error {
	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()
	if err := requireAuth(s); err != nil {
		return err
	}

	txs := s.Transactions()
	if len(txs) == 0 {
		fmt.Println("\n  No transactions yet. Log one with `fintrack tx add`.")
		return nil
	}

	rows := make([][]string, 0, len(txs))
	for _, tx := range txs {
		amount := cli.FormatCurrency(tx.Amount)
		if tx.Type == model.Expense {
			amount = "-" + amount
		}
		rows = append(rows, []string{
			cli.ShortID(tx.ID),
			cli.FormatDate(tx.Date),
			string(tx.Type),
			tx.Category,
			amount,
			tx.Note,
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Transactions",
		Headers: []string{"ID", "Date", "Type", "Category", "Amount", "Note"},
		Rows:    rows,
	}))
	return nil
}

func runTxEdit(cmd *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()
	if err := requireAuth(s); err != nil {
		return err
	}

	var p store.TransactionPatch
	if cmd.Flags().Changed("amount") {
		amount, err := parseAmount(flagTxAmount)
		if err != nil {
			return err
		}
		p.Amount = &amount
	}
	if cmd.Flags().Changed("type") {
		t := model.TransactionType(flagTxType)
		p.Type = &t
	}
	if cmd.Flags().Changed("category") {
		p.Category = &flagTxCategory
	}
	if cmd.Flags().Changed("date") {
		d, err := parseDate(flagTxDate)
		if err != nil {
			return err
		}
		p.Date = &d
	}
	if cmd.Flags().Changed("note") {
		p.Note = &flagTxNote
	}

	s.UpdateTransaction(resolveTxID(s, args[0]), p)
	fmt.Println("\n  Updated.")

	if n := alerts.Scan(s, time.Now()); n > 0 {
		hint("%d new notification(s). Run `fintrack notifications`.", n)
	}
	return nil
}

func runTxDelete(_ *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()
	if err := requireAuth(s); err != nil {
		return err
	}

	s.DeleteTransaction(resolveTxID(s, args[0]))
	fmt.Println("\n  Deleted.")
	return nil
}

// resolveTxID accepts a full id or the 8-character short form shown in
// listings. Ambiguous or unknown prefixes fall through unchanged and
// hit the store's silent no-op path.
func resolveTxID(s *store.Store, raw string) string {
	match := raw
	count := 0
	for _, tx := range s.Transactions() {
		if tx.ID == raw {
			return raw
		}
		if len(raw) >= 4 && len(tx.ID) > len(raw) && tx.ID[:len(raw)] == raw {
			match = tx.ID
			count++
		}
	}
	if count == 1 {
		return match
	}
	return raw
}
