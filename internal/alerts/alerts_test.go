package alerts

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nikhilmn/fintrack/internal/model"
	"github.com/nikhilmn/fintrack/internal/store"
)

func dec(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

func addExpense(t *testing.T, s *store.Store, amount int64, category string) model.Transaction {
	t.Helper()
	tx, ok := s.AddTransaction(model.Transaction{
		Amount:   dec(amount),
		Type:     model.Expense,
		Category: category,
	})
	if !ok {
		t.Fatalf("AddTransaction(%d, %s) rejected", amount, category)
	}
	return tx
}

func findByType(s *store.Store, typ model.NotificationType) []model.Notification {
	var out []model.Notification
	for _, n := range s.Notifications() {
		if n.Type == typ {
			out = append(out, n)
		}
	}
	return out
}

func TestScanEmitsExceededOnce(t *testing.T) {
	s := store.New()
	s.AddBudget("Food", dec(1000))
	addExpense(t, s, 1200, "Food")

	now := time.Now()
	if got := Scan(s, now); got != 1 {
		t.Fatalf("first Scan emitted %d, want 1", got)
	}
	got := findByType(s, model.NotifBudgetExceeded)
	if len(got) != 1 || got[0].Ref != "Food" {
		t.Fatalf("notifications = %+v, want one exceeded alert for Food", got)
	}

	if emitted := Scan(s, now); emitted != 0 {
		t.Fatalf("second Scan emitted %d, want 0", emitted)
	}
}

func TestScanEmitsWarningBand(t *testing.T) {
	s := store.New()
	s.AddBudget("Food", dec(1000))
	addExpense(t, s, 850, "Food")

	if got := Scan(s, time.Now()); got != 1 {
		t.Fatalf("Scan emitted %d, want 1", got)
	}
	if got := findByType(s, model.NotifBudgetWarning); len(got) != 1 {
		t.Fatalf("warning alerts = %d, want 1", len(got))
	}
	if got := findByType(s, model.NotifBudgetExceeded); len(got) != 0 {
		t.Fatalf("exceeded alerts = %d below limit, want 0", len(got))
	}
}

func TestScanUnreadWarningDoesNotBlockExceeded(t *testing.T) {
	s := store.New()
	s.AddBudget("Food", dec(1000))
	addExpense(t, s, 850, "Food")
	Scan(s, time.Now())

	addExpense(t, s, 300, "Food")
	if got := Scan(s, time.Now()); got != 1 {
		t.Fatalf("Scan emitted %d after crossing the limit, want 1", got)
	}
	if got := findByType(s, model.NotifBudgetExceeded); len(got) != 1 {
		t.Fatalf("exceeded alerts = %d, want 1", len(got))
	}
}

func TestScanReemitsBudgetAlertAfterRead(t *testing.T) {
	s := store.New()
	s.AddBudget("Food", dec(1000))
	addExpense(t, s, 1200, "Food")
	Scan(s, time.Now())

	s.MarkNotificationRead(findByType(s, model.NotifBudgetExceeded)[0].ID)

	if got := Scan(s, time.Now()); got != 1 {
		t.Fatalf("Scan emitted %d after read, want a fresh alert", got)
	}
}

func TestScanQuietBudgetEmitsNothing(t *testing.T) {
	s := store.New()
	s.AddBudget("Food", dec(1000))
	addExpense(t, s, 100, "Food")

	if got := Scan(s, time.Now()); got != 0 {
		t.Fatalf("Scan emitted %d for a 10%% budget, want 0", got)
	}
}

func TestScanLargeExpense(t *testing.T) {
	s := store.New()
	tx := addExpense(t, s, 10000, "Rent")

	now := time.Now()
	if got := Scan(s, now); got != 1 {
		t.Fatalf("Scan emitted %d, want 1", got)
	}
	got := findByType(s, model.NotifLargeTransaction)
	if len(got) != 1 || got[0].Ref != tx.ID {
		t.Fatalf("notifications = %+v, want one large-expense alert for %s", got, tx.ID)
	}

	// Dedup by transaction id holds even after the alert is read.
	s.MarkNotificationRead(got[0].ID)
	if emitted := Scan(s, now); emitted != 0 {
		t.Fatalf("Scan emitted %d after read, want 0", emitted)
	}
}

func TestScanLargeExpenseOutsideWindowIgnored(t *testing.T) {
	s := store.New()
	addExpense(t, s, 15000, "Rent")

	if got := Scan(s, time.Now().Add(2*time.Hour)); got != 0 {
		t.Fatalf("Scan emitted %d for a stale entry, want 0", got)
	}
}

func TestScanLargeIncomeIgnored(t *testing.T) {
	s := store.New()
	if _, ok := s.AddTransaction(model.Transaction{
		Amount:   dec(50000),
		Type:     model.Income,
		Category: "Salary",
	}); !ok {
		t.Fatal("AddTransaction rejected")
	}

	if got := Scan(s, time.Now()); got != 0 {
		t.Fatalf("Scan emitted %d for income, want 0", got)
	}
}

func TestScanBelowThresholdIgnored(t *testing.T) {
	s := store.New()
	addExpense(t, s, 9999, "Rent")

	if got := Scan(s, time.Now()); got != 0 {
		t.Fatalf("Scan emitted %d below the threshold, want 0", got)
	}
}
