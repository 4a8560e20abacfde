package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nikhilmn/fintrack/internal/model"
)

func dec(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

func budget(spent, limit int64) model.Budget {
	return model.Budget{Category: "Food", Spent: dec(spent), MonthlyLimit: dec(limit)}
}

func tx(typ model.TransactionType, amount int64, category string, date time.Time) model.Transaction {
	return model.Transaction{Type: typ, Amount: dec(amount), Category: category, Date: date}
}

func TestForBudgetZeroSpent(t *testing.T) {
	r := ForBudget(budget(0, 8000))

	if r.Percent != 0 {
		t.Fatalf("Percent = %v, want 0", r.Percent)
	}
	if r.Status != StatusOnTrack {
		t.Fatalf("Status = %q, want %q", r.Status, StatusOnTrack)
	}
	if !r.Remaining.Equal(dec(8000)) {
		t.Fatalf("Remaining = %s, want 8000", r.Remaining)
	}
}

func TestForBudgetPartway(t *testing.T) {
	r := ForBudget(budget(3700, 8000))

	if r.Percent != 46.25 {
		t.Fatalf("Percent = %v, want 46.25", r.Percent)
	}
	if r.Status != StatusOnTrack {
		t.Fatalf("Status = %q, want %q", r.Status, StatusOnTrack)
	}
	if !r.Remaining.Equal(dec(4300)) {
		t.Fatalf("Remaining = %s, want 4300", r.Remaining)
	}
}

func TestForBudgetStatusBoundaries(t *testing.T) {
	cases := []struct {
		spent, limit int64
		want         BudgetStatus
	}{
		{7999, 10000, StatusOnTrack},
		{8000, 10000, StatusWarning},
		{9999, 10000, StatusWarning},
		{10000, 10000, StatusExceeded},
		{12000, 10000, StatusExceeded},
	}
	for _, c := range cases {
		if got := ForBudget(budget(c.spent, c.limit)).Status; got != c.want {
			t.Fatalf("ForBudget(%d/%d).Status = %q, want %q", c.spent, c.limit, got, c.want)
		}
	}
}

func TestForBudgetOverLimit(t *testing.T) {
	r := ForBudget(budget(12000, 8000))

	if r.Percent != 150 {
		t.Fatalf("Percent = %v, want 150", r.Percent)
	}
	if r.DisplayPercent != 100 {
		t.Fatalf("DisplayPercent = %v, want clamp at 100", r.DisplayPercent)
	}
	if !r.Remaining.IsZero() {
		t.Fatalf("Remaining = %s, want 0", r.Remaining)
	}
}

func TestSafeToSpendScenario(t *testing.T) {
	now := time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)
	txs := []model.Transaction{
		tx(model.Income, 50000, "Salary", now.AddDate(0, 0, -10)),
		tx(model.Expense, 20000, "Rent", now.AddDate(0, 0, -5)),
	}
	goals := []model.SavingsGoal{
		{Name: "Laptop", TargetAmount: dec(80000), CurrentAmount: dec(45000)},
	}

	r := ComputeSafeToSpend(txs, goals, now)

	wantContribution := dec(35000).Div(dec(12))
	if !r.GoalContribution.Equal(wantContribution) {
		t.Fatalf("GoalContribution = %s, want %s", r.GoalContribution, wantContribution)
	}
	wantSafe := dec(30000).Sub(wantContribution)
	if !r.Safe.Equal(wantSafe) {
		t.Fatalf("Safe = %s, want %s", r.Safe, wantSafe)
	}
	if r.Health != HealthHealthy {
		t.Fatalf("Health = %q, want %q", r.Health, HealthHealthy)
	}
}

func TestSafeToSpendNeverNegative(t *testing.T) {
	now := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	txs := []model.Transaction{
		tx(model.Income, 1000, "Salary", now),
		tx(model.Expense, 5000, "Rent", now),
	}

	r := ComputeSafeToSpend(txs, nil, now)

	if !r.Safe.IsZero() {
		t.Fatalf("Safe = %s with expenses over income, want 0", r.Safe)
	}
	if r.Health != HealthTight {
		t.Fatalf("Health = %q, want %q", r.Health, HealthTight)
	}
}

func TestSafeToSpendZeroIncome(t *testing.T) {
	now := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

	r := ComputeSafeToSpend(nil, nil, now)

	if r.SafePercent != 0 {
		t.Fatalf("SafePercent = %v with no income, want 0", r.SafePercent)
	}
	if r.Health != HealthTight {
		t.Fatalf("Health = %q, want %q", r.Health, HealthTight)
	}
}

func TestSafeToSpendIgnoresOtherMonths(t *testing.T) {
	now := time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)
	txs := []model.Transaction{
		tx(model.Income, 50000, "Salary", time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)),
		tx(model.Income, 40000, "Salary", now),
	}

	r := ComputeSafeToSpend(txs, nil, now)

	if !r.Income.Equal(dec(40000)) {
		t.Fatalf("Income = %s, want 40000 (January excluded)", r.Income)
	}
}

func TestSafeToSpendIgnoresCompletedGoals(t *testing.T) {
	now := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	goals := []model.SavingsGoal{
		{Name: "Done", TargetAmount: dec(10000), CurrentAmount: dec(12000)},
	}

	r := ComputeSafeToSpend(nil, goals, now)

	if !r.GoalContribution.IsZero() {
		t.Fatalf("GoalContribution = %s for overshot goal, want 0", r.GoalContribution)
	}
}

func TestHealthModerateBand(t *testing.T) {
	now := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	txs := []model.Transaction{
		tx(model.Income, 10000, "Salary", now),
		tx(model.Expense, 8000, "Rent", now),
	}

	r := ComputeSafeToSpend(txs, nil, now)

	if r.SafePercent != 20 {
		t.Fatalf("SafePercent = %v, want 20", r.SafePercent)
	}
	if r.Health != HealthModerate {
		t.Fatalf("Health = %q, want %q", r.Health, HealthModerate)
	}
}

func TestSummarizeSortsCategoriesByAmount(t *testing.T) {
	now := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	txs := []model.Transaction{
		tx(model.Expense, 800, "Transport", now),
		tx(model.Expense, 2500, "Food", now),
		tx(model.Expense, 1200, "Food", now),
		tx(model.Income, 50000, "Salary", now),
	}

	s := Summarize(txs, now)

	if !s.Expenses.Equal(dec(4500)) {
		t.Fatalf("Expenses = %s, want 4500", s.Expenses)
	}
	if !s.Net.Equal(dec(45500)) {
		t.Fatalf("Net = %s, want 45500", s.Net)
	}
	if len(s.ByCategory) != 2 {
		t.Fatalf("categories = %d, want 2", len(s.ByCategory))
	}
	if s.ByCategory[0].Category != "Food" || !s.ByCategory[0].Amount.Equal(dec(3700)) {
		t.Fatalf("top category = %+v, want Food 3700", s.ByCategory[0])
	}
	if s.ByCategory[1].Category != "Transport" {
		t.Fatalf("second category = %q, want Transport", s.ByCategory[1].Category)
	}
}

func TestForGoalProgress(t *testing.T) {
	now := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

	g := model.SavingsGoal{TargetAmount: dec(80000), CurrentAmount: dec(45000), Deadline: now.Add(48 * time.Hour)}
	r := ForGoal(g, now)
	if r.Percent != 56.25 {
		t.Fatalf("Percent = %v, want 56.25", r.Percent)
	}
	if r.Completed {
		t.Fatal("Completed = true before target")
	}
	if r.DaysLeft != 2 {
		t.Fatalf("DaysLeft = %d, want 2", r.DaysLeft)
	}
}

func TestForGoalClampsAndCompletes(t *testing.T) {
	now := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

	g := model.SavingsGoal{TargetAmount: dec(50000), CurrentAmount: dec(60000), Deadline: now.Add(-time.Hour)}
	r := ForGoal(g, now)
	if r.Percent != 100 {
		t.Fatalf("Percent = %v for overshot goal, want clamp at 100", r.Percent)
	}
	if !r.Completed {
		t.Fatal("Completed = false at target")
	}
	if r.DaysLeft != 0 {
		t.Fatalf("DaysLeft = %d past deadline, want 0", r.DaysLeft)
	}
}

func TestForGoalPartialDayRoundsUp(t *testing.T) {
	now := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

	g := model.SavingsGoal{TargetAmount: dec(1000), Deadline: now.Add(36 * time.Hour)}
	if got := ForGoal(g, now).DaysLeft; got != 2 {
		t.Fatalf("DaysLeft = %d for a day and a half, want 2", got)
	}
}

func TestMonthTransactions(t *testing.T) {
	now := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	txs := []model.Transaction{
		tx(model.Expense, 1, "A", time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)),
		tx(model.Expense, 2, "B", time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)),
		tx(model.Expense, 3, "C", time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)),
	}

	got := MonthTransactions(txs, now)

	if len(got) != 1 || got[0].Category != "A" {
		t.Fatalf("MonthTransactions = %+v, want just A", got)
	}
}
