// Package report computes derived financial metrics from raw store
// collections. Everything here is a pure function recomputed on
// demand; collection sizes are bounded by manual data entry, so the
// O(n) passes are cheaper than maintaining incremental aggregates.
package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nikhilmn/fintrack/internal/model"
)

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// BudgetStatus labels how far a budget has progressed through its limit.
type BudgetStatus string

const (
	StatusOnTrack  BudgetStatus = "On track"
	StatusWarning  BudgetStatus = "Almost there"
	StatusExceeded BudgetStatus = "Over budget!"
)

// Status thresholds as percentages of the monthly limit.
const (
	WarningPercent  = 80
	ExceededPercent = 100
)

// BudgetReport is the derived view of one budget. Percent is
// unclamped and drives the exceeded check; DisplayPercent is clamped
// to [0, 100] for rendering.
type BudgetReport struct {
	Budget         model.Budget
	Percent        float64
	DisplayPercent float64
	Remaining      decimal.Decimal
	Status         BudgetStatus
}

// ForBudget computes the derived view of a budget.
func ForBudget(b model.Budget) BudgetReport {
	r := BudgetReport{Budget: b, Remaining: decimal.Zero}

	if b.MonthlyLimit.IsPositive() {
		r.Percent, _ = b.Spent.Div(b.MonthlyLimit).Mul(hundred).Float64()
	}
	r.DisplayPercent = r.Percent
	if r.DisplayPercent > 100 {
		r.DisplayPercent = 100
	}
	if r.DisplayPercent < 0 {
		r.DisplayPercent = 0
	}

	if rem := b.MonthlyLimit.Sub(b.Spent); rem.IsPositive() {
		r.Remaining = rem
	}

	switch {
	case r.Percent >= ExceededPercent:
		r.Status = StatusExceeded
	case r.Percent >= WarningPercent:
		r.Status = StatusWarning
	default:
		r.Status = StatusOnTrack
	}
	return r
}

// Health bands the safe-to-spend percentage of income.
type Health string

const (
	HealthHealthy  Health = "Healthy"
	HealthModerate Health = "Moderate"
	HealthTight    Health = "Tight"
)

// SafeToSpend is the heuristic disposable-income estimate for the
// current calendar month.
type SafeToSpend struct {
	Income           decimal.Decimal
	Expenses         decimal.Decimal
	GoalContribution decimal.Decimal
	Safe             decimal.Decimal
	SafePercent      float64
	Health           Health
}

// ComputeSafeToSpend derives the safe-to-spend estimate at the given
// instant. Transactions are filtered to now's calendar month by their
// user-assigned date; the goal contribution is the total remaining gap
// across goals spread flat over twelve months, deadline-unaware.
func ComputeSafeToSpend(txs []model.Transaction, goals []model.SavingsGoal, now time.Time) SafeToSpend {
	r := SafeToSpend{
		Income:           decimal.Zero,
		Expenses:         decimal.Zero,
		GoalContribution: decimal.Zero,
		Safe:             decimal.Zero,
	}

	for _, tx := range MonthTransactions(txs, now) {
		switch tx.Type {
		case model.Income:
			r.Income = r.Income.Add(tx.Amount)
		case model.Expense:
			r.Expenses = r.Expenses.Add(tx.Amount)
		}
	}

	gap := decimal.Zero
	for _, g := range goals {
		if d := g.TargetAmount.Sub(g.CurrentAmount); d.IsPositive() {
			gap = gap.Add(d)
		}
	}
	r.GoalContribution = gap.Div(twelve)

	if safe := r.Income.Sub(r.Expenses).Sub(r.GoalContribution); safe.IsPositive() {
		r.Safe = safe
	}

	if r.Income.IsPositive() {
		r.SafePercent, _ = r.Safe.Div(r.Income).Mul(hundred).Float64()
	}

	switch {
	case r.SafePercent >= 30:
		r.Health = HealthHealthy
	case r.SafePercent >= 15:
		r.Health = HealthModerate
	default:
		r.Health = HealthTight
	}
	return r
}

// MonthTransactions filters transactions to those whose date falls in
// the same calendar month and year as now.
func MonthTransactions(txs []model.Transaction, now time.Time) []model.Transaction {
	var out []model.Transaction
	for _, tx := range txs {
		if tx.Date.Month() == now.Month() && tx.Date.Year() == now.Year() {
			out = append(out, tx)
		}
	}
	return out
}

// CategorySpend is one category's share of the month's expenses.
type CategorySpend struct {
	Category string
	Amount   decimal.Decimal
	Share    float64
}

// MonthSummary aggregates the current calendar month.
type MonthSummary struct {
	Month      time.Month
	Year       int
	Income     decimal.Decimal
	Expenses   decimal.Decimal
	Net        decimal.Decimal
	ByCategory []CategorySpend
}

// Summarize aggregates the calendar month containing now: totals plus
// a per-category expense breakdown sorted by amount descending.
func Summarize(txs []model.Transaction, now time.Time) MonthSummary {
	s := MonthSummary{
		Month:    now.Month(),
		Year:     now.Year(),
		Income:   decimal.Zero,
		Expenses: decimal.Zero,
	}

	byCat := make(map[string]decimal.Decimal)
	for _, tx := range MonthTransactions(txs, now) {
		switch tx.Type {
		case model.Income:
			s.Income = s.Income.Add(tx.Amount)
		case model.Expense:
			s.Expenses = s.Expenses.Add(tx.Amount)
			byCat[tx.Category] = byCat[tx.Category].Add(tx.Amount)
		}
	}
	s.Net = s.Income.Sub(s.Expenses)

	for cat, amount := range byCat {
		cs := CategorySpend{Category: cat, Amount: amount}
		if s.Expenses.IsPositive() {
			cs.Share, _ = amount.Div(s.Expenses).Mul(hundred).Float64()
		}
		s.ByCategory = append(s.ByCategory, cs)
	}
	sort.Slice(s.ByCategory, func(i, j int) bool {
		if !s.ByCategory[i].Amount.Equal(s.ByCategory[j].Amount) {
			return s.ByCategory[i].Amount.GreaterThan(s.ByCategory[j].Amount)
		}
		return s.ByCategory[i].Category < s.ByCategory[j].Category
	})

	return s
}

// GoalReport is the derived view of one savings goal.
type GoalReport struct {
	Goal      model.SavingsGoal
	Percent   float64
	DaysLeft  int
	Completed bool
}

// ForGoal computes progress toward a goal at the given instant.
// Percent is clamped to 100; DaysLeft floors at zero once the
// deadline has passed.
func ForGoal(g model.SavingsGoal, now time.Time) GoalReport {
	r := GoalReport{Goal: g}

	if g.TargetAmount.IsPositive() {
		r.Percent, _ = g.CurrentAmount.Div(g.TargetAmount).Mul(hundred).Float64()
	}
	if r.Percent > 100 {
		r.Percent = 100
	}
	r.Completed = g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)

	if d := g.Deadline.Sub(now); d > 0 {
		r.DaysLeft = int((d + 24*time.Hour - time.Nanosecond) / (24 * time.Hour))
	}
	return r
}
