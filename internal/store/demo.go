package store

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nikhilmn/fintrack/internal/model"
)

// Canned dataset seeded by the demo login: 10 transactions, 4 budgets,
// 3 goals. Budget Spent values match the expense transactions in their
// categories.

func demoDay(day int) time.Time {
	return time.Date(2024, time.January, day, 0, 0, 0, 0, time.UTC)
}

func demoStamp(day, hour int) time.Time {
	return time.Date(2024, time.January, day, hour, 0, 0, 0, time.UTC)
}

func amt(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

func demoTransactions() []model.Transaction {
	return []model.Transaction{
		{ID: "1", Amount: amt(50000), Type: model.Income, Category: "Salary", Date: demoDay(1), Note: "Monthly salary", CreatedAt: demoStamp(1, 9)},
		{ID: "2", Amount: amt(2500), Type: model.Expense, Category: "Food", Date: demoDay(2), Note: "Groceries", CreatedAt: demoStamp(2, 10)},
		{ID: "3", Amount: amt(15000), Type: model.Expense, Category: "Rent", Date: demoDay(3), Note: "Monthly rent", CreatedAt: demoStamp(3, 8)},
		{ID: "4", Amount: amt(800), Type: model.Expense, Category: "Transport", Date: demoDay(4), Note: "Metro card recharge", CreatedAt: demoStamp(4, 11)},
		{ID: "5", Amount: amt(3500), Type: model.Expense, Category: "Utilities", Date: demoDay(5), Note: "Electricity bill", CreatedAt: demoStamp(5, 14)},
		{ID: "6", Amount: amt(2000), Type: model.Expense, Category: "Entertainment", Date: demoDay(6), Note: "Movie and dinner", CreatedAt: demoStamp(6, 19)},
		{ID: "7", Amount: amt(5000), Type: model.Income, Category: "Freelance", Date: demoDay(7), Note: "Side project payment", CreatedAt: demoStamp(7, 16)},
		{ID: "8", Amount: amt(1200), Type: model.Expense, Category: "Food", Date: demoDay(8), Note: "Restaurant", CreatedAt: demoStamp(8, 20)},
		{ID: "9", Amount: amt(4000), Type: model.Expense, Category: "Shopping", Date: demoDay(9), Note: "New clothes", CreatedAt: demoStamp(9, 15)},
		{ID: "10", Amount: amt(10000), Type: model.Expense, Category: "Savings", Date: demoDay(10), Note: "Monthly savings", CreatedAt: demoStamp(10, 9)},
	}
}

func demoBudgets() []model.Budget {
	return []model.Budget{
		{ID: "1", Category: "Food", MonthlyLimit: amt(8000), Spent: amt(3700)},
		{ID: "2", Category: "Transport", MonthlyLimit: amt(3000), Spent: amt(800)},
		{ID: "3", Category: "Entertainment", MonthlyLimit: amt(5000), Spent: amt(2000)},
		{ID: "4", Category: "Shopping", MonthlyLimit: amt(6000), Spent: amt(4000)},
	}
}

func demoSavingsGoals() []model.SavingsGoal {
	return []model.SavingsGoal{
		{ID: "1", Name: "New Laptop", TargetAmount: amt(80000), CurrentAmount: amt(45000), Deadline: demoDay(1).AddDate(0, 5, 0), CreatedAt: demoStamp(1, 9)},
		{ID: "2", Name: "Emergency Fund", TargetAmount: amt(100000), CurrentAmount: amt(25000), Deadline: time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), CreatedAt: demoStamp(1, 9)},
		{ID: "3", Name: "Vacation Trip", TargetAmount: amt(50000), CurrentAmount: amt(12000), Deadline: time.Date(2024, time.August, 15, 0, 0, 0, 0, time.UTC), CreatedAt: demoStamp(1, 9)},
	}
}
