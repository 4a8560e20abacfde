// Package model defines the entities held by the application state store.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// Valid reports whether t is one of the two known transaction types.
func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

// Transaction is a single logged income or expense entry. Date is the
// user-assigned calendar date and may differ from CreatedAt, which is
// set by the store and never changes.
type Transaction struct {
	ID        string          `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Type      TransactionType `json:"type"`
	Category  string          `json:"category"`
	Date      time.Time       `json:"date"`
	Note      string          `json:"note"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Budget is a per-category monthly spending ceiling. Spent accumulates
// from matching expense transactions; the store keeps it in sync.
type Budget struct {
	ID           string          `json:"id"`
	Category     string          `json:"category"`
	MonthlyLimit decimal.Decimal `json:"monthlyLimit"`
	Spent        decimal.Decimal `json:"spent"`
}

// SavingsGoal is a target amount with a deadline. CurrentAmount only
// grows via explicit contributions; overshooting the target is allowed
// and counts as completed.
type SavingsGoal struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Deadline      time.Time       `json:"deadline"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// NotificationType classifies inbox entries.
type NotificationType string

const (
	NotifBudgetWarning    NotificationType = "budget_warning"
	NotifBudgetExceeded   NotificationType = "budget_exceeded"
	NotifLargeTransaction NotificationType = "large_transaction"
	NotifGoalReached      NotificationType = "goal_reached"
	NotifInfo             NotificationType = "info"
)

// Notification is an inbox entry. Ref carries the stable reference this
// notification is about (a budget category or a transaction id) and is
// the de-duplication key for trigger rules.
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Ref       string           `json:"ref,omitempty"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"createdAt"`
}

// User identifies the current session owner.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Settings holds presentation toggles persisted alongside the data.
type Settings struct {
	ParticlesEnabled bool `json:"particlesEnabled"`
	ReduceMotion     bool `json:"reduceMotion"`
}
