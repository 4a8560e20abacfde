// Package store holds the application state and every mutation path
// over it. All writes funnel through a single commit point that
// persists a snapshot of the full state; reads hand out copies so
// callers never alias internal slices.
package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/nikhilmn/fintrack/internal/model"
)

// SchemaVersion is written into every snapshot so a future layout
// change can migrate old payloads.
const SchemaVersion = 1

// maxNotifications caps the inbox; the oldest entries are evicted.
const maxNotifications = 50

// State is the full persisted snapshot of the application.
type State struct {
	SchemaVersion   int                  `json:"schemaVersion"`
	User            *model.User          `json:"user"`
	IsAuthenticated bool                 `json:"isAuthenticated"`
	Transactions    []model.Transaction  `json:"transactions"`
	Budgets         []model.Budget       `json:"budgets"`
	SavingsGoals    []model.SavingsGoal  `json:"savingsGoals"`
	Notifications   []model.Notification `json:"notifications"`
	Settings        model.Settings       `json:"settings"`
}

// Store owns the state. It is not safe for concurrent use; the CLI is
// single-threaded and mutates it from one command at a time.
type Store struct {
	state State
	snap  *Snapshot
}

// New returns an empty store with no persistence attached.
func New() *Store {
	return &Store{
		state: State{
			SchemaVersion: SchemaVersion,
			Settings:      model.Settings{ParticlesEnabled: true},
		},
	}
}

// Open loads the persisted state from the snapshot database at dbPath,
// creating an empty one on first run.
func Open(dbPath string) (*Store, error) {
	snap, err := OpenSnapshot(dbPath)
	if err != nil {
		return nil, err
	}

	s := New()
	s.snap = snap

	st, ok, err := snap.Load()
	if err != nil {
		_ = snap.Close()
		return nil, err
	}
	if ok {
		st.SchemaVersion = SchemaVersion
		s.state = st
	}
	return s, nil
}

// Close flushes the state and closes the snapshot database.
func (s *Store) Close() error {
	if s.snap == nil {
		return nil
	}
	if err := s.snap.Save(s.state); err != nil {
		return err
	}
	return s.snap.Close()
}

// commit persists the current state. Writes are best-effort: a failed
// write is logged and the in-memory mutation stands, with Close as the
// final flush.
func (s *Store) commit() {
	if s.snap == nil {
		return
	}
	if err := s.snap.Save(s.state); err != nil {
		logrus.WithError(err).Warn("state snapshot write failed")
	}
}

// Read accessors. Slices are copied so mutations stay funneled through
// the store.

// Transactions returns all transactions, most recent first.
func (s *Store) Transactions() []model.Transaction {
	out := make([]model.Transaction, len(s.state.Transactions))
	copy(out, s.state.Transactions)
	return out
}

// Budgets returns all budgets in insertion order.
func (s *Store) Budgets() []model.Budget {
	out := make([]model.Budget, len(s.state.Budgets))
	copy(out, s.state.Budgets)
	return out
}

// SavingsGoals returns all goals in insertion order.
func (s *Store) SavingsGoals() []model.SavingsGoal {
	out := make([]model.SavingsGoal, len(s.state.SavingsGoals))
	copy(out, s.state.SavingsGoals)
	return out
}

// Notifications returns the inbox, most recent first.
func (s *Store) Notifications() []model.Notification {
	out := make([]model.Notification, len(s.state.Notifications))
	copy(out, s.state.Notifications)
	return out
}

// Settings returns the presentation toggles.
func (s *Store) Settings() model.Settings {
	return s.state.Settings
}

// User returns the session user, or nil when logged out.
func (s *Store) User() *model.User {
	if s.state.User == nil {
		return nil
	}
	u := *s.state.User
	return &u
}

// IsAuthenticated reports whether a session user is present.
func (s *Store) IsAuthenticated() bool {
	return s.state.IsAuthenticated
}

// Transactions

// AddTransaction validates and stores a new transaction, assigning its
// id and creation timestamp. When the transaction is an expense and a
// budget exists for the exact category, that budget's Spent is
// incremented in the same logical update. Returns ok=false without
// touching state when the amount is not positive, the type is unknown,
// or the category is empty.
func (s *Store) AddTransaction(tx model.Transaction) (model.Transaction, bool) {
	if !tx.Amount.IsPositive() || !tx.Type.Valid() || tx.Category == "" {
		return model.Transaction{}, false
	}

	tx.ID = uuid.NewString()
	tx.CreatedAt = time.Now().UTC()
	if tx.Date.IsZero() {
		tx.Date = tx.CreatedAt
	}

	s.state.Transactions = append([]model.Transaction{tx}, s.state.Transactions...)
	s.applySpend(tx, +1)
	s.commit()
	return tx, true
}

// TransactionPatch carries the fields an update may change; nil fields
// are left untouched.
type TransactionPatch struct {
	Amount   *decimal.Decimal
	Type     *model.TransactionType
	Category *string
	Date     *time.Time
	Note     *string
}

// UpdateTransaction merges the patch into the transaction with the
// given id, silently doing nothing when the id is unknown. Budget
// spend is reconciled: the old expense contribution is removed and the
// new one applied, so edits cannot drift budget totals. Invalid patch
// values (non-positive amount, unknown type, empty category) are
// skipped field-by-field.
func (s *Store) UpdateTransaction(id string, p TransactionPatch) {
	idx := -1
	for i := range s.state.Transactions {
		if s.state.Transactions[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	old := s.state.Transactions[idx]
	next := old
	if p.Amount != nil && p.Amount.IsPositive() {
		next.Amount = *p.Amount
	}
	if p.Type != nil && p.Type.Valid() {
		next.Type = *p.Type
	}
	if p.Category != nil && *p.Category != "" {
		next.Category = *p.Category
	}
	if p.Date != nil && !p.Date.IsZero() {
		next.Date = *p.Date
	}
	if p.Note != nil {
		next.Note = *p.Note
	}

	s.applySpend(old, -1)
	s.state.Transactions[idx] = next
	s.applySpend(next, +1)
	s.commit()
}

// DeleteTransaction removes the transaction with the given id and
// reverses its budget contribution; unknown ids are a silent no-op.
func (s *Store) DeleteTransaction(id string) {
	for i := range s.state.Transactions {
		if s.state.Transactions[i].ID == id {
			s.applySpend(s.state.Transactions[i], -1)
			s.state.Transactions = append(s.state.Transactions[:i], s.state.Transactions[i+1:]...)
			s.commit()
			return
		}
	}
}

// applySpend adds (sign > 0) or removes (sign < 0) an expense
// transaction's contribution to the budget matching its category.
// Spent never goes below zero.
func (s *Store) applySpend(tx model.Transaction, sign int) {
	if tx.Type != model.Expense {
		return
	}
	for i := range s.state.Budgets {
		b := &s.state.Budgets[i]
		if b.Category != tx.Category {
			continue
		}
		if sign > 0 {
			b.Spent = b.Spent.Add(tx.Amount)
		} else {
			b.Spent = b.Spent.Sub(tx.Amount)
			if b.Spent.IsNegative() {
				b.Spent = decimal.Zero
			}
		}
		return
	}
}

// Budgets

// AddBudget creates a budget for the category with Spent starting at
// zero; prior transactions in the category are not backfilled. Returns
// ok=false for an empty category, a non-positive limit, or a category
// that already has a budget.
func (s *Store) AddBudget(category string, monthlyLimit decimal.Decimal) (model.Budget, bool) {
	if category == "" || !monthlyLimit.IsPositive() {
		return model.Budget{}, false
	}
	for i := range s.state.Budgets {
		if s.state.Budgets[i].Category == category {
			return model.Budget{}, false
		}
	}

	b := model.Budget{
		ID:           uuid.NewString(),
		Category:     category,
		MonthlyLimit: monthlyLimit,
		Spent:        decimal.Zero,
	}
	s.state.Budgets = append(s.state.Budgets, b)
	s.commit()
	return b, true
}

// BudgetPatch carries the fields a budget update may change. Spent is
// included so a user can correct the accumulated total by hand.
type BudgetPatch struct {
	Category     *string
	MonthlyLimit *decimal.Decimal
	Spent        *decimal.Decimal
}

// UpdateBudget merges the patch into the budget with the given id;
// unknown ids and invalid values are silently skipped. A category
// rename that would collide with another budget is ignored.
func (s *Store) UpdateBudget(id string, p BudgetPatch) {
	idx := -1
	for i := range s.state.Budgets {
		if s.state.Budgets[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	b := &s.state.Budgets[idx]
	if p.Category != nil && *p.Category != "" && !s.hasBudgetCategory(*p.Category, id) {
		b.Category = *p.Category
	}
	if p.MonthlyLimit != nil && p.MonthlyLimit.IsPositive() {
		b.MonthlyLimit = *p.MonthlyLimit
	}
	if p.Spent != nil && !p.Spent.IsNegative() {
		b.Spent = *p.Spent
	}
	s.commit()
}

// DeleteBudget removes the budget with the given id; unknown ids are a
// silent no-op.
func (s *Store) DeleteBudget(id string) {
	for i := range s.state.Budgets {
		if s.state.Budgets[i].ID == id {
			s.state.Budgets = append(s.state.Budgets[:i], s.state.Budgets[i+1:]...)
			s.commit()
			return
		}
	}
}

func (s *Store) hasBudgetCategory(category, excludeID string) bool {
	for i := range s.state.Budgets {
		if s.state.Budgets[i].Category == category && s.state.Budgets[i].ID != excludeID {
			return true
		}
	}
	return false
}

// Savings goals

// AddSavingsGoal creates a goal with CurrentAmount starting at zero.
// A zero deadline defaults to one year out. Returns ok=false for an
// empty name or non-positive target.
func (s *Store) AddSavingsGoal(name string, target decimal.Decimal, deadline time.Time) (model.SavingsGoal, bool) {
	if name == "" || !target.IsPositive() {
		return model.SavingsGoal{}, false
	}

	now := time.Now().UTC()
	if deadline.IsZero() {
		deadline = now.AddDate(1, 0, 0)
	}

	g := model.SavingsGoal{
		ID:            uuid.NewString(),
		Name:          name,
		TargetAmount:  target,
		CurrentAmount: decimal.Zero,
		Deadline:      deadline,
		CreatedAt:     now,
	}
	s.state.SavingsGoals = append(s.state.SavingsGoals, g)
	s.commit()
	return g, true
}

// GoalPatch carries the fields a goal update may change.
type GoalPatch struct {
	Name         *string
	TargetAmount *decimal.Decimal
	Deadline     *time.Time
}

// UpdateSavingsGoal merges the patch into the goal with the given id;
// unknown ids and invalid values are silently skipped.
func (s *Store) UpdateSavingsGoal(id string, p GoalPatch) {
	for i := range s.state.SavingsGoals {
		g := &s.state.SavingsGoals[i]
		if g.ID != id {
			continue
		}
		if p.Name != nil && *p.Name != "" {
			g.Name = *p.Name
		}
		if p.TargetAmount != nil && p.TargetAmount.IsPositive() {
			g.TargetAmount = *p.TargetAmount
		}
		if p.Deadline != nil && !p.Deadline.IsZero() {
			g.Deadline = *p.Deadline
		}
		s.commit()
		return
	}
}

// DeleteSavingsGoal removes the goal with the given id; unknown ids
// are a silent no-op.
func (s *Store) DeleteSavingsGoal(id string) {
	for i := range s.state.SavingsGoals {
		if s.state.SavingsGoals[i].ID == id {
			s.state.SavingsGoals = append(s.state.SavingsGoals[:i], s.state.SavingsGoals[i+1:]...)
			s.commit()
			return
		}
	}
}

// ContributeToGoal adds amount to the goal's balance. A non-positive
// amount or unknown id is a no-op returning ok=false. When the balance
// crosses from below the target to at-or-above it, exactly one
// goal_reached notification is emitted in the same operation; later
// contributions to an already-completed goal do not re-emit.
func (s *Store) ContributeToGoal(id string, amount decimal.Decimal) (model.SavingsGoal, bool) {
	if !amount.IsPositive() {
		return model.SavingsGoal{}, false
	}
	for i := range s.state.SavingsGoals {
		g := &s.state.SavingsGoals[i]
		if g.ID != id {
			continue
		}

		before := g.CurrentAmount
		g.CurrentAmount = g.CurrentAmount.Add(amount)

		if before.LessThan(g.TargetAmount) && g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount) {
			s.appendNotification(model.Notification{
				Type:    model.NotifGoalReached,
				Title:   "Goal achieved",
				Message: "Congratulations! You've reached your \"" + g.Name + "\" savings goal.",
				Ref:     g.ID,
			})
		}
		s.commit()
		return *g, true
	}
	return model.SavingsGoal{}, false
}

// Notifications

// AddNotification stores an inbox entry, assigning id and timestamp,
// and trims the inbox to the 50 most recent entries.
func (s *Store) AddNotification(typ model.NotificationType, title, message, ref string) model.Notification {
	n := model.Notification{
		Type:    typ,
		Title:   title,
		Message: message,
		Ref:     ref,
	}
	n = s.appendNotification(n)
	s.commit()
	return n
}

func (s *Store) appendNotification(n model.Notification) model.Notification {
	n.ID = uuid.NewString()
	n.Read = false
	n.CreatedAt = time.Now().UTC()

	s.state.Notifications = append([]model.Notification{n}, s.state.Notifications...)
	if len(s.state.Notifications) > maxNotifications {
		s.state.Notifications = s.state.Notifications[:maxNotifications]
	}
	return n
}

// MarkNotificationRead flips one entry's read flag; unknown ids are a
// silent no-op.
func (s *Store) MarkNotificationRead(id string) {
	for i := range s.state.Notifications {
		if s.state.Notifications[i].ID == id {
			s.state.Notifications[i].Read = true
			s.commit()
			return
		}
	}
}

// ClearNotifications empties the inbox unconditionally.
func (s *Store) ClearNotifications() {
	s.state.Notifications = nil
	s.commit()
}

// Settings

// SettingsPatch carries the presentation toggles an update may change.
type SettingsPatch struct {
	ParticlesEnabled *bool
	ReduceMotion     *bool
}

// UpdateSettings merges the patch into the settings record.
func (s *Store) UpdateSettings(p SettingsPatch) {
	if p.ParticlesEnabled != nil {
		s.state.Settings.ParticlesEnabled = *p.ParticlesEnabled
	}
	if p.ReduceMotion != nil {
		s.state.Settings.ReduceMotion = *p.ReduceMotion
	}
	s.commit()
}
