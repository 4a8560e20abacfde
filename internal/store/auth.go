package store

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/nikhilmn/fintrack/internal/model"
)

// Demo credential pair. Logging in with it replaces the collections
// with the canned dataset instead of an empty state.
const (
	demoEmail    = "demo@demo.com"
	demoPassword = "Demo1234"
)

const minPasswordLen = 6

// Login authenticates the session. The demo credentials seed the
// store with the fixed demo dataset, replacing current contents. Any
// other non-empty email with a password of at least six characters
// synthesizes a user from the email's local part, without seeding.
// Everything else returns false and leaves state untouched.
//
// The context is unused today; the signature leaves room for a real
// credential round trip without changing callers.
func (s *Store) Login(_ context.Context, email, password string) bool {
	if email == demoEmail && password == demoPassword {
		s.state.User = &model.User{ID: "1", Name: "Demo User", Email: demoEmail}
		s.state.IsAuthenticated = true
		s.state.Transactions = demoTransactions()
		s.state.Budgets = demoBudgets()
		s.state.SavingsGoals = demoSavingsGoals()
		s.commit()
		logrus.WithField("email", email).Debug("demo login, dataset seeded")
		return true
	}

	if email != "" && len(password) >= minPasswordLen {
		name := email
		if i := strings.Index(email, "@"); i >= 0 {
			name = email[:i]
		}
		s.state.User = &model.User{ID: uuid.NewString(), Name: name, Email: email}
		s.state.IsAuthenticated = true
		s.commit()
		return true
	}

	return false
}

// Signup creates a fresh session user. No credentials are stored or
// hashed; this is a local-only shim by design.
func (s *Store) Signup(_ context.Context, name, email, password string) bool {
	if name == "" || email == "" || len(password) < minPasswordLen {
		return false
	}
	s.state.User = &model.User{ID: uuid.NewString(), Name: name, Email: email}
	s.state.IsAuthenticated = true
	s.commit()
	return true
}

// Logout clears the session and empties transactions, budgets, goals,
// and notifications. Settings survive.
func (s *Store) Logout() {
	s.state.User = nil
	s.state.IsAuthenticated = false
	s.state.Transactions = nil
	s.state.Budgets = nil
	s.state.SavingsGoals = nil
	s.state.Notifications = nil
	s.commit()
}
