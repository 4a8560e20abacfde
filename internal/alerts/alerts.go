// Package alerts evaluates notification trigger rules against the
// current store state. Scan runs after any mutation that touches
// budgets or transactions, mirroring a reactive UI check.
package alerts

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nikhilmn/fintrack/internal/model"
	"github.com/nikhilmn/fintrack/internal/report"
	"github.com/nikhilmn/fintrack/internal/store"
)

// A single expense at or above this amount counts as large. The
// threshold is in whole currency units and is deliberately not
// configurable.
var largeExpenseMin = decimal.NewFromInt(10000)

// recentWindow bounds the large-transaction check to entries created
// within the last hour of wall-clock time.
const recentWindow = time.Hour

// Scan checks every budget against its warning and exceeded
// thresholds and every recent transaction against the large-expense
// rule, emitting notifications for anything not already covered.
// De-duplication is by the notification Ref field: budget alerts are
// suppressed while an unread alert of the same type references the
// category, large-transaction alerts while any notification
// references the transaction id. Returns the number emitted.
func Scan(s *store.Store, now time.Time) int {
	emitted := 0

	notifs := s.Notifications()
	for _, b := range s.Budgets() {
		r := report.ForBudget(b)
		switch {
		case r.Percent >= report.ExceededPercent:
			if hasUnread(notifs, model.NotifBudgetExceeded, b.Category) {
				continue
			}
			n := s.AddNotification(model.NotifBudgetExceeded,
				"Budget exceeded",
				fmt.Sprintf("Your %s budget is over its limit: spent %s of %s.",
					b.Category, b.Spent.StringFixed(0), b.MonthlyLimit.StringFixed(0)),
				b.Category)
			notifs = append(notifs, n)
			emitted++
		case r.Percent >= report.WarningPercent:
			if hasUnread(notifs, model.NotifBudgetWarning, b.Category) {
				continue
			}
			n := s.AddNotification(model.NotifBudgetWarning,
				"Budget warning",
				fmt.Sprintf("Your %s budget is at %.0f%%. Consider slowing down spending.",
					b.Category, r.Percent),
				b.Category)
			notifs = append(notifs, n)
			emitted++
		}
	}

	for _, tx := range s.Transactions() {
		if tx.Type != model.Expense || tx.Amount.LessThan(largeExpenseMin) {
			continue
		}
		if now.Sub(tx.CreatedAt) > recentWindow {
			continue
		}
		if hasRef(notifs, tx.ID) {
			continue
		}
		n := s.AddNotification(model.NotifLargeTransaction,
			"Large expense detected",
			fmt.Sprintf("A large expense of %s was recorded for %s.",
				tx.Amount.StringFixed(0), tx.Category),
			tx.ID)
		notifs = append(notifs, n)
		emitted++
	}

	return emitted
}

func hasUnread(notifs []model.Notification, typ model.NotificationType, ref string) bool {
	for _, n := range notifs {
		if n.Type == typ && n.Ref == ref && !n.Read {
			return true
		}
	}
	return false
}

func hasRef(notifs []model.Notification, ref string) bool {
	for _, n := range notifs {
		if n.Ref == ref {
			return true
		}
	}
	return false
}
