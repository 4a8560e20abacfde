package cli

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4500, "-4,500"},
	}
	for _, c := range cases {
		if got := FormatNumber(c.in); got != c.want {
			t.Fatalf("FormatNumber(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatCurrency(t *testing.T) {
	old := CurrencySymbol
	CurrencySymbol = "₹"
	defer func() { CurrencySymbol = old }()

	cases := []struct {
		in   decimal.Decimal
		want string
	}{
		{decimal.NewFromInt(3700), "₹3,700"},
		{decimal.NewFromFloat(1234.6), "₹1,235"},
		{decimal.NewFromInt(-500), "-₹500"},
	}
	for _, c := range cases {
		if got := FormatCurrency(c.in); got != c.want {
			t.Fatalf("FormatCurrency(%s) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatRelativeTime(t *testing.T) {
	now := time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		ago  time.Duration
		want string
	}{
		{30 * time.Second, "Just now"},
		{5 * time.Minute, "5m ago"},
		{3 * time.Hour, "3h ago"},
		{48 * time.Hour, "2d ago"},
	}
	for _, c := range cases {
		if got := FormatRelativeTime(now.Add(-c.ago), now); got != c.want {
			t.Fatalf("FormatRelativeTime(-%s) = %q, want %q", c.ago, got, c.want)
		}
	}
}

func TestShortID(t *testing.T) {
	if got := ShortID("abcdef12-3456"); got != "abcdef12" {
		t.Fatalf("ShortID = %q, want abcdef12", got)
	}
	if got := ShortID("abc"); got != "abc" {
		t.Fatalf("ShortID = %q, want abc", got)
	}
}
