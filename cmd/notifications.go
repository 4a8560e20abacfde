package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nikhilmn/fintrack/internal/alerts"
	"github.com/nikhilmn/fintrack/internal/cli"
)

var flagNotifAll bool

var notificationsCmd = &cobra.Command{
	Use:     "notifications",
	Aliases: []string{"notif"},
	Short:   "Show unread notifications",
	RunE:    runNotifications,
}

var notifReadCmd = &cobra.Command{
	Use:   "read <id>",
	Short: "Mark a notification as read",
	Args:  cobra.ExactArgs(1),
	RunE:  runNotifRead,
}

var notifClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all notifications",
	RunE:  runNotifClear,
}

func init() {
	notificationsCmd.Flags().BoolVar(&flagNotifAll, "all", false, "Include read notifications")
	notificationsCmd.AddCommand(notifReadCmd, notifClearCmd)
	rootCmd.AddCommand(notificationsCmd)
}

func runNotifications(_ *cobra.Command, _ []string) error {
	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()
	if err := requireAuth(s); err != nil {
		return err
	}

	// Run the trigger scan first so pending alerts show up, the same
	// way the reactive UI evaluated them on every state change.
	now := time.Now()
	alerts.Scan(s, now)

	notifs := s.Notifications()
	rows := make([][]string, 0, len(notifs))
	for _, n := range notifs {
		if n.Read && !flagNotifAll {
			continue
		}
		marker := "*"
		if n.Read {
			marker = " "
		}
		rows = append(rows, []string{
			marker,
			cli.ShortID(n.ID),
			n.Title,
			n.Message,
			cli.FormatRelativeTime(n.CreatedAt, now),
		})
	}

	if len(rows) == 0 {
		fmt.Println("\n  No notifications yet")
		return nil
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Notifications",
		Headers: []string{"", "ID", "Title", "Message", "When"},
		Rows:    rows,
	}))
	hint("Mark one read with `fintrack notifications read <id>`.")
	return nil
}

func runNotifRead(_ *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()
	if err := requireAuth(s); err != nil {
		return err
	}

	id := args[0]
	for _, n := range s.Notifications() {
		if n.ID == id || cli.ShortID(n.ID) == id {
			s.MarkNotificationRead(n.ID)
			fmt.Println("\n  Marked read.")
			return nil
		}
	}
	// Unknown id is a silent no-op in the store; tell the human anyway.
	fmt.Println("\n  No notification with that id.")
	return nil
}

func runNotifClear(_ *cobra.Command, _ []string) error {
	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()
	if err := requireAuth(s); err != nil {
		return err
	}

	s.ClearNotifications()
	fmt.Println("\n  Cleared.")
	return nil
}
