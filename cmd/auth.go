package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var (
	flagEmail    string
	flagPassword string
	flagName     string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and load your data",
	RunE:  runLogin,
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a local account",
	RunE:  runSignup,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and reset local data",
	RunE:  runLogout,
}

func init() {
	loginCmd.Flags().StringVar(&flagEmail, "email", "", "Email address")
	loginCmd.Flags().StringVar(&flagPassword, "password", "", "Password (prompted if omitted)")
	signupCmd.Flags().StringVar(&flagName, "name", "", "Display name")
	signupCmd.Flags().StringVar(&flagEmail, "email", "", "Email address")
	signupCmd.Flags().StringVar(&flagPassword, "password", "", "Password (prompted if omitted)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(logoutCmd)
}

func runLogin(cmd *cobra.Command, _ []string) error {
	if flagEmail == "" || flagPassword == "" {
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Email").Value(&flagEmail),
			huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&flagPassword),
		))
		if err := form.Run(); err != nil {
			return err
		}
	}

	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if !s.Login(cmd.Context(), flagEmail, flagPassword) {
		return errors.New("login failed: enter a valid email and a password of at least 6 characters")
	}

	u := s.User()
	fmt.Printf("\n  Logged in as %s <%s>\n\n", u.Name, u.Email)
	if len(s.Transactions()) > 0 {
		hint("Loaded %d transactions, %d budgets, %d goals.",
			len(s.Transactions()), len(s.Budgets()), len(s.SavingsGoals()))
	}
	return nil
}

func runSignup(cmd *cobra.Command, _ []string) error {
	if flagName == "" || flagEmail == "" || flagPassword == "" {
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Name").Value(&flagName),
			huh.NewInput().Title("Email").Value(&flagEmail),
			huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&flagPassword),
		))
		if err := form.Run(); err != nil {
			return err
		}
	}

	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if !s.Signup(cmd.Context(), flagName, flagEmail, flagPassword) {
		return errors.New("signup failed: name, email, and a password of at least 6 characters are required")
	}

	fmt.Printf("\n  Welcome, %s. You're logged in.\n\n", flagName)
	return nil
}

func runLogout(_ *cobra.Command, _ []string) error {
	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	s.Logout()
	fmt.Println("\n  Logged out. Local data cleared.")
	return nil
}
