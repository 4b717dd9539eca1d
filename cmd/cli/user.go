package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newUserCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Register and check accounts",
	}

	var username, email string
	register := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword("Password: ")
			if err != nil {
				return err
			}
			u, err := a.users.Register(cmd.Context(), username, email, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "registered %s <%s> (id %d)\n", u.Username, u.Email, u.ID)
			return nil
		},
	}
	register.Flags().StringVar(&username, "username", "", "display name")
	register.Flags().StringVar(&email, "email", "", "login email")
	_ = register.MarkFlagRequired("username")
	_ = register.MarkFlagRequired("email")

	var loginEmail string
	login := &cobra.Command{
		Use:   "login",
		Short: "Check credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword("Password: ")
			if err != nil {
				return err
			}
			u, err := a.users.Login(cmd.Context(), loginEmail, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "welcome back, %s\n", u.Username)
			return nil
		},
	}
	login.Flags().StringVar(&loginEmail, "email", "", "login email")
	_ = login.MarkFlagRequired("email")

	cmd.AddCommand(register, login)
	return cmd
}

// readPassword reads without echo from a terminal, or a plain line when stdin is piped
func readPassword(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		var line string
		if _, err := fmt.Fscanln(os.Stdin, &line); err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return strings.TrimSpace(line), nil
	}
	fmt.Fprint(os.Stderr, prompt)
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}
