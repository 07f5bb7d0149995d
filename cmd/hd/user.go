package main

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"text/tabwriter"
	"unicode"

	"github.com/ccnlabs/helpdesk/internal/client"
	"github.com/ccnlabs/helpdesk/internal/ui"
	"github.com/spf13/cobra"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateNewUser applies the local preconditions for account creation.
// The server validates again; these checks just avoid a guaranteed 400.
func validateNewUser(username, email, password string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("username must not be empty")
	}
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("invalid email address %q", email)
	}
	if len(password) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}
	hasUpper := false
	hasSpecial := false
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			hasSpecial = true
		}
	}
	if !hasUpper {
		return fmt.Errorf("password must contain an uppercase letter")
	}
	if !hasSpecial {
		return fmt.Errorf("password must contain a special character")
	}
	return nil
}

// resolveRole turns a --role value into the numeric role id the server
// expects. Accepts a numeric id directly or a role name from the catalog.
func resolveRole(ctx context.Context, value string) (int, error) {
	if id, err := strconv.Atoi(value); err == nil {
		return id, nil
	}
	options, err := api.ListRoles(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetching role catalog: %w", err)
	}
	for _, opt := range options {
		if strings.EqualFold(opt.Role, value) {
			return opt.ID, nil
		}
	}
	return 0, fmt.Errorf("unknown role %q", value)
}

var userCmd = &cobra.Command{
	Use:     "user",
	Short:   "Manage helpdesk users (Admin only)",
	GroupID: "users",
}

var userCreateCmd = &cobra.Command{
	Use:   "create <username>",
	Short: "Create a helpdesk user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username := args[0]
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		role, _ := cmd.Flags().GetString("role")

		if password == "" {
			fmt.Fprint(os.Stderr, "Password: ")
			p, err := ui.ReadPassword()
			fmt.Fprintln(os.Stderr)
			if err != nil {
				return fmt.Errorf("reading password: %w", err)
			}
			password = p
		}
		if err := validateNewUser(username, email, password); err != nil {
			return err
		}

		ctx := context.Background()
		roleID, err := resolveRole(ctx, role)
		if err != nil {
			return err
		}

		req := &client.CreateUserRequest{
			Username: username,
			Email:    email,
			Password: password,
			Role:     roleID,
		}
		if err := api.CreateUser(ctx, req); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("user %q created\n", username)
		return nil
	},
}

var rolesCmd = &cobra.Command{
	Use:     "roles",
	Short:   "List assignable user roles",
	GroupID: "users",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		options, err := api.ListRoles(context.Background())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if jsonOutput {
			printJSON(options)
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tROLE")
		for _, opt := range options {
			fmt.Fprintf(w, "%d\t%s\n", opt.ID, opt.Role)
		}
		return w.Flush()
	},
}

func init() {
	userCreateCmd.Flags().String("email", "", "email address (required)")
	userCreateCmd.Flags().String("password", "", "password (prompted when omitted)")
	userCreateCmd.Flags().String("role", "", "role name or numeric id (required)")
	userCreateCmd.MarkFlagRequired("email")
	userCreateCmd.MarkFlagRequired("role")

	userCmd.AddCommand(userCreateCmd)
}
