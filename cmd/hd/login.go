package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ccnlabs/helpdesk/internal/notify"
	"github.com/ccnlabs/helpdesk/internal/ui"
	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:     "login <username>",
	Short:   "Sign in to the helpdesk service",
	GroupID: "session",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username := args[0]
		password, _ := cmd.Flags().GetString("password")

		if password == "" {
			fmt.Fprint(os.Stderr, "Password: ")
			p, err := ui.ReadPassword()
			fmt.Fprintln(os.Stderr)
			if err != nil {
				return fmt.Errorf("reading password: %w", err)
			}
			password = p
		}
		if strings.TrimSpace(password) == "" {
			return fmt.Errorf("password must not be empty")
		}

		sess, err := sessions.Login(context.Background(), username, password)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		api.SetToken(sess.AccessToken)

		// Push-token registration is best effort; a failure only delays
		// notifications and is retried on the next login.
		notify.Register(context.Background(), api, store)

		if jsonOutput {
			printJSON(map[string]string{
				"role":    sess.Role.String(),
				"user_id": sess.UserID,
			})
			return nil
		}
		fmt.Printf("logged in as %s (%s)\n", username, sess.Role)
		return nil
	},
}

func init() {
	loginCmd.Flags().String("password", "", "password (prompted when omitted)")
}
