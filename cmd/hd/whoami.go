package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:     "whoami",
	Short:   "Show the current session",
	GroupID: "session",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess := sessions.Current()
		if !sess.Authenticated() {
			fmt.Println("not logged in")
			return nil
		}
		if jsonOutput {
			printJSON(map[string]string{
				"user_id": sess.UserID,
				"role":    sess.Role.String(),
			})
			return nil
		}
		fmt.Printf("user:  %s\n", sess.UserID)
		fmt.Printf("role:  %s\n", sess.Role)
		return nil
	},
}
