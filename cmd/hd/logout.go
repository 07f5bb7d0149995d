package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:     "logout",
	Short:   "Sign out and clear stored credentials",
	GroupID: "session",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := sessions.Logout(); err != nil {
			return fmt.Errorf("clearing credentials: %w", err)
		}
		api.SetToken("")
		fmt.Println("logged out")
		return nil
	},
}
