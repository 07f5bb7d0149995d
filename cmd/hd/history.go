package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:     "history",
	Short:   "List closed tickets (Admin only)",
	GroupID: "tickets",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		found, err := tickets.ListClosed(context.Background(), sessions.Current().Role)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if jsonOutput {
			printJSON(found)
		} else {
			printTicketListTable(found)
		}
		return nil
	},
}
