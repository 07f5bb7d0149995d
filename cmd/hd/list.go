package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ccnlabs/helpdesk/internal/model"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List open tickets for your role",
	GroupID: "tickets",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		unanswered, _ := cmd.Flags().GetBool("unanswered")

		found, err := tickets.ListOpen(context.Background(), sessions.Current().Role)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if unanswered {
			filtered := make([]*model.Ticket, 0, len(found))
			for _, t := range found {
				if !t.Answered() {
					filtered = append(filtered, t)
				}
			}
			found = filtered
		}

		if jsonOutput {
			printJSON(found)
		} else {
			printTicketListTable(found)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().Bool("unanswered", false, "only tickets without an answer")
}
