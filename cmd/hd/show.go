package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:     "show <ticket-id>",
	Short:   "Show a ticket with its student profile",
	GroupID: "tickets",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ticket id %q", args[0])
		}

		ctx := context.Background()
		t, err := tickets.Find(ctx, sessions.Current().Role, id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		// The profile is ancillary; a failed fetch does not fail the show.
		student, studentErr := tickets.Student(ctx, t.StudentID)

		if jsonOutput {
			printJSON(map[string]any{
				"ticket":  t,
				"student": student,
			})
			return nil
		}

		printTicketTable(t)
		if studentErr != nil {
			fmt.Fprintf(os.Stderr, "warning: student profile unavailable: %v\n", studentErr)
			return nil
		}
		fmt.Println()
		printStudentTable(student)
		return nil
	},
}

var studentCmd = &cobra.Command{
	Use:     "student <student-id>",
	Short:   "Show a student profile",
	GroupID: "tickets",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		student, err := tickets.Student(context.Background(), args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if jsonOutput {
			printJSON(student)
		} else {
			printStudentTable(student)
		}
		return nil
	},
}
