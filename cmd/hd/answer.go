package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var answerCmd = &cobra.Command{
	Use:     "answer <ticket-id> [text...]",
	Short:   "Record an answer on a ticket",
	GroupID: "tickets",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ticket id %q", args[0])
		}

		var text string
		if len(args) > 1 {
			text = strings.Join(args[1:], " ")
		} else {
			// No inline text: read the answer body from stdin.
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("reading answer from stdin: %w", err)
			}
			text = string(data)
		}
		if strings.TrimSpace(text) == "" {
			return fmt.Errorf("answer text is empty")
		}

		ctx := context.Background()
		t, err := tickets.Find(ctx, sessions.Current().Role, id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		updated, err := tickets.SetAnswer(ctx, t, text)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if jsonOutput {
			printJSON(updated)
			return nil
		}
		fmt.Printf("answer recorded on ticket %d\n", updated.ID)
		return nil
	},
}
