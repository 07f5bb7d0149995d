package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/ccnlabs/helpdesk/internal/model"
	"github.com/ccnlabs/helpdesk/internal/ui"
)

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling JSON: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

func printTicketTable(t *model.Ticket) {
	fmt.Printf("ID:          %d\n", t.ID)
	fmt.Printf("Status:      %s\n", ui.RenderStatus(t.Status))
	fmt.Printf("Student:     %s\n", t.StudentID)
	if t.AssignedTo != "" {
		fmt.Printf("Assigned To: %s\n", t.AssignedTo)
	}
	fmt.Printf("Description: %s\n", t.Description)
	if t.Answered() {
		fmt.Printf("Answer:      %s\n", t.Answer)
	}
	if !t.CreatedAt.IsZero() {
		fmt.Printf("Created At:  %s\n", t.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	if !t.UpdatedAt.IsZero() {
		fmt.Printf("Updated At:  %s\n", t.UpdatedAt.Format("2006-01-02 15:04:05"))
	}
	if t.ClosedAt != nil {
		fmt.Printf("Closed At:   %s\n", t.ClosedAt.Format("2006-01-02 15:04:05"))
	}
	if t.ClosedBy != "" {
		fmt.Printf("Closed By:   %s\n", t.ClosedBy)
	}
}

func printTicketListTable(tickets []*model.Ticket) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tSTUDENT\tANSWERED\tDESCRIPTION")
	for _, t := range tickets {
		desc := t.Description
		if len(desc) > 50 {
			desc = desc[:47] + "..."
		}
		answered := "no"
		if t.Answered() {
			answered = "yes"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			t.ID,
			ui.RenderStatus(t.Status),
			t.StudentID,
			answered,
			desc,
		)
	}
	w.Flush()
	fmt.Printf("\n%d tickets\n", len(tickets))
}

func printStudentTable(s *model.Student) {
	fmt.Printf("ID:         %s\n", s.ID)
	if s.Name != "" {
		fmt.Printf("Name:       %s\n", s.Name)
	}
	if s.Email != "" {
		fmt.Printf("Email:      %s\n", s.Email)
	}
	if s.Course != "" {
		fmt.Printf("Course:     %s\n", s.Course)
	}
	if s.Enrollment != "" {
		fmt.Printf("Enrollment: %s\n", s.Enrollment)
	}
	if s.Phone != "" {
		fmt.Printf("Phone:      %s\n", s.Phone)
	}
}
