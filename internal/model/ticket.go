package model

import "time"

// Status represents the current state of a ticket as reported by the server.
type Status string

const (
	StatusOpen       Status = "open"
	StatusAssigned   Status = "assigned"
	StatusInProgress Status = "in_progress"
	StatusClosed     Status = "closed"
)

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsValid checks whether the status is a known value.
func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusAssigned, StatusInProgress, StatusClosed:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions leave this status.
func (s Status) IsTerminal() bool {
	return s == StatusClosed
}

// transitions is the ticket lifecycle as the client mirrors it. The server is
// the authority; the client applies a transition only after a confirmed
// response, never speculatively.
var transitions = map[Status][]Status{
	StatusOpen:       {StatusAssigned, StatusClosed},
	StatusAssigned:   {StatusInProgress, StatusClosed},
	StatusInProgress: {StatusClosed},
	StatusClosed:     {},
}

// CanTransition reports whether the server may legally move a ticket from s
// to next. Setting an answer does not change status, so s -> s is allowed
// for non-terminal states.
func (s Status) CanTransition(next Status) bool {
	if s == next {
		return !s.IsTerminal()
	}
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// DisplayName returns the human-readable form of the status.
func (s Status) DisplayName() string {
	switch s {
	case StatusOpen:
		return "Open"
	case StatusAssigned:
		return "Assigned"
	case StatusInProgress:
		return "In Progress"
	case StatusClosed:
		return "Closed"
	}
	return string(s)
}

// Ticket is a unit of support work raised by a student. Tickets are created
// server-side; the client only reads them and mutates answer/status through
// explicit actions.
type Ticket struct {
	ID          int        `json:"id"`
	Description string     `json:"description"`
	StudentID   string     `json:"student_id"`
	Status      Status     `json:"status"`
	Answer      string     `json:"answer,omitempty"`
	AssignedTo  string     `json:"assigned_to,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ClosedAt    *time.Time `json:"closed_at,omitempty"`
	ClosedBy    string     `json:"closed_by,omitempty"`
}

// Answered reports whether an agent has responded to the ticket. Answered is
// independent of closing: a ticket keeps its status when the answer is set.
func (t *Ticket) Answered() bool {
	return t.Answer != ""
}

// Student is the ancillary profile shown alongside a ticket. Attributes the
// server does not know are left zero rather than failing the fetch.
type Student struct {
	ID         string `json:"id"`
	Name       string `json:"name,omitempty"`
	Email      string `json:"email,omitempty"`
	Course     string `json:"course,omitempty"`
	Enrollment string `json:"enrollment,omitempty"`
	Phone      string `json:"phone,omitempty"`
}
