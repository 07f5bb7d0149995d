// Package ticket implements the role-routed ticket repository: list
// open/assigned/closed tickets, answer a ticket, close it. The server owns
// ticket state; the repository mirrors a transition only after the server
// confirms it.
package ticket

import (
	"context"
	"strings"

	"github.com/ccnlabs/helpdesk/internal/client"
	"github.com/ccnlabs/helpdesk/internal/model"
)

// SessionReader is the slice of the session store the repository needs: the
// current credentials, checked before every authenticated call.
type SessionReader interface {
	Current() model.Session
}

// Repository fetches and mutates tickets through the transport client.
type Repository struct {
	api  client.HelpdeskClient
	sess SessionReader
}

// NewRepository creates a repository over the given client and session
// handle.
func NewRepository(api client.HelpdeskClient, sess SessionReader) *Repository {
	return &Repository{api: api, sess: sess}
}

// requireAuth rejects locally when no access token is held, avoiding a call
// that is guaranteed to fail.
func (r *Repository) requireAuth() (model.Session, error) {
	sess := r.sess.Current()
	if !sess.Authenticated() {
		return model.Session{}, ErrAuthenticationRequired
	}
	return sess, nil
}

// ListOpen returns the ticket feed for the role: Admin sees the global open
// list, anyone else only tickets assigned to them. Order is as delivered by
// the server.
func (r *Repository) ListOpen(ctx context.Context, role model.Role) ([]*model.Ticket, error) {
	if _, err := r.requireAuth(); err != nil {
		return nil, err
	}
	var (
		tickets []*model.Ticket
		err     error
	)
	if role == model.RoleAdmin {
		tickets, err = r.api.ListTickets(ctx)
	} else {
		tickets, err = r.api.ListAssignedTickets(ctx)
	}
	if err != nil {
		return nil, wrapAPI(err)
	}
	return tickets, nil
}

// ListClosed returns the closed-ticket history. Only Admin may ask; other
// roles are rejected locally with ErrForbidden before any call is issued.
func (r *Repository) ListClosed(ctx context.Context, role model.Role) ([]*model.Ticket, error) {
	if _, err := r.requireAuth(); err != nil {
		return nil, err
	}
	if !role.CanViewClosed() {
		return nil, ErrForbidden
	}
	tickets, err := r.api.ListClosedTickets(ctx)
	if err != nil {
		return nil, wrapAPI(err)
	}
	return tickets, nil
}

// Find locates a ticket by id in the lists visible to the role: the open
// feed first, then (for Admin) the closed history.
func (r *Repository) Find(ctx context.Context, role model.Role, id int) (*model.Ticket, error) {
	open, err := r.ListOpen(ctx, role)
	if err != nil {
		return nil, err
	}
	for _, t := range open {
		if t.ID == id {
			return t, nil
		}
	}
	if role.CanViewClosed() {
		closed, err := r.ListClosed(ctx, role)
		if err != nil {
			return nil, err
		}
		for _, t := range closed {
			if t.ID == id {
				return t, nil
			}
		}
	}
	return nil, ErrNotFound
}

// Student fetches the student profile shown alongside a ticket. Attributes
// the server does not have come back zero; only a failed call is an error.
func (r *Repository) Student(ctx context.Context, id string) (*model.Student, error) {
	student, err := r.api.GetStudent(ctx, id)
	if err != nil {
		return nil, wrapAPI(err)
	}
	return student, nil
}

// SetAnswer records an agent's response on the ticket. Empty text (after
// trimming) and tickets already known to be closed are rejected locally
// with no network call. Answering does not close the ticket. On failure the
// ticket passed in is left unmodified.
func (r *Repository) SetAnswer(ctx context.Context, t *model.Ticket, text string) (*model.Ticket, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyAnswer
	}
	if t.Status.IsTerminal() {
		return nil, ErrTicketClosed
	}
	if _, err := r.requireAuth(); err != nil {
		return nil, err
	}

	resp, err := r.api.UpdateTicketAnswer(ctx, t.ID, text)
	if err != nil {
		return nil, wrapAPI(err)
	}
	return confirm(t, resp, text), nil
}

// Close moves the ticket to its terminal state. Closing an already-closed
// ticket is rejected locally. On failure the ticket passed in is left
// unmodified.
func (r *Repository) Close(ctx context.Context, t *model.Ticket) (*model.Ticket, error) {
	if t.Status.IsTerminal() {
		return nil, ErrTicketClosed
	}
	sess, err := r.requireAuth()
	if err != nil {
		return nil, err
	}

	resp, err := r.api.CloseTicket(ctx, t.ID)
	if err != nil {
		return nil, wrapAPI(err)
	}

	updated := confirm(t, resp, t.Answer)
	updated.Status = model.StatusClosed
	if updated.ClosedBy == "" {
		updated.ClosedBy = sess.UserID
	}
	return updated, nil
}

// confirm builds the post-mutation view of a ticket from the server's
// response. The server echo wins where it is present and legal; otherwise
// the prior state carries over, so a terse 200 never moves the ticket
// backwards or into an invalid state.
func confirm(prior *model.Ticket, echo *model.Ticket, answer string) *model.Ticket {
	updated := *prior
	updated.Answer = answer
	if echo == nil {
		return &updated
	}
	if echo.Answer != "" {
		updated.Answer = echo.Answer
	}
	if echo.Status.IsValid() && prior.Status.CanTransition(echo.Status) {
		updated.Status = echo.Status
	}
	if echo.ClosedAt != nil {
		updated.ClosedAt = echo.ClosedAt
	}
	if echo.ClosedBy != "" {
		updated.ClosedBy = echo.ClosedBy
	}
	return &updated
}
