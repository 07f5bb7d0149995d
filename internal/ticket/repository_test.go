package ticket

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ccnlabs/helpdesk/internal/client"
	"github.com/ccnlabs/helpdesk/internal/model"
)

// fakeSession is a SessionReader with a fixed session.
type fakeSession struct {
	sess model.Session
}

func (f *fakeSession) Current() model.Session { return f.sess }

func agentSession() *fakeSession {
	return &fakeSession{sess: model.Session{AccessToken: "tok", Role: model.RoleAgent, UserID: "17"}}
}

func adminSession() *fakeSession {
	return &fakeSession{sess: model.Session{AccessToken: "tok", Role: model.RoleAdmin, UserID: "1"}}
}

// fakeAPI is a stateful in-memory stand-in for the remote service. It
// records which endpoints were hit and moves tickets between the open and
// closed sets on close, so list-after-close behavior can be exercised.
type fakeAPI struct {
	calls    []string
	global   []*model.Ticket
	assigned []*model.Ticket
	closed   []*model.Ticket
	students map[string]*model.Student
	err      error // when set, every call fails with it
}

func (f *fakeAPI) record(name string) { f.calls = append(f.calls, name) }

func (f *fakeAPI) Login(ctx context.Context, username, password string) (*client.LoginResponse, error) {
	f.record("login")
	return nil, errors.New("not used")
}

func (f *fakeAPI) ListTickets(ctx context.Context) ([]*model.Ticket, error) {
	f.record("list")
	if f.err != nil {
		return nil, f.err
	}
	return f.global, nil
}

func (f *fakeAPI) ListAssignedTickets(ctx context.Context) ([]*model.Ticket, error) {
	f.record("assigned")
	if f.err != nil {
		return nil, f.err
	}
	return f.assigned, nil
}

func (f *fakeAPI) ListClosedTickets(ctx context.Context) ([]*model.Ticket, error) {
	f.record("closed")
	if f.err != nil {
		return nil, f.err
	}
	return f.closed, nil
}

func (f *fakeAPI) UpdateTicketAnswer(ctx context.Context, id int, answer string) (*model.Ticket, error) {
	f.record("update")
	if f.err != nil {
		return nil, f.err
	}
	for _, t := range append(f.global, f.assigned...) {
		if t.ID == id {
			echo := *t
			echo.Answer = answer
			t.Answer = answer
			return &echo, nil
		}
	}
	return nil, &client.APIError{StatusCode: 404, Message: "no such ticket"}
}

func (f *fakeAPI) CloseTicket(ctx context.Context, id int) (*model.Ticket, error) {
	f.record("close")
	if f.err != nil {
		return nil, f.err
	}
	remove := func(list []*model.Ticket) ([]*model.Ticket, *model.Ticket) {
		for i, t := range list {
			if t.ID == id {
				return append(list[:i], list[i+1:]...), t
			}
		}
		return list, nil
	}
	var found *model.Ticket
	f.global, found = remove(f.global)
	if found == nil {
		f.assigned, found = remove(f.assigned)
	}
	if found == nil {
		return nil, &client.APIError{StatusCode: 404, Message: "no such ticket"}
	}
	now := time.Now()
	closed := *found
	closed.Status = model.StatusClosed
	closed.ClosedAt = &now
	f.closed = append(f.closed, &closed)
	return &closed, nil
}

func (f *fakeAPI) GetStudent(ctx context.Context, id string) (*model.Student, error) {
	f.record("student")
	if f.err != nil {
		return nil, f.err
	}
	if s, ok := f.students[id]; ok {
		return s, nil
	}
	return &model.Student{ID: id}, nil
}

func (f *fakeAPI) CreateUser(ctx context.Context, req *client.CreateUserRequest) error {
	f.record("createUser")
	return f.err
}

func (f *fakeAPI) ListRoles(ctx context.Context) ([]*model.RoleOption, error) {
	f.record("roles")
	return nil, f.err
}

func (f *fakeAPI) RegisterPushToken(ctx context.Context, token string) error {
	f.record("push")
	return f.err
}

func (f *fakeAPI) SetToken(token string) {}
func (f *fakeAPI) Close() error         { return nil }

func openTicket(id int) *model.Ticket {
	return &model.Ticket{
		ID:          id,
		Description: "Cannot access course materials",
		StudentID:   "s-100",
		Status:      model.StatusOpen,
		CreatedAt:   time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

// --- ListOpen ---

func TestRepository_ListOpen_AdminHitsGlobalFeed(t *testing.T) {
	api := &fakeAPI{global: []*model.Ticket{openTicket(1), openTicket(2)}}
	repo := NewRepository(api, adminSession())

	tickets, err := repo.ListOpen(context.Background(), model.RoleAdmin)
	if err != nil {
		t.Fatalf("ListOpen() error = %v", err)
	}
	if len(tickets) != 2 {
		t.Errorf("len(tickets) = %d, want 2", len(tickets))
	}
	if len(api.calls) != 1 || api.calls[0] != "list" {
		t.Errorf("calls = %v, want [list]", api.calls)
	}
}

func TestRepository_ListOpen_AgentHitsAssignedFeed(t *testing.T) {
	api := &fakeAPI{assigned: []*model.Ticket{openTicket(3)}}
	repo := NewRepository(api, agentSession())

	tickets, err := repo.ListOpen(context.Background(), model.RoleAgent)
	if err != nil {
		t.Fatalf("ListOpen() error = %v", err)
	}
	if len(tickets) != 1 || tickets[0].ID != 3 {
		t.Errorf("tickets = %+v", tickets)
	}
	if len(api.calls) != 1 || api.calls[0] != "assigned" {
		t.Errorf("calls = %v, want [assigned]", api.calls)
	}
}

func TestRepository_ListOpen_NoToken(t *testing.T) {
	api := &fakeAPI{}
	repo := NewRepository(api, &fakeSession{})

	_, err := repo.ListOpen(context.Background(), model.RoleAgent)
	if !errors.Is(err, ErrAuthenticationRequired) {
		t.Errorf("ListOpen() error = %v, want ErrAuthenticationRequired", err)
	}
	if len(api.calls) != 0 {
		t.Errorf("calls = %v, want none without a token", api.calls)
	}
}

func TestRepository_ListOpen_TokenRejected(t *testing.T) {
	api := &fakeAPI{err: &client.APIError{StatusCode: 401, Message: "token expired"}}
	repo := NewRepository(api, agentSession())

	_, err := repo.ListOpen(context.Background(), model.RoleAgent)
	if !errors.Is(err, ErrAuthenticationRequired) {
		t.Errorf("ListOpen() error = %v, want ErrAuthenticationRequired", err)
	}
}

// --- ListClosed ---

func TestRepository_ListClosed_NonAdminRejectedWithoutCall(t *testing.T) {
	api := &fakeAPI{}
	repo := NewRepository(api, agentSession())

	_, err := repo.ListClosed(context.Background(), model.RoleAgent)
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("ListClosed() error = %v, want ErrForbidden", err)
	}
	if len(api.calls) != 0 {
		t.Errorf("calls = %v, want none for non-admin", api.calls)
	}
}

func TestRepository_ListClosed_Admin(t *testing.T) {
	closed := openTicket(9)
	closed.Status = model.StatusClosed
	api := &fakeAPI{closed: []*model.Ticket{closed}}
	repo := NewRepository(api, adminSession())

	tickets, err := repo.ListClosed(context.Background(), model.RoleAdmin)
	if err != nil {
		t.Fatalf("ListClosed() error = %v", err)
	}
	if len(tickets) != 1 || tickets[0].ID != 9 {
		t.Errorf("tickets = %+v", tickets)
	}
}

// --- SetAnswer ---

func TestRepository_SetAnswer_EmptyTextNeverCalls(t *testing.T) {
	api := &fakeAPI{}
	repo := NewRepository(api, agentSession())
	tk := openTicket(42)

	for _, text := range []string{"", "   ", "\t\n"} {
		_, err := repo.SetAnswer(context.Background(), tk, text)
		if !errors.Is(err, ErrEmptyAnswer) {
			t.Errorf("SetAnswer(%q) error = %v, want ErrEmptyAnswer", text, err)
		}
	}
	if len(api.calls) != 0 {
		t.Errorf("calls = %v, want none for empty answers", api.calls)
	}
}

func TestRepository_SetAnswer_ClosedTicketRejectedLocally(t *testing.T) {
	api := &fakeAPI{}
	repo := NewRepository(api, agentSession())
	tk := openTicket(42)
	tk.Status = model.StatusClosed

	_, err := repo.SetAnswer(context.Background(), tk, "too late")
	if !errors.Is(err, ErrTicketClosed) {
		t.Errorf("SetAnswer() error = %v, want ErrTicketClosed", err)
	}
	if len(api.calls) != 0 {
		t.Errorf("calls = %v, want none for closed ticket", api.calls)
	}
}

func TestRepository_SetAnswer_SucceedsWithoutClosing(t *testing.T) {
	tk := openTicket(42)
	api := &fakeAPI{assigned: []*model.Ticket{tk}}
	repo := NewRepository(api, agentSession())

	updated, err := repo.SetAnswer(context.Background(), tk, "Please check your enrollment")
	if err != nil {
		t.Fatalf("SetAnswer() error = %v", err)
	}
	if updated.Answer != "Please check your enrollment" {
		t.Errorf("Answer = %q", updated.Answer)
	}
	// Answered, not auto-closed.
	if updated.Status != model.StatusOpen {
		t.Errorf("Status = %q, want open", updated.Status)
	}

	// A following Close transitions it to closed.
	closed, err := repo.Close(context.Background(), updated)
	if err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if closed.Status != model.StatusClosed {
		t.Errorf("Status after Close = %q, want closed", closed.Status)
	}
}

func TestRepository_SetAnswer_TrimsText(t *testing.T) {
	tk := openTicket(42)
	api := &fakeAPI{assigned: []*model.Ticket{tk}}
	repo := NewRepository(api, agentSession())

	updated, err := repo.SetAnswer(context.Background(), tk, "  answer with padding  ")
	if err != nil {
		t.Fatalf("SetAnswer() error = %v", err)
	}
	if updated.Answer != "answer with padding" {
		t.Errorf("Answer = %q, want trimmed", updated.Answer)
	}
}

func TestRepository_SetAnswer_FailureLeavesTicketUnmodified(t *testing.T) {
	tk := openTicket(42)
	api := &fakeAPI{err: &client.APIError{StatusCode: 500, Message: "update failed"}}
	repo := NewRepository(api, agentSession())

	_, err := repo.SetAnswer(context.Background(), tk, "some answer")
	if err == nil {
		t.Fatal("SetAnswer() error = nil, want error")
	}
	if tk.Answer != "" || tk.Status != model.StatusOpen {
		t.Errorf("prior ticket modified on failure: %+v", tk)
	}
}

// --- Close ---

func TestRepository_Close_MovesTicketToClosedList(t *testing.T) {
	tk := openTicket(42)
	api := &fakeAPI{global: []*model.Ticket{tk, openTicket(43)}}
	repo := NewRepository(api, adminSession())

	closed, err := repo.Close(context.Background(), tk)
	if err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if closed.Status != model.StatusClosed {
		t.Errorf("Status = %q, want closed", closed.Status)
	}
	if closed.ClosedAt == nil {
		t.Error("ClosedAt = nil, want set")
	}

	// Subsequent open list no longer includes it.
	open, err := repo.ListOpen(context.Background(), model.RoleAdmin)
	if err != nil {
		t.Fatalf("ListOpen() error = %v", err)
	}
	for _, o := range open {
		if o.ID == 42 {
			t.Error("closed ticket still in open list")
		}
	}

	// The closed list does.
	hist, err := repo.ListClosed(context.Background(), model.RoleAdmin)
	if err != nil {
		t.Fatalf("ListClosed() error = %v", err)
	}
	found := false
	for _, h := range hist {
		if h.ID == 42 {
			found = true
		}
	}
	if !found {
		t.Error("closed ticket missing from closed list")
	}
}

func TestRepository_Close_AlreadyClosedRejectedLocally(t *testing.T) {
	api := &fakeAPI{}
	repo := NewRepository(api, adminSession())
	tk := openTicket(42)
	tk.Status = model.StatusClosed

	_, err := repo.Close(context.Background(), tk)
	if !errors.Is(err, ErrTicketClosed) {
		t.Errorf("Close() error = %v, want ErrTicketClosed", err)
	}
	if len(api.calls) != 0 {
		t.Errorf("calls = %v, want none", api.calls)
	}
}

func TestRepository_Close_FailureLeavesStatusUnchanged(t *testing.T) {
	tk := openTicket(42)
	api := &fakeAPI{err: errors.New("connection refused")}
	repo := NewRepository(api, adminSession())

	_, err := repo.Close(context.Background(), tk)
	if err == nil {
		t.Fatal("Close() error = nil, want error")
	}
	if tk.Status != model.StatusOpen {
		t.Errorf("Status = %q, want open after failed close", tk.Status)
	}
}

// --- Student ---

func TestRepository_Student(t *testing.T) {
	api := &fakeAPI{students: map[string]*model.Student{
		"s-100": {ID: "s-100", Name: "John Doe", Course: "CCN101 - Introduction to CCN"},
	}}
	repo := NewRepository(api, agentSession())

	s, err := repo.Student(context.Background(), "s-100")
	if err != nil {
		t.Fatalf("Student() error = %v", err)
	}
	if s.Name != "John Doe" {
		t.Errorf("Name = %q", s.Name)
	}

	// Unknown attributes are zero, not an error.
	s2, err := repo.Student(context.Background(), "s-999")
	if err != nil {
		t.Fatalf("Student() error = %v", err)
	}
	if s2.Name != "" || s2.Email != "" {
		t.Errorf("student = %+v, want zero fields", s2)
	}
}

func TestRepository_Student_FetchError(t *testing.T) {
	api := &fakeAPI{err: errors.New("dial tcp: connection refused")}
	repo := NewRepository(api, agentSession())

	if _, err := repo.Student(context.Background(), "s-100"); err == nil {
		t.Error("Student() error = nil, want fetch error")
	}
}

// --- Find ---

func TestRepository_Find(t *testing.T) {
	tk := openTicket(42)
	closed := openTicket(9)
	closed.Status = model.StatusClosed
	api := &fakeAPI{global: []*model.Ticket{tk}, closed: []*model.Ticket{closed}}
	repo := NewRepository(api, adminSession())

	got, err := repo.Find(context.Background(), model.RoleAdmin, 42)
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if got.ID != 42 {
		t.Errorf("ID = %d, want 42", got.ID)
	}

	// Admin can find closed tickets through the history.
	got, err = repo.Find(context.Background(), model.RoleAdmin, 9)
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if got.Status != model.StatusClosed {
		t.Errorf("Status = %q, want closed", got.Status)
	}

	if _, err := repo.Find(context.Background(), model.RoleAdmin, 777); !errors.Is(err, ErrNotFound) {
		t.Errorf("Find() error = %v, want ErrNotFound", err)
	}
}

func TestRepository_Find_AgentDoesNotTouchClosedFeed(t *testing.T) {
	api := &fakeAPI{assigned: []*model.Ticket{openTicket(3)}}
	repo := NewRepository(api, agentSession())

	if _, err := repo.Find(context.Background(), model.RoleAgent, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Find() error = %v, want ErrNotFound", err)
	}
	for _, call := range api.calls {
		if call == "closed" {
			t.Error("agent Find() queried the closed feed")
		}
	}
}
