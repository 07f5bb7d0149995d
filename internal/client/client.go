// Package client provides a transport-agnostic interface for the helpdesk
// service and an HTTP/JSON implementation that talks to its REST API.
package client

import (
	"context"

	"github.com/ccnlabs/helpdesk/internal/model"
)

// HelpdeskClient is the interface that all helpdesk CLI commands and
// repositories use to communicate with the remote ticketing service. It is
// implemented by HTTPClient and can be backed by any transport.
type HelpdeskClient interface {
	// Auth
	Login(ctx context.Context, username, password string) (*LoginResponse, error)

	// Tickets
	ListTickets(ctx context.Context) ([]*model.Ticket, error)
	ListAssignedTickets(ctx context.Context) ([]*model.Ticket, error)
	ListClosedTickets(ctx context.Context) ([]*model.Ticket, error)
	UpdateTicketAnswer(ctx context.Context, id int, answer string) (*model.Ticket, error)
	CloseTicket(ctx context.Context, id int) (*model.Ticket, error)

	// Students
	GetStudent(ctx context.Context, id string) (*model.Student, error)

	// Users
	CreateUser(ctx context.Context, req *CreateUserRequest) error
	ListRoles(ctx context.Context) ([]*model.RoleOption, error)

	// Push
	RegisterPushToken(ctx context.Context, token string) error

	// SetToken replaces the bearer token attached to authenticated calls.
	SetToken(token string)

	// Lifecycle
	Close() error
}

// LoginResponse is the payload of a successful POST /api/login/.
type LoginResponse struct {
	Access  string     `json:"access"`
	Refresh string     `json:"refresh"`
	Role    model.Role `json:"role"`
	UserID  string     `json:"user_id"`
}

// CreateUserRequest holds parameters for creating a helpdesk user.
// Role is the numeric role ID from ListRoles.
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     int    `json:"role"`
}
