package model

// Role is the access level attached to a session. The server sends it as a
// plain string in the login response; everything that branches on it goes
// through this type rather than comparing raw strings.
type Role string

const (
	RoleAdmin Role = "Admin"
	RoleAgent Role = "Agent"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks whether the role is a known value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleAgent:
		return true
	}
	return false
}

// ticketRoutes maps a role to the ticket-list endpoint it is served from.
// Admin sees the global open-ticket feed; everyone else sees only tickets
// assigned to them.
var ticketRoutes = map[Role]string{
	RoleAdmin: "/api/tickets/",
	RoleAgent: "/api/tickets/assigned/",
}

// TicketsPath returns the list endpoint for the role. Unknown roles fall
// back to the assigned-only feed, the least-privileged route.
func (r Role) TicketsPath() string {
	if p, ok := ticketRoutes[r]; ok {
		return p
	}
	return ticketRoutes[RoleAgent]
}

// CanViewClosed reports whether the role may query the closed-ticket
// history. Enforced server-side too; the client checks first to avoid a
// round trip that is guaranteed to 403.
func (r Role) CanViewClosed() bool {
	return r == RoleAdmin
}

// RoleOption is one entry of the role catalog returned by /api/roles-user/,
// used when creating users.
type RoleOption struct {
	ID   int    `json:"id"`
	Role string `json:"role"`
}
