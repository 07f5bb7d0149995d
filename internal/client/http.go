package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ccnlabs/helpdesk/internal/model"
)

// HTTPClient implements HelpdeskClient using the helpdesk HTTP/JSON REST API.
type HTTPClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewHTTPClient creates a new HTTP client targeting the given base URL
// (e.g. "https://helpdesk.example.com"). When token is non-empty, an
// Authorization header is set on every request.
func NewHTTPClient(baseURL, token string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// SetToken replaces the bearer token sent on subsequent requests. An empty
// token drops the Authorization header.
func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

// SetTimeout overrides the default per-request timeout.
func (c *HTTPClient) SetTimeout(d time.Duration) {
	c.httpClient.Timeout = d
}

// Close is a no-op for the HTTP client.
func (c *HTTPClient) Close() error { return nil }

// --- Auth ---

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	body := map[string]string{"username": username, "password": password}
	var resp LoginResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/login/", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// --- Tickets ---

func (c *HTTPClient) ListTickets(ctx context.Context) ([]*model.Ticket, error) {
	return c.listTickets(ctx, "/api/tickets/")
}

func (c *HTTPClient) ListAssignedTickets(ctx context.Context) ([]*model.Ticket, error) {
	return c.listTickets(ctx, "/api/tickets/assigned/")
}

func (c *HTTPClient) ListClosedTickets(ctx context.Context) ([]*model.Ticket, error) {
	return c.listTickets(ctx, "/api/tickets/closed/")
}

func (c *HTTPClient) listTickets(ctx context.Context, path string) ([]*model.Ticket, error) {
	var tickets []*model.Ticket
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

func (c *HTTPClient) UpdateTicketAnswer(ctx context.Context, id int, answer string) (*model.Ticket, error) {
	body := map[string]string{"answer": answer}
	var ticket model.Ticket
	path := "/api/tickets/update-view-ticket/" + strconv.Itoa(id) + "/"
	if err := c.doJSON(ctx, http.MethodPatch, path, body, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (c *HTTPClient) CloseTicket(ctx context.Context, id int) (*model.Ticket, error) {
	var ticket model.Ticket
	path := "/api/close-ticket/" + strconv.Itoa(id) + "/"
	if err := c.doJSON(ctx, http.MethodPost, path, nil, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

// --- Students ---

func (c *HTTPClient) GetStudent(ctx context.Context, id string) (*model.Student, error) {
	var student model.Student
	if err := c.doJSON(ctx, http.MethodGet, "/api/students/"+url.PathEscape(id), nil, &student); err != nil {
		return nil, err
	}
	return &student, nil
}

// --- Users ---

func (c *HTTPClient) CreateUser(ctx context.Context, req *CreateUserRequest) error {
	// The backend answers 201 on success; anything else is a rejection
	// even when it carries a 2xx code.
	return c.doJSONStatus(ctx, http.MethodPost, "/api/users/", req, nil, http.StatusCreated)
}

func (c *HTTPClient) ListRoles(ctx context.Context) ([]*model.RoleOption, error) {
	var roles []*model.RoleOption
	if err := c.doJSON(ctx, http.MethodGet, "/api/roles-user/", nil, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

// --- Push ---

func (c *HTTPClient) RegisterPushToken(ctx context.Context, token string) error {
	body := map[string]string{"fcm_token": token}
	return c.doJSON(ctx, http.MethodPost, "/api/update-fcm-token/", body, nil)
}

// --- internal helpers ---

// APIError represents an error response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// errorMessage pulls a human-readable message out of an error body. The
// backend is not consistent about the key it uses.
func errorMessage(body []byte) string {
	var errResp struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(body, &errResp) == nil {
		for _, msg := range []string{errResp.Message, errResp.Detail, errResp.Error} {
			if msg != "" {
				return msg
			}
		}
	}
	return string(body)
}

// doJSON performs an HTTP request with optional JSON body and decodes the
// JSON response. If result is nil, the response body is discarded. Any
// status below 400 counts as success.
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, body any, result any) error {
	return c.doJSONStatus(ctx, method, path, body, result, 0)
}

// doJSONStatus is doJSON with an exact success status. want == 0 accepts
// any status below 400.
func (c *HTTPClient) doJSONStatus(ctx context.Context, method, path string, body any, result any, want int) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("performing request: %w", err)
	}
	defer resp.Body.Close()

	// 204 No Content — success with no body.
	if resp.StatusCode == http.StatusNoContent && want == 0 {
		return nil
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 || (want != 0 && resp.StatusCode != want) {
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(respBody)}
	}

	// Some mutation endpoints answer 200 with an empty body.
	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}
