package ticket

import (
	"errors"
	"fmt"

	"github.com/ccnlabs/helpdesk/internal/client"
)

// Failure conditions surfaced to callers. None are retried automatically and
// none are fatal; the user retries the action manually.
var (
	// ErrAuthenticationRequired means no token is held or the server
	// rejected the one that was sent. An expired token is not
	// distinguished from an invalid one; either way the fix is re-login.
	ErrAuthenticationRequired = errors.New("authentication required")

	// ErrForbidden means the session's role does not permit the
	// operation. Checked client-side before issuing calls that are
	// guaranteed to 403.
	ErrForbidden = errors.New("forbidden")

	// ErrEmptyAnswer is reported before any network call when the answer
	// text trims to nothing.
	ErrEmptyAnswer = errors.New("answer text is empty")

	// ErrTicketClosed is reported before any network call when mutating a
	// ticket already known to be closed.
	ErrTicketClosed = errors.New("ticket is closed")

	// ErrNotFound is reported when a ticket id does not appear in the
	// lists visible to the session.
	ErrNotFound = errors.New("ticket not found")
)

// wrapAPI maps a transport error onto the failure taxonomy. Bearer-token
// rejections (401/403) become ErrAuthenticationRequired; other HTTP errors
// pass through as the server's rejection; anything else is a transport
// failure.
func wrapAPI(err error) error {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == 401 || apiErr.StatusCode == 403 {
			return fmt.Errorf("%w: %s", ErrAuthenticationRequired, apiErr.Message)
		}
		return err
	}
	return fmt.Errorf("request failed: %w", err)
}
