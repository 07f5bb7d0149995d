// Package notify relays push messages from the helpdesk service to a local
// notification surface. The relay is decoupled from session and ticket
// state: it decodes inbound payloads and hands them to a Notifier.
package notify

import (
	"encoding/json"
	"fmt"
	"io"
)

// DefaultTopic is the subject the helpdesk service publishes push messages
// on. Wildcards are accepted by Subscribe.
const DefaultTopic = "helpdesk.notifications"

// Message is the inbound push payload. A message without a notification
// object carries only data and is not displayed.
type Message struct {
	Notification *Notification     `json:"notification"`
	Data         map[string]string `json:"data,omitempty"`
}

// Notification is the displayable part of a push message.
type Notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Decode parses a raw payload. Returns the message, or an error when the
// payload is not valid JSON.
func Decode(payload []byte) (*Message, error) {
	var msg Message
	if err := json.Unmarshal(payload, &msg); err != nil {
		return nil, fmt.Errorf("decoding push message: %w", err)
	}
	return &msg, nil
}

// display returns the notification with the fallbacks applied for missing
// title or body.
func (n Notification) display() Notification {
	if n.Title == "" {
		n.Title = "Notification"
	}
	if n.Body == "" {
		n.Body = "No message body provided."
	}
	return n
}

// Notifier renders a notification. Platform notification centers live
// behind this interface; the core only ever calls Display.
type Notifier interface {
	Display(n Notification) error
}

// ConsoleNotifier writes notifications to a writer, one per line.
type ConsoleNotifier struct {
	W io.Writer
}

func (c *ConsoleNotifier) Display(n Notification) error {
	n = n.display()
	_, err := fmt.Fprintf(c.W, "%s: %s\n", n.Title, n.Body)
	return err
}
