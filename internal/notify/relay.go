package notify

import (
	"context"
	"log"
)

// Subscriber receives raw push payloads from the message bus.
type Subscriber interface {
	// Subscribe delivers raw payloads on the returned channel. Call the
	// returned cancel function to unsubscribe and close the channel.
	Subscribe(topic string) (<-chan []byte, func(), error)
	Close() error
}

// Relay pumps payloads from a Subscriber into a Notifier. Messages without
// a notification object are skipped silently; undecodable payloads are
// logged and skipped.
type Relay struct {
	sub      Subscriber
	notifier Notifier
}

func NewRelay(sub Subscriber, notifier Notifier) *Relay {
	return &Relay{sub: sub, notifier: notifier}
}

// Run consumes messages on topic until ctx is canceled or the subscription
// channel closes.
func (r *Relay) Run(ctx context.Context, topic string) error {
	ch, cancel, err := r.sub.Subscribe(topic)
	if err != nil {
		return err
	}
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return nil
		case payload, ok := <-ch:
			if !ok {
				return nil
			}
			msg, err := Decode(payload)
			if err != nil {
				log.Printf("notify: %v", err)
				continue
			}
			if msg.Notification == nil {
				continue
			}
			if err := r.notifier.Display(*msg.Notification); err != nil {
				log.Printf("notify: displaying notification: %v", err)
			}
		}
	}
}
