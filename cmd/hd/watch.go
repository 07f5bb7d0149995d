package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/ccnlabs/helpdesk/internal/notify"
	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:     "watch",
	Short:   "Stream push notifications to the terminal",
	GroupID: "system",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")

		natsURL := cfg.NATSURL
		if natsURL == "" {
			natsURL = activeRemoteNATSURL()
		}
		if natsURL == "" {
			return fmt.Errorf("no NATS URL configured; set HELPDESK_NATS_URL or add one with 'hd remote add --nats'")
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		// Make sure the server knows where to push before listening.
		notify.Register(ctx, api, store)

		sub, err := notify.NewNATSSubscriber(natsURL,
			nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
				log.Printf("nats: disconnected: %v", err)
			}),
			nats.ReconnectHandler(func(_ *nats.Conn) {
				log.Printf("nats: reconnected")
			}),
		)
		if err != nil {
			return err
		}
		defer sub.Close()

		fmt.Fprintf(os.Stderr, "watching %s on %s (ctrl-c to stop)\n", topic, natsURL)
		relay := notify.NewRelay(sub, &notify.ConsoleNotifier{W: os.Stdout})
		return relay.Run(ctx, topic)
	},
}

func init() {
	watchCmd.Flags().String("topic", notify.DefaultTopic, "subject to subscribe to (NATS wildcards allowed)")
}
