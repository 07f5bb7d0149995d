package notify

import (
	"context"
	"log"

	"github.com/ccnlabs/helpdesk/internal/idgen"
	"github.com/ccnlabs/helpdesk/internal/kvstore"
)

// KeyDeviceToken is the kvstore key holding this install's push token.
const KeyDeviceToken = "device_token"

// TokenRegistrar is the slice of the transport client used to register the
// push token with the server.
type TokenRegistrar interface {
	RegisterPushToken(ctx context.Context, token string) error
}

// DeviceToken returns the stable per-install push token, generating and
// persisting one on first use.
func DeviceToken(kv kvstore.Store) (string, error) {
	if tok := kvstore.GetString(kv, KeyDeviceToken); tok != "" {
		return tok, nil
	}
	tok, err := idgen.Generate()
	if err != nil {
		return "", err
	}
	if err := kv.Set(KeyDeviceToken, tok); err != nil {
		return "", err
	}
	return tok, nil
}

// Register sends the device token to the server. Registration failures are
// logged and swallowed; a missed registration only delays notifications and
// the next session retries it.
func Register(ctx context.Context, api TokenRegistrar, kv kvstore.Store) {
	tok, err := DeviceToken(kv)
	if err != nil {
		log.Printf("notify: device token: %v", err)
		return
	}
	if err := api.RegisterPushToken(ctx, tok); err != nil {
		log.Printf("notify: registering push token: %v", err)
	}
}
