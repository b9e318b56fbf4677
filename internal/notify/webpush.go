package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	webpush "github.com/SherClockHolmes/webpush-go"

	"github.com/clairecicle/Mental-load-app/internal/domain"
)

// WebPushTransport sends payloads over the Web Push protocol using
// VAPID keys.
type WebPushTransport struct {
	publicKey  string
	privateKey string
	subscriber string
}

// NewWebPushTransport returns a transport signing with the given VAPID
// key pair. subscriber is the contact mailto/URL sent to push services.
func NewWebPushTransport(publicKey, privateKey, subscriber string) *WebPushTransport {
	return &WebPushTransport{publicKey: publicKey, privateKey: privateKey, subscriber: subscriber}
}

func (t *WebPushTransport) Send(ctx context.Context, sub domain.PushSubscription, p Payload) error {
	body, err := json.Marshal(p)
	if err != nil {
		return err
	}
	resp, err := webpush.SendNotificationWithContext(ctx, body, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256dh,
			Auth:   sub.Auth,
		},
	}, &webpush.Options{
		Subscriber:      t.subscriber,
		VAPIDPublicKey:  t.publicKey,
		VAPIDPrivateKey: t.privateKey,
		TTL:             60,
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("push service returned %d", resp.StatusCode)
	}
	return nil
}
