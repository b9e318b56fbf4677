package domain

import "time"

// PushSubscription is one registered web-push endpoint. Subscriptions
// are not tied to a user: the due scan broadcasts to all of them.
type PushSubscription struct {
	ID       string
	Endpoint string
	P256dh   string
	Auth     string

	CreatedAt time.Time
}
