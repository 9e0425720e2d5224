package ports

import (
	"context"
	"errors"
)

// ErrNoRecipientHandle is returned when the recipient has no push token
// registered. Callers treat it like any other delivery failure: log and
// move on.
var ErrNoRecipientHandle = errors.New("recipient has no push token")

// Notification is a single push message.
type Notification struct {
	// Token is the recipient's push handle. May be empty, in which case
	// delivery fails with ErrNoRecipientHandle.
	Token string

	Title string
	Body  string

	// Data carries machine-readable context, e.g. the shipment ID.
	Data map[string]string
}

// NotificationGateway delivers push notifications to drivers and customers.
//
// Delivery is strictly best effort: no business operation may fail or roll
// back because a notification could not be sent. Callers log failures and
// continue, and must only send after their transaction has committed.
type NotificationGateway interface {
	Send(ctx context.Context, notification Notification) error
}
