// Package fcm implements the notification gateway against the Firebase
// Cloud Messaging HTTP API. The gateway is fire-and-forget from the
// caller's perspective: errors are returned for logging but never block a
// business operation.
package fcm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"trix/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

// message is the FCM wire format for a single downstream push. The To field
// takes either a device registration token or a "/topics/<name>" handle.
type message struct {
	To           string            `json:"to"`
	Notification messagePayload    `json:"notification"`
	Data         map[string]string `json:"data,omitempty"`
}

type messagePayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Gateway sends push notifications through the FCM HTTP endpoint.
type Gateway struct {
	endpoint  string
	serverKey string
	client    *http.Client
}

// NewGateway creates an FCM gateway for the given endpoint and server key.
//
// Example:
//
//	gateway := fcm.NewGateway("https://fcm.googleapis.com/fcm/send", cfg.FCMServerKey)
//	err := gateway.Send(ctx, notification)
func NewGateway(endpoint string, serverKey string) *Gateway {
	return &Gateway{
		endpoint:  endpoint,
		serverKey: serverKey,
		client:    &http.Client{Timeout: defaultTimeout},
	}
}

// Send delivers one push notification.
//
// A notification without a token cannot be addressed and fails with
// ports.ErrNoRecipientHandle without touching the network. Topic handles
// (the customer audience) are prefixed for FCM here so the application
// layer stays free of wire details.
func (g *Gateway) Send(ctx context.Context, notification ports.Notification) error {
	if notification.Token == "" {
		return ports.ErrNoRecipientHandle
	}

	payload, err := json.Marshal(message{
		To: recipient(notification.Token),
		Notification: messagePayload{
			Title: notification.Title,
			Body:  notification.Body,
		},
		Data: notification.Data,
	})
	if err != nil {
		return fmt.Errorf("marshal fcm message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build fcm request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "key="+g.serverKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("send fcm message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("fcm responded %d: %s", resp.StatusCode, body)
	}

	return nil
}

// recipient maps a customer topic handle to FCM topic syntax and passes
// device tokens through unchanged.
func recipient(token string) string {
	if len(token) > len("customer-") && token[:len("customer-")] == "customer-" {
		return "/topics/" + token
	}

	return token
}
