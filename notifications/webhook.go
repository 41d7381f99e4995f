// Package notifications delivers best-effort purchase notifications to an
// external endpoint. Delivery is fire-and-forget: the relayer never lets a
// notification failure or slowness affect the response already returned to
// the guest.
package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// PurchaseEvent describes a completed purchase.
type PurchaseEvent struct {
	ItemID         uint64 `json:"itemId"`
	ItemName       string `json:"itemName"`
	PurchaserName  string `json:"purchaserName"`
	ConfirmationID string `json:"confirmationId"`
}

// Notifier is the notification boundary. Implementations must be safe for
// concurrent use.
type Notifier interface {
	PurchaseCompleted(ctx context.Context, event PurchaseEvent) error
}

// WebhookNotifier POSTs purchase events as JSON to a configured endpoint.
type WebhookNotifier struct {
	endpoint string
	client   *http.Client
	log      *slog.Logger
}

// NewWebhookNotifier creates a notifier for the given endpoint. The HTTP
// client carries its own timeout so a stuck endpoint cannot hold a goroutine
// forever.
func NewWebhookNotifier(endpoint string, log *slog.Logger) *WebhookNotifier {
	return &WebhookNotifier{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
		log:      log,
	}
}

// PurchaseCompleted delivers the event. Errors are returned for logging and
// metrics only; callers must not propagate them to the purchase response.
func (n *WebhookNotifier) PurchaseCompleted(ctx context.Context, event PurchaseEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("could not encode notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("could not create notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("notification delivery failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 300 {
		return fmt.Errorf("notification endpoint returned %d", resp.StatusCode)
	}

	n.log.Debug("Purchase notification delivered", "itemId", event.ItemID)
	return nil
}

// NopNotifier discards all events. Used when no notification endpoint is
// configured.
type NopNotifier struct{}

// PurchaseCompleted discards the event.
func (NopNotifier) PurchaseCompleted(ctx context.Context, event PurchaseEvent) error {
	return nil
}
