package notifications

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookDeliversEvent(t *testing.T) {
	var received PurchaseEvent
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewWebhookNotifier(srv.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := n.PurchaseCompleted(context.Background(), PurchaseEvent{
		ItemID:         3,
		ItemName:       "espresso machine",
		PurchaserName:  "Ada",
		ConfirmationID: "0xabc",
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(3), received.ItemID)
	assert.Equal(t, "espresso machine", received.ItemName)
}

func TestWebhookReportsEndpointErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	n := NewWebhookNotifier(srv.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := n.PurchaseCompleted(context.Background(), PurchaseEvent{ItemID: 1})
	assert.Error(t, err)
}

func TestWebhookReportsConnectionErrors(t *testing.T) {
	n := NewWebhookNotifier("http://127.0.0.1:1", slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := n.PurchaseCompleted(context.Background(), PurchaseEvent{ItemID: 1})
	assert.Error(t, err)
}
