package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/crypto/ecies"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/solenne/gift-registry-backend/interfaces"
	"github.com/solenne/gift-registry-backend/metrics"
	"github.com/solenne/gift-registry-backend/notifications"
	"github.com/solenne/gift-registry-backend/registry"
)

const testPassword = "open-sesame"

var (
	testOwner = common.HexToAddress("0x1000000000000000000000000000000000000001")
	testGuest = common.HexToAddress("0x2000000000000000000000000000000000000002")
)

// captureNotifier records delivered events on a channel so tests can wait for
// the detached notification goroutine.
type captureNotifier struct {
	events chan notifications.PurchaseEvent
}

func newCaptureNotifier() *captureNotifier {
	return &captureNotifier{events: make(chan notifications.PurchaseEvent, 1)}
}

func (c *captureNotifier) PurchaseCompleted(ctx context.Context, event notifications.PurchaseEvent) error {
	c.events <- event
	return nil
}

func newTestHandler(t *testing.T, store interfaces.GiftRegistry, notifier notifications.Notifier, password string) (*Handler, *ecies.PrivateKey) {
	t.Helper()

	ownerKey, err := crypto.GenerateKey()
	require.NoError(t, err)
	recipient := ecies.ImportECDSA(ownerKey)

	if notifier == nil {
		notifier = notifications.NopNotifier{}
	}

	cfg := RelayerConfig{
		GuestPassword:   password,
		RecipientKey:    &recipient.PublicKey,
		RelayerIdentity: testGuest.Hex(),
		StoreLocation:   "memory",
		MaxProbe:        64,
		RetryBaseDelay:  time.Millisecond,
	}
	m := metrics.NewRelayerMetrics("test", prometheus.NewRegistry())
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(store, notifier, m, cfg, log), recipient
}

func seededStore(t *testing.T, names ...string) *registry.MemoryRegistry {
	t.Helper()
	store := registry.NewMemoryRegistry(testOwner)
	for _, name := range names {
		_, err := store.AddItem(context.Background(), interfaces.ItemDetails{Name: name})
		require.NoError(t, err)
	}
	return store
}

func purchaseBody(t *testing.T, password string, id *uint64, name string) *bytes.Reader {
	t.Helper()
	body, err := json.Marshal(PurchaseRequest{Password: password, ItemID: id, PurchaserName: name})
	require.NoError(t, err)
	return bytes.NewReader(body)
}

func uintPtr(v uint64) *uint64 { return &v }

func TestHealthReportsIdentity(t *testing.T) {
	handler, _ := newTestHandler(t, seededStore(t), nil, testPassword)

	rec := httptest.NewRecorder()
	handler.HandleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp healthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, testGuest.Hex(), resp.RelayerIdentity)
	assert.Equal(t, "memory", resp.StoreLocation)
}

func TestItemsIncludeDeletedAndCountExcludesThem(t *testing.T) {
	store := seededStore(t, "kettle", "blanket", "lamp")
	_, err := store.RemoveItem(context.Background(), 1)
	require.NoError(t, err)

	handler, _ := newTestHandler(t, store, nil, testPassword)

	rec := httptest.NewRecorder()
	handler.HandleItems(rec, httptest.NewRequest(http.MethodGet, "/items", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp itemsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Items, 3)
	assert.Equal(t, uint64(2), resp.Count)
	assert.Equal(t, "kettle", resp.Items[0].Name)
	assert.True(t, resp.Items[1].Deleted)
	assert.Equal(t, uint64(2), resp.Items[2].ID)
}

func TestItemsSubstitutePlaceholderOnReadFailure(t *testing.T) {
	store := seededStore(t, "a", "b", "c", "d", "e", "f", "g", "h")
	store.SetReadHook(func(id uint64) error {
		if id == 5 {
			return errors.New("storage corrupted")
		}
		return nil
	})

	handler, _ := newTestHandler(t, store, nil, testPassword)

	rec := httptest.NewRecorder()
	handler.HandleItems(rec, httptest.NewRequest(http.MethodGet, "/items", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp itemsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Items, 8)

	// The broken slot is reported as a deleted placeholder so positions past
	// it still line up.
	assert.True(t, resp.Items[5].Deleted)
	assert.Empty(t, resp.Items[5].Name)
	assert.Equal(t, uint64(5), resp.Items[5].ID)
	assert.Equal(t, "g", resp.Items[6].Name)
	assert.Equal(t, "h", resp.Items[7].Name)
	assert.Equal(t, uint64(7), resp.Count)
}

func TestItemsProbeWhenTotalUnavailable(t *testing.T) {
	store := new(registry.MockRegistry)
	store.On("TotalItems", mock.Anything).Return(uint64(0), errors.New("method not supported"))
	store.On("Item", mock.Anything, uint64(0)).Return(interfaces.Item{ID: 0, Name: "kettle"}, nil)
	store.On("Item", mock.Anything, uint64(1)).Return(interfaces.Item{ID: 1, Name: "lamp"}, nil)
	store.On("Item", mock.Anything, uint64(2)).Return(interfaces.Item{}, interfaces.ErrOutOfRange)

	handler, _ := newTestHandler(t, store, nil, testPassword)

	rec := httptest.NewRecorder()
	handler.HandleItems(rec, httptest.NewRequest(http.MethodGet, "/items", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp itemsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.Items, 2)
	assert.Equal(t, uint64(2), resp.Count)
	store.AssertExpectations(t)
}

func TestPurchaseSucceedsAndNotifies(t *testing.T) {
	store := seededStore(t, "kettle", "blanket")
	notifier := newCaptureNotifier()
	handler, recipient := newTestHandler(t, store, notifier, testPassword)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/purchase", purchaseBody(t, testPassword, uintPtr(1), "Ada"))
	handler.HandlePurchase(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp purchaseResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Equal(t, uint64(1), resp.ItemID)
	assert.NotEmpty(t, resp.ConfirmationID)

	// The store holds ciphertext only; the recipient key recovers the name.
	item, err := store.Item(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, item.Purchased)
	assert.NotEqual(t, []byte("Ada"), []byte(item.EncryptedPurchaser))
	plaintext, err := recipient.Decrypt(item.EncryptedPurchaser, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Ada", string(plaintext))

	select {
	case event := <-notifier.events:
		assert.Equal(t, uint64(1), event.ItemID)
		assert.Equal(t, "blanket", event.ItemName)
		assert.Equal(t, "Ada", event.PurchaserName)
		assert.Equal(t, resp.ConfirmationID, event.ConfirmationID)
	case <-time.After(2 * time.Second):
		t.Fatal("purchase notification never delivered")
	}
}

func TestPurchaseWrongPasswordNeverTouchesStore(t *testing.T) {
	store := new(registry.MockRegistry)
	handler, _ := newTestHandler(t, store, nil, testPassword)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/purchase", purchaseBody(t, "guess", uintPtr(0), "Mallory"))
	handler.HandlePurchase(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	var resp errorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, KindUnauthorized, resp.Error.Kind)
	store.AssertNotCalled(t, "Item", mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "Purchase", mock.Anything, mock.Anything, mock.Anything)
}

func TestPurchaseMisconfiguredPassword(t *testing.T) {
	store := new(registry.MockRegistry)
	handler, _ := newTestHandler(t, store, nil, "")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/purchase", purchaseBody(t, "", uintPtr(0), "Ada"))
	handler.HandlePurchase(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var resp errorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, KindMisconfigured, resp.Error.Kind)
	store.AssertNotCalled(t, "Item", mock.Anything, mock.Anything)
}

func TestPurchaseValidation(t *testing.T) {
	tests := []struct {
		name string
		body io.Reader
	}{
		{"malformed json", bytes.NewReader([]byte(`{"password":`))},
		{"missing item id", purchaseBody(t, testPassword, nil, "Ada")},
		{"blank purchaser name", purchaseBody(t, testPassword, uintPtr(0), "   ")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler, _ := newTestHandler(t, seededStore(t, "kettle"), nil, testPassword)

			rec := httptest.NewRecorder()
			handler.HandlePurchase(rec, httptest.NewRequest(http.MethodPost, "/purchase", tc.body))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPurchaseStoreRejections(t *testing.T) {
	store := seededStore(t, "kettle", "blanket", "lamp")
	_, err := store.RemoveItem(context.Background(), 1)
	require.NoError(t, err)
	_, err = store.Purchase(context.Background(), 2, []byte("ciphertext"))
	require.NoError(t, err)

	handler, _ := newTestHandler(t, store, nil, testPassword)

	tests := []struct {
		name   string
		itemID uint64
		status int
		kind   ErrorKind
	}{
		{"unknown item", 9, http.StatusNotFound, KindNotFound},
		{"deleted item", 1, http.StatusConflict, KindConflict},
		{"already purchased", 2, http.StatusConflict, KindConflict},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/purchase", purchaseBody(t, testPassword, uintPtr(tc.itemID), "Ada"))
			handler.HandlePurchase(rec, req)

			require.Equal(t, tc.status, rec.Code)
			var resp errorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, tc.kind, resp.Error.Kind)
		})
	}
}

func TestPurchaseLostRaceReportsConflict(t *testing.T) {
	// The pre-check sees the item available but another guest wins between
	// the read and the submission.
	store := new(registry.MockRegistry)
	store.On("Item", mock.Anything, uint64(0)).Return(interfaces.Item{ID: 0, Name: "kettle"}, nil)
	store.On("Purchase", mock.Anything, uint64(0), mock.Anything).Return(interfaces.Receipt{}, interfaces.ErrAlreadyPurchased)

	handler, _ := newTestHandler(t, store, nil, testPassword)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/purchase", purchaseBody(t, testPassword, uintPtr(0), "Ada"))
	handler.HandlePurchase(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	var resp errorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, KindConflict, resp.Error.Kind)
	store.AssertExpectations(t)
}

func TestPurchaseMissingRecipientKeySubmitsNothing(t *testing.T) {
	store := new(registry.MockRegistry)
	handler, _ := newTestHandler(t, store, nil, testPassword)
	handler.cfg.RecipientKey = nil

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/purchase", purchaseBody(t, testPassword, uintPtr(0), "Ada"))
	handler.HandlePurchase(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var resp errorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, KindMisconfigured, resp.Error.Kind)
	store.AssertNotCalled(t, "Purchase", mock.Anything, mock.Anything, mock.Anything)
}

func TestPurchaseTransientSubmitFailureIsRetried(t *testing.T) {
	store := new(registry.MockRegistry)
	store.On("Item", mock.Anything, uint64(0)).Return(interfaces.Item{ID: 0, Name: "kettle"}, nil)
	transient := fmt.Errorf("%w: connection refused", interfaces.ErrTransient)
	store.On("Purchase", mock.Anything, uint64(0), mock.Anything).Return(interfaces.Receipt{}, transient).Once()
	store.On("Purchase", mock.Anything, uint64(0), mock.Anything).Return(interfaces.Receipt{ConfirmationID: "0xfeed"}, nil).Once()

	handler, _ := newTestHandler(t, store, nil, testPassword)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/purchase", purchaseBody(t, testPassword, uintPtr(0), "Ada"))
	handler.HandlePurchase(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp purchaseResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "0xfeed", resp.ConfirmationID)
	store.AssertExpectations(t)
}

func TestCORSPreflight(t *testing.T) {
	handler, _ := newTestHandler(t, seededStore(t, "kettle"), nil, testPassword)
	srv, err := New(&HTTPServerConfig{
		ListenAddr: "127.0.0.1:0",
		Log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, handler)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/purchase", nil)
	req.Header.Set("Origin", "https://gifts.example.org")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	srv.getRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
