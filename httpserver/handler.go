package httpserver

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/crypto/ecies"
	"golang.org/x/time/rate"

	"github.com/solenne/gift-registry-backend/cryptoutils"
	"github.com/solenne/gift-registry-backend/interfaces"
	"github.com/solenne/gift-registry-backend/metrics"
	"github.com/solenne/gift-registry-backend/notifications"
)

const (
	// maxBodySize is the maximum allowed request body size (64KB). Purchase
	// requests carry a password and a name; anything larger is abuse.
	maxBodySize = 64 * 1024

	// notifyTimeout bounds the detached notification delivery after the
	// purchase response has already been written.
	notifyTimeout = 15 * time.Second
)

// RelayerConfig carries the handler's operating parameters.
type RelayerConfig struct {
	// GuestPassword is the shared secret guests present on purchase. An empty
	// value disables purchases entirely rather than allowing them without
	// authentication.
	GuestPassword string

	// RecipientKey encrypts purchaser names. Only the matching private key
	// holder can read who purchased a gift.
	RecipientKey *ecies.PublicKey

	// RelayerIdentity and StoreLocation are reported on /health so the
	// frontend can surface which relayer and store it is talking to.
	RelayerIdentity string
	StoreLocation   string

	// MaxProbe caps sequential item probing when the store cannot report its
	// total item count.
	MaxProbe uint64

	// ReadDelay throttles per-item store reads to stay under upstream rate
	// limits.
	ReadDelay time.Duration

	// RetryBaseDelay is the first backoff interval for transient store
	// failures; it doubles on every retry.
	RetryBaseDelay time.Duration
}

// Handler processes the relayer's HTTP requests. It holds the only store
// handle in the process and fronts it for unauthenticated guests.
type Handler struct {
	store    interfaces.GiftRegistry
	notifier notifications.Notifier
	metrics  *metrics.RelayerMetrics
	cfg      RelayerConfig
	limiter  *rate.Limiter
	log      *slog.Logger
}

// NewHandler creates a handler around the given store. The notifier may be a
// NopNotifier when no endpoint is configured; metrics must not be nil.
func NewHandler(store interfaces.GiftRegistry, notifier notifications.Notifier, m *metrics.RelayerMetrics, cfg RelayerConfig, log *slog.Logger) *Handler {
	limit := rate.Inf
	if cfg.ReadDelay > 0 {
		limit = rate.Every(cfg.ReadDelay)
	}
	return &Handler{
		store:    store,
		notifier: notifier,
		metrics:  m,
		cfg:      cfg,
		limiter:  rate.NewLimiter(limit, 1),
		log:      log,
	}
}

type healthResponse struct {
	Status          string `json:"status"`
	RelayerIdentity string `json:"relayerIdentity"`
	StoreLocation   string `json:"storeLocation"`
}

// HandleHealth reports the relayer identity and the store it fronts. It never
// touches the store, so it stays available through upstream outages.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:          "ok",
		RelayerIdentity: h.cfg.RelayerIdentity,
		StoreLocation:   h.cfg.StoreLocation,
	})
}

type itemsResponse struct {
	Items []interfaces.Item `json:"items"`
	Count uint64            `json:"count"`
}

// HandleItems returns every item in index order, soft-deleted items included
// so positions line up for callers that cache indices. Items that cannot be
// read even after retries are substituted with a deleted placeholder rather
// than failing the whole listing.
func (h *Handler) HandleItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	total, err := retryTransient(ctx, h.cfg.RetryBaseDelay, h.countRetry, func() (uint64, error) {
		return h.store.TotalItems(ctx)
	})
	knownTotal := err == nil
	if !knownTotal {
		h.log.Warn("Store did not report its item count, probing sequentially", "err", err)
		total = h.cfg.MaxProbe
	}

	items := make([]interfaces.Item, 0, total)
	var count uint64
	for id := uint64(0); id < total; id++ {
		if err := h.limiter.Wait(ctx); err != nil {
			writeError(w, http.StatusInternalServerError, KindInternal, "item listing aborted")
			return
		}

		item, err := retryTransient(ctx, h.cfg.RetryBaseDelay, h.countRetry, func() (interfaces.Item, error) {
			return h.store.Item(ctx, id)
		})
		if errors.Is(err, interfaces.ErrOutOfRange) && !knownTotal {
			break
		}
		if err != nil {
			h.log.Error("Item read failed, substituting placeholder", "id", id, "err", err)
			h.metrics.ItemReadFailures.Inc()
			item = interfaces.Item{ID: id, Deleted: true}
		}

		items = append(items, item)
		if !item.Deleted {
			count++
		}
	}

	writeJSON(w, http.StatusOK, itemsResponse{Items: items, Count: count})
}

// PurchaseRequest is the body of POST /purchase. ItemID is a pointer so a
// missing field is distinguishable from item zero.
type PurchaseRequest struct {
	Password      string  `json:"password"`
	ItemID        *uint64 `json:"itemId"`
	PurchaserName string  `json:"purchaserName"`
}

type purchaseResponse struct {
	Success        bool   `json:"success"`
	ItemID         uint64 `json:"itemId"`
	ConfirmationID string `json:"confirmationId"`
}

// HandlePurchase authenticates the guest, encrypts the purchaser name, and
// submits the purchase, paying for the transaction. The plaintext name never
// reaches the store; the race between concurrent guests is decided by the
// store, not by the pre-check here.
func (h *Handler) HandlePurchase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Listing and health stay available on a partially configured relayer;
	// purchasing does not.
	if h.cfg.GuestPassword == "" || h.cfg.RecipientKey == nil {
		h.log.Error("Purchase rejected: guest password or recipient key not configured")
		h.purchaseOutcome("misconfigured")
		writeError(w, http.StatusInternalServerError, KindMisconfigured, "purchases are not configured on this relayer")
		return
	}

	var req PurchaseRequest
	body := http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		h.purchaseOutcome("bad_request")
		writeError(w, http.StatusBadRequest, KindBadRequest, "invalid request body")
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.cfg.GuestPassword)) != 1 {
		h.purchaseOutcome("unauthorized")
		writeError(w, http.StatusUnauthorized, KindUnauthorized, "wrong password")
		return
	}

	if req.ItemID == nil {
		h.purchaseOutcome("bad_request")
		writeError(w, http.StatusBadRequest, KindBadRequest, "itemId is required")
		return
	}
	purchaser := strings.TrimSpace(req.PurchaserName)
	if purchaser == "" {
		h.purchaseOutcome("bad_request")
		writeError(w, http.StatusBadRequest, KindBadRequest, "purchaserName is required")
		return
	}
	id := *req.ItemID

	// Pre-check so an item that is obviously gone fails before we spend the
	// encryption work and the transaction fee. The store re-checks on submit.
	item, err := retryTransient(ctx, h.cfg.RetryBaseDelay, h.countRetry, func() (interfaces.Item, error) {
		return h.store.Item(ctx, id)
	})
	if err != nil {
		h.failPurchase(w, id, err, "pre-check")
		return
	}
	if item.Deleted {
		h.purchaseOutcome("conflict")
		writeError(w, http.StatusConflict, KindConflict, "item has been removed from the registry")
		return
	}
	if item.Purchased {
		h.purchaseOutcome("conflict")
		writeError(w, http.StatusConflict, KindConflict, "item is already purchased")
		return
	}

	encrypted, err := cryptoutils.EncryptPurchaserName(h.cfg.RecipientKey, purchaser)
	if err != nil {
		h.log.Error("Purchaser name encryption failed, nothing submitted", "id", id, "err", err)
		h.purchaseOutcome("encryption_failed")
		writeError(w, http.StatusInternalServerError, KindInternal, "could not encrypt purchaser name")
		return
	}

	receipt, err := retryTransient(ctx, h.cfg.RetryBaseDelay, h.countRetry, func() (interfaces.Receipt, error) {
		return h.store.Purchase(ctx, id, encrypted)
	})
	if err != nil {
		h.failPurchase(w, id, err, "submit")
		return
	}

	h.log.Info("Purchase confirmed", "id", id, "confirmationId", receipt.ConfirmationID)
	h.purchaseOutcome("success")
	writeJSON(w, http.StatusOK, purchaseResponse{
		Success:        true,
		ItemID:         id,
		ConfirmationID: receipt.ConfirmationID,
	})

	go h.notify(notifications.PurchaseEvent{
		ItemID:         id,
		ItemName:       item.Name,
		PurchaserName:  purchaser,
		ConfirmationID: receipt.ConfirmationID,
	})
}

// failPurchase maps a store error onto the response and outcome metric.
func (h *Handler) failPurchase(w http.ResponseWriter, id uint64, err error, stage string) {
	status, kind, message := storeErrorStatus(err)
	if status >= 500 {
		h.log.Error("Purchase failed", "id", id, "stage", stage, "err", err)
	} else {
		h.log.Info("Purchase rejected", "id", id, "stage", stage, "err", err)
	}
	h.purchaseOutcome(string(kind))
	writeError(w, status, kind, message)
}

// notify delivers the purchase event on its own deadline, detached from the
// request context that has already been released.
func (h *Handler) notify(event notifications.PurchaseEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	if err := h.notifier.PurchaseCompleted(ctx, event); err != nil {
		h.log.Warn("Purchase notification failed", "itemId", event.ItemID, "err", err)
		h.metrics.NotificationFailures.Inc()
	}
}

func (h *Handler) countRetry() {
	h.metrics.StoreReadRetries.Inc()
}

func (h *Handler) purchaseOutcome(outcome string) {
	h.metrics.PurchaseOutcomes.WithLabelValues(outcome).Inc()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
