package registry

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/ethereum/go-ethereum/rpc"

	"github.com/solenne/gift-registry-backend/interfaces"
)

// Revert reasons declared by the GiftRegistry contract. These strings are part
// of the contract's interface and are versioned with the ABI; the client maps
// them to typed errors so no caller ever matches error text itself.
const (
	RevertNotOwner         = "GiftRegistry: caller is not the owner"
	RevertOutOfRange       = "GiftRegistry: gift id out of range"
	RevertDeleted          = "GiftRegistry: gift deleted"
	RevertAlreadyDeleted   = "GiftRegistry: gift already deleted"
	RevertAlreadyPurchased = "GiftRegistry: gift already purchased"
	RevertEmptyPurchaser   = "GiftRegistry: empty purchaser"
	RevertZeroOwner        = "GiftRegistry: new owner is the zero address"
)

var revertToSentinel = map[string]error{
	RevertNotOwner:         interfaces.ErrNotOwner,
	RevertOutOfRange:       interfaces.ErrOutOfRange,
	RevertDeleted:          interfaces.ErrItemDeleted,
	RevertAlreadyDeleted:   interfaces.ErrAlreadyDeleted,
	RevertAlreadyPurchased: interfaces.ErrAlreadyPurchased,
	RevertEmptyPurchaser:   interfaces.ErrEmptyName,
	RevertZeroOwner:        interfaces.ErrNullTarget,
}

// classifyError maps a raw call/transaction error onto the interfaces
// taxonomy. Revert reasons take priority; anything that looks like rate
// limiting or momentary connectivity loss is wrapped in ErrTransient so the
// relayer's retry policy picks it up. Unrecognized errors pass through
// unchanged.
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	msg := err.Error()
	for reason, sentinel := range revertToSentinel {
		if strings.Contains(msg, reason) {
			return fmt.Errorf("%w: %s", sentinel, msg)
		}
	}

	if isTransient(err) {
		return fmt.Errorf("%w: %s", interfaces.ErrTransient, msg)
	}

	return err
}

// isTransient recognizes the retryable failure class: explicit HTTP backpressure
// from the RPC provider, timeouts, and refused/reset connections.
func isTransient(err error) bool {
	var httpErr rpc.HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.StatusCode {
		case 429, 502, 503, 504:
			return true
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	// Providers are not consistent about surfacing 429s as typed errors.
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "too many requests") ||
		strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset")
}
