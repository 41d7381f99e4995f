package interfaces

import (
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Item is one giftable registry item. Its ID is the positional index assigned
// at creation time; indices are stable for the lifetime of the store and are
// never reused or renumbered, even after a removal.
type Item struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
	ImageURL    string `json:"imageUrl"`

	// Purchased marks the item as taken. While true, EncryptedPurchaser holds
	// the ECIES ciphertext of the purchaser's name and PurchasedAt the unix
	// timestamp of the purchase.
	Purchased          bool            `json:"isPurchased"`
	EncryptedPurchaser EncryptedString `json:"encryptedPurchaserName"`
	PurchasedAt        uint64          `json:"purchasedAt"`

	// Deleted is monotonic: once set it is never cleared, and the item is
	// excluded from every enumeration view while keeping its last field
	// values for audit.
	Deleted bool `json:"isDeleted"`
}

// Available reports whether the item can currently be purchased.
func (it Item) Available() bool {
	return !it.Deleted && !it.Purchased
}

// ItemDetails carries the four owner-editable fields of an item.
type ItemDetails struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
	ImageURL    string `json:"imageUrl"`
}

// EncryptedString is an opaque ciphertext blob, hex-encoded in JSON. An empty
// value marshals to the empty string rather than null so index-aligned item
// lists stay uniform.
type EncryptedString []byte

// MarshalJSON hex-encodes the ciphertext with a 0x prefix, matching the
// encoding the registry contract events use.
func (e EncryptedString) MarshalJSON() ([]byte, error) {
	if len(e) == 0 {
		return []byte(`""`), nil
	}
	return []byte(`"0x` + hex.EncodeToString(e) + `"`), nil
}

// UnmarshalJSON accepts the empty string or 0x-prefixed hex.
func (e *EncryptedString) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" {
		*e = nil
		return nil
	}
	raw, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return err
	}
	*e = raw
	return nil
}

// Receipt proves a mutation was applied by the store. On chain the
// confirmation id is the transaction hash; the memory store issues UUIDs.
type Receipt struct {
	ConfirmationID string `json:"confirmationId"`
}

// NullAddress is the zero identity, rejected as an ownership transfer target.
var NullAddress = common.Address{}
