package interfaces

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

// GiftRegistry is the registry store boundary: the sole authority over item
// data and the owner identity. It enforces the structural invariants (stable
// indices, monotonic soft delete, purchase exactly-once) and knows nothing
// about passwords, encryption, or HTTP.
//
// Mutations are serialized by the underlying ledger, which provides a total
// order over all state changes; implementations do not add their own locking
// guarantees beyond that. Every method honors ctx for cancellation and
// deadline.
type GiftRegistry interface {
	// Owner returns the current registry owner identity.
	Owner(ctx context.Context) (common.Address, error)

	// TotalItems returns the length of the underlying item list, soft-deleted
	// items included. Items occupy ids 0..TotalItems-1.
	TotalItems(ctx context.Context) (uint64, error)

	// Count returns the number of non-deleted items.
	Count(ctx context.Context) (uint64, error)

	// Item returns the item at id regardless of its deleted or purchased
	// state. Returns ErrOutOfRange past the end of the list.
	Item(ctx context.Context, id uint64) (Item, error)

	// ListAll returns all non-deleted items in index order.
	ListAll(ctx context.Context) ([]Item, error)

	// ListAvailable returns non-deleted, unpurchased items in index order.
	ListAvailable(ctx context.Context) ([]Item, error)

	// ListPurchased returns non-deleted, purchased items in index order.
	ListPurchased(ctx context.Context) ([]Item, error)

	// AddItem appends a new unpurchased item and assigns it the next index.
	// Owner only.
	AddItem(ctx context.Context, details ItemDetails) (Receipt, error)

	// UpdateItem overwrites the four editable fields of a non-deleted item.
	// Owner only.
	UpdateItem(ctx context.Context, id uint64, details ItemDetails) (Receipt, error)

	// RemoveItem soft-deletes an item. The item keeps its index and last
	// field values; removal never renumbers other items. Owner only.
	RemoveItem(ctx context.Context, id uint64) (Receipt, error)

	// Purchase marks a non-deleted, unpurchased item as purchased, storing
	// the opaque encrypted purchaser name and stamping the current time.
	// Any caller.
	Purchase(ctx context.Context, id uint64, encryptedName []byte) (Receipt, error)

	// ResetItem clears the purchased state of a non-deleted item, making it
	// purchasable again. Owner only.
	ResetItem(ctx context.Context, id uint64) (Receipt, error)

	// TransferOwnership replaces the registry owner. Rejects the zero
	// address with ErrNullTarget. Owner only.
	TransferOwnership(ctx context.Context, newOwner common.Address) (Receipt, error)
}
