package interfaces

import "errors"

// Store error taxonomy. Every implementation of GiftRegistry maps its native
// failures onto these sentinels so callers never inspect error text.
var (
	// ErrNotOwner is returned when a mutation restricted to the registry
	// owner is attempted by another identity.
	ErrNotOwner = errors.New("caller is not the registry owner")

	// ErrOutOfRange is returned for an item id at or past the end of the
	// underlying item list. It is the explicit end-of-range signal the
	// relayer's listing loop stops on.
	ErrOutOfRange = errors.New("item id out of range")

	// ErrItemDeleted is returned when a mutation targets a soft-deleted item.
	ErrItemDeleted = errors.New("item is deleted")

	// ErrAlreadyDeleted is returned by RemoveItem for an item that was
	// already soft-deleted.
	ErrAlreadyDeleted = errors.New("item already deleted")

	// ErrAlreadyPurchased is returned by Purchase for an item that is
	// already marked purchased. The store is the sole arbiter of this
	// condition; relayer-side pre-checks are an optimization only.
	ErrAlreadyPurchased = errors.New("item already purchased")

	// ErrEmptyName is returned by Purchase when the encrypted purchaser name
	// is empty.
	ErrEmptyName = errors.New("encrypted purchaser name is empty")

	// ErrNullTarget is returned by TransferOwnership when the new owner is
	// the zero identity.
	ErrNullTarget = errors.New("ownership transfer to null identity")

	// ErrTransient wraps failures that are expected to succeed on retry,
	// such as RPC rate limiting or momentary connectivity loss. Only errors
	// matching this sentinel are retried by the relayer.
	ErrTransient = errors.New("transient upstream failure")

	// ErrMisconfigured indicates a required piece of configuration (guest
	// password, recipient key) is absent.
	ErrMisconfigured = errors.New("server misconfigured")
)

// IsTransient reports whether err is classified as retryable.
func IsTransient(err error) bool {
	return errors.Is(err, ErrTransient)
}
