// Package interfaces defines the core interfaces and types shared by the gift
// registry components. It provides the contract between the registry store
// implementations and the relayer without implementation details.
//
// The central interface is GiftRegistry, the authoritative keeper of registry
// items and the owner identity. Two implementations exist in the registry
// package: an on-chain client backed by the GiftRegistry contract, and an
// in-process memory store used for tests and local development.
//
// All store errors are classified through the sentinel errors defined here.
// Callers distinguish failure classes with errors.Is rather than by matching
// error text:
//
//	item, err := store.Item(ctx, id)
//	switch {
//	case err == nil:
//	case errors.Is(err, interfaces.ErrOutOfRange):
//	    // past the end of the item list
//	case errors.Is(err, interfaces.ErrTransient):
//	    // retryable upstream failure (rate limit, connectivity)
//	default:
//	    // permanent failure
//	}
package interfaces
