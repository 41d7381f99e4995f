// Package registry provides clients for the GiftRegistry store: the
// authoritative, append-only list of registry items and the owner identity.
//
// Two implementations of interfaces.GiftRegistry live here:
//
//   - Client wraps the GiftRegistry contract deployed on an Ethereum-compatible
//     chain. Reads go through eth_call; mutations are signed transactions whose
//     hash doubles as the mutation's confirmation id. The chain serializes all
//     mutations, which is the ordering guarantee the rest of the system relies
//     on.
//
//   - MemoryRegistry is a mutex-guarded in-process store with identical
//     semantics. It backs the relayer's dev mode and the test suites.
//
// Items are identified by their positional index, assigned once at append time.
// Removal is a soft delete: the item keeps its index and last field values and
// is only excluded from enumeration views. Indices are never reused or
// renumbered, so external systems can hold onto an item id indefinitely.
//
// All failures are mapped to the sentinel errors in the interfaces package.
// The on-chain client recognizes the contract's revert reasons (stable strings
// declared alongside the binding) and classifies RPC-level rate limiting and
// connectivity loss as interfaces.ErrTransient so callers can retry.
package registry
