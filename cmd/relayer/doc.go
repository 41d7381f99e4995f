// Command relayer serves the gift registry HTTP API. It fronts the registry
// store for unauthenticated guests: listing items, authenticating purchases
// with the shared guest password, encrypting purchaser names under the
// recipient key, and paying for the resulting transactions with the relayer
// key. With --dev it serves a seeded in-memory store instead of the chain.
package main
