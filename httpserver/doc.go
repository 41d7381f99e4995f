// Package httpserver implements the relayer service: the only component
// guests interact with. It bridges an unauthenticated HTTP surface to the
// owner-gated, rate-sensitive gift registry store, encrypts purchaser names
// before they leave the process, and absorbs transient upstream failures.
//
// # Endpoints
//
//   - GET /health: relayer identity and store location, always available.
//   - GET /items (also /api/items): every item in index order, soft-deleted
//     ones included so positions line up for callers that cache indices.
//   - POST /purchase (also /api/purchase): authenticates the shared guest
//     password, encrypts the purchaser name under the recipient key, and
//     submits the purchase to the store, paying for the transaction.
//   - GET /livez, /readyz, /drain, /undrain: operational endpoints.
//
// CORS preflight (OPTIONS on any route) is answered for browser clients; the
// website calling this API is served from a different origin.
//
// # Failure handling
//
// Transient store failures (rate limiting, momentary connectivity loss) are
// retried with exponential backoff up to three attempts, then surfaced as
// internal errors. All other failures map directly onto structured JSON error
// responses carrying a machine-readable kind.
//
// Two guests racing for the same item are arbitrated by the store alone: the
// handler's pre-check merely avoids pointless encryption and gas spend, and a
// submission that loses the race is reported as a conflict.
package httpserver
