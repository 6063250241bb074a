// Package storage defines the synchronous string key-value contract the
// session core persists through, together with memory, file, and Redis
// backends.
//
// The contract mirrors browser localStorage: string keys, string values,
// synchronous get/set/remove, no transactions, last writer wins. Backends
// never return errors from the interface methods; persistence failures are
// best-effort by design and surfaced out-of-band where a backend can.
package storage
