package falcon

import "github.com/latticeforge/falcon512-go/internal/backend"

// ZeroizeBytes overwrites buf with zeros and keeps the stores from being
// eliminated as dead writes.
//
// Go's garbage collector may already have copied the data elsewhere, so
// this cannot guarantee complete sanitization; it is the accepted
// best-effort pattern for sensitive buffers in the Go ecosystem
// (golang/go#33325). The native library wipes its own working memory and
// PRNG state independently.
func ZeroizeBytes(buf []byte) {
	backend.Wipe(buf)
}
