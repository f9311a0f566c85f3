// Package internalcheck holds repository policy tests for the public
// falcon package: comparisons of key-sized byte data must go through
// crypto/subtle, and format strings must never hex-dump values, since the
// values flowing through this package are seeds, private keys and
// signatures.
//
// The package exports nothing and is not meant to be imported; it exists
// only so the policies run under go test.
package internalcheck
