// Package backend is the boundary to the frozen Falcon-512 reference
// implementation. The native library is consumed strictly through its
// published entry points (falcon_keygen_make, falcon_sign_dyn,
// falcon_verify, shake256_init_prng_from_seed); its internals are never
// reimplemented or patched here.
//
// Builds with cgo on non-Windows platforms link the reference library;
// see backend.go for the expected checkout and library locations. All
// other builds compile against stubs that return ErrNotBuilt, so the
// module (and the pure-Go codec on top of it) stays usable everywhere.
//
// This package should only be imported by pkg/falcon.
package backend
