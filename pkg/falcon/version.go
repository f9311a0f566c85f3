package falcon

import "github.com/latticeforge/falcon512-go/internal/backend"

var (
	// Version is the wrapper version, populated at build time via ldflags.
	Version = "v0.0.0-dev"

	// UpstreamDir is where the build expects the reference Falcon-512
	// checkout and the compiled static library; see internal/backend.
	UpstreamDir = "falcon-ref"
)

// WrapperVersion returns the version of this wrapper module.
func WrapperVersion() string {
	return Version
}

// BackendAvailable reports whether the native lattice backend was linked
// into this binary. When false, key generation, signing and verification
// return ErrNotBuilt while the coefficient decoders keep working.
func BackendAvailable() bool {
	return backend.Available()
}
