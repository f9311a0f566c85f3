package falcon

import (
	"errors"

	"github.com/latticeforge/falcon512-go/internal/backend"
)

// The boundary-stable error taxonomy. Backend status codes and codec
// failures are remapped onto these sentinels so callers never depend on
// native error values. A cryptographically invalid signature is not part
// of the taxonomy: Verify reports it as a plain false.
var (
	// ErrRandom reports that the PRNG could not produce output.
	ErrRandom = errors.New("falcon: rng failure")

	// ErrSizeMismatch reports a caller-provided buffer or argument of the
	// wrong length, detected by the native library.
	ErrSizeMismatch = errors.New("falcon: size mismatch")

	// ErrFormat reports an invalid header tag or a malformed encoding.
	ErrFormat = errors.New("falcon: invalid format")

	// ErrBadArgument reports structurally impossible input rejected before
	// the native library is invoked.
	ErrBadArgument = errors.New("falcon: bad argument")

	// ErrInternal reports an unexpected status from the native library.
	ErrInternal = errors.New("falcon: internal error")

	// ErrNotBuilt reports that the native lattice backend was not linked
	// into this binary. HashToPoint and the coefficient decoders still
	// work; key generation, signing and verification do not.
	ErrNotBuilt = errors.New("falcon: native backend not built")
)

// remapError converts backend-layer failures into the public taxonomy.
// Unrecognized errors pass through unchanged.
func remapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, backend.ErrNotBuilt) || errors.Is(err, backend.ErrCGONotEnabled) {
		return ErrNotBuilt
	}
	var st *backend.StatusError
	if errors.As(err, &st) {
		switch st.Code {
		case backend.StatusRandom:
			return ErrRandom
		case backend.StatusSize:
			return ErrSizeMismatch
		case backend.StatusFormat:
			return ErrFormat
		case backend.StatusBadArg:
			return ErrBadArgument
		default:
			return ErrInternal
		}
	}
	return err
}
