package falcon

import (
	"errors"

	"github.com/latticeforge/falcon512-go/internal/backend"
)

// Verify reports whether signature is a valid Falcon-512 signature over
// message under publicKey.
//
// A cryptographically invalid, malformed or tampered signature is the
// normal false outcome, never an error; the same code path and the same
// allocations run regardless of the verdict, since this function is
// expected to see attacker-controlled input. Errors are reserved for
// structurally impossible input (publicKey not PublicKeySize bytes) and
// for a missing backend. No randomness is consumed.
func Verify(message, signature, publicKey []byte) (bool, error) {
	if len(publicKey) != PublicKeySize {
		return false, ErrBadArgument
	}
	err := backend.Verify(message, signature, publicKey)
	if err == nil {
		return true, nil
	}
	var st *backend.StatusError
	if errors.As(err, &st) {
		switch st.Code {
		case backend.StatusBadSig, backend.StatusFormat, backend.StatusSize:
			return false, nil
		}
	}
	return false, remapError(err)
}
