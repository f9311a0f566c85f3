//go:build cgo && !windows

package backend

/*
#cgo CFLAGS: -I${SRCDIR}/../../falcon-ref -Wno-deprecated-declarations
#cgo LDFLAGS: -L${SRCDIR}/../../falcon-ref -L/usr/local/lib -lfalcon
#include <stdlib.h>
#include <string.h>
#include "falcon.h"
*/
import "C"

import "unsafe"

// Available reports that the native library is linked into this binary.
func Available() bool { return true }

// rngState wraps the library's SHAKE-256 PRNG context. Identical seed
// bytes always yield an identical output stream, which is what makes key
// generation and signing deterministic. The state must be cleared as soon
// as the operation that consumed it returns.
type rngState struct {
	st C.shake256_context
}

func newRNG(seed []byte) *rngState {
	r := new(rngState)
	C.shake256_init_prng_from_seed(&r.st, bytesPtr(seed), C.size_t(len(seed)))
	return r
}

func (r *rngState) clear() {
	C.memset(unsafe.Pointer(&r.st), 0, C.size_t(unsafe.Sizeof(r.st)))
}

// bytesPtr returns the address of the first byte of b, or nil for an empty
// slice. The native routines treat a nil pointer with zero length as an
// empty input.
func bytesPtr(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Pointer(&b[0])
}

// Keygen derives a Falcon-512 key pair from the caller-supplied seed.
// The returned slices are freshly allocated and exactly PrivateKeySize and
// PublicKeySize bytes long.
func Keygen(seed []byte) (priv, pub []byte, err error) {
	rng := newRNG(seed)
	defer rng.clear()

	priv = make([]byte, PrivateKeySize)
	pub = make([]byte, PublicKeySize)
	err = withScratch(TmpSizeKeygen, func(tmp []byte) error {
		rc := C.falcon_keygen_make(&rng.st, C.uint(LogN),
			bytesPtr(priv), C.size_t(len(priv)),
			bytesPtr(pub), C.size_t(len(pub)),
			bytesPtr(tmp), C.size_t(len(tmp)))
		return statusToError(int(rc))
	})
	if err != nil {
		Wipe(priv)
		return nil, nil, err
	}
	return priv, pub, nil
}

// Sign produces a compressed-format signature over message. The actual
// signature length is reported by the library; only its bounds are fixed.
func Sign(message, privateKey, rngSeed []byte) ([]byte, error) {
	rng := newRNG(rngSeed)
	defer rng.clear()

	sig := make([]byte, MaxSignatureSize)
	sigLen := C.size_t(len(sig))
	err := withScratch(TmpSizeSign, func(tmp []byte) error {
		rc := C.falcon_sign_dyn(&rng.st,
			bytesPtr(sig), &sigLen, C.FALCON_SIG_COMPRESSED,
			bytesPtr(privateKey), C.size_t(len(privateKey)),
			bytesPtr(message), C.size_t(len(message)),
			bytesPtr(tmp), C.size_t(len(tmp)))
		return statusToError(int(rc))
	})
	if err != nil {
		Wipe(sig)
		return nil, err
	}
	return sig[:int(sigLen)], nil
}

// Verify checks signature over message against publicKey. A nil return
// means the signature is valid; any failure surfaces as a StatusError for
// the caller to classify.
func Verify(message, signature, publicKey []byte) error {
	return withScratch(TmpSizeVerify, func(tmp []byte) error {
		// Signature type 0 lets the library detect the encoding from the
		// header byte.
		rc := C.falcon_verify(
			bytesPtr(signature), C.size_t(len(signature)), 0,
			bytesPtr(publicKey), C.size_t(len(publicKey)),
			bytesPtr(message), C.size_t(len(message)),
			bytesPtr(tmp), C.size_t(len(tmp)))
		return statusToError(int(rc))
	})
}
