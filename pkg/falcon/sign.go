package falcon

import "github.com/latticeforge/falcon512-go/internal/backend"

// Sign produces a compressed-format Falcon-512 signature over message.
//
// privateKey must be exactly PrivateKeySize bytes; any other length is
// ErrBadArgument before the native library is touched. rngSeed drives the
// signing randomness and is unrelated to the seed the key was derived
// from; an identical (message, privateKey, rngSeed) triple yields a
// byte-identical signature, across process restarts.
//
// The returned signature is between MinSignatureSize and MaxSignatureSize
// bytes; callers must not assume a fixed length. The PRNG state and the
// signing working memory are wiped before return on every path.
func Sign(message, privateKey, rngSeed []byte) ([]byte, error) {
	if len(privateKey) != PrivateKeySize {
		return nil, ErrBadArgument
	}
	sig, err := backend.Sign(message, privateKey, rngSeed)
	if err != nil {
		return nil, remapError(err)
	}
	return sig, nil
}
