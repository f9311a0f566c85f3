package falcon

import (
	"errors"

	"github.com/latticeforge/falcon512-go/internal/backend"
)

// GenerateKeyPair deterministically derives a Falcon-512 key pair from the
// caller-supplied seed: the same seed always yields a byte-identical pair,
// and seeds differing in a single bit yield unrelated pairs. Seed quality
// is the caller's responsibility; SeedSize bytes from a cryptographic RNG
// are recommended, and degenerate seeds (short, all-zero) are not rejected
// here.
//
// The PRNG state and the key-generation working memory are wiped before
// return on every path. Failures other than a missing backend surface as
// ErrInternal; key generation distinguishes no recoverable sub-cases.
func GenerateKeyPair(seed []byte) (*KeyPair, error) {
	priv, pub, err := backend.Keygen(seed)
	if err != nil {
		if errors.Is(err, backend.ErrNotBuilt) || errors.Is(err, backend.ErrCGONotEnabled) {
			return nil, ErrNotBuilt
		}
		return nil, ErrInternal
	}
	return &KeyPair{PrivateKey: priv, PublicKey: pub}, nil
}
