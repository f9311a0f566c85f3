// Package falcon exposes a narrow, boundary-safe API over the Falcon-512
// post-quantum lattice signature scheme: seed-driven key generation,
// compressed-format signing, verification, and decoding of the internal
// polynomial ring representations from their compact wire encodings.
//
// The lattice machinery underneath (NTRU key generation, FFT polynomial
// arithmetic, Gaussian sampling, the SHAKE-256 PRNG) lives in the frozen
// reference library reached through internal/backend and is never
// reimplemented here. Key generation, signing and verification therefore
// require a binary linked against that library; when it is absent those
// calls return ErrNotBuilt. HashToPoint and the coefficient decoders are
// pure Go and work in every build.
//
// All operations are synchronous and self-contained: each call owns its
// working memory and PRNG state, nothing is shared, and no locking is
// needed for concurrent use. Buffers that held secret material are wiped
// before release on every exit path.
//
// SECURITY WARNING: seeds and private keys are raw secret bytes.
//   - Supply cryptographic-quality randomness for seeds; this layer does
//     not validate seed quality.
//   - Never log or print seed or private-key contents.
//   - Zeroize private-key copies with ZeroizeBytes when done.
package falcon
