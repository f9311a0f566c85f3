package falcon

// KeyPair holds an encoded Falcon-512 key pair. Both blobs are opaque:
// their internal layout belongs to the reference library. A pair is never
// mutated after creation; regenerating from a seed is the only way to
// obtain a different one.
//
// SECURITY WARNING: PrivateKey is raw secret material. Never log it, and
// wipe copies with ZeroizeBytes once they are no longer needed.
type KeyPair struct {
	// PrivateKey encodes the small ring elements f, g and F.
	// Always PrivateKeySize bytes.
	PrivateKey []byte

	// PublicKey encodes the ring element h = g/f mod q.
	// Always PublicKeySize bytes.
	PublicKey []byte
}

// Zeroize wipes the private half of the key pair in place. The public key
// is left untouched.
func (kp *KeyPair) Zeroize() {
	if kp != nil {
		ZeroizeBytes(kp.PrivateKey)
	}
}

// RingElement is an element of Z[x]/(x^512 + 1): 512 signed 16-bit
// coefficients in order of increasing degree. Depending on where it came
// from, coefficients are either reduced mod q (public key, hash-to-point)
// or small unreduced integers (signature components).
type RingElement [Degree]int16

// SignatureCoefficients is the decoded view of a compressed signature:
// the embedded nonce and the two ring elements of the signing relation.
//
// S1 is decoded directly from the wire encoding. S0 is reconstructed as
// hashToPoint(nonce) - S1 in plain int16 arithmetic, without modular
// reduction and without the public key, so it is a best-effort view for
// coefficient inspection, not a restatement of the relation Verify checks.
type SignatureCoefficients struct {
	Nonce [NonceSize]byte
	S0    RingElement
	S1    RingElement
}
