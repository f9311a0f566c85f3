package falcon

// Falcon-512 parameter-set constants (degree 512, logn 9).
const (
	// Degree is the ring degree n; ring elements are polynomials in
	// Z[x]/(x^Degree + 1).
	Degree = 512

	// LogDegree is log2(Degree), carried in every wire-format header.
	LogDegree = 9

	// Modulus is the coefficient modulus q. Public-key and hash-to-point
	// coefficients are reduced modulo this value.
	Modulus = 12289

	// PrivateKeySize is the encoded private-key length: small ring
	// elements f, g and F.
	PrivateKeySize = 1281

	// PublicKeySize is the encoded public-key length: one header byte plus
	// the ring element h = g/f mod q.
	PublicKeySize = 897

	// MaxSignatureSize bounds the compressed signature encoding from
	// above. The actual length varies per signature.
	MaxSignatureSize = 752

	// MinSignatureSize is the header byte plus the nonce; no valid
	// signature is shorter.
	MinSignatureSize = 1 + NonceSize

	// NonceSize is the length of the random salt embedded in every
	// signature.
	NonceSize = 40

	// SeedSize is the recommended seed length for key generation and for
	// signing randomness. Other lengths are accepted.
	SeedSize = 48
)

// Wire-format header bytes. The high nibble tags the encoding, the low
// nibble carries LogDegree.
const (
	publicKeyHeader     = 0x00 | LogDegree
	compressedSigHeader = 0x30 | LogDegree
)
