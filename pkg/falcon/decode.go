package falcon

import "github.com/latticeforge/falcon512-go/internal/codec"

// HashToPoint hashes message with the SHAKE-256 sponge and maps the output
// to a ring element with coefficients in [0, Modulus). This is exactly the
// challenge mapping Sign and Verify use internally, exposed for
// introspection. Deterministic and pure; works without the native backend.
func HashToPoint(message []byte) RingElement {
	return RingElement(codec.HashToPoint(message))
}

// DecodePublicKeyCoefficients decodes an encoded public key into the
// explicit coefficients of the ring element h. The header byte must carry
// the public-key tag for degree 512 and the remaining bytes must decode to
// exactly Degree coefficients below Modulus; anything else is ErrFormat.
// No partially-decoded result is ever returned.
func DecodePublicKeyCoefficients(publicKey []byte) (RingElement, error) {
	var zero RingElement
	if len(publicKey) != PublicKeySize {
		return zero, ErrFormat
	}
	if publicKey[0] != publicKeyHeader {
		return zero, ErrFormat
	}
	coeffs, err := codec.ModqDecode(publicKey[1:])
	if err != nil {
		return zero, ErrFormat
	}
	return RingElement(coeffs), nil
}

// DecodeSignatureCoefficients decodes a compressed signature into its
// nonce and the ring elements s0 and s1. The signature must be at least
// MinSignatureSize bytes with a compressed-format header for degree 512,
// and the payload must decode cleanly; anything else is ErrFormat.
//
// s1 comes straight off the wire. s0 is recomputed as hashToPoint(nonce)
// minus s1 in plain int16 arithmetic; see SignatureCoefficients for why
// that reconstruction is inspection-grade only.
func DecodeSignatureCoefficients(signature []byte) (*SignatureCoefficients, error) {
	if len(signature) < MinSignatureSize {
		return nil, ErrFormat
	}
	header := signature[0]
	if header&0xF0 != compressedSigHeader&0xF0 || header&0x0F != LogDegree {
		return nil, ErrFormat
	}
	s1, _, err := codec.CompDecode(signature[MinSignatureSize:])
	if err != nil {
		return nil, ErrFormat
	}

	out := &SignatureCoefficients{}
	copy(out.Nonce[:], signature[1:MinSignatureSize])
	hm := codec.HashToPoint(out.Nonce[:])
	for i := range s1 {
		out.S1[i] = s1[i]
		out.S0[i] = hm[i] - s1[i]
	}
	return out, nil
}
