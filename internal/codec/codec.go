// Package codec implements the wire-format primitives shared by the
// Falcon-512 key and signature encodings: the SHAKE-256 hash-to-point
// mapping, the 14-bit modular encoding used for public keys, and the
// compressed variable-width encoding used for signatures.
//
// These are bit-exact transcriptions of the encodings fixed by the Falcon
// round-3 specification. They involve no lattice arithmetic and no secret
// material, so they are implemented in pure Go and work in every build,
// with or without the native backend.
package codec

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/sha3"
)

const (
	// LogN is log2 of the ring degree for the Falcon-512 parameter set.
	LogN = 9
	// N is the ring degree.
	N = 1 << LogN
	// Q is the coefficient modulus.
	Q = 12289
)

// ModqEncodedSize is the byte length of a 14-bit-packed ring element;
// 896 bytes for degree 512.
const ModqEncodedSize = (N*14 + 7) / 8

// htpBound is the rejection-sampling bound for hash-to-point: the largest
// multiple of Q that fits in 16 bits.
const htpBound = 5 * Q

// maxCompMagnitude is the largest coefficient magnitude representable by
// the compressed encoding.
const maxCompMagnitude = 2047

// ErrInvalidEncoding is returned (wrapped) for every malformed input:
// truncated streams, out-of-range values, and nonzero padding bits.
var ErrInvalidEncoding = errors.New("codec: invalid encoding")

// HashToPoint maps an arbitrary message to a ring element with
// coefficients in [0, Q). The message is absorbed into a SHAKE-256 sponge
// and 16-bit big-endian words are squeezed out, keeping those below 5*Q
// reduced mod Q. This reproduces exactly the mapping used internally when
// signing and verifying.
func HashToPoint(message []byte) [N]int16 {
	var out [N]int16
	sh := sha3.NewShake256()
	sh.Write(message)
	var buf [2]byte
	for i := 0; i < N; {
		sh.Read(buf[:])
		w := uint32(buf[0])<<8 | uint32(buf[1])
		if w < htpBound {
			for w >= Q {
				w -= Q
			}
			out[i] = int16(w)
			i++
		}
	}
	return out
}

// ModqDecode unpacks a 14-bit big-endian coefficient stream into a ring
// element reduced mod Q. The input must carry at least ModqEncodedSize
// bytes; every unpacked value must be below Q and any unused trailing bits
// must be zero.
func ModqDecode(src []byte) ([N]int16, error) {
	var zero, out [N]int16
	if len(src) < ModqEncodedSize {
		return zero, fmt.Errorf("%w: need %d bytes, have %d", ErrInvalidEncoding, ModqEncodedSize, len(src))
	}
	var acc uint32
	accLen := uint(0)
	u := 0
	for _, b := range src[:ModqEncodedSize] {
		acc = acc<<8 | uint32(b)
		accLen += 8
		if accLen >= 14 && u < N {
			accLen -= 14
			w := (acc >> accLen) & 0x3FFF
			if w >= Q {
				return zero, fmt.Errorf("%w: coefficient %d out of range", ErrInvalidEncoding, u)
			}
			out[u] = int16(w)
			u++
		}
	}
	if acc&(1<<accLen-1) != 0 {
		return zero, fmt.Errorf("%w: nonzero trailing bits", ErrInvalidEncoding)
	}
	return out, nil
}

// CompDecode decodes the compressed signature encoding into a ring element
// of small signed coefficients. Each coefficient is a sign bit, the seven
// low bits of the magnitude, and then a unary run encoding the high bits,
// terminated by a 1. It returns the coefficients and the number of input
// bytes consumed; unused bits in the last consumed byte must be zero.
func CompDecode(src []byte) ([N]int16, int, error) {
	var zero, out [N]int16
	var acc uint32
	accLen := uint(0)
	in := 0
	for u := 0; u < N; u++ {
		if in >= len(src) {
			return zero, 0, fmt.Errorf("%w: truncated stream at coefficient %d", ErrInvalidEncoding, u)
		}
		acc = acc<<8 | uint32(src[in])
		in++
		b := acc >> accLen
		sign := b&0x80 != 0
		m := b & 0x7F
		for {
			if accLen == 0 {
				if in >= len(src) {
					return zero, 0, fmt.Errorf("%w: truncated stream at coefficient %d", ErrInvalidEncoding, u)
				}
				acc = acc<<8 | uint32(src[in])
				in++
				accLen = 8
			}
			accLen--
			if acc>>accLen&1 != 0 {
				break
			}
			m += 128
			if m > maxCompMagnitude {
				return zero, 0, fmt.Errorf("%w: coefficient %d magnitude too large", ErrInvalidEncoding, u)
			}
		}
		// The encoding of -0 is forbidden.
		if sign && m == 0 {
			return zero, 0, fmt.Errorf("%w: negative zero at coefficient %d", ErrInvalidEncoding, u)
		}
		if sign {
			out[u] = int16(-int32(m))
		} else {
			out[u] = int16(m)
		}
	}
	if acc&(1<<accLen-1) != 0 {
		return zero, 0, fmt.Errorf("%w: nonzero padding bits", ErrInvalidEncoding)
	}
	return out, in, nil
}
