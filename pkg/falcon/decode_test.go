package falcon_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/latticeforge/falcon512-go/pkg/falcon"
)

// testBits accumulates bits MSB first, zero-padding the final byte, for
// building synthetic wire images in tests.
type testBits struct {
	buf []byte
	n   uint
}

func (w *testBits) bit(b uint32) {
	if w.n == 0 {
		w.buf = append(w.buf, 0)
	}
	if b != 0 {
		w.buf[len(w.buf)-1] |= 1 << (7 - w.n)
	}
	w.n = (w.n + 1) % 8
}

func (w *testBits) bits(v uint32, width uint) {
	for i := width; i > 0; i-- {
		w.bit(v >> (i - 1) & 1)
	}
}

// encodePublicKey builds a well-formed public-key image from explicit
// coefficients: header byte, then 14-bit big-endian packing.
func encodePublicKey(coeffs falcon.RingElement) []byte {
	w := &testBits{buf: []byte{0x00 | falcon.LogDegree}}
	for _, c := range coeffs {
		w.bits(uint32(c), 14)
	}
	return w.buf
}

// encodeSignature builds a well-formed compressed signature image from a
// nonce and explicit s1 coefficients.
func encodeSignature(nonce [falcon.NonceSize]byte, s1 falcon.RingElement) []byte {
	w := &testBits{buf: append([]byte{0x30 | falcon.LogDegree}, nonce[:]...)}
	for _, c := range s1 {
		m := uint32(c)
		if c < 0 {
			w.bit(1)
			m = uint32(-int32(c))
		} else {
			w.bit(0)
		}
		w.bits(m&0x7F, 7)
		for i := uint32(0); i < m>>7; i++ {
			w.bit(0)
		}
		w.bit(1)
	}
	return w.buf
}

func TestHashToPointShape(t *testing.T) {
	hm := falcon.HashToPoint([]byte("Hello World"))
	require.Len(t, hm, falcon.Degree)
	for i, c := range hm {
		require.GreaterOrEqualf(t, int(c), 0, "coefficient %d", i)
		require.Lessf(t, int(c), falcon.Modulus, "coefficient %d", i)
	}

	require.Equal(t, hm, falcon.HashToPoint([]byte("Hello World")))
	require.NotEqual(t, hm, falcon.HashToPoint([]byte("Hello World!")))

	empty := falcon.HashToPoint(nil)
	require.Len(t, empty, falcon.Degree)
}

func TestDecodePublicKeyCoefficientsRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	var coeffs falcon.RingElement
	for i := range coeffs {
		coeffs[i] = int16(rng.Intn(falcon.Modulus))
	}

	pub := encodePublicKey(coeffs)
	require.Len(t, pub, falcon.PublicKeySize)

	got, err := falcon.DecodePublicKeyCoefficients(pub)
	require.NoError(t, err)
	require.Equal(t, coeffs, got)
}

func TestDecodePublicKeyCoefficientsBadInput(t *testing.T) {
	var coeffs falcon.RingElement
	good := encodePublicKey(coeffs)

	t.Run("wrong length", func(t *testing.T) {
		_, err := falcon.DecodePublicKeyCoefficients(make([]byte, 100))
		require.ErrorIs(t, err, falcon.ErrFormat)
	})
	t.Run("wrong header", func(t *testing.T) {
		bad := append([]byte(nil), good...)
		bad[0] = 0x0A // degree-1024 tag
		_, err := falcon.DecodePublicKeyCoefficients(bad)
		require.ErrorIs(t, err, falcon.ErrFormat)
	})
	t.Run("signature header on a key", func(t *testing.T) {
		bad := append([]byte(nil), good...)
		bad[0] = 0x39
		_, err := falcon.DecodePublicKeyCoefficients(bad)
		require.ErrorIs(t, err, falcon.ErrFormat)
	})
	t.Run("coefficient out of range", func(t *testing.T) {
		bad := append([]byte(nil), good...)
		bad[1] = 0xC0 // first 14-bit value becomes >= q
		bad[2] = 0x04
		_, err := falcon.DecodePublicKeyCoefficients(bad)
		require.ErrorIs(t, err, falcon.ErrFormat)
	})
}

func TestDecodeSignatureCoefficientsRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	var nonce [falcon.NonceSize]byte
	rng.Read(nonce[:])
	var s1 falcon.RingElement
	for i := range s1 {
		s1[i] = int16(rng.Intn(401) - 200)
	}

	sig := encodeSignature(nonce, s1)
	require.GreaterOrEqual(t, len(sig), falcon.MinSignatureSize)

	sc, err := falcon.DecodeSignatureCoefficients(sig)
	require.NoError(t, err)
	require.Equal(t, nonce, sc.Nonce)
	require.Equal(t, s1, sc.S1)

	// s0 is reconstructed as hashToPoint(nonce) - s1, coefficient-wise,
	// with no modular reduction.
	hm := falcon.HashToPoint(nonce[:])
	for i := range hm {
		require.Equal(t, hm[i]-s1[i], sc.S0[i], "coefficient %d", i)
	}
}

func TestDecodeSignatureCoefficientsBadInput(t *testing.T) {
	var nonce [falcon.NonceSize]byte
	var s1 falcon.RingElement
	good := encodeSignature(nonce, s1)

	t.Run("too short", func(t *testing.T) {
		for _, n := range []int{0, 1, falcon.NonceSize, falcon.MinSignatureSize - 1} {
			_, err := falcon.DecodeSignatureCoefficients(make([]byte, n))
			require.ErrorIs(t, err, falcon.ErrFormat, "length %d", n)
		}
	})
	t.Run("wrong format nibble", func(t *testing.T) {
		bad := append([]byte(nil), good...)
		bad[0] = 0x29 // padded-format tag
		_, err := falcon.DecodeSignatureCoefficients(bad)
		require.ErrorIs(t, err, falcon.ErrFormat)
	})
	t.Run("wrong degree nibble", func(t *testing.T) {
		bad := append([]byte(nil), good...)
		bad[0] = 0x3A
		_, err := falcon.DecodeSignatureCoefficients(bad)
		require.ErrorIs(t, err, falcon.ErrFormat)
	})
	t.Run("truncated payload", func(t *testing.T) {
		_, err := falcon.DecodeSignatureCoefficients(good[:len(good)-1])
		require.ErrorIs(t, err, falcon.ErrFormat)
	})
}
