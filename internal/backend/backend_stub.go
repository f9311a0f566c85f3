//go:build !cgo || windows

package backend

// Stub implementations for builds without cgo or on Windows. They let the
// module compile everywhere; callers observe ErrNotBuilt and can fall back
// or skip.

// Available reports that the native library is not linked into this binary.
func Available() bool { return false }

func Keygen([]byte) ([]byte, []byte, error) {
	return nil, nil, ErrNotBuilt
}

func Sign([]byte, []byte, []byte) ([]byte, error) {
	return nil, ErrNotBuilt
}

func Verify([]byte, []byte, []byte) error {
	return ErrNotBuilt
}
