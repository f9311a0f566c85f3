package backend

import (
	"errors"
	"fmt"
)

// Falcon-512 parameter-set constants (logn = 9). The sizes are fixed by
// the reference library for this degree and must not be derived from
// caller input.
const (
	LogN             = 9
	PrivateKeySize   = 1281
	PublicKeySize    = 897
	MaxSignatureSize = 752
)

// Working-memory sizes required by the native routines, per operation.
const (
	TmpSizeKeygen = 15879
	TmpSizeSign   = 39943
	TmpSizeVerify = 4097
)

// Status codes reported by the native library.
const (
	StatusRandom   = -1
	StatusSize     = -2
	StatusFormat   = -3
	StatusBadSig   = -4
	StatusBadArg   = -5
	StatusInternal = -6
)

var (
	// ErrNotBuilt reports that the native Falcon library was not linked
	// into the current binary.
	ErrNotBuilt = errors.New("falcon/internal/backend: native library not built")

	// ErrCGONotEnabled signals that the package was compiled without cgo
	// and therefore cannot reach the native library.
	ErrCGONotEnabled = errors.New("falcon/internal/backend: cgo not enabled")
)

// StatusError carries a nonzero status code returned by a native routine.
// The public package maps these onto its error taxonomy.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("falcon/internal/backend: status %d (%s)", e.Code, statusName(e.Code))
}

func statusName(code int) string {
	switch code {
	case StatusRandom:
		return "rng failure"
	case StatusSize:
		return "size mismatch"
	case StatusFormat:
		return "invalid format"
	case StatusBadSig:
		return "invalid signature"
	case StatusBadArg:
		return "bad argument"
	case StatusInternal:
		return "internal error"
	default:
		return "unknown"
	}
}

func statusToError(code int) error {
	if code == 0 {
		return nil
	}
	return &StatusError{Code: code}
}
