package control

import (
	"github.com/zeebo/errs"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("control")

// ErrInvalidOperation is returned when a Decoder accessor does not apply to
// the current field, e.g. Data on a container.
var ErrInvalidOperation = Error.New("invalid operation")

// sized returns v as big-endian bytes without leading zeros. Zero is a single
// zero byte.
func sized(v uint64) []byte {
	n := 1
	for w := v >> 8; w != 0; w >>= 8 {
		n++
	}

	b := make([]byte, n)
	for i := n - 1; i >= 0; i-- {
		b[i] = byte(v)
		v >>= 8
	}

	return b
}

// unsized is the inverse of sized for at most 8 bytes.
func unsized(b []byte) (v uint64, err error) {
	if len(b) > 8 {
		return 0, Error.New("unimplemented: size >= 2^64")
	}

	for _, c := range b {
		v = v<<8 | uint64(c)
	}

	return v, nil
}
