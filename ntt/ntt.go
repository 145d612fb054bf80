// Package ntt implements the number-theoretic transform family this
// module supports: a naive O(n^2) DFT, a radix-2 Cooley-Tukey FFT, a
// Good-Thomas prime-factor FFT, a Cooley-Tukey mixed-radix FFT, a
// Gao-Mateer additive FFT over GF(2^n), a CRT-composed transform over a
// product of prime moduli (the product itself must fit in a uint64;
// wider moduli are not supported), and degenerate size-2/single
// kernels. Every variant implements Transformer and shares the
// contract `ifft(fft(x)) == x`.
package ntt

import (
	"fmt"

	"github.com/nthroot/ntt/field"
	"github.com/nthroot/ntt/poly"
)

// Error is a sentinel error enumeration for transform construction
// failures.
type Error uint8

const (
	// ErrNoSuchRoot is returned when the field cannot supply a root of
	// unity of the order the variant needs.
	ErrNoSuchRoot Error = iota + 1
	// ErrUnsupportedSize is returned when n is not a valid size for the
	// requested variant (not a power of two for Radix2, not coprime for
	// GoodThomas, etc.).
	ErrUnsupportedSize
	// ErrLengthMismatch is the value FFT/IFFT panic with when the
	// vector's length does not match the transformer's N().
	ErrLengthMismatch
)

func (e Error) Error() string {
	switch e {
	case ErrNoSuchRoot:
		return "ntt: field does not supply a root of unity of the required order"
	case ErrUnsupportedSize:
		return "ntt: unsupported transform size"
	case ErrLengthMismatch:
		return "ntt: vector length does not match transform size"
	default:
		return fmt.Sprintf("ntt: unknown error (%d)", uint8(e))
	}
}

// Transformer is implemented by every NTT variant. Construction may
// fail (ErrNoSuchRoot, ErrUnsupportedSize); once built, FFT/IFFT never
// fail for a well-formed input vector of length N().
type Transformer interface {
	// FFT transforms v in place.
	FFT(v *poly.Vector)
	// IFFT inverse-transforms v in place; IFFT(FFT(x)) == x for every x.
	IFFT(v *poly.Vector)
	// N returns the transform length.
	N() int
	// Ring returns the field the transform operates over.
	Ring() field.Ring
}

func checkLen(v *poly.Vector, n int) {
	if v.Len() != n {
		panic(ErrLengthMismatch)
	}
}
