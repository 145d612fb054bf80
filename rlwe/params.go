package rlwe

import (
	"fmt"

	"github.com/nthroot/ntt/arith"
	"github.com/nthroot/ntt/field"
	"github.com/nthroot/ntt/ntt"
)

// Error is a sentinel error enumeration for parameter construction
// failures.
type Error uint8

const (
	// ErrInvalidDegree is returned when N is not a power of two.
	ErrInvalidDegree Error = iota + 1
	// ErrInvalidModulus is returned when Q is not prime, or 2N does not
	// divide Q-1 (so the ring has no primitive 2N-th root of unity, and
	// no radix-2 NTT of length N).
	ErrInvalidModulus
	// ErrInvalidWidth is returned when K is not positive.
	ErrInvalidWidth
)

func (e Error) Error() string {
	switch e {
	case ErrInvalidDegree:
		return "rlwe: N must be a power of two"
	case ErrInvalidModulus:
		return "rlwe: Q must be prime with 2N | Q-1"
	case ErrInvalidWidth:
		return "rlwe: K must be positive"
	default:
		return fmt.Sprintf("rlwe: unknown error (%d)", uint8(e))
	}
}

// Parameters is an immutable, checked R-LWE parameter set: the
// polynomial degree N, the prime modulus Q, the binomial half-width K,
// and the field/NTT descriptors derived from them, plus the q/2, q/4
// and 3q/4 thresholds decryption tests against. Parameters is safe for
// concurrent use once constructed: nothing about it is mutated again.
type Parameters struct {
	n, k int
	q    uint64

	ring field.Ring
	ntt  ntt.Transformer

	qHalf, qQuarter, q3Quarter uint64
}

// NewParametersFromLiteral validates lit and returns the checked
// Parameters, deriving the prime-field descriptor for Q and a radix-2
// NTT of length N over it. It returns an Error if N is not a power of
// two, Q is not prime, 2N does not divide Q-1, or K is not positive.
func NewParametersFromLiteral(lit ParametersLiteral) (Parameters, error) {
	n, q, k := lit.N, lit.Q, lit.K

	if n <= 0 || n&(n-1) != 0 {
		return Parameters{}, ErrInvalidDegree
	}
	if k <= 0 {
		return Parameters{}, ErrInvalidWidth
	}
	if q <= 0 || !arith.IsPrime(uint64(q)) || (uint64(q)-1)%uint64(2*n) != 0 {
		return Parameters{}, ErrInvalidModulus
	}

	r, err := field.NewPrime(uint64(q))
	if err != nil {
		return Parameters{}, ErrInvalidModulus
	}
	tr, err := ntt.NewRadix2(r, n)
	if err != nil {
		return Parameters{}, ErrInvalidModulus
	}

	return Parameters{
		n: n, k: k, q: uint64(q),
		ring:      r,
		ntt:       tr,
		qHalf:     uint64(q) / 2,
		qQuarter:  uint64(q) / 4,
		q3Quarter: 3 * uint64(q) / 4,
	}, nil
}

// N returns the polynomial degree.
func (p Parameters) N() int { return p.n }

// Q returns the prime modulus.
func (p Parameters) Q() uint64 { return p.q }

// K returns the binomial half-width.
func (p Parameters) K() int { return p.k }

// Ring returns the prime-field descriptor for Q.
func (p Parameters) Ring() field.Ring { return p.ring }

// NTT returns the radix-2 transform of length N over Ring().
func (p Parameters) NTT() ntt.Transformer { return p.ntt }

// ParametersLiteral returns the literal form of p.
func (p Parameters) ParametersLiteral() ParametersLiteral {
	return ParametersLiteral{N: p.n, Q: int(p.q), K: p.k}
}
