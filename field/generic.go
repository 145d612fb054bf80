package field

import (
	"github.com/nthroot/ntt/arith"
	"github.com/nthroot/ntt/utils/sampling"
)

// Generic is the ring Z/mZ for an arbitrary modulus m >= 2, prime or
// not. Unlike Prime it makes no field guarantees: Inv/Div fail on any
// element not coprime to m, and PrimitiveRoot/NthRoot succeed only when
// the multiplicative group happens to be cyclic (m in {1, 2, 4, p^k,
// 2p^k} for an odd prime p), exactly as for Z/mZ* in general.
type Generic struct {
	m     uint64
	roots rootCache
}

// NewGeneric returns Z/mZ for m >= 2.
func NewGeneric(m uint64) (Ring, error) {
	if m < 2 {
		return nil, ErrInvalidModulus
	}
	return &Generic{m: m}, nil
}

func (r *Generic) Add(a, b uint64) uint64 {
	return (a + b) % r.m
}

func (r *Generic) Sub(a, b uint64) uint64 {
	a %= r.m
	b %= r.m
	if a >= b {
		return a - b
	}
	return r.m - (b - a)
}

func (r *Generic) Mul(a, b uint64) uint64 {
	return arith.MulMod(a, b, r.m)
}

func (r *Generic) Neg(a uint64) uint64 {
	a %= r.m
	if a == 0 {
		return 0
	}
	return r.m - a
}

func (r *Generic) Inv(a uint64) (uint64, error) {
	a %= r.m
	g, _, v := arith.ExtendedGCD(r.m, a)
	if g != 1 {
		return 0, ErrNotInvertible
	}
	return uint64(((v % int64(r.m)) + int64(r.m)) % int64(r.m)), nil
}

func (r *Generic) Div(a, b uint64) (uint64, error) {
	inv, err := r.Inv(b)
	if err != nil {
		return 0, err
	}
	return r.Mul(a, inv), nil
}

func (r *Generic) Exp(a, e uint64) uint64 {
	return arith.ExpMod(a, e, r.m)
}

func (r *Generic) EqToOne(a uint64) bool {
	return a%r.m == 1
}

func (r *Generic) Card() uint64         { return r.m }
func (r *Generic) CardMinusOne() uint64 { return r.m - 1 }

func (r *Generic) Rand(src *sampling.Source) uint64 {
	return src.Uint64N(r.m)
}

func (r *Generic) PrimitiveRoot() (uint64, error) {
	return r.roots.primitive(func() (uint64, error) {
		// Z/mZ* need not be cyclic; primitiveRootSearch will simply fail
		// to find a generator of order m-1 when it isn't, which is the
		// correct observable behaviour (ErrInvalidModulus) rather than a
		// distinct error, since the caller cannot distinguish "m-1 isn't
		// fully factorable by our search" from "no generator exists".
		return primitiveRootSearch(r.m-1, r.m, r.Exp)
	})
}

func (r *Generic) NthRoot(n uint64) (uint64, error) {
	g, err := r.PrimitiveRoot()
	if err != nil {
		return 0, err
	}
	return r.roots.nth(n, func() (uint64, error) {
		return nthRootFromPrimitive(g, r.m-1, n, r.Exp)
	})
}

func (r *Generic) CodeLen(target uint64) uint64 {
	for n := target; ; n++ {
		if (r.m-1)%n == 0 {
			return n
		}
	}
}

func (r *Generic) IsQuadraticResidue(a uint64) (bool, error) {
	if r.m%2 == 0 {
		return false, ErrUnsupported
	}
	return arith.Jacobi(int64(a%r.m), r.m) == 1, nil
}

func (r *Generic) HadamardMul(dst, src []uint64) {
	hadamardMul(dst, src, r.Mul)
}

func (r *Generic) SIMDCapable() bool { return simdCapable }
