package field

import (
	"github.com/nthroot/ntt/arith"
	"github.com/nthroot/ntt/utils/sampling"
)

// Prime is the field GF(p) for a prime p that fits in a uint64. Elements
// are represented by their least non-negative residue.
type Prime struct {
	p     uint64
	roots rootCache
}

// NewPrime returns GF(p), or ErrInvalidModulus if p is not prime. A
// field descriptor is built once and reused by every transform and
// cipher parameterized over it.
func NewPrime(p uint64) (Ring, error) {
	if p < 2 || !arith.IsPrime(p) {
		return nil, ErrInvalidModulus
	}
	return &Prime{p: p}, nil
}

func (f *Prime) Add(a, b uint64) uint64 {
	s := a + b
	if s >= f.p {
		s -= f.p
	}
	return s
}

func (f *Prime) Sub(a, b uint64) uint64 {
	if a >= b {
		return a - b
	}
	return f.p - (b - a)
}

func (f *Prime) Mul(a, b uint64) uint64 {
	return arith.MulMod(a, b, f.p)
}

func (f *Prime) Neg(a uint64) uint64 {
	if a == 0 {
		return 0
	}
	return f.p - a
}

func (f *Prime) Inv(a uint64) (uint64, error) {
	if a%f.p == 0 {
		return 0, ErrNotInvertible
	}
	return arith.ExpMod(a, f.p-2, f.p), nil
}

func (f *Prime) Div(a, b uint64) (uint64, error) {
	inv, err := f.Inv(b)
	if err != nil {
		return 0, err
	}
	return f.Mul(a, inv), nil
}

func (f *Prime) Exp(a, e uint64) uint64 {
	return arith.ExpMod(a, e, f.p)
}

func (f *Prime) EqToOne(a uint64) bool {
	return a%f.p == 1
}

func (f *Prime) Card() uint64         { return f.p }
func (f *Prime) CardMinusOne() uint64 { return f.p - 1 }

func (f *Prime) Rand(src *sampling.Source) uint64 {
	return src.Uint64N(f.p)
}

func (f *Prime) PrimitiveRoot() (uint64, error) {
	return f.roots.primitive(func() (uint64, error) {
		return primitiveRootSearch(f.p-1, f.p, f.Exp)
	})
}

func (f *Prime) NthRoot(n uint64) (uint64, error) {
	g, err := f.PrimitiveRoot()
	if err != nil {
		return 0, err
	}
	return f.roots.nth(n, func() (uint64, error) {
		return nthRootFromPrimitive(g, f.p-1, n, f.Exp)
	})
}

func (f *Prime) CodeLen(target uint64) uint64 {
	for n := target; ; n++ {
		if (f.p-1)%n == 0 {
			return n
		}
	}
}

func (f *Prime) IsQuadraticResidue(a uint64) (bool, error) {
	return arith.Jacobi(int64(a%f.p), f.p) == 1, nil
}

func (f *Prime) HadamardMul(dst, src []uint64) {
	hadamardMul(dst, src, f.Mul)
}

func (f *Prime) SIMDCapable() bool { return simdCapable }
