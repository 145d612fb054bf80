package field

import (
	"github.com/nthroot/ntt/arith"
	"github.com/nthroot/ntt/utils/sampling"
)

// logTableLimit is the largest degree for which Binary builds a full
// discrete-log/antilog table to accelerate Mul/Inv; above it, every
// multiplication falls back to the direct carryless-multiply-and-reduce
// path. 2^16 entries is a trivial amount of memory and covers every
// concrete scenario this module is exercised against (GF(2^16)).
const logTableLimit = 16

// Binary is the extension field GF(2^n) for 1 <= n <= 32, represented
// as polynomials over GF(2) of degree < n packed into the low n bits of
// a uint64, reduced modulo a monic irreducible polynomial discovered at
// construction time (see findIrreducible).
type Binary struct {
	n         int
	card      uint64 // 2^n
	poly      uint64 // full irreducible polynomial, bit n set
	roots     rootCache
	useTables bool
	log       []uint64 // element -> discrete log base the field's canonical generator
	antilog   []uint64 // discrete log -> element
}

// NewBinary returns GF(2^n) for 1 <= n <= 32.
func NewBinary(n int) (Ring, error) {
	if n < 1 || n > 32 {
		return nil, ErrInvalidModulus
	}
	poly, ok := findIrreducible(n)
	if !ok {
		return nil, ErrInvalidModulus
	}
	f := &Binary{n: n, card: uint64(1) << n, poly: poly}
	if n <= logTableLimit {
		f.buildTables()
	}
	return f, nil
}

// buildTables walks the multiplicative group generated by the field's
// element "2" (the polynomial x) computing log/antilog tables. poly is
// irreducible, so GF(2^n)* is cyclic of order card-1, but x is not
// guaranteed to generate it; this is verified, and when it does not the
// tables are built from a searched primitive root instead.
func (f *Binary) buildTables() {
	card := f.card
	order := card - 1

	gen := uint64(2)
	if !f.hasFullOrder(gen, order) {
		g, err := primitiveRootSearch(order, card, f.Exp)
		if err != nil {
			f.useTables = false
			return
		}
		gen = g
	}

	log := make([]uint64, card)
	antilog := make([]uint64, order)
	x := uint64(1)
	for i := uint64(0); i < order; i++ {
		antilog[i] = x
		log[x] = i
		x = pmulmod(x, gen, f.poly, f.n)
	}

	f.log, f.antilog, f.useTables = log, antilog, true
}

func (f *Binary) hasFullOrder(g, order uint64) bool {
	if order == 0 {
		return true
	}
	for _, p := range arith.FactorPrime(order) {
		if f.Exp(g, order/p) == 1 {
			return false
		}
	}
	return true
}

func (f *Binary) Add(a, b uint64) uint64 { return a ^ b }
func (f *Binary) Sub(a, b uint64) uint64 { return a ^ b }
func (f *Binary) Neg(a uint64) uint64    { return a }

func (f *Binary) Mul(a, b uint64) uint64 {
	if f.useTables {
		if a == 0 || b == 0 {
			return 0
		}
		sum := f.log[a] + f.log[b]
		order := f.card - 1
		if sum >= order {
			sum -= order
		}
		return f.antilog[sum]
	}
	return pmulmod(a, b, f.poly, f.n)
}

func (f *Binary) Inv(a uint64) (uint64, error) {
	if a == 0 {
		return 0, ErrNotInvertible
	}
	if f.useTables {
		order := f.card - 1
		idx := order - f.log[a]
		if idx == order {
			idx = 0
		}
		return f.antilog[idx], nil
	}
	return ppowmod(a, f.card-2, f.poly, f.n), nil
}

func (f *Binary) Div(a, b uint64) (uint64, error) {
	inv, err := f.Inv(b)
	if err != nil {
		return 0, err
	}
	return f.Mul(a, inv), nil
}

func (f *Binary) Exp(a, e uint64) uint64 {
	return ppowmod(a, e, f.poly, f.n)
}

func (f *Binary) EqToOne(a uint64) bool { return a == 1 }

func (f *Binary) Card() uint64         { return f.card }
func (f *Binary) CardMinusOne() uint64 { return f.card - 1 }

func (f *Binary) Rand(src *sampling.Source) uint64 {
	return src.Uint64N(f.card)
}

func (f *Binary) PrimitiveRoot() (uint64, error) {
	return f.roots.primitive(func() (uint64, error) {
		return primitiveRootSearch(f.card-1, f.card, f.Exp)
	})
}

func (f *Binary) NthRoot(n uint64) (uint64, error) {
	g, err := f.PrimitiveRoot()
	if err != nil {
		return 0, err
	}
	return f.roots.nth(n, func() (uint64, error) {
		return nthRootFromPrimitive(g, f.card-1, n, f.Exp)
	})
}

func (f *Binary) CodeLen(target uint64) uint64 {
	order := f.card - 1
	for n := target; ; n++ {
		if order%n == 0 {
			return n
		}
	}
}

// IsQuadraticResidue always reports true: squaring is the Frobenius
// automorphism x -> x^2 over a field of characteristic 2, a bijection,
// so every element of GF(2^n) is a square.
func (f *Binary) IsQuadraticResidue(a uint64) (bool, error) {
	return true, nil
}

func (f *Binary) HadamardMul(dst, src []uint64) {
	hadamardMul(dst, src, f.Mul)
}

func (f *Binary) SIMDCapable() bool { return simdCapable }
