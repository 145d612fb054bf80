// Package field implements the three ring/field descriptors every
// transform and cipher in this module is parameterized over: a prime
// field GF(p), a generic ring Z/mZ and a binary extension field GF(2^n).
// Each caches its primitive root, searched for on the first call that
// needs it, and every nth root already derived from it, so that later
// lookups are a cache hit rather than a repeated search. The
// factorization of the group order is computed inside that search and
// is not kept.
package field

import (
	"fmt"
	"sync"

	"github.com/klauspost/cpuid/v2"

	"github.com/nthroot/ntt/arith"
	"github.com/nthroot/ntt/utils/sampling"
)

// Error is a sentinel error enumeration returned by field construction
// and lookup failures, comparable with errors.Is/==.
type Error uint8

const (
	// ErrInvalidModulus is returned when a field is constructed over a
	// modulus that does not satisfy the field's algebraic requirements
	// (e.g. NewPrime given a composite, NewBinary given a degree that
	// admits no irreducible polynomial search success).
	ErrInvalidModulus Error = iota + 1
	// ErrNotInvertible is returned by Inv/Div when the argument has no
	// multiplicative inverse (zero, or not coprime to a composite modulus).
	ErrNotInvertible
	// ErrNoSuchRoot is returned when no root of unity of the requested
	// order exists in the field's multiplicative group.
	ErrNoSuchRoot
	// ErrUnsupported is returned when an operation is not defined for a
	// ring (e.g. IsQuadraticResidue over an even modulus).
	ErrUnsupported
)

func (e Error) Error() string {
	switch e {
	case ErrInvalidModulus:
		return "field: invalid modulus"
	case ErrNotInvertible:
		return "field: element is not invertible"
	case ErrNoSuchRoot:
		return "field: no root of unity of the requested order"
	case ErrUnsupported:
		return "field: operation not supported by this ring"
	default:
		return fmt.Sprintf("field: unknown error (%d)", uint8(e))
	}
}

// Ring is the common interface implemented by every field/ring
// descriptor. Implementations are safe for concurrent use: all state
// mutated after construction (cached roots) is guarded internally.
type Ring interface {
	// Add, Sub, Mul, Neg are total: every uint64 in [0, Card()) maps to
	// another element of [0, Card()).
	Add(a, b uint64) uint64
	Sub(a, b uint64) uint64
	Mul(a, b uint64) uint64
	Neg(a uint64) uint64

	// Inv returns the multiplicative inverse of a, or ErrNotInvertible.
	Inv(a uint64) (uint64, error)
	// Div returns a * Inv(b), or the error Inv(b) would have returned.
	Div(a, b uint64) (uint64, error)
	// Exp returns a^e computed within the ring.
	Exp(a, e uint64) uint64
	// EqToOne reports whether a is the multiplicative identity.
	EqToOne(a uint64) bool

	// Card returns the cardinality of the ring.
	Card() uint64
	// CardMinusOne returns Card()-1, the order of the full multiplicative
	// group for a field; exposed separately since it is itself a useful
	// quantity to factor (every primitive-root and nth-root search keys
	// off it, or off 2^n-1 for a binary field sharing the same machinery).
	CardMinusOne() uint64

	// Rand returns a uniformly distributed element, drawn from src.
	Rand(src *sampling.Source) uint64

	// PrimitiveRoot returns a generator of the ring's full multiplicative
	// group, searching for and caching one on first call.
	PrimitiveRoot() (uint64, error)
	// NthRoot returns an element of multiplicative order exactly n, or
	// ErrNoSuchRoot if n does not divide the multiplicative group order.
	NthRoot(n uint64) (uint64, error)
	// CodeLen returns the smallest n >= target such that the ring admits
	// an n-th root of unity, i.e. the next usable transform length.
	CodeLen(target uint64) uint64

	// IsQuadraticResidue reports whether a is a square in the ring, or
	// ErrUnsupported if the ring does not define the notion.
	IsQuadraticResidue(a uint64) (bool, error)

	// HadamardMul computes dst[i] = Mul(dst[i], src[i]) for every i with
	// a scalar loop; no vectorized path exists, whatever SIMDCapable
	// reports.
	HadamardMul(dst, src []uint64)
	// SIMDCapable reports whether the host supports AVX2. HadamardMul
	// does not consult it. Exposed for diagnostics/benchmarks only.
	SIMDCapable() bool
}

// simdCapable is probed once at package init time, mirroring the
// teacher's pattern of a single cpuid feature probe shared by every
// descriptor rather than re-detecting per instance.
var simdCapable = cpuid.CPU.Supports(cpuid.AVX2)

// primitiveRootSearch returns the smallest g in [2, card) whose order
// under exp is exactly groupOrder, by rejecting any g for which
// g^(groupOrder/p) == 1 for some prime factor p of groupOrder. This is
// the shared search every Ring implementation's PrimitiveRoot delegates
// to, parameterized only by its own Exp and the group it searches.
func primitiveRootSearch(groupOrder, card uint64, exp func(base, e uint64) uint64) (uint64, error) {
	if groupOrder == 0 {
		return 0, ErrInvalidModulus
	}
	factors := arith.FactorPrime(groupOrder)
	for g := uint64(2); g < card; g++ {
		candidate := true
		for _, p := range factors {
			if exp(g, groupOrder/p) == 1 {
				candidate = false
				break
			}
		}
		if candidate {
			return g, nil
		}
	}
	return 0, ErrInvalidModulus
}

// nthRootFromPrimitive derives a root of order n from a cached primitive
// root of order groupOrder, the shared tail of every Ring.NthRoot.
func nthRootFromPrimitive(primitiveRoot, groupOrder, n uint64, exp func(base, e uint64) uint64) (uint64, error) {
	if n == 0 || groupOrder%n != 0 {
		return 0, ErrNoSuchRoot
	}
	return exp(primitiveRoot, groupOrder/n), nil
}

// rootCache is the sync.Map-guarded memo every descriptor embeds for its
// primitive root and its already-derived nth roots, since a ring
// descriptor is shared read-only across goroutines (spec's concurrency
// model, §5) once constructed.
type rootCache struct {
	mu            sync.Mutex
	primitiveRoot uint64
	havePrimitive bool
	nthRoots      sync.Map // n uint64 -> uint64
}

func (c *rootCache) primitive(search func() (uint64, error)) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.havePrimitive {
		return c.primitiveRoot, nil
	}
	g, err := search()
	if err != nil {
		return 0, err
	}
	c.primitiveRoot = g
	c.havePrimitive = true
	return g, nil
}

func (c *rootCache) nth(n uint64, derive func() (uint64, error)) (uint64, error) {
	if v, ok := c.nthRoots.Load(n); ok {
		return v.(uint64), nil
	}
	root, err := derive()
	if err != nil {
		return 0, err
	}
	c.nthRoots.Store(n, root)
	return root, nil
}
