// Package poly implements the vector, buffer and sparse-polynomial
// containers that ntt and rlwe operate on, all backed by a field.Ring
// descriptor that defines how their uint64 coefficients add and
// multiply.
package poly

import (
	"fmt"

	"github.com/nthroot/ntt/field"
)

// Vector is a fixed-length sequence of ring elements. It is either
// owned, meaning it allocated its own backing array and Release returns
// it to nil, or borrowed, meaning it wraps a caller-provided slice and
// never reallocates or clears it — mirroring the distinction the
// original C++ "new_mem" flag drew between a vector that owns its
// storage and one that aliases someone else's.
type Vector struct {
	ring     field.Ring
	data     []uint64
	borrowed bool
}

// NewVector allocates a new, owned, zero-initialized Vector of length n.
func NewVector(r field.Ring, n int) *Vector {
	if n <= 0 {
		panic("poly: NewVector requires n > 0")
	}
	return &Vector{ring: r, data: make([]uint64, n)}
}

// NewVectorFromSlice wraps data as a borrowed Vector: it is never copied
// or reallocated, and mutations through the Vector are visible in data.
func NewVectorFromSlice(r field.Ring, data []uint64) *Vector {
	return &Vector{ring: r, data: data, borrowed: true}
}

// Len returns the vector's length.
func (v *Vector) Len() int { return len(v.data) }

// Ring returns the field descriptor the vector's coefficients belong to.
func (v *Vector) Ring() field.Ring { return v.ring }

// Data exposes the backing slice directly for bulk operations (NTT
// kernels, Hadamard products); callers must not grow or shrink it.
func (v *Vector) Data() []uint64 { return v.data }

// At returns the i-th coefficient.
func (v *Vector) At(i int) uint64 { return v.data[i] }

// Set writes the i-th coefficient.
func (v *Vector) Set(i int, x uint64) { v.data[i] = x }

// Zero resets every coefficient to zero in place.
func (v *Vector) Zero() {
	for i := range v.data {
		v.data[i] = 0
	}
}

// Clone returns a new, owned Vector with a copy of v's coefficients,
// regardless of whether v itself is owned or borrowed.
func (v *Vector) Clone() *Vector {
	out := make([]uint64, len(v.data))
	copy(out, v.data) // copy(dst, src): Go's builtin takes dst first, src second.
	return &Vector{ring: v.ring, data: out}
}

// CopyFrom overwrites v's coefficients with src's. Both vectors must
// have the same length and ring.
func (v *Vector) CopyFrom(src *Vector) {
	if len(v.data) != len(src.data) {
		panic(fmt.Sprintf("poly: CopyFrom length mismatch: %d != %d", len(v.data), len(src.data)))
	}
	copy(v.data, src.data)
}

// Release clears an owned Vector's backing storage. It is a no-op on a
// borrowed Vector, since a borrowed Vector never owned the memory it
// wraps. Go's GC reclaims the storage regardless; Release makes the end
// of an owned Vector's lifetime explicit at the call site rather than
// implicit in a finalizer. Pool does not call it.
func (v *Vector) Release() {
	if !v.borrowed {
		v.data = nil
	}
}

// Add sets dst[i] = a[i] + b[i] for every i. a, b and dst may alias.
func Add(r field.Ring, dst, a, b *Vector) {
	requireSameLen(a, b, dst)
	for i := range dst.data {
		dst.data[i] = r.Add(a.data[i], b.data[i])
	}
}

// Sub sets dst[i] = a[i] - b[i] for every i.
func Sub(r field.Ring, dst, a, b *Vector) {
	requireSameLen(a, b, dst)
	for i := range dst.data {
		dst.data[i] = r.Sub(a.data[i], b.data[i])
	}
}

// ScalarMul sets dst[i] = a[i] * s for every i.
func ScalarMul(r field.Ring, dst, a *Vector, s uint64) {
	requireSameLen(a, dst)
	for i := range dst.data {
		dst.data[i] = r.Mul(a.data[i], s)
	}
}

// HadamardMul sets dst[i] = a[i] * b[i] for every i, dispatching
// through the ring's own HadamardMul (a scalar loop).
func HadamardMul(r field.Ring, dst, a, b *Vector) {
	requireSameLen(a, b, dst)
	copy(dst.data, a.data)
	r.HadamardMul(dst.data, b.data)
}

// ShiftedAdd sets dst[i] = a[i] + b[(i+offset) mod n], a cyclic
// shifted-add building block for vector-level code that needs a
// rotated combine without materializing the rotation separately.
func ShiftedAdd(r field.Ring, dst, a, b *Vector, offset int) {
	requireSameLen(a, b, dst)
	n := len(dst.data)
	for i := 0; i < n; i++ {
		dst.data[i] = r.Add(a.data[i], b.data[(i+offset)%n])
	}
}

// MulBeta sets dst[i] = a[i] * beta^i for i >= 1 and dst[0] = a[0],
// the per-coefficient twist a negacyclic convolution folds in before
// and after an ordinary cyclic transform.
func MulBeta(r field.Ring, dst, a *Vector, beta uint64) {
	requireSameLen(a, dst)
	pw := uint64(1)
	for i := range dst.data {
		dst.data[i] = r.Mul(a.data[i], pw)
		pw = r.Mul(pw, beta)
	}
}

// CopyWithPad copies src into dst, zero-filling any remaining entries
// if dst is longer than src, or truncating if dst is shorter.
func CopyWithPad(dst, src *Vector) {
	n := copy(dst.data, src.data)
	for i := n; i < len(dst.data); i++ {
		dst.data[i] = 0
	}
}

func requireSameLen(vs ...*Vector) {
	if len(vs) == 0 {
		return
	}
	n := len(vs[0].data)
	for _, v := range vs[1:] {
		if len(v.data) != n {
			panic("poly: vector length mismatch")
		}
	}
}
