package poly

import "github.com/nthroot/ntt/field"

// Pool is a small set of scratch Vectors preallocated when the owning
// descriptor (rlwe's Encryptor, Decryptor, KeyGenerator) is
// constructed, not on every call. Get/Put pairs let a descriptor
// juggle scratch vectors without naming a field for each. The pool
// starts with the size given to NewPool and grows by one whenever Get
// finds it empty.
//
// Pool is not safe for concurrent use: goroutines must not share a
// descriptor that holds a Pool, and each needs its own.
type Pool struct {
	ring field.Ring
	n    int
	free []*Vector
}

// NewPool preallocates size scratch Vectors of length n over r.
func NewPool(r field.Ring, n, size int) *Pool {
	free := make([]*Vector, size)
	for i := range free {
		free[i] = NewVector(r, n)
	}
	return &Pool{ring: r, n: n, free: free}
}

// Get returns a zeroed scratch Vector, growing the pool by one if every
// existing scratch vector is currently checked out.
func (p *Pool) Get() *Vector {
	if n := len(p.free); n > 0 {
		v := p.free[n-1]
		p.free = p.free[:n-1]
		v.Zero()
		return v
	}
	return NewVector(p.ring, p.n)
}

// Put returns v to the pool for reuse. v must have been obtained from
// this Pool (or be of the same ring and length); passing a borrowed
// Vector is a programmer error since the pool must own what it hands
// back out.
func (p *Pool) Put(v *Vector) {
	if v.borrowed {
		panic("poly: Pool.Put called with a borrowed Vector")
	}
	if v.Len() != p.n {
		panic("poly: Pool.Put called with a Vector of the wrong length")
	}
	p.free = append(p.free, v)
}
