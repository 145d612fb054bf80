package ntt

import (
	"github.com/nthroot/ntt/field"
	"github.com/nthroot/ntt/poly"
)

// Naive is the O(n^2) DFT: dst[k] = sum_{j<n} src[j] * omega^(jk). It
// works for any ring that supplies an nth root of unity of exact order
// n, making it the fallback every other variant's test cross-checks
// against.
type Naive struct {
	ring     field.Ring
	n        int
	omega    uint64
	omegaInv uint64
	nInv     uint64
}

// NewNaive returns a Naive transformer of length n over r.
func NewNaive(r field.Ring, n int) (Transformer, error) {
	if n <= 0 {
		return nil, ErrUnsupportedSize
	}
	omega, err := r.NthRoot(uint64(n))
	if err != nil {
		return nil, ErrNoSuchRoot
	}
	omegaInv, err := r.Inv(omega)
	if err != nil {
		return nil, ErrNoSuchRoot
	}
	nInv, err := r.Inv(uint64(n) % r.Card())
	if err != nil {
		return nil, ErrNoSuchRoot
	}
	return &Naive{ring: r, n: n, omega: omega, omegaInv: omegaInv, nInv: nInv}, nil
}

func (t *Naive) N() int           { return t.n }
func (t *Naive) Ring() field.Ring { return t.ring }

func (t *Naive) FFT(v *poly.Vector) {
	checkLen(v, t.n)
	t.transform(v, t.omega)
}

func (t *Naive) IFFT(v *poly.Vector) {
	checkLen(v, t.n)
	t.transform(v, t.omegaInv)
	for i := 0; i < t.n; i++ {
		v.Set(i, t.ring.Mul(v.At(i), t.nInv))
	}
}

func (t *Naive) transform(v *poly.Vector, root uint64) {
	r := t.ring
	n := t.n
	src := make([]uint64, n)
	copy(src, v.Data())

	// Precompute powers of root up to n-1 once, then walk jk mod n via a
	// running index instead of repeated Exp calls.
	powers := make([]uint64, n)
	powers[0] = 1
	for i := 1; i < n; i++ {
		powers[i] = r.Mul(powers[i-1], root)
	}

	for k := 0; k < n; k++ {
		acc := uint64(0)
		idx := 0
		step := k % n
		for j := 0; j < n; j++ {
			acc = r.Add(acc, r.Mul(src[j], powers[idx]))
			idx += step
			if idx >= n {
				idx -= n
			}
		}
		v.Set(k, acc)
	}
}
