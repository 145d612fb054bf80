package ntt

import (
	"math/bits"

	"github.com/nthroot/ntt/arith"
	"github.com/nthroot/ntt/field"
	"github.com/nthroot/ntt/poly"
)

// Large composes an NTT over a modulus too large (or without a usable
// root of unity of its own) to transform directly, by decomposing it
// into a residue number system: each limb modulus gets its own prime
// field and its own inner transform (Radix2 when n is a power of two,
// Naive otherwise), and results are recombined coefficient-by-
// coefficient via Chinese Remainder reconstruction, the same residue
// decomposition a negacyclic RNS NTT stack builds on, here applied
// across independently chosen limb moduli instead of a fixed
// per-level RNS basis.
type Large struct {
	ring          field.Ring // field.Generic over the product of moduli
	n             int
	product       uint64
	moduli        []uint64
	subTransforms []Transformer
}

// NewLarge returns a transformer of length n whose coefficients are
// taken modulo the product of moduli. Each modulus must be prime and
// admit an nth root of unity; n need not be a power of two, though the
// per-limb transform falls back to the O(n^2) Naive kernel when it
// isn't. The product of the moduli must fit in a uint64: a larger
// product is rejected with ErrUnsupportedSize.
func NewLarge(moduli []uint64, n int) (Transformer, error) {
	if n <= 0 {
		return nil, ErrUnsupportedSize
	}
	if len(moduli) == 0 {
		return nil, ErrUnsupportedSize
	}

	subTransforms := make([]Transformer, len(moduli))
	product := uint64(1)
	for i, q := range moduli {
		r, err := field.NewPrime(q)
		if err != nil {
			return nil, err
		}
		t, err := newInnerTransform(r, n)
		if err != nil {
			return nil, err
		}
		subTransforms[i] = t

		hi, lo := bits.Mul64(product, q)
		if hi != 0 {
			return nil, ErrUnsupportedSize
		}
		product = lo
	}

	ring, err := field.NewGeneric(product)
	if err != nil {
		return nil, err
	}

	return &Large{
		ring:          ring,
		n:             n,
		product:       product,
		moduli:        append([]uint64(nil), moduli...),
		subTransforms: subTransforms,
	}, nil
}

func (t *Large) N() int           { return t.n }
func (t *Large) Ring() field.Ring { return t.ring }

func (t *Large) FFT(v *poly.Vector) {
	checkLen(v, t.n)
	t.transform(v, false)
}

func (t *Large) IFFT(v *poly.Vector) {
	checkLen(v, t.n)
	t.transform(v, true)
}

// transform projects v's coefficients into each limb's residue field,
// runs that limb's inner transform, and reconstructs the result back
// into v via CRT.
func (t *Large) transform(v *poly.Vector, inverse bool) {
	n := t.n
	src := make([]uint64, n)
	copy(src, v.Data())

	limbs := make([][]uint64, len(t.moduli))
	for i, q := range t.moduli {
		row := poly.NewVector(t.subTransforms[i].Ring(), n)
		for j := 0; j < n; j++ {
			row.Set(j, src[j]%q)
		}
		if inverse {
			t.subTransforms[i].IFFT(row)
		} else {
			t.subTransforms[i].FFT(row)
		}
		limbs[i] = row.Data()
	}

	residues := make([]uint64, len(t.moduli))
	for k := 0; k < n; k++ {
		for i := range t.moduli {
			residues[i] = limbs[i][k]
		}
		v.Set(k, arith.CRT(residues, t.moduli))
	}
}
