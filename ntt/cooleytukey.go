package ntt

import (
	"github.com/nthroot/ntt/field"
	"github.com/nthroot/ntt/poly"
)

// CooleyTukey is the general mixed-radix FFT for n = n1*n2, with no
// coprimality requirement on n1, n2 (unlike GoodThomas): it pays for
// that generality with a twiddle multiplication between the two inner
// passes.
type CooleyTukey struct {
	ring      field.Ring
	n, n1, n2 int
	inner1    Transformer // size n1, applied along the outer (k1) pass
	inner2    Transformer // size n2, applied along the inner (n2) pass
	twiddles  []uint64    // twiddles[n1idx*n2+k2] = omega^(n1idx*k2)
	invTw     []uint64
}

// NewCooleyTukey returns a CooleyTukey transformer of length n1*n2 over r.
func NewCooleyTukey(r field.Ring, n1, n2 int) (Transformer, error) {
	if n1 <= 0 || n2 <= 0 {
		return nil, ErrUnsupportedSize
	}
	n := n1 * n2

	inner1, err := newInnerTransform(r, n1)
	if err != nil {
		return nil, err
	}
	inner2, err := newInnerTransform(r, n2)
	if err != nil {
		return nil, err
	}

	omega, err := r.NthRoot(uint64(n))
	if err != nil {
		return nil, ErrNoSuchRoot
	}
	omegaInv, err := r.Inv(omega)
	if err != nil {
		return nil, ErrNoSuchRoot
	}

	t := &CooleyTukey{ring: r, n: n, n1: n1, n2: n2, inner1: inner1, inner2: inner2}
	t.twiddles = buildCTTwiddles(r, omega, n1, n2)
	t.invTw = buildCTTwiddles(r, omegaInv, n1, n2)
	return t, nil
}

func buildCTTwiddles(r field.Ring, root uint64, n1, n2 int) []uint64 {
	tw := make([]uint64, n1*n2)
	for i1 := 0; i1 < n1; i1++ {
		for k2 := 0; k2 < n2; k2++ {
			tw[i1*n2+k2] = r.Exp(root, uint64(i1*k2))
		}
	}
	return tw
}

func (t *CooleyTukey) N() int           { return t.n }
func (t *CooleyTukey) Ring() field.Ring { return t.ring }

func (t *CooleyTukey) FFT(v *poly.Vector) {
	checkLen(v, t.n)
	t.transform(v, false)
}

// IFFT needs no extra 1/n scaling of its own: the n1-point and n2-point
// inner IFFTs each already normalize by 1/n1 and 1/n2 respectively, and
// (1/n1)*(1/n2) = 1/n.
func (t *CooleyTukey) IFFT(v *poly.Vector) {
	checkLen(v, t.n)
	t.transform(v, true)
}

// transform implements the standard decimation-in-time mixed-radix
// decomposition: input index n = n2*n1width + n1, an inner n2-point
// DFT per row, a twiddle multiply, then an inner n1-point DFT per
// column, output index k = k1*n2 + k2.
func (t *CooleyTukey) transform(v *poly.Vector, inverse bool) {
	r := t.ring
	n1, n2 := t.n1, t.n2
	data := v.Data()

	inner1, inner2 := t.inner1, t.inner2
	tw := t.twiddles
	if inverse {
		inner1, inner2 = reversedTransform{t.inner1}, reversedTransform{t.inner2}
		tw = t.invTw
	}

	// Stage 1: n2-point transform along n2, for each fixed n1.
	stage1 := make([]uint64, n1*n2)
	row := poly.NewVector(r, n2)
	for i1 := 0; i1 < n1; i1++ {
		for n2idx := 0; n2idx < n2; n2idx++ {
			row.Set(n2idx, data[n2idx*n1+i1])
		}
		inner2.FFT(row)
		copy(stage1[i1*n2:(i1+1)*n2], row.Data())
	}

	// Twiddle multiply.
	for i1 := 0; i1 < n1; i1++ {
		for k2 := 0; k2 < n2; k2++ {
			idx := i1*n2 + k2
			stage1[idx] = r.Mul(stage1[idx], tw[idx])
		}
	}

	// Stage 2: n1-point transform along n1, for each fixed k2.
	col := poly.NewVector(r, n1)
	for k2 := 0; k2 < n2; k2++ {
		for i1 := 0; i1 < n1; i1++ {
			col.Set(i1, stage1[i1*n2+k2])
		}
		inner1.FFT(col)
		for k1 := 0; k1 < n1; k1++ {
			v.Set(k1*n2+k2, col.At(k1))
		}
	}
}

// reversedTransform adapts a Transformer's IFFT to satisfy the FFT-only
// call sites in transform above, since the mixed-radix decomposition is
// structurally identical for the inverse direction modulo which of
// FFT/IFFT the inner passes call and the twiddle table used.
type reversedTransform struct {
	Transformer
}

func (r reversedTransform) FFT(v *poly.Vector) { r.Transformer.IFFT(v) }
