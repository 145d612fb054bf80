package ntt

import (
	"github.com/nthroot/ntt/field"
	"github.com/nthroot/ntt/poly"
)

// size2 is the base-case n=2 kernel: a single butterfly, for length-2
// vectors. The composite transforms do not use it (their inner
// transforms are Radix2 or Naive). It never fails to construct since every nonzero
// ring has 1 as a (trivial) square root of unity's inverse at n=2: the
// only root needed is -1.
type size2 struct {
	ring field.Ring
}

// NewSize2 returns a transformer of length 2 over r. Unlike the other
// constructors it cannot fail: r.Neg(1) always exists.
func NewSize2(r field.Ring) Transformer {
	return size2{ring: r}
}

func (t size2) N() int           { return 2 }
func (t size2) Ring() field.Ring { return t.ring }

func (t size2) FFT(v *poly.Vector) {
	checkLen(v, 2)
	t.butterfly(v)
}

func (t size2) IFFT(v *poly.Vector) {
	checkLen(v, 2)
	t.butterfly(v)
	r := t.ring
	half, err := r.Inv(2 % r.Card())
	if err != nil {
		half = 1
	}
	v.Set(0, r.Mul(v.At(0), half))
	v.Set(1, r.Mul(v.At(1), half))
}

func (t size2) butterfly(v *poly.Vector) {
	r := t.ring
	a, b := v.At(0), v.At(1)
	v.Set(0, r.Add(a, b))
	v.Set(1, r.Sub(a, b))
}

// single is the base-case n=1 kernel: the identity, since a constant's
// transform is itself.
type single struct {
	ring field.Ring
}

// NewSingle returns a transformer of length 1 over r.
func NewSingle(r field.Ring) Transformer {
	return single{ring: r}
}

func (t single) N() int              { return 1 }
func (t single) Ring() field.Ring    { return t.ring }
func (t single) FFT(v *poly.Vector)  { checkLen(v, 1) }
func (t single) IFFT(v *poly.Vector) { checkLen(v, 1) }
