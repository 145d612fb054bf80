package ntt

import (
	"github.com/nthroot/ntt/field"
	"github.com/nthroot/ntt/poly"
)

// Additive is the Gao-Mateer additive FFT over GF(2^n): it evaluates a
// length-n vector of coefficients (n a power of two) at the n points
// {0, 1, ..., n-1}, viewed as the F2-subspace spanned by the standard
// basis {1, 2, 4, ..., n/2} under XOR addition.
//
// Each level peels off one Taylor expansion in the additive polynomial
// D(x) = x^2 - x (TaylorExpandT2), which splits f into two half-degree
// polynomials G0, G1 with f(x) = G0(D(x)) + x*G1(D(x)). Since D maps the
// current basis onto a subspace one dimension smaller, G0 and G1 need
// only be evaluated there, recursively; a basis-point rescale keeps the
// sub-basis's own low bit normalized to 1, so every level can reuse the
// same D(x) = x^2 - x divisor. This only holds in characteristic two, so
// Additive requires r to be a *field.Binary.
type Additive struct {
	ring  *field.Binary
	n     int
	basis []uint64
}

// NewAdditive returns an Additive transformer of length n over r. n must
// be a power of two, no greater than the field's cardinality, and r must
// be a GF(2^n) field (additivity of D(x) = x^2 - x, which the recursion
// depends on, only holds in characteristic two).
func NewAdditive(r field.Ring, n int) (Transformer, error) {
	if n <= 0 || n&(n-1) != 0 {
		return nil, ErrUnsupportedSize
	}
	if uint64(n) > r.Card() {
		return nil, ErrUnsupportedSize
	}
	bin, ok := r.(*field.Binary)
	if !ok {
		return nil, ErrUnsupportedSize
	}

	m := 0
	for 1<<uint(m) < n {
		m++
	}
	basis := make([]uint64, m)
	for i := range basis {
		basis[i] = uint64(1) << uint(i)
	}

	return &Additive{ring: bin, n: n, basis: basis}, nil
}

func (t *Additive) N() int           { return t.n }
func (t *Additive) Ring() field.Ring { return t.ring }

func (t *Additive) FFT(v *poly.Vector) {
	checkLen(v, t.n)
	out := additiveEval(t.ring, append([]uint64(nil), v.Data()...), t.basis)
	copy(v.Data(), out)
}

func (t *Additive) IFFT(v *poly.Vector) {
	checkLen(v, t.n)
	out := additiveInterpolate(t.ring, append([]uint64(nil), v.Data()...), t.basis)
	copy(v.Data(), out)
}

// additiveEval evaluates f (padded to len 2^len(basis)) at every point
// spanned by basis, returning values indexed by the standard bitmask
// enumeration of basis: out[k] = f(combo(basis, k)). basis[0] must be 1,
// an invariant the recursion itself maintains via rescale.
func additiveEval(r field.Ring, f []uint64, basis []uint64) []uint64 {
	m := len(basis)
	n := 1 << uint(m)
	f = padTo(f, n)

	if m == 0 {
		return []uint64{f[0]}
	}
	if m == 1 {
		return []uint64{f[0], r.Add(f[0], f[1])}
	}

	blocks := make([]uint64, n)
	TaylorExpandT2(r, blocks, f)
	t := n / 2
	g0 := make([]uint64, t)
	g1 := make([]uint64, t)
	for i := 0; i < t; i++ {
		g0[i] = blocks[2*i]
		g1[i] = blocks[2*i+1]
	}

	subBasis, p := nextBasis(r, basis)
	h0 := rescale(r, g0, p)
	h1 := rescale(r, g1, p)
	v0 := additiveEval(r, h0, subBasis)
	v1 := additiveEval(r, h1, subBasis)

	u := comboValues(r, basis[1:])

	out := make([]uint64, n)
	for j := 0; j < t; j++ {
		fu := r.Add(v0[j], r.Mul(u[j], v1[j]))
		out[2*j] = fu
		out[2*j+1] = r.Add(fu, v1[j])
	}
	return out
}

// additiveInterpolate is additiveEval's exact inverse: given vals = f
// evaluated over basis's span, it reconstructs f's coefficients.
func additiveInterpolate(r field.Ring, vals []uint64, basis []uint64) []uint64 {
	m := len(basis)
	n := 1 << uint(m)

	if m == 0 {
		return []uint64{vals[0]}
	}
	if m == 1 {
		return []uint64{vals[0], r.Add(vals[0], vals[1])}
	}

	t := n / 2
	u := comboValues(r, basis[1:])

	v0 := make([]uint64, t)
	v1 := make([]uint64, t)
	for j := 0; j < t; j++ {
		fu, fu1 := vals[2*j], vals[2*j+1]
		v1[j] = r.Add(fu1, fu)
		v0[j] = r.Add(fu, r.Mul(u[j], v1[j]))
	}

	subBasis, p := nextBasis(r, basis)
	h0 := additiveInterpolate(r, v0, subBasis)
	h1 := additiveInterpolate(r, v1, subBasis)
	g0 := unrescale(r, h0, p)
	g1 := unrescale(r, h1, p)

	blocks := make([]uint64, n)
	for i := 0; i < t; i++ {
		blocks[2*i] = g0[i]
		blocks[2*i+1] = g1[i]
	}
	out := make([]uint64, n)
	InvTaylorExpandT2(r, out, blocks)
	return out
}

// nextBasis computes D(x) = x^2 - x applied to every basis vector but
// the first, then normalizes the result so its own first vector is 1
// (dividing every vector by the first, p): this is what lets every
// recursion level reuse the same x^2 - x divisor via TaylorExpandT2.
// The returned p is D(basis[1]) before normalization, needed to rescale
// the coefficients passed down to (and back up from) the sub-problem.
func nextBasis(r field.Ring, basis []uint64) (sub []uint64, p uint64) {
	raw := make([]uint64, len(basis)-1)
	for i := 1; i < len(basis); i++ {
		b := basis[i]
		raw[i-1] = r.Add(r.Mul(b, b), b)
	}
	p = raw[0]
	sub = make([]uint64, len(raw))
	sub[0] = 1
	for i := 1; i < len(raw); i++ {
		sub[i], _ = r.Div(raw[i], p)
	}
	return sub, p
}

// comboValues returns, for every bitmask j in [0, 2^len(vecs)), the XOR
// combination of vecs selected by j's bits (LSB first).
func comboValues(r field.Ring, vecs []uint64) []uint64 {
	combos := []uint64{0}
	for _, b := range vecs {
		next := make([]uint64, len(combos)*2)
		copy(next, combos)
		for i, c := range combos {
			next[len(combos)+i] = r.Add(c, b)
		}
		combos = next
	}
	return combos
}

// rescale returns h with h[i] = g[i] * p^i, i.e. the coefficients of
// H(z) = G(p*z).
func rescale(r field.Ring, g []uint64, p uint64) []uint64 {
	out := make([]uint64, len(g))
	pw := uint64(1)
	for i := range g {
		out[i] = r.Mul(g[i], pw)
		pw = r.Mul(pw, p)
	}
	return out
}

// unrescale reverses rescale: g[i] = h[i] / p^i.
func unrescale(r field.Ring, h []uint64, p uint64) []uint64 {
	pInv, err := r.Inv(p)
	if err != nil {
		panic("ntt: additive FFT basis pivot not invertible")
	}
	return rescale(r, h, pInv)
}
