package ntt

import "github.com/nthroot/ntt/field"

// TaylorExpand rewrites src (coefficients of a polynomial of degree <
// len(src)) in base D(x) = x^t - x: it finds g_0, ..., g_{k-1}, each of
// degree < t, such that f(x) = sum_i g_i(x) * D(x)^i, by repeated
// polynomial division by D. dst must have length ceil(len(src)/t)*t;
// the g_i are written into it concatenated, g_0 first.
//
// This is the building block the additive (Gao-Mateer) FFT's recursive
// decomposition uses: D is additive (D(x+y) = D(x)+D(y)) whenever t is
// a power of two over a characteristic-two field, which is what lets an
// evaluation at a subspace's points split recursively.
func TaylorExpand(r field.Ring, dst, src []uint64, t int) {
	if t < 2 {
		panic("ntt: TaylorExpand requires t >= 2")
	}
	n := len(src)
	numBlocks := (n + t - 1) / t
	if len(dst) != numBlocks*t {
		panic("ntt: TaylorExpand dst has the wrong length")
	}

	d := divisorXtMinusX(r, t)
	rem := append([]uint64(nil), src...)
	for i := 0; i < numBlocks; i++ {
		q, remainder := polyDivMod(r, rem, d)
		copy(dst[i*t:(i+1)*t], padTo(remainder, t))
		rem = q
	}
}

// InvTaylorExpand exactly reverses TaylorExpand: given the concatenated
// g_i (length a multiple of t), it reconstructs f via Horner evaluation
// in D(x) = x^t - x, writing the result (length n) into dst.
func InvTaylorExpand(r field.Ring, dst, coeffs []uint64, t int) {
	if t < 2 {
		panic("ntt: InvTaylorExpand requires t >= 2")
	}
	numBlocks := len(coeffs) / t
	if numBlocks == 0 {
		panic("ntt: InvTaylorExpand requires at least one block")
	}

	d := divisorXtMinusX(r, t)
	acc := append([]uint64(nil), coeffs[(numBlocks-1)*t:numBlocks*t]...)
	for i := numBlocks - 2; i >= 0; i-- {
		acc = polyMul(r, acc, d)
		acc = polyAdd(r, acc, coeffs[i*t:(i+1)*t])
	}
	copy(dst, padTo(acc, len(dst)))
}

// TaylorExpandT2 is the t=2 specialisation of TaylorExpand, the hot
// path the additive FFT's radix-2 recursion uses.
func TaylorExpandT2(r field.Ring, dst, src []uint64) {
	TaylorExpand(r, dst, src, 2)
}

// InvTaylorExpandT2 is the t=2 specialisation of InvTaylorExpand.
func InvTaylorExpandT2(r field.Ring, dst, coeffs []uint64) {
	InvTaylorExpand(r, dst, coeffs, 2)
}

// divisorXtMinusX returns the dense coefficient vector of D(x) = x^t -
// x, monic of degree t: D[t] = 1, D[1] = -1, every other coefficient 0.
func divisorXtMinusX(r field.Ring, t int) []uint64 {
	d := make([]uint64, t+1)
	d[t] = 1
	d[1] = r.Neg(1)
	return d
}

// polyDivMod performs schoolbook polynomial long division of f by the
// monic divisor d (d's leading coefficient, at index len(d)-1, must be
// 1), returning quotient and remainder.
func polyDivMod(r field.Ring, f, d []uint64) (q, rem []uint64) {
	degD := len(d) - 1
	rem = append([]uint64(nil), f...)
	degF := degreeOf(rem)

	if degF < degD {
		return []uint64{0}, padTo(rem, degD)
	}

	q = make([]uint64, degF-degD+1)
	for degF >= degD {
		factor := rem[degF]
		if factor != 0 {
			shift := degF - degD
			q[shift] = factor
			for i := 0; i <= degD; i++ {
				rem[shift+i] = r.Sub(rem[shift+i], r.Mul(factor, d[i]))
			}
		}
		degF--
		for degF >= 0 && degF < len(rem) && rem[degF] == 0 {
			degF--
		}
	}
	return q, padTo(rem[:min(len(rem), degD+1)], degD)
}

// polyMul returns the convolution of a and b over r.
func polyMul(r field.Ring, a, b []uint64) []uint64 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	out := make([]uint64, len(a)+len(b)-1)
	for i, ai := range a {
		if ai == 0 {
			continue
		}
		for j, bj := range b {
			out[i+j] = r.Add(out[i+j], r.Mul(ai, bj))
		}
	}
	return out
}

// polyAdd returns a+b coefficient-wise, zero-padding the shorter slice.
func polyAdd(r field.Ring, a, b []uint64) []uint64 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]uint64, n)
	for i := 0; i < n; i++ {
		var x, y uint64
		if i < len(a) {
			x = a[i]
		}
		if i < len(b) {
			y = b[i]
		}
		out[i] = r.Add(x, y)
	}
	return out
}

func degreeOf(p []uint64) int {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] != 0 {
			return i
		}
	}
	return 0
}

func padTo(p []uint64, n int) []uint64 {
	if len(p) >= n {
		return p[:n]
	}
	out := make([]uint64, n)
	copy(out, p)
	return out
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
