package field

import (
	"math/bits"

	"github.com/nthroot/ntt/arith"
)

// clmul returns the carryless (GF(2)[x]) product of a and b. Binary is
// restricted to degree n <= 32 (see NewBinary), so the product of two
// degree-(<n) polynomials has degree <= 2n-2 <= 62 and always fits in a
// single uint64 — no 128-bit intermediate is needed.
func clmul(a, b uint64) uint64 {
	var r uint64
	for b != 0 {
		if b&1 == 1 {
			r ^= a
		}
		a <<= 1
		b >>= 1
	}
	return r
}

// pdeg returns the degree of polynomial p (-1 for the zero polynomial).
func pdeg(p uint64) int {
	if p == 0 {
		return -1
	}
	return bits.Len64(p) - 1
}

// preduce reduces x modulo mod, where mod is a full polynomial of
// degree n (bit n set). x may have degree up to 2n-2.
func preduce(x, mod uint64, n int) uint64 {
	for d := pdeg(x); d >= n; d = pdeg(x) {
		x ^= mod << (d - n)
	}
	return x
}

// pmod returns a mod b for polynomials over GF(2), b != 0.
func pmod(a, b uint64) uint64 {
	db := pdeg(b)
	for da := pdeg(a); da >= db && a != 0; da = pdeg(a) {
		a ^= b << (da - db)
	}
	return a
}

// pgcd returns the monic GF(2)[x] gcd of a and b.
func pgcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, pmod(a, b)
	}
	return a
}

// pmulmod returns a*b mod mod, where mod is a full polynomial of degree n.
func pmulmod(a, b, mod uint64, n int) uint64 {
	return preduce(clmul(a, b), mod, n)
}

// ppowmod returns base^e mod mod within GF(2)[x]/(mod), mod a full
// polynomial of degree n.
func ppowmod(base, e uint64, mod uint64, n int) uint64 {
	result := uint64(1)
	base = preduce(base, mod, n)
	for e > 0 {
		if e&1 == 1 {
			result = pmulmod(result, base, mod, n)
		}
		base = pmulmod(base, base, mod, n)
		e >>= 1
	}
	return result
}

// isIrreducible reports whether poly (a full polynomial of degree n,
// bit n set) is irreducible over GF(2), using Ben-Or's test: poly is
// irreducible iff x^(2^n) == x (mod poly) and, for every prime factor r
// of n, gcd(x^(2^(n/r)) - x, poly) == 1.
func isIrreducible(poly uint64, n int) bool {
	const x = uint64(2) // the polynomial "x"

	xPow2N := x
	for i := 0; i < n; i++ {
		xPow2N = pmulmod(xPow2N, xPow2N, poly, n)
	}
	if xPow2N != x {
		return false
	}

	if n == 1 {
		return true
	}
	for _, r := range arith.FactorPrime(uint64(n)) {
		m := n / int(r)
		t := x
		for i := 0; i < m; i++ {
			t = pmulmod(t, t, poly, n)
		}
		if pdeg(pgcd(poly, t^x)) != 0 {
			return false
		}
	}
	return true
}

// findIrreducible returns the smallest-coefficient monic irreducible
// polynomial of degree n over GF(2), as a full polynomial with bit n set.
// Density of irreducible polynomials of degree n is about 1/n, so this
// terminates quickly in practice for every n this module supports.
func findIrreducible(n int) (uint64, bool) {
	if n < 1 || n > 32 {
		return 0, false
	}
	top := uint64(1) << n
	for low := uint64(1); low < top; low += 2 { // constant term must be 1
		poly := top | low
		if isIrreducible(poly, n) {
			return poly, true
		}
	}
	return 0, false
}
