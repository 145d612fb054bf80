// Package arith implements the scalar number-theoretic primitives shared
// by every ring, field and transform in this module: gcd, modular
// exponentiation, Jacobi symbols, primality testing, Chinese Remainder
// reconstruction and the small bit-twiddling helpers (isqrt, ceil2, log2).
//
// Every failure in this package is a programmer error (non-coprime CRT
// moduli, a zero argument to Log2, …): functions panic instead
// of returning an error.
package arith

import (
	"fmt"
	"math/big"
	"math/bits"

	"golang.org/x/exp/slices"
)

// GCD returns the greatest common divisor of a and b.
func GCD(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// ExtendedGCD returns (g, u, v) such that a*u + b*v = g = gcd(a, b).
// u and v are signed and may be negative; they are returned widened to
// int64 since the module never targets moduli beyond 63 bits.
func ExtendedGCD(a, b uint64) (g uint64, u, v int64) {
	oldR, r := int64(a), int64(b)
	oldS, s := int64(1), int64(0)
	oldT, t := int64(0), int64(1)

	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
		oldT, t = t, oldT-q*t
	}

	if oldR < 0 {
		oldR, oldS, oldT = -oldR, -oldS, -oldT
	}

	return uint64(oldR), oldS, oldT
}

// ExpMod computes base^exponent mod modulus by square-and-multiply,
// using a double-width intermediate product so that modulus may use
// the full 64-bit range.
func ExpMod(base, exponent, modulus uint64) uint64 {
	if modulus == 0 {
		panic("arith: ExpMod with zero modulus")
	}
	if modulus == 1 {
		return 0
	}

	result := uint64(1) % modulus
	base %= modulus

	for exponent > 0 {
		if exponent&1 == 1 {
			result = MulMod(result, base, modulus)
		}
		base = MulMod(base, base, modulus)
		exponent >>= 1
	}

	return result
}

// Exp computes base^exponent without any modular reduction. The caller
// is responsible for ensuring the result does not overflow uint64; Exp
// panics if an intermediate product does.
func Exp(base, exponent uint64) uint64 {
	result := uint64(1)
	for exponent > 0 {
		if exponent&1 == 1 {
			hi, lo := bits.Mul64(result, base)
			if hi != 0 {
				panic(fmt.Sprintf("arith: Exp(%d, %d) overflows uint64", base, exponent))
			}
			result = lo
		}
		if exponent > 1 {
			hi, lo := bits.Mul64(base, base)
			if hi != 0 && exponent>>1 != 0 {
				panic(fmt.Sprintf("arith: Exp(%d, %d) overflows uint64", base, exponent))
			}
			base = lo
		}
		exponent >>= 1
	}
	return result
}

// MulMod computes a*b mod m using the double-width product, without
// requiring Montgomery or Barrett constants. It is the multiplication of
// field.Prime and field.Generic, so every transform over those rings
// runs through it; a product that does not fit in 64 bits falls back to
// math/big.
func MulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi == 0 {
		return lo % m
	}
	var x, y big.Int
	x.SetUint64(a)
	y.SetUint64(b)
	x.Mul(&x, &y)
	x.Mod(&x, new(big.Int).SetUint64(m))
	return x.Uint64()
}

// Jacobi returns the Jacobi symbol (a/n) for odd positive n: -1, 0 or 1.
func Jacobi(a int64, n uint64) int {
	if n == 0 || n%2 == 0 {
		panic("arith: Jacobi requires an odd positive modulus")
	}

	aa := a
	nn := int64(n)
	if aa < 0 {
		aa = aa%nn + nn
	}

	result := 1
	for aa != 0 {
		for aa%2 == 0 {
			aa /= 2
			r := nn % 8
			if r == 3 || r == 5 {
				result = -result
			}
		}
		aa, nn = nn, aa
		if aa%4 == 3 && nn%4 == 3 {
			result = -result
		}
		aa %= nn
	}

	if nn == 1 {
		return result
	}
	return 0
}

// millerRabinWitnesses are sufficient to deterministically decide
// primality for every n < 3,317,044,064,679,887,385,961,981, which
// covers the entire uint64 range this module operates on.
var millerRabinWitnesses = []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// IsPrime reports whether n is prime using deterministic Miller-Rabin
// with a fixed witness set valid over the whole uint64 range.
func IsPrime(n uint64) bool {
	switch {
	case n < 2:
		return false
	case n < 4:
		return true
	case n%2 == 0:
		return false
	}

	d := n - 1
	r := 0
	for d%2 == 0 {
		d /= 2
		r++
	}

	for _, a := range millerRabinWitnesses {
		if a%n == 0 {
			continue
		}
		if !millerRabinRound(n, d, r, a) {
			return false
		}
	}
	return true
}

func millerRabinRound(n, d uint64, r int, a uint64) bool {
	x := ExpMod(a, d, n)
	if x == 1 || x == n-1 {
		return true
	}
	for i := 0; i < r-1; i++ {
		x = MulMod(x, x, n)
		if x == n-1 {
			return true
		}
	}
	return false
}

// FactorPrime returns the distinct prime factors of n. Trial division
// handles every factor up to 2^20 (the overwhelming majority of moduli
// this module constructs, whose q-1 is smooth by design); any remaining
// cofactor larger than 1 is then tested for primality and, if composite,
// split with Pollard's rho. This two-tier structure mirrors the
// teacher's own PrimitiveRoot / CheckFactors split between a fast path
// and a slow, general fallback.
func FactorPrime(n uint64) []uint64 {
	if n == 0 {
		panic("arith: FactorPrime(0)")
	}

	var factors []uint64
	seen := func(p uint64) bool {
		for _, f := range factors {
			if f == p {
				return true
			}
		}
		return false
	}

	m := n
	for _, p := range []uint64{2, 3} {
		if m%p == 0 {
			factors = append(factors, p)
			for m%p == 0 {
				m /= p
			}
		}
	}

	for p := uint64(5); p*p <= m && p < 1<<20; p += 6 {
		for _, d := range [2]uint64{p, p + 2} {
			if m%d == 0 {
				if !seen(d) {
					factors = append(factors, d)
				}
				for m%d == 0 {
					m /= d
				}
			}
		}
	}

	if m > 1 {
		factorLarge(m, &factors, seen)
	}

	slices.Sort(factors)
	return factors
}

// factorLarge splits a cofactor with no small factors, recursing with
// Pollard's rho until every piece is prime.
func factorLarge(m uint64, factors *[]uint64, seen func(uint64) bool) {
	if IsPrime(m) {
		if !seen(m) {
			*factors = append(*factors, m)
		}
		return
	}

	d := pollardRho(m)
	factorLarge(d, factors, seen)
	factorLarge(m/d, factors, seen)
}

// pollardRho finds a non-trivial factor of composite n.
func pollardRho(n uint64) uint64 {
	if n%2 == 0 {
		return 2
	}

	f := func(x, c, n uint64) uint64 {
		return (MulMod(x, x, n) + c) % n
	}

	for c := uint64(1); ; c++ {
		x, y, d := uint64(2), uint64(2), uint64(1)
		for d == 1 {
			x = f(x, c, n)
			y = f(f(y, c, n), c, n)
			diff := x - y
			if x < y {
				diff = y - x
			}
			if diff == 0 {
				d = n
				break
			}
			d = GCD(diff, n)
		}
		if d != n {
			return d
		}
	}
}

// CRT reconstructs the unique x mod prod(moduli) such that x = residues[i]
// mod moduli[i] for every i, given pairwise-coprime moduli.
func CRT(residues, moduli []uint64) uint64 {
	if len(residues) != len(moduli) {
		panic("arith: CRT requires len(residues) == len(moduli)")
	}
	if len(moduli) == 0 {
		panic("arith: CRT requires at least one modulus")
	}

	x, m := residues[0]%moduli[0], moduli[0]
	for i := 1; i < len(moduli); i++ {
		mi := moduli[i]
		if GCD(m, mi) != 1 {
			panic("arith: CRT requires pairwise-coprime moduli")
		}

		// Solve x + m*k = residues[i] (mod mi) for k.
		g, u, _ := ExtendedGCD(m%mi, mi)
		if g != 1 {
			panic("arith: CRT requires pairwise-coprime moduli")
		}
		diff := int64(residues[i]%mi) - int64(x%mi)
		k := mod64(diff*u, int64(mi))
		x = x + m*uint64(k)
		m *= mi
		x %= m
	}

	return x
}

func mod64(a, m int64) int64 {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// Isqrt returns floor(sqrt(n)) using Newton's method.
func Isqrt(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}

// Ceil2 returns the smallest power of two greater than or equal to n.
func Ceil2(n uint64) uint64 {
	if n == 0 {
		return 1
	}
	if n&(n-1) == 0 {
		return n
	}
	return uint64(1) << bits.Len64(n)
}

// Log2 returns ceil(log2(n)) for n >= 1.
func Log2(n uint64) int {
	if n < 1 {
		panic("arith: Log2 requires n >= 1")
	}
	if n == 1 {
		return 0
	}
	return bits.Len64(n - 1)
}
