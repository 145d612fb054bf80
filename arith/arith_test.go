package arith_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nthroot/ntt/arith"
)

func TestGCDExtendedGCD(t *testing.T) {
	for x := uint64(1); x < 97; x++ {
		g, u, v := arith.ExtendedGCD(97, x)
		require.Equal(t, arith.GCD(97, x), g)
		require.Equal(t, int64(g), 97*u+int64(x)*v)
	}
}

func TestExpMod(t *testing.T) {
	require.Equal(t, uint64(1), arith.ExpMod(2, 0, 97))
	require.Equal(t, uint64(4), arith.ExpMod(2, 2, 97))

	// GF(97): inv(20) = 34, computed as 20^(97-2) mod 97.
	require.Equal(t, uint64(34), arith.ExpMod(20, 95, 97))
}

func TestJacobiAgreesWithQuadraticResidues(t *testing.T) {
	const p = 97
	squares := make(map[int64]bool)
	for b := int64(1); b < p; b++ {
		squares[(b*b)%p] = true
	}

	for a := int64(1); a < p; a++ {
		want := -1
		if squares[a] {
			want = 1
		}
		require.Equal(t, want, arith.Jacobi(a, p), "a=%d", a)
	}
}

func TestIsPrime(t *testing.T) {
	primes := []uint64{2, 3, 5, 7, 97, 65537, 7681, 12289}
	for _, p := range primes {
		require.True(t, arith.IsPrime(p), "%d should be prime", p)
	}

	composites := []uint64{1, 4, 6, 8, 9, 100, 65536, 7680}
	for _, c := range composites {
		require.False(t, arith.IsPrime(c), "%d should be composite", c)
	}
}

func TestFactorPrime(t *testing.T) {
	// 7680 = q-1 for q=7681 = 2^9 * 3 * 5.
	factors := arith.FactorPrime(7680)
	require.ElementsMatch(t, []uint64{2, 3, 5}, factors)

	factors = arith.FactorPrime(65536)
	require.ElementsMatch(t, []uint64{2}, factors)
}

func TestCRT(t *testing.T) {
	x := arith.CRT([]uint64{2, 3, 2}, []uint64{3, 5, 7})
	require.Equal(t, x%3, uint64(2))
	require.Equal(t, x%5, uint64(3))
	require.Equal(t, x%7, uint64(2))
}

func TestIsqrtCeil2Log2(t *testing.T) {
	require.Equal(t, uint64(10), arith.Isqrt(100))
	require.Equal(t, uint64(10), arith.Isqrt(109))
	require.Equal(t, uint64(256), arith.Ceil2(200))
	require.Equal(t, uint64(256), arith.Ceil2(256))
	require.Equal(t, 8, arith.Log2(256))
	require.Equal(t, 9, arith.Log2(257))
	require.Equal(t, 0, arith.Log2(1))
}
