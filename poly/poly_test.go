package poly_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nthroot/ntt/field"
	"github.com/nthroot/ntt/poly"
)

func testRing(t *testing.T) field.Ring {
	t.Helper()
	r, err := field.NewPrime(97)
	require.NoError(t, err)
	return r
}

func TestVectorOwnedVsBorrowed(t *testing.T) {
	r := testRing(t)

	owned := poly.NewVector(r, 4)
	owned.Set(0, 5)
	owned.Release()
	require.Equal(t, 0, owned.Len())

	backing := []uint64{1, 2, 3}
	borrowed := poly.NewVectorFromSlice(r, backing)
	borrowed.Set(1, 99)
	require.Equal(t, uint64(99), backing[1])
	borrowed.Release()
	require.Equal(t, 3, borrowed.Len(), "Release must not clear a borrowed vector")
}

func TestVectorCloneIsIndependent(t *testing.T) {
	r := testRing(t)
	v := poly.NewVectorFromSlice(r, []uint64{1, 2, 3})
	c := v.Clone()
	c.Set(0, 42)
	require.Equal(t, uint64(1), v.At(0))
	require.Equal(t, uint64(42), c.At(0))
}

func TestVectorAddSubScalarMul(t *testing.T) {
	r := testRing(t)
	a := poly.NewVectorFromSlice(r, []uint64{1, 2, 3})
	b := poly.NewVectorFromSlice(r, []uint64{10, 20, 30})
	dst := poly.NewVector(r, 3)

	poly.Add(r, dst, a, b)
	require.Equal(t, []uint64{11, 22, 33}, dst.Data())

	poly.Sub(r, dst, b, a)
	require.Equal(t, []uint64{9, 18, 27}, dst.Data())

	poly.ScalarMul(r, dst, a, 10)
	require.Equal(t, []uint64{10, 20, 30}, dst.Data())
}

func TestVectorHadamardMul(t *testing.T) {
	r := testRing(t)
	a := poly.NewVectorFromSlice(r, []uint64{1, 2, 3})
	b := poly.NewVectorFromSlice(r, []uint64{4, 5, 6})
	dst := poly.NewVector(r, 3)

	poly.HadamardMul(r, dst, a, b)
	require.Equal(t, []uint64{4, 10, 18}, dst.Data())
}

func TestVectorShiftedAdd(t *testing.T) {
	r := testRing(t)
	a := poly.NewVectorFromSlice(r, []uint64{1, 1, 1, 1})
	b := poly.NewVectorFromSlice(r, []uint64{0, 1, 2, 3})
	dst := poly.NewVector(r, 4)

	poly.ShiftedAdd(r, dst, a, b, 1)
	require.Equal(t, []uint64{2, 3, 4, 1}, dst.Data())
}

func TestVectorMulBeta(t *testing.T) {
	r := testRing(t)
	a := poly.NewVectorFromSlice(r, []uint64{1, 1, 1, 1})
	dst := poly.NewVector(r, 4)

	poly.MulBeta(r, dst, a, 3)
	// beta^0=1, beta^1=3, beta^2=9, beta^3=27
	require.Equal(t, []uint64{1, 3, 9, 27}, dst.Data())
}

func TestVectorCopyWithPad(t *testing.T) {
	r := testRing(t)
	src := poly.NewVectorFromSlice(r, []uint64{1, 2, 3})

	longer := poly.NewVector(r, 5)
	longer.Set(4, 99)
	poly.CopyWithPad(longer, src)
	require.Equal(t, []uint64{1, 2, 3, 0, 0}, longer.Data())

	shorter := poly.NewVector(r, 2)
	poly.CopyWithPad(shorter, src)
	require.Equal(t, []uint64{1, 2}, shorter.Data())
}

func TestBufferRowsShareBackingStorage(t *testing.T) {
	r := testRing(t)
	buf := poly.NewBuffer(r, 3, 4)

	row1 := buf.Row(1)
	row1.Set(0, 55)
	require.Equal(t, uint64(55), buf.Row(1).At(0))
	require.Equal(t, uint64(0), buf.Row(0).At(0))
}

func TestBufferSliceSortsAndDeduplicates(t *testing.T) {
	r := testRing(t)
	buf := poly.NewBuffer(r, 4, 2)
	for i := 0; i < 4; i++ {
		buf.Row(i).Set(0, uint64(i*10))
	}

	sliced := buf.Slice([]int{2, 0, 2, 1})
	require.Equal(t, 3, sliced.Rows())
	require.Equal(t, uint64(0), sliced.Row(0).At(0))
	require.Equal(t, uint64(10), sliced.Row(1).At(0))
	require.Equal(t, uint64(20), sliced.Row(2).At(0))
}

func TestBufferAddAtOffsetWraps(t *testing.T) {
	r := testRing(t)
	buf := poly.NewBuffer(r, 1, 4)
	src := poly.NewVectorFromSlice(r, []uint64{1, 2, 3})

	buf.AddAtOffset(0, src, 3)
	require.Equal(t, []uint64{2, 3, 0, 1}, buf.Row(0).Data())
}

func TestPolynomialSparseRoundTrip(t *testing.T) {
	r := testRing(t)
	p := poly.NewPolynomial()
	p.Set(0, 5)
	p.Set(3, 7)
	p.Set(5, 0) // setting zero must not create an entry

	require.Equal(t, 3, p.Degree())
	require.Equal(t, []int{0, 3}, p.Terms())

	v := p.ToVector(r, 8)
	require.Equal(t, uint64(5), v.At(0))
	require.Equal(t, uint64(7), v.At(3))

	back := poly.FromVector(v)
	require.Equal(t, p, back)
}

func TestPoolReusesScratchVectors(t *testing.T) {
	r := testRing(t)
	pool := poly.NewPool(r, 4, 2)

	a := pool.Get()
	b := pool.Get()
	c := pool.Get() // pool grows past its initial size on demand

	c.Set(0, 1) // c is Put last, so it is the vector the next Get reuses
	pool.Put(a)
	pool.Put(b)
	pool.Put(c)

	reused := pool.Get()
	require.Equal(t, uint64(0), reused.At(0), "Get must return a zeroed vector")
}
