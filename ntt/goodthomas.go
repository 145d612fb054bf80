package ntt

import (
	"github.com/nthroot/ntt/arith"
	"github.com/nthroot/ntt/field"
	"github.com/nthroot/ntt/poly"
)

// GoodThomas is the prime-factor FFT for n = n1*n2 with gcd(n1,n2) = 1.
// It reindexes the 1-D transform into a 2-D one via the Chinese
// Remainder Theorem so that no twiddle multiplication is needed between
// the two inner passes, unlike Cooley-Tukey mixed-radix.
type GoodThomas struct {
	ring      field.Ring
	n, n1, n2 int
	inner1    Transformer // size n1
	inner2    Transformer // size n2
	fwdIndex  []int       // fwdIndex[i1*n2+i2] = CRT-reconstructed natural index
	outIndex  []int       // outIndex[k1*n2+k2] = Ruritanian-mapped natural index
}

// NewGoodThomas returns a GoodThomas transformer of length n1*n2 over
// r, requiring gcd(n1, n2) == 1.
func NewGoodThomas(r field.Ring, n1, n2 int) (Transformer, error) {
	if n1 <= 0 || n2 <= 0 {
		return nil, ErrUnsupportedSize
	}
	if arith.GCD(uint64(n1), uint64(n2)) != 1 {
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

	t := &GoodThomas{ring: r, n: n, n1: n1, n2: n2, inner1: inner1, inner2: inner2}
	t.buildIndexMaps()
	return t, nil
}

// newInnerTransform picks Radix2 for a power-of-two size and falls back
// to Naive otherwise.
func newInnerTransform(r field.Ring, n int) (Transformer, error) {
	if n&(n-1) == 0 {
		if t, err := NewRadix2(r, n); err == nil {
			return t, nil
		}
	}
	return NewNaive(r, n)
}

func (t *GoodThomas) buildIndexMaps() {
	n1, n2, n := t.n1, t.n2, t.n

	n2InvModN1 := modInverse(n2, n1)
	n1InvModN2 := modInverse(n1, n2)

	t.fwdIndex = make([]int, n)
	for i1 := 0; i1 < n1; i1++ {
		for i2 := 0; i2 < n2; i2++ {
			// CRT reconstruction: the unique x mod n with x=i1 mod n1, x=i2 mod n2.
			x := (i1*n2*n2InvModN1 + i2*n1*n1InvModN2) % n
			t.fwdIndex[i1*n2+i2] = x
		}
	}

	t.outIndex = make([]int, n)
	for k1 := 0; k1 < n1; k1++ {
		for k2 := 0; k2 < n2; k2++ {
			// Ruritanian map: twiddle-free precisely when paired with the
			// CRT map above for the input side.
			k := (k1*n2 + k2*n1) % n
			t.outIndex[k1*n2+k2] = k
		}
	}
}

// modInverse returns a^-1 mod m for coprime a, m, via the module's own
// extended-gcd primitive: ExtendedGCD(m, a) gives m*u + a*v = 1, so v is
// the inverse of a mod m.
func modInverse(a, m int) int {
	_, _, v := arith.ExtendedGCD(uint64(m), uint64(a))
	return int(((v % int64(m)) + int64(m)) % int64(m))
}

func (t *GoodThomas) N() int           { return t.n }
func (t *GoodThomas) Ring() field.Ring { return t.ring }

func (t *GoodThomas) FFT(v *poly.Vector) {
	checkLen(v, t.n)
	t.transform(v, false)
}

func (t *GoodThomas) IFFT(v *poly.Vector) {
	checkLen(v, t.n)
	t.transform(v, true)
}

// transform runs the forward 2-D decomposition for !inverse, reading
// through fwdIndex (the CRT input map) and writing through outIndex
// (the Ruritanian output map). The inverse transform is the same 2-D
// decomposition with the two maps swapped, since A is stored in
// natural order under outIndex and must be reassembled in natural
// order under fwdIndex.
func (t *GoodThomas) transform(v *poly.Vector, inverse bool) {
	n1, n2 := t.n1, t.n2
	src := v.Data()

	readIndex, writeIndex := t.fwdIndex, t.outIndex
	if inverse {
		readIndex, writeIndex = t.outIndex, t.fwdIndex
	}

	grid := make([]uint64, t.n)
	for i1 := 0; i1 < n1; i1++ {
		for i2 := 0; i2 < n2; i2++ {
			grid[i1*n2+i2] = src[readIndex[i1*n2+i2]]
		}
	}

	row := poly.NewVector(t.ring, n2)
	for i1 := 0; i1 < n1; i1++ {
		copy(row.Data(), grid[i1*n2:(i1+1)*n2])
		if inverse {
			t.inner2.IFFT(row)
		} else {
			t.inner2.FFT(row)
		}
		copy(grid[i1*n2:(i1+1)*n2], row.Data())
	}

	col := poly.NewVector(t.ring, n1)
	for k2 := 0; k2 < n2; k2++ {
		for i1 := 0; i1 < n1; i1++ {
			col.Set(i1, grid[i1*n2+k2])
		}
		if inverse {
			t.inner1.IFFT(col)
		} else {
			t.inner1.FFT(col)
		}
		for k1 := 0; k1 < n1; k1++ {
			v.Set(writeIndex[k1*n2+k2], col.At(k1))
		}
	}
}
