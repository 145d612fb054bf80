package ntt

import (
	"github.com/nthroot/ntt/arith"
	"github.com/nthroot/ntt/field"
	"github.com/nthroot/ntt/poly"
)

// Radix2 is the decimation-in-time Cooley-Tukey FFT for n a power of
// two. Input and output are both in natural order: an initial
// bit-reversal permutation brings the data into the order the
// bottom-up butterfly network expects, so its output comes out in
// natural order directly, with no closing reversal pass.
type Radix2 struct {
	ring           field.Ring
	n              int
	logN           int
	powers         []uint64 // powers[j] = omega^j, 0 <= j < n
	invPow         []uint64 // invPow[j] = omega^-j, 0 <= j < n
	nInv           uint64
	boundedDataLen int // 0 means "no bound declared"
}

// NewRadix2 returns a Radix2 transformer of length n over r. n must be
// a power of two.
func NewRadix2(r field.Ring, n int) (Transformer, error) {
	if n <= 0 || n&(n-1) != 0 {
		return nil, ErrUnsupportedSize
	}
	omega, err := r.NthRoot(uint64(n))
	if err != nil {
		return nil, ErrNoSuchRoot
	}
	omegaInv, err := r.Inv(omega)
	if err != nil {
		return nil, ErrNoSuchRoot
	}
	nInv, err := r.Inv(uint64(n))
	if err != nil {
		return nil, ErrNoSuchRoot
	}

	return &Radix2{
		ring:   r,
		n:      n,
		logN:   arith.Log2(uint64(n)),
		powers: powersOf(r, omega, n),
		invPow: powersOf(r, omegaInv, n),
		nInv:   nInv,
	}, nil
}

// NewRadix2BoundedData returns a Radix2 transformer identical to
// NewRadix2 except that FFT/IFFT assume only the first dataLen inputs
// may be non-zero, replacing the early butterfly stages that would
// otherwise just copy a single non-zero value across its block with a
// direct O(n) broadcast, an erasure-coding fast path for sparse inputs.
// dataLen must be a power of two no greater than n.
func NewRadix2BoundedData(r field.Ring, n, dataLen int) (Transformer, error) {
	if dataLen <= 0 || dataLen&(dataLen-1) != 0 || dataLen > n {
		return nil, ErrUnsupportedSize
	}
	t, err := NewRadix2(r, n)
	if err != nil {
		return nil, err
	}
	rt := t.(*Radix2)
	rt.boundedDataLen = dataLen
	return rt, nil
}

func powersOf(r field.Ring, root uint64, n int) []uint64 {
	p := make([]uint64, n)
	p[0] = 1
	for i := 1; i < n; i++ {
		p[i] = r.Mul(p[i-1], root)
	}
	return p
}

func (t *Radix2) N() int           { return t.n }
func (t *Radix2) Ring() field.Ring { return t.ring }

func (t *Radix2) FFT(v *poly.Vector) {
	checkLen(v, t.n)
	t.butterfly(v.Data(), t.powers)
}

func (t *Radix2) IFFT(v *poly.Vector) {
	checkLen(v, t.n)
	t.butterfly(v.Data(), t.invPow)
	for i := 0; i < t.n; i++ {
		v.Set(i, t.ring.Mul(v.At(i), t.nInv))
	}
}

// butterfly runs the standard bottom-up Cooley-Tukey DIT network:
// bit-reverse the input, then for stage sizes 2,4,...,n combine pairs
// half a stage apart using powers[j*(n/size)] as the twiddle for
// position j within a group.
//
// When boundedDataLen is set, every stage of size <= n/boundedDataLen
// would, after the bit-reversal, combine exactly one non-zero value
// with a zero (the single non-zero input replicates across its block
// one doubling at a time); that whole prefix of stages is replaced by
// one O(n) broadcast pass, and the ordinary butterfly loop resumes only
// once block size exceeds n/boundedDataLen.
func (t *Radix2) butterfly(data []uint64, powers []uint64) {
	r := t.ring
	n := t.n

	bitReverse(data, t.logN)

	startSize := 2
	if limit := t.boundedDataLen; limit != 0 && limit < n {
		block := n / limit
		for b := 0; b < n; b += block {
			v := data[b]
			for k := 1; k < block; k++ {
				data[b+k] = v
			}
		}
		startSize = block * 2
	}

	for size := startSize; size <= n; size <<= 1 {
		half := size / 2
		twStep := n / size
		for start := 0; start < n; start += size {
			for i := 0; i < half; i++ {
				w := powers[i*twStep]
				u := data[start+i]
				v := r.Mul(data[start+i+half], w)
				data[start+i] = r.Add(u, v)
				data[start+i+half] = r.Sub(u, v)
			}
		}
	}
}

// bitReverse permutes data into bit-reversed order in place.
func bitReverse(data []uint64, logN int) {
	n := len(data)
	for i := 1; i < n; i++ {
		j := reverseBits(i, logN)
		if i < j {
			data[i], data[j] = data[j], data[i]
		}
	}
}

func reverseBits(x, logN int) int {
	r := 0
	for i := 0; i < logN; i++ {
		r = (r << 1) | (x & 1)
		x >>= 1
	}
	return r
}
