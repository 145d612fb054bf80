package rlwe

import (
	"math/big"

	"github.com/ALTree/bigfloat"

	"github.com/nthroot/ntt/utils/bignum"
)

// NoiseMargin reports log2(q/4) - log2(noiseBound), the number of bits
// of slack between the decryption threshold and a claimed worst-case
// per-coefficient noise bound. A non-positive result means decryption
// is not guaranteed to succeed at that noise bound. Computed in
// arbitrary precision since q/4 and the noise bound can differ by many
// orders of magnitude for the larger named parameter sets.
func (p Parameters) NoiseMargin(noiseBound *big.Float) *big.Float {
	qQuarter := new(big.Float).SetUint64(p.qQuarter)
	logQuarter := bigfloat.Log2(qQuarter)
	logNoise := bigfloat.Log2(noiseBound)
	return new(big.Float).Sub(logQuarter, logNoise)
}

// RawNoise decrypts ct against the known plaintext m without
// thresholding, returning each coefficient's signed distance to the
// value m actually encodes (0 or q/2), centered into (-q/2, q/2]. It
// is the same residual the decryption threshold test consumes, kept
// unthresholded for noise measurement.
func (dec *Decryptor) RawNoise(ct *Ciphertext, m []uint64) []int64 {
	p := dec.params
	r := p.Ring()
	tr := p.NTT()

	d := dec.pool.Get()
	defer dec.pool.Put(d)
	for i := 0; i < p.n; i++ {
		d.Set(i, r.Add(ct.C2.At(i), r.Mul(ct.C1.At(i), dec.sk.R2.At(i))))
	}
	tr.IFFT(d)

	q := int64(p.q)
	qHalf := int64(p.qHalf)

	noise := make([]int64, p.n)
	for i := 0; i < p.n; i++ {
		diff := int64(d.At(i)) - qHalf*int64(m[i])
		diff %= q
		if diff > qHalf {
			diff -= q
		} else if diff < -qHalf {
			diff += q
		}
		noise[i] = diff
	}
	return noise
}

// NoiseStats reports log2(stddev) and the mean of a set of signed
// per-coefficient noise samples gathered via [Decryptor.RawNoise].
// The accumulation runs in arbitrary precision so that samples spread
// across many orders of magnitude around q don't lose bits to
// float64 rounding.
func NoiseStats(samples []int64) (log2StdDev, mean float64) {
	values := make([]big.Int, len(samples))
	for i, v := range samples {
		values[i] = *bignum.NewInt(v)
	}
	stats := bignum.Stats(values, 128)
	return stats[0], stats[1]
}
