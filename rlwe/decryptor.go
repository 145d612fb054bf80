package rlwe

import "github.com/nthroot/ntt/poly"

// Decryptor decrypts a Ciphertext under the SecretKey it was
// constructed with.
type Decryptor struct {
	params Parameters
	sk     *SecretKey
	pool   *poly.Pool // scratch for d, shared between Decrypt and RawNoise
}

// NewDecryptor returns a Decryptor bound to sk.
func NewDecryptor(params Parameters, sk *SecretKey) *Decryptor {
	return &Decryptor{
		params: params,
		sk:     sk,
		pool:   poly.NewPool(params.Ring(), params.N(), 1),
	}
}

// Decrypt computes d = c2 + c1*r2, inverse-transforms it out of the
// NTT domain, and thresholds each coefficient against (q/4, 3q/4) to
// recover the bit-vector m.
func (dec *Decryptor) Decrypt(ct *Ciphertext) []uint64 {
	p := dec.params
	r := p.Ring()
	tr := p.NTT()

	d := dec.pool.Get()
	defer dec.pool.Put(d)
	for i := 0; i < p.n; i++ {
		d.Set(i, r.Add(ct.C2.At(i), r.Mul(ct.C1.At(i), dec.sk.R2.At(i))))
	}
	tr.IFFT(d)

	m := make([]uint64, p.n)
	for i := 0; i < p.n; i++ {
		v := d.At(i)
		if v > p.qQuarter && v < p.q3Quarter {
			m[i] = 1
		}
	}
	return m
}
