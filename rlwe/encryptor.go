package rlwe

import (
	"github.com/nthroot/ntt/poly"
	"github.com/nthroot/ntt/utils/sampling"
)

// Encryptor encrypts bit-vectors under a PublicKey: sample e1, e2, e3
// binomial, encode the message as e3 + (q/2)*m, transform into the NTT
// domain, and combine with the public key's NTT-domain a, p.
type Encryptor struct {
	params Parameters
	src    *sampling.Source
	pool   *poly.Pool // scratch for e1, e2, e3; none of the three is returned to the caller
}

// NewEncryptor returns an Encryptor seeded from crypto/rand.
func NewEncryptor(params Parameters) *Encryptor {
	return NewEncryptorWithSource(params, sampling.NewSource())
}

// NewEncryptorWithSource returns an Encryptor drawing from src.
func NewEncryptorWithSource(params Parameters, src *sampling.Source) *Encryptor {
	return &Encryptor{
		params: params,
		src:    src,
		pool:   poly.NewPool(params.Ring(), params.N(), 3),
	}
}

// Encrypt encrypts the bit-vector m (length N, each entry 0 or 1) under
// pk, returning the ciphertext (c1, c2).
func (enc *Encryptor) Encrypt(pk *PublicKey, m []uint64) (*Ciphertext, error) {
	p := enc.params
	if len(m) != p.n {
		return nil, ErrInvalidDegree
	}
	r := p.Ring()
	tr := p.NTT()

	e1 := enc.pool.Get()
	e2 := enc.pool.Get()
	e3 := enc.pool.Get()
	defer enc.pool.Put(e1)
	defer enc.pool.Put(e2)
	defer enc.pool.Put(e3)
	sampleBinomialInto(p, enc.src, e1)
	sampleBinomialInto(p, enc.src, e2)
	sampleBinomialInto(p, enc.src, e3)

	encoded := poly.NewVector(r, p.n)
	for i := 0; i < p.n; i++ {
		encoded.Set(i, r.Add(e3.At(i), r.Mul(p.qHalf, m[i])))
	}

	tr.FFT(e1)
	tr.FFT(e2)
	tr.FFT(encoded)

	c1 := poly.NewVector(r, p.n)
	for i := 0; i < p.n; i++ {
		c1.Set(i, r.Add(e2.At(i), r.Mul(pk.A.At(i), e1.At(i))))
	}

	c2 := encoded
	for i := 0; i < p.n; i++ {
		c2.Set(i, r.Add(encoded.At(i), r.Mul(pk.P.At(i), e1.At(i))))
	}

	return &Ciphertext{C1: c1, C2: c2}, nil
}
