package rlwe

import (
	"github.com/nthroot/ntt/poly"
	"github.com/nthroot/ntt/utils/sampling"
)

// KeyGenerator produces R-LWE key pairs: sample a uniform, r1 and r2
// binomial, transform all three into the NTT domain, then set
// p = r1 - a*r2. The public key is (a, p); the private key is r2.
type KeyGenerator struct {
	params Parameters
	src    *sampling.Source
	pool   *poly.Pool // scratch for r1, the one vector GenerateKeyPair doesn't return
}

// NewKeyGenerator returns a KeyGenerator seeded from crypto/rand.
func NewKeyGenerator(params Parameters) *KeyGenerator {
	return NewKeyGeneratorWithSource(params, sampling.NewSource())
}

// NewKeyGeneratorWithSource returns a KeyGenerator drawing from src,
// for deterministic tests and reproducible benchmarks.
func NewKeyGeneratorWithSource(params Parameters, src *sampling.Source) *KeyGenerator {
	return &KeyGenerator{
		params: params,
		src:    src,
		pool:   poly.NewPool(params.Ring(), params.N(), 1),
	}
}

// GenerateKeyPair samples a fresh (SecretKey, PublicKey) pair.
func (kg *KeyGenerator) GenerateKeyPair() (*SecretKey, *PublicKey) {
	p := kg.params
	r := p.Ring()
	tr := p.NTT()

	a := sampleUniform(p, kg.src)
	r2 := sampleBinomial(p, kg.src)

	r1 := kg.pool.Get()
	defer kg.pool.Put(r1)
	sampleBinomialInto(p, kg.src, r1)

	tr.FFT(a)
	tr.FFT(r1)
	tr.FFT(r2)

	pp := a.Clone()
	for i := 0; i < p.n; i++ {
		pp.Set(i, r.Sub(r1.At(i), r.Mul(a.At(i), r2.At(i))))
	}

	return &SecretKey{R2: r2}, &PublicKey{A: a, P: pp}
}
