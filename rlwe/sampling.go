package rlwe

import (
	"github.com/nthroot/ntt/poly"
	"github.com/nthroot/ntt/utils/sampling"
)

// sampleUniform allocates and returns a fresh length-N vector drawn
// uniformly from [0, Q). Used for a public key's a, which outlives the
// call that built it and so cannot be Pool scratch.
func sampleUniform(p Parameters, src *sampling.Source) *poly.Vector {
	v := poly.NewVector(p.ring, p.n)
	sampleUniformInto(p, src, v)
	return v
}

// sampleUniformInto fills dst (length N) with values drawn uniformly
// from [0, Q).
func sampleUniformInto(p Parameters, src *sampling.Source, dst *poly.Vector) {
	for i := 0; i < p.n; i++ {
		dst.Set(i, src.Uint64N(p.q))
	}
}

// sampleBitUniformInto fills dst (length N) with values uniform over
// {0, 1}, the distribution §4.5 names for the encrypted plaintext.
func sampleBitUniformInto(p Parameters, src *sampling.Source, dst *poly.Vector) {
	for i := 0; i < p.n; i++ {
		dst.Set(i, src.Bit())
	}
}

// sampleBinomial allocates and returns a fresh length-N binomial
// vector, for the long-lived secret-key share r2 a KeyGenerator
// returns by reference.
func sampleBinomial(p Parameters, src *sampling.Source) *poly.Vector {
	v := poly.NewVector(p.ring, p.n)
	sampleBinomialInto(p, src, v)
	return v
}

// sampleBinomialInto fills dst (length N) by drawing r from
// Binomial(2K, 1/2) and setting (r-K) mod Q per coefficient, a discrete
// approximation to a Gaussian of mean 0, variance K/2. The centered
// sample is reduced into [0, Q) via ((r%q)+q)%q rather than Go's
// truncating %, since CenteredBinomial can return a negative int.
func sampleBinomialInto(p Parameters, src *sampling.Source, dst *poly.Vector) {
	q := int64(p.q)
	for i := 0; i < p.n; i++ {
		r := int64(src.CenteredBinomial(p.k))
		dst.Set(i, uint64(((r%q)+q)%q))
	}
}

// SampleMessage draws a length-N uniform bit-vector from src, the
// plaintext distribution Encrypt expects its message argument to come
// from.
func SampleMessage(p Parameters, src *sampling.Source) []uint64 {
	v := poly.NewVector(p.ring, p.n)
	sampleBitUniformInto(p, src, v)
	return v.Data()
}
