package rlwe

import "github.com/nthroot/ntt/poly"

// SecretKey holds the NTT-domain image of r2, the private half of a
// key pair.
type SecretKey struct {
	R2 *poly.Vector
}

// PublicKey holds the NTT-domain images of a and p = r1 - a*r2, the
// public half of a key pair.
type PublicKey struct {
	A, P *poly.Vector
}
