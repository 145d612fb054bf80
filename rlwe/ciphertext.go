package rlwe

import "github.com/nthroot/ntt/poly"

// Ciphertext is an R-LWE encryption: a pair of NTT-domain vectors
// (C1, C2), each of length Parameters.N(), over Parameters.Ring().
type Ciphertext struct {
	C1, C2 *poly.Vector
}
