package rlwe

// ParametersLiteral is the unchecked, user-facing representation of an
// R-LWE parameter set: the polynomial degree N, the prime modulus Q and
// the binomial half-width K. NewParametersFromLiteral validates it and
// derives the checked Parameters, including the field/NTT descriptors
// every other type in this package is built against.
//
// The prototype parameter set is (N, Q, K) = (256, 7681, 16); (512,
// 12289) and (1024, 12289) are valid but unused alternatives.
type ParametersLiteral struct {
	N int `json:"n"`
	Q int `json:"q"`
	K int `json:"k"`
}
