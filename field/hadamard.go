package field

// hadamardMul computes dst[i] = mul(dst[i], src[i]) for every i. This is
// the one scalar loop every Ring's HadamardMul delegates to; a Hadamard
// product over an arbitrary mul closure has no portable SIMD form
// without per-field-width kernels this package doesn't carry, so no
// capability flag is threaded through here. SIMDCapable stays on Ring as
// a host diagnostic only.
func hadamardMul(dst, src []uint64, mul func(a, b uint64) uint64) {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	for i := 0; i < n; i++ {
		dst[i] = mul(dst[i], src[i])
	}
}
