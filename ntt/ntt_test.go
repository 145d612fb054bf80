package ntt_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/nthroot/ntt/field"
	"github.com/nthroot/ntt/ntt"
	"github.com/nthroot/ntt/poly"
)

func vectorOf(r field.Ring, values ...uint64) *poly.Vector {
	v := poly.NewVector(r, len(values))
	for i, x := range values {
		v.Set(i, x)
	}
	return v
}

func dataOf(v *poly.Vector) []uint64 {
	out := make([]uint64, v.Len())
	copy(out, v.Data())
	return out
}

func assertEqual(t *testing.T, got, want []uint64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

// Scenario 2: GF(65537), length-8 naive NTT of a fixed vector.
func TestNaiveScenario2(t *testing.T) {
	r, err := field.NewPrime(65537)
	if err != nil {
		t.Fatalf("NewPrime: %v", err)
	}
	tr, err := ntt.NewNaive(r, 8)
	if err != nil {
		t.Fatalf("NewNaive: %v", err)
	}

	input := []uint64{27746, 871, 49520, 0, 0, 0, 0, 0}
	want := []uint64{12600, 27885, 17398, 4624, 10858, 36186, 4591, 42289}

	v := vectorOf(r, input...)
	tr.FFT(v)
	assertEqual(t, dataOf(v), want)

	tr.IFFT(v)
	assertEqual(t, dataOf(v), input)
}

// Scenario 3: GF(7681), n=256: Naive, Large (single-modulus limb) and
// Radix2 agree on the same random input.
func TestCrossVariantAgreementScenario3(t *testing.T) {
	const q = 7681
	const n = 256

	r, err := field.NewPrime(q)
	if err != nil {
		t.Fatalf("NewPrime: %v", err)
	}

	naive, err := ntt.NewNaive(r, n)
	if err != nil {
		t.Fatalf("NewNaive: %v", err)
	}
	radix2, err := ntt.NewRadix2(r, n)
	if err != nil {
		t.Fatalf("NewRadix2: %v", err)
	}
	large, err := ntt.NewLarge([]uint64{q}, n)
	if err != nil {
		t.Fatalf("NewLarge: %v", err)
	}

	rnd := rand.New(rand.NewSource(1))
	input := make([]uint64, n)
	for i := range input {
		input[i] = uint64(rnd.Intn(q))
	}

	vNaive := vectorOf(r, input...)
	vRadix2 := vectorOf(r, input...)
	vLarge := vectorOf(large.Ring(), input...)

	naive.FFT(vNaive)
	radix2.FFT(vRadix2)
	large.FFT(vLarge)

	assertEqual(t, dataOf(vNaive), dataOf(vRadix2))
	assertEqual(t, dataOf(vNaive), dataOf(vLarge))
}

// Scenario 4: GF(2^16) with Gao-Mateer over n=32: ifft(fft(x)) = x.
func TestAdditiveRoundTripScenario4(t *testing.T) {
	r, err := field.NewBinary(16)
	if err != nil {
		t.Fatalf("NewBinary: %v", err)
	}
	tr, err := ntt.NewAdditive(r, 32)
	if err != nil {
		t.Fatalf("NewAdditive: %v", err)
	}

	rnd := rand.New(rand.NewSource(2))
	for trial := 0; trial < 1000; trial++ {
		input := make([]uint64, 32)
		for i := range input {
			input[i] = uint64(rnd.Intn(1 << 16))
		}
		v := vectorOf(r, input...)
		tr.FFT(v)
		tr.IFFT(v)
		assertEqual(t, dataOf(v), input)
	}
}

// Scenario 6: Schönhage-Strassen style big-integer multiplication via a
// length-2^15 cyclic convolution over the CRT-composed field.
func TestLargeComposedFFT_SchonhageStrassenScenario(t *testing.T) {
	const n = 1 << 15
	p1 := uint64(2*(1<<15) + 1)
	p2 := uint64(5*(1<<15) + 1)

	tr, err := ntt.NewLarge([]uint64{p1, p2}, n)
	if err != nil {
		t.Fatalf("NewLarge: %v", err)
	}
	r := tr.Ring()

	a, ok := new(big.Int).SetString("1236548787985654354598651354984132468", 10)
	if !ok {
		t.Fatal("bad literal a")
	}
	b, ok := new(big.Int).SetString("745211515185321545554545854598651354984132468", 10)
	if !ok {
		t.Fatal("bad literal b")
	}
	want, ok := new(big.Int).SetString("921490395895362412399910100421159322712298564831565484737491129935640058571771024", 10)
	if !ok {
		t.Fatal("bad literal want")
	}

	va := vectorOf(r, decimalDigitsLE(a, n)...)
	vb := vectorOf(r, decimalDigitsLE(b, n)...)

	tr.FFT(va)
	tr.FFT(vb)

	vc := poly.NewVector(r, n)
	for i := 0; i < n; i++ {
		vc.Set(i, r.Mul(va.At(i), vb.At(i)))
	}
	tr.IFFT(vc)

	got := reconstructFromDigits(dataOf(vc))
	if got.Cmp(want) != 0 {
		t.Fatalf("product mismatch:\n got  %s\n want %s", got.String(), want.String())
	}
}

// decimalDigitsLE returns x's base-10 digits, least-significant first,
// zero-padded to length n.
func decimalDigitsLE(x *big.Int, n int) []uint64 {
	digits := make([]uint64, n)
	s := x.String()
	for i := 0; i < len(s); i++ {
		digits[i] = uint64(s[len(s)-1-i] - '0')
	}
	return digits
}

// reconstructFromDigits treats digits as little-endian base-10 weights
// (each may exceed 9, from an un-carried convolution) and sums them
// with their place values, letting big.Int absorb the carries.
func reconstructFromDigits(digits []uint64) *big.Int {
	result := new(big.Int)
	base := big.NewInt(10)
	pow := big.NewInt(1)
	term := new(big.Int)
	for _, d := range digits {
		term.SetUint64(d)
		term.Mul(term, pow)
		result.Add(result, term)
		pow.Mul(pow, base)
	}
	return result
}

func TestGoodThomasMatchesNaive(t *testing.T) {
	const q = 7681
	r, err := field.NewPrime(q)
	if err != nil {
		t.Fatalf("NewPrime: %v", err)
	}
	const n1, n2 = 5, 3
	gt, err := ntt.NewGoodThomas(r, n1, n2)
	if err != nil {
		t.Fatalf("NewGoodThomas: %v", err)
	}
	naive, err := ntt.NewNaive(r, n1*n2)
	if err != nil {
		t.Fatalf("NewNaive: %v", err)
	}

	rnd := rand.New(rand.NewSource(3))
	input := make([]uint64, n1*n2)
	for i := range input {
		input[i] = uint64(rnd.Intn(q))
	}

	vGT := vectorOf(r, input...)
	vN := vectorOf(r, input...)
	gt.FFT(vGT)
	naive.FFT(vN)
	assertEqual(t, dataOf(vGT), dataOf(vN))

	gt.IFFT(vGT)
	assertEqual(t, dataOf(vGT), input)
}

func TestCooleyTukeyMatchesNaive(t *testing.T) {
	const q = 7681
	r, err := field.NewPrime(q)
	if err != nil {
		t.Fatalf("NewPrime: %v", err)
	}
	const n1, n2 = 8, 4
	ct, err := ntt.NewCooleyTukey(r, n1, n2)
	if err != nil {
		t.Fatalf("NewCooleyTukey: %v", err)
	}
	naive, err := ntt.NewNaive(r, n1*n2)
	if err != nil {
		t.Fatalf("NewNaive: %v", err)
	}

	rnd := rand.New(rand.NewSource(4))
	input := make([]uint64, n1*n2)
	for i := range input {
		input[i] = uint64(rnd.Intn(q))
	}

	vCT := vectorOf(r, input...)
	vN := vectorOf(r, input...)
	ct.FFT(vCT)
	naive.FFT(vN)
	assertEqual(t, dataOf(vCT), dataOf(vN))

	ct.IFFT(vCT)
	assertEqual(t, dataOf(vCT), input)
}

func TestRadix2BoundedDataBroadcastMatchesPlain(t *testing.T) {
	const q = 65537
	r, err := field.NewPrime(q)
	if err != nil {
		t.Fatalf("NewPrime: %v", err)
	}
	plain, err := ntt.NewRadix2(r, 64)
	if err != nil {
		t.Fatalf("NewRadix2: %v", err)
	}
	bounded, err := ntt.NewRadix2BoundedData(r, 64, 8)
	if err != nil {
		t.Fatalf("NewRadix2BoundedData: %v", err)
	}

	input := make([]uint64, 64)
	rnd := rand.New(rand.NewSource(5))
	for i := 0; i < 8; i++ {
		input[i] = uint64(rnd.Intn(q))
	}

	vPlain := vectorOf(r, input...)
	vBounded := vectorOf(r, input...)
	plain.FFT(vPlain)
	bounded.FFT(vBounded)
	assertEqual(t, dataOf(vPlain), dataOf(vBounded))
}

func TestSize2Butterfly(t *testing.T) {
	r, err := field.NewPrime(97)
	if err != nil {
		t.Fatalf("NewPrime: %v", err)
	}
	tr := ntt.NewSize2(r)
	v := vectorOf(r, 5, 9)
	tr.FFT(v)
	assertEqual(t, dataOf(v), []uint64{14, r.Sub(5, 9)})
	tr.IFFT(v)
	assertEqual(t, dataOf(v), []uint64{5, 9})
}

func TestSingleIsIdentity(t *testing.T) {
	r, err := field.NewPrime(97)
	if err != nil {
		t.Fatalf("NewPrime: %v", err)
	}
	tr := ntt.NewSingle(r)
	v := vectorOf(r, 42)
	tr.FFT(v)
	assertEqual(t, dataOf(v), []uint64{42})
	tr.IFFT(v)
	assertEqual(t, dataOf(v), []uint64{42})
}

func TestTaylorExpandRoundTrip(t *testing.T) {
	r, err := field.NewPrime(65537)
	if err != nil {
		t.Fatalf("NewPrime: %v", err)
	}
	rnd := rand.New(rand.NewSource(6))
	const n, t2 = 16, 4
	src := make([]uint64, n)
	for i := range src {
		src[i] = uint64(rnd.Intn(65537))
	}

	dst := make([]uint64, n)
	ntt.TaylorExpand(r, dst, src, t2)

	back := make([]uint64, n)
	ntt.InvTaylorExpand(r, back, dst, t2)
	assertEqual(t, back, src)
}

func TestTaylorExpandT2RoundTrip(t *testing.T) {
	r, err := field.NewPrime(65537)
	if err != nil {
		t.Fatalf("NewPrime: %v", err)
	}
	rnd := rand.New(rand.NewSource(7))
	const n = 8
	src := make([]uint64, n)
	for i := range src {
		src[i] = uint64(rnd.Intn(65537))
	}

	dst := make([]uint64, n)
	ntt.TaylorExpandT2(r, dst, src)

	back := make([]uint64, n)
	ntt.InvTaylorExpandT2(r, back, dst)
	assertEqual(t, back, src)
}
