package rlwe_test

import (
	"math/big"
	"testing"

	"github.com/nthroot/ntt/rlwe"
	"github.com/nthroot/ntt/utils/sampling"
)

func mustParams(t *testing.T, lit rlwe.ParametersLiteral) rlwe.Parameters {
	t.Helper()
	p, err := rlwe.NewParametersFromLiteral(lit)
	if err != nil {
		t.Fatalf("NewParametersFromLiteral(%+v): %v", lit, err)
	}
	return p
}

// Scenario 5: R-LWE (256, 7681, 16) round-trip on a random bit-vector,
// deterministic under a fixed seed.
func TestRoundTripScenario5(t *testing.T) {
	p := mustParams(t, rlwe.ParametersLiteral{N: 256, Q: 7681, K: 16})

	var seed [32]byte
	for i := range seed {
		seed[i] = byte(i)
	}
	src := sampling.NewSourceFromSeed(seed)

	kg := rlwe.NewKeyGeneratorWithSource(p, src.Fork())
	sk, pk := kg.GenerateKeyPair()

	enc := rlwe.NewEncryptorWithSource(p, src.Fork())
	dec := rlwe.NewDecryptor(p, sk)

	m := rlwe.SampleMessage(p, src.Fork())

	ct, err := enc.Encrypt(pk, m)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	got := dec.Decrypt(ct)
	for i := range m {
		if got[i] != m[i] {
			t.Fatalf("bit %d: got %d, want %d", i, got[i], m[i])
		}
	}
}

func TestRoundTripManyTrials(t *testing.T) {
	p := mustParams(t, rlwe.ParametersLiteral{N: 256, Q: 7681, K: 16})
	src := sampling.NewSource()

	for trial := 0; trial < 20; trial++ {
		kg := rlwe.NewKeyGeneratorWithSource(p, src.Fork())
		sk, pk := kg.GenerateKeyPair()
		enc := rlwe.NewEncryptorWithSource(p, src.Fork())
		dec := rlwe.NewDecryptor(p, sk)

		m := rlwe.SampleMessage(p, src.Fork())

		ct, err := enc.Encrypt(pk, m)
		if err != nil {
			t.Fatalf("trial %d: Encrypt: %v", trial, err)
		}
		got := dec.Decrypt(ct)
		for i := range m {
			if got[i] != m[i] {
				t.Fatalf("trial %d, bit %d: got %d, want %d", trial, i, got[i], m[i])
			}
		}
	}
}

func TestNewParametersFromLiteralRejectsBadDegree(t *testing.T) {
	_, err := rlwe.NewParametersFromLiteral(rlwe.ParametersLiteral{N: 3, Q: 7681, K: 16})
	if err != rlwe.ErrInvalidDegree {
		t.Fatalf("got %v, want ErrInvalidDegree", err)
	}
}

func TestNewParametersFromLiteralRejectsBadModulus(t *testing.T) {
	_, err := rlwe.NewParametersFromLiteral(rlwe.ParametersLiteral{N: 256, Q: 7680, K: 16})
	if err != rlwe.ErrInvalidModulus {
		t.Fatalf("got %v, want ErrInvalidModulus", err)
	}
}

func TestNewParametersFromLiteralRejectsBadWidth(t *testing.T) {
	_, err := rlwe.NewParametersFromLiteral(rlwe.ParametersLiteral{N: 256, Q: 7681, K: 0})
	if err != rlwe.ErrInvalidWidth {
		t.Fatalf("got %v, want ErrInvalidWidth", err)
	}
}

func TestNoiseMarginIsPositiveForProtoypeParameters(t *testing.T) {
	p := mustParams(t, rlwe.ParametersLiteral{N: 256, Q: 7681, K: 16})
	margin := p.NoiseMargin(big.NewFloat(float64(p.K())))
	if margin.Sign() <= 0 {
		t.Fatalf("expected positive noise margin, got %s", margin.String())
	}
}

func TestRawNoiseStaysWellBelowThreshold(t *testing.T) {
	p := mustParams(t, rlwe.ParametersLiteral{N: 256, Q: 7681, K: 16})
	src := sampling.NewSource()

	kg := rlwe.NewKeyGeneratorWithSource(p, src.Fork())
	sk, pk := kg.GenerateKeyPair()
	enc := rlwe.NewEncryptorWithSource(p, src.Fork())
	dec := rlwe.NewDecryptor(p, sk)

	m := rlwe.SampleMessage(p, src.Fork())

	ct, err := enc.Encrypt(pk, m)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	noise := dec.RawNoise(ct, m)
	qQuarter := int64(p.Q() / 4)
	for i, v := range noise {
		if v >= qQuarter || v <= -qQuarter {
			t.Fatalf("coefficient %d: noise %d exceeds q/4=%d", i, v, qQuarter)
		}
	}

	log2StdDev, _ := rlwe.NoiseStats(noise)
	if log2StdDev >= 64 {
		t.Fatalf("implausible noise stddev: log2 = %f", log2StdDev)
	}
}
