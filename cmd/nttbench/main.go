// Command nttbench round-trips random bit-vectors through key
// generation, encryption and decryption concurrently, using a pool of
// per-goroutine Encryptor/Decryptor instances so that no mutable
// sampling state is shared across workers.
package main

import (
	"flag"
	"fmt"
	"math/big"
	"os"
	"time"

	"github.com/nthroot/ntt/rlwe"
	"github.com/nthroot/ntt/utils/concurrency"
	"github.com/nthroot/ntt/utils/sampling"
)

// worker bundles one Encryptor/Decryptor pair so the ResourceManager
// checks both out to the same goroutine together.
type worker struct {
	enc *rlwe.Encryptor
	dec *rlwe.Decryptor
}

func main() {
	n := flag.Int("n", 256, "polynomial degree N (power of two)")
	q := flag.Int("q", 7681, "prime modulus Q, with 2N | Q-1")
	k := flag.Int("k", 16, "centered-binomial half-width K")
	trials := flag.Int("trials", 1000, "number of encrypt/decrypt round trips")
	workers := flag.Int("workers", 8, "number of concurrent workers")
	flag.Parse()

	params, err := rlwe.NewParametersFromLiteral(rlwe.ParametersLiteral{N: *n, Q: *q, K: *k})
	if err != nil {
		fmt.Fprintf(os.Stderr, "nttbench: %v\n", err)
		os.Exit(1)
	}

	root := sampling.NewSource()

	kg := rlwe.NewKeyGeneratorWithSource(params, root.Fork())
	sk, pk := kg.GenerateKeyPair()

	// Each worker gets its own Encryptor and Decryptor: both hold an
	// internal poly.Pool of scratch vectors that is not safe to share
	// across goroutines, so round-tripping concurrently means one pair
	// of descriptors per worker, not one Decryptor shared by all.
	workerSet := make([]*worker, *workers)
	for i := range workerSet {
		workerSet[i] = &worker{
			enc: rlwe.NewEncryptorWithSource(params, root.Fork()),
			dec: rlwe.NewDecryptor(params, sk),
		}
	}

	bitSrc := root.Fork()
	allNoise := make([]int64, 0, *trials*params.N())

	rm := concurrency.NewRessourceManager(workerSet)
	start := time.Now()
	var failures int
	for t := 0; t < *trials; t++ {
		m := rlwe.SampleMessage(params, bitSrc)
		rm.Run(func(w *worker) error {
			ct, err := w.enc.Encrypt(pk, m)
			if err != nil {
				return err
			}
			got := w.dec.Decrypt(ct)
			for i := range m {
				if got[i] != m[i] {
					return fmt.Errorf("round trip mismatch at coefficient %d", i)
				}
			}
			noise := w.dec.RawNoise(ct, m)
			allNoise = append(allNoise, noise...)
			return nil
		})
	}
	if err := rm.Wait(); err != nil {
		failures++
		fmt.Fprintf(os.Stderr, "nttbench: %v\n", err)
	}
	elapsed := time.Since(start)

	log2StdDev, mean := rlwe.NoiseStats(allNoise)
	margin := params.NoiseMargin(new(big.Float).SetFloat64(float64(1 << uint(1+int(log2StdDev)))))

	fmt.Printf("parameters        N=%d Q=%d K=%d\n", params.N(), params.Q(), params.K())
	fmt.Printf("trials             %d (%d workers)\n", *trials, *workers)
	fmt.Printf("failures           %d\n", failures)
	fmt.Printf("elapsed            %s\n", elapsed)
	fmt.Printf("noise mean         %.3f\n", mean)
	fmt.Printf("noise log2(stddev) %.3f\n", log2StdDev)
	fmt.Printf("noise margin       %s bits\n", margin.Text('f', 2))

	if failures > 0 {
		os.Exit(1)
	}
}
