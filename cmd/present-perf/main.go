// Command present-perf benchmarks PRESENT-80 encrypt-block throughput.
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"present80/present"
)

const defaultIterations = 100_000

func main() {
	iterations := defaultIterations
	if len(os.Args) > 1 {
		n, err := strconv.Atoi(os.Args[1])
		if err != nil || n <= 0 {
			fmt.Fprintf(os.Stderr, "present-perf: invalid num_encryptions %q, using default %d\n", os.Args[1], defaultIterations)
		} else {
			iterations = n
		}
	}

	cipher, err := present.New(present.Config{KeySize: present.KeySize80, Rounds: 31})
	if err != nil {
		fmt.Fprintf(os.Stderr, "present-perf: %v\n", err)
		os.Exit(1)
	}

	key, err := cipher.GenerateRandomKey()
	if err != nil {
		fmt.Fprintf(os.Stderr, "present-perf: generating key: %v\n", err)
		os.Exit(1)
	}
	if err := cipher.InstallKey(key); err != nil {
		fmt.Fprintf(os.Stderr, "present-perf: installing key: %v\n", err)
		os.Exit(1)
	}

	plaintexts := make([]uint64, iterations)
	for i := range plaintexts {
		b, err := cipher.GenerateRandomBlock()
		if err != nil {
			fmt.Fprintf(os.Stderr, "present-perf: generating plaintext: %v\n", err)
			os.Exit(1)
		}
		plaintexts[i] = b
	}

	start := time.Now()
	var sink uint64
	for _, p := range plaintexts {
		c, err := cipher.EncryptBlock(p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "present-perf: encrypt failed: %v\n", err)
			os.Exit(1)
		}
		sink ^= c
	}
	elapsed := time.Since(start)

	fmt.Printf("encryptions: %d\n", iterations)
	fmt.Printf("elapsed: %v\n", elapsed)
	fmt.Printf("throughput: %.2f encryptions/s\n", float64(iterations)/elapsed.Seconds())
	fmt.Printf("checksum: %016x\n", sink)
}
