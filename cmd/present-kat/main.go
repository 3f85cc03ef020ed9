// Command present-kat runs PRESENT's known-answer vectors and prints a
// PASS/FAIL banner per case.
package main

import (
	"fmt"
	"os"

	"present80/present"
)

// vector is one known-answer test case: a key size, round count, key
// and plaintext, and the ciphertext a conforming implementation must
// produce.
type vector struct {
	name       string
	keySize    present.KeySize
	rounds     int
	key        []byte
	plaintext  uint64
	ciphertext uint64
}

// vectors returns the known-answer test suite: published reference
// vectors any conforming PRESENT implementation must reproduce exactly.
func vectors() []vector {
	return []vector{
		{
			name:       "present80-full-round-zero-key-zero-plaintext",
			keySize:    present.KeySize80,
			rounds:     31,
			key:        make([]byte, 10),
			plaintext:  0,
			ciphertext: 0x5579c1387b228445,
		},
	}
}

func main() {
	suite := vectors()
	passed, failed := 0, 0

	for _, v := range suite {
		fmt.Printf("=== %s ===\n", v.name)
		fmt.Printf("key:        %x\n", v.key)

		cipher, err := present.New(present.Config{KeySize: v.keySize, Rounds: v.rounds})
		if err != nil {
			fmt.Printf("verdict:    FAIL (%v)\n\n", err)
			failed++
			continue
		}
		if err := cipher.InstallKey(v.key); err != nil {
			fmt.Printf("verdict:    FAIL (%v)\n\n", err)
			failed++
			continue
		}

		got, err := cipher.EncryptBlock(v.plaintext)
		if err != nil {
			fmt.Printf("verdict:    FAIL (%v)\n\n", err)
			failed++
			continue
		}

		fmt.Printf("expected:   %016x\n", v.ciphertext)
		fmt.Printf("actual:     %016x\n", got)

		if got == v.ciphertext {
			fmt.Println("verdict:    PASS")
			passed++
		} else {
			fmt.Println("verdict:    FAIL")
			failed++
		}
		fmt.Println()
	}

	fmt.Printf("%d passed, %d failed\n", passed, failed)
	if failed > 0 {
		os.Exit(1)
	}
}
