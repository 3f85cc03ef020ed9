package present

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"io"
	"sync"

	"golang.org/x/crypto/hkdf"
)

// Source is the PRNG collaborator used by
// GenerateRandomKey and GenerateRandomBlock. Exposing randomness as an
// explicit, injectable dependency instead of a hidden package-global
// lets experiments run against a deterministic source for regression
// testing while production code defaults to system entropy.
// Implementations must serialize their own internal state; callers may
// share one Source across goroutines.
type Source interface {
	// ReadKey fills dst with uniformly random bytes.
	ReadKey(dst []byte) error
	// ReadBlock returns a uniformly random 64-bit value.
	ReadBlock() (uint64, error)
}

// systemSource is a Source backed by crypto/rand, the system's
// non-deterministic entropy source, with its own mutex so concurrent
// callers never interleave reads.
type systemSource struct {
	mu sync.Mutex
}

// NewSystemSource returns a Source drawing from the operating system's
// CSPRNG. It is the default Source used when Config.Rand is nil.
func NewSystemSource() Source { return &systemSource{} }

func (s *systemSource) ReadKey(dst []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := io.ReadFull(rand.Reader, dst)
	return err
}

func (s *systemSource) ReadBlock() (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var buf [8]byte
	if _, err := io.ReadFull(rand.Reader, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(buf[:]), nil
}

// deterministicSource is a Source whose output is a pure function of a
// seed and a monotonically increasing counter, expanded with
// HKDF-SHA256. Two deterministicSource values built from the same seed
// produce identical sequences; which caller receives which value depends
// on the order of calls, so goroutines sharing one source get values
// that vary with scheduling.
type deterministicSource struct {
	mu      sync.Mutex
	seed    []byte
	counter uint64
}

// NewDeterministicSource returns a Source whose entire output sequence
// is determined by seed. It is intended for regression tests and
// reproducible single-goroutine runs, not for production key generation.
func NewDeterministicSource(seed []byte) Source {
	seedCopy := append([]byte(nil), seed...)
	return &deterministicSource{seed: seedCopy}
}

func (s *deterministicSource) next(size int) []byte {
	s.mu.Lock()
	idx := s.counter
	s.counter++
	s.mu.Unlock()

	var info [8]byte
	binary.BigEndian.PutUint64(info[:], idx)

	out := make([]byte, size)
	r := hkdf.New(sha256.New, s.seed, nil, info[:])
	if _, err := io.ReadFull(r, out); err != nil {
		// hkdf.New only fails to produce bytes when the requested
		// length exceeds 255*hash size; our callers never ask for
		// that much, so this can only indicate a programming error.
		panic("present: hkdf expansion failed: " + err.Error())
	}
	return out
}

func (s *deterministicSource) ReadKey(dst []byte) error {
	copy(dst, s.next(len(dst)))
	return nil
}

func (s *deterministicSource) ReadBlock() (uint64, error) {
	return binary.BigEndian.Uint64(s.next(8)), nil
}
