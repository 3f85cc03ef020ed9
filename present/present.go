// Package present implements the encryption direction of the PRESENT
// lightweight block cipher: its 4-bit S-box layer, its 64-bit
// permutation layer, and its key schedule over 80- or 128-bit key
// registers. Decryption, modes of operation, padding and authenticated
// encryption are out of scope.
package present

import "fmt"

// KeySize identifies which PRESENT key-register width a Cipher uses.
// It is a typed constant rather than a bare int so that an invalid size
// is a compile-time-discoverable mistake at call sites instead of a
// magic integer.
type KeySize int

const (
	KeySize80  KeySize = 80
	KeySize128 KeySize = 128
)

// Bytes returns the number of key bytes this size requires.
func (k KeySize) Bytes() int { return int(k) / 8 }

func (k KeySize) valid() bool { return k == KeySize80 || k == KeySize128 }

// Config parameterizes a new Cipher instance. Rand is optional; when nil,
// New installs a system-entropy-backed Source (see present/rand.go).
type Config struct {
	KeySize KeySize
	Rounds  int
	Rand    Source
}

// state is the Cipher's lifecycle state machine: an instance starts
// Unkeyed and becomes Keyed once InstallKey succeeds.
type state int

const (
	stateUnkeyed state = iota
	stateKeyed
)

// Cipher is a stateless-per-block PRESENT transform parameterized by a
// key size and round count, holding a precomputed round-key table once
// a key has been installed. A Cipher is not safe for concurrent use
// between InstallKey and EncryptBlock on the same instance; concurrent
// EncryptBlock calls on an already-Keyed instance are safe since they
// only read the immutable round-key table.
type Cipher struct {
	keySize KeySize
	rounds  int
	pLayer  pLayerFunc

	state     state
	roundKeys []uint64

	rand Source
}

// New constructs an unkeyed Cipher instance. keySize must be 80 or 128;
// rounds must be in [1, 31].
func New(cfg Config) (*Cipher, error) {
	if !cfg.KeySize.valid() {
		return nil, fmt.Errorf("%w: key size must be 80 or 128, got %d", ErrInvalidParameter, cfg.KeySize)
	}
	if cfg.Rounds < 1 || cfg.Rounds > 31 {
		return nil, fmt.Errorf("%w: rounds must be in [1,31], got %d", ErrInvalidParameter, cfg.Rounds)
	}
	src := cfg.Rand
	if src == nil {
		src = NewSystemSource()
	}

	return &Cipher{
		keySize: cfg.KeySize,
		rounds:  cfg.Rounds,
		pLayer:  selectPLayer(),
		state:   stateUnkeyed,
		rand:    src,
	}, nil
}

// KeySize reports the configured key size.
func (c *Cipher) KeySize() KeySize { return c.keySize }

// Rounds reports the configured round count.
func (c *Cipher) Rounds() int { return c.rounds }

// Ready reports whether a key has been installed.
func (c *Cipher) Ready() bool { return c.state == stateKeyed }

// InstallKey derives and stores the r+1 round keys from key. key must be
// exactly KeySize/8 bytes; otherwise ErrInvalidKeyLength is returned and
// any previously installed round-key table is left untouched.
func (c *Cipher) InstallKey(key []byte) error {
	want := c.keySize.Bytes()
	if len(key) != want {
		return fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidKeyLength, want, len(key))
	}

	var roundKeys []uint64
	switch c.keySize {
	case KeySize80:
		roundKeys = scheduleRoundKeys80(key, c.rounds)
	case KeySize128:
		roundKeys = scheduleRoundKeys128(key, c.rounds)
	}

	c.roundKeys = roundKeys
	c.state = stateKeyed
	return nil
}

// EncryptBlock encrypts a single 64-bit plaintext block. It fails with
// ErrKeyNotSet if no key has been installed.
func (c *Cipher) EncryptBlock(plaintext uint64) (uint64, error) {
	if c.state != stateKeyed {
		return 0, ErrKeyNotSet
	}

	s := plaintext
	for i := 0; i < c.rounds; i++ {
		s ^= c.roundKeys[i]
		s = sBoxLayer(s)
		s = c.pLayer(s)
	}
	return s ^ c.roundKeys[c.rounds], nil
}

// GenerateRandomKey returns KeySize/8 bytes drawn from the Cipher's
// configured Source (crypto/rand by default).
func (c *Cipher) GenerateRandomKey() ([]byte, error) {
	key := make([]byte, c.keySize.Bytes())
	if err := c.rand.ReadKey(key); err != nil {
		return nil, fmt.Errorf("present: generating random key: %w", err)
	}
	return key, nil
}

// GenerateRandomBlock returns a uniformly random 64-bit value drawn from
// the Cipher's configured Source.
func (c *Cipher) GenerateRandomBlock() (uint64, error) {
	v, err := c.rand.ReadBlock()
	if err != nil {
		return 0, fmt.Errorf("present: generating random block: %w", err)
	}
	return v, nil
}
