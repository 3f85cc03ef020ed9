package present

import "errors"

// Sentinel errors returned by the cipher core. Callers compare with
// errors.Is; the experiment driver in package diffexp does not treat
// these as fatal: it skips the affected key or pair and continues. It
// does not log them.
var (
	// ErrInvalidParameter is returned by New when the key size or round
	// count falls outside the values PRESENT defines.
	ErrInvalidParameter = errors.New("present: invalid parameter")

	// ErrInvalidKeyLength is returned by InstallKey when the supplied key
	// does not have exactly KeySize/8 bytes.
	ErrInvalidKeyLength = errors.New("present: invalid key length")

	// ErrKeyNotSet is returned by EncryptBlock when no key has been
	// installed yet.
	ErrKeyNotSet = errors.New("present: key not installed")
)
