// Package diffexp drives the PRESENT cipher core in a reduced-round
// configuration to empirically measure how often a fixed input
// difference α propagates to a fixed output difference β.
package diffexp

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"present80/present"
)

// Params configures one experiment run.
type Params struct {
	Keys    int
	Pairs   int
	Rounds  int
	KeySize present.KeySize
	Alpha   uint64
	Beta    uint64
}

// DefaultParams returns a representative reduced-round configuration:
// 100 independent keys, 2^25 plaintext pairs each, 4 rounds, and the
// two-bit difference 0x4004 (bits 2 and 14) as both input and output
// difference of PRESENT's four-round trail.
func DefaultParams() Params {
	return Params{
		Keys:    100,
		Pairs:   1 << 25,
		Rounds:  4,
		KeySize: present.KeySize80,
		Alpha:   0x0000000000004004,
		Beta:    0x0000000000004004,
	}
}

// KeyResult is the per-key outcome: Hits counts pairs whose ciphertext
// difference equalled Beta out of Pairs trials.
type KeyResult struct {
	Index int
	Hits  uint64
}

// Progress is reported to the caller-supplied callback at each decile of
// a key's pair loop, at most once per pair, so a loop of fewer than ten
// pairs reports after every pair.
type Progress struct {
	KeyIndex   int
	PairsDone  int
	PairsTotal int
}

// Report is the final outcome of a Run.
type Report struct {
	Params Params
	PerKey []KeyResult

	TotalHits uint64
	Total     uint64

	// Measurable is false when TotalHits is 0: a logarithm of zero has no
	// meaning, so callers should report "probability too small to
	// measure" instead.
	Measurable    bool
	EmpiricalProb float64
	NegLog2Prob   float64

	MeanHitsPerKey   float64
	StdDevHitsPerKey float64
}

// ErrNoTrials is returned when Keys or Pairs is zero, so T = Keys*Pairs
// would be zero.
var ErrNoTrials = errors.New("diffexp: no trials requested")

// Run executes the experiment described by p, using src for all
// randomness and calling progress (if non-nil) at each decile of every
// key's pair loop. Keys are processed concurrently, one *present.Cipher
// per key, since each cipher instance is only ever touched by its own
// goroutine. All workers draw from the same src, so with more than one
// key and more than one worker the order of draws, and therefore the
// result, varies from run to run even for a deterministic src.
func Run(ctx context.Context, p Params, src present.Source, progress func(Progress)) (Report, error) {
	if p.Keys <= 0 || p.Pairs <= 0 {
		return Report{Params: p}, ErrNoTrials
	}

	results := make([]KeyResult, p.Keys)

	workers := runtime.GOMAXPROCS(0)
	if workers > p.Keys {
		workers = p.Keys
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := range jobs {
				results[k] = runOneKey(p, k, src, progress)
			}
		}()
	}

	for k := 0; k < p.Keys; k++ {
		if ctx.Err() != nil {
			break
		}
		jobs <- k
	}
	close(jobs)
	wg.Wait()

	return summarize(p, results), nil
}

// runOneKey installs a fresh random key and performs p.Pairs paired
// encryptions, counting pairs whose ciphertext difference equals p.Beta.
// A key that fails to install (should not occur with the built-in
// generator) is skipped with its counter left at zero.
func runOneKey(p Params, index int, src present.Source, progress func(Progress)) KeyResult {
	cipher, err := present.New(present.Config{KeySize: p.KeySize, Rounds: p.Rounds, Rand: src})
	if err != nil {
		return KeyResult{Index: index}
	}

	key, err := cipher.GenerateRandomKey()
	if err != nil {
		return KeyResult{Index: index}
	}
	if err := cipher.InstallKey(key); err != nil {
		return KeyResult{Index: index}
	}

	var hits uint64
	nextDecile := 1

	for i := 0; i < p.Pairs; i++ {
		if ok := encryptPair(cipher, p.Alpha, p.Beta, src); ok {
			hits++
		}
		if progress != nil && (i+1)*10 >= nextDecile*p.Pairs {
			progress(Progress{KeyIndex: index, PairsDone: i + 1, PairsTotal: p.Pairs})
			nextDecile++
		}
	}

	return KeyResult{Index: index, Hits: hits}
}

// encryptPair draws one random plaintext, encrypts it and its
// α-difference partner, and reports whether the ciphertext difference
// equals β. A failure on either encryption aborts only this pair.
func encryptPair(cipher *present.Cipher, alpha, beta uint64, src present.Source) bool {
	plaintext, err := cipher.GenerateRandomBlock()
	if err != nil {
		return false
	}

	c1, err := cipher.EncryptBlock(plaintext)
	if err != nil {
		return false
	}
	c2, err := cipher.EncryptBlock(plaintext ^ alpha)
	if err != nil {
		return false
	}

	return c1^c2 == beta
}

func summarize(p Params, results []KeyResult) Report {
	r := Report{Params: p, PerKey: results}

	hitsPerKey := make([]float64, len(results))
	for i, kr := range results {
		r.TotalHits += kr.Hits
		hitsPerKey[i] = float64(kr.Hits)
	}
	r.Total = uint64(p.Keys) * uint64(p.Pairs)

	r.MeanHitsPerKey, r.StdDevHitsPerKey = meanAndStdDev(hitsPerKey)

	if r.TotalHits == 0 || r.Total == 0 {
		return r
	}

	r.Measurable = true
	r.EmpiricalProb = float64(r.TotalHits) / float64(r.Total)
	r.NegLog2Prob = -log2(r.EmpiricalProb)
	return r
}

// Summary renders a free-form human-readable report line.
func (r Report) Summary() string {
	if !r.Measurable {
		return fmt.Sprintf(
			"S=%d T=%d: probability too small to measure (no successes observed)",
			r.TotalHits, r.Total,
		)
	}
	return fmt.Sprintf(
		"S=%d T=%d p_emp=%.6e x=-log2(p_emp)=%.2f (mean/key=%.2f stddev/key=%.2f)",
		r.TotalHits, r.Total, r.EmpiricalProb, r.NegLog2Prob, r.MeanHitsPerKey, r.StdDevHitsPerKey,
	)
}
