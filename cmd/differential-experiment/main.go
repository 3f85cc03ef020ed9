// Command differential-experiment drives the PRESENT cipher core in a
// reduced-round configuration and reports how often a fixed input
// difference propagates to a fixed output difference.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"

	"present80/diffexp"
	"present80/present"
)

func main() {
	defaults := diffexp.DefaultParams()

	keys := flag.Int("keys", defaults.Keys, "number of independent random keys")
	rounds := flag.Int("rounds", defaults.Rounds, "reduced round count (1..31)")
	alphaHex := flag.String("alpha", fmt.Sprintf("%016x", defaults.Alpha), "input difference, 16 hex digits")
	betaHex := flag.String("beta", fmt.Sprintf("%016x", defaults.Beta), "target output difference, 16 hex digits")
	jsonOut := flag.Bool("json", false, "emit the final report as JSON instead of the text banner")
	flag.Parse()

	pairs := defaults.Pairs
	if args := flag.Args(); len(args) > 0 {
		n, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || n <= 0 {
			fmt.Fprintf(os.Stderr, "differential-experiment: N_plaintexts must be a positive integer, got %q\n", args[0])
			os.Exit(1)
		}
		pairs = int(n)
	}

	alpha, err := strconv.ParseUint(*alphaHex, 16, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "differential-experiment: invalid -alpha %q: %v\n", *alphaHex, err)
		os.Exit(1)
	}
	beta, err := strconv.ParseUint(*betaHex, 16, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "differential-experiment: invalid -beta %q: %v\n", *betaHex, err)
		os.Exit(1)
	}

	params := diffexp.Params{
		Keys:    *keys,
		Pairs:   pairs,
		Rounds:  *rounds,
		KeySize: present.KeySize80,
		Alpha:   alpha,
		Beta:    beta,
	}

	fmt.Printf("keys=%d pairs=%d rounds=%d alpha=%016x beta=%016x\n",
		params.Keys, params.Pairs, params.Rounds, params.Alpha, params.Beta)

	report, err := diffexp.Run(context.Background(), params, present.NewSystemSource(), func(p diffexp.Progress) {
		fmt.Printf("key %d/%d: %d/%d pairs done\n", p.KeyIndex+1, params.Keys, p.PairsDone, p.PairsTotal)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "differential-experiment: %v\n", err)
		os.Exit(1)
	}

	for _, kr := range report.PerKey {
		fmt.Printf("key %d: hits=%d\n", kr.Index, kr.Hits)
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			fmt.Fprintf(os.Stderr, "differential-experiment: encoding report: %v\n", err)
			os.Exit(1)
		}
	} else {
		fmt.Println(report.Summary())
	}
}
