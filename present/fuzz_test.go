package present

import "testing"

// FuzzPLayerImplementationsAgree seeds Go's native fuzzer to search for
// any input on which the portable, table-driven and mask/shift/OR
// P-layer realizations diverge.
func FuzzPLayerImplementationsAgree(f *testing.F) {
	seeds := []uint64{
		0x0000000000000000,
		0xFFFFFFFFFFFFFFFF,
		0x0123456789ABCDEF,
		0x8000000000000000,
		0x0000000000000001,
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, s uint64) {
		want := pLayerBits(s)
		if got := pLayerTable(s); got != want {
			t.Fatalf("pLayerTable(%#x) = %#x, want %#x", s, got, want)
		}
		if got := pLayerMaskShift(s); got != want {
			t.Fatalf("pLayerMaskShift(%#x) = %#x, want %#x", s, got, want)
		}
	})
}

// FuzzSBoxLayerImplementationsAgree is the analogous fuzz target for
// the substitution layer's two realizations.
func FuzzSBoxLayerImplementationsAgree(f *testing.F) {
	f.Add(uint64(0))
	f.Add(uint64(0xFFFFFFFFFFFFFFFF))
	f.Add(uint64(0x0123456789ABCDEF))

	f.Fuzz(func(t *testing.T, s uint64) {
		if got, want := sBoxLayerByteTable(s), sBoxLayer(s); got != want {
			t.Fatalf("sBoxLayerByteTable(%#x) = %#x, want %#x", s, got, want)
		}
	})
}
