package present

import "testing"

// pLayerInverse is a standalone reference inverse of the permutation,
// used only by tests (property 4: pLayer is a bijection).
func pLayerInverse(s uint64) uint64 {
	var out uint64
	for j := uint(0); j < 63; j++ {
		p := (16 * j) % 63
		if s&(1<<p) != 0 {
			out |= 1 << j
		}
	}
	if s&(1<<63) != 0 {
		out |= 1 << 63
	}
	return out
}

func TestPLayerIsBijection(t *testing.T) {
	t.Parallel()

	rng := newTestPRNG(1)
	for i := 0; i < 100_000; i++ {
		s := rng.Next()
		permuted := pLayerBits(s)
		if back := pLayerInverse(permuted); back != s {
			t.Fatalf("iteration %d: pLayerInverse(pLayerBits(%#x)) = %#x, want %#x", i, s, back, s)
		}
	}
}

func TestPLayerBit63IsFixed(t *testing.T) {
	if pLayerBits(1<<63) != 1<<63 {
		t.Fatalf("bit 63 must be a fixed point of the permutation")
	}
}

func TestPLayerImplementationsAgree(t *testing.T) {
	t.Parallel()

	impls := []struct {
		name string
		fn   pLayerFunc
	}{
		{"table", pLayerTable},
		{"maskShift", pLayerMaskShift},
	}

	rng := newTestPRNG(0xBADC0DE)
	for i := 0; i < 1_000_000; i++ {
		s := rng.Next()
		want := pLayerBits(s)
		for _, impl := range impls {
			if got := impl.fn(s); got != want {
				t.Fatalf("iteration %d: %s(%#x) = %#x, want %#x", i, impl.name, s, got, want)
			}
		}
	}
}

func TestSelectPLayerMatchesReference(t *testing.T) {
	selected := selectPLayer()
	rng := newTestPRNG(42)
	for i := 0; i < 10_000; i++ {
		s := rng.Next()
		if got, want := selected(s), pLayerBits(s); got != want {
			t.Fatalf("iteration %d: selected P-layer disagrees with reference: got %#x, want %#x", i, got, want)
		}
	}
}
