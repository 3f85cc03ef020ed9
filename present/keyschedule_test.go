package present

import "testing"

// TestKeySchedule80RegressionVectors checks PRESENT-80's key schedule
// against an all-zero master key: the first three round keys must match
// the standard PRESENT test vectors.
func TestKeySchedule80RegressionVectors(t *testing.T) {
	keys := scheduleRoundKeys80(make([]byte, 10), 31)

	want := []uint64{
		0x0000000000000000,
		0xC000000000000000,
		0x5000180000000001,
	}
	for i, w := range want {
		if keys[i] != w {
			t.Errorf("K%d = %#016x, want %#016x", i+1, keys[i], w)
		}
	}
}

func TestKeyScheduleLengthMatchesRounds(t *testing.T) {
	for rounds := 1; rounds <= 31; rounds++ {
		keys80 := scheduleRoundKeys80(make([]byte, 10), rounds)
		if len(keys80) != rounds+1 {
			t.Errorf("80-bit rounds=%d: got %d keys, want %d", rounds, len(keys80), rounds+1)
		}
		keys128 := scheduleRoundKeys128(make([]byte, 16), rounds)
		if len(keys128) != rounds+1 {
			t.Errorf("128-bit rounds=%d: got %d keys, want %d", rounds, len(keys128), rounds+1)
		}
	}
}

func TestRegisterBitHelpersRoundTrip(t *testing.T) {
	reg := make([]byte, 10)
	for pos := 0; pos < 80; pos++ {
		setBit(reg, pos, 1)
		if getBit(reg, pos) != 1 {
			t.Fatalf("setBit/getBit mismatch at position %d", pos)
		}
		setBit(reg, pos, 0)
		if getBit(reg, pos) != 0 {
			t.Fatalf("setBit/getBit mismatch clearing position %d", pos)
		}
	}
}

func TestRotateLeftMovesBitAndPreservesWeight(t *testing.T) {
	reg := []byte{0x80, 0, 0, 0, 0, 0, 0, 0, 0, 0} // bit 79 set
	rotated := rotateLeft(reg, 61)
	// bit at position 79 should now sit at (79+61) mod 80 = 60.
	if getBit(rotated, 60) != 1 {
		t.Fatalf("expected bit 60 set after rotating bit 79 left by 61, register = %x", rotated)
	}
	var ones int
	for pos := 0; pos < 80; pos++ {
		ones += int(getBit(rotated, pos))
	}
	if ones != 1 {
		t.Fatalf("rotateLeft must preserve Hamming weight, got %d set bits", ones)
	}
}

func TestExtractTopBits64MatchesSpecNumbering(t *testing.T) {
	reg := make([]byte, 10)
	setBit(reg, 79, 1) // MSB of the register
	setBit(reg, 16, 1) // bottom bit of the extracted window
	setBit(reg, 15, 1) // just outside the extracted window

	k := extractTopBits64(reg, 64)
	if k&(1<<63) == 0 {
		t.Errorf("bit 63 of K (= R[79]) should be set")
	}
	if k&(1<<0) == 0 {
		t.Errorf("bit 0 of K (= R[16]) should be set")
	}
	if k&^uint64(1<<63|1) != 0 {
		t.Errorf("only bits 63 and 0 of K should be set, got %#x", k)
	}
}
