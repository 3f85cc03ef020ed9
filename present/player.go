package present

import "github.com/klauspost/cpuid/v2"

// pLayerBits is the portable, bit-by-bit reference implementation of
// PRESENT's permutation layer: bit j of the input moves to bit P(j) of
// the output, where P(j) = (16*j) mod 63 for j in [0,62] and P(63) = 63.
func pLayerBits(s uint64) uint64 {
	var out uint64
	for j := uint(0); j < 63; j++ {
		if s&(1<<j) == 0 {
			continue
		}
		p := (16 * j) % 63
		out |= 1 << p
	}
	if s&(1<<63) != 0 {
		out |= 1 << 63
	}
	return out
}

// pLayerTable is a precomputed byte-indexed realization of the same
// permutation: for each of the 8 input bytes, pByteTable[i] maps the
// byte's 256 possible values to their contribution to the permuted
// 64-bit word. The final result is the OR of all 8 contributions. This
// is the "precomputed byte-indexed table" fallback described in the
// Design Notes for platforms where the mask/shift/OR path below is not
// worth its setup cost.
var pByteTable = buildPByteTable()

func buildPByteTable() [8][256]uint64 {
	var table [8][256]uint64
	for byteIdx := 0; byteIdx < 8; byteIdx++ {
		for v := 0; v < 256; v++ {
			table[byteIdx][v] = pLayerBits(uint64(v) << uint(byteIdx*8))
		}
	}
	return table
}

func pLayerTable(s uint64) uint64 {
	var out uint64
	for byteIdx := 0; byteIdx < 8; byteIdx++ {
		b := byte(s >> uint(byteIdx*8))
		out |= pByteTable[byteIdx][b]
	}
	return out
}

// The four masks select, from each of the 16 nibbles, the bit at a fixed
// position within the nibble (bit 0, 1, 2 or 3 respectively).
const (
	pMask0 = 0x1111111111111111 // bit 0 of every nibble
	pMask1 = 0x2222222222222222 // bit 1 of every nibble
	pMask2 = 0x4444444444444444 // bit 2 of every nibble
	pMask3 = 0x8888888888888888 // bit 3 of every nibble
)

// compress implements a generalized parallel bit-extract (software
// PEXT): it gathers the bits of x selected by mask into the low-order
// bits of the result, preserving their relative order. This is the
// classic "compress right" construction (Hacker's Delight, ch. 7-4)
// used to emulate a hardware PEXT instruction when the target lacks
// one.
func compress(x, mask uint64) uint64 {
	x &= mask
	mk := ^mask << 1
	for i := uint(0); i < 6; i++ {
		mp := mk ^ (mk << 1)
		mp ^= mp << 2
		mp ^= mp << 4
		mp ^= mp << 8
		mp ^= mp << 16
		mp ^= mp << 32
		mv := mp & mask
		mask = (mask ^ mv) | (mv >> (1 << i))
		t := x & mv
		x = (x ^ t) | (t >> (1 << i))
		mk &^= mp
	}
	return x
}

// pLayerMaskShift realizes the permutation with four parallel extracts,
// one per bit-within-nibble position, each compressed into 16 contiguous
// bits and shifted into its output word offset (0, 16, 32 or 48). For
// nibble k and bit-within-nibble b (input bit j = 4k+b), this places the
// bit at 16*b+k. For j in [0,62], P(j) = (16*b + k) mod 63 and 16*b+k is
// at most 62, so the two agree; for j=63 (k=15, b=3) it places the bit at
// 48+15 = 63 = P(63), so no special case is needed here even though
// pLayerBits carries one explicitly.
func pLayerMaskShift(s uint64) uint64 {
	w0 := compress(s, pMask0)
	w1 := compress(s, pMask1)
	w2 := compress(s, pMask2)
	w3 := compress(s, pMask3)
	return w0 | (w1 << 16) | (w2 << 32) | (w3 << 48)
}

// pLayerFunc is the signature shared by every P-layer implementation.
type pLayerFunc func(uint64) uint64

// selectPLayer picks the fastest P-layer realization this process can
// use, gated on a CPU capability check. BMI2-capable CPUs execute the
// mask/shift/OR compress tightly enough to beat a table lookup's cache
// misses; otherwise the byte-indexed table wins.
func selectPLayer() pLayerFunc {
	if cpuid.CPU.Supports(cpuid.BMI2) {
		return pLayerMaskShift
	}
	return pLayerTable
}
