package quad

import "math"

// This file provides the memory interchange routines: whole-register block
// moves and the transposed loads/stores that convert between
// struct-of-arrays buffers and per-field registers. Memory is always
// []float32; integer lane data passes through float storage bit-exactly.
//
// The 4x1 block family and the 4x3/4x4 transposed family document a
// 16-byte alignment precondition on the first element for parity with the
// hardware mapping. It is never checked, and the portable implementations
// accept any []float32. Lengths are enforced only by the bounds checks of
// the element accesses.

// Load4x1 loads one full register from the first 4 elements of src.
// src must be 16-byte aligned for the hardware mapping; no ordering
// guarantee is made beyond plain loads.
func Load4x1[V Register](src []float32) V {
	var b V128
	for i := range b {
		b[i] = math.Float32bits(src[i])
	}
	return fromBits[V](b)
}

// Store4x1 stores a to the first 4 elements of dst. Same alignment
// contract as Load4x1; no ordering guarantee beyond plain stores.
func Store4x1[V Register](a V, dst []float32) {
	b := toBits(a)
	for i := range b {
		dst[i] = math.Float32frombits(b[i])
	}
}

// Stream4x1 stores a to dst with non-temporal intent: the caller does not
// expect to read dst back soon. The cache-bypass hint has no portable
// equivalent, so the logical effect is exactly Store4x1.
func Stream4x1[V Register](a V, dst []float32) {
	Store4x1(a, dst)
}

// Copy4x1 copies one 16-byte block from src to dst.
func Copy4x1(dst, src []float32) {
	copy(dst[:4], src[:4])
}

// Swap4x1 exchanges two 16-byte blocks.
func Swap4x1(a, b []float32) {
	for i := 0; i < 4; i++ {
		a[i], b[i] = b[i], a[i]
	}
}

// Load4x1Tr gathers one value from each of 4 field buffers: lane p of the
// result is ap[0]. Pure per-element gather, no alignment required.
func Load4x1Tr(a0, a1, a2, a3 []float32) V128 {
	return V128{
		math.Float32bits(a0[0]),
		math.Float32bits(a1[0]),
		math.Float32bits(a2[0]),
		math.Float32bits(a3[0]),
	}
}

// Load4x2Tr gathers two values from each of 4 field buffers: lane p of a
// is ap[0], lane p of b is ap[1]. The buffers must be 8-byte aligned for
// the hardware mapping.
func Load4x2Tr(a0, a1, a2, a3 []float32) (a, b V128) {
	a = V128{
		math.Float32bits(a0[0]),
		math.Float32bits(a1[0]),
		math.Float32bits(a2[0]),
		math.Float32bits(a3[0]),
	}
	b = V128{
		math.Float32bits(a0[1]),
		math.Float32bits(a1[1]),
		math.Float32bits(a2[1]),
		math.Float32bits(a3[1]),
	}
	return a, b
}

// Load4x3Tr loads a full 16-byte block from each of 4 field buffers and
// transposes them into 3 field registers, discarding what would be the
// 4th: lane p of a is ap[0], of b is ap[1], of c is ap[2]. Each buffer
// must be 16-byte aligned and 4 elements long even though only 3 are
// used.
func Load4x3Tr(a0, a1, a2, a3 []float32) (a, b, c V128) {
	a = Load4x1[V128](a0)
	b = Load4x1[V128](a1)
	c = Load4x1[V128](a2)
	d := Load4x1[V128](a3)
	Transpose(&a, &b, &c, &d)
	return a, b, c
}

// Load4x4Tr loads a full 16-byte block from each of 4 field buffers and
// transposes them into 4 field registers: lane p of the k-th result is
// ap[k]. The buffers must be 16-byte aligned.
func Load4x4Tr(a0, a1, a2, a3 []float32) (a, b, c, d V128) {
	a = Load4x1[V128](a0)
	b = Load4x1[V128](a1)
	c = Load4x1[V128](a2)
	d = Load4x1[V128](a3)
	Transpose(&a, &b, &c, &d)
	return a, b, c, d
}

// Store4x1Tr scatters the lanes of a to 4 field buffers: ap[0] receives
// lane p. Pure per-element scatter, no alignment required.
func Store4x1Tr(a V128, a0, a1, a2, a3 []float32) {
	a0[0] = math.Float32frombits(a[0])
	a1[0] = math.Float32frombits(a[1])
	a2[0] = math.Float32frombits(a[2])
	a3[0] = math.Float32frombits(a[3])
}

// Store4x2Tr scatters the lanes of a and b to 4 field buffers: ap[0]
// receives lane p of a, ap[1] lane p of b. The buffers must be 8-byte
// aligned for the hardware mapping.
func Store4x2Tr(a, b V128, a0, a1, a2, a3 []float32) {
	a0[0], a0[1] = math.Float32frombits(a[0]), math.Float32frombits(b[0])
	a1[0], a1[1] = math.Float32frombits(a[1]), math.Float32frombits(b[1])
	a2[0], a2[1] = math.Float32frombits(a[2]), math.Float32frombits(b[2])
	a3[0], a3[1] = math.Float32frombits(a[3]), math.Float32frombits(b[3])
}

// Store4x3Tr scatters the lanes of a, b and c to 4 field buffers: ap[0..2]
// receive lane p of a, b, c. Exactly 3 values are written per buffer; the
// 4th element of each, if present, is left untouched. The buffers must be
// 16-byte aligned for the hardware mapping.
func Store4x3Tr(a, b, c V128, a0, a1, a2, a3 []float32) {
	a0[0], a0[1], a0[2] = math.Float32frombits(a[0]), math.Float32frombits(b[0]), math.Float32frombits(c[0])
	a1[0], a1[1], a1[2] = math.Float32frombits(a[1]), math.Float32frombits(b[1]), math.Float32frombits(c[1])
	a2[0], a2[1], a2[2] = math.Float32frombits(a[2]), math.Float32frombits(b[2]), math.Float32frombits(c[2])
	a3[0], a3[1], a3[2] = math.Float32frombits(a[3]), math.Float32frombits(b[3]), math.Float32frombits(c[3])
}

// Store4x4Tr transposes the 4 field registers back to record order and
// stores one full 16-byte block to each buffer: ap[k] receives lane p of
// the k-th argument. The buffers must be 16-byte aligned. Inverse of
// Load4x4Tr.
func Store4x4Tr(a, b, c, d V128, a0, a1, a2, a3 []float32) {
	Transpose(&a, &b, &c, &d)
	Store4x1(a, a0)
	Store4x1(b, a1)
	Store4x1(c, a2)
	Store4x1(d, a3)
}

// Increment4x1 adds a to the 16-byte block at dst in place. Plain
// read-modify-write, not atomic.
func Increment4x1(dst []float32, a F32x4) {
	for i := range a {
		dst[i] += a[i]
	}
}

// Decrement4x1 subtracts a from the 16-byte block at dst in place. Not
// atomic.
func Decrement4x1(dst []float32, a F32x4) {
	for i := range a {
		dst[i] -= a[i]
	}
}

// Scale4x1 multiplies the 16-byte block at dst by a in place. Not atomic.
func Scale4x1(dst []float32, a F32x4) {
	for i := range a {
		dst[i] *= a[i]
	}
}
