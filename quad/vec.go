package quad

// This file provides the lane-type-agnostic register operations: truth
// tests on raw lane bits, table-driven shuffles, register exchange, and the
// in-register 4x4 transpose. All are generic over Register, so I32x4 and
// F32x4 values pass without conversion.

//go:generate go run ../cmd/permgen -out perm_table.go

// Any returns true if any lane of a has a nonzero bit pattern.
// This tests raw bits, so a float -0.0 lane counts as nonzero.
func Any[V Register](a V) bool {
	b := toBits(a)
	return b[0] != 0 || b[1] != 0 || b[2] != 0 || b[3] != 0
}

// All returns true if every lane of a has a nonzero bit pattern.
func All[V Register](a V) bool {
	b := toBits(a)
	return b[0] != 0 && b[1] != 0 && b[2] != 0 && b[3] != 0
}

// Splat broadcasts lane n of a to all 4 lanes.
// [a0,a1,a2,a3] with n=2 -> [a2,a2,a2,a2]
// n must be in 0..3; other values panic on the control-table index.
func Splat[V Register](a V, n int) V {
	return fromBits[V](permute(toBits(a), &permTable[n*0x55]))
}

// Shuffle selects each result lane of a by index: result lane k is a[i_k].
// [a0,a1,a2,a3] with (3,2,1,0) -> [a3,a2,a1,a0]
//
// The four indices pack into a single selector i0 + 4*i1 + 16*i2 + 64*i3
// keying the shuffle-control table, the same way a hardware permute
// consumes it. Each index must be in 0..3; indices outside that range read
// whichever control entry the packed selector happens to name.
func Shuffle[V Register](a V, i0, i1, i2, i3 int) V {
	sel := i0 + i1*4 + i2*16 + i3*64
	return fromBits[V](permute(toBits(a), &permTable[sel]))
}

// Swap exchanges the register contents of a and b.
func Swap[V Register](a, b *V) {
	*a, *b = *b, *a
}

// permute applies a 16-byte shuffle control to the register image: result
// byte j is source byte ctl[j]. Portable equivalent of a byte-granular
// hardware permute.
func permute(a V128, ctl *[16]byte) V128 {
	var r V128
	for j := 0; j < 16; j++ {
		b := ctl[j]
		v := byte(a[b>>2] >> ((b & 3) * 8))
		r[j>>2] |= uint32(v) << ((j & 3) * 8)
	}
	return r
}

// interleaveLow merges the low halves of two registers.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a0,b0,a1,b1]
func interleaveLow(a, b V128) V128 {
	return V128{a[0], b[0], a[1], b[1]}
}

// interleaveHigh merges the high halves of two registers.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a2,b2,a3,b3]
func interleaveHigh(a, b V128) V128 {
	return V128{a[2], b[2], a[3], b[3]}
}

// Transpose treats a,b,c,d as the rows of a 4x4 matrix and replaces them in
// place with its columns, in two interleave stages: rows 0/2 and 1/3 merge
// half by half, then the intermediate pairs merge lane by lane.
//
//	a = [a0,a1,a2,a3]      a = [a0,b0,c0,d0]
//	b = [b0,b1,b2,b3]  ->  b = [a1,b1,c1,d1]
//	c = [c0,c1,c2,c3]      c = [a2,b2,c2,d2]
//	d = [d0,d1,d2,d3]      d = [a3,b3,c3,d3]
//
// Applying it twice restores the originals.
func Transpose[V Register](a, b, c, d *V) {
	u0 := interleaveLow(toBits(*a), toBits(*c))  // [a0,c0,a1,c1]
	u1 := interleaveLow(toBits(*b), toBits(*d))  // [b0,d0,b1,d1]
	u2 := interleaveHigh(toBits(*a), toBits(*c)) // [a2,c2,a3,c3]
	u3 := interleaveHigh(toBits(*b), toBits(*d)) // [b2,d2,b3,d3]

	*a = fromBits[V](interleaveLow(u0, u1))  // [a0,b0,c0,d0]
	*b = fromBits[V](interleaveHigh(u0, u1)) // [a1,b1,c1,d1]
	*c = fromBits[V](interleaveLow(u2, u3))  // [a2,b2,c2,d2]
	*d = fromBits[V](interleaveHigh(u2, u3)) // [a3,b3,c3,d3]
}
