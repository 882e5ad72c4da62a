// Package quad provides fixed-width 4-lane SIMD value types modeling a
// single 128-bit vector register.
//
// Three cooperating value types share one register image: V128 is the
// lane-type-agnostic carrier, I32x4 views the register as 4 signed 32-bit
// integer lanes, and F32x4 views it as 4 IEEE-754 binary32 lanes. All three
// are plain Go arrays, copied by value, with no shared ownership.
//
// Basic usage:
//
//	import "github.com/quadsim/go-quad/quad"
//
//	a := quad.F32x4{1, 2, 3, 4}
//	b := quad.SplatF32(0.5)
//
//	// Lane-wise arithmetic
//	c := a.Mul(b)
//
//	// Branchless selection
//	m := a.GreaterThan(b)
//	d := quad.Merge(m, a, b)
//
// Comparison and logical operators produce masks: an I32x4 whose lanes are
// each exactly 0 or -1 (all bits set). Masks are consumed by the combinators
// CZero, NotCZero and Merge and by the float bit operations.
package quad

import "unsafe"

// V128 is the opaque 4-lane register carrier. Lane k occupies element k;
// byte j of the register image is byte j%4 of lane j/4, least significant
// byte first. Operations that do not depend on lane interpretation (Any,
// All, Splat, Shuffle, Swap, Transpose, the memory routines) work on V128
// or on any type that shares its image.
type V128 [4]uint32

// I32x4 views the register as 4 lanes of two's-complement signed 32-bit
// integers.
type I32x4 [4]int32

// F32x4 views the register as 4 lanes of IEEE-754 binary32 values.
type F32x4 [4]float32

// Register is the constraint for the three types sharing the 128-bit
// register image. The lane-type-agnostic operations are generic over it, so
// no conversion is needed at call sites.
type Register interface {
	V128 | I32x4 | F32x4
}

// toBits reinterprets any register value as its raw carrier image.
// All Register types are exactly 16 bytes with identical layout.
func toBits[V Register](v V) V128 {
	return *(*V128)(unsafe.Pointer(&v))
}

// fromBits reinterprets a raw carrier image as a register value.
func fromBits[V Register](b V128) V {
	return *(*V)(unsafe.Pointer(&b))
}

// SplatI32 returns an I32x4 with all lanes set to s.
func SplatI32(s int32) I32x4 {
	return I32x4{s, s, s, s}
}

// SplatF32 returns an F32x4 with all lanes set to s.
func SplatF32(s float32) F32x4 {
	return F32x4{s, s, s, s}
}

// AsI32x4 reinterprets the carrier bits as integer lanes.
func (v V128) AsI32x4() I32x4 {
	return fromBits[I32x4](v)
}

// AsF32x4 reinterprets the carrier bits as float lanes.
func (v V128) AsF32x4() F32x4 {
	return fromBits[F32x4](v)
}

// AsV128 returns the raw carrier image of v.
func (v I32x4) AsV128() V128 {
	return toBits(v)
}

// AsF32x4 reinterprets the integer lane bits as float lanes.
func (v I32x4) AsF32x4() F32x4 {
	return fromBits[F32x4](toBits(v))
}

// AsV128 returns the raw carrier image of v. Float lane bits pass through
// unmodified, NaN payloads included.
func (v F32x4) AsV128() V128 {
	return toBits(v)
}

// AsI32x4 reinterprets the float lane bits as integer lanes.
func (v F32x4) AsI32x4() I32x4 {
	return fromBits[I32x4](toBits(v))
}
