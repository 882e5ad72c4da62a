package quad

import "math"

// This file provides the per-lane scalar fallbacks for transcendental
// functions. There is no vector form in this model: each lane goes through
// the host math library independently, so these are no faster than 4
// scalar calls.

// apply1 maps a one-argument scalar function over the lanes.
func apply1(a F32x4, f func(float64) float64) F32x4 {
	var c F32x4
	for i := range c {
		c[i] = float32(f(float64(a[i])))
	}
	return c
}

// apply2 maps a two-argument scalar function over paired lanes.
func apply2(a, b F32x4, f func(x, y float64) float64) F32x4 {
	var c F32x4
	for i := range c {
		c[i] = float32(f(float64(a[i]), float64(b[i])))
	}
	return c
}

// Acos computes per-lane arc cosine.
func Acos(a F32x4) F32x4 { return apply1(a, math.Acos) }

// Asin computes per-lane arc sine.
func Asin(a F32x4) F32x4 { return apply1(a, math.Asin) }

// Atan computes per-lane arc tangent.
func Atan(a F32x4) F32x4 { return apply1(a, math.Atan) }

// Atan2 computes per-lane atan2(a, b), the angle of the point (b, a).
func Atan2(a, b F32x4) F32x4 { return apply2(a, b, math.Atan2) }

// Ceil rounds each lane up to the nearest integer value.
func Ceil(a F32x4) F32x4 { return apply1(a, math.Ceil) }

// Cos computes per-lane cosine.
func Cos(a F32x4) F32x4 { return apply1(a, math.Cos) }

// Cosh computes per-lane hyperbolic cosine.
func Cosh(a F32x4) F32x4 { return apply1(a, math.Cosh) }

// Exp computes per-lane e**x.
func Exp(a F32x4) F32x4 { return apply1(a, math.Exp) }

// Floor rounds each lane down to the nearest integer value.
func Floor(a F32x4) F32x4 { return apply1(a, math.Floor) }

// Fmod computes the per-lane floating-point remainder of a/b; the result
// takes the sign of a.
func Fmod(a, b F32x4) F32x4 { return apply2(a, b, math.Mod) }

// Log computes per-lane natural logarithm.
func Log(a F32x4) F32x4 { return apply1(a, math.Log) }

// Log10 computes per-lane base-10 logarithm.
func Log10(a F32x4) F32x4 { return apply1(a, math.Log10) }

// Pow computes per-lane a**b.
func Pow(a, b F32x4) F32x4 { return apply2(a, b, math.Pow) }

// Sin computes per-lane sine.
func Sin(a F32x4) F32x4 { return apply1(a, math.Sin) }

// Sinh computes per-lane hyperbolic sine.
func Sinh(a F32x4) F32x4 { return apply1(a, math.Sinh) }

// Tan computes per-lane tangent.
func Tan(a F32x4) F32x4 { return apply1(a, math.Tan) }

// Tanh computes per-lane hyperbolic tangent.
func Tanh(a F32x4) F32x4 { return apply1(a, math.Tanh) }
