// Copyright 2025 go-quad Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package quad

import "math"

// This file provides the F32x4 arithmetic, comparison and logical operator
// set plus the fused multiply family. Division lives here but delegates to
// the reciprocal refinement in approx.go; it is not a true divide.

// Add performs element-wise addition.
func (a F32x4) Add(b F32x4) F32x4 {
	var c F32x4
	for i := range c {
		c[i] = a[i] + b[i]
	}
	return c
}

// Sub performs element-wise subtraction.
func (a F32x4) Sub(b F32x4) F32x4 {
	var c F32x4
	for i := range c {
		c[i] = a[i] - b[i]
	}
	return c
}

// Mul performs element-wise multiplication, rounded once per lane like a
// direct scalar multiply.
func (a F32x4) Mul(b F32x4) F32x4 {
	var c F32x4
	for i := range c {
		c[i] = a[i] * b[i]
	}
	return c
}

// Div performs element-wise division as multiplication by the refined
// reciprocal of b (see Rcp): a coarse estimate improved by exactly two
// Newton-Raphson steps. Relative error stays below 2^-21 for finite
// nonzero normal divisors; results are not bit-identical to a true divide.
// A zero divisor lane yields NaN through the reciprocal pole, not Inf.
func (a F32x4) Div(b F32x4) F32x4 {
	r := Rcp(b)
	var c F32x4
	for i := range c {
		c[i] = a[i] * r[i]
	}
	return c
}

// Neg negates all lanes.
func (a F32x4) Neg() F32x4 {
	var c F32x4
	for i := range c {
		c[i] = -a[i]
	}
	return c
}

// Equal performs element-wise equality comparison, producing a mask. A NaN
// lane compares false, including against itself.
func (a F32x4) Equal(b F32x4) I32x4 {
	var m I32x4
	for i := range m {
		m[i] = maskBool(a[i] == b[i])
	}
	return m
}

// NotEqual performs element-wise inequality comparison, producing a mask.
// A NaN lane compares true against anything, itself included.
func (a F32x4) NotEqual(b F32x4) I32x4 {
	var m I32x4
	for i := range m {
		m[i] = maskBool(a[i] != b[i])
	}
	return m
}

// LessThan performs element-wise less-than comparison, producing a mask.
// Unordered lanes (either operand NaN) compare false.
func (a F32x4) LessThan(b F32x4) I32x4 {
	var m I32x4
	for i := range m {
		m[i] = maskBool(a[i] < b[i])
	}
	return m
}

// GreaterThan performs element-wise greater-than comparison, producing a
// mask. Unordered lanes compare false.
func (a F32x4) GreaterThan(b F32x4) I32x4 {
	var m I32x4
	for i := range m {
		m[i] = maskBool(a[i] > b[i])
	}
	return m
}

// LessEqual performs element-wise less-or-equal comparison, producing a
// mask. Unordered lanes compare false, matching the scalar <= operator;
// raw hardware predicates disagree on this, so the contract is fixed here.
func (a F32x4) LessEqual(b F32x4) I32x4 {
	var m I32x4
	for i := range m {
		m[i] = maskBool(a[i] <= b[i])
	}
	return m
}

// GreaterEqual performs element-wise greater-or-equal comparison, producing
// a mask. Unordered lanes compare false, matching the scalar >= operator.
func (a F32x4) GreaterEqual(b F32x4) I32x4 {
	var m I32x4
	for i := range m {
		m[i] = maskBool(a[i] >= b[i])
	}
	return m
}

// LogicalAnd produces a mask of lanes where both a and b are nonzero. The
// test is a value comparison against zero: -0.0 counts as zero, NaN counts
// as nonzero.
func (a F32x4) LogicalAnd(b F32x4) I32x4 {
	var m I32x4
	for i := range m {
		m[i] = maskBool(a[i] != 0 && b[i] != 0)
	}
	return m
}

// LogicalOr produces a mask of lanes where a or b is nonzero, with the
// same zero test as LogicalAnd.
func (a F32x4) LogicalOr(b F32x4) I32x4 {
	var m I32x4
	for i := range m {
		m[i] = maskBool(a[i] != 0 || b[i] != 0)
	}
	return m
}

// IsZero produces a mask of lanes that compare equal to zero. -0.0
// qualifies; NaN does not.
func (a F32x4) IsZero() I32x4 {
	var m I32x4
	for i := range m {
		m[i] = maskBool(a[i] == 0)
	}
	return m
}

// Inc adds one to every lane in place and returns the new value.
func (a *F32x4) Inc() F32x4 {
	for i := range a {
		a[i]++
	}
	return *a
}

// Dec subtracts one from every lane in place and returns the new value.
func (a *F32x4) Dec() F32x4 {
	for i := range a {
		a[i]--
	}
	return *a
}

// PostInc adds one to every lane in place and returns the value held
// before the increment.
func (a *F32x4) PostInc() F32x4 {
	old := *a
	for i := range a {
		a[i]++
	}
	return old
}

// PostDec subtracts one from every lane in place and returns the value
// held before the decrement.
func (a *F32x4) PostDec() F32x4 {
	old := *a
	for i := range a {
		a[i]--
	}
	return old
}

// Fma computes a*b + c per lane with a single rounding step.
func Fma(a, b, c F32x4) F32x4 {
	var r F32x4
	for i := range r {
		r[i] = fmaf(a[i], b[i], c[i])
	}
	return r
}

// Fms computes a*b - c per lane with a single rounding step.
func Fms(a, b, c F32x4) F32x4 {
	var r F32x4
	for i := range r {
		r[i] = fmaf(a[i], b[i], -c[i])
	}
	return r
}

// Fnms computes c - a*b per lane with a single rounding step.
func Fnms(a, b, c F32x4) F32x4 {
	var r F32x4
	for i := range r {
		r[i] = fnmsf(a[i], b[i], c[i])
	}
	return r
}

// fmaf computes x*y + z rounded once, via the float64 FMA.
func fmaf(x, y, z float32) float32 {
	return float32(math.FMA(float64(x), float64(y), float64(z)))
}

// fnmsf computes z - x*y in the same fused form.
func fnmsf(x, y, z float32) float32 {
	return float32(math.FMA(-float64(x), float64(y), float64(z)))
}
