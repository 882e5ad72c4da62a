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

// This file provides the estimate-plus-refinement family: reciprocal,
// reciprocal square root, and the square root and division built on them.
// Each starts from a coarse estimate good to about 12 bits, the precision
// hardware estimators guarantee, then applies a fixed number of
// Newton-Raphson steps. Refined results stay within 2^-21 relative error
// for finite nonzero normal inputs; they are never bit-identical to the
// correctly rounded operation.

// refineSteps is the fixed Newton-Raphson iteration count. Two steps take
// a 12-bit estimate well below the 2^-21 error bound with float32 rounding
// to spare. The count is part of the documented contract, never adaptive.
const refineSteps = 2

// estBits is the mantissa precision of the coarse estimates. The low
// 23-estBits mantissa bits of a correctly rounded value are cleared,
// modeling a hardware estimator with a 2^-12 relative error guarantee.
const estBits = 12

// truncEstimate clears the mantissa bits below estBits precision. Zeros,
// infinities and NaNs pass through: their exponent field is untouched.
func truncEstimate(x float32) float32 {
	return math.Float32frombits(math.Float32bits(x) &^ (1<<(23-estBits) - 1))
}

// RcpApprox computes the coarse per-lane reciprocal estimate, accurate to
// about 12 bits. RcpApprox(±0) is ±Inf and RcpApprox(±Inf) is ±0, like
// the hardware estimator.
func RcpApprox(a F32x4) F32x4 {
	var r F32x4
	for i := range r {
		r[i] = truncEstimate(1 / a[i])
	}
	return r
}

// rcpRefine applies one Newton-Raphson step b + b*(1 - a*b) in fused form.
// Algebraically b*(2 - a*b).
func rcpRefine(a, b float32) float32 {
	return fmaf(fnmsf(a, b, 1), b, b)
}

// Rcp computes the per-lane reciprocal: the coarse estimate refined by
// exactly two Newton-Raphson steps, within 2^-21 relative error for
// finite nonzero normal lanes. The refinement turns the estimator's poles
// into NaN: Rcp of ±0 and of ±Inf is NaN, because the step multiplies
// zero by infinity.
func Rcp(a F32x4) F32x4 {
	r := RcpApprox(a)
	for k := 0; k < refineSteps; k++ {
		for i := range r {
			r[i] = rcpRefine(a[i], r[i])
		}
	}
	return r
}

// RsqrtApprox computes the coarse per-lane reciprocal square root
// estimate, accurate to about 12 bits. RsqrtApprox(±0) is ±Inf,
// RsqrtApprox(+Inf) is +0, and negative lanes give NaN.
func RsqrtApprox(a F32x4) F32x4 {
	var r F32x4
	for i := range r {
		r[i] = truncEstimate(float32(1 / math.Sqrt(float64(a[i]))))
	}
	return r
}

// rsqrtRefine applies one Newton-Raphson step b + (1 - a*b*b)*(b/2) in
// fused form. Algebraically b*0.5*(3 - a*b*b).
func rsqrtRefine(a, b float32) float32 {
	return fmaf(fnmsf(a, b*b, 1), 0.5*b, b)
}

// Rsqrt computes the per-lane reciprocal square root: the coarse estimate
// refined by exactly two Newton-Raphson steps, within 2^-21 relative
// error for finite positive normal lanes. The poles refine to NaN: Rsqrt
// of ±0 and of +Inf is NaN.
func Rsqrt(a F32x4) F32x4 {
	r := RsqrtApprox(a)
	for k := 0; k < refineSteps; k++ {
		for i := range r {
			r[i] = rsqrtRefine(a[i], r[i])
		}
	}
	return r
}

// Sqrt computes the per-lane square root as a * Rsqrt(a); this model has
// no native vector square root. Accuracy follows Rsqrt. The zero lane is
// a known pole: Sqrt(±0) is NaN (the rsqrt estimate is Inf and the
// refinement multiplies zero by it), as is Sqrt(+Inf). Callers needing
// sqrt(0) = 0 must mask the input themselves.
func Sqrt(a F32x4) F32x4 {
	r := Rsqrt(a)
	var c F32x4
	for i := range c {
		c[i] = a[i] * r[i]
	}
	return c
}
