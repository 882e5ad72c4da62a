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

// This file provides the float sign and bit manipulation operations. All
// act on the raw lane bits, never on values: no comparisons, no branches,
// and NaN payloads pass through untouched.

// signMask selects the float32 sign bit.
const signMask = 0x80000000

// Fabs clears the sign bit of every lane. Inf lanes become +Inf and NaN
// lanes keep their payload with the sign cleared.
func Fabs(a F32x4) F32x4 {
	var c F32x4
	for i := range c {
		c[i] = math.Float32frombits(math.Float32bits(a[i]) &^ signMask)
	}
	return c
}

// Copysign combines the magnitude of a with the sign of b, lane by lane,
// as a sign-bit blend.
func Copysign(a, b F32x4) F32x4 {
	var c F32x4
	for i := range c {
		bits := math.Float32bits(a[i])&^signMask | math.Float32bits(b[i])&signMask
		c[i] = math.Float32frombits(bits)
	}
	return c
}

// ClearBits clears in each lane of a the bits set in the corresponding
// lane of m: a AND NOT m on the raw images.
func ClearBits(m, a F32x4) F32x4 {
	var c F32x4
	for i := range c {
		c[i] = math.Float32frombits(math.Float32bits(a[i]) &^ math.Float32bits(m[i]))
	}
	return c
}

// SetBits sets in each lane of a the bits set in the corresponding lane of
// m: a OR m on the raw images.
func SetBits(m, a F32x4) F32x4 {
	var c F32x4
	for i := range c {
		c[i] = math.Float32frombits(math.Float32bits(a[i]) | math.Float32bits(m[i]))
	}
	return c
}

// ToggleBits flips in each lane of a the bits set in the corresponding
// lane of m: a XOR m on the raw images.
func ToggleBits(m, a F32x4) F32x4 {
	var c F32x4
	for i := range c {
		c[i] = math.Float32frombits(math.Float32bits(a[i]) ^ math.Float32bits(m[i]))
	}
	return c
}
