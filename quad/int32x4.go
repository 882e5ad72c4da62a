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

// This file provides the I32x4 operator set. The modeled hardware has no
// lane-wise integer multiply, divide or modulo, so those apply exact scalar
// semantics lane by lane; everything else is a direct per-lane operation.
// Lane reads and writes use ordinary array indexing: v[k] and v[k] = x.

// maskBool returns the mask lane pattern for one predicate result.
func maskBool(b bool) int32 {
	if b {
		return -1
	}
	return 0
}

// Add performs element-wise addition.
func (a I32x4) Add(b I32x4) I32x4 {
	var c I32x4
	for i := range c {
		c[i] = a[i] + b[i]
	}
	return c
}

// Sub performs element-wise subtraction.
func (a I32x4) Sub(b I32x4) I32x4 {
	var c I32x4
	for i := range c {
		c[i] = a[i] - b[i]
	}
	return c
}

// Mul performs element-wise multiplication with exact scalar semantics.
func (a I32x4) Mul(b I32x4) I32x4 {
	var c I32x4
	for i := range c {
		c[i] = a[i] * b[i]
	}
	return c
}

// Div performs element-wise division, truncating toward zero. A zero
// divisor lane panics with the runtime integer-divide-by-zero error,
// exactly as scalar division does.
func (a I32x4) Div(b I32x4) I32x4 {
	var c I32x4
	for i := range c {
		c[i] = a[i] / b[i]
	}
	return c
}

// Mod performs element-wise remainder; the result takes the dividend's
// sign. A zero divisor lane panics exactly as scalar division does.
func (a I32x4) Mod(b I32x4) I32x4 {
	var c I32x4
	for i := range c {
		c[i] = a[i] % b[i]
	}
	return c
}

// And performs element-wise bitwise AND.
func (a I32x4) And(b I32x4) I32x4 {
	var c I32x4
	for i := range c {
		c[i] = a[i] & b[i]
	}
	return c
}

// Or performs element-wise bitwise OR.
func (a I32x4) Or(b I32x4) I32x4 {
	var c I32x4
	for i := range c {
		c[i] = a[i] | b[i]
	}
	return c
}

// Xor performs element-wise bitwise XOR.
func (a I32x4) Xor(b I32x4) I32x4 {
	var c I32x4
	for i := range c {
		c[i] = a[i] ^ b[i]
	}
	return c
}

// Not performs element-wise bitwise complement.
func (a I32x4) Not() I32x4 {
	var c I32x4
	for i := range c {
		c[i] = ^a[i]
	}
	return c
}

// Neg negates all lanes. The most negative lane value wraps to itself, per
// two's complement.
func (a I32x4) Neg() I32x4 {
	var c I32x4
	for i := range c {
		c[i] = -a[i]
	}
	return c
}

// Shl shifts each lane of a left by the corresponding lane of b. Shift
// counts are taken modulo 32, as the hardware per-lane shift does.
func (a I32x4) Shl(b I32x4) I32x4 {
	var c I32x4
	for i := range c {
		c[i] = int32(uint32(a[i]) << (uint32(b[i]) & 31))
	}
	return c
}

// Shr shifts each lane of a right by the corresponding lane of b. The
// shift is logical: vacated bits fill with zero regardless of sign. Counts
// are taken modulo 32.
func (a I32x4) Shr(b I32x4) I32x4 {
	var c I32x4
	for i := range c {
		c[i] = int32(uint32(a[i]) >> (uint32(b[i]) & 31))
	}
	return c
}

// Abs computes per-lane absolute value. The most negative lane value wraps
// to itself, per two's complement.
func Abs(a I32x4) I32x4 {
	var c I32x4
	for i := range c {
		if a[i] < 0 {
			c[i] = -a[i]
		} else {
			c[i] = a[i]
		}
	}
	return c
}

// Equal performs element-wise equality comparison, producing a mask.
func (a I32x4) Equal(b I32x4) I32x4 {
	var m I32x4
	for i := range m {
		m[i] = maskBool(a[i] == b[i])
	}
	return m
}

// NotEqual performs element-wise inequality comparison, producing a mask.
func (a I32x4) NotEqual(b I32x4) I32x4 {
	var m I32x4
	for i := range m {
		m[i] = maskBool(a[i] != b[i])
	}
	return m
}

// LessThan performs element-wise less-than comparison, producing a mask.
func (a I32x4) LessThan(b I32x4) I32x4 {
	var m I32x4
	for i := range m {
		m[i] = maskBool(a[i] < b[i])
	}
	return m
}

// GreaterThan performs element-wise greater-than comparison, producing a
// mask.
func (a I32x4) GreaterThan(b I32x4) I32x4 {
	var m I32x4
	for i := range m {
		m[i] = maskBool(a[i] > b[i])
	}
	return m
}

// LessEqual performs element-wise less-or-equal comparison, producing a
// mask.
func (a I32x4) LessEqual(b I32x4) I32x4 {
	var m I32x4
	for i := range m {
		m[i] = maskBool(a[i] <= b[i])
	}
	return m
}

// GreaterEqual performs element-wise greater-or-equal comparison, producing
// a mask.
func (a I32x4) GreaterEqual(b I32x4) I32x4 {
	var m I32x4
	for i := range m {
		m[i] = maskBool(a[i] >= b[i])
	}
	return m
}

// LogicalAnd produces a mask of lanes where both a and b are nonzero.
func (a I32x4) LogicalAnd(b I32x4) I32x4 {
	var m I32x4
	for i := range m {
		m[i] = maskBool(a[i] != 0 && b[i] != 0)
	}
	return m
}

// LogicalOr produces a mask of lanes where a or b is nonzero.
func (a I32x4) LogicalOr(b I32x4) I32x4 {
	var m I32x4
	for i := range m {
		m[i] = maskBool(a[i] != 0 || b[i] != 0)
	}
	return m
}

// IsZero produces a mask of lanes equal to zero.
func (a I32x4) IsZero() I32x4 {
	var m I32x4
	for i := range m {
		m[i] = maskBool(a[i] == 0)
	}
	return m
}

// Inc increments every lane in place and returns the new value.
func (a *I32x4) Inc() I32x4 {
	for i := range a {
		a[i]++
	}
	return *a
}

// Dec decrements every lane in place and returns the new value.
func (a *I32x4) Dec() I32x4 {
	for i := range a {
		a[i]--
	}
	return *a
}

// PostInc increments every lane in place and returns the value held before
// the increment.
func (a *I32x4) PostInc() I32x4 {
	old := *a
	for i := range a {
		a[i]++
	}
	return old
}

// PostDec decrements every lane in place and returns the value held before
// the decrement.
func (a *I32x4) PostDec() I32x4 {
	old := *a
	for i := range a {
		a[i]--
	}
	return old
}
