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

import (
	"math"
	"testing"
)

func TestF32x4Arithmetic(t *testing.T) {
	a := F32x4{1, 2, 3, 4}
	b := F32x4{0.5, 0.25, 0.125, 0.0625}

	if got, want := a.Add(b), (F32x4{1.5, 2.25, 3.125, 4.0625}); got != want {
		t.Errorf("Add(%v, %v) = %v, want %v", a, b, got, want)
	}
	if got, want := a.Sub(b), (F32x4{0.5, 1.75, 2.875, 3.9375}); got != want {
		t.Errorf("Sub(%v, %v) = %v, want %v", a, b, got, want)
	}
	if got, want := a.Mul(b), (F32x4{0.5, 0.5, 0.375, 0.25}); got != want {
		t.Errorf("Mul(%v, %v) = %v, want %v", a, b, got, want)
	}
	if got, want := a.Neg(), (F32x4{-1, -2, -3, -4}); got != want {
		t.Errorf("Neg(%v) = %v, want %v", a, got, want)
	}
}

func TestF32x4ComparisonsNaN(t *testing.T) {
	nan := float32(math.NaN())
	a := F32x4{nan, 1, nan, 3}
	b := F32x4{nan, 1, 2, nan}

	tests := []struct {
		name string
		got  I32x4
		want I32x4
	}{
		{"Equal", a.Equal(b), I32x4{0, -1, 0, 0}},
		{"NotEqual", a.NotEqual(b), I32x4{-1, 0, -1, -1}},
		{"LessThan", a.LessThan(b), I32x4{0, 0, 0, 0}},
		{"GreaterThan", a.GreaterThan(b), I32x4{0, 0, 0, 0}},
		{"LessEqual", a.LessEqual(b), I32x4{0, -1, 0, 0}},
		{"GreaterEqual", a.GreaterEqual(b), I32x4{0, -1, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestF32x4ComparisonsOrdered(t *testing.T) {
	a := F32x4{1, 5, -3, 7}
	b := F32x4{1, 2, -3, 9}

	if got, want := a.LessThan(b), (I32x4{0, 0, 0, -1}); got != want {
		t.Errorf("LessThan(%v, %v) = %v, want %v", a, b, got, want)
	}
	if got, want := a.GreaterEqual(b), (I32x4{-1, -1, -1, 0}); got != want {
		t.Errorf("GreaterEqual(%v, %v) = %v, want %v", a, b, got, want)
	}
}

func TestF32x4Logical(t *testing.T) {
	negZero := math.Float32frombits(0x80000000)
	nan := float32(math.NaN())

	// Truth here is by value: both zeros are false, NaN is true.
	a := F32x4{0, negZero, nan, 2}
	b := F32x4{1, 1, 1, 0}

	if got, want := a.LogicalAnd(b), (I32x4{0, 0, -1, 0}); got != want {
		t.Errorf("LogicalAnd(%v, %v) = %v, want %v", a, b, got, want)
	}
	if got, want := a.LogicalOr(b), (I32x4{-1, -1, -1, -1}); got != want {
		t.Errorf("LogicalOr(%v, %v) = %v, want %v", a, b, got, want)
	}
	if got, want := a.IsZero(), (I32x4{-1, -1, 0, 0}); got != want {
		t.Errorf("IsZero(%v) = %v, want %v", a, got, want)
	}

	zeros := F32x4{0, negZero, 0, negZero}
	if got := zeros.LogicalOr(F32x4{}); got != (I32x4{}) {
		t.Errorf("LogicalOr of zero vectors = %v, want all false", got)
	}
}

func TestF32x4IncDec(t *testing.T) {
	a := F32x4{1.5, 2.5, 3.5, 4.5}
	if got := a.Inc(); got != (F32x4{2.5, 3.5, 4.5, 5.5}) || a != got {
		t.Errorf("Inc: returned %v, receiver %v", got, a)
	}
	if got := a.Dec(); got != (F32x4{1.5, 2.5, 3.5, 4.5}) || a != got {
		t.Errorf("Dec: returned %v, receiver %v", got, a)
	}

	old := a
	if got := a.PostInc(); got != old {
		t.Errorf("PostInc returned %v, want %v", got, old)
	}
	if a != (F32x4{2.5, 3.5, 4.5, 5.5}) {
		t.Errorf("PostInc left receiver at %v", a)
	}
	old = a
	if got := a.PostDec(); got != old {
		t.Errorf("PostDec returned %v, want %v", got, old)
	}
	if a != (F32x4{1.5, 2.5, 3.5, 4.5}) {
		t.Errorf("PostDec left receiver at %v", a)
	}
}

func TestFusedOps(t *testing.T) {
	a := SplatF32(2)
	b := SplatF32(3)
	c := SplatF32(4)

	if got, want := Fma(a, b, c), SplatF32(10); got != want {
		t.Errorf("Fma = %v, want %v", got, want)
	}
	if got, want := Fms(a, b, c), SplatF32(2); got != want {
		t.Errorf("Fms = %v, want %v", got, want)
	}
	if got, want := Fnms(a, b, c), SplatF32(-2); got != want {
		t.Errorf("Fnms = %v, want %v", got, want)
	}
}

func TestFusedOpsRoundOnce(t *testing.T) {
	// x = 1+2^-12, so x*x = 1+2^-11+2^-24. A separately rounded product
	// drops the 2^-24 tail; the fused forms must keep it.
	x := SplatF32(1.000244140625)
	c := SplatF32(1.00048828125)
	const tail = 1.0 / (1 << 24)

	if got := Fma(x, x, c.Neg()); got != SplatF32(tail) {
		t.Errorf("Fma(x, x, -c) = %v, want %v lanes", got, float32(tail))
	}
	if got := Fms(x, x, c); got != SplatF32(tail) {
		t.Errorf("Fms(x, x, c) = %v, want %v lanes", got, float32(tail))
	}
	if got := Fnms(x, x, c); got != SplatF32(-tail) {
		t.Errorf("Fnms(x, x, c) = %v, want %v lanes", got, float32(-tail))
	}
	if got := x.Mul(x).Sub(c); got != (F32x4{}) {
		t.Errorf("unfused x*x - c = %v, want zeros", got)
	}
}

// Benchmarks

func BenchmarkF32x4Mul(b *testing.B) {
	x := F32x4{1, 2, 3, 4}
	y := F32x4{5, 6, 7, 8}
	var out F32x4
	for i := 0; i < b.N; i++ {
		out = x.Mul(y)
	}
	_ = out
}

func BenchmarkFma(b *testing.B) {
	x := F32x4{1, 2, 3, 4}
	y := F32x4{5, 6, 7, 8}
	z := F32x4{9, 10, 11, 12}
	var out F32x4
	for i := 0; i < b.N; i++ {
		out = Fma(x, y, z)
	}
	_ = out
}
