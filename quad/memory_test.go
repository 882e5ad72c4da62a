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

func TestLoadStore4x1(t *testing.T) {
	src := []float32{1, 2, 3, 4, 99}
	v := Load4x1[F32x4](src)
	if v != (F32x4{1, 2, 3, 4}) {
		t.Errorf("Load4x1 = %v, want first four of %v", v, src)
	}

	dst := []float32{0, 0, 0, 0, -1}
	Store4x1(v, dst)
	for i := 0; i < 4; i++ {
		if dst[i] != src[i] {
			t.Errorf("index %d: got %v, want %v", i, dst[i], src[i])
		}
	}
	if dst[4] != -1 {
		t.Errorf("Store4x1 wrote past the vector: dst[4] = %v", dst[4])
	}
}

func TestLoadStore4x1Int(t *testing.T) {
	// Integer vectors pass through float32 storage bit for bit.
	v := I32x4{1, -2, 3, math.MinInt32}
	buf := make([]float32, 4)
	Store4x1(v, buf)
	if got := Load4x1[I32x4](buf); got != v {
		t.Errorf("int round trip = %v, want %v", got, v)
	}
}

func TestStream4x1(t *testing.T) {
	v := F32x4{1.5, 2.5, 3.5, 4.5}
	dst := make([]float32, 4)
	Stream4x1(v, dst)
	if got := Load4x1[F32x4](dst); got != v {
		t.Errorf("Stream4x1 round trip = %v, want %v", got, v)
	}
}

func TestCopy4x1(t *testing.T) {
	src := []float32{1, 2, 3, 4}
	dst := make([]float32, 4)
	Copy4x1(dst, src)
	for i := range src {
		if dst[i] != src[i] {
			t.Errorf("index %d: got %v, want %v", i, dst[i], src[i])
		}
	}
}

func TestSwap4x1(t *testing.T) {
	a := []float32{1, 2, 3, 4}
	b := []float32{5, 6, 7, 8}
	Swap4x1(a, b)
	for i := 0; i < 4; i++ {
		if a[i] != float32(5+i) || b[i] != float32(1+i) {
			t.Errorf("index %d: got a=%v b=%v", i, a[i], b[i])
		}
	}
}

func TestLoadStore4x1Tr(t *testing.T) {
	a0 := []float32{1, 99}
	a1 := []float32{2}
	a2 := []float32{3, 99}
	a3 := []float32{4}

	v := Load4x1Tr(a0, a1, a2, a3)
	if got := v.AsF32x4(); got != (F32x4{1, 2, 3, 4}) {
		t.Errorf("Load4x1Tr = %v, want [1 2 3 4]", got)
	}

	b0 := []float32{0, -1}
	b1 := []float32{0}
	b2 := []float32{0}
	b3 := []float32{0}
	Store4x1Tr(SplatF32(7).AsV128(), b0, b1, b2, b3)
	if b0[0] != 7 || b1[0] != 7 || b2[0] != 7 || b3[0] != 7 {
		t.Errorf("Store4x1Tr: got %v %v %v %v", b0[0], b1[0], b2[0], b3[0])
	}
	if b0[1] != -1 {
		t.Errorf("Store4x1Tr wrote past the first element: %v", b0[1])
	}
}

func TestLoadStore4x2Tr(t *testing.T) {
	a0 := []float32{1, 5}
	a1 := []float32{2, 6}
	a2 := []float32{3, 7}
	a3 := []float32{4, 8}

	a, b := Load4x2Tr(a0, a1, a2, a3)
	if got := a.AsF32x4(); got != (F32x4{1, 2, 3, 4}) {
		t.Errorf("Load4x2Tr first = %v, want [1 2 3 4]", got)
	}
	if got := b.AsF32x4(); got != (F32x4{5, 6, 7, 8}) {
		t.Errorf("Load4x2Tr second = %v, want [5 6 7 8]", got)
	}

	b0, b1, b2, b3 := make([]float32, 2), make([]float32, 2), make([]float32, 2), make([]float32, 2)
	Store4x2Tr(a, b, b0, b1, b2, b3)
	for i, buf := range [][]float32{b0, b1, b2, b3} {
		want0, want1 := float32(1+i), float32(5+i)
		if buf[0] != want0 || buf[1] != want1 {
			t.Errorf("Store4x2Tr buffer %d = %v, want [%v %v]", i, buf, want0, want1)
		}
	}
}

func TestLoad4x3Tr(t *testing.T) {
	// Each record spans four floats; the fourth is read but discarded.
	a0 := []float32{1, 5, 9, 99}
	a1 := []float32{2, 6, 10, 99}
	a2 := []float32{3, 7, 11, 99}
	a3 := []float32{4, 8, 12, 99}

	a, b, c := Load4x3Tr(a0, a1, a2, a3)
	if got := a.AsF32x4(); got != (F32x4{1, 2, 3, 4}) {
		t.Errorf("Load4x3Tr first = %v, want [1 2 3 4]", got)
	}
	if got := b.AsF32x4(); got != (F32x4{5, 6, 7, 8}) {
		t.Errorf("Load4x3Tr second = %v, want [5 6 7 8]", got)
	}
	if got := c.AsF32x4(); got != (F32x4{9, 10, 11, 12}) {
		t.Errorf("Load4x3Tr third = %v, want [9 10 11 12]", got)
	}
}

func TestStore4x3Tr(t *testing.T) {
	a := SplatF32(1).AsV128()
	b := SplatF32(2).AsV128()
	c := SplatF32(3).AsV128()

	// Three buffers keep a sentinel fourth element, one has no room
	// for it at all.
	b0 := []float32{0, 0, 0, -1}
	b1 := []float32{0, 0, 0, -1}
	b2 := []float32{0, 0, 0, -1}
	b3 := []float32{0, 0, 0}
	Store4x3Tr(a, b, c, b0, b1, b2, b3)

	for i, buf := range [][]float32{b0, b1, b2, b3} {
		if buf[0] != 1 || buf[1] != 2 || buf[2] != 3 {
			t.Errorf("Store4x3Tr buffer %d = %v", i, buf)
		}
		if len(buf) == 4 && buf[3] != -1 {
			t.Errorf("Store4x3Tr buffer %d touched the fourth element: %v", i, buf[3])
		}
	}
}

func TestLoadStore4x4Tr(t *testing.T) {
	r0 := []float32{0.5, 1.5, 2.5, 3.5}
	r1 := []float32{4.5, 5.5, 6.5, 7.5}
	r2 := []float32{8.5, 9.5, 10.5, 11.5}
	r3 := []float32{12.5, 13.5, 14.5, 15.5}

	a, b, c, d := Load4x4Tr(r0, r1, r2, r3)
	rows := [][]float32{r0, r1, r2, r3}
	for lane, v := range [4]F32x4{a.AsF32x4(), b.AsF32x4(), c.AsF32x4(), d.AsF32x4()} {
		for i := 0; i < 4; i++ {
			if v[i] != rows[i][lane] {
				t.Errorf("output %d lane %d = %v, want %v", lane, i, v[i], rows[i][lane])
			}
		}
	}

	w0, w1, w2, w3 := make([]float32, 4), make([]float32, 4), make([]float32, 4), make([]float32, 4)
	Store4x4Tr(a, b, c, d, w0, w1, w2, w3)
	for i, buf := range [][]float32{w0, w1, w2, w3} {
		for j := 0; j < 4; j++ {
			if buf[j] != rows[i][j] {
				t.Errorf("Store4x4Tr buffer %d index %d = %v, want %v", i, j, buf[j], rows[i][j])
			}
		}
	}
}

func TestStore4x4TrBitExact(t *testing.T) {
	a := V128{0x7FC00001, 0x80000000, 1, 0xFFFFFFFE}
	b := V128{5, 6, 7, 8}
	c := V128{9, 10, 11, 12}
	d := V128{13, 14, 15, 16}

	b0, b1, b2, b3 := make([]float32, 4), make([]float32, 4), make([]float32, 4), make([]float32, 4)
	Store4x4Tr(a, b, c, d, b0, b1, b2, b3)
	ga, gb, gc, gd := Load4x4Tr(b0, b1, b2, b3)
	if ga != a || gb != b || gc != c || gd != d {
		t.Errorf("round trip = %#v %#v %#v %#v", ga, gb, gc, gd)
	}
}

func TestReadModifyWrite4x1(t *testing.T) {
	dst := []float32{1, 2, 3, 4}

	Increment4x1(dst, F32x4{10, 20, 30, 40})
	for i, want := range []float32{11, 22, 33, 44} {
		if dst[i] != want {
			t.Errorf("Increment4x1 index %d: got %v, want %v", i, dst[i], want)
		}
	}

	Decrement4x1(dst, F32x4{1, 2, 3, 4})
	for i, want := range []float32{10, 20, 30, 40} {
		if dst[i] != want {
			t.Errorf("Decrement4x1 index %d: got %v, want %v", i, dst[i], want)
		}
	}

	Scale4x1(dst, F32x4{2, 0.5, 1, 0.25})
	for i, want := range []float32{20, 10, 30, 10} {
		if dst[i] != want {
			t.Errorf("Scale4x1 index %d: got %v, want %v", i, dst[i], want)
		}
	}
}

// Benchmarks

func BenchmarkLoad4x4Tr(b *testing.B) {
	buf := make([]float32, 16)
	for i := range buf {
		buf[i] = float32(i)
	}
	var p, q, r, s V128
	for i := 0; i < b.N; i++ {
		p, q, r, s = Load4x4Tr(buf[0:4], buf[4:8], buf[8:12], buf[12:16])
	}
	_, _, _, _ = p, q, r, s
}

func BenchmarkStore4x4Tr(b *testing.B) {
	buf := make([]float32, 16)
	p := SplatF32(1).AsV128()
	q := SplatF32(2).AsV128()
	r := SplatF32(3).AsV128()
	s := SplatF32(4).AsV128()
	for i := 0; i < b.N; i++ {
		Store4x4Tr(p, q, r, s, buf[0:4], buf[4:8], buf[8:12], buf[12:16])
	}
}

func BenchmarkIncrement4x1(b *testing.B) {
	dst := []float32{1, 2, 3, 4}
	v := F32x4{0.5, 0.5, 0.5, 0.5}
	for i := 0; i < b.N; i++ {
		Increment4x1(dst, v)
	}
}
