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

// This file provides the branchless mask combinators. A mask is an I32x4
// produced by a comparison or logical operator: every lane is 0 or -1,
// never partially set. The combinators blend bitwise, so the mask shape
// guarantees whole-lane selection.

// CZero returns a with lanes zeroed where c is all-1 and passed through
// where c is all-0.
func CZero[V Register](c I32x4, a V) V {
	m := toBits(c)
	b := toBits(a)
	var r V128
	for i := range r {
		r[i] = b[i] &^ m[i]
	}
	return fromBits[V](r)
}

// NotCZero returns a with lanes zeroed where c is all-0 and passed through
// where c is all-1.
func NotCZero[V Register](c I32x4, a V) V {
	m := toBits(c)
	b := toBits(a)
	var r V128
	for i := range r {
		r[i] = b[i] & m[i]
	}
	return fromBits[V](r)
}

// Merge selects t where c is all-1 and f where c is all-0. The blend is
// bitwise: Merge(c,t,f) equals NotCZero(c,t) | CZero(c,f) bit for bit.
func Merge[V Register](c I32x4, t, f V) V {
	m := toBits(c)
	tb := toBits(t)
	fb := toBits(f)
	var r V128
	for i := range r {
		r[i] = (tb[i] & m[i]) | (fb[i] &^ m[i])
	}
	return fromBits[V](r)
}
