// Copyright 2026 go-pixel Authors
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

package hwy

// LoadInterleaved3 loads interleaved triples and deinterleaves them into three
// vectors of lanes lanes each. This converts packed RGB bytes into one lane
// group per channel.
//
// Input memory layout (interleaved triples):
//
//	[r0, g0, b0, r1, g1, b1, r2, g2, b2, ...]
//
// Output vectors:
//
//	vec_r = [r0, r1, r2, ...]
//	vec_g = [g0, g1, g2, ...]
//	vec_b = [b0, b1, b2, ...]
//
// If src holds fewer than lanes complete triples, only the complete ones
// become active lanes.
func LoadInterleaved3[T Lanes](src []T, lanes int) (Vec[T], Vec[T], Vec[T]) {
	n := min(clampLanes(lanes), len(src)/3)
	a, b, c := Vec[T]{n: n}, Vec[T]{n: n}, Vec[T]{n: n}
	src = src[:n*3]
	for i := range n {
		a.data[i] = src[3*i]
		b.data[i] = src[3*i+1]
		c.data[i] = src[3*i+2]
	}
	return a, b, c
}

// LoadInterleaved4 loads interleaved quads and deinterleaves them into four
// vectors. This converts packed RGBA bytes into one lane group per channel.
//
// Input memory layout (interleaved quads):
//
//	[r0, g0, b0, a0, r1, g1, b1, a1, ...]
func LoadInterleaved4[T Lanes](src []T, lanes int) (Vec[T], Vec[T], Vec[T], Vec[T]) {
	n := min(clampLanes(lanes), len(src)/4)
	a, b, c, d := Vec[T]{n: n}, Vec[T]{n: n}, Vec[T]{n: n}, Vec[T]{n: n}
	src = src[:n*4]
	for i := range n {
		a.data[i] = src[4*i]
		b.data[i] = src[4*i+1]
		c.data[i] = src[4*i+2]
		d.data[i] = src[4*i+3]
	}
	return a, b, c, d
}
