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

// This file provides the pure Go implementations of the lane operations.
// Each loop runs over a fixed-size array with a bound known at the call,
// which keeps the per-lane arithmetic free of slice bounds checks.

// Load creates a vector from the first lanes elements of src.
// If src is shorter, only len(src) lanes are active.
func Load[T Lanes](src []T, lanes int) Vec[T] {
	var v Vec[T]
	v.n = copy(v.data[:clampLanes(lanes)], src)
	return v
}

// Store writes a vector's active lanes to dst.
// At most len(dst) lanes are written.
func Store[T Lanes](v Vec[T], dst []T) {
	copy(dst, v.data[:v.n])
}

// Set creates a vector with lanes lanes set to the same value.
func Set[T Lanes](value T, lanes int) Vec[T] {
	v := Vec[T]{n: clampLanes(lanes)}
	for i := range v.n {
		v.data[i] = value
	}
	return v
}

// Add performs element-wise addition. Integer lanes wrap on overflow.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = a.data[i] + b.data[i]
	}
	return r
}

// Mul performs element-wise multiplication. Integer lanes wrap on overflow.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = a.data[i] * b.data[i]
	}
	return r
}

// MulAdd computes a*b + c per lane.
// This is the multiply-accumulate form used by weighted channel sums.
func MulAdd[T Floats](a, b, c Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n, c.n)}
	for i := range r.n {
		r.data[i] = a.data[i]*b.data[i] + c.data[i]
	}
	return r
}

// Div divides every lane by the scalar d, truncating toward zero.
// A zero divisor panics with the runtime's integer divide error.
func Div[T Integers](v Vec[T], d T) Vec[T] {
	r := Vec[T]{n: v.n}
	for i := range r.n {
		r.data[i] = v.data[i] / d
	}
	return r
}

// MulHigh returns the upper 16 bits of the 32-bit product of each lane pair.
// Paired with a fixed-point reciprocal it divides by a constant.
func MulHigh(a, b Vec[uint16]) Vec[uint16] {
	r := Vec[uint16]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = uint16((uint32(a.data[i]) * uint32(b.data[i])) >> 16)
	}
	return r
}

// ShiftRight shifts each lane right by bits.
// Unsigned lanes shift in zeros; signed lanes shift in the sign bit.
func ShiftRight[T Integers](v Vec[T], bits int) Vec[T] {
	r := Vec[T]{n: v.n}
	for i := range r.n {
		r.data[i] = v.data[i] >> bits
	}
	return r
}
