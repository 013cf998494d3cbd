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

// Package hwy provides fixed-width lane batches for pixel kernels.
//
// It follows the Highway design of writing a kernel once against a small set
// of lane operations. A Vec holds up to MaxLanes values of one element type;
// kernels load N same-index channel values into a Vec, apply per-lane
// arithmetic and store the N results contiguously. Vectors are plain values
// backed by an array, so a batch never leaves the stack of the kernel that
// created it.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-pixel/hwy"
//
//	// De-interleave 8 RGB pixels into three lane groups
//	r, g, b := hwy.LoadInterleaved3(rgb, 8)
//
//	// Per-lane arithmetic
//	sum := hwy.Add(hwy.Add(r, g), b)
//
//	// Store 8 contiguous results
//	hwy.Store(sum, out)
package hwy

// MaxLanes is the capacity of a Vec. It matches a 128-bit register of bytes.
const MaxLanes = 16

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is a lane batch of up to MaxLanes elements.
//
// Vec instances should not be created directly; use Load or Set instead.
type Vec[T Lanes] struct {
	data [MaxLanes]T
	n    int
}

// NumLanes returns the number of active lanes in this vector.
func (v Vec[T]) NumLanes() int {
	return v.n
}

// Data returns a copy of the active lanes.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec[T]) Data() []T {
	out := make([]T, v.n)
	copy(out, v.data[:v.n])
	return out
}

// Store writes the vector's active lanes to dst.
// This is the method form of the hwy.Store function.
func (v Vec[T]) Store(dst []T) {
	copy(dst, v.data[:v.n])
}

func clampLanes(lanes int) int {
	if lanes < 0 {
		return 0
	}
	if lanes > MaxLanes {
		return MaxLanes
	}
	return lanes
}
