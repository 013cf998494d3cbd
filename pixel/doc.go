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

// Package pixel provides 8-bit interleaved pixel buffers and the kernels that
// transform them.
//
// A Buffer is a flat, row-major byte slice with 1 (grey), 3 (RGB) or 4 (RGBA)
// channels per pixel and no row padding. Kernels are plain functions over a
// borrowed input slice and a caller-sized output slice; they never allocate,
// resize or retain either buffer.
//
// # Scalar and Lane-Batch Kernels
//
// Every transform has a scalar reference (the oracle) and, where it pays off,
// lane-batch variants built on package hwy that process 4 or 8 pixels per
// iteration:
//
//	GreyscaleScalar(in, out)   // floor((R+G+B)/3), the oracle
//	GreyscaleTruncSum(in, out) // R/3 + G/3 + B/3, biased low
//	GreyscaleF32x4(in, out)    // 4 float32 lanes, within ±1 of the oracle
//	GreyscaleShift8(in, out)   // 8 byte lanes, (R>>2)+(G>>2)+(B>>2)
//	GreyscaleExact8(in, out)   // 8 uint16 lanes, bit-identical to the oracle
//	Dim(in, out, factor)       // in[i] / factor for every byte
//	DimVec(in, out, factor)    // 8-byte batches of Dim
//	DimHalf(in, out)           // 8-byte batches of in[i] >> 1
//
// Pixels past the last full batch are finished by the scalar oracle, so no
// input length is left partly processed.
//
// # Preconditions
//
// Raw kernels panic when buffer lengths disagree with their channel layout or
// when a dim factor is zero. Buffer-level helpers (Greyscale, Dimmed,
// RestrictRGB, Combine, Convolve) check the same conditions first and return
// errors instead.
//
// # Usage Example
//
//	buf, err := pixel.FromBytes(rgb, 640, 480, 3)
//	if err != nil {
//	    return err
//	}
//	grey := make([]byte, 640*480)
//	pixel.Greyscale(buf.Pix, grey) // dispatched to the fastest exact kernel
package pixel
