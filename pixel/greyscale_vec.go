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

package pixel

import "github.com/ajroetker/go-pixel/hwy"

// Lane-batch greyscale kernels. Each one de-interleaves a batch of RGB pixels
// into three lane vectors, combines them lane by lane, and stores one byte
// per pixel contiguously. Pixels past the last full batch go through
// GreyscaleScalar.

const (
	// F32x4Lanes is the batch width of GreyscaleF32x4.
	F32x4Lanes = 4

	// Shift8Lanes is the batch width of GreyscaleShift8 and GreyscaleExact8.
	Shift8Lanes = 8

	// F32x4Weight is the per-channel weight of GreyscaleF32x4.
	F32x4Weight float32 = 1.0 / 3.0

	// Shift8MaxBias bounds GreyscaleScalar - GreyscaleShift8 for any pixel:
	// floor(765/3) - 3*(255>>2).
	Shift8MaxBias = 66

	// recip3 is ceil(2^16/3); (s*recip3)>>16 == s/3 for every s in [0, 765].
	recip3 = 21846
)

// GreyscaleF32x4 converts 4 pixels per batch in float32 lanes:
//
//	acc = R*w
//	acc = G*w + acc
//	acc = B*w + acc
//
// with w = F32x4Weight, then truncates each lane to a byte. The result is
// within 1 of GreyscaleScalar at every pixel whether or not the
// multiply-adds are fused.
//
// It panics unless len(in) == 3*len(out).
func GreyscaleF32x4(in, out []byte) {
	checkLayout("GreyscaleF32x4", in, out, 3, 1)
	full := hwy.FullBatches(len(out), F32x4Lanes) * F32x4Lanes
	w := hwy.Set(F32x4Weight, F32x4Lanes)
	for i := 0; i < full; i += F32x4Lanes {
		r, g, b := hwy.LoadInterleaved3(in[3*i:], F32x4Lanes)
		acc := hwy.Mul(hwy.ConvertU8ToF32(r), w)
		acc = hwy.MulAdd(hwy.ConvertU8ToF32(g), w, acc)
		acc = hwy.MulAdd(hwy.ConvertU8ToF32(b), w, acc)
		hwy.Store(hwy.ConvertF32ToU8(acc), out[i:])
	}
	GreyscaleScalar(in[3*full:], out[full:])
}

// GreyscaleShift8 converts 8 pixels per batch as (R>>2)+(G>>2)+(B>>2) in
// byte lanes. The sum peaks at 189 and cannot overflow.
//
// This approximates division by 4, not 3: the result is never above
// GreyscaleScalar and at most Shift8MaxBias below it. For a pixel whose
// channels sum to s the shortfall is at most s/12 + 9/4.
//
// It panics unless len(in) == 3*len(out).
func GreyscaleShift8(in, out []byte) {
	checkLayout("GreyscaleShift8", in, out, 3, 1)
	full := hwy.FullBatches(len(out), Shift8Lanes) * Shift8Lanes
	for i := 0; i < full; i += Shift8Lanes {
		r, g, b := hwy.LoadInterleaved3(in[3*i:], Shift8Lanes)
		sum := hwy.Add(hwy.ShiftRight(r, 2), hwy.ShiftRight(g, 2))
		sum = hwy.Add(sum, hwy.ShiftRight(b, 2))
		hwy.Store(sum, out[i:])
	}
	GreyscaleScalar(in[3*full:], out[full:])
}

// GreyscaleExact8 converts 8 pixels per batch in 16-bit lanes, dividing the
// channel sum by 3 with a fixed-point reciprocal multiply. The output is
// identical to GreyscaleScalar for every input.
//
// It panics unless len(in) == 3*len(out).
func GreyscaleExact8(in, out []byte) {
	checkLayout("GreyscaleExact8", in, out, 3, 1)
	full := hwy.FullBatches(len(out), Shift8Lanes) * Shift8Lanes
	k := hwy.Set[uint16](recip3, Shift8Lanes)
	for i := 0; i < full; i += Shift8Lanes {
		r, g, b := hwy.LoadInterleaved3(in[3*i:], Shift8Lanes)
		hwy.Store(exactThird(r, g, b, k), out[i:])
	}
	GreyscaleScalar(in[3*full:], out[full:])
}

// exactThird returns floor((r+g+b)/3) per lane, with k holding recip3.
func exactThird(r, g, b hwy.Vec[uint8], k hwy.Vec[uint16]) hwy.Vec[uint8] {
	sum := hwy.Add(hwy.PromoteU8ToU16(r), hwy.PromoteU8ToU16(g))
	sum = hwy.Add(sum, hwy.PromoteU8ToU16(b))
	return hwy.DemoteU16ToU8(hwy.MulHigh(sum, k))
}
