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

// GreyscaleScalar writes floor((R+G+B)/3) for every RGB pixel of in into out.
// The sum is formed in 16 bits so it cannot overflow. This is the reference
// result every other greyscale kernel is measured against.
//
// It panics unless len(in) == 3*len(out).
func GreyscaleScalar(in, out []byte) {
	checkLayout("GreyscaleScalar", in, out, 3, 1)
	for i := range out {
		p := in[3*i : 3*i+3 : 3*i+3]
		out[i] = uint8((uint16(p[0]) + uint16(p[1]) + uint16(p[2])) / 3)
	}
}

// GreyscaleTruncSum writes R/3 + G/3 + B/3 with each term truncated.
// The result is never above GreyscaleScalar and at most 2 below it.
//
// It panics unless len(in) == 3*len(out).
func GreyscaleTruncSum(in, out []byte) {
	checkLayout("GreyscaleTruncSum", in, out, 3, 1)
	for i := range out {
		p := in[3*i : 3*i+3 : 3*i+3]
		out[i] = p[0]/3 + p[1]/3 + p[2]/3
	}
}

// GreyscaleStrided is GreyscaleScalar over pixels of channels bytes (3 or 4).
// Bytes past the third of each pixel, such as alpha, are ignored.
func GreyscaleStrided(in, out []byte, channels int) {
	if channels == 3 {
		GreyscaleScalar(in, out)
		return
	}
	if channels != 4 {
		panic("pixel: GreyscaleStrided needs 3 or 4 channels")
	}
	checkLayout("GreyscaleStrided", in, out, 4, 1)
	full := hwy.FullBatches(len(out), Shift8Lanes) * Shift8Lanes
	k := hwy.Set[uint16](recip3, Shift8Lanes)
	for i := 0; i < full; i += Shift8Lanes {
		r, g, b, _ := hwy.LoadInterleaved4(in[4*i:], Shift8Lanes)
		hwy.Store(exactThird(r, g, b, k), out[i:])
	}
	for i := full; i < len(out); i++ {
		p := in[4*i : 4*i+3 : 4*i+3]
		out[i] = uint8((uint16(p[0]) + uint16(p[1]) + uint16(p[2])) / 3)
	}
}
