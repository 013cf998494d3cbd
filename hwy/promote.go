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

// This file provides type promotion, demotion and conversion between lane
// types.
//
// Go generics don't support type relationships like "T is narrower than U",
// so we provide concrete type-specific functions.

// PromoteU8ToU16 widens uint8 lanes to uint16.
func PromoteU8ToU16(v Vec[uint8]) Vec[uint16] {
	r := Vec[uint16]{n: v.n}
	for i := range r.n {
		r.data[i] = uint16(v.data[i])
	}
	return r
}

// DemoteU16ToU8 narrows uint16 lanes to uint8 with saturation:
// values above 255 become 255.
func DemoteU16ToU8(v Vec[uint16]) Vec[uint8] {
	r := Vec[uint8]{n: v.n}
	for i := range r.n {
		r.data[i] = uint8(min(v.data[i], 0xff))
	}
	return r
}

// ConvertU8ToF32 converts uint8 lanes to float32.
func ConvertU8ToF32(v Vec[uint8]) Vec[float32] {
	r := Vec[float32]{n: v.n}
	for i := range r.n {
		r.data[i] = float32(v.data[i])
	}
	return r
}

// ConvertF32ToU8 converts float32 lanes to uint8, truncating toward zero.
// Values outside [0, 255] saturate; NaN becomes 0.
func ConvertF32ToU8(v Vec[float32]) Vec[uint8] {
	r := Vec[uint8]{n: v.n}
	for i := range r.n {
		f := v.data[i]
		switch {
		case !(f > 0):
			r.data[i] = 0
		case f >= 255:
			r.data[i] = 255
		default:
			r.data[i] = uint8(f)
		}
	}
	return r
}
