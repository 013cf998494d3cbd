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

import (
	"math"
	"testing"
)

func TestPromoteU8ToU16(t *testing.T) {
	input := Load([]uint8{0, 1, 127, 128, 200, 254, 255, 42}, 8)
	result := PromoteU8ToU16(input)

	if result.NumLanes() != 8 {
		t.Fatalf("got %d lanes, want 8", result.NumLanes())
	}
	for i := range 8 {
		if result.data[i] != uint16(input.data[i]) {
			t.Errorf("PromoteU8ToU16 lane %d: got %d, want %d", i, result.data[i], input.data[i])
		}
	}
}

func TestDemoteU16ToU8Saturates(t *testing.T) {
	input := Load([]uint16{0, 255, 256, 765, 65535}, 5)
	want := []uint8{0, 255, 255, 255, 255}

	result := DemoteU16ToU8(input)
	for i := range want {
		if result.data[i] != want[i] {
			t.Errorf("DemoteU16ToU8 lane %d: got %d, want %d", i, result.data[i], want[i])
		}
	}
}

func TestConvertU8ToF32(t *testing.T) {
	input := Load([]uint8{0, 1, 128, 255}, 4)
	result := ConvertU8ToF32(input)

	want := []float32{0, 1, 128, 255}
	for i := range want {
		if result.data[i] != want[i] {
			t.Errorf("ConvertU8ToF32 lane %d: got %v, want %v", i, result.data[i], want[i])
		}
	}
}

func TestConvertF32ToU8(t *testing.T) {
	nan := float32(math.NaN())
	input := Load([]float32{-3, 0.99, 84.999, 254.9, 255, 1e9, nan, 12}, 8)
	want := []uint8{0, 0, 84, 254, 255, 255, 0, 12}

	result := ConvertF32ToU8(input)
	for i := range want {
		if result.data[i] != want[i] {
			t.Errorf("ConvertF32ToU8 lane %d: got %d, want %d", i, result.data[i], want[i])
		}
	}
}
