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

import (
	"fmt"
	"testing"

	"github.com/ajroetker/go-pixel/internal/testimage"
)

func TestGreyscaleScenario(t *testing.T) {
	in := []byte{
		10, 20, 30, 40, 50, 60,
		70, 80, 90, 100, 110, 120,
	}
	want := []byte{20, 50, 80, 110}
	for _, k := range GreyscaleKernels {
		if k.MaxError != 0 {
			continue
		}
		t.Run(k.Name, func(t *testing.T) {
			out := make([]byte, 4)
			k.Fn(in, out)
			for i := range want {
				if out[i] != want[i] {
					t.Errorf("pixel %d: got %d, want %d", i, out[i], want[i])
				}
			}
		})
	}
}

func TestGreyscaleExtremes(t *testing.T) {
	in := []byte{0, 0, 0, 255, 255, 255, 255, 0, 0, 1, 1, 0}
	want := []byte{0, 255, 85, 0}
	out := make([]byte, 4)
	GreyscaleScalar(in, out)
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("pixel %d: got %d, want %d", i, out[i], want[i])
		}
	}
}

// forAllTriples runs kernel over every RGB triple and calls check with the
// oracle and kernel outputs plus the channel sum.
func forAllTriples(t *testing.T, kernel GreyscaleFunc, check func(oracle, got uint8, sum int) bool) {
	t.Helper()
	want := make([]byte, 65536)
	got := make([]byte, 65536)
	for r := range 256 {
		in := testimage.AllTriples(uint8(r))
		GreyscaleScalar(in, want)
		kernel(in, got)
		for i := range got {
			sum := int(in[3*i]) + int(in[3*i+1]) + int(in[3*i+2])
			if !check(want[i], got[i], sum) {
				t.Fatalf("rgb (%d,%d,%d): oracle %d, got %d",
					in[3*i], in[3*i+1], in[3*i+2], want[i], got[i])
			}
		}
	}
}

func TestGreyscaleTruncSumBias(t *testing.T) {
	forAllTriples(t, GreyscaleTruncSum, func(oracle, got uint8, _ int) bool {
		return got <= oracle && oracle-got <= 2
	})
}

func TestGreyscaleF32x4Tolerance(t *testing.T) {
	forAllTriples(t, GreyscaleF32x4, func(oracle, got uint8, _ int) bool {
		d := int(oracle) - int(got)
		return d >= -1 && d <= 1
	})
}

func TestGreyscaleShift8Bias(t *testing.T) {
	maxSeen := 0
	forAllTriples(t, GreyscaleShift8, func(oracle, got uint8, sum int) bool {
		d := int(oracle) - int(got)
		maxSeen = max(maxSeen, d)
		// d <= sum/12 + 9/4, scaled by 12.
		return d >= 0 && d <= Shift8MaxBias && 12*d <= sum+27
	})
	if maxSeen != Shift8MaxBias {
		t.Errorf("largest bias %d, Shift8MaxBias is %d", maxSeen, Shift8MaxBias)
	}
}

func TestGreyscaleExact8MatchesOracle(t *testing.T) {
	forAllTriples(t, GreyscaleExact8, func(oracle, got uint8, _ int) bool {
		return oracle == got
	})
}

func TestGreyscaleRemainder(t *testing.T) {
	// Every length up to a few batches, so each kernel sees every tail size.
	for n := 0; n <= 3*Shift8Lanes+1; n++ {
		in := testimage.Random(n, 1, 3, uint64(n))
		want := make([]byte, n)
		GreyscaleScalar(in, want)

		for _, k := range GreyscaleKernels {
			got := make([]byte, n)
			k.Fn(in, got)
			full := n / k.Lanes * k.Lanes
			for i := range n {
				d := int(want[i]) - int(got[i])
				if i >= full && d != 0 {
					t.Errorf("%s n=%d: tail pixel %d got %d, want %d", k.Name, n, i, got[i], want[i])
				}
				if d < -k.MaxError || d > k.MaxError {
					t.Errorf("%s n=%d: pixel %d off by %d", k.Name, n, i, d)
				}
			}
		}
	}
}

func TestGreyscaleStrided(t *testing.T) {
	rgba := []byte{30, 60, 90, 7, 255, 255, 255, 0}
	out := make([]byte, 2)
	GreyscaleStrided(rgba, out, 4)
	if out[0] != 60 || out[1] != 255 {
		t.Errorf("got %v, want [60 255]", out)
	}
}

func TestGreyscaleStridedBatches(t *testing.T) {
	// Lengths around the lane width exercise the batch and the scalar tail.
	for n := range 3*Shift8Lanes + 2 {
		rgba := testimage.Bytes(4*n, uint64(n))
		rgb := make([]byte, 3*n)
		for i := range n {
			copy(rgb[3*i:3*i+3], rgba[4*i:4*i+3])
		}
		want := make([]byte, n)
		GreyscaleScalar(rgb, want)
		got := make([]byte, n)
		GreyscaleStrided(rgba, got, 4)
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("n=%d pixel %d: got %d, want %d", n, i, got[i], want[i])
			}
		}
	}
}

func TestGreyscaleLengthPanics(t *testing.T) {
	tests := []struct {
		name   string
		in     int
		out    int
		panics bool
	}{
		{"exact", 12, 4, false},
		{"empty", 0, 0, false},
		{"short_input", 11, 4, true},
		{"long_input", 15, 4, true},
		{"short_output", 12, 3, true},
	}
	for _, k := range GreyscaleKernels {
		for _, tc := range tests {
			t.Run(fmt.Sprintf("%s/%s", k.Name, tc.name), func(t *testing.T) {
				defer func() {
					r := recover()
					if (r != nil) != tc.panics {
						t.Errorf("panic = %v, want panic %v", r, tc.panics)
					}
				}()
				k.Fn(make([]byte, tc.in), make([]byte, tc.out))
			})
		}
	}
}

func TestGreyscaleIdempotentOnGrey(t *testing.T) {
	// Replicating a grey value into RGB and converting back is the identity.
	in := make([]byte, 256*3)
	for v := range 256 {
		in[3*v], in[3*v+1], in[3*v+2] = byte(v), byte(v), byte(v)
	}
	for _, k := range GreyscaleKernels {
		if k.MaxError != 0 {
			continue
		}
		out := make([]byte, 256)
		k.Fn(in, out)
		for v := range 256 {
			if out[v] != byte(v) {
				t.Errorf("%s: grey %d became %d", k.Name, v, out[v])
			}
		}
	}
}
