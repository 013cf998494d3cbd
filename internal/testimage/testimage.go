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

// Package testimage generates deterministic pixel data for tests and
// benchmarks.
package testimage

import "math/rand/v2"

// Bytes returns n pseudo-random bytes. The same seed always yields the same
// bytes.
func Bytes(n int, seed uint64) []byte {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]byte, n)
	for i := 0; i < n; i += 8 {
		v := rng.Uint64()
		for j := i; j < min(i+8, n); j++ {
			out[j] = byte(v)
			v >>= 8
		}
	}
	return out
}

// Random returns a width x height image of channels bytes per pixel filled
// with pseudo-random values.
func Random(width, height, channels int, seed uint64) []byte {
	return Bytes(width*height*channels, seed)
}

// Gradient returns a width x height image whose channel c at (x, y) is
// (x*(c+1) + y*(channels-c)) mod 256. Alpha, when channels is 4, is 255.
func Gradient(width, height, channels int) []byte {
	out := make([]byte, width*height*channels)
	i := 0
	for y := range height {
		for x := range width {
			for c := range channels {
				if channels == 4 && c == 3 {
					out[i] = 0xff
				} else {
					out[i] = byte(x*(c+1) + y*(channels-c))
				}
				i++
			}
		}
	}
	return out
}

// AllTriples returns every RGB triple with first channel r, 65536 pixels in
// (g, b) order.
func AllTriples(r uint8) []byte {
	out := make([]byte, 0, 3*256*256)
	for g := range 256 {
		for b := range 256 {
			out = append(out, r, byte(g), byte(b))
		}
	}
	return out
}
