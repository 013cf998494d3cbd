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
	"errors"
	"testing"
)

func TestSelectKernels(t *testing.T) {
	g0, _ := KernelNames()
	t.Cleanup(func() { SelectKernels(g0 == "scalar") })

	SelectKernels(true)
	if g, d := KernelNames(); g != "scalar" || d != "scalar" {
		t.Errorf("scalar selection: %s, %s", g, d)
	}

	SelectKernels(false)
	if g, d := KernelNames(); g != "exact8" || d != "vec8" {
		t.Errorf("lane selection: %s, %s", g, d)
	}

	in := []byte{10, 20, 30, 40, 50, 60, 70, 80, 90, 100, 110, 120}
	out := make([]byte, 4)
	Greyscale(in, out)
	if out[0] != 20 || out[3] != 110 {
		t.Errorf("Greyscale after selection = %v", out)
	}
}

func TestLookupKernels(t *testing.T) {
	for _, k := range GreyscaleKernels {
		got, err := LookupGreyscale(k.Name)
		if err != nil || got.Name != k.Name || got.Lanes != k.Lanes {
			t.Errorf("LookupGreyscale(%q) = %+v, %v", k.Name, got, err)
		}
	}
	for _, k := range DimKernels {
		got, err := LookupDim(k.Name)
		if err != nil || got.Name != k.Name {
			t.Errorf("LookupDim(%q) = %+v, %v", k.Name, got, err)
		}
	}
	if _, err := LookupGreyscale("avx9000"); !errors.Is(err, ErrUnknownKernel) {
		t.Errorf("unknown greyscale error = %v", err)
	}
	if _, err := LookupDim(""); !errors.Is(err, ErrUnknownKernel) {
		t.Errorf("unknown dim error = %v", err)
	}
}

func TestDimKernelSupports(t *testing.T) {
	half, _ := LookupDim("half8")
	if !half.Supports(2) || half.Supports(3) || half.Supports(0) {
		t.Error("half8 should support only factor 2")
	}
	vec, _ := LookupDim("vec8")
	if !vec.Supports(3) || vec.Supports(0) {
		t.Error("vec8 should support every non-zero factor")
	}
}
