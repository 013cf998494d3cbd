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

	"github.com/ajroetker/go-pixel/hwy"
)

// GreyscaleFunc is the signature shared by all greyscale kernels.
type GreyscaleFunc func(in, out []byte)

// DimFunc is the signature shared by all dim kernels.
type DimFunc func(in, out []byte, factor uint8)

// GreyscaleKernel describes one registered greyscale kernel.
type GreyscaleKernel struct {
	Name  string
	Fn    GreyscaleFunc
	Lanes int // pixels per batch, 1 for scalar kernels

	// MaxError is the largest distance from GreyscaleScalar the kernel may
	// produce at any pixel. Zero means bit-identical.
	MaxError int
}

// DimKernel describes one registered dim kernel.
type DimKernel struct {
	Name  string
	Fn    DimFunc
	Lanes int

	// FixedFactor is non-zero for kernels that only compute one factor.
	// Fn ignores its factor argument for such kernels.
	FixedFactor uint8
}

// Supports reports whether the kernel can dim by factor.
func (k DimKernel) Supports(factor uint8) bool {
	return factor != 0 && (k.FixedFactor == 0 || k.FixedFactor == factor)
}

// GreyscaleKernels lists every greyscale kernel, scalar reference first.
var GreyscaleKernels = []GreyscaleKernel{
	{Name: "scalar", Fn: GreyscaleScalar, Lanes: 1},
	{Name: "truncsum", Fn: GreyscaleTruncSum, Lanes: 1, MaxError: 2},
	{Name: "f32x4", Fn: GreyscaleF32x4, Lanes: F32x4Lanes, MaxError: 1},
	{Name: "shift8", Fn: GreyscaleShift8, Lanes: Shift8Lanes, MaxError: Shift8MaxBias},
	{Name: "exact8", Fn: GreyscaleExact8, Lanes: Shift8Lanes},
}

// DimKernels lists every dim kernel, scalar reference first.
var DimKernels = []DimKernel{
	{Name: "scalar", Fn: Dim, Lanes: 1},
	{Name: "vec8", Fn: DimVec, Lanes: DimLanes},
	{Name: "half8", Fn: func(in, out []byte, _ uint8) { DimHalf(in, out) }, Lanes: DimLanes, FixedFactor: 2},
}

// LookupGreyscale returns the greyscale kernel registered under name.
func LookupGreyscale(name string) (GreyscaleKernel, error) {
	for _, k := range GreyscaleKernels {
		if k.Name == name {
			return k, nil
		}
	}
	return GreyscaleKernel{}, fmt.Errorf("%w: greyscale %q", ErrUnknownKernel, name)
}

// LookupDim returns the dim kernel registered under name.
func LookupDim(name string) (DimKernel, error) {
	for _, k := range DimKernels {
		if k.Name == name {
			return k, nil
		}
	}
	return DimKernel{}, fmt.Errorf("%w: dim %q", ErrUnknownKernel, name)
}

// Greyscale is the greyscale kernel chosen for this process. It always
// produces the same output as GreyscaleScalar.
var Greyscale GreyscaleFunc = GreyscaleScalar

// DimBy is the dim kernel chosen for this process. It always produces the
// same output as Dim.
var DimBy DimFunc = Dim

var greyName, dimName = "scalar", "scalar"

func init() {
	SelectKernels(hwy.CurrentLevel() == hwy.DispatchScalar)
}

// SelectKernels rebinds Greyscale and DimBy. With scalarOnly the scalar
// references are used; otherwise the exact lane-batch kernels are.
//
// SelectKernels must not run concurrently with calls through Greyscale or
// DimBy.
func SelectKernels(scalarOnly bool) {
	if scalarOnly {
		Greyscale, greyName = GreyscaleScalar, "scalar"
		DimBy, dimName = Dim, "scalar"
	} else {
		Greyscale, greyName = GreyscaleExact8, "exact8"
		DimBy, dimName = DimVec, "vec8"
	}
	Logger().Debug("pixel: kernels selected",
		"greyscale", greyName, "dim", dimName, "level", hwy.CurrentName())
}

// KernelNames reports the names of the kernels bound to Greyscale and DimBy.
func KernelNames() (greyscale, dim string) {
	return greyName, dimName
}
