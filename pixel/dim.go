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

// DimLanes is the batch width of DimVec and DimHalf.
const DimLanes = 8

func checkDim(op string, in, out []byte, factor uint8) {
	if factor == 0 {
		panic(ErrZeroFactor)
	}
	if len(out) < len(in) {
		panic(fmt.Sprintf("pixel: %s: output length %d shorter than input %d", op, len(out), len(in)))
	}
}

// Dim writes in[i] / factor (truncated) to out[i] for every byte of in,
// alpha included. Bytes of out past len(in) are left untouched.
//
// It panics with ErrZeroFactor when factor is 0, and when out is shorter
// than in.
func Dim(in, out []byte, factor uint8) {
	checkDim("Dim", in, out, factor)
	out = out[:len(in)]
	for i, v := range in {
		out[i] = v / factor
	}
}

// DimVec is Dim in batches of DimLanes bytes. Its output is identical to Dim.
func DimVec(in, out []byte, factor uint8) {
	checkDim("DimVec", in, out, factor)
	full := hwy.FullBatches(len(in), DimLanes) * DimLanes
	for i := 0; i < full; i += DimLanes {
		v := hwy.Load(in[i:], DimLanes)
		hwy.Store(hwy.Div(v, factor), out[i:])
	}
	Dim(in[full:], out[full:], factor)
}

// DimHalf is Dim with factor 2, computed as a one-bit right shift per lane.
func DimHalf(in, out []byte) {
	checkDim("DimHalf", in, out, 2)
	hwy.ProcessWithTail(len(in), DimLanes,
		func(offset int) {
			v := hwy.Load(in[offset:], DimLanes)
			hwy.Store(hwy.ShiftRight(v, 1), out[offset:])
		},
		func(offset, count int) {
			Dim(in[offset:offset+count], out[offset:], 2)
		},
	)
}
