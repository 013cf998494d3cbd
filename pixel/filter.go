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
	"strings"

	"github.com/ajroetker/go-pixel/hwy/contrib/workerpool"
)

// EdgeMode selects how Convolve samples positions outside the image.
type EdgeMode int

const (
	// EdgeZero treats out-of-bounds samples as 0.
	EdgeZero EdgeMode = iota
	// EdgeClamp repeats the nearest border pixel.
	EdgeClamp
	// EdgeMirror reflects around the border.
	EdgeMirror
	// EdgeWrap tiles the image.
	EdgeWrap
)

var edgeModeNames = [...]string{"zero", "clamp", "mirror", "wrap"}

func (m EdgeMode) String() string {
	if m >= 0 && int(m) < len(edgeModeNames) {
		return edgeModeNames[m]
	}
	return fmt.Sprintf("EdgeMode(%d)", int(m))
}

// ParseEdgeMode accepts the names printed by EdgeMode.String.
func ParseEdgeMode(s string) (EdgeMode, error) {
	for i, name := range edgeModeNames {
		if strings.EqualFold(s, name) {
			return EdgeMode(i), nil
		}
	}
	return 0, fmt.Errorf("pixel: unknown edge mode %q", s)
}

// index maps a possibly out-of-bounds coordinate into [0, size).
// It returns -1 when the sample should read as zero.
func (m EdgeMode) index(i, size int) int {
	if i >= 0 && i < size {
		return i
	}
	switch m {
	case EdgeClamp:
		return Clamp(i, size)
	case EdgeMirror:
		return Mirror(i, size)
	case EdgeWrap:
		return Wrap(i, size)
	}
	return -1
}

// Kernel is a row-major Height x Width grid of convolution weights.
type Kernel struct {
	Width   int
	Height  int
	Weights []float32
}

// Predefined kernels.
var (
	// EdgeKernel is the horizontal derivative [2 0 -2].
	EdgeKernel = Kernel{Width: 3, Height: 1, Weights: []float32{2, 0, -2}}

	// BoxBlur3 averages a 3x3 neighbourhood.
	BoxBlur3 = Kernel{Width: 3, Height: 3, Weights: []float32{
		1.0 / 9, 1.0 / 9, 1.0 / 9,
		1.0 / 9, 1.0 / 9, 1.0 / 9,
		1.0 / 9, 1.0 / 9, 1.0 / 9,
	}}

	// Sharpen3 boosts the centre against its neighbours.
	Sharpen3 = Kernel{Width: 3, Height: 3, Weights: []float32{
		-.11, -.11, -.11,
		-.11, 1.88, -.11,
		-.11, -.11, -.11,
	}}

	// Emboss3 subtracts the centre from its neighbourhood.
	Emboss3 = Kernel{Width: 3, Height: 3, Weights: []float32{
		0.5, 0.5, 0.5,
		0.5, -3, 0.5,
		0.5, 0.5, 0.5,
	}}
)

// NewKernel builds a kernel from rows of equal length.
func NewKernel(rows [][]float32) (Kernel, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Kernel{}, fmt.Errorf("%w: empty", ErrConvKernel)
	}
	k := Kernel{Width: len(rows[0]), Height: len(rows)}
	for i, row := range rows {
		if len(row) != k.Width {
			return Kernel{}, fmt.Errorf("%w: row %d has %d weights, want %d",
				ErrConvKernel, i, len(row), k.Width)
		}
		k.Weights = append(k.Weights, row...)
	}
	return k, nil
}

// Validate checks that the weights fill the declared grid.
func (k Kernel) Validate() error {
	if k.Width <= 0 || k.Height <= 0 || len(k.Weights) != k.Width*k.Height {
		return fmt.Errorf("%w: %dx%d with %d weights",
			ErrConvKernel, k.Width, k.Height, len(k.Weights))
	}
	return nil
}

// Transpose returns the kernel with rows and columns swapped, turning a
// horizontal derivative into a vertical one.
func (k Kernel) Transpose() Kernel {
	t := Kernel{Width: k.Height, Height: k.Width, Weights: make([]float32, len(k.Weights))}
	for y := range k.Height {
		for x := range k.Width {
			t.Weights[x*t.Width+y] = k.Weights[y*k.Width+x]
		}
	}
	return t
}

// Scale returns the kernel with every weight multiplied by f.
func (k Kernel) Scale(f float32) Kernel {
	s := Kernel{Width: k.Width, Height: k.Height, Weights: make([]float32, len(k.Weights))}
	for i, w := range k.Weights {
		s.Weights[i] = w * f
	}
	return s
}

// Convolve correlates every colour channel of src with k. Kernel cell (i, j)
// samples the pixel offset by (i - Height/2, j - Width/2). Sums accumulate
// in float32 and are clamped to [0, 255] and truncated. Alpha is copied.
func Convolve(src *Buffer, k Kernel, edge EdgeMode) (*Buffer, error) {
	return ConvolveParallel(nil, src, k, edge)
}

// ConvolveParallel is Convolve with output rows distributed over pool.
// A nil pool runs on the calling goroutine.
func ConvolveParallel(pool *workerpool.Pool, src *Buffer, k Kernel, edge EdgeMode) (*Buffer, error) {
	if err := k.Validate(); err != nil {
		return nil, err
	}
	if err := src.Validate(); err != nil {
		return nil, err
	}
	out := NewBuffer(src.Width, src.Height, src.Channels)
	rows := func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			convolveRow(src, out, k, edge, y)
		}
	}
	if pool == nil {
		rows(0, src.Height)
	} else {
		pool.ParallelForAtomicBatched(src.Height, 8, rows)
	}
	return out, nil
}

func convolveRow(src, out *Buffer, k Kernel, edge EdgeMode, y int) {
	colour := min(src.Channels, 3)
	oy, ox := k.Height/2, k.Width/2
	for x := range src.Width {
		dst := out.Pixel(x, y)
		for c := range colour {
			var acc float32
			for ky := range k.Height {
				sy := edge.index(y+ky-oy, src.Height)
				if sy < 0 {
					continue
				}
				row := src.Row(sy)
				for kx := range k.Width {
					sx := edge.index(x+kx-ox, src.Width)
					if sx < 0 {
						continue
					}
					acc += float32(row[sx*src.Channels+c]) * k.Weights[ky*k.Width+kx]
				}
			}
			dst[c] = clampToByte(acc)
		}
		if src.Channels == 4 {
			dst[3] = src.Pixel(x, y)[3]
		}
	}
}

func clampToByte(f float32) uint8 {
	switch {
	case !(f > 0):
		return 0
	case f >= 255:
		return 255
	}
	return uint8(f)
}

// Threshold copies in to out, replacing values below t with 0.
// It panics when out is shorter than in.
func Threshold(in, out []byte, t uint8) {
	if len(out) < len(in) {
		panic(fmt.Sprintf("pixel: Threshold: output length %d shorter than input %d", len(out), len(in)))
	}
	for i, v := range in {
		if v < t {
			v = 0
		}
		out[i] = v
	}
}

// DetectEdges converts src to grey, applies EdgeKernel with mirrored
// borders, and keeps only responses of at least threshold.
func DetectEdges(src *Buffer, threshold uint8) (*Buffer, error) {
	grey, err := src.Greyscale()
	if err != nil {
		return nil, err
	}
	edges, err := Convolve(grey, EdgeKernel, EdgeMirror)
	if err != nil {
		return nil, err
	}
	Threshold(edges.Pix, edges.Pix, threshold)
	return edges, nil
}
