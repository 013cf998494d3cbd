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

import "fmt"

// Combine joins the left half of a with the right half of b. Columns
// x < Width/2 come from a and the rest from b. The result is RGBA; inputs
// without alpha contribute 255.
func Combine(a, b *Buffer) (*Buffer, error) {
	if !a.SameSize(b) {
		return nil, fmt.Errorf("%w: %dx%d and %dx%d",
			ErrSizeMismatch, a.Width, a.Height, b.Width, b.Height)
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}

	out := NewBuffer(a.Width, a.Height, 4)
	mid := a.Width / 2
	for y := range a.Height {
		for x := range a.Width {
			src := a
			if x >= mid {
				src = b
			}
			p := out.Pixel(x, y)
			p[0], p[1], p[2], p[3] = src.RGBA(x, y)
		}
	}
	return out, nil
}

// Quarters applies a different transform to each quadrant of src and
// returns an RGBA image. Columns x >= Width/2 form the right half and rows
// y >= Height/2 the bottom half.
//
//	top-left:     alpha / 4
//	top-right:    greyscale (R+G+B)/3, alpha kept
//	bottom-left:  R and B swapped
//	bottom-right: R*2 saturating at 255, G/2
func Quarters(src *Buffer) *Buffer {
	out := NewBuffer(src.Width, src.Height, 4)
	topLeft, topRight, bottomLeft, bottomRight := src.Bounds().Quadrants()
	quadrant(src, out, topLeft, func(r, g, b, a uint8) (uint8, uint8, uint8, uint8) {
		return r, g, b, a / 4
	})
	quadrant(src, out, topRight, func(r, g, b, a uint8) (uint8, uint8, uint8, uint8) {
		avg := uint8((uint16(r) + uint16(g) + uint16(b)) / 3)
		return avg, avg, avg, a
	})
	quadrant(src, out, bottomLeft, func(r, g, b, a uint8) (uint8, uint8, uint8, uint8) {
		return b, g, r, a
	})
	quadrant(src, out, bottomRight, func(r, g, b, a uint8) (uint8, uint8, uint8, uint8) {
		return uint8(min(2*uint16(r), 0xff)), g / 2, b, a
	})
	return out
}

// quadrant writes fn applied to every pixel of src inside rect into out.
func quadrant(src, out *Buffer, rect Rect, fn func(r, g, b, a uint8) (uint8, uint8, uint8, uint8)) {
	if rect.IsEmpty() {
		return
	}
	for y := rect.Y0; y < rect.Y1; y++ {
		for x := rect.X0; x < rect.X1; x++ {
			p := out.Pixel(x, y)
			p[0], p[1], p[2], p[3] = fn(src.RGBA(x, y))
		}
	}
}
