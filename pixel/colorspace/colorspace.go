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

// Package colorspace zeroes one component of an image in the CIE Lab (D65)
// or HSV colour space.
//
// Each 8-bit sRGB pixel is converted to floating point, transformed into the
// target space, has the selected component set to zero, and is converted back
// to 8-bit sRGB with clamping and rounding. Zeroing hue sets it to 0 degrees.
package colorspace

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ajroetker/go-pixel/hwy/contrib/workerpool"
	"github.com/ajroetker/go-pixel/pixel"
)

var (
	// ErrInvalidComponent is returned for a component letter the space does
	// not define.
	ErrInvalidComponent = errors.New("colorspace: invalid color channel")

	// ErrUnknownSpace is returned by ParseSpace for unknown names.
	ErrUnknownSpace = errors.New("colorspace: unknown color space")
)

// Space names a colour space with three zeroable components.
type Space int

const (
	Lab Space = iota
	HSV
)

func (s Space) String() string {
	switch s {
	case Lab:
		return "lab"
	case HSV:
		return "hsv"
	}
	return fmt.Sprintf("Space(%d)", int(s))
}

// Components returns the component letters of s in storage order.
func (s Space) Components() string {
	switch s {
	case Lab:
		return "LAB"
	case HSV:
		return "HSV"
	}
	return ""
}

// ParseSpace accepts "lab" or "hsv" in any case.
func ParseSpace(name string) (Space, error) {
	switch strings.ToLower(name) {
	case "lab":
		return Lab, nil
	case "hsv":
		return HSV, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSpace, name)
}

// Component resolves comp (either case) to its index in s.
func (s Space) Component(comp rune) (int, error) {
	i := strings.IndexRune(s.Components(), unicode.ToUpper(comp))
	if i < 0 {
		return 0, fmt.Errorf("%w: %q in %v", ErrInvalidComponent, comp, s)
	}
	return i, nil
}

// Restrict returns a copy of src with component comp of space zeroed.
// src must have 3 or 4 channels; alpha is carried over unchanged.
func Restrict(src *pixel.Buffer, space Space, comp rune) (*pixel.Buffer, error) {
	return RestrictParallel(nil, src, space, comp)
}

// RestrictParallel is Restrict with rows distributed over pool.
// A nil pool runs on the calling goroutine.
func RestrictParallel(pool *workerpool.Pool, src *pixel.Buffer, space Space, comp rune) (*pixel.Buffer, error) {
	idx, err := space.Component(comp)
	if err != nil {
		return nil, err
	}
	if err := src.Validate(); err != nil {
		return nil, err
	}
	if src.Channels == 1 {
		return nil, fmt.Errorf("%w: %v restriction needs colour input", pixel.ErrChannels, space)
	}

	zero := zeroFunc(space, idx)
	out := pixel.NewBuffer(src.Width, src.Height, src.Channels)
	rows := func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			restrictRow(src.Row(y), out.Row(y), src.Channels, zero)
		}
	}
	if pool == nil {
		rows(0, src.Height)
	} else {
		pool.ParallelFor(src.Height, rows)
	}

	pixel.Logger().Debug("colorspace: restricted",
		"space", space.String(), "component", string(unicode.ToUpper(comp)),
		"width", src.Width, "height", src.Height)
	return out, nil
}

func restrictRow(in, out []byte, channels int, zero func(colorful.Color) colorful.Color) {
	for i := 0; i < len(in); i += channels {
		p := in[i : i+3 : i+3]
		c := colorful.Color{
			R: float64(p[0]) / 255,
			G: float64(p[1]) / 255,
			B: float64(p[2]) / 255,
		}
		out[i], out[i+1], out[i+2] = zero(c).Clamped().RGB255()
		if channels == 4 {
			out[i+3] = in[i+3]
		}
	}
}

// zeroFunc returns the per-pixel transform that clears component idx.
func zeroFunc(space Space, idx int) func(colorful.Color) colorful.Color {
	if space == HSV {
		return func(c colorful.Color) colorful.Color {
			hsv := [3]float64{}
			hsv[0], hsv[1], hsv[2] = c.Hsv()
			hsv[idx] = 0
			return colorful.Hsv(hsv[0], hsv[1], hsv[2])
		}
	}
	return func(c colorful.Color) colorful.Color {
		lab := [3]float64{}
		lab[0], lab[1], lab[2] = c.Lab()
		lab[idx] = 0
		return colorful.Lab(lab[0], lab[1], lab[2])
	}
}
