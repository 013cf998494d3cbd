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
)

// Buffer is an 8-bit interleaved image: Width*Height pixels of Channels bytes
// each, row-major, without row padding.
type Buffer struct {
	Pix      []byte
	Width    int
	Height   int
	Channels int
}

// ValidChannels reports whether n is a supported channel count (1, 3 or 4).
func ValidChannels(n int) bool {
	return n == 1 || n == 3 || n == 4
}

// NewBuffer allocates a zeroed buffer with the specified dimensions.
// Non-positive dimensions produce an empty buffer. An unsupported channel
// count is a programming error and panics.
func NewBuffer(width, height, channels int) *Buffer {
	if !ValidChannels(channels) {
		panic(fmt.Sprintf("pixel: NewBuffer with %d channels", channels))
	}
	if width <= 0 || height <= 0 {
		return &Buffer{Channels: channels}
	}
	return &Buffer{
		Pix:      make([]byte, width*height*channels),
		Width:    width,
		Height:   height,
		Channels: channels,
	}
}

// FromBytes wraps pix as a buffer without copying.
// It returns ErrBufferSize when len(pix) != width*height*channels.
func FromBytes(pix []byte, width, height, channels int) (*Buffer, error) {
	if !ValidChannels(channels) {
		return nil, fmt.Errorf("%w: %d", ErrChannels, channels)
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: negative dimensions %dx%d", ErrBufferSize, width, height)
	}
	if want := width * height * channels; len(pix) != want {
		return nil, fmt.Errorf("%w: got %d bytes, want %d for %dx%dx%d",
			ErrBufferSize, len(pix), want, width, height, channels)
	}
	return &Buffer{Pix: pix, Width: width, Height: height, Channels: channels}, nil
}

// Validate checks the buffer's invariants.
func (b *Buffer) Validate() error {
	_, err := FromBytes(b.Pix, b.Width, b.Height, b.Channels)
	return err
}

// Len returns the number of pixels.
func (b *Buffer) Len() int {
	return b.Width * b.Height
}

// Stride returns the number of bytes per row.
func (b *Buffer) Stride() int {
	return b.Width * b.Channels
}

// Row returns the bytes of row y, or nil if y is out of range.
func (b *Buffer) Row(y int) []byte {
	if y < 0 || y >= b.Height {
		return nil
	}
	stride := b.Stride()
	return b.Pix[y*stride : (y+1)*stride]
}

// Pixel returns the Channels bytes of the pixel at (x, y), or nil if the
// position is outside the buffer.
func (b *Buffer) Pixel(x, y int) []byte {
	if !b.Bounds().Contains(x, y) {
		return nil
	}
	off := (y*b.Width + x) * b.Channels
	return b.Pix[off : off+b.Channels : off+b.Channels]
}

// RGBA returns the pixel at (x, y) as four channels. Grey pixels are
// replicated into R, G and B; buffers without alpha report 255.
// Out-of-range positions return zeros.
func (b *Buffer) RGBA(x, y int) (r, g, bl, a uint8) {
	p := b.Pixel(x, y)
	switch len(p) {
	case 1:
		return p[0], p[0], p[0], 0xff
	case 3:
		return p[0], p[1], p[2], 0xff
	case 4:
		return p[0], p[1], p[2], p[3]
	}
	return 0, 0, 0, 0
}

// SameSize returns true if both buffers have the same dimensions.
func (b *Buffer) SameSize(other *Buffer) bool {
	return b.Width == other.Width && b.Height == other.Height
}

// Clone creates a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	c := *b
	c.Pix = make([]byte, len(b.Pix))
	copy(c.Pix, b.Pix)
	return &c
}

// Bounds returns the bounding rectangle of the buffer.
func (b *Buffer) Bounds() Rect {
	return Rect{X0: 0, Y0: 0, X1: b.Width, Y1: b.Height}
}

// ToRGBA returns a 4-channel copy of the buffer.
func (b *Buffer) ToRGBA() *Buffer {
	out := NewBuffer(b.Width, b.Height, 4)
	if b.Channels == 4 {
		copy(out.Pix, b.Pix)
		return out
	}
	for i := range b.Len() {
		p := out.Pix[4*i : 4*i+4 : 4*i+4]
		if b.Channels == 1 {
			p[0], p[1], p[2] = b.Pix[i], b.Pix[i], b.Pix[i]
		} else {
			p[0], p[1], p[2] = b.Pix[3*i], b.Pix[3*i+1], b.Pix[3*i+2]
		}
		p[3] = 0xff
	}
	return out
}

// Greyscale returns a 1-channel copy of the buffer using the dispatched
// Greyscale kernel. Alpha is ignored.
func (b *Buffer) Greyscale() (*Buffer, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	out := NewBuffer(b.Width, b.Height, 1)
	switch b.Channels {
	case 1:
		copy(out.Pix, b.Pix)
	case 3:
		Greyscale(b.Pix, out.Pix)
	case 4:
		GreyscaleStrided(b.Pix, out.Pix, 4)
	}
	return out, nil
}

// Dimmed returns a copy with every byte, alpha included, divided by factor
// using the dispatched DimBy kernel.
func (b *Buffer) Dimmed(factor uint8) (*Buffer, error) {
	if factor == 0 {
		return nil, ErrZeroFactor
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	out := NewBuffer(b.Width, b.Height, b.Channels)
	DimBy(b.Pix, out.Pix, factor)
	return out, nil
}

// checkLayout panics unless in holds exactly inChannels bytes per output
// pixel of outChannels bytes.
func checkLayout(op string, in, out []byte, inChannels, outChannels int) {
	if len(out)%outChannels != 0 {
		panic(fmt.Sprintf("pixel: %s: output length %d is not a multiple of %d", op, len(out), outChannels))
	}
	if n := len(out) / outChannels; len(in) != n*inChannels {
		panic(fmt.Sprintf("pixel: %s: input length %d, want %d for %d pixels", op, len(in), n*inChannels, n))
	}
}
