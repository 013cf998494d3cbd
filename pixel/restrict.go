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

// RestrictRGB copies in to out with byte ch of every pixel set to zero.
// Pixels are channels bytes wide (3 or 4); alpha is copied unchanged.
//
// It panics unless len(in) == len(out), channels is 3 or 4 and ch is valid.
func RestrictRGB(in, out []byte, channels int, ch Channel) {
	if channels != 3 && channels != 4 {
		panic(fmt.Sprintf("pixel: RestrictRGB with %d channels", channels))
	}
	if !ch.Valid() {
		panic(fmt.Sprintf("pixel: RestrictRGB with %v", ch))
	}
	checkLayout("RestrictRGB", in, out, channels, channels)
	copy(out, in)
	for i := int(ch); i < len(out); i += channels {
		out[i] = 0
	}
}

// RestrictRGB returns a copy of the buffer with channel ch zeroed.
func (b *Buffer) RestrictRGB(ch Channel) (*Buffer, error) {
	if !ch.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidChannel, ch)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if b.Channels == 1 {
		return nil, fmt.Errorf("%w: RGB restriction of a grey buffer", ErrChannels)
	}
	out := NewBuffer(b.Width, b.Height, b.Channels)
	RestrictRGB(b.Pix, out.Pix, b.Channels, ch)
	return out, nil
}
