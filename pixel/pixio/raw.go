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

package pixio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/ajroetker/go-pixel/pixel"
)

// Raw buffer layout, zstd-compressed as a single stream:
//
//	"PIXZ" | version (1 byte) | channels (1 byte) | width (u32 LE) | height (u32 LE) | pixels
const (
	rawMagic      = "PIXZ"
	rawVersion    = 1
	rawHeaderSize = 4 + 1 + 1 + 4 + 4

	// MaxRawPixels caps the pixel count ReadRaw accepts from a header.
	MaxRawPixels = 1 << 28
)

// ErrRawFormat is returned for streams that are not a valid raw buffer.
var ErrRawFormat = errors.New("pixio: invalid raw buffer")

// WriteRaw writes buf to w in the raw format.
func WriteRaw(w io.Writer, buf *pixel.Buffer) error {
	if err := buf.Validate(); err != nil {
		return err
	}
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}

	var hdr [rawHeaderSize]byte
	copy(hdr[:4], rawMagic)
	hdr[4] = rawVersion
	hdr[5] = byte(buf.Channels)
	binary.LittleEndian.PutUint32(hdr[6:], uint32(buf.Width))
	binary.LittleEndian.PutUint32(hdr[10:], uint32(buf.Height))

	if _, err := enc.Write(hdr[:]); err != nil {
		enc.Close()
		return err
	}
	if _, err := enc.Write(buf.Pix); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

// ReadRaw reads a raw buffer from r. A pixel payload whose length disagrees
// with the header yields an error wrapping pixel.ErrBufferSize.
func ReadRaw(r io.Reader) (*pixel.Buffer, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	var hdr [rawHeaderSize]byte
	if _, err := io.ReadFull(dec, hdr[:]); err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrRawFormat, err)
	}
	if !bytes.Equal(hdr[:4], []byte(rawMagic)) {
		return nil, fmt.Errorf("%w: bad magic %q", ErrRawFormat, hdr[:4])
	}
	if hdr[4] != rawVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrRawFormat, hdr[4])
	}
	channels := int(hdr[5])
	width := int(binary.LittleEndian.Uint32(hdr[6:]))
	height := int(binary.LittleEndian.Uint32(hdr[10:]))
	if !pixel.ValidChannels(channels) {
		return nil, fmt.Errorf("%w: %d", pixel.ErrChannels, channels)
	}
	if width > MaxRawPixels || height > MaxRawPixels || width*height > MaxRawPixels {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrRawFormat, width, height, MaxRawPixels)
	}

	want := width * height * channels
	pix, err := io.ReadAll(io.LimitReader(dec, int64(want)+1))
	if err != nil {
		return nil, fmt.Errorf("%w: payload: %w", ErrRawFormat, err)
	}
	return pixel.FromBytes(pix, width, height, channels)
}
