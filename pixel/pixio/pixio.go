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

// Package pixio moves pixel buffers in and out of image files.
//
// Decoding accepts PNG, JPEG, GIF, BMP, TIFF and WebP through the image
// package registry, plus the package's own zstd-compressed raw format
// (".pixz"). Encoding picks a format from the file extension.
package pixio

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif" // register decoder
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register decoder

	"github.com/ajroetker/go-pixel/pixel"
)

// ErrUnknownFormat is returned when a file extension maps to no format.
var ErrUnknownFormat = errors.New("pixio: unknown image format")

// Format identifies an on-disk encoding.
type Format int

const (
	PNG Format = iota
	JPEG
	BMP
	TIFF
	PIXZ
)

var formatNames = [...]string{"png", "jpeg", "bmp", "tiff", "pixz"}

func (f Format) String() string {
	if f >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatFromPath returns the encoding implied by the extension of path.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG, nil
	case ".jpg", ".jpeg":
		return JPEG, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	case ".pixz":
		return PIXZ, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// DefaultJPEGQuality is used by Save for JPEG output.
const DefaultJPEGQuality = 90

// Load reads the image at path into a buffer with 1 channel for grey
// sources, 4 for sources with transparency, and 3 otherwise.
func Load(path string) (*pixel.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var buf *pixel.Buffer
	if strings.EqualFold(filepath.Ext(path), ".pixz") {
		buf, err = ReadRaw(f)
	} else {
		buf, err = Decode(f)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	pixel.Logger().Debug("pixio: loaded", "path", path,
		"width", buf.Width, "height", buf.Height, "channels", buf.Channels)
	return buf, nil
}

// Decode reads any registered image format from r.
func Decode(r io.Reader) (*pixel.Buffer, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return FromImage(img), nil
}

// FromImage copies img into a new buffer. See Load for the channel choice.
func FromImage(img image.Image) *pixel.Buffer {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	switch img.ColorModel() {
	case color.GrayModel, color.Gray16Model:
		out := pixel.NewBuffer(w, h, 1)
		for y := range h {
			row := out.Row(y)
			for x := range w {
				row[x] = color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray).Y
			}
		}
		return out
	}

	channels := 4
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		channels = 3
	}
	out := pixel.NewBuffer(w, h, channels)
	for y := range h {
		for x := range w {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			p := out.Pixel(x, y)
			p[0], p[1], p[2] = c.R, c.G, c.B
			if channels == 4 {
				p[3] = c.A
			}
		}
	}
	return out
}

// ToImage returns buf as an *image.Gray (1 channel) or *image.NRGBA.
func ToImage(buf *pixel.Buffer) image.Image {
	r := image.Rect(0, 0, buf.Width, buf.Height)
	switch buf.Channels {
	case 1:
		img := image.NewGray(r)
		for y := range buf.Height {
			copy(img.Pix[y*img.Stride:], buf.Row(y))
		}
		return img
	case 4:
		img := image.NewNRGBA(r)
		for y := range buf.Height {
			copy(img.Pix[y*img.Stride:], buf.Row(y))
		}
		return img
	}
	img := image.NewNRGBA(r)
	for y := range buf.Height {
		src := buf.Row(y)
		dst := img.Pix[y*img.Stride:]
		for x := range buf.Width {
			dst[4*x], dst[4*x+1], dst[4*x+2], dst[4*x+3] = src[3*x], src[3*x+1], src[3*x+2], 0xff
		}
	}
	return img
}

// Encode writes buf to w in format f.
func Encode(w io.Writer, buf *pixel.Buffer, f Format) error {
	if err := buf.Validate(); err != nil {
		return err
	}
	switch f {
	case PNG:
		return png.Encode(w, ToImage(buf))
	case JPEG:
		return jpeg.Encode(w, ToImage(buf), &jpeg.Options{Quality: DefaultJPEGQuality})
	case BMP:
		return bmp.Encode(w, ToImage(buf))
	case TIFF:
		return tiff.Encode(w, ToImage(buf), &tiff.Options{Compression: tiff.Deflate})
	case PIXZ:
		return WriteRaw(w, buf)
	}
	return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
}

// Save writes buf to path, choosing the format from its extension.
func Save(path string, buf *pixel.Buffer) (err error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	if err := Encode(file, buf, f); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	pixel.Logger().Debug("pixio: saved", "path", path, "format", f.String(),
		"width", buf.Width, "height", buf.Height, "channels", buf.Channels)
	return nil
}

// Resize scales buf to width x height with Catmull-Rom interpolation.
// Channel count is preserved.
func Resize(buf *pixel.Buffer, width, height int) *pixel.Buffer {
	if buf.Width == width && buf.Height == height {
		return buf.Clone()
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), ToImage(buf), image.Rect(0, 0, buf.Width, buf.Height), xdraw.Src, nil)

	out := pixel.NewBuffer(width, height, buf.Channels)
	for i := range out.Len() {
		p := dst.Pix[4*i : 4*i+4 : 4*i+4]
		switch buf.Channels {
		case 1:
			out.Pix[i] = p[0]
		case 3:
			copy(out.Pix[3*i:3*i+3], p[:3])
		case 4:
			copy(out.Pix[4*i:4*i+4], p)
		}
	}
	return out
}
