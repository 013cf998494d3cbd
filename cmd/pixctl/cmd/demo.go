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

package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-pixel/internal/testimage"
	"github.com/ajroetker/go-pixel/pixel"
	"github.com/ajroetker/go-pixel/pixel/colorspace"
	"github.com/ajroetker/go-pixel/pixel/pixio"
)

// NewDemoCmd writes the full set of demonstration images for one input.
func NewDemoCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo IMAGE [SECOND]",
		Short: "write every transform of IMAGE into an output directory",
		Long:  "demo writes dim, greyscale, RGB/Lab/HSV restriction, combine, quarters and edge images. SECOND is the right half of the combined image; without it a gradient is used.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			outDir, _ := cmd.Flags().GetString("out")
			second := ""
			if len(args) > 1 {
				second = args[1]
			}
			written, err := RunDemo(ctx, args[0], second, outDir)
			for _, path := range written {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return err
		},
	}
	cmd.Flags().StringP("out", "o", ".", "output directory")
	return cmd
}

type demoStep struct {
	name string
	run  func() (*pixel.Buffer, error)
}

// RunDemo loads first (and second, if not empty) and writes one PNG per
// transform into outDir. It returns the paths written so far, even on error.
func RunDemo(ctx context.Context, first, second, outDir string) ([]string, error) {
	img, err := pixio.Load(first)
	if err != nil {
		return nil, err
	}
	var img2 *pixel.Buffer
	if second != "" {
		if img2, err = pixio.Load(second); err != nil {
			return nil, err
		}
		if !img2.SameSize(img) {
			img2 = pixio.Resize(img2, img.Width, img.Height)
		}
	} else {
		img2, _ = pixel.FromBytes(testimage.Gradient(img.Width, img.Height, 3), img.Width, img.Height, 3)
	}
	// Restriction and composition need colour.
	if img.Channels == 1 {
		img = img.ToRGBA()
	}
	if img2.Channels == 1 {
		img2 = img2.ToRGBA()
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, err
	}

	var labL, hsvH *pixel.Buffer
	rgb := func(ch pixel.Channel) func() (*pixel.Buffer, error) {
		return func() (*pixel.Buffer, error) { return img.RestrictRGB(ch) }
	}
	space := func(src **pixel.Buffer, s colorspace.Space, comp rune, keep **pixel.Buffer) func() (*pixel.Buffer, error) {
		return func() (*pixel.Buffer, error) {
			out, err := colorspace.Restrict(*src, s, comp)
			if keep != nil {
				*keep = out
			}
			return out, err
		}
	}

	steps := []demoStep{
		{"dim", func() (*pixel.Buffer, error) { return img.Dimmed(2) }},
		{"grey", img.Greyscale},
		{"rgb_r", rgb(pixel.Red)},
		{"rgb_g", rgb(pixel.Green)},
		{"rgb_b", rgb(pixel.Blue)},
		{"lab_l", space(&img, colorspace.Lab, 'L', &labL)},
		{"lab_la", space(&labL, colorspace.Lab, 'A', nil)},
		{"lab_a", space(&img, colorspace.Lab, 'A', nil)},
		{"lab_b", space(&img, colorspace.Lab, 'B', nil)},
		{"hsv_h", space(&img, colorspace.HSV, 'H', &hsvH)},
		{"hsv_hs", space(&hsvH, colorspace.HSV, 'S', nil)},
		{"hsv_s", space(&img, colorspace.HSV, 'S', nil)},
		{"hsv_v", space(&img, colorspace.HSV, 'V', nil)},
		{"combined", func() (*pixel.Buffer, error) {
			left, err := img.RestrictRGB(pixel.Blue)
			if err != nil {
				return nil, err
			}
			right, err := img2.RestrictRGB(pixel.Green)
			if err != nil {
				return nil, err
			}
			return pixel.Combine(left, right)
		}},
		{"quarters", func() (*pixel.Buffer, error) { return pixel.Quarters(img), nil }},
		{"edges", func() (*pixel.Buffer, error) { return pixel.DetectEdges(img, 60) }},
	}

	var written []string
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		out, err := step.run()
		if err != nil {
			return written, fmt.Errorf("demo %s: %w", step.name, err)
		}
		path := filepath.Join(outDir, step.name+".png")
		if err := pixio.Save(path, out); err != nil {
			return written, err
		}
		slog.DebugContext(ctx, "demo image written", "step", step.name, "path", path)
		written = append(written, path)
	}
	return written, nil
}
