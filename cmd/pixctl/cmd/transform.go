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
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-pixel/hwy/contrib/workerpool"
	"github.com/ajroetker/go-pixel/pixel"
	"github.com/ajroetker/go-pixel/pixel/colorspace"
	"github.com/ajroetker/go-pixel/pixel/pixio"
)

// transform loads args[0], applies fn and saves the result to the last arg.
func transform(ctx context.Context, args []string, fn func(*pixel.Buffer) (*pixel.Buffer, error)) error {
	src, err := pixio.Load(args[0])
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	out, err := fn(src)
	if err != nil {
		return err
	}
	dst := args[len(args)-1]
	if err := pixio.Save(dst, out); err != nil {
		return err
	}
	slog.InfoContext(ctx, "wrote image", "path", dst,
		"width", out.Width, "height", out.Height, "channels", out.Channels)
	return nil
}

func newPool(cmd *cobra.Command) *workerpool.Pool {
	n, _ := cmd.Flags().GetInt("workers")
	if n == 1 {
		return nil
	}
	return workerpool.New(n)
}

func addWorkersFlag(cmd *cobra.Command) {
	cmd.Flags().IntP("workers", "w", 1, "worker goroutines (0 = GOMAXPROCS)")
}

// NewGreyCmd converts an image to greyscale.
func NewGreyCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grey IN OUT",
		Short: "convert an image to greyscale",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("kernel")
			fn := pixel.Greyscale
			if name != "" {
				k, err := pixel.LookupGreyscale(name)
				if err != nil {
					return err
				}
				fn = k.Fn
			}
			pool := newPool(cmd)
			if pool != nil {
				defer pool.Close()
			}
			return transform(ctx, args, func(src *pixel.Buffer) (*pixel.Buffer, error) {
				if src.Channels != 3 {
					if name != "" {
						return nil, fmt.Errorf("kernel %q needs 3 channels, got %d: %w", name, src.Channels, pixel.ErrChannels)
					}
					return src.Greyscale()
				}
				out := pixel.NewBuffer(src.Width, src.Height, 1)
				pixel.ParallelGreyscale(pool, src.Pix, out.Pix, fn)
				return out, nil
			})
		},
	}
	cmd.Flags().StringP("kernel", "k", "", "greyscale kernel (see info); empty uses the dispatched kernel")
	addWorkersFlag(cmd)
	return cmd
}

// NewDimCmd divides every byte of an image by a factor.
func NewDimCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dim IN OUT",
		Short: "divide every channel by a factor",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			factor, _ := cmd.Flags().GetUint8("factor")
			name, _ := cmd.Flags().GetString("kernel")
			if factor == 0 {
				return pixel.ErrZeroFactor
			}
			fn := pixel.DimBy
			if name != "" {
				k, err := pixel.LookupDim(name)
				if err != nil {
					return err
				}
				if !k.Supports(factor) {
					return fmt.Errorf("dim kernel %s does not support factor %d", k.Name, factor)
				}
				fn = k.Fn
			}
			pool := newPool(cmd)
			if pool != nil {
				defer pool.Close()
			}
			return transform(ctx, args, func(src *pixel.Buffer) (*pixel.Buffer, error) {
				out := pixel.NewBuffer(src.Width, src.Height, src.Channels)
				pixel.ParallelDim(pool, src.Pix, out.Pix, factor, fn)
				return out, nil
			})
		},
	}
	cmd.Flags().Uint8P("factor", "f", 2, "divisor applied to every byte")
	cmd.Flags().StringP("kernel", "k", "", "dim kernel (see info); empty uses the dispatched kernel")
	addWorkersFlag(cmd)
	return cmd
}

// restrict zeroes components in order; "LA" in lab zeroes L then A.
func restrict(pool *workerpool.Pool, src *pixel.Buffer, space, components string) (*pixel.Buffer, error) {
	if components == "" {
		return nil, fmt.Errorf("%w: no component given", pixel.ErrInvalidChannel)
	}
	out := src
	for _, c := range components {
		var err error
		if strings.EqualFold(space, "rgb") {
			var ch pixel.Channel
			if ch, err = pixel.ParseChannel(c); err != nil {
				return nil, err
			}
			out, err = out.RestrictRGB(ch)
		} else {
			var s colorspace.Space
			if s, err = colorspace.ParseSpace(space); err != nil {
				return nil, err
			}
			out, err = colorspace.RestrictParallel(pool, out, s, c)
		}
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// NewRestrictCmd zeroes colour components in RGB, Lab or HSV.
func NewRestrictCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restrict IN OUT",
		Short: "zero one or more colour components",
		Long:  "restrict zeroes components of an image in the rgb (R, G, B), lab (L, A, B) or hsv (H, S, V) colour space. Several letters are applied in order.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			space, _ := cmd.Flags().GetString("space")
			components, _ := cmd.Flags().GetString("channel")
			pool := newPool(cmd)
			if pool != nil {
				defer pool.Close()
			}
			return transform(ctx, args, func(src *pixel.Buffer) (*pixel.Buffer, error) {
				return restrict(pool, src, space, components)
			})
		},
	}
	cmd.Flags().StringP("space", "s", "rgb", "colour space (rgb|lab|hsv)")
	cmd.Flags().StringP("channel", "c", "R", "component letters to zero")
	addWorkersFlag(cmd)
	return cmd
}

// NewCombineCmd joins the left half of one image with the right half of another.
func NewCombineCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "combine LEFT RIGHT OUT",
		Short: "join the left half of one image with the right half of another",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			resize, _ := cmd.Flags().GetBool("resize")
			right, err := pixio.Load(args[1])
			if err != nil {
				return err
			}
			return transform(ctx, args, func(left *pixel.Buffer) (*pixel.Buffer, error) {
				if resize && !left.SameSize(right) {
					right = pixio.Resize(right, left.Width, left.Height)
				}
				return pixel.Combine(left, right)
			})
		},
	}
	cmd.Flags().Bool("resize", false, "scale RIGHT to the size of LEFT first")
	return cmd
}

// NewQuartersCmd applies a different transform to each quadrant.
func NewQuartersCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quarters IN OUT",
		Short: "apply a different transform to each quadrant",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return transform(ctx, args, func(src *pixel.Buffer) (*pixel.Buffer, error) {
				return pixel.Quarters(src), nil
			})
		},
	}
	return cmd
}

// NewEdgesCmd runs the derivative-and-threshold edge detector.
func NewEdgesCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edges IN OUT",
		Short: "greyscale, derivative filter and threshold",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			threshold, _ := cmd.Flags().GetUint8("threshold")
			return transform(ctx, args, func(src *pixel.Buffer) (*pixel.Buffer, error) {
				return pixel.DetectEdges(src, threshold)
			})
		},
	}
	cmd.Flags().Uint8P("threshold", "t", 60, "responses below this become 0")
	return cmd
}

var namedKernels = map[string]pixel.Kernel{
	"edge":    pixel.EdgeKernel,
	"blur":    pixel.BoxBlur3,
	"sharpen": pixel.Sharpen3,
	"emboss":  pixel.Emboss3,
}

// NewFilterCmd convolves an image with a named kernel.
func NewFilterCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filter IN OUT",
		Short: "convolve with a named kernel (edge|blur|sharpen|emboss)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("kernel")
			modeName, _ := cmd.Flags().GetString("edge")
			vertical, _ := cmd.Flags().GetBool("vertical")
			k, ok := namedKernels[name]
			if !ok {
				return fmt.Errorf("%w: filter %q", pixel.ErrUnknownKernel, name)
			}
			mode, err := pixel.ParseEdgeMode(modeName)
			if err != nil {
				return err
			}
			if vertical {
				k = k.Transpose()
			}
			pool := newPool(cmd)
			if pool != nil {
				defer pool.Close()
			}
			return transform(ctx, args, func(src *pixel.Buffer) (*pixel.Buffer, error) {
				return pixel.ConvolveParallel(pool, src, k, mode)
			})
		},
	}
	cmd.Flags().StringP("kernel", "k", "blur", "kernel name")
	cmd.Flags().String("edge", "clamp", "border handling (zero|clamp|mirror|wrap)")
	cmd.Flags().Bool("vertical", false, "transpose the kernel")
	addWorkersFlag(cmd)
	return cmd
}
