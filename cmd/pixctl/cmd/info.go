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
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-pixel/hwy"
	"github.com/ajroetker/go-pixel/pixel"
	"github.com/ajroetker/go-pixel/pixel/pixio"
)

// NewInfoCmd reports the dispatch level, the registered kernels and,
// given image paths, their dimensions.
func NewInfoCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info [image...]",
		Short: "show CPU dispatch, kernels and image dimensions",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			printDispatch(out)
			for _, path := range args {
				if err := ctx.Err(); err != nil {
					return err
				}
				buf, err := pixio.Load(path)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s: %dx%d, %d channels, %d bytes\n",
					path, buf.Width, buf.Height, buf.Channels, len(buf.Pix))
			}
			return nil
		},
	}
	return cmd
}

func printDispatch(w io.Writer) {
	grey, dim := pixel.KernelNames()
	fmt.Fprintf(w, "dispatch: %s (%d-byte vectors)\n", hwy.CurrentName(), hwy.CurrentWidth())
	fmt.Fprintf(w, "selected: greyscale=%s dim=%s\n\n", grey, dim)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "OP\tKERNEL\tLANES\tMAX ERROR")
	for _, k := range pixel.GreyscaleKernels {
		fmt.Fprintf(tw, "greyscale\t%s\t%d\t%d\n", k.Name, k.Lanes, k.MaxError)
	}
	for _, k := range pixel.DimKernels {
		note := "0"
		if k.FixedFactor != 0 {
			note = fmt.Sprintf("0 (factor %d only)", k.FixedFactor)
		}
		fmt.Fprintf(tw, "dim\t%s\t%d\t%s\n", k.Name, k.Lanes, note)
	}
	tw.Flush()
}
