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
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-pixel/hwy"
	"github.com/ajroetker/go-pixel/internal/logging"
	"github.com/ajroetker/go-pixel/pixel"
)

// NewRoot builds the pixctl command tree.
func NewRoot(ctx context.Context, gitsha string) *cobra.Command {
	var logFile io.Closer
	cmd := &cobra.Command{
		Use:           "pixctl",
		Short:         "run and benchmark scalar and lane-batch pixel kernels",
		Long:          "pixctl applies greyscale, dim, channel restriction, composition and filter kernels to image files, and times every kernel variant.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			pf := cmd.Flags()
			logLevel, _ := pf.GetString("log-level")
			jsonOut, _ := pf.GetBool("log-json")
			path, _ := pf.GetString("log-file")
			scalar, _ := pf.GetBool("scalar")

			level, ok := logging.ParseLevel(logLevel)
			var w io.Writer = cmd.ErrOrStderr()
			if path != "" {
				fw := logging.FileWriter(path)
				w, logFile = fw, fw
			}
			log := logging.Logger(w, jsonOut, level)
			slog.SetDefault(log)
			pixel.SetLogger(log)
			if !ok {
				slog.WarnContext(ctx, "Invalid log level, defaulting to INFO", "level", logLevel)
			}

			pixel.SelectKernels(scalar || hwy.CurrentLevel() == hwy.DispatchScalar)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if logFile != nil {
				return logFile.Close()
			}
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			printCommandTree(cmd.OutOrStdout(), cmd, 0)
		},
	}
	cmd.AddCommand(
		NewVersionCmd(ctx, gitsha),
		NewInfoCmd(ctx),
		NewGreyCmd(ctx),
		NewDimCmd(ctx),
		NewRestrictCmd(ctx),
		NewCombineCmd(ctx),
		NewQuartersCmd(ctx),
		NewEdgesCmd(ctx),
		NewFilterCmd(ctx),
		NewDemoCmd(ctx),
		NewBenchCmd(ctx),
	)
	pf := cmd.PersistentFlags()
	pf.String("log-level", "INFO", "Log level (DEBUG, INFO, WARN, ERROR)")
	pf.Bool("log-json", false, "emit JSON log records")
	pf.String("log-file", "", "write logs to a rotated file instead of stderr")
	pf.Bool("scalar", false, "use the scalar reference kernels (same as "+hwy.NoSimdEnvVar+"=1)")
	return cmd
}

func printCommandTree(w io.Writer, cmd *cobra.Command, indent int) {
	fmt.Fprintln(w, strings.Repeat("\t", indent), cmd.Use+":", cmd.Short)
	for _, subCmd := range cmd.Commands() {
		printCommandTree(w, subCmd, indent+1)
	}
}

func NewVersionCmd(ctx context.Context, gitsha string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "git sha for this build",
		Long:  "git sha for this build",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), gitsha)
		},
	}
	return cmd
}
