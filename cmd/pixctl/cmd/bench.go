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
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-pixel/hwy"
	"github.com/ajroetker/go-pixel/internal/logging"
	"github.com/ajroetker/go-pixel/internal/testimage"
	"github.com/ajroetker/go-pixel/pixel"
)

// BenchConfig selects the square image sizes 2^MinExp .. 2^MaxExp.
type BenchConfig struct {
	MinExp int    `json:"min_exp"`
	MaxExp int    `json:"max_exp"`
	Factor uint8  `json:"factor"`
	Seed   uint64 `json:"seed"`
}

// BenchResult is one kernel timed at one size.
type BenchResult struct {
	Op       string  `json:"op"`
	Kernel   string  `json:"kernel"`
	Size     int     `json:"size"`
	NsPerOp  float64 `json:"ns_per_op"`
	MBPerSec float64 `json:"mb_per_sec"`
	MaxDiff  int     `json:"max_diff"`
}

// BenchReport is the outcome of RunBench.
type BenchReport struct {
	RunID    string        `json:"run_id"`
	ConfigID string        `json:"config_id"`
	Dispatch string        `json:"dispatch"`
	Started  time.Time     `json:"started"`
	Config   BenchConfig   `json:"config"`
	Results  []BenchResult `json:"results"`
}

// measure returns the nanoseconds per call of fn.
var measure = func(fn func()) float64 {
	r := testing.Benchmark(func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			fn()
		}
	})
	if r.N == 0 {
		return 0
	}
	return float64(r.T.Nanoseconds()) / float64(r.N)
}

// configID is stable for identical configurations so runs can be compared.
func configID(cfg BenchConfig) string {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return ""
	}
	return uuid.NewMD5(uuid.NameSpaceOID, raw).String()
}

// RunBench times every greyscale and dim kernel on random images and checks
// each output against the scalar reference.
func RunBench(ctx context.Context, cfg BenchConfig) (*BenchReport, error) {
	if cfg.MinExp < 0 || cfg.MaxExp < cfg.MinExp || cfg.MaxExp > 14 {
		return nil, fmt.Errorf("bench: invalid size range 2^%d..2^%d", cfg.MinExp, cfg.MaxExp)
	}
	if cfg.Factor == 0 {
		return nil, pixel.ErrZeroFactor
	}
	rep := &BenchReport{
		RunID:    uuid.NewString(),
		ConfigID: configID(cfg),
		Dispatch: hwy.CurrentName(),
		Started:  time.Now().UTC(),
		Config:   cfg,
	}
	ctx = logging.AppendCtx(ctx, slog.String("run_id", rep.RunID))

	for e := cfg.MinExp; e <= cfg.MaxExp; e++ {
		size := 1 << e
		in := testimage.Random(size, size, 3, cfg.Seed+uint64(e))
		want := make([]byte, size*size)
		got := make([]byte, size*size)
		pixel.GreyscaleScalar(in, want)

		for _, k := range pixel.GreyscaleKernels {
			if err := ctx.Err(); err != nil {
				return rep, err
			}
			ns := measure(func() { k.Fn(in, got) })
			rep.Results = append(rep.Results, result("greyscale", k.Name, size, len(in), ns, maxDiff(want, got)))
			slog.DebugContext(ctx, "bench", "op", "greyscale", "kernel", k.Name, "size", size, "ns_per_op", ns)
		}

		dimWant := make([]byte, len(in))
		dimGot := make([]byte, len(in))
		for _, k := range pixel.DimKernels {
			factor := cfg.Factor
			if !k.Supports(factor) {
				factor = k.FixedFactor
			}
			if err := ctx.Err(); err != nil {
				return rep, err
			}
			pixel.Dim(in, dimWant, factor)
			ns := measure(func() { k.Fn(in, dimGot, factor) })
			rep.Results = append(rep.Results, result("dim/"+fmt.Sprint(factor), k.Name, size, len(in), ns, maxDiff(dimWant, dimGot)))
			slog.DebugContext(ctx, "bench", "op", "dim", "kernel", k.Name, "size", size, "ns_per_op", ns)
		}
	}
	slog.InfoContext(ctx, "bench complete", "results", len(rep.Results))
	return rep, nil
}

func result(op, kernel string, size, bytes int, ns float64, diff int) BenchResult {
	r := BenchResult{Op: op, Kernel: kernel, Size: size, NsPerOp: ns, MaxDiff: diff}
	if ns > 0 {
		r.MBPerSec = float64(bytes) / ns * 1e3
	}
	return r
}

func maxDiff(want, got []byte) int {
	d := 0
	for i := range want {
		d = max(d, abs(int(want[i])-int(got[i])))
	}
	return d
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// WriteText prints the report as an aligned table.
func (r *BenchReport) WriteText(w io.Writer) error {
	fmt.Fprintf(w, "run %s (config %s) on %s\n\n", r.RunID, r.ConfigID, r.Dispatch)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "OP\tKERNEL\tSIZE\tNS/OP\tMB/S\tMAX DIFF\t")
	for _, res := range r.Results {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.0f\t%.1f\t%d\t\n",
			res.Op, res.Kernel, res.Size, res.NsPerOp, res.MBPerSec, res.MaxDiff)
	}
	return tw.Flush()
}

// NewBenchCmd times every kernel across a range of image sizes.
func NewBenchCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "time every greyscale and dim kernel on random square images",
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg BenchConfig
			cfg.MinExp, _ = cmd.Flags().GetInt("min")
			cfg.MaxExp, _ = cmd.Flags().GetInt("max")
			cfg.Factor, _ = cmd.Flags().GetUint8("factor")
			cfg.Seed, _ = cmd.Flags().GetUint64("seed")
			format, _ := cmd.Flags().GetString("format")

			rep, err := RunBench(ctx, cfg)
			if err != nil {
				return err
			}
			switch format {
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rep)
			default:
				return rep.WriteText(cmd.OutOrStdout())
			}
		},
	}
	pf := cmd.Flags()
	pf.Int("min", 6, "smallest size exponent (side 2^min)")
	pf.Int("max", 10, "largest size exponent (side 2^max)")
	pf.Uint8("factor", 2, "dim factor")
	pf.Uint64("seed", 1, "random image seed")
	pf.StringP("format", "f", "text", "output format (text|json)")
	return cmd
}
