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
	"github.com/ajroetker/go-pixel/hwy/contrib/workerpool"
)

// ParallelBlock is the number of pixels (or bytes, for dim) each worker
// range is a multiple of. It is divisible by every kernel's batch width, so
// a split run executes exactly the batches a serial run would.
const ParallelBlock = 4096

// ParallelGreyscale runs kernel over disjoint ranges of in and out on pool.
// A nil kernel means Greyscale; a nil pool runs serially. The output is
// identical to kernel(in, out).
func ParallelGreyscale(pool *workerpool.Pool, in, out []byte, kernel GreyscaleFunc) {
	checkLayout("ParallelGreyscale", in, out, 3, 1)
	if kernel == nil {
		kernel = Greyscale
	}
	n := len(out)
	if pool == nil || n <= ParallelBlock {
		kernel(in, out)
		return
	}
	blocks := (n + ParallelBlock - 1) / ParallelBlock
	Logger().Debug("pixel: parallel greyscale", "pixels", n, "blocks", blocks, "workers", pool.NumWorkers())
	pool.ParallelFor(blocks, func(start, end int) {
		p0, p1 := start*ParallelBlock, min(end*ParallelBlock, n)
		kernel(in[3*p0:3*p1], out[p0:p1])
	})
}

// ParallelDim runs kernel with factor over disjoint ranges of in and out on
// pool. A nil kernel means DimBy; a nil pool runs serially.
func ParallelDim(pool *workerpool.Pool, in, out []byte, factor uint8, kernel DimFunc) {
	checkDim("ParallelDim", in, out, factor)
	if kernel == nil {
		kernel = DimBy
	}
	n := len(in)
	if pool == nil || n <= ParallelBlock {
		kernel(in, out, factor)
		return
	}
	blocks := (n + ParallelBlock - 1) / ParallelBlock
	Logger().Debug("pixel: parallel dim", "bytes", n, "blocks", blocks, "workers", pool.NumWorkers())
	pool.ParallelFor(blocks, func(start, end int) {
		b0, b1 := start*ParallelBlock, min(end*ParallelBlock, n)
		kernel(in[b0:b1], out[b0:b1], factor)
	})
}
