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

package hwy

// ProcessWithTail is a helper for processing arrays in batches of lanes
// elements that handles both full batches and the tail (remainder).
//
// It calls:
//   - fullFn(offset) for each full batch (offset is the starting index)
//   - tailFn(offset, count) once for the tail if size is not a multiple of lanes
//
// Example:
//
//	hwy.ProcessWithTail(len(data), 8,
//	    func(offset int) {
//	        v := hwy.Load(data[offset:], 8)
//	        hwy.Store(hwy.ShiftRight(v, 1), out[offset:])
//	    },
//	    func(offset, count int) {
//	        for i := offset; i < offset+count; i++ {
//	            out[i] = data[i] >> 1
//	        }
//	    },
//	)
func ProcessWithTail(size, lanes int, fullFn func(offset int), tailFn func(offset, count int)) {
	if size <= 0 || lanes <= 0 {
		return
	}

	full := size / lanes
	for i := range full {
		fullFn(i * lanes)
	}

	if remaining := size % lanes; remaining > 0 {
		tailFn(full*lanes, remaining)
	}
}

// FullBatches returns how many complete batches of lanes elements fit in size.
func FullBatches(size, lanes int) int {
	if lanes <= 0 || size <= 0 {
		return 0
	}
	return size / lanes
}
