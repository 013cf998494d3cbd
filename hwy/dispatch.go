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

import (
	"os"
	"strconv"
)

// DispatchLevel is the widest SIMD instruction set the CPU reports.
//
// Lane operations here are portable Go regardless of level. Callers use the
// level to pick between lane-batch kernels and the scalar references.
type DispatchLevel int

const (
	DispatchScalar DispatchLevel = iota // no SIMD; scalar references
	DispatchSSE2                        // x86-64 baseline, 128-bit
	DispatchAVX2                        // 256-bit
	DispatchAVX512                      // 512-bit, F and BW
	DispatchNEON                        // arm64 ASIMD, 128-bit
)

// levelInfo is indexed by DispatchLevel. Width is the register size in bytes;
// the scalar level keeps 16 so batch sizing stays the same with PIX_NO_SIMD.
var levelInfo = [...]struct {
	name  string
	width int
}{
	DispatchScalar: {"scalar", 16},
	DispatchSSE2:   {"sse2", 16},
	DispatchAVX2:   {"avx2", 32},
	DispatchAVX512: {"avx512", 64},
	DispatchNEON:   {"neon", 16},
}

func (d DispatchLevel) String() string {
	if d < 0 || int(d) >= len(levelInfo) {
		return "unknown"
	}
	return levelInfo[d].name
}

// Width returns the register width in bytes, or 0 for an unknown level.
func (d DispatchLevel) Width() int {
	if d < 0 || int(d) >= len(levelInfo) {
		return 0
	}
	return levelInfo[d].width
}

// NoSimdEnvVar forces DispatchScalar when set to a true value.
const NoSimdEnvVar = "PIX_NO_SIMD"

// currentLevel is assigned once by the per-architecture init.
var currentLevel DispatchLevel

// CurrentLevel returns the level detected at startup.
func CurrentLevel() DispatchLevel { return currentLevel }

// CurrentWidth returns the register width of CurrentLevel in bytes.
func CurrentWidth() int { return currentLevel.Width() }

// CurrentName returns CurrentLevel as a string, e.g. "avx2" or "scalar".
func CurrentName() string { return currentLevel.String() }

// NoSimdEnv reports whether PIX_NO_SIMD requests scalar dispatch. Values that
// strconv.ParseBool rejects, such as "yes", count as set.
func NoSimdEnv() bool {
	val := os.Getenv(NoSimdEnvVar)
	if val == "" {
		return false
	}
	b, err := strconv.ParseBool(val)
	return err != nil || b
}

// setLevel records the detected level, unless PIX_NO_SIMD overrides it.
func setLevel(detected DispatchLevel) {
	if NoSimdEnv() {
		detected = DispatchScalar
	}
	currentLevel = detected
}
