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
	"testing"
)

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		want  string
	}{
		{DispatchScalar, "scalar"},
		{DispatchSSE2, "sse2"},
		{DispatchAVX2, "avx2"},
		{DispatchAVX512, "avx512"},
		{DispatchNEON, "neon"},
		{DispatchLevel(99), "unknown"},
	}
	for _, tc := range tests {
		if got := tc.level.String(); got != tc.want {
			t.Errorf("DispatchLevel(%d).String() = %q, want %q", tc.level, got, tc.want)
		}
	}
}

func TestCurrentWidth(t *testing.T) {
	if w := CurrentWidth(); w < 16 {
		t.Errorf("CurrentWidth() = %d, want at least 16", w)
	}
	if CurrentName() != CurrentLevel().String() {
		t.Errorf("CurrentName() = %q, CurrentLevel() = %q", CurrentName(), CurrentLevel())
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"false", false},
		{"0", false},
		{"yes", true},
	}
	for _, tc := range tests {
		t.Setenv(NoSimdEnvVar, tc.val)
		if got := NoSimdEnv(); got != tc.want {
			t.Errorf("NoSimdEnv() with %q = %v, want %v", tc.val, got, tc.want)
		}
	}
}

func TestDispatchLevelWidth(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		want  int
	}{
		{DispatchScalar, 16},
		{DispatchAVX2, 32},
		{DispatchAVX512, 64},
		{DispatchNEON, 16},
		{DispatchLevel(-1), 0},
	}
	for _, tc := range tests {
		if got := tc.level.Width(); got != tc.want {
			t.Errorf("%v.Width() = %d, want %d", tc.level, got, tc.want)
		}
	}
}

func TestSetLevelHonorsNoSimd(t *testing.T) {
	saved := currentLevel
	defer func() { currentLevel = saved }()

	t.Setenv(NoSimdEnvVar, "1")
	setLevel(DispatchAVX2)
	if CurrentLevel() != DispatchScalar {
		t.Errorf("with %s=1: got %v, want scalar", NoSimdEnvVar, CurrentLevel())
	}

	t.Setenv(NoSimdEnvVar, "")
	setLevel(DispatchAVX2)
	if CurrentLevel() != DispatchAVX2 || CurrentWidth() != 32 {
		t.Errorf("got %v/%d, want avx2/32", CurrentLevel(), CurrentWidth())
	}
}
