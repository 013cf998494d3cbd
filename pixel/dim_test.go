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
	"errors"
	"testing"
)

func TestDimScenario(t *testing.T) {
	in := []byte{10, 11, 255}
	want := []byte{5, 5, 127}
	for _, k := range DimKernels {
		t.Run(k.Name, func(t *testing.T) {
			out := make([]byte, len(in))
			k.Fn(in, out, 2)
			for i := range want {
				if out[i] != want[i] {
					t.Errorf("byte %d: got %d, want %d", i, out[i], want[i])
				}
			}
		})
	}
}

func TestDimAllValues(t *testing.T) {
	// 259 bytes: every value plus a 3-byte tail past the last batch.
	in := make([]byte, 259)
	for i := range in {
		in[i] = byte(i)
	}
	want := make([]byte, len(in))
	got := make([]byte, len(in))
	for f := 1; f <= 255; f++ {
		factor := uint8(f)
		for i, v := range in {
			want[i] = v / factor
		}
		for _, k := range DimKernels {
			if !k.Supports(factor) {
				continue
			}
			clear(got)
			k.Fn(in, got, factor)
			for i := range want {
				if got[i] != want[i] {
					t.Fatalf("%s factor %d: byte %d (%d) got %d, want %d",
						k.Name, f, i, in[i], got[i], want[i])
				}
			}
		}
	}
}

func TestDimIdentity(t *testing.T) {
	in := []byte{0, 1, 127, 128, 254, 255, 9, 8, 7}
	out := make([]byte, len(in))
	DimVec(in, out, 1)
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("byte %d: got %d, want %d", i, out[i], in[i])
		}
	}
}

func TestDimZeroFactorPanics(t *testing.T) {
	for _, fn := range []struct {
		name string
		fn   DimFunc
	}{{"Dim", Dim}, {"DimVec", DimVec}} {
		t.Run(fn.name, func(t *testing.T) {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok || !errors.Is(err, ErrZeroFactor) {
					t.Errorf("recovered %v, want ErrZeroFactor", r)
				}
			}()
			fn.fn([]byte{1, 2, 3}, make([]byte, 3), 0)
		})
	}
}

func TestDimLeavesExtraOutput(t *testing.T) {
	in := []byte{8, 8, 8, 8, 8, 8, 8, 8, 8}
	out := make([]byte, 12)
	for i := range out {
		out[i] = 0xaa
	}
	DimHalf(in, out)
	for i := range in {
		if out[i] != 4 {
			t.Errorf("byte %d: got %d, want 4", i, out[i])
		}
	}
	for i := len(in); i < len(out); i++ {
		if out[i] != 0xaa {
			t.Errorf("byte %d was overwritten: %d", i, out[i])
		}
	}
}

func TestDimShortOutputPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	Dim(make([]byte, 4), make([]byte, 3), 2)
}

func TestBufferDimmed(t *testing.T) {
	buf, err := FromBytes([]byte{10, 20, 30, 40}, 1, 1, 4)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := buf.Dimmed(0); !errors.Is(err, ErrZeroFactor) {
		t.Errorf("Dimmed(0) error = %v, want ErrZeroFactor", err)
	}
	out, err := buf.Dimmed(10)
	if err != nil {
		t.Fatal(err)
	}
	if want := []byte{1, 2, 3, 4}; string(out.Pix) != string(want) {
		t.Errorf("got %v, want %v", out.Pix, want)
	}
}
