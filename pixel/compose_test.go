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
	"bytes"
	"errors"
	"testing"

	"github.com/ajroetker/go-pixel/internal/testimage"
)

func TestCombineIdentical(t *testing.T) {
	pix := testimage.Random(9, 4, 4, 11)
	a, _ := FromBytes(pix, 9, 4, 4)
	b := a.Clone()
	out, err := Combine(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out.Pix, a.Pix) {
		t.Error("combining identical images changed pixels")
	}
}

func TestCombineHalves(t *testing.T) {
	a := NewBuffer(5, 2, 3) // all black
	b := NewBuffer(5, 2, 3)
	for i := range b.Pix {
		b.Pix[i] = 200
	}
	out, err := Combine(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if out.Channels != 4 {
		t.Fatalf("Combine produced %d channels, want 4", out.Channels)
	}
	for y := range 2 {
		for x := range 5 {
			r, _, _, alpha := out.RGBA(x, y)
			want := uint8(0)
			if x >= 2 {
				want = 200
			}
			if r != want || alpha != 255 {
				t.Errorf("(%d,%d): r=%d a=%d, want r=%d a=255", x, y, r, alpha, want)
			}
		}
	}
}

func TestCombineSizeMismatch(t *testing.T) {
	_, err := Combine(NewBuffer(2, 2, 3), NewBuffer(3, 2, 3))
	if !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("error = %v, want ErrSizeMismatch", err)
	}
}

func TestQuarters(t *testing.T) {
	// 2x2 RGBA: each pixel lands in its own quadrant.
	src, _ := FromBytes([]byte{
		10, 20, 30, 200, 30, 60, 90, 100,
		1, 2, 3, 40, 200, 50, 7, 8,
	}, 2, 2, 4)
	out := Quarters(src)
	want := []byte{
		10, 20, 30, 50, 60, 60, 60, 100,
		3, 2, 1, 40, 255, 25, 7, 8,
	}
	if !bytes.Equal(out.Pix, want) {
		t.Errorf("got  %v\nwant %v", out.Pix, want)
	}
}

func TestQuartersRGBInput(t *testing.T) {
	src, _ := FromBytes([]byte{100, 0, 0}, 1, 1, 3)
	out := Quarters(src)
	// A 1x1 image is entirely bottom-right.
	if want := []byte{200, 0, 0, 255}; !bytes.Equal(out.Pix, want) {
		t.Errorf("got %v, want %v", out.Pix, want)
	}
}

func TestQuartersOddSize(t *testing.T) {
	// 3x1: the top half is empty, column 0 is bottom-left and the
	// centre column belongs to the right half.
	src, _ := FromBytes([]byte{10, 20, 30, 100, 40, 5, 200, 9, 9}, 3, 1, 3)
	out := Quarters(src)
	want := []byte{
		30, 20, 10, 255,
		200, 20, 5, 255,
		255, 4, 9, 255,
	}
	if !bytes.Equal(out.Pix, want) {
		t.Errorf("got  %v\nwant %v", out.Pix, want)
	}
}
