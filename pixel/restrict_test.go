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

func TestRestrictRGB(t *testing.T) {
	in := []byte{1, 2, 3, 4, 5, 6}
	tests := []struct {
		ch   Channel
		want []byte
	}{
		{Red, []byte{0, 2, 3, 0, 5, 6}},
		{Green, []byte{1, 0, 3, 4, 0, 6}},
		{Blue, []byte{1, 2, 0, 4, 5, 0}},
	}
	for _, tc := range tests {
		t.Run(tc.ch.String(), func(t *testing.T) {
			out := make([]byte, len(in))
			RestrictRGB(in, out, 3, tc.ch)
			if !bytes.Equal(out, tc.want) {
				t.Errorf("got %v, want %v", out, tc.want)
			}
		})
	}
}

func TestRestrictRGBKeepsAlpha(t *testing.T) {
	in := []byte{1, 2, 3, 200, 4, 5, 6, 100}
	out := make([]byte, len(in))
	RestrictRGB(in, out, 4, Green)
	if want := []byte{1, 0, 3, 200, 4, 0, 6, 100}; !bytes.Equal(out, want) {
		t.Errorf("got %v, want %v", out, want)
	}
}

func TestRestrictRGBIdempotent(t *testing.T) {
	b, _ := FromBytes(testimage.Random(13, 7, 3, 5), 13, 7, 3)
	for _, ch := range []Channel{Red, Green, Blue} {
		once, err := b.RestrictRGB(ch)
		if err != nil {
			t.Fatal(err)
		}
		twice, err := once.RestrictRGB(ch)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(once.Pix, twice.Pix) {
			t.Errorf("restricting %v twice differs from once", ch)
		}
	}
}

func TestBufferRestrictRGBErrors(t *testing.T) {
	rgb, _ := FromBytes([]byte{1, 2, 3}, 1, 1, 3)
	if _, err := rgb.RestrictRGB(Channel(3)); !errors.Is(err, ErrInvalidChannel) {
		t.Errorf("invalid channel error = %v", err)
	}
	grey, _ := FromBytes([]byte{1}, 1, 1, 1)
	if _, err := grey.RestrictRGB(Red); !errors.Is(err, ErrChannels) {
		t.Errorf("grey buffer error = %v", err)
	}
}
