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
	"fmt"
	"unicode"
)

// Channel selects one colour channel of an RGB(A) pixel by byte index.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

// ParseChannel maps 'R', 'G' or 'B' (either case) to a Channel.
func ParseChannel(r rune) (Channel, error) {
	switch unicode.ToUpper(r) {
	case 'R':
		return Red, nil
	case 'G':
		return Green, nil
	case 'B':
		return Blue, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidChannel, r)
}

// Valid reports whether c is one of Red, Green or Blue.
func (c Channel) Valid() bool {
	return c >= Red && c <= Blue
}

func (c Channel) String() string {
	switch c {
	case Red:
		return "R"
	case Green:
		return "G"
	case Blue:
		return "B"
	default:
		return fmt.Sprintf("Channel(%d)", int(c))
	}
}
