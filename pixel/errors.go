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

import "errors"

var (
	// ErrBufferSize is returned when a byte count cannot be reshaped into the
	// declared width, height and channel count.
	ErrBufferSize = errors.New("pixel: buffer size does not match dimensions")

	// ErrChannels is returned for channel counts other than 1, 3 and 4, or
	// when an operation does not support the buffer's channel count.
	ErrChannels = errors.New("pixel: unsupported channel count")

	// ErrInvalidChannel is returned for a channel selector outside R, G, B.
	ErrInvalidChannel = errors.New("pixel: invalid color channel")

	// ErrZeroFactor is returned (or panicked with, by the raw dim kernels)
	// for a dim factor of zero.
	ErrZeroFactor = errors.New("pixel: dim factor must be positive")

	// ErrSizeMismatch is returned when two images must share dimensions.
	ErrSizeMismatch = errors.New("pixel: images not same size")

	// ErrConvKernel is returned for a malformed convolution kernel.
	ErrConvKernel = errors.New("pixel: invalid convolution kernel")

	// ErrUnknownKernel is returned by kernel lookups for unregistered names.
	ErrUnknownKernel = errors.New("pixel: unknown kernel")
)
