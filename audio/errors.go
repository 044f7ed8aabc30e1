// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrDecode is returned when input bytes cannot be turned into samples.
	ErrDecode = errors.New("audio decode failed")

	// ErrInvalidRange is returned when a selection maps to an empty or
	// out-of-bounds sample range.
	ErrInvalidRange = errors.New("invalid sample range")

	// ErrEncode is returned when samples cannot be written to a container.
	ErrEncode = errors.New("audio encode failed")

	// ErrResource is returned when a processing context or output device is
	// not available.
	ErrResource = errors.New("audio resource unavailable")

	// ErrUnknownFormat is returned when no registered decoder accepts the input.
	ErrUnknownFormat = fmt.Errorf("%w: unrecognized container", ErrDecode)

	// ErrEmptyBuffer is returned when a buffer holds no frames.
	ErrEmptyBuffer = errors.New("sample buffer is empty")

	// ErrInvalidLayout is returned for a non-positive channel count or
	// sample rate.
	ErrInvalidLayout = errors.New("invalid channel count or sample rate")
)
