// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

var (
	// ErrNoEncoder is returned when Encode is called without an encoder factory.
	ErrNoEncoder = errors.New("no MP3 encoder available")

	// ErrTooManyChannels is returned for buffers with more than two channels.
	ErrTooManyChannels = errors.New("MP3 supports at most two channels")

	// ErrEmptyBuffer is returned when there is nothing to encode.
	ErrEmptyBuffer = errors.New("nothing to encode")
)
