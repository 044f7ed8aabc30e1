// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

var (
	// ErrNotFlacFile indicates the stream lacks a valid signature or STREAMINFO block
	ErrNotFlacFile = errors.New("not a FLAC file")

	// ErrUnsupportedFlacLayout indicates zero channels, a zero rate or a frame
	// whose subframes disagree with STREAMINFO
	ErrUnsupportedFlacLayout = errors.New("unsupported FLAC layout")
)
