// SPDX-License-Identifier: EPL-2.0

// Package flac decodes FLAC streams with github.com/mewkiz/flac.
//
// Frames are parsed lazily as samples are read, interleaved across the
// subframes and normalized to [-1.0, 1.0] by the STREAMINFO bit depth.
// Closing the source closes the underlying reader when it is an io.Closer.
package flac
