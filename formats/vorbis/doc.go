// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams with
// github.com/jfreymuth/oggvorbis.
//
//	src, err := vorbis.Decoder{}.Decode(file)
//
// Any channel count and sample rate the stream declares is passed through.
// Samples are already float32 in [-1.0, 1.0], so no conversion is done.
package vorbis
