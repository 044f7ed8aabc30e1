// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III streams with
// github.com/hajimehoshi/go-mp3 and drives MP3 encoding through a pluggable
// FrameEncoder.
//
// # Decoding
//
// The decoder always yields interleaved stereo, even for mono files, since
// that is what go-mp3 produces:
//
//	src, err := mp3.Decoder{}.Decode(file)
//
// # Encoding
//
// Encode converts a buffer to 16-bit and hands the codec FrameSize samples
// per channel at a time, then flushes it. An optional ID3v2 tag is written
// ahead of the audio:
//
//	err := mp3.Encode(w, buf, mp3.Options{
//	    BitrateKbps: 128,
//	    Factory:     lame.New,
//	    Tags:        &mp3.Tags{Title: "Intro"},
//	})
//
// The LAME-backed factory lives in the lame subpackage behind the lame build
// tag. Without a factory Encode fails with ErrNoEncoder wrapped in
// audio.ErrEncode.
package mp3
