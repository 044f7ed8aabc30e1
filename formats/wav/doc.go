// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes RIFF/WAVE files on top of
// github.com/go-audio/wav.
//
// The Decoder accepts integer PCM at 8, 16, 24 and 32 bits per sample with
// any channel count and sample rate, and yields samples normalized to
// [-1.0, 1.0]. Inputs that are not an io.ReadSeeker are buffered in memory
// first.
//
//	src, err := wav.Decoder{}.Decode(file)
//
// Encode always writes 16-bit PCM with the canonical 44-byte header (RIFF,
// fmt and data chunks in that order) followed by interleaved little-endian
// samples:
//
//	err := wav.Encode(w, buf)
//
// Encoding failures wrap audio.ErrEncode; decoding failures return the
// package sentinels (ErrNotWavFile, ErrUnsupportedWavLayout,
// ErrUnsupportedBitDepth) and are wrapped in audio.ErrDecode by audio.Decode.
package wav
