// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files with github.com/go-audio/aiff.
//
// Uncompressed PCM at 8, 16, 24 and 32 bits is supported, with any channel
// count and sample rate. Samples are normalized to [-1.0, 1.0] by
// 2^(bits-1)-1, the same scale the WAV decoder uses, so a clip decoded from
// either container renders the same waveform.
//
//	src, err := aiff.Decoder{}.Decode(f)
//	if errors.Is(err, aiff.ErrNotAiffFile) {
//	    // try another decoder
//	}
//
// go-audio needs an io.ReadSeeker. Other readers are buffered in memory
// first, which is fine for the clip sizes an editor holds anyway.
//
// AIFF-C with a compression type other than "NONE" is not decoded.
package aiff
