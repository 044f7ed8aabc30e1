// SPDX-License-Identifier: EPL-2.0

// Package lame adapts libmp3lame (through github.com/viert/lame) to the
// mp3.FrameEncoder interface.
//
// The encoder is compiled only with the lame build tag, since it needs cgo
// and the LAME development headers:
//
//	go build -tags lame ./...
//
// With the tag set, the root package registers New as its default MP3
// encoder factory.
package lame
