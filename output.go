// SPDX-License-Identifier: EPL-2.0

package audcut

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// Format is the container of an exported file.
type Format string

const (
	FormatWAV Format = "wav"
	FormatMP3 Format = "mp3"
)

// MIME is the media type of files in format f.
func (f Format) MIME() string {
	if f == FormatWAV {
		return "audio/wav"
	}
	return "audio/mpeg"
}

var (
	// Bitrates lists the accepted MP3 bitrates in kbps.
	Bitrates = []int{64, 128, 320}

	// SampleRates lists the accepted export sample rates in Hz.
	SampleRates = []int{22050, 44100, 48000}
)

// OutputConfig controls how an export is encoded. BitrateKbps only applies
// to MP3 but also drives the size estimate.
type OutputConfig struct {
	BitrateKbps  int
	SampleRateHz int
	Format       Format
	Mono         bool
}

// DefaultOutput is 128 kbps MP3 at 44.1 kHz, keeping the source channels.
func DefaultOutput() OutputConfig {
	return OutputConfig{
		BitrateKbps:  128,
		SampleRateHz: 44100,
		Format:       FormatMP3,
	}
}

func (c OutputConfig) Validate() error {
	if !slices.Contains(Bitrates, c.BitrateKbps) {
		return fmt.Errorf("%w: bitrate %d kbps", ErrInvalidOutput, c.BitrateKbps)
	}
	if !slices.Contains(SampleRates, c.SampleRateHz) {
		return fmt.Errorf("%w: sample rate %d Hz", ErrInvalidOutput, c.SampleRateHz)
	}
	if c.Format != FormatWAV && c.Format != FormatMP3 {
		return fmt.Errorf("%w: format %q", ErrInvalidOutput, c.Format)
	}
	return nil
}

// Output is a rendered file. It is not retained by the session.
type Output struct {
	Name string
	MIME string
	Data []byte
}

// OutputName derives the name of an export from the source file name:
// "<basename> (cut-<tag>).<ext>".
func OutputName(source, tag string, f Format) string {
	base := filepath.Base(source)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." || base == string(filepath.Separator) {
		base = "audio"
	}

	return fmt.Sprintf("%s (cut-%s).%s", base, tag, f)
}
