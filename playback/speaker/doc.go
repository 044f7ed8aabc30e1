// SPDX-License-Identifier: EPL-2.0

// Package speaker is a playback.Transport for the local output device, built
// on github.com/gopxl/beep/v2/speaker.
//
// The device is opened once by New at a fixed rate. Clips at another rate
// are resampled on the fly with beep.Resample. Pausing keeps the clip queued
// in the speaker mixer with beep.Ctrl, so resuming is immediate.
package speaker
