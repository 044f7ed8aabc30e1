// SPDX-License-Identifier: EPL-2.0

package playback

import "github.com/ik5/audcut/audio"

// Transport is an output device that plays one loaded clip. Positions are
// seconds from the start of the clip.
type Transport interface {
	Load(buf *audio.SampleBuffer) error
	Play() error
	Pause()
	Seek(seconds float64) error
	Position() float64
	// Release drops the loaded clip and whatever the device holds for it.
	// The transport can be loaded again afterwards.
	Release() error
}
