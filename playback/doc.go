// SPDX-License-Identifier: EPL-2.0

// Package playback plays the selected part of a clip in a loop-to-start
// fashion.
//
// A Controller drives a Transport, the device that actually produces sound.
// Starting playback outside the selection jumps to its start, and reaching
// its end pauses and rewinds:
//
//	c := playback.NewController(tr, sel, playback.DefaultPollInterval, log)
//	if err := c.Load(buf); err != nil {
//	    return err
//	}
//	err := c.Toggle()
//
// With a non-zero poll interval the controller reads the transport position
// itself. Otherwise the caller reports positions with OnTimeUpdate. While a
// drag is active in the selection machine, position updates are dropped.
//
// BufferStreamer adapts a SampleBuffer to beep so that a Transport can be
// built on github.com/gopxl/beep/v2; see the speaker subpackage.
package playback
