// SPDX-License-Identifier: EPL-2.0

package audcut

import (
	"time"

	"github.com/ik5/audcut/formats/mp3"
	"github.com/ik5/audcut/playback"
	"github.com/ik5/audcut/render"
	"github.com/ik5/audcut/waveform"
	"github.com/pion/logging"
)

// Option configures a Session. Options are applied over the defaults read
// from the AUDCUT_* environment variables.
type Option func(*Session)

// WithLoggerFactory sets the factory the session and its controller take
// their loggers from.
func WithLoggerFactory(f logging.LoggerFactory) Option {
	return func(s *Session) { s.loggerFactory = f }
}

// WithTransport sets the playback device. Without one, playback calls fail
// with ErrResource while loading, editing and exporting still work.
func WithTransport(t playback.Transport) Option {
	return func(s *Session) { s.transport = t }
}

// WithMP3Encoder sets the codec used for MP3 exports. Builds with the lame
// tag default to LAME.
func WithMP3Encoder(f mp3.EncoderFactory) Option {
	return func(s *Session) { s.mp3Encoder = f }
}

// WithOutput sets the export settings. An MP3 format set here is kept even
// when no MP3 encoder is available, and exports then fail with
// audio.ErrEncode.
func WithOutput(c OutputConfig) Option {
	return func(s *Session) {
		s.output = c
		s.outputSet = true
	}
}

func WithFade(f render.Fade) Option {
	return func(s *Session) { s.fade = f }
}

// WithPollInterval sets how often the transport position is read while
// playing. Zero leaves position updates to Session.OnTimeUpdate.
func WithPollInterval(d time.Duration) Option {
	return func(s *Session) { s.pollInterval = d }
}

// WithProductTag sets the tag in export names, "<name> (cut-<tag>).<ext>".
func WithProductTag(tag string) Option {
	return func(s *Session) { s.productTag = tag }
}

// WithWaveformCache sets how many amplitude profiles are kept.
func WithWaveformCache(size int) Option {
	return func(s *Session) { s.cacheSize = size }
}

func WithWaveformStyle(style waveform.Style) Option {
	return func(s *Session) { s.style = style }
}
