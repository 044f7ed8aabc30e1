// SPDX-License-Identifier: EPL-2.0

package audcut

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/dhowden/tag"
	"github.com/google/uuid"
	"github.com/ik5/audcut/audio"
	"github.com/ik5/audcut/estimate"
	"github.com/ik5/audcut/formats/aac"
	"github.com/ik5/audcut/formats/aiff"
	"github.com/ik5/audcut/formats/flac"
	"github.com/ik5/audcut/formats/mp3"
	"github.com/ik5/audcut/formats/vorbis"
	"github.com/ik5/audcut/formats/wav"
	"github.com/ik5/audcut/internal/config"
	"github.com/ik5/audcut/playback"
	"github.com/ik5/audcut/render"
	"github.com/ik5/audcut/selection"
	"github.com/ik5/audcut/waveform"
	"github.com/pion/logging"
)

// defaultMP3Encoder is set by builds that link an MP3 codec.
var defaultMP3Encoder mp3.EncoderFactory

// Session is one editor: a loaded clip, its selection, the playback
// controller and the export settings. All methods are safe for concurrent
// use. The decoded clip is shared read-only between the waveform, playback
// and running exports.
type Session struct {
	mtx sync.Mutex

	id            uuid.UUID
	loggerFactory logging.LoggerFactory
	log           logging.LeveledLogger

	registry  *audio.Registry
	sel       *selection.Machine
	player    *playback.Controller
	transport playback.Transport
	waveforms *waveform.Cache

	style        waveform.Style
	mp3Encoder   mp3.EncoderFactory
	output       OutputConfig
	outputSet    bool
	fade         render.Fade
	productTag   string
	pollInterval time.Duration
	cacheSize    int

	buf    *audio.SampleBuffer
	name   string
	tags   mp3.Tags
	closed bool
}

// New builds a session. Defaults come from the environment (see
// internal/config) and are overridden by opts.
func New(opts ...Option) (*Session, error) {
	cfg := config.Load()

	s := &Session{
		id: uuid.New(),
		output: OutputConfig{
			BitrateKbps:  cfg.BitrateKbps,
			SampleRateHz: cfg.SampleRateHz,
			Format:       Format(strings.ToLower(cfg.Format)),
			Mono:         cfg.Mono,
		},
		fade: render.Fade{
			FadeIn:          cfg.FadeIn > 0,
			FadeInDuration:  cfg.FadeIn,
			FadeOut:         cfg.FadeOut > 0,
			FadeOutDuration: cfg.FadeOut,
		},
		productTag:   cfg.ProductTag,
		pollInterval: cfg.PollInterval,
		cacheSize:    cfg.WaveformCache,
		style:        waveform.DefaultStyle(),
		mp3Encoder:   defaultMP3Encoder,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.loggerFactory == nil {
		s.loggerFactory = logging.NewDefaultLoggerFactory()
	}
	s.log = s.loggerFactory.NewLogger("audcut")

	// A build without an MP3 codec exports WAV unless MP3 was asked for
	// with WithOutput.
	if !s.outputSet && s.output.Format == FormatMP3 && s.mp3Encoder == nil {
		s.log.Warnf("[%s] no MP3 encoder available, exporting WAV", s.id)
		s.output.Format = FormatWAV
	}

	if err := s.output.Validate(); err != nil {
		return nil, err
	}
	if err := s.fade.Validate(); err != nil {
		return nil, err
	}

	cache, err := waveform.NewCache(max(s.cacheSize, 1))
	if err != nil {
		return nil, fmt.Errorf("%w: waveform cache: %w", audio.ErrResource, err)
	}

	s.waveforms = cache
	s.registry = newRegistry()
	s.sel = selection.NewMachine(0)
	s.player = playback.NewController(s.transport, s.sel, s.pollInterval, s.loggerFactory.NewLogger("playback"))

	s.log.Infof("[%s] session ready, decoders %v", s.id, s.registry.Formats())

	return s, nil
}

func newRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register(audio.FormatWAV, wav.Decoder{}, ".wav", ".wave", "audio/wav", "audio/wave", "audio/x-wav", "audio/vnd.wave")
	r.Register(audio.FormatAIFF, aiff.Decoder{}, ".aif", ".aiff", ".aifc", "audio/aiff", "audio/x-aiff")
	r.Register(audio.FormatVorbis, vorbis.Decoder{}, ".ogg", ".oga", "audio/ogg", "audio/vorbis")
	r.Register(audio.FormatFLAC, flac.Decoder{}, ".flac", "audio/flac", "audio/x-flac")
	r.Register(audio.FormatMP3, mp3.Decoder{}, ".mp3", "audio/mpeg", "audio/mp3")
	r.Register(audio.FormatAAC, aac.Decoder{}, ".aac", "audio/aac", "audio/x-aac")
	return r
}

// ID identifies the session in log lines.
func (s *Session) ID() string {
	return s.id.String()
}

// Load decodes data and makes it the current clip, replacing any previous
// one. The format is found from the content first, then from name and mime.
// On success the whole clip is selected with the playhead at zero. When the
// data cannot be decoded the previous clip stays loaded.
func (s *Session) Load(ctx context.Context, name, mime string, data []byte) error {
	s.mtx.Lock()
	if s.closed {
		s.mtx.Unlock()
		return ErrClosed
	}
	registry := s.registry
	s.mtx.Unlock()

	format, dec, err := registry.Lookup(name, mime, data[:min(len(data), audio.SniffLen)])
	if err != nil {
		s.log.Warnf("[%s] %q: %v", s.id, name, err)
		return fmt.Errorf("loading %q: %w", name, err)
	}

	buf, err := audio.Decode(ctx, dec, bytes.NewReader(data))
	if err != nil {
		s.log.Warnf("[%s] decoding %q as %s: %v", s.id, name, format, err)
		return fmt.Errorf("loading %q: %w", name, err)
	}

	tags := s.readTags(data)

	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.closed {
		return ErrClosed
	}

	s.releaseLocked()

	if s.transport != nil {
		if err := s.player.Load(buf); err != nil {
			s.log.Errorf("[%s] %v", s.id, err)
			return fmt.Errorf("loading %q: %w", name, err)
		}
	}

	s.buf = buf
	s.name = name
	s.tags = tags
	s.sel.Reset(buf.Duration())

	s.log.Infof("[%s] loaded %q as %s: %d ch, %d Hz, %s",
		s.id, name, format, buf.Channels(), buf.SampleRate, selection.FormatClock(buf.Duration()))

	return nil
}

func (s *Session) readTags(data []byte) mp3.Tags {
	md, err := tag.ReadFrom(bytes.NewReader(data))
	if err != nil {
		if !errors.Is(err, tag.ErrNoTagsFound) {
			s.log.Debugf("[%s] reading tags: %v", s.id, err)
		}
		return mp3.Tags{}
	}

	return mp3.Tags{Title: md.Title(), Artist: md.Artist(), Album: md.Album()}
}

// Remove stops playback and drops the current clip.
func (s *Session) Remove() error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.closed {
		return ErrClosed
	}

	s.releaseLocked()
	s.log.Debugf("[%s] clip removed", s.id)

	return nil
}

// Close removes the clip and releases the decoders. The transport given
// with WithTransport is left open. Close is safe to call more than once.
func (s *Session) Close() error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.closed {
		return nil
	}

	s.releaseLocked()
	s.closed = true
	err := s.registry.Close()
	s.log.Infof("[%s] session closed", s.id)

	return err
}

// releaseLocked stops playback, frees the transport and the waveform
// profiles and resets the selection to an empty clip.
func (s *Session) releaseLocked() {
	if err := s.player.Release(); err != nil {
		s.log.Warnf("[%s] %v", s.id, err)
	}

	s.buf = nil
	s.name = ""
	s.tags = mp3.Tags{}
	s.waveforms.Purge()
	s.sel.Reset(0)
}

// Loaded reports whether a clip is loaded.
func (s *Session) Loaded() bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return s.buf != nil
}

// Duration of the loaded clip in seconds, zero when nothing is loaded.
func (s *Session) Duration() float64 {
	return s.sel.State().Duration
}

func (s *Session) Selection() selection.State {
	return s.sel.State()
}

// PointerDown starts a drag or seeks, for a pointer at x in a waveform view
// width pixels wide.
func (s *Session) PointerDown(x, width float64) selection.State {
	return s.dispatch(selection.PointerDown, x, width)
}

func (s *Session) PointerMove(x, width float64) selection.State {
	return s.dispatch(selection.PointerMove, x, width)
}

func (s *Session) PointerUp(x, width float64) selection.State {
	return s.dispatch(selection.PointerUp, x, width)
}

func (s *Session) PointerLeave(x, width float64) selection.State {
	return s.dispatch(selection.PointerLeave, x, width)
}

func (s *Session) dispatch(kind selection.EventKind, x, width float64) selection.State {
	st, eff := s.sel.Dispatch(selection.Event{Kind: kind, X: x, Width: width})
	s.follow(eff)
	return st
}

// follow moves the transport to a seek requested by the selection.
func (s *Session) follow(eff selection.Effect) {
	if !eff.Seek || s.transport == nil {
		return
	}
	if err := s.player.Seek(eff.To); err != nil {
		s.log.Warnf("[%s] %v", s.id, err)
	}
}

func (s *Session) SetStart(seconds float64) selection.State {
	return s.sel.SetStart(seconds)
}

func (s *Session) SetEnd(seconds float64) selection.State {
	return s.sel.SetEnd(seconds)
}

// Seek moves the playhead anywhere in the clip while stopped. While playing
// it is kept inside the selection.
func (s *Session) Seek(seconds float64) selection.State {
	if s.Playing() {
		sel := s.sel.State()
		seconds = math.Max(sel.Start, math.Min(seconds, sel.End))
	}

	st, eff := s.sel.Seek(seconds)
	s.follow(eff)
	return st
}

// TogglePlayPause plays the selection from the playhead, or from the
// selection start when the playhead is outside it, or pauses.
func (s *Session) TogglePlayPause() error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	switch {
	case s.closed:
		return ErrClosed
	case s.buf == nil:
		return ErrNoAudio
	}

	return s.player.Toggle()
}

func (s *Session) Playing() bool {
	return s.player.State() == playback.Playing
}

// OnTimeUpdate reports a transport position when the session was built
// with a zero poll interval.
func (s *Session) OnTimeUpdate(seconds float64) {
	s.player.OnTimeUpdate(seconds)
}

func (s *Session) SetFade(f render.Fade) error {
	if err := f.Validate(); err != nil {
		return err
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.fade = f
	return nil
}

func (s *Session) Fade() render.Fade {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return s.fade
}

func (s *Session) SetOutput(c OutputConfig) error {
	if err := c.Validate(); err != nil {
		return err
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.output = c
	return nil
}

func (s *Session) Output() OutputConfig {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return s.output
}

// EstimatedSize predicts the export size of the selection at the configured
// bitrate, for example "2.29 MB".
func (s *Session) EstimatedSize() string {
	s.mtx.Lock()
	kbps := s.output.BitrateKbps
	s.mtx.Unlock()

	return estimate.Size(s.sel.State().Length(), kbps)
}

// Waveform draws the clip, the selection and the playhead at width x height
// pixels. With nothing loaded it is the blank placeholder.
func (s *Session) Waveform(width, height int) *image.RGBA {
	s.mtx.Lock()
	buf, style := s.buf, s.style
	amps := s.waveforms.Profile(buf, width)
	s.mtx.Unlock()

	view := waveform.View{Width: width, Height: height}
	return waveform.RenderOps(view, waveform.PlanProfile(amps, view, s.sel.State(), style))
}
