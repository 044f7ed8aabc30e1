// SPDX-License-Identifier: EPL-2.0

package audcut

import (
	"context"
	"encoding/binary"
	"errors"
	"image/color"
	"os"
	"slices"
	"testing"

	"github.com/ik5/audcut/audio"
	"github.com/ik5/audcut/formats/mp3"
	"github.com/ik5/audcut/formats/wav"
	"github.com/ik5/audcut/internal/audiotest"
	"github.com/ik5/audcut/render"
	"github.com/ik5/audcut/selection"
	"github.com/ik5/audcut/waveform"
)

func wavBytes(t testing.TB, buf *audio.SampleBuffer) []byte {
	t.Helper()

	data, err := wav.EncodeBytes(buf)
	if err != nil {
		t.Fatalf("EncodeBytes() error = %v", err)
	}
	return data
}

func newTestSession(t *testing.T, opts ...Option) *Session {
	t.Helper()

	opts = append([]Option{
		WithOutput(OutputConfig{BitrateKbps: 128, SampleRateHz: 44100, Format: FormatWAV}),
		WithFade(render.Fade{}),
		WithPollInterval(0),
		WithProductTag("test"),
	}, opts...)

	s, err := New(opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func loadTone(t *testing.T, s *Session, rate, channels int, seconds float64) {
	t.Helper()

	data := wavBytes(t, audiotest.ToneBuffer(rate, channels, seconds))
	if err := s.Load(context.Background(), "clip.wav", "audio/wav", data); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
}

type fakeFrameEncoder struct {
	frames int
}

func (e *fakeFrameEncoder) EncodeFrame(left, right []int16) ([]byte, error) {
	e.frames++
	return []byte{0xFF, 0xFB}, nil
}

func (e *fakeFrameEncoder) Flush() ([]byte, error) { return []byte{0xFF}, nil }
func (e *fakeFrameEncoder) Close() error           { return nil }

func fakeMP3(mp3.EncoderConfig) (mp3.FrameEncoder, error) {
	return &fakeFrameEncoder{}, nil
}

func TestNew_InvalidOutput(t *testing.T) {
	t.Parallel()

	_, err := New(WithOutput(OutputConfig{BitrateKbps: 96, SampleRateHz: 44100, Format: FormatMP3}))
	if !errors.Is(err, ErrInvalidOutput) {
		t.Errorf("New() error = %v, want ErrInvalidOutput", err)
	}
}

func TestNew_InvalidFade(t *testing.T) {
	t.Parallel()

	_, err := New(WithFade(render.Fade{FadeIn: true, FadeInDuration: 5}))
	if !errors.Is(err, render.ErrInvalidFade) {
		t.Errorf("New() error = %v, want ErrInvalidFade", err)
	}
}

func TestNew_DefaultFormatFollowsEncoder(t *testing.T) {
	t.Parallel()

	if os.Getenv("AUDCUT_FORMAT") != "" {
		t.Skip("AUDCUT_FORMAT overrides the default format")
	}

	s, err := New(WithPollInterval(0), WithProductTag("test"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	want := FormatWAV
	if defaultMP3Encoder != nil {
		want = FormatMP3
	}
	if got := s.Output().Format; got != want {
		t.Fatalf("Output().Format = %q, want %q", got, want)
	}

	loadTone(t, s, 44100, 2, 2)

	out, err := s.Export(context.Background())
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if out.Name != "clip (cut-test)."+string(want) || len(out.Data) == 0 {
		t.Errorf("Export() = %q with %d bytes", out.Name, len(out.Data))
	}
}

func TestNew_DefaultFormatWithEncoder(t *testing.T) {
	t.Parallel()

	if os.Getenv("AUDCUT_FORMAT") != "" {
		t.Skip("AUDCUT_FORMAT overrides the default format")
	}

	s, err := New(WithMP3Encoder(fakeMP3))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	if got := s.Output().Format; got != FormatMP3 {
		t.Errorf("Output().Format = %q, want mp3", got)
	}
}

func TestSession_Load(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)
	loadTone(t, s, 8000, 1, 2)

	if !s.Loaded() {
		t.Fatal("Loaded() = false")
	}
	want := selection.State{Start: 0, End: 2, Current: 0, Duration: 2}
	if got := s.Selection(); got != want {
		t.Errorf("Selection() = %+v, want %+v", got, want)
	}
	if s.ID() == "" {
		t.Error("ID() is empty")
	}
}

func TestSession_LoadUnknownKeepsPrevious(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)
	loadTone(t, s, 8000, 1, 2)

	err := s.Load(context.Background(), "notes.txt", "text/plain", []byte("hello, not audio"))
	if !errors.Is(err, audio.ErrDecode) {
		t.Fatalf("Load() error = %v, want ErrDecode", err)
	}

	if !s.Loaded() || s.Duration() != 2 {
		t.Errorf("previous clip lost: Loaded() = %v, Duration() = %v", s.Loaded(), s.Duration())
	}
}

func TestSession_LoadCorruptWAV(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)

	data := wavBytes(t, audiotest.ToneBuffer(8000, 1, 1))
	corrupt := append([]byte(nil), data[:12]...)

	err := s.Load(context.Background(), "broken.wav", "audio/wav", corrupt)
	if !errors.Is(err, audio.ErrDecode) {
		t.Errorf("Load() error = %v, want ErrDecode", err)
	}
	if s.Loaded() {
		t.Error("Loaded() = true after a failed load")
	}
}

func TestSession_Closed(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}

	data := wavBytes(t, audiotest.ToneBuffer(8000, 1, 1))

	if err := s.Load(context.Background(), "clip.wav", "", data); !errors.Is(err, audio.ErrResource) {
		t.Errorf("Load() error = %v, want ErrResource", err)
	}
	if err := s.Remove(); !errors.Is(err, ErrClosed) {
		t.Errorf("Remove() error = %v, want ErrClosed", err)
	}
	if _, err := s.Export(context.Background()); !errors.Is(err, ErrClosed) {
		t.Errorf("Export() error = %v, want ErrClosed", err)
	}
	if err := s.TogglePlayPause(); !errors.Is(err, ErrClosed) {
		t.Errorf("TogglePlayPause() error = %v, want ErrClosed", err)
	}
}

func TestSession_Remove(t *testing.T) {
	t.Parallel()

	tr := audiotest.NewTransport()
	s := newTestSession(t, WithTransport(tr))
	loadTone(t, s, 8000, 1, 2)

	if tr.Loaded() == nil {
		t.Fatal("transport was not loaded")
	}
	if err := s.TogglePlayPause(); err != nil {
		t.Fatalf("TogglePlayPause() error = %v", err)
	}

	if err := s.Remove(); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	if s.Loaded() || s.Playing() {
		t.Errorf("Loaded() = %v, Playing() = %v, want false, false", s.Loaded(), s.Playing())
	}
	if !tr.Released() {
		t.Error("transport not released")
	}
	if got := s.Selection(); got != (selection.State{}) {
		t.Errorf("Selection() = %+v, want zero", got)
	}
	if _, err := s.Export(context.Background()); !errors.Is(err, ErrNoAudio) {
		t.Errorf("Export() error = %v, want ErrNoAudio", err)
	}
}

func TestSession_PointerDrag(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)
	loadTone(t, s, 8000, 1, 4)

	st := s.PointerDown(0, 400)
	if st.Drag != selection.DraggingStart {
		t.Fatalf("Drag = %v, want start", st.Drag)
	}

	st = s.PointerMove(100, 400)
	if st.Start != 1 {
		t.Errorf("Start = %v, want 1", st.Start)
	}

	// Dragged past the end edge, clamped to End-MinGap.
	st = s.PointerMove(400, 400)
	if want := 4 - selection.MinGap; st.Start != want {
		t.Errorf("Start = %v, want %v", st.Start, want)
	}

	st = s.PointerLeave(400, 400)
	if st.Drag != selection.None {
		t.Errorf("Drag = %v after leave, want none", st.Drag)
	}
}

func TestSession_PointerSeekMovesTransport(t *testing.T) {
	t.Parallel()

	tr := audiotest.NewTransport()
	s := newTestSession(t, WithTransport(tr))
	loadTone(t, s, 8000, 1, 4)

	st := s.PointerDown(200, 400)
	s.PointerUp(200, 400)

	if st.Current != 2 || st.Drag != selection.None {
		t.Errorf("state = %+v, want Current 2 and no drag", st)
	}
	if got := tr.Seeks(); !slices.Contains(got, 2.0) {
		t.Errorf("transport seeks = %v, want 2", got)
	}

	s.Seek(3.5)
	if got := tr.Position(); got != 3.5 {
		t.Errorf("transport position = %v, want 3.5", got)
	}
}

func TestSession_PlaybackLoop(t *testing.T) {
	t.Parallel()

	tr := audiotest.NewTransport()
	s := newTestSession(t, WithTransport(tr))
	loadTone(t, s, 8000, 1, 4)

	s.SetStart(1)
	s.SetEnd(3)

	if err := s.TogglePlayPause(); err != nil {
		t.Fatalf("TogglePlayPause() error = %v", err)
	}
	if !s.Playing() || tr.Position() != 1 {
		t.Fatalf("Playing() = %v, position = %v, want true, 1", s.Playing(), tr.Position())
	}

	s.OnTimeUpdate(3)

	if s.Playing() {
		t.Error("still playing after reaching the selection end")
	}
	if got := s.Selection().Current; got != 1 {
		t.Errorf("Current = %v, want 1", got)
	}
}

func TestSession_SeekWhilePlayingStaysInSelection(t *testing.T) {
	t.Parallel()

	tr := audiotest.NewTransport()
	s := newTestSession(t, WithTransport(tr))
	loadTone(t, s, 8000, 1, 4)

	s.SetStart(1)
	s.SetEnd(3)
	if err := s.TogglePlayPause(); err != nil {
		t.Fatalf("TogglePlayPause() error = %v", err)
	}

	if st := s.Seek(0.5); st.Current != 1 || tr.Position() != 1 {
		t.Errorf("Seek(0.5) Current = %v, position = %v, want 1, 1", st.Current, tr.Position())
	}
	if st := s.Seek(3.5); st.Current != 3 {
		t.Errorf("Seek(3.5) Current = %v, want 3", st.Current)
	}

	if err := s.TogglePlayPause(); err != nil {
		t.Fatalf("TogglePlayPause() error = %v", err)
	}
	if st := s.Seek(0.5); st.Current != 0.5 {
		t.Errorf("Seek(0.5) while stopped Current = %v, want 0.5", st.Current)
	}
}

func TestSession_PlayWithoutTransport(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)

	if err := s.TogglePlayPause(); !errors.Is(err, ErrNoAudio) {
		t.Errorf("TogglePlayPause() error = %v, want ErrNoAudio", err)
	}

	loadTone(t, s, 8000, 1, 1)
	if err := s.TogglePlayPause(); !errors.Is(err, audio.ErrResource) {
		t.Errorf("TogglePlayPause() error = %v, want ErrResource", err)
	}
}

func TestSession_ExportWAV(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)
	loadTone(t, s, 44100, 1, 2)

	s.SetStart(0.5)
	s.SetEnd(1.5)

	out, err := s.Export(context.Background())
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	if out.Name != "clip (cut-test).wav" {
		t.Errorf("Name = %q", out.Name)
	}
	if out.MIME != "audio/wav" {
		t.Errorf("MIME = %q", out.MIME)
	}
	if want := wav.HeaderSize + 44100*2; len(out.Data) != want {
		t.Errorf("len(Data) = %d, want %d", len(out.Data), want)
	}
}

func TestSession_ExportResampledMono(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, WithOutput(OutputConfig{
		BitrateKbps:  64,
		SampleRateHz: 22050,
		Format:       FormatWAV,
		Mono:         true,
	}))
	loadTone(t, s, 44100, 2, 1)

	out, err := s.Export(context.Background())
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	if got := binary.LittleEndian.Uint16(out.Data[22:24]); got != 1 {
		t.Errorf("channels = %d, want 1", got)
	}
	if got := binary.LittleEndian.Uint32(out.Data[24:28]); got != 22050 {
		t.Errorf("sample rate = %d, want 22050", got)
	}
	if want := wav.HeaderSize + 22050*2; len(out.Data) != want {
		t.Errorf("len(Data) = %d, want %d", len(out.Data), want)
	}
}

func TestSession_ExportMP3(t *testing.T) {
	t.Parallel()

	s := newTestSession(t,
		WithOutput(OutputConfig{BitrateKbps: 320, SampleRateHz: 44100, Format: FormatMP3}),
		WithMP3Encoder(fakeMP3),
	)
	loadTone(t, s, 44100, 2, 1)

	out, err := s.Export(context.Background())
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	if out.Name != "clip (cut-test).mp3" || out.MIME != "audio/mpeg" {
		t.Errorf("Name, MIME = %q, %q", out.Name, out.MIME)
	}
	// ceil(44100/1152) = 39 frames of two bytes, then one flushed byte.
	if want := 39*2 + 1; len(out.Data) != want {
		t.Errorf("len(Data) = %d, want %d", len(out.Data), want)
	}
}

func TestSession_ExportMP3WithoutEncoder(t *testing.T) {
	t.Parallel()

	s := newTestSession(t,
		WithOutput(OutputConfig{BitrateKbps: 128, SampleRateHz: 44100, Format: FormatMP3}),
		WithMP3Encoder(nil),
	)
	loadTone(t, s, 44100, 1, 1)

	if _, err := s.Export(context.Background()); !errors.Is(err, audio.ErrEncode) {
		t.Errorf("Export() error = %v, want ErrEncode", err)
	}
}

func TestSession_ExportCancelled(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)
	loadTone(t, s, 8000, 1, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.Export(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Export() error = %v, want context.Canceled", err)
	}
}

func TestSession_ExportAsync(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)
	loadTone(t, s, 44100, 1, 2)

	task := s.ExportAsync(context.Background())

	// Editing after the call does not change the running export.
	s.SetEnd(1)

	<-task.Done()
	out, err := task.Wait()
	if err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if want := wav.HeaderSize + 2*44100*2; len(out.Data) != want {
		t.Errorf("len(Data) = %d, want %d", len(out.Data), want)
	}
}

func TestSession_ExportAsyncWithoutAudio(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)

	if _, err := s.ExportAsync(context.Background()).Wait(); !errors.Is(err, ErrNoAudio) {
		t.Errorf("Wait() error = %v, want ErrNoAudio", err)
	}
}

func TestSession_EstimatedSize(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)

	if got := s.EstimatedSize(); got != "0 B" {
		t.Errorf("EstimatedSize() empty = %q, want 0 B", got)
	}

	loadTone(t, s, 8000, 1, 10)
	if got := s.EstimatedSize(); got != "156.25 KB" {
		t.Errorf("EstimatedSize() = %q, want 156.25 KB", got)
	}
}

func TestSession_SetOutputAndFade(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)

	if err := s.SetOutput(OutputConfig{BitrateKbps: 128, SampleRateHz: 32000, Format: FormatWAV}); !errors.Is(err, ErrInvalidOutput) {
		t.Errorf("SetOutput() error = %v, want ErrInvalidOutput", err)
	}
	if err := s.SetFade(render.Fade{FadeOut: true, FadeOutDuration: 0.01}); !errors.Is(err, render.ErrInvalidFade) {
		t.Errorf("SetFade() error = %v, want ErrInvalidFade", err)
	}

	fade := render.Fade{FadeIn: true, FadeInDuration: 0.5}
	if err := s.SetFade(fade); err != nil {
		t.Fatalf("SetFade() error = %v", err)
	}
	if s.Fade() != fade {
		t.Errorf("Fade() = %+v, want %+v", s.Fade(), fade)
	}

	out := OutputConfig{BitrateKbps: 320, SampleRateHz: 48000, Format: FormatMP3, Mono: true}
	if err := s.SetOutput(out); err != nil {
		t.Fatalf("SetOutput() error = %v", err)
	}
	if s.Output() != out {
		t.Errorf("Output() = %+v, want %+v", s.Output(), out)
	}
}

func TestSession_Waveform(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)
	style := waveform.DefaultStyle()

	img := s.Waveform(64, 32)
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 32 {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	if got := color.RGBAModel.Convert(img.At(0, 0)); got != color.RGBAModel.Convert(style.Background) {
		t.Errorf("placeholder pixel = %v, want background", got)
	}

	loadTone(t, s, 8000, 1, 1)
	first := s.Waveform(64, 32)
	second := s.Waveform(64, 32)
	if !slices.Equal(first.Pix, second.Pix) {
		t.Error("Waveform() is not stable for the same state")
	}
}
