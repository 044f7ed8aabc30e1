// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample model and low-level processing
// primitives shared by the decoders, the render engine and the encoders.
//
// # Source Interface
//
// Every decoder yields a Source, a pull-based stream of interleaved float32
// samples in [-1.0, 1.0]:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Sources chain: a Resampler or a MonoMixer wraps another Source.
//
// # Sample Buffers
//
// A SampleBuffer is a fully decoded clip stored per channel. ReadAll drains a
// Source into one, and Decode does the same for a Decoder while mapping every
// failure to ErrDecode:
//
//	buf, err := audio.Decode(ctx, wav.Decoder{}, r)
//	if errors.Is(err, audio.ErrDecode) {
//	    // corrupt or unsupported input
//	}
//
// A SampleBuffer is not modified after it is built, so the waveform renderer,
// the playback transport and an export may read it at the same time.
//
// # Format Registry
//
// The Registry maps format keys, file extensions and MIME types to decoders.
// Lookup prefers the magic bytes reported by Sniff over the file name:
//
//	registry := audio.NewRegistry()
//	registry.Register(audio.FormatWAV, wav.Decoder{}, ".wav", "audio/wav")
//	format, dec, err := registry.Lookup("clip.wav", "audio/wav", head)
//
// A closed Registry rejects lookups with ErrResource.
//
// # Conversion
//
// Resample changes the sample rate of a buffer with cubic interpolation and
// Downmix averages its channels:
//
//	out, err := audio.Resample(ctx, buf, 48000)
//	mono, err := audio.Downmix(ctx, out)
//
// # Errors
//
// Sources return io.EOF when no more data is available. The sentinel errors
// ErrDecode, ErrInvalidRange, ErrEncode and ErrResource classify failures
// across the module and are matched with errors.Is.
package audio
