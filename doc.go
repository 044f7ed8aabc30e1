// SPDX-License-Identifier: EPL-2.0

// Package audcut is an audio trim-and-render engine: load a clip, pick a
// range on its waveform, preview it in a loop and export it as WAV or MP3
// with optional fades.
//
// # Quick Start
//
//	s, err := audcut.New(audcut.WithOutput(audcut.OutputConfig{
//	    BitrateKbps:  128,
//	    SampleRateHz: 44100,
//	    Format:       audcut.FormatWAV,
//	}))
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	if err := s.Load(ctx, "song.flac", "audio/flac", data); err != nil {
//	    return err
//	}
//	s.SetStart(12.5)
//	s.SetEnd(42)
//
//	out, err := s.Export(ctx)
//	// out.Name == "song (cut-audcut).wav"
//
// # Supported Formats
//
// Clips are decoded from WAV, AIFF, Ogg Vorbis, FLAC, MP3 and AAC (ADTS).
// The container is detected from the leading bytes, then from the file
// extension and the MIME type. Exports are 16-bit PCM WAV, or MP3 through
// an mp3.EncoderFactory: LAME when built with the lame tag, or whatever
// WithMP3Encoder supplies. Without either, the default output is WAV.
//
// # Editing
//
// The pointer methods take the pointer x position and the waveform width in
// pixels and behave like the handles of a range slider. Grabbing near a
// selection edge drags it, grabbing near the playhead scrubs, and a click
// inside the selection seeks. The selection never gets shorter than
// selection.MinGap.
//
// # Playback
//
// Playback needs a transport, see WithTransport and playback/speaker.
// Playing starts at the selection start when the playhead is outside the
// selection, and stops and rewinds at the selection end.
//
// # Configuration
//
// Defaults come from AUDCUT_BITRATE, AUDCUT_SAMPLE_RATE, AUDCUT_FORMAT,
// AUDCUT_MONO, AUDCUT_PRODUCT_TAG, AUDCUT_FADE_IN, AUDCUT_FADE_OUT,
// AUDCUT_POLL_INTERVAL_MS and AUDCUT_WAVEFORM_CACHE, and are overridden by
// options. Logging goes through github.com/pion/logging; set
// PION_LOG_DEBUG=audcut,playback for debug output.
//
// # Errors
//
// Failures match the sentinels in the audio package with errors.Is:
// audio.ErrDecode for input that cannot be read, audio.ErrInvalidRange for
// an empty selection, audio.ErrEncode for export failures and
// audio.ErrResource for a missing transport or a closed session.
package audcut
