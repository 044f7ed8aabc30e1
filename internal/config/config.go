// SPDX-License-Identifier: EPL-2.0

package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the session defaults, loaded from environment variables.
type Config struct {
	// Export
	BitrateKbps  int    // 64, 128 or 320
	SampleRateHz int    // 22050, 44100 or 48000
	Format       string // wav or mp3
	Mono         bool   // downmix before encoding
	ProductTag   string // goes into "<name> (cut-<tag>).<ext>"

	// Fades, in seconds. Zero leaves the fade off.
	FadeIn  float64
	FadeOut float64

	// Playback
	PollInterval time.Duration // transport position polling, 0 disables

	// Waveform
	WaveformCache int // amplitude profiles kept per session
}

// Load reads configuration from environment variables with sane defaults.
func Load() Config {
	return Config{
		BitrateKbps:  envInt("AUDCUT_BITRATE", 128),
		SampleRateHz: envInt("AUDCUT_SAMPLE_RATE", 44100),
		Format:       envStr("AUDCUT_FORMAT", "mp3"),
		Mono:         envBool("AUDCUT_MONO", false),
		ProductTag:   envStr("AUDCUT_PRODUCT_TAG", "audcut"),

		FadeIn:  envFloat("AUDCUT_FADE_IN", 0),
		FadeOut: envFloat("AUDCUT_FADE_OUT", 0),

		PollInterval: time.Duration(envInt("AUDCUT_POLL_INTERVAL_MS", 100)) * time.Millisecond,

		WaveformCache: envInt("AUDCUT_WAVEFORM_CACHE", 8),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
