// SPDX-License-Identifier: EPL-2.0

package estimate

import (
	"math"
	"testing"
)

func TestBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		seconds float64
		kbps    int
		want    float64
	}{
		{10, 128, 160000},
		{1, 64, 8000},
		{2.5, 320, 100000},
		{0, 128, 0},
		{-3, 128, 0},
		{math.NaN(), 128, 0},
		{10, 0, 0},
	}

	for _, tt := range tests {
		if got := Bytes(tt.seconds, tt.kbps); got != tt.want {
			t.Errorf("Bytes(%v, %d) = %v, want %v", tt.seconds, tt.kbps, got, tt.want)
		}
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bytes float64
		want  string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1023, "1023 B"},
		{1023.4, "1023 B"},
		{1023.6, "1.00 KB"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{160000, "156.25 KB"},
		{1024*1024 - 1, "1.00 MB"},
		{1024 * 1024, "1.00 MB"},
		{5 * 1024 * 1024, "5.00 MB"},
		{-1, "0 B"},
	}

	for _, tt := range tests {
		if got := Format(tt.bytes); got != tt.want {
			t.Errorf("Format(%v) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}

func TestSize(t *testing.T) {
	t.Parallel()

	if got := Size(10, 128); got != "156.25 KB" {
		t.Errorf("Size(10, 128) = %q", got)
	}
}
