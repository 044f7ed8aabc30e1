// SPDX-License-Identifier: EPL-2.0

package estimate

import (
	"math"

	"github.com/dustin/go-humanize"
)

const (
	kib = 1024
	mib = 1024 * kib
)

// Bytes predicts the size of seconds of audio at kbps. Negative or NaN
// inputs count as zero.
func Bytes(seconds float64, kbps int) float64 {
	if math.IsNaN(seconds) || seconds <= 0 || kbps <= 0 {
		return 0
	}
	return seconds * float64(kbps) * 1000 / 8
}

// Format renders a byte count as "N B", "x.xx KB" or "x.xx MB", using
// 1024-based units. The unit is picked after rounding, so a count that
// rounds up to 1024 moves to the next unit.
func Format(bytes float64) string {
	if math.IsNaN(bytes) || bytes < 0 {
		return "0 B"
	}
	if b := math.Round(bytes); b < kib {
		return humanize.FormatFloat("#.", b) + " B"
	}
	if kb := round2(bytes / kib); kb < kib {
		return humanize.FormatFloat("#.##", kb) + " KB"
	}
	return humanize.FormatFloat("#.##", bytes/mib) + " MB"
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Size is Format(Bytes(seconds, kbps)).
func Size(seconds float64, kbps int) string {
	return Format(Bytes(seconds, kbps))
}
