// SPDX-License-Identifier: EPL-2.0

package selection

import (
	"fmt"
	"math"
)

// FormatClock renders seconds as m:ss, truncating fractions.
func FormatClock(seconds float64) string {
	if math.IsNaN(seconds) || seconds < 0 || math.IsInf(seconds, 0) {
		seconds = 0
	}

	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
