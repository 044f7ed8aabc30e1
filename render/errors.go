// SPDX-License-Identifier: EPL-2.0

package render

import "errors"

// ErrInvalidFade is returned for an enabled fade whose duration is outside
// [MinFadeSeconds, MaxFadeSeconds].
var ErrInvalidFade = errors.New("fade duration out of range")
