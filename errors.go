// SPDX-License-Identifier: EPL-2.0

package audcut

import (
	"errors"
	"fmt"

	"github.com/ik5/audcut/audio"
)

var (
	// ErrInvalidOutput is returned for an unsupported bitrate, sample rate or
	// format.
	ErrInvalidOutput = errors.New("invalid output configuration")

	// ErrNoAudio is returned by operations that need a loaded clip.
	ErrNoAudio = fmt.Errorf("%w: no audio loaded", audio.ErrResource)

	// ErrClosed is returned by every operation on a closed session.
	ErrClosed = fmt.Errorf("%w: session closed", audio.ErrResource)
)
