// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Decode runs d over r and materializes every channel. Any failure other than
// cancellation is reported as ErrDecode, with the underlying cause kept in
// the chain.
//
// A ContextDecoder is handed ctx.
func Decode(ctx context.Context, d Decoder, r io.Reader) (*SampleBuffer, error) {
	var (
		src Source
		err error
	)
	if cd, ok := d.(ContextDecoder); ok {
		src, err = cd.DecodeContext(ctx, r)
	} else {
		src, err = d.Decode(r)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	defer src.Close()

	buf, err := ReadAll(ctx, src)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	if buf.Frames() == 0 {
		return nil, fmt.Errorf("%w: %w", ErrDecode, ErrEmptyBuffer)
	}

	return buf, nil
}
