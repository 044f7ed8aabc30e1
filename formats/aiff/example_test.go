// SPDX-License-Identifier: EPL-2.0

package aiff_test

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ik5/audcut/formats/aiff"
)

// ExampleDecoder_Decode_errorHandling shows how a WAV file is rejected so a
// caller can fall through to another decoder.
func ExampleDecoder_Decode_errorHandling() {
	data := []byte("RIFF\x24\x00\x00\x00WAVEfmt ")

	_, err := aiff.Decoder{}.Decode(bytes.NewReader(data))
	fmt.Println(errors.Is(err, aiff.ErrNotAiffFile))

	// Output:
	// true
}
