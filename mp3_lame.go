// SPDX-License-Identifier: EPL-2.0

//go:build lame && cgo

package audcut

import "github.com/ik5/audcut/formats/mp3/lame"

func init() {
	defaultMP3Encoder = lame.New
}
