// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	"github.com/bogem/id3v2/v2"
)

// Tags is the descriptive metadata carried into an exported file.
type Tags struct {
	Title  string
	Artist string
	Album  string
}

// Empty reports whether no field is set.
func (t Tags) Empty() bool {
	return t.Title == "" && t.Artist == "" && t.Album == ""
}

// Encode writes t as an ID3v2.4 tag. Nothing is written for empty tags.
func (t *Tags) Encode(w io.Writer) error {
	if t == nil || t.Empty() {
		return nil
	}

	tag := id3v2.NewEmptyTag()
	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	if t.Title != "" {
		tag.SetTitle(t.Title)
	}
	if t.Artist != "" {
		tag.SetArtist(t.Artist)
	}
	if t.Album != "" {
		tag.SetAlbum(t.Album)
	}

	if _, err := tag.WriteTo(w); err != nil {
		return fmt.Errorf("writing id3 tag: %w", err)
	}

	return nil
}
