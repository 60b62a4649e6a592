// This file is part of Ember2600.
//
// Ember2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Ember2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Ember2600.  If not, see <https://www.gnu.org/licenses/>.

package cartridge

import (
	"crypto/sha1"
	"fmt"

	"github.com/ewenb/ember2600/curated"
)

// MaxROMSize is the capacity of an Image. Larger files are rejected rather
// than truncated.
const MaxROMSize = 512 * 1024

// Image is an owned, fixed-capacity copy of a ROM file. The content is only
// ever replaced wholesale, never partially mutated, so the hash is always in
// step with the data.
type Image struct {
	data []byte
	size int
	hash string
}

// NewImage is the preferred method of initialisation for the Image type.
func NewImage() *Image {
	return &Image{
		data: make([]byte, MaxROMSize),
	}
}

// Set replaces the image content with a copy of data. The previous content
// is retained on failure.
func (img *Image) Set(data []byte) error {
	if len(data) == 0 {
		return curated.Errorf("cartridge: empty ROM image")
	}
	if len(data) > MaxROMSize {
		return curated.Errorf("cartridge: ROM image of %d bytes exceeds maximum", len(data))
	}

	copy(img.data, data)
	img.size = len(data)
	img.hash = fmt.Sprintf("%x", sha1.Sum(data))

	return nil
}

// Empty returns true if no content has been set.
func (img *Image) Empty() bool {
	return img.size == 0
}

// Size returns the logical size of the image content.
func (img *Image) Size() int {
	return img.size
}

// Hash returns the SHA-1 hash of the image content, or the empty string for
// an empty image.
func (img *Image) Hash() string {
	return img.hash
}

// Data returns the image content. The slice must be treated as read-only.
func (img *Image) Data() []byte {
	return img.data[:img.size]
}
