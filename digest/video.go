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

// Package digest produces rolling hashes of a machine's video and audio
// output. The hash after frame N folds in the hash after frame N-1, so two
// machines with equal digests have produced identical output for their whole
// runs, not just their most recent frame. Used by the determinism and
// save/restore tests.
package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/ewenb/ember2600/hardware/television"
)

// Video is a television.PixelRenderer that folds every completed frame into
// a rolling hash.
type Video struct {
	digest [sha1.Size]byte
	frames int
}

// NewVideo is the preferred method of initialisation for the Video type. The
// returned instance should be added to a television with AddPixelRenderer().
func NewVideo() *Video {
	return &Video{}
}

// Hash returns the video digest so far.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// Frames returns the number of frames folded into the digest.
func (dig *Video) Frames() int {
	return dig.frames
}

// ResetDigest returns the digest to its initial state.
func (dig *Video) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
	dig.frames = 0
}

// NewFrame implements the television.PixelRenderer interface.
func (dig *Video) NewFrame(_ television.FrameInfo) error {
	dig.frames++
	return nil
}

// SetPixels implements the television.PixelRenderer interface. The previous
// digest is folded in with the new frame's signals.
func (dig *Video) SetPixels(signals []uint8) error {
	h := sha1.New()
	h.Write(dig.digest[:])
	h.Write(signals)
	copy(dig.digest[:], h.Sum(nil))
	return nil
}

// EndRendering implements the television.PixelRenderer interface.
func (dig *Video) EndRendering() error {
	return nil
}
