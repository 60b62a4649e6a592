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

package digest

import (
	"crypto/sha1"
	"fmt"
)

// Audio is a television.AudioMixer that folds every batch of samples into a
// rolling hash.
type Audio struct {
	digest  [sha1.Size]byte
	samples int
}

// NewAudio is the preferred method of initialisation for the Audio type. The
// returned instance should be added to a television with AddAudioMixer().
func NewAudio() *Audio {
	return &Audio{}
}

// Hash returns the audio digest so far.
func (dig *Audio) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// Samples returns the number of samples folded into the digest.
func (dig *Audio) Samples() int {
	return dig.samples
}

// ResetDigest returns the digest to its initial state.
func (dig *Audio) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
	dig.samples = 0
}

// SetAudio implements the television.AudioMixer interface.
func (dig *Audio) SetAudio(samples []int16) error {
	h := sha1.New()
	h.Write(dig.digest[:])
	for _, s := range samples {
		h.Write([]byte{byte(s), byte(uint16(s) >> 8)})
	}
	copy(dig.digest[:], h.Sum(nil))
	dig.samples += len(samples)
	return nil
}

// EndMixing implements the television.AudioMixer interface.
func (dig *Audio) EndMixing() error {
	return nil
}
