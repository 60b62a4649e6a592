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

package television

// PixelRenderer implementations display, or otherwise work with, visual
// information from the television. For example, digest.Video.
//
// The television calls NewFrame() at every frame boundary, followed by
// SetPixels() with the full frame of colour signals. Each signal is a 7-bit
// palette index; rows are specification.ClksVisible signals wide and there is
// one row for every scanline of the frame, visible or not.
type PixelRenderer interface {
	NewFrame(FrameInfo) error
	SetPixels(signals []uint8) error

	// some renderers may need to conclude and/or dispose of resources gently
	EndRendering() error
}

// AudioMixer implementations work with sound: an SDL frontend queueing
// samples to the sound device, the digest package fingerprinting them, the
// wavwriter capturing them to disk.
//
// Samples arrive as interleaved stereo pairs, two pairs per scanline, as they
// are generated.
type AudioMixer interface {
	SetAudio(samples []int16) error

	// push remaining samples and close any resources
	EndMixing() error
}
