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

// Ember2600 is an embeddable Atari 2600 emulator core. It is not a
// stand-alone emulator: a hosting frontend owns the window, the audio device
// and the input devices, and drives the core one frame at a time.
//
// The emulation package is the public face of the project. It wraps the
// machine found in the hardware package behind a strict frame-synchronous
// contract: one call to RunFrame advances the machine by exactly one
// television frame, input is latched once per frame, audio is drained into a
// bounded exchange buffer, and the whole machine state can be saved to and
// restored from an opaque byte sequence.
//
// A reference SDL frontend can be found in cmd/ember2600.
package ember2600

// Version number of the ember2600 core.
const Version = "0.3.0"
