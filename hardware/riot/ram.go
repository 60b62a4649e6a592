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

package riot

import "github.com/ewenb/ember2600/snapshot"

// RAMSize is the amount of onboard RAM in the RIOT chip.
const RAMSize = 128

// RAM is the 128 bytes of onboard memory. It is the machine side of the
// auxiliary RAM mirror kept by the emulation runtime.
type RAM struct {
	data [RAMSize]uint8
}

// NewRAM is the preferred method of initialisation for the RAM type.
func NewRAM() *RAM {
	return &RAM{}
}

// Peek returns the value at the given RAM cell. The address is masked to the
// valid range.
func (r *RAM) Peek(idx uint8) uint8 {
	return r.data[idx&0x7f]
}

// Poke writes a value to the given RAM cell. The address is masked to the
// valid range.
func (r *RAM) Poke(idx uint8, v uint8) {
	r.data[idx&0x7f] = v
}

// Export copies the entire RAM contents into dst.
func (r *RAM) Export(dst *[RAMSize]uint8) {
	*dst = r.data
}

// Restore overwrites the entire RAM contents from src.
func (r *RAM) Restore(src *[RAMSize]uint8) {
	r.data = *src
}

// Snapshot creates a copy of the RAM in its current state.
func (r *RAM) Snapshot() *RAM {
	n := *r
	return &n
}

// Serialize the RAM contents.
func (r *RAM) Serialize(w *snapshot.Writer) {
	w.PutBytes(r.data[:])
}

// Deserialize the RAM contents.
func (r *RAM) Deserialize(rd *snapshot.Reader) {
	rd.GetBytes(r.data[:])
}
