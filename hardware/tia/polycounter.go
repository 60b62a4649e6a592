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

package tia

// polycounterLen is the period of the 6-bit polynomial counter. The TIA uses
// polynomial counters instead of binary counters because they are cheaper to
// lay out in silicon.
const polycounterLen = 63

// table of polycounter values in sequence order. built once at startup.
var polycounterTable [polycounterLen]uint8

func init() {
	var p uint8
	for i := 0; i < polycounterLen; i++ {
		polycounterTable[i] = p

		// 6-bit LFSR. taps at bits 0 and 1
		if p&0x01 == p>>1&0x01 {
			p = p>>1 | 0x20
		} else {
			p = p >> 1
		}
	}
}

// polycounter is a 6-bit polynomial counter. the zero value is the counter at
// the start of its sequence.
type polycounter struct {
	idx int
}

// tick advances the counter one place, wrapping at the end of the sequence.
// returns true on wrap.
func (pc *polycounter) tick() bool {
	pc.idx++
	if pc.idx >= polycounterLen {
		pc.idx = 0
		return true
	}
	return false
}

// value returns the current 6-bit counter value.
func (pc *polycounter) value() uint8 {
	return polycounterTable[pc.idx]
}

func (pc *polycounter) reset() {
	pc.idx = 0
}
