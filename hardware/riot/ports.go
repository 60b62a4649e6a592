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

import (
	"github.com/ewenb/ember2600/snapshot"
	"github.com/ewenb/ember2600/userinput"
)

// Ports latches the state of the two controller ports and the console
// switches. The latched values follow the wiring of the real SWCHA/SWCHB
// registers: joystick directions and most switches are active low.
type Ports struct {
	// SWCHA: joystick directions. player 0 in the high nibble, player 1 in
	// the low nibble. bits are 0 when the direction is pushed
	SWCHA uint8

	// SWCHB: console switches
	SWCHB uint8

	// INPT4/INPT5: fire buttons, bit 7 is 0 when pressed
	INPT4 uint8
	INPT5 uint8
}

// SWCHB bit positions.
const (
	swchbReset        = 0x01
	swchbSelect       = 0x02
	swchbColour       = 0x08
	swchbP0Difficulty = 0x40
	swchbP1Difficulty = 0x80
)

// NewPorts is the preferred method of initialisation for the Ports type.
func NewPorts() *Ports {
	p := &Ports{}
	p.Strobe(userinput.NilPoller)
	return p
}

// Strobe latches the current state of the input devices. This is the only
// point at which external input state enters the machine.
func (p *Ports) Strobe(poller userinput.Poller) {
	if poller == nil {
		poller = userinput.NilPoller
	}

	j0 := poller.Joystick(userinput.PlayerZero)
	j1 := poller.Joystick(userinput.PlayerOne)
	sw := poller.Switches()

	p.SWCHA = 0xff
	p.SWCHA &^= joyBits(j0) << 4
	p.SWCHA &^= joyBits(j1)

	p.SWCHB = 0xff &^ (swchbReset | swchbSelect | swchbColour | swchbP0Difficulty | swchbP1Difficulty)
	if !sw.Reset {
		p.SWCHB |= swchbReset
	}
	if !sw.Select {
		p.SWCHB |= swchbSelect
	}
	if sw.Colour {
		p.SWCHB |= swchbColour
	}
	if sw.P0Difficulty {
		p.SWCHB |= swchbP0Difficulty
	}
	if sw.P1Difficulty {
		p.SWCHB |= swchbP1Difficulty
	}

	p.INPT4 = 0x80
	if j0.Fire {
		p.INPT4 = 0x00
	}
	p.INPT5 = 0x80
	if j1.Fire {
		p.INPT5 = 0x00
	}
}

// joyBits converts a joystick state to the nibble layout of SWCHA. a set bit
// means the direction is pushed; the caller clears the corresponding SWCHA
// bit.
func joyBits(j userinput.Joystick) uint8 {
	var b uint8
	if j.Up {
		b |= 0x01
	}
	if j.Down {
		b |= 0x02
	}
	if j.Left {
		b |= 0x04
	}
	if j.Right {
		b |= 0x08
	}
	return b
}

// Snapshot creates a copy of the Ports in their current state.
func (p *Ports) Snapshot() *Ports {
	n := *p
	return &n
}

// Serialize the latched port state.
func (p *Ports) Serialize(w *snapshot.Writer) {
	w.PutByte(p.SWCHA)
	w.PutByte(p.SWCHB)
	w.PutByte(p.INPT4)
	w.PutByte(p.INPT5)
}

// Deserialize the latched port state.
func (p *Ports) Deserialize(r *snapshot.Reader) {
	p.SWCHA = r.GetByte()
	p.SWCHB = r.GetByte()
	p.INPT4 = r.GetByte()
	p.INPT5 = r.GetByte()
}
