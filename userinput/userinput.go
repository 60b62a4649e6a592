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

// Package userinput defines the capability interface between the core and
// whatever is polling the real input devices. The core never polls hardware
// itself: the hosting frontend supplies a Poller and the frame driver latches
// its state exactly once per frame. Input changes between those points are
// never observed by the machine.
package userinput

// PortID differentiates the two controller ports on the console.
type PortID int

// List of defined PortIDs.
const (
	PlayerZero PortID = iota
	PlayerOne
)

// Joystick is the state of a digital joystick.
type Joystick struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
	Fire  bool
}

// Switches is the state of the console panel switches.
type Switches struct {
	Reset  bool
	Select bool

	// true indicates colour, false black-and-white
	Colour bool

	// difficulty switches. true indicates the "A" (expert) position
	P0Difficulty bool
	P1Difficulty bool
}

// Poller implementations supply the state of the input devices on demand.
// The frame driver calls each function at most once per frame.
type Poller interface {
	Joystick(port PortID) Joystick
	Switches() Switches
}

// nilPoller is the Poller used when the frontend has not supplied one.
type nilPoller struct{}

func (nilPoller) Joystick(_ PortID) Joystick {
	return Joystick{}
}

func (nilPoller) Switches() Switches {
	// colour is the resting position of the type switch
	return Switches{Colour: true}
}

// NilPoller reports every device as idle.
var NilPoller Poller = nilPoller{}
