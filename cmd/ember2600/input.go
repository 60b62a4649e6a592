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

package main

import (
	"github.com/ewenb/ember2600/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

// keyboardPoller maps the keyboard to the player 0 joystick and the console
// switches. The runtime samples it once per frame.
//
// Cursor keys and space drive the joystick. F1 is the reset switch, F2 the
// select switch, F3 toggles the colour switch and F4 the player 0
// difficulty switch.
type keyboardPoller struct {
	keys []uint8

	colour bool
	p0diff bool
}

func newKeyboardPoller() *keyboardPoller {
	return &keyboardPoller{
		keys:   sdl.GetKeyboardState(),
		colour: true,
	}
}

func (kp *keyboardPoller) pressed(sc int) bool {
	return kp.keys[sc] != 0
}

// Joystick implements the userinput.Poller interface.
func (kp *keyboardPoller) Joystick(port userinput.PortID) userinput.Joystick {
	if port != userinput.PlayerZero {
		return userinput.Joystick{}
	}
	return userinput.Joystick{
		Up:    kp.pressed(sdl.SCANCODE_UP),
		Down:  kp.pressed(sdl.SCANCODE_DOWN),
		Left:  kp.pressed(sdl.SCANCODE_LEFT),
		Right: kp.pressed(sdl.SCANCODE_RIGHT),
		Fire:  kp.pressed(sdl.SCANCODE_SPACE),
	}
}

// Switches implements the userinput.Poller interface.
func (kp *keyboardPoller) Switches() userinput.Switches {
	return userinput.Switches{
		Reset:        kp.pressed(sdl.SCANCODE_F1),
		Select:       kp.pressed(sdl.SCANCODE_F2),
		Colour:       kp.colour,
		P0Difficulty: kp.p0diff,
	}
}

// toggle handles the latching switches. called on key-down events only.
func (kp *keyboardPoller) toggle(sym sdl.Keycode) {
	switch sym {
	case sdl.K_F3:
		kp.colour = !kp.colour
	case sdl.K_F4:
		kp.p0diff = !kp.p0diff
	}
}
