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

// Package riot implements the machine's RIOT (RAM, I/O, Timer) chip: the 128
// bytes of onboard RAM, the interval timer and the latched input ports.
package riot

import (
	"github.com/ewenb/ember2600/curated"
	"github.com/ewenb/ember2600/snapshot"
)

// RIOT contains all the sub-components of the RIOT chip.
type RIOT struct {
	RAM   *RAM
	Timer *Timer
	Ports *Ports
}

// NewRIOT is the preferred method of initialisation for the RIOT type.
func NewRIOT() *RIOT {
	return &RIOT{
		RAM:   NewRAM(),
		Timer: NewTimer(),
		Ports: NewPorts(),
	}
}

// Step the RIOT forward one scanline.
func (r *RIOT) Step() {
	r.Timer.Step()
}

// Snapshot creates a copy of the RIOT in its current state.
func (r *RIOT) Snapshot() *RIOT {
	return &RIOT{
		RAM:   r.RAM.Snapshot(),
		Timer: r.Timer.Snapshot(),
		Ports: r.Ports.Snapshot(),
	}
}

// Serialize the RIOT state.
func (r *RIOT) Serialize(w *snapshot.Writer) {
	w.PutMarker("riot")
	r.RAM.Serialize(w)
	r.Timer.Serialize(w)
	r.Ports.Serialize(w)
}

// Deserialize a RIOT state produced by Serialize(). The state is returned as
// a new instance rather than applied to the receiver.
func Deserialize(rd *snapshot.Reader) (*RIOT, error) {
	rd.GetMarker("riot")
	r := NewRIOT()
	r.RAM.Deserialize(rd)
	r.Timer.Deserialize(rd)
	r.Ports.Deserialize(rd)
	if err := rd.Error(); err != nil {
		return nil, err
	}
	if !r.Timer.valid() {
		return nil, curated.Errorf("riot: malformed timer state")
	}
	return r, nil
}
