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

// the number of machine cycles in one scanline. the timer is stepped once
// per scanline rather than once per cycle.
const cyclesPerScanline = 76

// Timer is the RIOT's programmable interval timer. The INTIM value
// decrements once for every interval's worth of machine cycles and wraps
// rather than halting, which is close enough to the real chip's post-expiry
// behaviour for a scanline-stepped model.
type Timer struct {
	// the currently selected divider: 1, 8, 64 or 1024 cycles per decrement
	Interval int

	// the current timer value (INTIM)
	Value uint8

	// cycles accumulated towards the next decrement
	remainder int
}

// NewTimer is the preferred method of initialisation for the Timer type.
func NewTimer() *Timer {
	return &Timer{
		// TIM64T is by far the most common choice of interval
		Interval: 64,
		Value:    0,
	}
}

// Step the timer forward by one scanline's worth of machine cycles.
func (tm *Timer) Step() {
	tm.remainder += cyclesPerScanline
	for tm.remainder >= tm.Interval {
		tm.remainder -= tm.Interval
		tm.Value--
	}
}

// Snapshot creates a copy of the Timer in its current state.
func (tm *Timer) Snapshot() *Timer {
	n := *tm
	return &n
}

// Serialize the timer state.
func (tm *Timer) Serialize(w *snapshot.Writer) {
	w.PutInt(tm.Interval)
	w.PutByte(tm.Value)
	w.PutInt(tm.remainder)
}

// Deserialize the timer state.
func (tm *Timer) Deserialize(r *snapshot.Reader) {
	tm.Interval = r.GetInt()
	tm.Value = r.GetByte()
	tm.remainder = r.GetInt()
}

// valid returns true if the timer fields are within their domains. Step()
// requires a positive interval, so deserialised state is checked before it
// is accepted.
func (tm *Timer) valid() bool {
	switch tm.Interval {
	case 1, 8, 64, 1024:
	default:
		return false
	}
	return tm.remainder >= 0 && tm.remainder < tm.Interval
}
