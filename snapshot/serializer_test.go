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

package snapshot_test

import (
	"testing"

	"github.com/ewenb/ember2600/snapshot"
	"github.com/ewenb/ember2600/test"
)

func TestRoundTrip(t *testing.T) {
	w := snapshot.NewWriter()
	w.PutMarker("tv")
	w.PutBool(true)
	w.PutByte(0xc0)
	w.PutUint16(0xbeef)
	w.PutUint32(0xdeadbeef)
	w.PutInt(-262)
	w.PutString("NTSC*")
	w.PutBytes([]byte{1, 2, 3, 4})

	r := snapshot.NewReader(w.Bytes())
	r.GetMarker("tv")
	test.Equate(t, r.GetBool(), true)
	test.Equate(t, r.GetByte(), byte(0xc0))
	test.Equate(t, r.GetUint16(), uint16(0xbeef))
	test.Equate(t, r.GetUint32(), uint32(0xdeadbeef))
	test.Equate(t, r.GetInt(), -262)
	test.Equate(t, r.GetString(), "NTSC*")

	b := make([]byte, 4)
	r.GetBytes(b)
	test.Equate(t, b[0], byte(1))
	test.Equate(t, b[3], byte(4))

	test.ExpectSuccess(t, r.Error())
	test.Equate(t, r.Remaining(), 0)
}

func TestBadMagic(t *testing.T) {
	r := snapshot.NewReader([]byte("this is not a snapshot"))
	test.ExpectFailure(t, r.Error())
}

func TestTruncated(t *testing.T) {
	w := snapshot.NewWriter()
	w.PutUint32(100)

	// lop off the last byte of the serialisation
	data := w.Bytes()
	r := snapshot.NewReader(data[:len(data)-1])
	test.ExpectSuccess(t, r.Error())

	_ = r.GetUint32()
	test.ExpectFailure(t, r.Error())

	// error is sticky; subsequent reads return zero values
	test.Equate(t, r.GetByte(), byte(0))
}

func TestMarkerMismatch(t *testing.T) {
	w := snapshot.NewWriter()
	w.PutMarker("riot")

	r := snapshot.NewReader(w.Bytes())
	r.GetMarker("tia")
	test.ExpectFailure(t, r.Error())
}
