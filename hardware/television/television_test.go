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

package television_test

import (
	"testing"

	"github.com/ewenb/ember2600/hardware/television"
	"github.com/ewenb/ember2600/hardware/television/specification"
	"github.com/ewenb/ember2600/snapshot"
	"github.com/ewenb/ember2600/test"
)

type mockRenderer struct {
	frames int
	pixels int
}

func (m *mockRenderer) NewFrame(_ television.FrameInfo) error {
	m.frames++
	return nil
}

func (m *mockRenderer) SetPixels(signals []uint8) error {
	m.pixels = len(signals)
	return nil
}

func (m *mockRenderer) EndRendering() error {
	return nil
}

// feed the television enough scanlines for one complete frame.
func runFrame(t *testing.T, tv *television.Television) {
	t.Helper()
	row := make([]uint8, specification.ClksVisible)
	for {
		test.ExpectSuccess(t, tv.NewScanline(row))
		if tv.Scanline() == 0 {
			return
		}
	}
}

func TestCreation(t *testing.T) {
	tv, err := television.NewTelevision("AUTO")
	test.ExpectSuccess(t, err)
	test.Equate(t, tv.SpecID(), "NTSC*")
	test.Equate(t, tv.ReqSpecID(), "AUTO")

	tv, err = television.NewTelevision("pal")
	test.ExpectSuccess(t, err)
	test.Equate(t, tv.SpecID(), "PAL")

	_, err = television.NewTelevision("wibble")
	test.ExpectFailure(t, err)
}

func TestFrameBoundary(t *testing.T) {
	tv, err := television.NewTelevision("NTSC")
	test.ExpectSuccess(t, err)

	rend := &mockRenderer{}
	tv.AddPixelRenderer(rend)

	// a scanline of the wrong width is rejected
	test.ExpectFailure(t, tv.NewScanline(make([]uint8, 100)))

	row := make([]uint8, specification.ClksVisible)
	for i := 0; i < specification.SpecNTSC.ScanlinesTotal-1; i++ {
		test.ExpectSuccess(t, tv.NewScanline(row))
		test.ExpectFailure(t, tv.FramePending())
	}

	// the last scanline wraps the counter and notifies the renderer
	test.ExpectSuccess(t, tv.NewScanline(row))
	test.Equate(t, tv.Scanline(), 0)
	test.Equate(t, tv.Frame(), 1)
	test.ExpectSuccess(t, tv.FramePending())
	test.Equate(t, rend.frames, 1)
	test.Equate(t, rend.pixels, specification.SpecNTSC.ScanlinesTotal*specification.ClksVisible)

	// the first scanline of the next frame clears the pending flag
	test.ExpectSuccess(t, tv.NewScanline(row))
	test.ExpectFailure(t, tv.FramePending())
}

func TestSetSpec(t *testing.T) {
	tv, err := television.NewTelevision("NTSC")
	test.ExpectSuccess(t, err)
	runFrame(t, tv)

	test.ExpectSuccess(t, tv.SetSpec("PAL60*"))
	test.Equate(t, tv.SpecID(), "PAL60*")

	// the change resets the counters
	test.Equate(t, tv.Frame(), 0)
	test.Equate(t, tv.Scanline(), 0)

	test.ExpectFailure(t, tv.SetSpec("wibble"))
}

func TestSnapshot(t *testing.T) {
	tv, err := television.NewTelevision("NTSC")
	test.ExpectSuccess(t, err)

	runFrame(t, tv)
	runFrame(t, tv)
	s := tv.Snapshot()
	runFrame(t, tv)
	test.Equate(t, tv.Frame(), 3)

	test.ExpectSuccess(t, tv.RestoreSnapshot(s))
	test.Equate(t, tv.Frame(), 2)
	test.Equate(t, tv.Scanline(), 0)
}

func TestSnapshotNil(t *testing.T) {
	tv, err := television.NewTelevision("NTSC")
	test.ExpectSuccess(t, err)

	defer test.ExpectPanic(t)
	_ = tv.RestoreSnapshot(nil)
}

func TestSerialisation(t *testing.T) {
	tv, err := television.NewTelevision("PAL")
	test.ExpectSuccess(t, err)
	runFrame(t, tv)

	w := snapshot.NewWriter()
	tv.Serialize(w)

	s, err := television.DeserializeState(snapshot.NewReader(w.Bytes()))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, tv.RestoreSnapshot(s))
	test.Equate(t, tv.Frame(), 1)
	test.Equate(t, tv.SpecID(), "PAL")

	// truncated data fails cleanly
	_, err = television.DeserializeState(snapshot.NewReader(w.Bytes()[:10]))
	test.ExpectFailure(t, err)
}

func TestMalformedState(t *testing.T) {
	// a structurally well-formed state with a scanline counter past the end
	// of the frame must be rejected, not accepted and tripped over later
	w := snapshot.NewWriter()
	w.PutMarker("tv")
	w.PutString("NTSC")
	w.PutInt(1)
	w.PutInt(4096)

	_, err := television.DeserializeState(snapshot.NewReader(w.Bytes()))
	test.ExpectFailure(t, err)

	// the last scanline of the frame is still within range
	w = snapshot.NewWriter()
	w.PutMarker("tv")
	w.PutString("NTSC")
	w.PutInt(1)
	w.PutInt(specification.SpecNTSC.ScanlinesTotal - 1)

	_, err = television.DeserializeState(snapshot.NewReader(w.Bytes()))
	test.ExpectSuccess(t, err)
}
