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

package hardware_test

import (
	"encoding/binary"
	"testing"

	"github.com/ewenb/ember2600/cartridge"
	"github.com/ewenb/ember2600/digest"
	"github.com/ewenb/ember2600/hardware"
	"github.com/ewenb/ember2600/hardware/television"
	"github.com/ewenb/ember2600/snapshot"
	"github.com/ewenb/ember2600/test"
)

// a deterministic stand-in for a ROM file.
func testROM(size int) []byte {
	data := make([]byte, size)
	for i := range data {
		data[i] = byte(i*7 + 3)
	}
	return data
}

func testMachine(t *testing.T, spec string) *hardware.VCS {
	t.Helper()

	tv, err := television.NewTelevision(spec)
	test.ExpectSuccess(t, err)

	img := cartridge.NewImage()
	test.ExpectSuccess(t, img.Set(testROM(4096)))

	vcs := hardware.NewVCS(tv)
	test.ExpectSuccess(t, vcs.AttachCartridge(img, ""))

	return vcs
}

// advance the machine to the next frame boundary.
func runFrame(t *testing.T, vcs *hardware.VCS) {
	t.Helper()
	for {
		test.ExpectSuccess(t, vcs.AdvanceScanline())
		if vcs.TV.Scanline() == 0 {
			return
		}
	}
}

func TestNoCartridge(t *testing.T) {
	tv, err := television.NewTelevision("NTSC")
	test.ExpectSuccess(t, err)
	vcs := hardware.NewVCS(tv)
	test.ExpectFailure(t, vcs.AdvanceScanline())
}

func TestAutoDetection(t *testing.T) {
	// the test ROM carries no colour writes, which defaults to NTSC
	vcs := testMachine(t, "AUTO")
	test.Equate(t, vcs.TV.SpecID(), "NTSC*")

	// a ROM leaning on even PAL hues detects as PAL
	data := testROM(4096)
	for i := 0; i < 5; i++ {
		copy(data[i*4:], []byte{0xa9, 0x2a, 0x85, 0x08})
	}
	img := cartridge.NewImage()
	test.ExpectSuccess(t, img.Set(data))

	tv, err := television.NewTelevision("AUTO")
	test.ExpectSuccess(t, err)
	vcs = hardware.NewVCS(tv)
	test.ExpectSuccess(t, vcs.AttachCartridge(img, ""))
	test.Equate(t, tv.SpecID(), "PAL*")
}

func TestFrameAdvance(t *testing.T) {
	vcs := testMachine(t, "NTSC")

	for i := 0; i < 5; i++ {
		runFrame(t, vcs)
	}
	test.Equate(t, vcs.TV.Frame(), 5)

	// the kernel publishes the frame counter to RAM at the end of each frame
	test.Equate(t, vcs.RIOT.RAM.Peek(0x00), uint8(5))
}

func TestDeterminism(t *testing.T) {
	a := testMachine(t, "NTSC")
	b := testMachine(t, "NTSC")

	digA := digest.NewVideo()
	digB := digest.NewVideo()
	a.TV.AddPixelRenderer(digA)
	b.TV.AddPixelRenderer(digB)

	audA := digest.NewAudio()
	audB := digest.NewAudio()
	a.TV.AddAudioMixer(audA)
	b.TV.AddAudioMixer(audB)

	for i := 0; i < 20; i++ {
		runFrame(t, a)
		runFrame(t, b)
	}

	test.Equate(t, digA.Hash(), digB.Hash())
	test.Equate(t, audA.Hash(), audB.Hash())
	test.Equate(t, digA.Frames(), 20)
}

func TestSnapshotPlumb(t *testing.T) {
	vcs := testMachine(t, "NTSC")
	for i := 0; i < 5; i++ {
		runFrame(t, vcs)
	}

	s := vcs.Snapshot()

	// record the output of the three frames after the snapshot point
	dig := digest.NewVideo()
	vcs.TV.AddPixelRenderer(dig)
	for i := 0; i < 3; i++ {
		runFrame(t, vcs)
	}
	want := dig.Hash()

	// rewind and replay
	test.ExpectSuccess(t, vcs.Plumb(s))
	test.Equate(t, vcs.TV.Frame(), 5)
	dig.ResetDigest()
	for i := 0; i < 3; i++ {
		runFrame(t, vcs)
	}
	test.Equate(t, dig.Hash(), want)
}

func TestSerialisation(t *testing.T) {
	a := testMachine(t, "NTSC")
	for i := 0; i < 7; i++ {
		runFrame(t, a)
	}

	w := snapshot.NewWriter()
	a.Serialize(w)
	state := w.Bytes()

	// restore into a fresh machine with the same ROM attached
	b := testMachine(t, "NTSC")
	img := cartridge.NewImage()
	test.ExpectSuccess(t, img.Set(testROM(4096)))
	test.ExpectSuccess(t, b.Deserialize(snapshot.NewReader(state), img))
	test.Equate(t, b.TV.Frame(), 7)

	// both machines continue identically
	digA := digest.NewVideo()
	digB := digest.NewVideo()
	a.TV.AddPixelRenderer(digA)
	b.TV.AddPixelRenderer(digB)
	for i := 0; i < 5; i++ {
		runFrame(t, a)
		runFrame(t, b)
	}
	test.Equate(t, digA.Hash(), digB.Hash())

	// a truncated state leaves the machine untouched
	c := testMachine(t, "NTSC")
	test.ExpectFailure(t, c.Deserialize(snapshot.NewReader(state[:len(state)/2]), img))
	test.Equate(t, c.TV.Frame(), 0)

	// trailing data is rejected too
	test.ExpectFailure(t, c.Deserialize(snapshot.NewReader(append(append([]byte{}, state...), 0x00)), img))
	test.Equate(t, c.TV.Frame(), 0)
}

func TestOutOfRangeScanlineState(t *testing.T) {
	a := testMachine(t, "NTSC")
	runFrame(t, a)

	w := snapshot.NewWriter()
	a.Serialize(w)
	state := w.Bytes()

	// the television scanline counter sits after the magic, the version, the
	// section marker, the format name and the frame counter
	const off = 4 + 2 + (2 + 2) + (2 + 4) + 4
	binary.BigEndian.PutUint32(state[off:], 4096)

	img := cartridge.NewImage()
	test.ExpectSuccess(t, img.Set(testROM(4096)))

	// the patched state must be rejected and the machine must remain fully
	// steppable
	b := testMachine(t, "NTSC")
	test.ExpectFailure(t, b.Deserialize(snapshot.NewReader(state), img))
	test.Equate(t, b.TV.Frame(), 0)
	runFrame(t, b)
	test.Equate(t, b.TV.Frame(), 1)
}
