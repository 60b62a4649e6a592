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

package emulation_test

import (
	"testing"

	"github.com/ewenb/ember2600/emulation"
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

func testRuntime(t *testing.T, rom []byte) *emulation.Runtime {
	t.Helper()

	rt, err := emulation.NewRuntime()
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, rt.SetROM(rom, ""))
	test.ExpectSuccess(t, rt.Create())

	return rt
}

// equalOutput compares the render surfaces and audio buffers of two runtimes.
func equalOutput(a *emulation.Runtime, b *emulation.Runtime) bool {
	pa, pb := a.Pixels(), b.Pixels()
	if len(pa) != len(pb) {
		return false
	}
	for i := range pa {
		if pa[i] != pb[i] {
			return false
		}
	}

	sa, sb := a.AudioSamples(), b.AudioSamples()
	if len(sa) != len(sb) {
		return false
	}
	for i := range sa {
		if sa[i] != sb[i] {
			return false
		}
	}

	return true
}

func TestLifecycle(t *testing.T) {
	rt, err := emulation.NewRuntime()
	test.ExpectSuccess(t, err)
	test.Equate(t, rt.Lifecycle(), emulation.Uninitialized)
	test.ExpectFailure(t, rt.Ready())

	// creating without a ROM fails and leaves the lifecycle alone
	test.ExpectFailure(t, rt.Create())
	test.ExpectFailure(t, rt.Ready())

	test.ExpectSuccess(t, rt.SetROM(testROM(4096), ""))
	test.ExpectSuccess(t, rt.Create())
	test.ExpectSuccess(t, rt.Ready())
	test.Equate(t, rt.Lifecycle(), emulation.Created)

	// destroy is idempotent
	rt.Destroy()
	test.Equate(t, rt.Lifecycle(), emulation.Destroyed)
	rt.Destroy()
	test.Equate(t, rt.Lifecycle(), emulation.Destroyed)

	// and the runtime can be created again
	test.ExpectSuccess(t, rt.Create())
	test.ExpectSuccess(t, rt.Ready())
}

func TestRunFramePanic(t *testing.T) {
	rt, err := emulation.NewRuntime()
	test.ExpectSuccess(t, err)

	defer test.ExpectPanic(t)
	_ = rt.RunFrame()
}

func TestStateSizePanic(t *testing.T) {
	rt, err := emulation.NewRuntime()
	test.ExpectSuccess(t, err)

	defer test.ExpectPanic(t)
	_ = rt.StateSize()
}

func TestSaveStatePanic(t *testing.T) {
	rt := testRuntime(t, testROM(4096))
	rt.Destroy()

	defer test.ExpectPanic(t)
	_ = rt.SaveState(make([]byte, 1024))
}

func TestLoadStatePanic(t *testing.T) {
	rt := testRuntime(t, testROM(4096))
	rt.Destroy()

	defer test.ExpectPanic(t)
	_ = rt.LoadState(make([]byte, 1024))
}

func TestFrameCount(t *testing.T) {
	rt := testRuntime(t, testROM(4096))
	defer rt.Destroy()

	const n = 10
	for i := 0; i < n; i++ {
		test.ExpectSuccess(t, rt.RunFrame())
	}

	// N calls advance exactly N frames
	test.Equate(t, rt.Television().Frame(), n)
}

func TestRAMMirrorCoherence(t *testing.T) {
	rt := testRuntime(t, testROM(4096))
	defer rt.Destroy()

	// after a frame the mirror holds the machine's end-of-frame RAM. cell 0
	// is the frame counter
	for i := 0; i < 3; i++ {
		test.ExpectSuccess(t, rt.RunFrame())
	}
	test.Equate(t, rt.RAMMirror()[0x00], uint8(3))

	// a cell the machine never writes round-trips through the machine
	rt.RAMMirror()[0x7f] = 0xab
	test.ExpectSuccess(t, rt.RunFrame())
	test.Equate(t, rt.RAMMirror()[0x7f], uint8(0xab))
}

func TestRAMMirrorVisibility(t *testing.T) {
	// two identical machines: a write into one machine's mirror must be
	// visible to that machine during the next frame. RAM drives the sprite
	// patterns, so the rendered frames must differ
	rt := testRuntime(t, testROM(4096))
	ctl := testRuntime(t, testROM(4096))
	defer rt.Destroy()
	defer ctl.Destroy()

	for i := 0; i < 4; i++ {
		test.ExpectSuccess(t, rt.RunFrame())
		test.ExpectSuccess(t, ctl.RunFrame())
	}
	if !equalOutput(rt, ctl) {
		t.Fatalf("identical machines diverge")
	}

	rt.RAMMirror()[96] = 0xff
	test.ExpectSuccess(t, rt.RunFrame())
	test.ExpectSuccess(t, ctl.RunFrame())
	if equalOutput(rt, ctl) {
		t.Errorf("mirror write had no effect on machine output")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	for _, frames := range []int{0, 1, 100} {
		a := testRuntime(t, testROM(4096))

		for i := 0; i < frames; i++ {
			test.ExpectSuccess(t, a.RunFrame())
		}

		buf := make([]byte, a.StateSize())
		test.ExpectSuccess(t, a.SaveState(buf))

		// load into a fresh runtime with the same ROM
		b := testRuntime(t, testROM(4096))
		test.ExpectSuccess(t, b.LoadState(buf))
		test.Equate(t, b.Television().Frame(), frames)

		// both machines produce identical output for 50 further frames
		for i := 0; i < 50; i++ {
			test.ExpectSuccess(t, a.RunFrame())
			test.ExpectSuccess(t, b.RunFrame())
			if !equalOutput(a, b) {
				t.Fatalf("output diverges at frame %d after a save at frame %d", i, frames)
			}
		}

		a.Destroy()
		b.Destroy()
	}
}

func TestCapacitySafety(t *testing.T) {
	rt := testRuntime(t, testROM(4096))
	defer rt.Destroy()

	size := rt.StateSize()
	if size <= 0 {
		t.Fatalf("state size of %d", size)
	}

	// a buffer one byte short fails and is untouched
	buf := make([]byte, size-1)
	for i := range buf {
		buf[i] = 0xee
	}
	test.ExpectFailure(t, rt.SaveState(buf))
	for i := range buf {
		if buf[i] != 0xee {
			t.Fatalf("buffer written to despite failure")
		}
	}

	// an exactly sized buffer succeeds
	test.ExpectSuccess(t, rt.SaveState(make([]byte, size)))
}

func TestLoadStateFailure(t *testing.T) {
	rt := testRuntime(t, testROM(4096))
	defer rt.Destroy()

	test.ExpectSuccess(t, rt.RunFrame())
	test.ExpectSuccess(t, rt.RunFrame())

	test.ExpectFailure(t, rt.LoadState([]byte("not a machine state")))

	// the live state is exactly as it was
	test.Equate(t, rt.Television().Frame(), 2)
	test.ExpectSuccess(t, rt.RunFrame())
	test.Equate(t, rt.Television().Frame(), 3)
}

func TestPixelAspectRatio(t *testing.T) {
	rt, err := emulation.NewRuntime()
	test.ExpectSuccess(t, err)

	// the default format is AUTO, which resolves NTSC
	test.ExpectSuccess(t, rt.IsNTSCFamily())
	test.ApproxEquate(t, rt.PixelAspectRatio(), 0.8571, 1e-4)

	// the PAL aspect follows from the PAL pixel clock and subcarrier
	rt.SetConsoleFormat(2)
	test.ExpectFailure(t, rt.IsNTSCFamily())
	test.ApproxEquate(t, rt.PixelAspectRatio(), 1.03966, 1e-4)

	// PAL60 is NTSC-family but keeps PAL colours
	rt.SetConsoleFormat(5)
	test.ExpectSuccess(t, rt.IsNTSCFamily())
	test.ApproxEquate(t, rt.PixelAspectRatio(), 0.8571, 1e-4)

	// a user override wins, zero means no override
	rt.SetVideoAspectNTSC(90)
	test.ApproxEquate(t, rt.PixelAspectRatio(), 0.9, 1e-4)
	rt.SetVideoAspectNTSC(0)
	test.ApproxEquate(t, rt.PixelAspectRatio(), 0.8571, 1e-4)

	// filtered video is square regardless of family
	rt.SetVideoFilter(1)
	test.ApproxEquate(t, rt.PixelAspectRatio(), 1.0, 1e-6)

	// but an override wins even when a filter is active
	rt.SetVideoAspectNTSC(120)
	test.ApproxEquate(t, rt.PixelAspectRatio(), 1.2, 1e-4)
	rt.SetVideoAspectNTSC(0)
	test.ApproxEquate(t, rt.PixelAspectRatio(), 1.0, 1e-6)

	rt.SetVideoFilter(0)
	test.ApproxEquate(t, rt.PixelAspectRatio(), 0.8571, 1e-4)
}

func TestDisplayAspectRatio(t *testing.T) {
	rt, err := emulation.NewRuntime()
	test.ExpectSuccess(t, err)

	// (2 × 160) × PAR / 192
	test.ApproxEquate(t, rt.DisplayAspectRatio(), 1.4286, 1e-3)
}

func TestDetectResize(t *testing.T) {
	rt, err := emulation.NewRuntime()
	test.ExpectSuccess(t, err)

	// no surface yet: nothing to report
	test.ExpectFailure(t, rt.DetectResize())

	test.ExpectSuccess(t, rt.SetROM(testROM(4096), ""))
	test.ExpectSuccess(t, rt.Create())

	// the surface geometry changed exactly once
	test.ExpectSuccess(t, rt.DetectResize())
	test.ExpectFailure(t, rt.DetectResize())
	test.ExpectFailure(t, rt.DetectResize())

	// a format change with a different frame geometry is a resize
	rt.SetConsoleFormat(2)
	test.ExpectSuccess(t, rt.Create())
	test.ExpectSuccess(t, rt.DetectResize())
	test.ExpectFailure(t, rt.DetectResize())

	rt.Destroy()
}

func TestConfigStaging(t *testing.T) {
	// an audible left/right imbalance: channel 0 at full volume, channel 1
	// silent
	rom := testROM(4096)
	copy(rom[:6], []byte{0x00, 0x00, 0x0f, 0x00, 0x00, 0x00})

	// the default mixing is mono: both halves of each pair are equal
	rt := testRuntime(t, rom)
	test.ExpectSuccess(t, rt.RunFrame())
	test.ExpectSuccess(t, rt.RunFrame())
	samples := rt.AudioSamples()
	if len(samples) < 2 {
		t.Fatalf("no audio produced")
	}
	test.Equate(t, samples[0], samples[1])
	rt.Destroy()

	// setting stereo before create stages the value; it is in effect from
	// the first frame of the created machine
	rt, err := emulation.NewRuntime()
	test.ExpectSuccess(t, err)
	rt.SetAudioStereo(2)
	test.ExpectSuccess(t, rt.SetROM(rom, ""))
	test.ExpectSuccess(t, rt.Create())
	test.ExpectSuccess(t, rt.RunFrame())
	test.ExpectSuccess(t, rt.RunFrame())
	samples = rt.AudioSamples()
	if samples[0] == samples[1] {
		t.Errorf("stereo setting not in effect after create")
	}

	// a setter call takes effect with the very next frame
	rt.SetAudioStereo(1)
	test.ExpectSuccess(t, rt.RunFrame())
	samples = rt.AudioSamples()
	test.Equate(t, samples[0], samples[1])

	rt.Destroy()
}

func TestSetROMWhileCreated(t *testing.T) {
	romA := testROM(4096)
	rt := testRuntime(t, romA)
	ctl := testRuntime(t, romA)
	defer rt.Destroy()
	defer ctl.Destroy()

	test.ExpectSuccess(t, rt.RunFrame())
	test.ExpectSuccess(t, ctl.RunFrame())

	state := make([]byte, rt.StateSize())
	test.ExpectSuccess(t, rt.SaveState(state))

	// staging a different ROM must not disturb the live machine: it keeps
	// producing the same output as the untouched control
	test.ExpectSuccess(t, rt.SetROM(testROM(2048), ""))
	test.ExpectSuccess(t, rt.RunFrame())
	test.ExpectSuccess(t, ctl.RunFrame())
	if !equalOutput(rt, ctl) {
		t.Fatalf("staged ROM changed the live machine's output")
	}

	// states saved against the live ROM still load
	test.ExpectSuccess(t, rt.LoadState(state))

	// the staged ROM takes effect at the next create, after which the old
	// state no longer matches
	test.ExpectSuccess(t, rt.Create())
	test.ExpectFailure(t, rt.LoadState(state))
}

func TestConfigPersistence(t *testing.T) {
	rt := testRuntime(t, testROM(4096))

	rt.SetVideoPalette(1)
	test.Equate(t, rt.Prefs().GetString("video.palette"), "z26")

	// configuration survives destroy/create
	rt.Destroy()
	test.Equate(t, rt.Prefs().GetString("video.palette"), "z26")
	test.ExpectSuccess(t, rt.Create())
	test.Equate(t, rt.Prefs().GetString("video.palette"), "z26")

	rt.Destroy()
}

func TestUnknownSelectors(t *testing.T) {
	rt, err := emulation.NewRuntime()
	test.ExpectSuccess(t, err)

	// unknown selectors are quietly ignored, the prior value retained
	rt.SetConsoleFormat(99)
	test.Equate(t, rt.Prefs().GetString("console.format"), "AUTO")

	rt.SetVideoPalette(-1)
	test.Equate(t, rt.Prefs().GetString("video.palette"), "standard")

	rt.SetVideoPhosphor(2, 1000)
	test.Equate(t, rt.Prefs().GetString("video.phosphor"), "always")
	test.Equate(t, rt.Prefs().GetInt("video.phosphorblend"), 77)
}

func TestVideoSettersAfterCreate(t *testing.T) {
	a := testRuntime(t, testROM(4096))
	b := testRuntime(t, testROM(4096))
	defer a.Destroy()
	defer b.Destroy()

	test.ExpectSuccess(t, a.RunFrame())
	test.ExpectSuccess(t, b.RunFrame())
	if !equalOutput(a, b) {
		t.Fatalf("identical machines diverge")
	}

	// a palette change shows up in the next frame's surface
	a.SetVideoPalette(1)
	test.ExpectSuccess(t, a.RunFrame())
	test.ExpectSuccess(t, b.RunFrame())
	if equalOutput(a, b) {
		t.Errorf("palette change had no effect")
	}
}
