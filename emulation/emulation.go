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

// Package emulation is the embedding boundary of the core: the layer a
// frontend drives one frame at a time without knowing anything about the
// machine's internal timing.
//
// The expected call sequence is: create a Runtime, stage configuration, set
// a ROM, Create(), then RunFrame() once per display refresh, interleaved
// with SaveState()/LoadState() as required, and finally Destroy(). The
// runtime is single threaded and call-at-a-time: no operation blocks and
// pacing is the caller's responsibility.
package emulation

import (
	"fmt"

	"github.com/ewenb/ember2600/cartridge"
	"github.com/ewenb/ember2600/curated"
	"github.com/ewenb/ember2600/hardware"
	"github.com/ewenb/ember2600/hardware/riot"
	"github.com/ewenb/ember2600/hardware/television"
	"github.com/ewenb/ember2600/logger"
	"github.com/ewenb/ember2600/prefs"
	"github.com/ewenb/ember2600/snapshot"
	"github.com/ewenb/ember2600/userinput"
)

// Lifecycle is the coarse state of the runtime. Frame and state operations
// are only legal in the Created state.
type Lifecycle int

// The lifecycle states. Destroyed transitions back to Created through a
// fresh Create() call.
const (
	Uninitialized Lifecycle = iota
	Created
	Destroyed
)

func (l Lifecycle) String() string {
	switch l {
	case Uninitialized:
		return "uninitialized"
	case Created:
		return "created"
	case Destroyed:
		return "destroyed"
	}
	return "unknown"
}

// MaxAudioSamplesPerFrame is the capacity of the audio exchange buffer in
// individual samples. A frame never produces more than this.
const MaxAudioSamplesPerFrame = 2048

// AudioTap receives every sample drained by RunFrame(). The slice is only
// valid for the duration of the call.
type AudioTap interface {
	Tap(samples []int16)
}

// Runtime is the embedding runtime: the machine, the exchange buffers and
// the staged configuration, behind a frame-synchronous calling surface.
type Runtime struct {
	lifecycle Lifecycle

	store    *prefs.Store
	settings *Settings

	// the ROM image the live machine reads from. SetROM() stages a new
	// image alongside; Create() commits it. the live image is never written
	// while a machine exists
	image   *cartridge.Image
	romHint string

	pending     *cartridge.Image
	pendingHint string

	tv  *television.Television
	vcs *hardware.VCS
	scr *screen

	poller userinput.Poller
	tap    AudioTap

	// the caller-visible shadow of the machine's onboard RAM. pushed into
	// the machine at the start of every frame and overwritten with the
	// machine's contents at the end
	ramMirror [riot.RAMSize]uint8

	audioBuf   [MaxAudioSamplesPerFrame]int16
	audioCount int
}

// NewRuntime is the preferred method of initialisation for the Runtime type.
func NewRuntime() (*Runtime, error) {
	r := &Runtime{
		store:  prefs.NewStore(),
		image:  cartridge.NewImage(),
		scr:    newScreen(),
		poller: userinput.NilPoller,
	}

	var err error
	r.settings, err = newSettings(r.store)
	if err != nil {
		return nil, curated.Errorf("emulation: %v", err)
	}

	return r, nil
}

// Lifecycle returns the current lifecycle state.
func (r *Runtime) Lifecycle() Lifecycle {
	return r.lifecycle
}

// Ready returns true only in the Created lifecycle state.
func (r *Runtime) Ready() bool {
	return r.lifecycle == Created
}

// Prefs returns the runtime's configuration store. The store is an
// additional view onto the values the setters maintain.
func (r *Runtime) Prefs() *prefs.Store {
	return r.store
}

// Television returns the live machine's television, or nil outside the
// Created state. Useful for attaching additional renderers and mixers such
// as the digest package's types.
func (r *Runtime) Television() *television.Television {
	return r.tv
}

// RAMMirror returns the auxiliary RAM mirror. The caller may read and write
// it freely between RunFrame() calls: writes become visible to the machine
// at the start of the next frame and the mirror holds the machine's
// end-of-frame RAM contents after every frame.
func (r *Runtime) RAMMirror() *[riot.RAMSize]uint8 {
	return &r.ramMirror
}

// SetInputPoller sets the device the frame driver samples input from, once
// per frame. A nil poller reverts to the all-idle default.
func (r *Runtime) SetInputPoller(p userinput.Poller) {
	if p == nil {
		p = userinput.NilPoller
	}
	r.poller = p
}

// SetAudioTap attaches a tap that receives every drained audio sample. A nil
// tap detaches.
func (r *Runtime) SetAudioTap(t AudioTap) {
	r.tap = t
}

// SetROM stages a replacement ROM image. The filename hint, which may be
// empty, guides cartridge scheme resolution; WAV and MP3 hints cause the
// data to be decoded as a Supercharger tape recording.
//
// The staged image takes effect at the next Create(). A live machine, and
// any state saved from it, continues to read the image it was created with.
func (r *Runtime) SetROM(data []byte, filenameHint string) error {
	if cartridge.IsSoundData(filenameHint) {
		var err error
		data, err = cartridge.DecodeSoundData(data, filenameHint)
		if err != nil {
			return err
		}
	}

	img := cartridge.NewImage()
	if err := img.Set(data); err != nil {
		return err
	}
	r.pending = img
	r.pendingHint = filenameHint

	return nil
}

// Create builds a fresh machine from the staged configuration and the most
// recently staged ROM image, tearing down any existing machine first. The lifecycle
// moves to Created only on success; on failure it is left non-Created and
// Create() can be tried again with different input.
func (r *Runtime) Create() error {
	if r.pending != nil {
		r.image = r.pending
		r.romHint = r.pendingHint
		r.pending = nil
	}

	if r.image.Empty() {
		return curated.Errorf("emulation: no ROM image")
	}

	if r.lifecycle == Created {
		r.teardown()
		r.lifecycle = Destroyed
	}

	tv, err := television.NewTelevision(r.settings.Format.String())
	if err != nil {
		return curated.Errorf("emulation: %v", err)
	}

	vcs := hardware.NewVCS(tv)
	if err := vcs.AttachCartridge(r.image, r.romHint); err != nil {
		return curated.Errorf("emulation: %v", err)
	}

	r.tv = tv
	r.vcs = vcs
	r.scr.setConfig(tv.Spec().Colours, r.settings)
	r.scr.resize(tv.Spec())

	r.ramMirror = [riot.RAMSize]uint8{}
	vcs.RIOT.RAM.Export(&r.ramMirror)
	r.audioCount = 0

	r.lifecycle = Created
	logger.Logf("emulation", "machine created: %s", tv.SpecID())

	return nil
}

// Destroy releases the live machine and moves the lifecycle to Destroyed.
// Safe to call redundantly. Configuration values are not reset: they persist
// into the next Create().
func (r *Runtime) Destroy() {
	if r.lifecycle == Created {
		r.teardown()
	}
	r.lifecycle = Destroyed
}

func (r *Runtime) teardown() {
	if err := r.tv.End(); err != nil {
		logger.Logf("emulation", "ending television: %v", err)
	}
	r.tv = nil
	r.vcs = nil
	r.audioCount = 0
}

// mustBeCreated guards the operations that are only legal in the Created
// state. Calling them outside that state is a caller contract violation,
// not a recoverable error.
func (r *Runtime) mustBeCreated(op string) {
	if r.lifecycle != Created {
		panic(fmt.Sprintf("emulation: %s called in %s lifecycle state", op, r.lifecycle))
	}
}

// RunFrame advances the machine by exactly one display frame. Panics unless
// the lifecycle is Created.
//
// The five steps always run in the same order: the RAM mirror is pushed
// into the machine, input is latched, the machine is stepped scanline by
// scanline to the next frame boundary and the completed frame rendered, the
// audio generated during the frame is drained into the audio buffer, and
// the machine's RAM is copied back into the mirror.
func (r *Runtime) RunFrame() error {
	r.mustBeCreated("RunFrame")

	r.vcs.RIOT.RAM.Restore(&r.ramMirror)

	r.vcs.Strobe(r.poller)

	for {
		if err := r.vcs.AdvanceScanline(); err != nil {
			return curated.Errorf("emulation: %v", err)
		}
		if r.tv.Scanline() == 0 {
			break
		}
	}
	if r.tv.FramePending() {
		r.scr.render(r.tv)
	}

	r.audioCount = r.vcs.TIA.Audio.Drain(r.audioBuf[:])
	r.foldAudio()
	if r.tap != nil && r.audioCount > 0 {
		r.tap.Tap(r.audioBuf[:r.audioCount])
	}

	r.vcs.RIOT.RAM.Export(&r.ramMirror)

	return nil
}

// foldAudio applies the stereo setting to the freshly drained samples. The
// machine's two sound channels arrive as the left and right of each stereo
// pair; anything other than the stereo setting mixes them down. The byrom
// setting has no ROM properties database to consult and behaves as mono,
// which is what the real console delivered.
func (r *Runtime) foldAudio() {
	if r.settings.Stereo.String() == "stereo" {
		return
	}
	for i := 0; i+1 < r.audioCount; i += 2 {
		m := (int32(r.audioBuf[i]) + int32(r.audioBuf[i+1])) / 2
		r.audioBuf[i] = int16(m)
		r.audioBuf[i+1] = int16(m)
	}
}

// AudioSamples returns the samples drained by the most recent RunFrame().
// The slice aliases the runtime's audio buffer and is rewritten by the next
// frame. A zero-length result is valid and not an error.
func (r *Runtime) AudioSamples() []int16 {
	return r.audioBuf[:r.audioCount]
}

// Pixels returns the render surface: RenderWidth()×RenderHeight() packed
// 0x00RRGGBB values. The slice stays valid until the frame geometry changes
// or the machine is destroyed.
func (r *Runtime) Pixels() []uint32 {
	return r.scr.pixels
}

// RenderWidth returns the width of the render surface in output pixels.
// Output pixels are double width: twice the emulated active width.
func (r *Runtime) RenderWidth() int {
	return r.scr.width
}

// RenderHeight returns the height of the render surface.
func (r *Runtime) RenderHeight() int {
	return r.scr.height
}

// StateSize returns the size of the serialised machine state. Panics unless
// the lifecycle is Created.
func (r *Runtime) StateSize() int {
	r.mustBeCreated("StateSize")
	w := snapshot.NewWriter()
	r.vcs.Serialize(w)
	return len(w.Bytes())
}

// SaveState serialises the machine state into buf. If the state does not
// fit, the call fails and buf is untouched: the declared capacity is never
// exceeded. Panics unless the lifecycle is Created.
func (r *Runtime) SaveState(buf []byte) error {
	r.mustBeCreated("SaveState")

	w := snapshot.NewWriter()
	r.vcs.Serialize(w)
	data := w.Bytes()

	if len(data) > len(buf) {
		return curated.Errorf("emulation: state of %d bytes exceeds buffer of %d bytes", len(data), len(buf))
	}

	copy(buf, data)
	return nil
}

// LoadState replaces the machine state with a previously saved one. The
// replacement is all or nothing: on any failure the live state is exactly
// as it was. On success the RAM mirror is resynchronised from the loaded
// state. Panics unless the lifecycle is Created.
func (r *Runtime) LoadState(data []byte) error {
	r.mustBeCreated("LoadState")

	rd := snapshot.NewReader(data)
	if err := r.vcs.Deserialize(rd, r.image); err != nil {
		return err
	}

	// the television may have changed format under us
	r.scr.setConfig(r.tv.Spec().Colours, r.settings)
	r.scr.resize(r.tv.Spec())

	r.vcs.RIOT.RAM.Export(&r.ramMirror)
	r.audioCount = 0

	return nil
}
