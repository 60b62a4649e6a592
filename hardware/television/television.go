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

// Package television implements the conceptual television the machine is
// connected to. The television does not present anything itself: it collects
// the colour signals the TIA sends scanline by scanline and forwards
// completed frames and generated audio to whatever PixelRenderers and
// AudioMixers have been added.
//
// The television is also the machine's frame clock. The scanline counter
// wraps to zero at the frame boundary, which is the signal the frame driver
// in the emulation package looks for.
package television

import (
	"fmt"
	"strings"

	"github.com/ewenb/ember2600/curated"
	"github.com/ewenb/ember2600/hardware/television/specification"
	"github.com/ewenb/ember2600/logger"
	"github.com/ewenb/ember2600/snapshot"
)

// Television collects colour and audio signals from the TIA and distributes
// them to added renderers and mixers.
type Television struct {
	// the specification that was asked for on creation or through SetSpec().
	// may be "AUTO"
	reqSpecID string

	// the resolved specification and whether it was resolved by detection
	// rather than explicit request
	spec specification.Spec
	auto bool

	frameNum int
	scanline int

	// a full frame of colour signals, including scanlines that are never
	// visible. rows are specification.ClksVisible signals wide
	signals []uint8

	// a frame boundary has been crossed and the frame is ready for rendering
	pendingFrame bool

	frameInfo FrameInfo

	renderers []PixelRenderer
	mixers    []AudioMixer
}

// NewTelevision creates a new television for the requested format name. The
// name "AUTO" is accepted and resolves to NTSC until SetSpec() is called with
// a detected format.
func NewTelevision(spec string) (*Television, error) {
	tv := &Television{
		reqSpecID: strings.ToUpper(strings.TrimSpace(spec)),
	}

	if tv.reqSpecID == "AUTO" {
		tv.spec = specification.SpecNTSC
		tv.auto = true
	} else {
		s, ok := specification.SearchSpec(tv.reqSpecID)
		if !ok {
			return nil, curated.Errorf("television: unsupported spec: %s", spec)
		}
		tv.spec = s
	}

	tv.frameInfo = NewFrameInfo(tv.spec)
	tv.signals = make([]uint8, tv.spec.ScanlinesTotal*specification.ClksVisible)

	return tv, nil
}

func (tv *Television) String() string {
	return fmt.Sprintf("FR=%d SL=%d (%s)", tv.frameNum, tv.scanline, tv.SpecID())
}

// AddPixelRenderer registers an (additional) implementation of PixelRenderer.
func (tv *Television) AddPixelRenderer(r PixelRenderer) {
	tv.renderers = append(tv.renderers, r)
}

// AddAudioMixer registers an (additional) implementation of AudioMixer.
func (tv *Television) AddAudioMixer(m AudioMixer) {
	tv.mixers = append(tv.mixers, m)
}

// SpecID returns the resolved format name. Auto-detected formats are tagged
// with a trailing '*'.
func (tv *Television) SpecID() string {
	if tv.auto {
		return tv.spec.ID + "*"
	}
	return tv.spec.ID
}

// ReqSpecID returns the format name that was requested, which may be "AUTO".
func (tv *Television) ReqSpecID() string {
	return tv.reqSpecID
}

// Spec returns the television's current specification. Renderers should use
// the FrameInfo passed to NewFrame() rather than keeping a private copy.
func (tv *Television) Spec() specification.Spec {
	return tv.spec
}

// SetSpec changes the television's specification. A trailing '*' marks the
// format as having been resolved by detection rather than explicit request.
// The change takes effect immediately: counters are reset and the signal
// buffer is resized for the new frame geometry.
func (tv *Television) SetSpec(id string) error {
	spec, ok := specification.SearchSpec(id)
	if !ok {
		return curated.Errorf("television: unsupported spec: %s", id)
	}

	tv.spec = spec
	tv.auto = strings.HasSuffix(id, "*")
	tv.Reset()

	logger.Logf("television", "spec set to %s", tv.SpecID())
	return nil
}

// Reset the television to an initial state, retaining the resolved
// specification and any added renderers and mixers.
func (tv *Television) Reset() {
	tv.frameNum = 0
	tv.scanline = 0
	tv.pendingFrame = false
	tv.frameInfo = NewFrameInfo(tv.spec)
	tv.signals = make([]uint8, tv.spec.ScanlinesTotal*specification.ClksVisible)
}

// Frame returns the frame count since the last reset.
func (tv *Television) Frame() int {
	return tv.frameNum
}

// Scanline returns the current scanline. The value has wrapped to zero when
// a frame boundary has just been crossed.
func (tv *Television) Scanline() int {
	return tv.scanline
}

// FramePending returns true if a completed frame is waiting to be rendered.
// The flag is cleared by the first scanline of the next frame.
func (tv *Television) FramePending() bool {
	return tv.pendingFrame
}

// Signals returns the current frame of colour signals. The slice is owned by
// the television and is rewritten as the next frame is generated.
func (tv *Television) Signals() []uint8 {
	return tv.signals
}

// FrameInfo returns information about the current frame.
func (tv *Television) FrameInfo() FrameInfo {
	return tv.frameInfo
}

// NewScanline accepts the colour signals for the current scanline and
// advances the scanline counter. Crossing the frame boundary notifies all
// registered renderers.
func (tv *Television) NewScanline(row []uint8) error {
	if len(row) != specification.ClksVisible {
		return curated.Errorf("television: scanline of %d signals", len(row))
	}

	tv.pendingFrame = false

	copy(tv.signals[tv.scanline*specification.ClksVisible:], row)
	tv.scanline++

	if tv.scanline >= tv.spec.ScanlinesTotal {
		tv.scanline = 0
		tv.frameNum++
		tv.pendingFrame = true
		return tv.newFrame()
	}

	return nil
}

func (tv *Television) newFrame() error {
	tv.frameInfo.FrameNum = tv.frameNum
	tv.frameInfo.Stable = tv.frameNum >= stabilityThreshold

	for _, r := range tv.renderers {
		if err := r.NewFrame(tv.frameInfo); err != nil {
			return curated.Errorf("television: %v", err)
		}
		if err := r.SetPixels(tv.signals); err != nil {
			return curated.Errorf("television: %v", err)
		}
	}

	return nil
}

// MixAudio forwards generated audio samples to all registered mixers.
func (tv *Television) MixAudio(samples []int16) error {
	for _, m := range tv.mixers {
		if err := m.SetAudio(samples); err != nil {
			return curated.Errorf("television: %v", err)
		}
	}
	return nil
}

// End gently closes all attached renderers and mixers. The television should
// be considered unusable afterwards.
func (tv *Television) End() error {
	var rerr error
	for _, r := range tv.renderers {
		if err := r.EndRendering(); err != nil {
			rerr = err
		}
	}
	for _, m := range tv.mixers {
		if err := m.EndMixing(); err != nil {
			rerr = err
		}
	}
	return rerr
}

// State is the opaque result of the Snapshot() function.
type State struct {
	specID   string
	frameNum int
	scanline int
}

// Snapshot makes a copy of the television state. The signal buffer is not
// part of the state: it is fully rewritten in the course of generating the
// frame that follows any restore.
func (tv *Television) Snapshot() *State {
	return &State{
		specID:   tv.SpecID(),
		frameNum: tv.frameNum,
		scanline: tv.scanline,
	}
}

// RestoreSnapshot copies a previously snapshotted state back into the
// television.
func (tv *Television) RestoreSnapshot(s *State) error {
	if s == nil {
		panic("television: cannot restore a nil state")
	}
	if err := tv.SetSpec(s.specID); err != nil {
		return err
	}
	tv.frameNum = s.frameNum
	tv.scanline = s.scanline
	tv.frameInfo.FrameNum = s.frameNum
	tv.frameInfo.Stable = s.frameNum >= stabilityThreshold
	return nil
}

// Serialize the television state.
func (tv *Television) Serialize(w *snapshot.Writer) {
	w.PutMarker("tv")
	w.PutString(tv.SpecID())
	w.PutInt(tv.frameNum)
	w.PutInt(tv.scanline)
}

// Deserialize a television state produced by Serialize(). The state is
// returned rather than applied; use RestoreSnapshot() to commit it.
func DeserializeState(r *snapshot.Reader) (*State, error) {
	r.GetMarker("tv")
	s := &State{
		specID:   r.GetString(),
		frameNum: r.GetInt(),
		scanline: r.GetInt(),
	}
	if err := r.Error(); err != nil {
		return nil, err
	}
	spec, ok := specification.SearchSpec(s.specID)
	if !ok {
		return nil, curated.Errorf("television: unsupported spec: %s", s.specID)
	}
	if s.frameNum < 0 || s.scanline < 0 || s.scanline >= spec.ScanlinesTotal {
		return nil, curated.Errorf("television: malformed state")
	}
	return s, nil
}
