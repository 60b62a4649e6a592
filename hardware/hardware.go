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

// Package hardware assembles the components of the machine: the TIA, the
// RIOT, the cartridge and the television they signal to.
//
// The machine steps at scanline resolution. Each call to AdvanceScanline()
// runs the display kernel for one line, steps the RIOT and has the TIA
// produce one scanline of video and audio. The display kernel is a
// deterministic function of the cartridge content and the machine state, so
// identical machines stepped identically produce identical frames.
package hardware

import (
	"fmt"

	"github.com/ewenb/ember2600/cartridge"
	"github.com/ewenb/ember2600/curated"
	"github.com/ewenb/ember2600/hardware/riot"
	"github.com/ewenb/ember2600/hardware/television"
	"github.com/ewenb/ember2600/hardware/tia"
	"github.com/ewenb/ember2600/logger"
	"github.com/ewenb/ember2600/snapshot"
	"github.com/ewenb/ember2600/userinput"
)

// VCS struct is the main container for the emulated components of the
// machine.
type VCS struct {
	// the television the machine is connected to. the television is not
	// part of the machine and is never replaced
	TV *television.Television

	TIA  *tia.TIA
	RIOT *riot.RIOT
	Cart *cartridge.Cartridge
}

// NewVCS creates a new machine connected to the supplied television. A
// cartridge must be attached before the machine can be stepped.
func NewVCS(tv *television.Television) *VCS {
	return &VCS{
		TV:   tv,
		TIA:  tia.NewTIA(tv),
		RIOT: riot.NewRIOT(),
	}
}

func (vcs *VCS) String() string {
	return fmt.Sprintf("VCS: %s", vcs.TV.String())
}

// AttachCartridge attaches a ROM image to the machine and resets it. If the
// television was asked for automatic format selection the ROM content is
// fingerprinted and the television is switched to the detected format.
func (vcs *VCS) AttachCartridge(image *cartridge.Image, filenameHint string) error {
	cart, err := cartridge.NewCartridge(image, filenameHint)
	if err != nil {
		return err
	}
	vcs.Cart = cart

	if vcs.TV.ReqSpecID() == "AUTO" {
		det := cartridge.FingerprintTVType(image.Data())
		if det == "" {
			det = "NTSC"
		}
		logger.Logf("hardware", "detected TV format: %s", det)
		if err := vcs.TV.SetSpec(det + "*"); err != nil {
			return err
		}
	}

	vcs.Reset()
	return nil
}

// Reset the machine to its power-on state. The attached cartridge and the
// television's resolved format are retained.
func (vcs *VCS) Reset() {
	vcs.TIA.Reset()
	vcs.RIOT = riot.NewRIOT()
	if vcs.Cart != nil {
		vcs.Cart.SwitchBank(0)
	}
	vcs.TV.Reset()
}

// Strobe latches the current state of the input devices into the RIOT ports.
func (vcs *VCS) Strobe(poller userinput.Poller) {
	vcs.RIOT.Ports.Strobe(poller)
}

// AdvanceScanline runs the machine for one scanline. When the scanline is
// the last of the frame the end-of-frame housekeeping runs before the
// function returns, so a caller looping until the television's scanline
// counter wraps sees a fully completed frame.
func (vcs *VCS) AdvanceScanline() error {
	if vcs.Cart == nil {
		return curated.Errorf("hardware: no cartridge attached")
	}

	vcs.kernelLine()
	vcs.RIOT.Step()

	if err := vcs.TIA.Scanline(); err != nil {
		return err
	}

	if vcs.TV.Scanline() == 0 {
		vcs.endOfFrame()
	}

	return nil
}

// Snapshot of the machine at an instant. The television state is included;
// the television itself is not.
type Snapshot struct {
	TV   *television.State
	TIA  *tia.TIA
	RIOT *riot.RIOT
	Cart *cartridge.Cartridge
}

// Snapshot creates a copy of the machine in its current state.
func (vcs *VCS) Snapshot() *Snapshot {
	return &Snapshot{
		TV:   vcs.TV.Snapshot(),
		TIA:  vcs.TIA.Snapshot(),
		RIOT: vcs.RIOT.Snapshot(),
		Cart: vcs.Cart.Snapshot(),
	}
}

// Plumb a previously snapshotted state back into the machine. The snapshot
// itself is left untouched and can be plumbed again.
func (vcs *VCS) Plumb(s *Snapshot) error {
	if s == nil {
		panic("hardware: cannot plumb a nil snapshot")
	}

	if err := vcs.TV.RestoreSnapshot(s.TV); err != nil {
		return err
	}

	vcs.TIA = s.TIA.Snapshot()
	vcs.TIA.Plumb(vcs.TV)
	vcs.RIOT = s.RIOT.Snapshot()
	vcs.Cart = s.Cart.Snapshot()

	return nil
}

// Serialize the machine state.
func (vcs *VCS) Serialize(w *snapshot.Writer) {
	vcs.TV.Serialize(w)
	vcs.RIOT.Serialize(w)
	vcs.TIA.Serialize(w)
	vcs.Cart.Serialize(w)
}

// Deserialize a machine state produced by Serialize(). The machine is only
// changed if the whole of the state parses and validates; on error the
// machine is exactly as it was.
func (vcs *VCS) Deserialize(r *snapshot.Reader, image *cartridge.Image) error {
	tvState, err := television.DeserializeState(r)
	if err != nil {
		return err
	}

	newRIOT, err := riot.Deserialize(r)
	if err != nil {
		return err
	}

	newTIA, err := tia.Deserialize(r, vcs.TV)
	if err != nil {
		return err
	}

	newCart, err := cartridge.Deserialize(r, image)
	if err != nil {
		return err
	}

	if r.Remaining() != 0 {
		return curated.Errorf("hardware: %d bytes of trailing data in state", r.Remaining())
	}

	// the state is good. commit
	if err := vcs.TV.RestoreSnapshot(tvState); err != nil {
		return err
	}
	vcs.RIOT = newRIOT
	vcs.TIA = newTIA
	vcs.Cart = newCart

	return nil
}
