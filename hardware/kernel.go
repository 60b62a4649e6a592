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

package hardware

// The display kernel. A real program races the beam, rewriting the TIA
// registers on every scanline; the kernel below does the same thing as a
// pure function of the cartridge content, the frame and scanline counters,
// the onboard RAM and the latched input ports. It keeps the machine fully
// deterministic, which is what the save/restore protocol and the regression
// digests lean on.

// TIA write register addresses used by the kernel.
const (
	addrVBLANK = 0x01
	addrCOLUP0 = 0x06
	addrCOLUP1 = 0x07
	addrCOLUPF = 0x08
	addrCOLUBK = 0x09
	addrCTRLPF = 0x0a
	addrPF0    = 0x0d
	addrPF1    = 0x0e
	addrPF2    = 0x0f
	addrRESP0  = 0x10
	addrRESP1  = 0x11
	addrAUDC0  = 0x15
	addrAUDC1  = 0x16
	addrAUDF0  = 0x17
	addrAUDF1  = 0x18
	addrAUDV0  = 0x19
	addrAUDV1  = 0x1a
	addrGRP0   = 0x1b
	addrGRP1   = 0x1c
)

// RAM cells the kernel maintains. programs observe the machine through these
// and through the latched port values alongside them.
const (
	ramFrameLo = 0x00
	ramFrameHi = 0x01
	ramTimer   = 0x02
	ramSWCHA   = 0x03
	ramSWCHB   = 0x04
	ramINPT4   = 0x05
)

// kernelLine rewrites the TIA registers for the current scanline.
func (vcs *VCS) kernelLine() {
	tv := vcs.TV
	spec := tv.Spec()
	sl := tv.Scanline()
	fr := tv.Frame()

	// blank everything outside the visible portion of the frame
	if sl < spec.VisibleTop || sl >= spec.VisibleBottom {
		vcs.TIA.Poke(addrVBLANK, 0x02)
		return
	}
	vcs.TIA.Poke(addrVBLANK, 0x00)

	o := uint16(sl + fr)

	// playfield shape scrolls through the ROM as the frame counter advances
	vcs.TIA.Poke(addrPF0, vcs.Cart.Read(o))
	vcs.TIA.Poke(addrPF1, vcs.Cart.Read(o+1))
	vcs.TIA.Poke(addrPF2, vcs.Cart.Read(o+2))
	vcs.TIA.Poke(addrCTRLPF, vcs.Cart.Read(uint16(fr))&0x03)

	// colours change once per frame
	vcs.TIA.Poke(addrCOLUBK, vcs.Cart.Read(uint16(fr))&0x0e)
	vcs.TIA.Poke(addrCOLUPF, vcs.Cart.Read(uint16(fr)+1))
	vcs.TIA.Poke(addrCOLUP0, vcs.Cart.Read(uint16(fr)+2))
	vcs.TIA.Poke(addrCOLUP1, vcs.Cart.Read(uint16(fr)+3))

	// player sprites track the joysticks: the latched SWCHA nibbles nudge
	// the sprite columns, which is how controller input becomes visible in
	// the frame
	vcs.TIA.Poke(addrGRP0, vcs.RIOT.RAM.Peek(uint8(sl)))
	vcs.TIA.Poke(addrGRP1, vcs.Cart.Read(o+3))
	vcs.TIA.Poke(addrRESP0, uint8(sl)+vcs.RIOT.Ports.SWCHA>>4)
	vcs.TIA.Poke(addrRESP1, uint8(fr)+vcs.RIOT.Ports.SWCHA&0x0f)
}

// endOfFrame runs the once-per-frame housekeeping a program would do in the
// overscan period: update the RAM cells, retune the sound generators and
// switch banks.
func (vcs *VCS) endOfFrame() {
	fr := vcs.TV.Frame()

	ram := vcs.RIOT.RAM
	ram.Poke(ramFrameLo, uint8(fr))
	ram.Poke(ramFrameHi, uint8(fr>>8))
	ram.Poke(ramTimer, vcs.RIOT.Timer.Value)
	ram.Poke(ramSWCHA, vcs.RIOT.Ports.SWCHA)
	ram.Poke(ramSWCHB, vcs.RIOT.Ports.SWCHB)
	ram.Poke(ramINPT4, vcs.RIOT.Ports.INPT4)

	// the soundtrack is driven by ROM content, changing slowly with the
	// frame counter
	o := uint16(fr >> 4)
	vcs.TIA.Poke(addrAUDC0, vcs.Cart.Read(o)&0x0f)
	vcs.TIA.Poke(addrAUDF0, vcs.Cart.Read(o+1)&0x1f)
	vcs.TIA.Poke(addrAUDV0, vcs.Cart.Read(o+2)&0x0f)
	vcs.TIA.Poke(addrAUDC1, vcs.Cart.Read(o+3)&0x0f)
	vcs.TIA.Poke(addrAUDF1, vcs.Cart.Read(o+4)&0x1f)
	vcs.TIA.Poke(addrAUDV1, vcs.Cart.Read(o+5)&0x0f)

	// one bank per frame, round robin
	vcs.Cart.SwitchBank(fr % vcs.Cart.NumBanks())
}
