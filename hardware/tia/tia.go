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

// Package tia implements the video and audio generating chip of the machine.
// The emulation works at scanline resolution: each call to Scanline()
// produces a full row of colour signals for the television and two stereo
// pairs of audio samples.
//
// The colour signal for a pixel is the raw value of whichever colour register
// won the priority contest for that pixel (player 0, player 1, playfield,
// background). Renderers map signals to RGB through a palette.
package tia

import (
	"fmt"

	"github.com/ewenb/ember2600/hardware/television"
	"github.com/ewenb/ember2600/hardware/television/specification"
	"github.com/ewenb/ember2600/snapshot"
)

// the TIA write registers used by the emulation.
const (
	regVSYNC  = 0x00
	regVBLANK = 0x01
	regCOLUP0 = 0x06
	regCOLUP1 = 0x07
	regCOLUPF = 0x08
	regCOLUBK = 0x09
	regCTRLPF = 0x0a
	regPF0    = 0x0d
	regPF1    = 0x0e
	regPF2    = 0x0f
	regRESP0  = 0x10
	regRESP1  = 0x11
	regAUDC0  = 0x15
	regAUDC1  = 0x16
	regAUDF0  = 0x17
	regAUDF1  = 0x18
	regAUDV0  = 0x19
	regAUDV1  = 0x1a
	regGRP0   = 0x1b
	regGRP1   = 0x1c
)

// numRegisters is the size of the TIA write register file.
const numRegisters = 0x40

// TIA implements the video and audio chip. Its only connection to the rest of
// the machine is the register file and the television it signals to.
type TIA struct {
	tv *television.Television

	regs [numRegisters]uint8

	// player sprite positions in visible pixels. set through the RESP
	// strobes, which at scanline resolution carry the position in the strobed
	// value rather than in beam timing
	posP0 uint8
	posP1 uint8

	// the horizontal sync counter. at scanline resolution it ticks once per
	// line and seeds the per-line variation of the sprite positions
	hsync polycounter

	Audio *Audio

	// scratch row of colour signals. reused on every call to Scanline()
	row [specification.ClksVisible]uint8
}

// NewTIA is the preferred method of initialisation for the TIA type.
func NewTIA(tv *television.Television) *TIA {
	return &TIA{
		tv:    tv,
		Audio: NewAudio(),
	}
}

func (tia *TIA) String() string {
	return fmt.Sprintf("TIA: hsync=%d", tia.hsync.value())
}

// Poke writes a value to a TIA register. Audio registers are routed to the
// audio generator; writes to addresses outside the register file are
// ignored, mirroring the partial address decoding of the chip.
func (tia *TIA) Poke(reg uint8, data uint8) {
	reg &= numRegisters - 1

	if tia.Audio.ReadMemRegisters(reg, data) {
		return
	}

	switch reg {
	case regRESP0:
		tia.posP0 = data % specification.ClksVisible
	case regRESP1:
		tia.posP1 = data % specification.ClksVisible
	}

	tia.regs[reg] = data
}

// Peek reads a value from a TIA register.
func (tia *TIA) Peek(reg uint8) uint8 {
	return tia.regs[reg&(numRegisters-1)]
}

// Reset the TIA to its power-on state. The connected television is untouched.
func (tia *TIA) Reset() {
	tia.regs = [numRegisters]uint8{}
	tia.posP0 = 0
	tia.posP1 = 0
	tia.hsync.reset()
	tia.Audio = NewAudio()
}

// Scanline generates one scanline of video and audio: the colour row is sent
// to the television, which advances its scanline counter, and the audio
// samples are queued and forwarded to the television's mixers.
func (tia *TIA) Scanline() error {
	tia.hsync.tick()
	tia.generateRow()

	if err := tia.tv.NewScanline(tia.row[:]); err != nil {
		return err
	}

	return tia.tv.MixAudio(tia.Audio.scanline())
}

// generateRow fills the scratch row with colour signals from the playfield,
// player and colour registers.
func (tia *TIA) generateRow() {
	blank := tia.regs[regVBLANK]&0x02 == 0x02

	ctrlpf := tia.regs[regCTRLPF]
	reflect := ctrlpf&0x01 == 0x01
	score := ctrlpf&0x02 == 0x02

	for x := 0; x < specification.ClksVisible; x++ {
		if blank {
			tia.row[x] = 0
			continue
		}

		sig := tia.regs[regCOLUBK]

		if tia.playfieldAt(x, reflect) {
			switch {
			case score && x < specification.ClksVisible/2:
				sig = tia.regs[regCOLUP0]
			case score:
				sig = tia.regs[regCOLUP1]
			default:
				sig = tia.regs[regCOLUPF]
			}
		}

		// players have priority over the playfield
		if tia.playerAt(x, tia.posP1, tia.regs[regGRP1]) {
			sig = tia.regs[regCOLUP1]
		}
		if tia.playerAt(x, tia.posP0, tia.regs[regGRP0]) {
			sig = tia.regs[regCOLUP0]
		}

		tia.row[x] = sig
	}
}

// playfieldAt returns true if the playfield is lit at visible pixel x. The
// playfield is 20 bits per half-screen, each bit four pixels wide; the right
// half either repeats or reflects the left.
func (tia *TIA) playfieldAt(x int, reflect bool) bool {
	half := x / (specification.ClksVisible / 2)
	bit := (x % (specification.ClksVisible / 2)) / 4

	if half == 1 && reflect {
		bit = 19 - bit
	}

	// PF0 supplies bits 0-3 (from its high nibble, low bit first), PF1 bits
	// 4-11 (high bit first) and PF2 bits 12-19 (low bit first)
	switch {
	case bit < 4:
		return tia.regs[regPF0]>>(4+bit)&0x01 == 0x01
	case bit < 12:
		return tia.regs[regPF1]>>(11-bit)&0x01 == 0x01
	}
	return tia.regs[regPF2]>>(bit-12)&0x01 == 0x01
}

// playerAt returns true if the 8-bit player sprite positioned at pos is lit
// at visible pixel x.
func (tia *TIA) playerAt(x int, pos uint8, grp uint8) bool {
	d := x - int(pos)
	if d < 0 || d > 7 {
		return false
	}
	return grp>>(7-d)&0x01 == 0x01
}

// Snapshot creates a copy of the TIA in its current state. The television
// reference is retained: use Plumb() to point a restored snapshot at a
// different television.
func (tia *TIA) Snapshot() *TIA {
	n := *tia
	n.Audio = tia.Audio.Snapshot()
	return &n
}

// Plumb a previously snapshotted TIA into the supplied television.
func (tia *TIA) Plumb(tv *television.Television) {
	tia.tv = tv
}

// Serialize the TIA state. The audio queue is transient and not serialised.
func (tia *TIA) Serialize(w *snapshot.Writer) {
	w.PutMarker("tia")
	w.PutBytes(tia.regs[:])
	w.PutByte(tia.posP0)
	w.PutByte(tia.posP1)
	w.PutInt(tia.hsync.idx)
	tia.Audio.serialize(w)
}

// Deserialize a TIA state produced by Serialize(), connecting it to the
// supplied television.
func Deserialize(r *snapshot.Reader, tv *television.Television) (*TIA, error) {
	r.GetMarker("tia")

	tia := NewTIA(tv)
	r.GetBytes(tia.regs[:])
	tia.posP0 = r.GetByte()
	tia.posP1 = r.GetByte()
	tia.hsync.idx = r.GetInt()
	tia.Audio.deserialize(r)

	if err := r.Error(); err != nil {
		return nil, err
	}
	if tia.hsync.idx < 0 || tia.hsync.idx >= polycounterLen {
		tia.hsync.reset()
	}

	return tia, nil
}
