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

package tia

import "github.com/ewenb/ember2600/snapshot"

// The TIA produces two audio samples per scanline, one for each phase of the
// horizontal sync counter. At 262 scanlines and 60 frames per second that
// gives the NTSC sample frequency below; the PAL geometry arrives at almost
// exactly the same rate.
const (
	SampleFreq         = 31440
	SamplePairsPerLine = 2
)

// AudioQueueCapacity is the capacity of the internal sample queue, in
// individual (mono) samples. A whole frame of stereo pairs fits with room to
// spare, so a consumer that drains once per frame never loses samples.
const AudioQueueCapacity = 2048

// volume lookup. a 4-bit AUDV value maps to a signed 16-bit amplitude, scaled
// so that both channels at full volume stay clear of clipping.
func sampleLevel(vol uint8) int16 {
	return int16(vol&0x0f) << 10
}

// audioChannel is one of the TIA's two sound generators.
type audioChannel struct {
	// the audio registers. AUDC selects the waveform, AUDF divides the clock,
	// AUDV sets the volume
	regControl uint8
	regFreq    uint8
	regVolume  uint8

	// frequency divider counter
	divCt uint8

	// positions in the 4-bit and 5-bit polynomial sequences
	poly4ct int
	poly5ct int

	// current output level of the waveform, 0 or 1
	level uint8
}

// the polynomial bit sequences the waveform generators walk through. taken
// from the silicon: a 4-bit and a 5-bit LFSR.
var poly4bit = [15]uint8{1, 1, 0, 1, 1, 1, 0, 0, 0, 0, 1, 0, 1, 0, 0}
var poly5bit = [31]uint8{0, 0, 1, 0, 1, 1, 0, 0, 1, 1, 1, 1, 1, 0, 0, 0, 1, 1, 0, 1, 1, 1, 0, 1, 0, 1, 0, 0, 0, 0, 1}

// div31 is the 31-clock on/off pattern used by the pure low-frequency tones.
var div31 = [31]uint8{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}

// tick advances the waveform generator one audio clock and returns the
// channel's sample.
func (ch *audioChannel) tick() int16 {
	ch.divCt++
	if ch.divCt <= ch.regFreq&0x1f {
		return ch.sample()
	}
	ch.divCt = 0

	ch.poly4ct = (ch.poly4ct + 1) % len(poly4bit)
	ch.poly5ct = (ch.poly5ct + 1) % len(poly5bit)

	switch ch.regControl & 0x0f {
	case 0x00, 0x0b:
		// volume-only. the program sets the output level directly through AUDV
		ch.level = 1
	case 0x01:
		ch.level = poly4bit[ch.poly4ct]
	case 0x02:
		ch.level = div31[ch.poly5ct] & poly4bit[ch.poly4ct]
	case 0x03:
		if poly5bit[ch.poly5ct] == 1 {
			ch.level = poly4bit[ch.poly4ct]
		}
	case 0x04, 0x05:
		// pure tone. toggle every clock
		ch.level ^= 0x01
	case 0x06, 0x0a:
		ch.level = div31[ch.poly5ct]
	case 0x07, 0x09:
		ch.level = poly5bit[ch.poly5ct]
	case 0x08:
		// both polynomials together approximates the 9-bit noise generator
		ch.level = poly5bit[ch.poly5ct] ^ poly4bit[ch.poly4ct]
	case 0x0c, 0x0d:
		// pure tone at a third of the rate
		if ch.poly5ct%3 == 0 {
			ch.level ^= 0x01
		}
	case 0x0e:
		ch.level = div31[ch.poly5ct]
	case 0x0f:
		ch.level = poly5bit[ch.poly5ct]
	}

	return ch.sample()
}

func (ch *audioChannel) sample() int16 {
	if ch.level == 0 {
		return 0
	}
	return sampleLevel(ch.regVolume)
}

func (ch *audioChannel) serialize(w *snapshot.Writer) {
	w.PutByte(ch.regControl)
	w.PutByte(ch.regFreq)
	w.PutByte(ch.regVolume)
	w.PutByte(ch.divCt)
	w.PutInt(ch.poly4ct)
	w.PutInt(ch.poly5ct)
	w.PutByte(ch.level)
}

func (ch *audioChannel) deserialize(r *snapshot.Reader) {
	ch.regControl = r.GetByte()
	ch.regFreq = r.GetByte()
	ch.regVolume = r.GetByte()
	ch.divCt = r.GetByte()
	ch.poly4ct = r.GetInt()
	ch.poly5ct = r.GetInt()
	ch.level = r.GetByte()
}

// Audio is the sound-generating half of the TIA: two independent channels
// feeding a bounded sample queue.
//
// The queue decouples sample generation from sample consumption. The TIA
// pushes as it steps through the frame; the frame driver drains once per
// frame. Drain() never blocks and the queue never grows: when a consumer
// falls behind the oldest samples are dropped.
type Audio struct {
	channel0 audioChannel
	channel1 audioChannel

	queue [AudioQueueCapacity]int16
	head  int
	tail  int
	count int

	// scratch buffer for the samples generated by one scanline. reused on
	// every call to scanline()
	lineBuf [SamplePairsPerLine * 2]int16
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	return &Audio{}
}

// ReadMemRegisters checks the TIA register addressed by reg and updates the
// audio registers accordingly. Returns true if the register was an audio
// register.
func (au *Audio) ReadMemRegisters(reg uint8, data uint8) bool {
	switch reg {
	case regAUDC0:
		au.channel0.regControl = data & 0x0f
	case regAUDC1:
		au.channel1.regControl = data & 0x0f
	case regAUDF0:
		au.channel0.regFreq = data & 0x1f
	case regAUDF1:
		au.channel1.regFreq = data & 0x1f
	case regAUDV0:
		au.channel0.regVolume = data & 0x0f
	case regAUDV1:
		au.channel1.regVolume = data & 0x0f
	default:
		return false
	}
	return true
}

// scanline generates the samples for one scanline, pushes them onto the queue
// and returns them. Channel 0 is the left of each stereo pair and channel 1
// the right. The returned slice is reused on the next call.
func (au *Audio) scanline() []int16 {
	for i := 0; i < SamplePairsPerLine; i++ {
		au.lineBuf[i*2] = au.channel0.tick()
		au.lineBuf[i*2+1] = au.channel1.tick()
	}

	for _, s := range au.lineBuf {
		au.push(s)
	}

	return au.lineBuf[:]
}

func (au *Audio) push(s int16) {
	if au.count == AudioQueueCapacity {
		// drop the oldest sample
		au.head = (au.head + 1) % AudioQueueCapacity
		au.count--
	}
	au.queue[au.tail] = s
	au.tail = (au.tail + 1) % AudioQueueCapacity
	au.count++
}

// Drain copies queued samples into buf, oldest first, and returns the number
// copied. It never blocks and never copies more than len(buf) samples; if the
// queue is empty it returns zero.
func (au *Audio) Drain(buf []int16) int {
	n := au.count
	if n > len(buf) {
		n = len(buf)
	}

	for i := 0; i < n; i++ {
		buf[i] = au.queue[au.head]
		au.head = (au.head + 1) % AudioQueueCapacity
	}
	au.count -= n

	return n
}

// Queued returns the number of samples waiting in the queue.
func (au *Audio) Queued() int {
	return au.count
}

// Snapshot creates a copy of the audio channels in their current state. The
// sample queue is transient and not part of the snapshot.
func (au *Audio) Snapshot() *Audio {
	n := &Audio{
		channel0: au.channel0,
		channel1: au.channel1,
	}
	return n
}

func (au *Audio) serialize(w *snapshot.Writer) {
	au.channel0.serialize(w)
	au.channel1.serialize(w)
}

func (au *Audio) deserialize(r *snapshot.Reader) {
	au.channel0.deserialize(r)
	au.channel1.deserialize(r)
	au.head = 0
	au.tail = 0
	au.count = 0
}
