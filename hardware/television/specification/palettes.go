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

package specification

import "math"

// A palette maps the 7-bit colour signal (hue in the high nibble, luminance
// in bits 1-3) to a packed 0x00RRGGBB value.
type Palette [128]uint32

// The palettes are generated rather than stored as literal tables. The
// generator models the hue wheel of each standard well enough for display
// purposes: NTSC distributes fifteen hues around the colour wheel, PAL
// alternates hue pairs and drops to fewer distinct hues, SECAM ignores the
// hue nibble entirely and maps luminance to a fixed set of eight colours.
//
// This is an approximation. A full colour model is out of scope for a
// headless core; frontends that care can substitute their own mapping of the
// colour signal.

func generate(colours string, saturation float64, gamma float64) Palette {
	var p Palette

	// the eight SECAM colours, indexed by luminance
	secam := [8]uint32{0x000000, 0x2121ff, 0xf03c79, 0xff50ff, 0x7fff00, 0x7fffff, 0xffff3f, 0xffffff}

	for i := 0; i < 128; i++ {
		hue := (i >> 3) & 0x0f
		lum := i & 0x07

		if colours == "SECAM" {
			p[i] = secam[lum]
			continue
		}

		// luminance ramp with gamma adjustment
		y := math.Pow(float64(lum)/7.0, gamma)

		var r, g, b float64

		if hue == 0 {
			// hue zero is the grey ramp
			r, g, b = y, y, y
		} else {
			// phase angle of the hue on the colour wheel. PAL hues are
			// rotated relative to NTSC and come in alternating pairs
			var phase float64
			switch colours {
			case "PAL":
				phase = (float64(hue&0x0e) / 14.0) * 2 * math.Pi
				if hue&0x01 == 0x01 {
					phase = -phase
				}
			default:
				phase = (float64(hue-1)/15.0)*2*math.Pi + math.Pi/3
			}

			c := saturation * (0.35 + 0.25*y)
			r = y + c*math.Cos(phase)
			g = y - c*0.5*math.Cos(phase) - c*0.6*math.Sin(phase)
			b = y - c*0.4*math.Cos(phase) + c*1.1*math.Sin(phase)
		}

		p[i] = pack(r, g, b)
	}

	return p
}

func pack(r, g, b float64) uint32 {
	clamp := func(v float64) uint32 {
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 255
		}
		return uint32(v * 255)
	}
	return clamp(r)<<16 | clamp(g)<<8 | clamp(b)
}

// the generated palettes. initialised at startup and never mutated.
var (
	paletteNTSC     Palette
	palettePAL      Palette
	paletteSECAM    Palette
	paletteNTSCZ26  Palette
	palettePALZ26   Palette
	paletteNTSCUser Palette
	palettePALUser  Palette
)

func init() {
	paletteNTSC = generate("NTSC", 0.5, 0.9)
	palettePAL = generate("PAL", 0.5, 0.9)
	paletteSECAM = generate("SECAM", 0.5, 0.9)

	// the z26 style is flatter and less saturated than the standard palette
	paletteNTSCZ26 = generate("NTSC", 0.38, 1.0)
	palettePALZ26 = generate("PAL", 0.38, 1.0)

	// the "custom" style boosts saturation
	paletteNTSCUser = generate("NTSC", 0.62, 0.85)
	palettePALUser = generate("PAL", 0.62, 0.85)
}

// GetPalette returns the palette for the named colour standard ("NTSC",
// "PAL" or "SECAM", normally taken from the Colours field of a Spec) in the
// requested style. Recognised styles are "standard", "z26" and "custom";
// anything else falls back to the standard style. SECAM has a single style.
func GetPalette(colours string, style string) Palette {
	if colours == "SECAM" {
		return paletteSECAM
	}

	pal := colours == "PAL"

	switch style {
	case "z26":
		if pal {
			return palettePALZ26
		}
		return paletteNTSCZ26
	case "custom":
		if pal {
			return palettePALUser
		}
		return paletteNTSCUser
	}

	if pal {
		return palettePAL
	}
	return paletteNTSC
}
