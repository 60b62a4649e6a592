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

// Package specification contains the definitions of the television standards
// supported by the emulation: NTSC, PAL and SECAM, plus the crossed 50/60Hz
// variants found on some consoles and conversions (NTSC50, PAL60, SECAM60).
//
// A crossed variant takes its colour palette from one standard and its frame
// geometry and refresh rate from the other. PAL60, for example, is PAL colour
// over a 262 scanline, 60Hz frame.
package specification

import "strings"

// From the Stella Programmer's Guide:
//
// "Each scan lines starts with 68 clock counts of horizontal blank (not seen
// on the TV screen) followed by 160 clock counts to fully scan one line of TV
// picture."
//
// Horizontal clock counts are the same for every TV specification.
const (
	ClksHBlank   = 68
	ClksVisible  = 160
	ClksScanline = 228
)

// Frequencies (Mhz) used when deriving the shape of an output pixel. The
// square pixel clock is the rate a display device would need to sample at for
// square pixels; the colour burst is the colour subcarrier frequency of the
// standard.
const (
	NTSCSquarePixelClock = 6.1363635
	NTSCColourBurst      = 3.579545454
	PALSquarePixelClock  = 7.375
	PALColourBurst       = 4.43361875
)

// Spec is used to define the television standards.
type Spec struct {
	ID string

	// the number of scanlines the 2600 Programmer's Guide recommends for the
	// different portions of the screen. the 262 scanline total for NTSC
	// breaks down as 3 vsync, 37 vblank, 192 picture and 30 overscan
	ScanlinesVSync    int
	ScanlinesVBlank   int
	ScanlinesVisible  int
	ScanlinesOverscan int

	// the total number of scanlines is the sum of the four portions above
	ScanlinesTotal int

	// the scanline at which the visible portion of the screen begins and
	// ends. VisibleTop = VSync + VBlank. VisibleBottom = Total - Overscan
	VisibleTop    int
	VisibleBottom int

	// the number of frames per second required by the specification
	RefreshRate float32

	// which colour palette the specification uses: "NTSC", "PAL" or "SECAM"
	Colours string
}

func define(id string, vsync, vblank, visible, overscan int, hz float32, colours string) Spec {
	spec := Spec{
		ID:                id,
		ScanlinesVSync:    vsync,
		ScanlinesVBlank:   vblank,
		ScanlinesVisible:  visible,
		ScanlinesOverscan: overscan,
		RefreshRate:       hz,
		Colours:           colours,
	}
	spec.ScanlinesTotal = vsync + vblank + visible + overscan
	spec.VisibleTop = vsync + vblank
	spec.VisibleBottom = spec.ScanlinesTotal - overscan
	return spec
}

// The supported television specifications. Crossed variants share the
// geometry of one standard and the colours of another.
var (
	SpecNTSC    = define("NTSC", 3, 37, 192, 30, 60.0, "NTSC")
	SpecPAL     = define("PAL", 3, 45, 228, 36, 50.0, "PAL")
	SpecSECAM   = define("SECAM", 3, 45, 228, 36, 50.0, "SECAM")
	SpecNTSC50  = define("NTSC50", 3, 45, 228, 36, 50.0, "NTSC")
	SpecPAL60   = define("PAL60", 3, 37, 192, 30, 60.0, "PAL")
	SpecSECAM60 = define("SECAM60", 3, 37, 192, 30, 60.0, "SECAM")
)

// SpecList is the list of format names that may be requested, in the order
// the format selector numbers them. AUTO asks for detection from the loaded
// cartridge.
var SpecList = []string{"AUTO", "NTSC", "PAL", "SECAM", "NTSC50", "PAL60", "SECAM60"}

// process-wide lookup of format name to specification. built once at startup
// and never mutated.
var specs map[string]Spec

func init() {
	specs = make(map[string]Spec)
	for _, s := range []Spec{SpecNTSC, SpecPAL, SpecSECAM, SpecNTSC50, SpecPAL60, SpecSECAM60} {
		specs[s.ID] = s
	}
}

// SearchSpec returns the specification for the given format name. Names are
// case-insensitive and a trailing '*', marking an auto-detected format, is
// accepted. The boolean return value is false if the name is not recognised
// (including "AUTO", which names no specification on its own).
func SearchSpec(id string) (Spec, bool) {
	id = strings.ToUpper(strings.TrimSuffix(strings.TrimSpace(id), "*"))
	spec, ok := specs[id]
	return spec, ok
}

// NTSCFamily returns true if the format name refers to a 60Hz NTSC-derived
// variant: NTSC itself, PAL60 and SECAM60, including their auto-detected
// tagged forms. Note that NTSC50 is not in the NTSC family: it runs at the
// PAL rate.
func NTSCFamily(id string) bool {
	id = strings.TrimSuffix(id, "*")
	return id == "NTSC" || id == "PAL60" || id == "SECAM60"
}
