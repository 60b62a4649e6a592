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

package emulation

import (
	"github.com/ewenb/ember2600/hardware/television"
	"github.com/ewenb/ember2600/hardware/television/specification"
)

// screen is the runtime-owned render surface. Pixels are packed 0x00RRGGBB.
// Output pixels are double width: the surface is 2×ClksVisible wide and one
// row per visible scanline tall.
//
// The pixel slice is only reallocated when the frame geometry changes, so a
// handle returned to the caller stays valid until the next format change or
// machine destruction.
type screen struct {
	spec   specification.Spec
	width  int
	height int
	pixels []uint32

	// previous frame, kept for phosphor blending
	prev []uint32

	palette  specification.Palette
	phosphor bool
	blend    uint32 // percentage
	filter   string

	// the geometry last reported through detectResize
	cacheWidth  int
	cacheHeight int
}

func newScreen() *screen {
	return &screen{
		palette: specification.GetPalette("NTSC", "standard"),
	}
}

// setConfig applies the video configuration for the given colour standard.
// Takes effect at the next render.
func (scr *screen) setConfig(colours string, set *Settings) {
	scr.palette = specification.GetPalette(colours, set.Palette.String())
	scr.filter = set.Filter.String()

	// without a ROM properties database the byrom phosphor mode has nothing
	// to consult and behaves as never
	scr.phosphor = set.Phosphor.String() == "always"
	scr.blend = uint32(set.PhosphorBlend.Get().(int))
	if scr.blend > 100 {
		scr.blend = 100
	}
}

// resize the surface for the given specification. A no-op if the geometry is
// unchanged.
func (scr *screen) resize(spec specification.Spec) {
	w := 2 * specification.ClksVisible
	h := spec.ScanlinesVisible

	scr.spec = spec
	if w == scr.width && h == scr.height {
		return
	}

	scr.width = w
	scr.height = h
	scr.pixels = make([]uint32, w*h)
	scr.prev = make([]uint32, w*h)
}

// detectResize returns true exactly once per geometry change. Repeated calls
// without an intervening change return false.
func (scr *screen) detectResize() bool {
	if scr.width == scr.cacheWidth && scr.height == scr.cacheHeight {
		return false
	}
	scr.cacheWidth = scr.width
	scr.cacheHeight = scr.height
	return true
}

// render the television's pending frame into the surface.
func (scr *screen) render(tv *television.Television) {
	scr.resize(tv.Spec())

	signals := tv.Signals()
	top := scr.spec.VisibleTop

	for y := 0; y < scr.height; y++ {
		row := signals[(top+y)*specification.ClksVisible:]

		var last uint32
		for x := 0; x < specification.ClksVisible; x++ {
			rgb := scr.palette[(row[x]>>1)&0x7f]

			// the filter modes approximate the horizontal smearing of a
			// composite signal
			if scr.filter != "none" {
				rgb = mix(rgb, last)
				last = rgb
			}

			o := y*scr.width + x*2
			if scr.phosphor {
				rgb = scr.afterglow(rgb, scr.prev[o])
			}

			scr.pixels[o] = rgb
			scr.pixels[o+1] = rgb
			scr.prev[o] = rgb
			scr.prev[o+1] = rgb
		}
	}
}

// afterglow blends a pixel with its value from the previous frame: each
// channel is the brighter of the new value and the faded old value.
func (scr *screen) afterglow(cur uint32, prev uint32) uint32 {
	var out uint32
	for _, shift := range []uint32{16, 8, 0} {
		c := cur >> shift & 0xff
		p := (prev >> shift & 0xff) * scr.blend / 100
		if p > c {
			c = p
		}
		out |= c << shift
	}
	return out
}

// mix returns the channel-wise average of two pixels.
func mix(a uint32, b uint32) uint32 {
	var out uint32
	for _, shift := range []uint32{16, 8, 0} {
		out |= ((a>>shift&0xff)+(b>>shift&0xff))/2 << shift
	}
	return out
}
