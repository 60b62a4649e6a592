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

import "github.com/ewenb/ember2600/hardware/television/specification"

// The video timing and format resolver: read-only quantities derived from
// the resolved console format, the aspect overrides and the filter mode.
// Everything here is safe to call in any lifecycle state; before creation
// the staged format stands in for the resolved one.

// activeSpec returns the live machine's specification or, outside the
// Created state, the specification the staged format would resolve to
// (AUTO resolves to NTSC until a ROM has been inspected).
func (r *Runtime) activeSpec() specification.Spec {
	if r.lifecycle == Created {
		return r.tv.Spec()
	}

	if s, ok := specification.SearchSpec(r.settings.Format.String()); ok {
		return s
	}
	return specification.SpecNTSC
}

// activeSpecID is like activeSpec but preserves the auto-detection tag.
func (r *Runtime) activeSpecID() string {
	if r.lifecycle == Created {
		return r.tv.SpecID()
	}

	id := r.settings.Format.String()
	if id == "AUTO" {
		return "NTSC"
	}
	return id
}

// IsNTSCFamily returns true if the active format is one of the 60Hz
// NTSC-derived variants: NTSC, PAL60, SECAM60, including their
// auto-detected tagged forms.
func (r *Runtime) IsNTSCFamily() bool {
	return specification.NTSCFamily(r.activeSpecID())
}

// PixelAspectRatio returns the shape of an output pixel.
//
// A nonzero user override for the active family wins outright, filtered or
// not. Without an override, filtered video is square because the filter
// normalises geometry itself; otherwise the aspect is derived from the ratio
// of the standard's square pixel clock to its colour subcarrier frequency,
// halved because output pixels are double width. The PAL subcarrier is
// scaled by 4/5 to account for the standard's five-line colour sequence.
func (r *Runtime) PixelAspectRatio() float32 {
	if r.IsNTSCFamily() {
		if ov := r.settings.AspectNTSC.Get().(int); ov > 0 {
			return float32(ov) / 100
		}
		if r.settings.Filter.String() != "none" {
			return 1.0
		}
		return (specification.NTSCSquarePixelClock / specification.NTSCColourBurst) / 2
	}

	if ov := r.settings.AspectPAL.Get().(int); ov > 0 {
		return float32(ov) / 100
	}
	if r.settings.Filter.String() != "none" {
		return 1.0
	}
	return (specification.PALSquarePixelClock / (specification.PALColourBurst * 4 / 5)) / 2
}

// DisplayAspectRatio returns the aspect ratio of the full display: the
// doubled active width scaled by the pixel aspect, over the output height.
func (r *Runtime) DisplayAspectRatio() float32 {
	h := r.scr.height
	if h == 0 {
		h = r.activeSpec().ScanlinesVisible
	}
	return 2 * specification.ClksVisible * r.PixelAspectRatio() / float32(h)
}

// RefreshRate returns the refresh rate of the active format, in frames per
// second. The caller is responsible for pacing RunFrame() calls to it.
func (r *Runtime) RefreshRate() float32 {
	return r.activeSpec().RefreshRate
}

// DetectResize compares the render surface geometry against the last
// geometry this function reported. It returns true, and updates its cache,
// exactly once per change: polling without an intervening change returns
// false. Callers use it to decide when to reallocate presentation surfaces.
func (r *Runtime) DetectResize() bool {
	return r.scr.detectResize()
}
