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

import "github.com/ewenb/ember2600/logger"

// The configuration setters. Every setter records its value unconditionally,
// so the value survives Destroy() and is applied by the next Create(). When
// the lifecycle is Created the video setters additionally push the value
// into the live pipeline, taking effect with the next RunFrame().
//
// A selector outside its list is silently ignored and the prior value
// retained. No error is raised: the configuration boundary favours
// compatibility over strictness. RunFrame() and the state operations remain
// strict.

// selectorName returns the name for sel from list, or "" for an unknown
// selector.
func selectorName(list []string, sel int) string {
	if sel < 0 || sel >= len(list) {
		return ""
	}
	return list[sel]
}

// pushVideo reconfigures the live video pipeline from the staged settings.
// a no-op outside the Created state.
func (r *Runtime) pushVideo() {
	if r.lifecycle != Created {
		return
	}
	r.scr.setConfig(r.tv.Spec().Colours, r.settings)
}

// SetConsoleFormat selects the television format by its position in the
// format list: AUTO, NTSC, PAL, SECAM, NTSC50, PAL60, SECAM60. The format is
// resolved against the loaded ROM at machine creation, so a change here only
// takes effect at the next Create().
func (r *Runtime) SetConsoleFormat(sel int) {
	v := selectorName(formatList, sel)
	if v == "" {
		return
	}
	r.settings.Format.Set(v)
	if r.lifecycle == Created {
		logger.Logf("emulation", "format %s staged for next create", v)
	}
}

// SetVideoFilter selects the post-processing filter: none, composite,
// svideo, rgb. The filtered modes normalise pixel geometry, which the aspect
// ratio resolver accounts for.
func (r *Runtime) SetVideoFilter(sel int) {
	v := selectorName(filterList, sel)
	if v == "" {
		return
	}
	r.settings.Filter.Set(v)
	r.pushVideo()
}

// SetVideoPalette selects the colour palette style: standard, z26, custom.
func (r *Runtime) SetVideoPalette(sel int) {
	v := selectorName(paletteList, sel)
	if v == "" {
		return
	}
	r.settings.Palette.Set(v)
	r.pushVideo()
}

// SetVideoPhosphor selects the phosphor afterglow mode (byrom, never,
// always) and the blend level (0-100). An out-of-range blend leaves the
// blend level unchanged; the mode is still applied, and vice versa.
func (r *Runtime) SetVideoPhosphor(sel int, blend int) {
	if v := selectorName(phosphorList, sel); v != "" {
		r.settings.Phosphor.Set(v)
	}
	if blend >= 0 && blend <= 100 {
		r.settings.PhosphorBlend.Set(blend)
	}
	r.pushVideo()
}

// SetAudioStereo selects how the machine's two sound channels are mixed:
// byrom, mono, stereo.
func (r *Runtime) SetAudioStereo(sel int) {
	v := selectorName(stereoList, sel)
	if v == "" {
		return
	}
	// takes effect at the next frame's drain. nothing to push
	r.settings.Stereo.Set(v)
}

// SetVideoAspectNTSC sets the pixel aspect ratio override, in percent, used
// when an NTSC-family format is active. Zero restores the computed aspect;
// negative values are ignored.
func (r *Runtime) SetVideoAspectNTSC(percent int) {
	if percent < 0 {
		return
	}
	r.settings.AspectNTSC.Set(percent)
}

// SetVideoAspectPAL sets the pixel aspect ratio override, in percent, used
// when a PAL-family format is active. Zero restores the computed aspect;
// negative values are ignored.
func (r *Runtime) SetVideoAspectPAL(percent int) {
	if percent < 0 {
		return
	}
	r.settings.AspectPAL.Set(percent)
}
