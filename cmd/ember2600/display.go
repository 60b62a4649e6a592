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

package main

import (
	"github.com/ewenb/ember2600/curated"
	"github.com/ewenb/ember2600/emulation"

	"github.com/veandco/go-sdl2/sdl"
)

// display presents the runtime's render surface through an SDL window. The
// texture is reallocated whenever the runtime reports a geometry change.
type display struct {
	rt    *emulation.Runtime
	scale float32

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	width  int
	height int

	// scratch byte buffer for texture uploads
	raw []byte
}

func newDisplay(rt *emulation.Runtime, scale float32) (*display, error) {
	d := &display{
		rt:    rt,
		scale: scale,
	}

	var err error
	d.window, err = sdl.CreateWindow("ember2600",
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		100, 100, sdl.WINDOW_HIDDEN)
	if err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}

	d.renderer, err = sdl.CreateRenderer(d.window, -1,
		sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}

	return d, nil
}

// resize creates the texture for the current render geometry and sizes the
// window to the resolved display aspect ratio.
func (d *display) resize() error {
	d.width = d.rt.RenderWidth()
	d.height = d.rt.RenderHeight()

	if d.texture != nil {
		d.texture.Destroy()
	}

	var err error
	d.texture, err = d.renderer.CreateTexture(sdl.PIXELFORMAT_ARGB8888,
		sdl.TEXTUREACCESS_STREAMING, int32(d.width), int32(d.height))
	if err != nil {
		return curated.Errorf("sdl: %v", err)
	}

	d.raw = make([]byte, d.width*d.height*4)

	winH := int32(float32(d.height) * d.scale)
	winW := int32(float32(winH) * d.rt.DisplayAspectRatio())
	d.window.SetSize(winW, winH)
	d.window.Show()

	return nil
}

// present uploads the render surface and flips the window.
func (d *display) present() error {
	if d.rt.DetectResize() {
		if err := d.resize(); err != nil {
			return err
		}
	}
	if d.texture == nil {
		return nil
	}

	for i, px := range d.rt.Pixels() {
		d.raw[i*4] = byte(px)
		d.raw[i*4+1] = byte(px >> 8)
		d.raw[i*4+2] = byte(px >> 16)
		d.raw[i*4+3] = 0xff
	}

	if err := d.texture.Update(nil, d.raw, d.width*4); err != nil {
		return curated.Errorf("sdl: %v", err)
	}

	d.renderer.Clear()
	d.renderer.Copy(d.texture, nil, nil)
	d.renderer.Present()

	return nil
}

func (d *display) destroy() {
	if d.texture != nil {
		d.texture.Destroy()
	}
	if d.renderer != nil {
		d.renderer.Destroy()
	}
	if d.window != nil {
		d.window.Destroy()
	}
}
