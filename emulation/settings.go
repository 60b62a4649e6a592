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
	"github.com/ewenb/ember2600/hardware/television/specification"
	"github.com/ewenb/ember2600/prefs"
)

// The configuration setters accept small integer selectors, which index into
// the lists below. A selector outside a list quietly retains the prior value:
// a frontend built against a newer enumeration keeps working against this
// core, it just doesn't get the newer options.
var (
	formatList   = specification.SpecList
	filterList   = []string{"none", "composite", "svideo", "rgb"}
	paletteList  = []string{"standard", "z26", "custom"}
	phosphorList = []string{"byrom", "never", "always"}
	stereoList   = []string{"byrom", "mono", "stereo"}
)

// Settings are the staged configuration values of the runtime. Every value
// survives machine destruction and is reapplied at the next creation.
type Settings struct {
	Format        prefs.String
	Filter        prefs.String
	Palette       prefs.String
	Phosphor      prefs.String
	PhosphorBlend prefs.Int
	Stereo        prefs.String
	AspectNTSC    prefs.Int
	AspectPAL     prefs.Int
}

// newSettings registers the configuration values with the store and applies
// the defaults.
func newSettings(store *prefs.Store) (*Settings, error) {
	set := &Settings{}

	for _, reg := range []struct {
		key string
		p   interface {
			Set(prefs.Value) error
			Get() prefs.Value
			String() string
		}
		def prefs.Value
	}{
		{"console.format", &set.Format, "AUTO"},
		{"video.filter", &set.Filter, "none"},
		{"video.palette", &set.Palette, "standard"},
		{"video.phosphor", &set.Phosphor, "byrom"},
		{"video.phosphorblend", &set.PhosphorBlend, 77},
		{"audio.stereo", &set.Stereo, "byrom"},
		{"video.aspect.ntsc", &set.AspectNTSC, 0},
		{"video.aspect.pal", &set.AspectPAL, 0},
	} {
		if err := reg.p.Set(reg.def); err != nil {
			return nil, err
		}
		if err := store.Register(reg.key, reg.p); err != nil {
			return nil, err
		}
	}

	return set, nil
}
