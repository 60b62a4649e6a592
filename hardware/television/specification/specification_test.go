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

package specification_test

import (
	"testing"

	"github.com/ewenb/ember2600/hardware/television/specification"
	"github.com/ewenb/ember2600/test"
)

func TestGeometry(t *testing.T) {
	test.Equate(t, specification.SpecNTSC.ScanlinesTotal, 262)
	test.Equate(t, specification.SpecNTSC.VisibleTop, 40)
	test.Equate(t, specification.SpecNTSC.VisibleBottom, 232)

	test.Equate(t, specification.SpecPAL.ScanlinesTotal, 312)
	test.Equate(t, specification.SpecPAL.VisibleTop, 48)
	test.Equate(t, specification.SpecPAL.VisibleBottom, 276)

	// the crossed variants take geometry from one standard and colours from
	// the other
	test.Equate(t, specification.SpecPAL60.ScanlinesTotal, 262)
	test.Equate(t, specification.SpecPAL60.Colours, "PAL")
	test.Equate(t, specification.SpecNTSC50.ScanlinesTotal, 312)
	test.Equate(t, specification.SpecNTSC50.Colours, "NTSC")
	test.Equate(t, specification.SpecSECAM60.ScanlinesTotal, 262)
}

func TestSearchSpec(t *testing.T) {
	s, ok := specification.SearchSpec("ntsc")
	test.ExpectSuccess(t, ok)
	test.Equate(t, s.ID, "NTSC")

	// the auto-detection tag is accepted
	s, ok = specification.SearchSpec("PAL60*")
	test.ExpectSuccess(t, ok)
	test.Equate(t, s.ID, "PAL60")

	// AUTO names no specification on its own
	_, ok = specification.SearchSpec("AUTO")
	test.ExpectFailure(t, ok)

	_, ok = specification.SearchSpec("PAL-M")
	test.ExpectFailure(t, ok)
}

func TestNTSCFamily(t *testing.T) {
	test.ExpectSuccess(t, specification.NTSCFamily("NTSC"))
	test.ExpectSuccess(t, specification.NTSCFamily("NTSC*"))
	test.ExpectSuccess(t, specification.NTSCFamily("PAL60"))
	test.ExpectSuccess(t, specification.NTSCFamily("SECAM60*"))

	test.ExpectFailure(t, specification.NTSCFamily("PAL"))
	test.ExpectFailure(t, specification.NTSCFamily("SECAM"))

	// NTSC50 runs at the PAL rate despite the name
	test.ExpectFailure(t, specification.NTSCFamily("NTSC50"))
}

func TestPalettes(t *testing.T) {
	ntsc := specification.GetPalette("NTSC", "standard")
	z26 := specification.GetPalette("NTSC", "z26")

	// the styles are genuinely different palettes
	different := false
	for i := range ntsc {
		if ntsc[i] != z26[i] {
			different = true
			break
		}
	}
	test.ExpectSuccess(t, different)

	// an unrecognised style falls back to standard
	test.Equate(t, specification.GetPalette("NTSC", "wibble")[0x3f], ntsc[0x3f])

	// SECAM has one style
	test.Equate(t, specification.GetPalette("SECAM", "z26")[8], specification.GetPalette("SECAM", "standard")[8])
}
