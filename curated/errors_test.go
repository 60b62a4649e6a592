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

package curated_test

import (
	"errors"
	"testing"

	"github.com/ewenb/ember2600/curated"
	"github.com/ewenb/ember2600/test"
)

func TestMessageCollapse(t *testing.T) {
	// rewrapping with the same prefix collapses in the message
	inner := curated.Errorf("snapshot: truncated data")
	outer := curated.Errorf("snapshot: %v", inner)
	test.Equate(t, outer.Error(), "snapshot: truncated data")

	// distinct prefixes are kept
	outer = curated.Errorf("emulation: %v", inner)
	test.Equate(t, outer.Error(), "emulation: snapshot: truncated data")
}

func TestMatching(t *testing.T) {
	err := curated.Errorf("cartridge: %s", "oversized")

	test.ExpectSuccess(t, curated.IsAny(err))
	test.ExpectSuccess(t, curated.Is(err, "cartridge: %s"))
	test.ExpectFailure(t, curated.Is(err, "cartridge"))

	test.ExpectFailure(t, curated.IsAny(nil))
	test.ExpectFailure(t, curated.IsAny(errors.New("cartridge: oversized")))
}

func TestChainSearch(t *testing.T) {
	inner := curated.Errorf("television: unsupported spec: %s", "wibble")
	outer := curated.Errorf("emulation: %v", inner)

	test.ExpectSuccess(t, curated.Has(outer, "television: unsupported spec: %s"))
	test.ExpectSuccess(t, curated.Has(outer, "emulation: %v"))
	test.ExpectFailure(t, curated.Has(outer, "riot: %v"))
	test.ExpectFailure(t, curated.Has(nil, "emulation: %v"))
}
