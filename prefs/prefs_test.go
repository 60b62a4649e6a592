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

package prefs_test

import (
	"testing"

	"github.com/ewenb/ember2600/prefs"
	"github.com/ewenb/ember2600/test"
)

func TestBool(t *testing.T) {
	var p prefs.Bool

	// zero value
	test.Equate(t, p.Get().(bool), false)

	test.ExpectSuccess(t, p.Set(true))
	test.Equate(t, p.Get().(bool), true)

	// string values are accepted
	test.ExpectSuccess(t, p.Set("false"))
	test.Equate(t, p.Get().(bool), false)
	test.ExpectSuccess(t, p.Set("TRUE"))
	test.Equate(t, p.Get().(bool), true)

	// unconvertible types are an error and do not change the value
	test.ExpectFailure(t, p.Set(1.0))
	test.Equate(t, p.Get().(bool), true)
}

func TestInt(t *testing.T) {
	var p prefs.Int

	test.Equate(t, p.Get().(int), 0)

	test.ExpectSuccess(t, p.Set(60))
	test.Equate(t, p.Get().(int), 60)

	test.ExpectSuccess(t, p.Set("100"))
	test.Equate(t, p.Get().(int), 100)

	test.ExpectFailure(t, p.Set("not a number"))
	test.Equate(t, p.Get().(int), 100)
}

func TestHookPost(t *testing.T) {
	var p prefs.String

	var seen string
	p.SetHookPost(func(v prefs.Value) error {
		seen = v.(string)
		return nil
	})

	test.ExpectSuccess(t, p.Set("byrom"))
	test.Equate(t, seen, "byrom")
}

func TestStore(t *testing.T) {
	st := prefs.NewStore()

	var format prefs.String
	var blend prefs.Int
	var phosphor prefs.Bool

	test.ExpectSuccess(t, st.Register("tv.format", &format))
	test.ExpectSuccess(t, st.Register("tv.phosblend", &blend))
	test.ExpectSuccess(t, st.Register("tv.phosphor", &phosphor))

	// double registration is an error
	test.ExpectFailure(t, st.Register("tv.format", &format))

	test.ExpectSuccess(t, st.SetValue("tv.format", "PAL"))
	test.ExpectSuccess(t, st.SetValue("tv.phosblend", 60))
	test.Equate(t, st.GetString("tv.format"), "PAL")
	test.Equate(t, st.GetInt("tv.phosblend"), 60)

	// unregistered keys are quietly forgotten
	test.ExpectSuccess(t, st.SetValue("no.such.key", 1))
	test.Equate(t, st.GetInt("no.such.key"), 0)

	// typed accessor against the wrong type returns the zero value
	test.Equate(t, st.GetInt("tv.format"), 0)
}
