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

package test

import "testing"

// Equate is used to test equality between one value and another.
//
//	var r uint16
//	r = someFunction()
//	test.Equate(t, r, 10)
func Equate[T comparable](t *testing.T, value T, expectedValue T) {
	t.Helper()
	if value != expectedValue {
		t.Errorf("equation of type %T failed ('%v' - wanted '%v')", value, value, expectedValue)
	}
}

// DemandEquality is like Equate except that failure is a testing fatality.
//
// This is particularly useful if the values being tested are used in further
// tests and so must be correct. For example, testing that the lengths of two
// slices are equal before iterating over them in unison.
func DemandEquality[T comparable](t *testing.T, value T, expectedValue T) {
	t.Helper()
	if value != expectedValue {
		t.Fatalf("equality test of type %T failed ('%v' does not equal '%v')", value, value, expectedValue)
	}
}

// ApproxEquate is used to test approximate equality of two floating point
// values, to within the supplied tolerance.
func ApproxEquate(t *testing.T, value float32, expectedValue float32, tolerance float32) {
	t.Helper()
	d := value - expectedValue
	if d < 0 {
		d = -d
	}
	if d > tolerance {
		t.Errorf("approximation failed (%f - wanted %f +/- %f)", value, expectedValue, tolerance)
	}
}
