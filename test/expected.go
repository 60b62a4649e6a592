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

// expect works out the success/failure value of v. supported types are bool,
// error and nil. for errors, a nil error is a success.
func expect(t *testing.T, v interface{}) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		return v
	case error:
		return false
	case nil:
		return true
	default:
		t.Fatalf("unsupported type (%T) for expect()", v)
	}

	return false
}

// ExpectSuccess tests argument v for a success value appropriate to its type:
// a true boolean or a nil error.
func ExpectSuccess(t *testing.T, v interface{}) bool {
	t.Helper()
	if !expect(t, v) {
		t.Errorf("expected success (%T)", v)
		return false
	}
	return true
}

// ExpectFailure tests argument v for a failure value appropriate to its type:
// a false boolean or a non-nil error.
func ExpectFailure(t *testing.T, v interface{}) bool {
	t.Helper()
	if expect(t, v) {
		t.Errorf("expected failure (%T)", v)
		return false
	}
	return true
}

// ExpectPanic tests that the calling function cause a panic before the end of
// the enclosing test. It should be used with defer:
//
//	defer test.ExpectPanic(t)
//	functionThatShouldPanic()
func ExpectPanic(t *testing.T) {
	t.Helper()
	if recover() == nil {
		t.Errorf("expected panic")
	}
}
