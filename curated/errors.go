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

package curated

import (
	"fmt"
	"strings"
)

// sentinel is the concrete error type of the package. The pattern string is
// the error's identity: Is() and Has() compare patterns, not formatted
// messages.
type sentinel struct {
	pattern string
	values  []interface{}
}

// Errorf creates a new curated error from a pattern and its values.
//
// The first argument is named "pattern" rather than "format" because it does
// double duty: it formats the message, as in the fmt package, and it names
// the error for the Is() and Has() functions. Formatting is deferred to the
// Error() function.
func Errorf(pattern string, values ...interface{}) error {
	return &sentinel{
		pattern: pattern,
		values:  values,
	}
}

// Error returns the formatted message with repeated adjacent parts collapsed.
// Repetition accumulates when an error is rewrapped with its package prefix
// on the way up through the layers; collapsing it keeps messages readable
// without the wrapping sites having to care.
//
// Implements the go language error interface.
func (er *sentinel) Error() string {
	parts := strings.Split(fmt.Errorf(er.pattern, er.values...).Error(), ": ")

	out := parts[:1]
	for _, p := range parts[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}

	return strings.Join(out, ": ")
}

// IsAny checks if the error is a curated error.
func IsAny(err error) bool {
	if err == nil {
		return false
	}
	_, ok := err.(*sentinel)
	return ok
}

// Is checks if the error is a curated error with the specified pattern.
func Is(err error, pattern string) bool {
	er, ok := err.(*sentinel)
	return ok && er.pattern == pattern
}

// Has checks if the error is a curated error with the specified pattern
// anywhere in its chain of values.
func Has(err error, pattern string) bool {
	er, ok := err.(*sentinel)
	if !ok {
		return false
	}

	if er.pattern == pattern {
		return true
	}

	for _, v := range er.values {
		if e, ok := v.(error); ok && Has(e, pattern) {
			return true
		}
	}

	return false
}
