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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a
// formatting pattern, placeholder values and returns an error. The pattern is
// what identifies the error in later tests:
//
//	e := curated.Errorf("machine: %v", underlying)
//
//	if curated.Is(e, "machine: %v") {
//		...
//	}
//
// The Has() function is similar to Is() but checks the whole error chain for
// the pattern. IsAny() answers whether the error was created by this package
// at all; errors that are not curated can be considered unexpected.
//
// For the purposes of this package an error chain is composed of parts
// separated by the sub-string ': ' as suggested on p239 of "The Go
// Programming Language" (Donovan, Kernighan). The Error() function normalises
// the chain so that it does not contain duplicate adjacent parts.
package curated
