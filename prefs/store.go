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

// Package prefs is a flat, string-keyed configuration store with typed
// values. The emulation runtime writes to the store whenever a configuration
// setter executes and reads from it at machine creation time.
//
// No schema validation is performed. Out-of-range values are the concern of
// whatever fills the store.
package prefs

import (
	"fmt"
	"io"
	"sort"

	"github.com/ewenb/ember2600/curated"
)

// Store is a flat mapping of keys to preference values.
//
// A key must be registered before it can be set or read. Keys take the form
// "group.option", eg. "tv.phosphor", although nothing in the store enforces
// that shape.
type Store struct {
	entries map[string]pref
}

// NewStore is the preferred method of initialisation for the Store type.
func NewStore() *Store {
	return &Store{
		entries: make(map[string]pref),
	}
}

// Register key with the supplied pref instance (one of the Bool, String, Int
// or Float types in this package). The instance remains usable by the caller;
// the store is an additional view onto it.
func (s *Store) Register(key string, p pref) error {
	if _, ok := s.entries[key]; ok {
		return curated.Errorf("prefs: key already registered: %s", key)
	}
	s.entries[key] = p
	return nil
}

// SetValue sets the value for key. Setting an unregistered key is not an
// error; the request is quietly forgotten.
func (s *Store) SetValue(key string, value Value) error {
	p, ok := s.entries[key]
	if !ok {
		return nil
	}
	return p.Set(value)
}

// GetBool returns the boolean value for key, or false if the key is not
// registered or is not a Bool.
func (s *Store) GetBool(key string) bool {
	if p, ok := s.entries[key]; ok {
		if v, ok := p.Get().(bool); ok {
			return v
		}
	}
	return false
}

// GetInt returns the integer value for key, or zero if the key is not
// registered or is not an Int.
func (s *Store) GetInt(key string) int {
	if p, ok := s.entries[key]; ok {
		if v, ok := p.Get().(int); ok {
			return v
		}
	}
	return 0
}

// GetFloat returns the float value for key, or zero if the key is not
// registered or is not a Float.
func (s *Store) GetFloat(key string) float64 {
	if p, ok := s.entries[key]; ok {
		if v, ok := p.Get().(float64); ok {
			return v
		}
	}
	return 0.0
}

// GetString returns the string value for key, or the empty string if the key
// is not registered.
func (s *Store) GetString(key string) string {
	if p, ok := s.entries[key]; ok {
		if v, ok := p.Get().(string); ok {
			return v
		}
	}
	return ""
}

// Write the contents of the store, in key order, to io.Writer.
func (s *Store) Write(output io.Writer) {
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		io.WriteString(output, fmt.Sprintf("%s :: %s\n", k, s.entries[k].String()))
	}
}
