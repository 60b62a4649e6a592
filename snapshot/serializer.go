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

// Package snapshot implements the byte serialisation used by the machine
// save/restore protocol. The layout is an implementation detail of this
// package and the hardware package: the only promise made to the outside
// world is that a byte sequence produced by one version of the core can be
// restored by the same version.
//
// The Writer accumulates values into a byte sequence. The Reader walks a
// byte sequence with a sticky error: reads after a failure return zero
// values and the first failure is reported by the Error() function. Section
// markers catch misaligned reads early.
package snapshot

import (
	"encoding/binary"

	"github.com/ewenb/ember2600/curated"
)

// the magic bytes at the head of every serialisation.
var magic = [4]byte{'E', 'M', 'B', 'R'}

// Version of the serialisation layout. Bumped whenever the layout changes.
// There is no provision for reading older versions.
const Version = uint16(1)

// Writer accumulates a serialised machine state.
type Writer struct {
	data []byte
}

// NewWriter is the preferred method of initialisation for the Writer type.
// The returned writer has the magic and version fields already written.
func NewWriter() *Writer {
	w := &Writer{
		data: make([]byte, 0, 1024),
	}
	w.data = append(w.data, magic[:]...)
	w.PutUint16(Version)
	return w
}

// Bytes returns the accumulated serialisation.
func (w *Writer) Bytes() []byte {
	return w.data
}

// PutMarker writes a named section marker. The corresponding read must use
// the same name.
func (w *Writer) PutMarker(name string) {
	w.PutString(name)
}

// PutBool writes a boolean value.
func (w *Writer) PutBool(v bool) {
	if v {
		w.data = append(w.data, 0x01)
	} else {
		w.data = append(w.data, 0x00)
	}
}

// PutByte writes a single byte.
func (w *Writer) PutByte(v byte) {
	w.data = append(w.data, v)
}

// PutUint16 writes a 16bit unsigned value.
func (w *Writer) PutUint16(v uint16) {
	w.data = binary.BigEndian.AppendUint16(w.data, v)
}

// PutUint32 writes a 32bit unsigned value.
func (w *Writer) PutUint32(v uint32) {
	w.data = binary.BigEndian.AppendUint32(w.data, v)
}

// PutInt writes an integer value. The value is truncated to 32 bits.
func (w *Writer) PutInt(v int) {
	w.PutUint32(uint32(int32(v)))
}

// PutBytes writes a byte slice without a length prefix. The reader must know
// the length in advance.
func (w *Writer) PutBytes(v []byte) {
	w.data = append(w.data, v...)
}

// PutString writes a length-prefixed string.
func (w *Writer) PutString(v string) {
	w.PutUint16(uint16(len(v)))
	w.data = append(w.data, v...)
}

// Reader walks a serialised machine state.
type Reader struct {
	data []byte
	pos  int
	err  error
}

// NewReader is the preferred method of initialisation for the Reader type.
// The magic and version fields are validated immediately; a reader over
// foreign or stale data will report the problem through Error() before any
// value has been read.
func NewReader(data []byte) *Reader {
	r := &Reader{data: data}

	var m [4]byte
	copy(m[:], r.take(len(magic)))
	if r.err == nil && m != magic {
		r.err = curated.Errorf("snapshot: unrecognised data")
	}

	v := r.GetUint16()
	if r.err == nil && v != Version {
		r.err = curated.Errorf("snapshot: version mismatch: %d", v)
	}

	return r
}

// Error returns the first error encountered by the reader, or nil.
func (r *Reader) Error() error {
	return r.err
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// take returns the next n bytes of the serialisation, or nil if fewer than n
// bytes remain. all reads funnel through this function.
func (r *Reader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if r.pos+n > len(r.data) {
		r.err = curated.Errorf("snapshot: truncated data")
		return nil
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b
}

// GetMarker reads a section marker and checks it against the expected name.
func (r *Reader) GetMarker(name string) {
	s := r.GetString()
	if r.err == nil && s != name {
		r.err = curated.Errorf("snapshot: expected %s section, found %s", name, s)
	}
}

// GetBool reads a boolean value.
func (r *Reader) GetBool() bool {
	b := r.take(1)
	if b == nil {
		return false
	}
	if b[0] != 0x00 && b[0] != 0x01 {
		r.err = curated.Errorf("snapshot: malformed boolean")
		return false
	}
	return b[0] == 0x01
}

// GetByte reads a single byte.
func (r *Reader) GetByte() byte {
	b := r.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

// GetUint16 reads a 16bit unsigned value.
func (r *Reader) GetUint16() uint16 {
	b := r.take(2)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint16(b)
}

// GetUint32 reads a 32bit unsigned value.
func (r *Reader) GetUint32() uint32 {
	b := r.take(4)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}

// GetInt reads an integer value written with PutInt.
func (r *Reader) GetInt() int {
	return int(int32(r.GetUint32()))
}

// GetBytes reads len(v) bytes into v.
func (r *Reader) GetBytes(v []byte) {
	b := r.take(len(v))
	if b == nil {
		return
	}
	copy(v, b)
}

// GetString reads a length-prefixed string.
func (r *Reader) GetString() string {
	l := int(r.GetUint16())
	b := r.take(l)
	if b == nil {
		return ""
	}
	return string(b)
}
