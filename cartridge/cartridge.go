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

// Package cartridge deals with ROM images and the bank-switching hardware
// variants found in real cartridges. Scheme resolution is a pure function of
// ROM content and an optional filename hint; the runtime consults it once,
// when a machine is created.
package cartridge

import (
	"github.com/ewenb/ember2600/curated"
	"github.com/ewenb/ember2600/logger"
	"github.com/ewenb/ember2600/snapshot"
)

// the size of the address window a cartridge occupies.
const bankSize = 4096

// Cartridge is an attached ROM image together with its resolved scheme and
// the state of its bank-switching hardware.
type Cartridge struct {
	// the image is a reference to the runtime-owned ROM buffer. it is
	// immutable for the lifetime of the machine, so snapshots of the
	// cartridge share it rather than copying it
	image *Image

	scheme   Scheme
	numBanks int
	bank     int
}

// NewCartridge attaches the ROM image, resolving the bank-switching scheme
// from the content and the optional filename hint.
func NewCartridge(image *Image, filenameHint string) (*Cartridge, error) {
	if image == nil || image.Empty() {
		return nil, curated.Errorf("cartridge: no ROM image")
	}

	cart := &Cartridge{
		image:  image,
		scheme: ResolveScheme(image.Data(), filenameHint),
	}

	cart.numBanks = (image.Size() + bankSize - 1) / bankSize
	if cart.numBanks < 1 {
		cart.numBanks = 1
	}

	logger.Logf("cartridge", "%d bytes, scheme %s, %d banks", image.Size(), cart.scheme, cart.numBanks)

	return cart, nil
}

// Scheme returns the resolved bank-switching scheme.
func (cart *Cartridge) Scheme() Scheme {
	return cart.scheme
}

// NumBanks returns the number of switchable banks. Unswitched cartridges
// report one bank.
func (cart *Cartridge) NumBanks() int {
	return cart.numBanks
}

// Bank returns the currently selected bank.
func (cart *Cartridge) Bank() int {
	return cart.bank
}

// SwitchBank selects the bank visible in the address window. Out-of-range
// selections wrap, as they do in hardware where only the low address lines
// are decoded.
func (cart *Cartridge) SwitchBank(bank int) {
	if bank < 0 {
		bank = -bank
	}
	cart.bank = bank % cart.numBanks
}

// Read returns the byte at the given address of the currently selected bank.
// Addresses beyond the image wrap, mirroring the behaviour of small ROMs in
// the 4KB address window.
func (cart *Cartridge) Read(addr uint16) uint8 {
	offset := cart.bank*bankSize + int(addr)%bankSize
	return cart.image.Data()[offset%cart.image.Size()]
}

// Hash returns the hash of the attached ROM image.
func (cart *Cartridge) Hash() string {
	return cart.image.Hash()
}

// Snapshot creates a copy of the Cartridge in its current state. The ROM
// image is shared, not copied.
func (cart *Cartridge) Snapshot() *Cartridge {
	n := *cart
	return &n
}

// Serialize the cartridge state. The ROM content itself is not serialised,
// only its hash: a deserialising machine must already have the same image
// attached.
func (cart *Cartridge) Serialize(w *snapshot.Writer) {
	w.PutMarker("cart")
	w.PutString(cart.image.Hash())
	w.PutString(string(cart.scheme))
	w.PutInt(cart.bank)
}

// Deserialize a cartridge state produced by Serialize(), attaching it to the
// supplied image. Fails if the image differs from the one the state was
// saved with.
func Deserialize(r *snapshot.Reader, image *Image) (*Cartridge, error) {
	r.GetMarker("cart")
	hash := r.GetString()
	scheme := Scheme(r.GetString())
	bank := r.GetInt()

	if err := r.Error(); err != nil {
		return nil, err
	}

	if image == nil || image.Empty() {
		return nil, curated.Errorf("cartridge: no ROM image")
	}
	if hash != image.Hash() {
		return nil, curated.Errorf("cartridge: state was saved with a different ROM")
	}

	cart, err := NewCartridge(image, "")
	if err != nil {
		return nil, err
	}
	cart.scheme = scheme
	cart.SwitchBank(bank)

	return cart, nil
}
