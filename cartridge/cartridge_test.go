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

package cartridge_test

import (
	"testing"

	"github.com/ewenb/ember2600/cartridge"
	"github.com/ewenb/ember2600/snapshot"
	"github.com/ewenb/ember2600/test"
)

func TestSchemeFromSize(t *testing.T) {
	for _, tc := range []struct {
		size   int
		scheme cartridge.Scheme
	}{
		{1024, cartridge.Scheme2K},
		{2048, cartridge.Scheme2K},
		{4096, cartridge.Scheme4K},
		{8192, cartridge.SchemeF8},
		{10240, cartridge.SchemeDPC},
		{12288, cartridge.SchemeFA},
		{16384, cartridge.SchemeF6},
		{32768, cartridge.SchemeF4},
		{65536, cartridge.SchemeSB},
		{131072, cartridge.SchemeDF},
	} {
		test.Equate(t, cartridge.ResolveScheme(make([]byte, tc.size), ""), tc.scheme)
	}
}

func TestSchemeFromHint(t *testing.T) {
	data := make([]byte, 4096)

	// a scheme extension forces the scheme regardless of content
	test.Equate(t, cartridge.ResolveScheme(data, "game.f8"), cartridge.SchemeF8)
	test.Equate(t, cartridge.ResolveScheme(data, "GAME.E7"), cartridge.SchemeE7)

	// a bare extension works too
	test.Equate(t, cartridge.ResolveScheme(data, "3f"), cartridge.Scheme3F)

	// generic extensions leave the scheme to fingerprinting
	test.Equate(t, cartridge.ResolveScheme(data, "game.bin"), cartridge.Scheme4K)
	test.Equate(t, cartridge.ResolveScheme(data, "game.a26"), cartridge.Scheme4K)

	// sound data is always a Supercharger tape
	test.Equate(t, cartridge.ResolveScheme(data, "tape.wav"), cartridge.SchemeAR)
	test.Equate(t, cartridge.ResolveScheme(data, "tape.mp3"), cartridge.SchemeAR)
}

func TestFingerprint3F(t *testing.T) {
	data := make([]byte, 8192)
	test.Equate(t, cartridge.ResolveScheme(data, ""), cartridge.SchemeF8)

	// two STA $3F instructions mark the Tigervision scheme
	copy(data[100:], []byte{0x85, 0x3f})
	copy(data[200:], []byte{0x85, 0x3f})
	test.Equate(t, cartridge.ResolveScheme(data, ""), cartridge.Scheme3F)

	// a single store is not enough
	data = make([]byte, 8192)
	copy(data[100:], []byte{0x85, 0x3f})
	test.Equate(t, cartridge.ResolveScheme(data, ""), cartridge.SchemeF8)
}

func TestFingerprintE7(t *testing.T) {
	data := make([]byte, 16384)
	test.Equate(t, cartridge.ResolveScheme(data, ""), cartridge.SchemeF6)

	// LDA $0FE3 marks the M-Network scheme
	copy(data[100:], []byte{0xad, 0xe3, 0x0f})
	test.Equate(t, cartridge.ResolveScheme(data, ""), cartridge.SchemeE7)
}

func TestFingerprintTVType(t *testing.T) {
	// too little evidence either way
	test.Equate(t, cartridge.FingerprintTVType(make([]byte, 4096)), "")

	// five even-hue colour writes: LDA #$2A / STA COLUPF
	data := make([]byte, 4096)
	for i := 0; i < 5; i++ {
		copy(data[i*4:], []byte{0xa9, 0x2a, 0x85, 0x08})
	}
	test.Equate(t, cartridge.FingerprintTVType(data), "PAL")

	// odd hues read as NTSC
	data = make([]byte, 4096)
	for i := 0; i < 5; i++ {
		copy(data[i*4:], []byte{0xa9, 0x1a, 0x85, 0x08})
	}
	test.Equate(t, cartridge.FingerprintTVType(data), "NTSC")

	// three writes is below the decision threshold
	data = make([]byte, 4096)
	for i := 0; i < 3; i++ {
		copy(data[i*4:], []byte{0xa9, 0x2a, 0x85, 0x08})
	}
	test.Equate(t, cartridge.FingerprintTVType(data), "")
}

func TestImage(t *testing.T) {
	img := cartridge.NewImage()
	test.ExpectSuccess(t, img.Empty())

	test.ExpectFailure(t, img.Set(nil))
	test.ExpectFailure(t, img.Set(make([]byte, cartridge.MaxROMSize+1)))
	test.ExpectSuccess(t, img.Empty())

	test.ExpectSuccess(t, img.Set([]byte{0x01, 0x02, 0x03}))
	test.Equate(t, img.Size(), 3)
	h := img.Hash()

	test.ExpectSuccess(t, img.Set([]byte{0x04, 0x05, 0x06}))
	if img.Hash() == h {
		t.Errorf("hash did not change with content")
	}
}

func TestBankSwitching(t *testing.T) {
	img := cartridge.NewImage()
	data := make([]byte, 8192)
	for i := range data {
		data[i] = byte(i >> 12) // bank number in every byte
	}
	test.ExpectSuccess(t, img.Set(data))

	cart, err := cartridge.NewCartridge(img, "game.f8")
	test.DemandEquality(t, err, nil)
	test.Equate(t, cart.NumBanks(), 2)

	test.Equate(t, cart.Read(0x100), uint8(0))
	cart.SwitchBank(1)
	test.Equate(t, cart.Read(0x100), uint8(1))

	// out of range selections wrap
	cart.SwitchBank(3)
	test.Equate(t, cart.Bank(), 1)
}

func TestCartridgeSerialisation(t *testing.T) {
	img := cartridge.NewImage()
	data := make([]byte, 8192)
	for i := range data {
		data[i] = byte(i * 3)
	}
	test.ExpectSuccess(t, img.Set(data))

	cart, err := cartridge.NewCartridge(img, "")
	test.DemandEquality(t, err, nil)
	cart.SwitchBank(1)

	w := snapshot.NewWriter()
	cart.Serialize(w)

	restored, err := cartridge.Deserialize(snapshot.NewReader(w.Bytes()), img)
	test.ExpectSuccess(t, err)
	test.Equate(t, restored.Scheme(), cart.Scheme())
	test.Equate(t, restored.Bank(), 1)

	// a different image is rejected
	other := cartridge.NewImage()
	test.ExpectSuccess(t, other.Set(make([]byte, 8192)))
	_, err = cartridge.Deserialize(snapshot.NewReader(w.Bytes()), other)
	test.ExpectFailure(t, err)
}
