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

package cartridge

// ResolveScheme decides the bank-switching scheme for a ROM. It is a pure
// function of its arguments: the filename hint is consulted first and, when
// the hint does not force a scheme, the content is fingerprinted.
//
// Fingerprinting is primarily driven by file size. Where several schemes
// share a size the most common scheme for that size wins; a caller that
// knows better can always force the scheme through the hint.
func ResolveScheme(data []byte, filenameHint string) Scheme {
	if s := schemeFromHint(filenameHint); s != SchemeAuto {
		return s
	}

	switch {
	case len(data) <= 2048:
		return Scheme2K
	case len(data) <= 4096:
		return Scheme4K
	case len(data) <= 8192:
		if fingerprint3F(data) {
			return Scheme3F
		}
		return SchemeF8
	case len(data) <= 10495:
		// sizes between 8KB and 10.5KB are almost certainly DPC (Pitfall II):
		// 8KB of program, 2KB of display data and some slack
		return SchemeDPC
	case len(data) <= 12288:
		return SchemeFA
	case len(data) <= 16384:
		if fingerprintE7(data) {
			return SchemeE7
		}
		return SchemeF6
	case len(data) <= 32768:
		if fingerprint3F(data) {
			return Scheme3E
		}
		return SchemeF4
	case len(data) <= 65536:
		return SchemeSB
	}

	return SchemeDF
}

// fingerprint3F looks for repeated stores to the 3F hotspot, the signature
// of the Tigervision scheme.
func fingerprint3F(data []byte) bool {
	ct := 0
	for i := 0; i < len(data)-1; i++ {
		// STA $3F
		if data[i] == 0x85 && data[i+1] == 0x3f {
			ct++
			if ct >= 2 {
				return true
			}
		}
	}
	return false
}

// fingerprintE7 looks for accesses in the E7 hotspot range ($FE0-$FE7),
// the signature of the M-Network scheme.
func fingerprintE7(data []byte) bool {
	for i := 0; i < len(data)-2; i++ {
		if data[i] == 0xad && data[i+1] >= 0xe0 && data[i+1] <= 0xe7 && data[i+2] == 0x0f {
			return true
		}
	}
	return false
}

// FingerprintTVType inspects ROM content for evidence of the television
// standard it was written for. It returns "NTSC", "PAL", or the empty string
// when the content carries no strong signal either way.
//
// The heuristic looks at immediate loads that are immediately stored to one
// of the TIA colour registers (COLUP0, COLUP1, COLUPF, COLUBK at zero page
// $06-$09). PAL development palettes lean heavily on the even hue pairs of
// the PAL colour wheel, which appear as a surplus of even high-nibbles among
// the stored colour values.
func FingerprintTVType(data []byte) string {
	var even, odd, total int

	for i := 0; i < len(data)-3; i++ {
		// LDA #colour / STA colour-register
		if data[i] != 0xa9 || data[i+2] != 0x85 {
			continue
		}
		if data[i+3] < 0x06 || data[i+3] > 0x09 {
			continue
		}

		hue := data[i+1] >> 4
		if hue == 0x00 {
			// the grey ramp is common to every standard
			continue
		}

		total++
		if hue&0x01 == 0x00 {
			even++
		} else {
			odd++
		}
	}

	// too few colour writes to make a call
	if total < 4 {
		return ""
	}

	if even > odd*2 {
		return "PAL"
	}
	return "NTSC"
}
