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

import (
	"path"
	"strings"
)

// Scheme identifies a bank-switching hardware scheme. The value is the
// scheme's conventional short name, which is also the file extension used to
// force it.
type Scheme string

// SchemeAuto is the sentinel asking for the scheme to be resolved by
// fingerprinting the ROM content.
const SchemeAuto = Scheme("AUTO")

// The supported bank-switching schemes.
const (
	Scheme2K  = Scheme("2K")  // 2KB, no switching, mirrored
	Scheme4K  = Scheme("4K")  // 4KB, no switching
	SchemeF8  = Scheme("F8")  // 8KB Atari
	SchemeFA  = Scheme("FA")  // 12KB CBS
	SchemeF6  = Scheme("F6")  // 16KB Atari
	SchemeF4  = Scheme("F4")  // 32KB Atari
	SchemeFE  = Scheme("FE")  // 8KB Activision
	SchemeE0  = Scheme("E0")  // 8KB Parker Bros
	SchemeE7  = Scheme("E7")  // 16KB M-Network
	Scheme3F  = Scheme("3F")  // Tigervision
	Scheme3E  = Scheme("3E")  // Tigervision with RAM
	SchemeDF  = Scheme("DF")  // 128KB CBS
	SchemeDPC = Scheme("DPC") // Pitfall II display processor
	SchemeAR  = Scheme("AR")  // Supercharger tape
	SchemeSB  = Scheme("SB")  // SUPERbanking
)

// FileExtensions is the list of ROM file extensions recognised by the
// package. Extensions that name a scheme force that scheme; the generic
// extensions leave the scheme to be fingerprinted.
var FileExtensions = [...]string{
	".BIN", ".ROM", ".A26",
	".2K", ".4K", ".F8", ".FA", ".F6", ".F4", ".FE", ".E0", ".E7",
	".3F", ".3E", ".DF", ".DPC", ".SB", ".AR",
	".WAV", ".MP3",
}

// extension to scheme lookup. built once at startup and never mutated.
var extensionSchemes map[string]Scheme

func init() {
	extensionSchemes = make(map[string]Scheme)
	for _, s := range []Scheme{
		Scheme2K, Scheme4K, SchemeF8, SchemeFA, SchemeF6, SchemeF4,
		SchemeFE, SchemeE0, SchemeE7, Scheme3F, Scheme3E, SchemeDF,
		SchemeDPC, SchemeAR, SchemeSB,
	} {
		extensionSchemes["."+string(s)] = s
	}

	// sound data is always a Supercharger tape
	extensionSchemes[".WAV"] = SchemeAR
	extensionSchemes[".MP3"] = SchemeAR
}

// schemeFromHint maps a filename (or bare extension) hint to a scheme. The
// generic extensions and anything unrecognised return SchemeAuto.
func schemeFromHint(hint string) Scheme {
	hint = strings.TrimSpace(hint)
	if hint == "" {
		return SchemeAuto
	}

	ext := strings.ToUpper(path.Ext(hint))
	if ext == "" {
		// a bare extension may have been supplied
		ext = "." + strings.ToUpper(hint)
	}

	if s, ok := extensionSchemes[ext]; ok {
		return s
	}

	return SchemeAuto
}
