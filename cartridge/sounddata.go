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
	"bytes"
	"io"
	"path"
	"strings"

	"github.com/ewenb/ember2600/curated"
	"github.com/ewenb/ember2600/logger"

	"github.com/hajimehoshi/go-mp3"
	"github.com/youpy/go-wav"
)

// IsSoundData returns true if the filename hint refers to a Supercharger
// tape recording rather than a ROM dump.
func IsSoundData(filenameHint string) bool {
	ext := strings.ToUpper(path.Ext(filenameHint))
	return ext == ".WAV" || ext == ".MP3"
}

// DecodeSoundData converts a Supercharger tape recording (a WAV or MP3 file)
// to the 8-bit PCM stream the AR scheme loads from. The filename hint
// selects the decoder.
func DecodeSoundData(data []byte, filenameHint string) ([]byte, error) {
	ext := strings.ToUpper(path.Ext(filenameHint))

	var pcm []byte
	var err error

	switch ext {
	case ".WAV":
		pcm, err = decodeWav(data)
	case ".MP3":
		pcm, err = decodeMp3(data)
	default:
		return nil, curated.Errorf("cartridge: %s is not sound data", filenameHint)
	}

	if err != nil {
		return nil, err
	}

	if len(pcm) == 0 {
		return nil, curated.Errorf("cartridge: no PCM data in %s", filenameHint)
	}
	if len(pcm) > MaxROMSize {
		pcm = pcm[:MaxROMSize]
	}

	logger.Logf("cartridge", "decoded %d bytes of tape data from %s", len(pcm), path.Base(filenameHint))

	return pcm, nil
}

func decodeWav(data []byte) ([]byte, error) {
	r := wav.NewReader(bytes.NewReader(data))

	pcm := make([]byte, 0, len(data))

	for {
		samples, err := r.ReadSamples()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, curated.Errorf("cartridge: wav decode: %v", err)
		}
		for _, s := range samples {
			// mix down to 8-bit mono
			pcm = append(pcm, uint8(r.IntValue(s, 0)>>8)+128)
		}
	}

	return pcm, nil
}

func decodeMp3(data []byte) ([]byte, error) {
	d, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return nil, curated.Errorf("cartridge: mp3 decode: %v", err)
	}

	pcm := make([]byte, 0, len(data))

	buf := make([]byte, 4096)
	for {
		n, err := d.Read(buf)

		// the decoder emits 16-bit little-endian stereo. take the high byte
		// of the left channel of each frame
		for i := 0; i+3 < n; i += 4 {
			pcm = append(pcm, buf[i+1]+128)
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, curated.Errorf("cartridge: mp3 decode: %v", err)
		}
	}

	return pcm, nil
}
