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

// Package wavwriter captures the audio output of a session and saves it as
// a WAV file. It can be attached to a television as an AudioMixer or to the
// emulation runtime as an AudioTap; either way samples accumulate in memory
// and the file is written in one go when the capture ends.
package wavwriter

import (
	"os"

	"github.com/ewenb/ember2600/curated"
	"github.com/ewenb/ember2600/hardware/tia"
	"github.com/ewenb/ember2600/logger"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WavWriter accumulates samples and writes them out on EndMixing().
type WavWriter struct {
	filename string
	buffer   []int16
}

// NewWavWriter is the preferred method of initialisation for the WavWriter
// type.
func NewWavWriter(filename string) *WavWriter {
	return &WavWriter{
		filename: filename,
		buffer:   make([]int16, 0, tia.SampleFreq),
	}
}

// SetAudio implements the television.AudioMixer interface.
func (wwr *WavWriter) SetAudio(samples []int16) error {
	wwr.buffer = append(wwr.buffer, samples...)
	return nil
}

// Tap implements the emulation.AudioTap interface.
func (wwr *WavWriter) Tap(samples []int16) {
	wwr.buffer = append(wwr.buffer, samples...)
}

// EndMixing implements the television.AudioMixer interface. The accumulated
// samples are written to the WAV file.
func (wwr *WavWriter) EndMixing() error {
	f, err := os.Create(wwr.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer f.Close()

	// stereo interleaved, matching the sample stream of the machine
	enc := wav.NewEncoder(f, tia.SampleFreq, 16, 2, 1)

	buf := audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 2,
			SampleRate:  tia.SampleFreq,
		},
		Data:           make([]int, len(wwr.buffer)),
		SourceBitDepth: 16,
	}
	for i, s := range wwr.buffer {
		buf.Data[i] = int(s)
	}

	if err := enc.Write(&buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	logger.Logf("wavwriter", "%d samples written to %s", len(wwr.buffer), wwr.filename)

	return nil
}
