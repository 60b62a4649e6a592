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

// The reference frontend for the emulation runtime: an SDL window and audio
// queue driven one frame at a time, with keyboard input and an in-memory
// save state slot (F5 to save, F9 to restore).
package main

import (
	"os"

	"github.com/ewenb/ember2600"
	"github.com/ewenb/ember2600/emulation"
	"github.com/ewenb/ember2600/logger"
	"github.com/ewenb/ember2600/wavwriter"

	"github.com/alecthomas/kong"
	"github.com/veandco/go-sdl2/sdl"
)

var cli struct {
	ROM string `arg:"" type:"existingfile" help:"ROM file to load. WAV and MP3 files load as Supercharger tapes."`

	Spec     string  `default:"AUTO" enum:"AUTO,NTSC,PAL,SECAM,NTSC50,PAL60,SECAM60" help:"Television specification."`
	Filter   string  `default:"none" enum:"none,composite,svideo,rgb" help:"Video post-processing filter."`
	Palette  string  `default:"standard" enum:"standard,z26,custom" help:"Colour palette style."`
	Phosphor string  `default:"byrom" enum:"byrom,never,always" help:"Phosphor afterglow mode."`
	Blend    int     `default:"77" help:"Phosphor blend level (0-100)."`
	Stereo   string  `default:"byrom" enum:"byrom,mono,stereo" help:"Sound channel mixing."`
	Scale    float32 `default:"3" help:"Window scale."`
	Wav      string  `default:"" help:"Capture audio to the named WAV file."`
	Frames   int     `default:"0" help:"Exit after this many frames. Zero means run until quit."`
	Log      bool    `help:"Echo the log to stderr."`
	Version  kong.VersionFlag
}

// the values the configuration setters accept are indexes into the option
// lists shown in the help text above.
func selector(list string, value string) int {
	var lists = map[string][]string{
		"spec":     {"AUTO", "NTSC", "PAL", "SECAM", "NTSC50", "PAL60", "SECAM60"},
		"filter":   {"none", "composite", "svideo", "rgb"},
		"palette":  {"standard", "z26", "custom"},
		"phosphor": {"byrom", "never", "always"},
		"stereo":   {"byrom", "mono", "stereo"},
	}
	for i, v := range lists[list] {
		if v == value {
			return i
		}
	}
	return -1
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("ember2600"),
		kong.Description("An Atari 2600 emulator."),
		kong.Vars{"version": ember2600.Version},
	)
	ctx.FatalIfErrorf(run())
}

func run() error {
	if cli.Log {
		logger.SetEcho(os.Stderr)
	}

	data, err := os.ReadFile(cli.ROM)
	if err != nil {
		return err
	}

	rt, err := emulation.NewRuntime()
	if err != nil {
		return err
	}

	rt.SetConsoleFormat(selector("spec", cli.Spec))
	rt.SetVideoFilter(selector("filter", cli.Filter))
	rt.SetVideoPalette(selector("palette", cli.Palette))
	rt.SetVideoPhosphor(selector("phosphor", cli.Phosphor), cli.Blend)
	rt.SetAudioStereo(selector("stereo", cli.Stereo))

	if err := rt.SetROM(data, cli.ROM); err != nil {
		return err
	}
	if err := rt.Create(); err != nil {
		return err
	}
	defer rt.Destroy()

	var capture *wavwriter.WavWriter
	if cli.Wav != "" {
		capture = wavwriter.NewWavWriter(cli.Wav)
		rt.SetAudioTap(capture)
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO); err != nil {
		return err
	}
	defer sdl.Quit()

	disp, err := newDisplay(rt, cli.Scale)
	if err != nil {
		return err
	}
	defer disp.destroy()

	audioDev, err := sdl.OpenAudioDevice("", false, &sdl.AudioSpec{
		Freq:     31440,
		Format:   sdl.AUDIO_S16LSB,
		Channels: 2,
		Samples:  512,
	}, nil, 0)
	if err != nil {
		return err
	}
	defer sdl.CloseAudioDevice(audioDev)
	sdl.PauseAudioDevice(audioDev, false)

	poller := newKeyboardPoller()
	rt.SetInputPoller(poller)

	// the in-memory save state slot
	var slot []byte

	frameDur := uint32(1000.0 / rt.RefreshRate())
	frames := 0

	for {
		start := sdl.GetTicks()

		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			switch ev := ev.(type) {
			case *sdl.QuitEvent:
				return nil
			case *sdl.KeyboardEvent:
				if ev.Type != sdl.KEYDOWN || ev.Repeat != 0 {
					continue
				}
				switch ev.Keysym.Sym {
				case sdl.K_ESCAPE:
					return nil
				case sdl.K_F5:
					slot = make([]byte, rt.StateSize())
					if err := rt.SaveState(slot); err != nil {
						logger.Logf("frontend", "save state: %v", err)
						slot = nil
					}
				case sdl.K_F9:
					if slot != nil {
						if err := rt.LoadState(slot); err != nil {
							logger.Logf("frontend", "load state: %v", err)
						}
					}
				default:
					poller.toggle(ev.Keysym.Sym)
				}
			}
		}

		if err := rt.RunFrame(); err != nil {
			return err
		}

		if err := disp.present(); err != nil {
			return err
		}

		if samples := rt.AudioSamples(); len(samples) > 0 {
			raw := make([]byte, len(samples)*2)
			for i, s := range samples {
				raw[i*2] = byte(s)
				raw[i*2+1] = byte(uint16(s) >> 8)
			}
			if err := sdl.QueueAudio(audioDev, raw); err != nil {
				logger.Logf("frontend", "audio: %v", err)
			}
		}

		frames++
		if cli.Frames > 0 && frames >= cli.Frames {
			break
		}

		// hold to the specification's refresh rate. vsync normally does this
		// for us but not every driver honours it
		if el := sdl.GetTicks() - start; el < frameDur {
			sdl.Delay(frameDur - el)
		}
	}

	if capture != nil {
		return capture.EndMixing()
	}

	return nil
}
