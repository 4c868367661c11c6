// This file is part of TinyConsole.
//
// TinyConsole is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// TinyConsole is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with TinyConsole.  If not, see <https://www.gnu.org/licenses/>.

// Package sdlaudio recreates the handheld's piezo buzzer through an SDL
// audio device. Each tone request is synthesised into a square wave in
// full and queued immediately; the device drains the queue in real time
// while the game carries on. The game freezes itself for the length of
// its jingles, just as the firmware does, so the queue never runs far
// ahead of the action.
package sdlaudio

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/wagiminator/tinyconsole/curated"
	"github.com/wagiminator/tinyconsole/hardware/beeper"
	"github.com/wagiminator/tinyconsole/logger"
)

const sampleRate = 44100

// the wave swings this far either side of the device's silence value.
// half amplitude keeps the buzzer at a neighbourly volume
const amplitude = 0x40

// Audio queues square wave tones on an SDL audio device.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// scratch buffer reused between tones. QueueAudio copies the data
	// out so reuse is safe
	buffer []uint8
}

// NewAudio is the preferred method of initialisation for the Audio
// type.
func NewAudio() (*Audio, error) {
	aud := &Audio{}

	spec := &sdl.AudioSpec{
		Freq:     sampleRate,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  512,
	}

	var err error
	var actualSpec sdl.AudioSpec

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, curated.Errorf("sdlaudio: %v", err)
	}

	aud.spec = actualSpec

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// Beep implements the beeper.Beeper interface. Tones are whole and
// indivisible: the full square wave is built and queued before
// returning.
func (aud *Audio) Beep(tn beeper.Tone) {
	if tn.Len <= 0 {
		return
	}

	// samples per half period. the all-stop pitch of 255 would give a
	// zero length half period; it never arrives from the games but a
	// single sample is substituted if it does
	half := time.Duration(255-int(tn.Pitch)) * time.Microsecond
	n := int(time.Duration(sampleRate) * half / time.Second)
	if n < 1 {
		n = 1
	}

	silence := aud.spec.Silence
	high := silence + amplitude
	low := silence - amplitude

	aud.buffer = aud.buffer[:0]
	for i := 0; i < tn.Len; i++ {
		if tn.Silent() {
			for j := 0; j < 2*n; j++ {
				aud.buffer = append(aud.buffer, silence)
			}
		} else {
			for j := 0; j < n; j++ {
				aud.buffer = append(aud.buffer, high)
			}
			for j := 0; j < n; j++ {
				aud.buffer = append(aud.buffer, low)
			}
		}
	}

	err := sdl.QueueAudio(aud.id, aud.buffer)
	if err != nil {
		logger.Logf(logger.Allow, "sdlaudio", "%v", err)
	}
}

// EndMixing closes the audio device. Any tones still queued are
// discarded.
func (aud *Audio) EndMixing() error {
	sdl.ClearQueuedAudio(aud.id)
	sdl.CloseAudioDevice(aud.id)
	return nil
}
