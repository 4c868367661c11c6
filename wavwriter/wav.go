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

// Package wavwriter allows writing of tone output to disk as a WAV file.
// Note that audio data is buffered in memory in its entirety, and written
// to disk on program end. It is therefore probably only suitable for
// testing purposes.
package wavwriter

import (
	"os"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/wagiminator/tinyconsole/curated"
	"github.com/wagiminator/tinyconsole/hardware/beeper"
	"github.com/wagiminator/tinyconsole/logger"
)

const sampleRate = 44100

// square wave levels for 8bit unsigned PCM. rests sit on the midline
const (
	levelLow  = 0x40
	levelMid  = 0x80
	levelHigh = 0xc0
)

// WavWriter implements the beeper.Beeper interface. Every tone request is
// synthesised into the sample buffer as it arrives.
type WavWriter struct {
	filename string
	data     []int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string) (*WavWriter, error) {
	aw := &WavWriter{
		filename: filename,
		data:     make([]int, 0, sampleRate),
	}

	return aw, nil
}

// Beep implements the beeper.Beeper interface.
func (aw *WavWriter) Beep(tn beeper.Tone) {
	half := time.Duration(255-int(tn.Pitch)) * time.Microsecond

	// number of samples in one half period of the square wave
	n := int(time.Duration(sampleRate) * half / time.Second)
	if n < 1 {
		n = 1
	}

	hi := levelHigh
	lo := levelLow
	if tn.Silent() {
		hi = levelMid
		lo = levelMid
	}

	for p := 0; p < tn.Len; p++ {
		for i := 0; i < n; i++ {
			aw.data = append(aw.data, hi)
		}
		for i := 0; i < n; i++ {
			aw.data = append(aw.data, lo)
		}
	}
}

// EndMixing writes the accumulated samples to disk.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, sampleRate, 8, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		Data:           aw.data,
		SourceBitDepth: 8,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	err = enc.Write(buf)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	err = enc.Close()
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
