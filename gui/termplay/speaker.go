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

package termplay

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/wagiminator/tinyconsole/curated"
	"github.com/wagiminator/tinyconsole/hardware/beeper"
)

const speakerSampleRate = beep.SampleRate(44100)

// the square wave's swing either side of zero. kept well down, piezo
// tones are tiring at full volume
const speakerAmplitude = 0.2

// Speaker plays tone requests through the beep speaker. It has no
// dependency on the rest of the terminal front end beyond sharing its
// package; a TermPlay works without one.
type Speaker struct {
	tones *toneQueue
}

// NewSpeaker is the preferred method of initialisation for the Speaker
// type. There can only be one per process, the underlying speaker being
// a package level singleton.
func NewSpeaker() (*Speaker, error) {
	err := speaker.Init(speakerSampleRate, speakerSampleRate.N(50*time.Millisecond))
	if err != nil {
		return nil, curated.Errorf("termplay: %v", err)
	}

	sp := &Speaker{tones: &toneQueue{}}
	speaker.Play(sp.tones)

	return sp, nil
}

// Beep implements the beeper.Beeper interface.
func (sp *Speaker) Beep(tn beeper.Tone) {
	if tn.Len <= 0 {
		return
	}

	// the queue is streamed from the speaker goroutine so mutation must
	// happen under the speaker lock
	speaker.Lock()
	sp.tones.add(newSquare(tn))
	speaker.Unlock()
}

// EndMixing shuts the speaker down, discarding any tones still queued.
func (sp *Speaker) EndMixing() error {
	speaker.Close()
	return nil
}

// toneQueue streams its entries one after another, filling with silence
// when there is nothing queued. unlike a beep.Mixer the entries play in
// sequence, not together, which is what a single piezo pin does.
type toneQueue struct {
	streamers []beep.Streamer
}

func (q *toneQueue) add(s beep.Streamer) {
	q.streamers = append(q.streamers, s)
}

// Stream implements the beep.Streamer interface.
func (q *toneQueue) Stream(samples [][2]float64) (int, bool) {
	filled := 0
	for filled < len(samples) {
		if len(q.streamers) == 0 {
			for i := filled; i < len(samples); i++ {
				samples[i][0] = 0
				samples[i][1] = 0
			}
			break
		}

		n, ok := q.streamers[0].Stream(samples[filled:])
		if !ok {
			q.streamers = q.streamers[1:]
		}
		filled += n
	}
	return len(samples), true
}

// Err implements the beep.Streamer interface.
func (q *toneQueue) Err() error {
	return nil
}

// square streams one tone as a square wave. rests stream as zeroes with
// the same timing.
type square struct {
	halfPeriod int
	remaining  int
	pos        int
	silent     bool
}

func newSquare(tn beeper.Tone) *square {
	// samples per half period, never zero whatever the pitch
	n := speakerSampleRate.N(time.Duration(255-int(tn.Pitch)) * time.Microsecond)
	if n < 1 {
		n = 1
	}

	return &square{
		halfPeriod: n,
		remaining:  2 * n * tn.Len,
		silent:     tn.Silent(),
	}
}

// Stream implements the beep.Streamer interface.
func (s *square) Stream(samples [][2]float64) (int, bool) {
	if s.remaining <= 0 {
		return 0, false
	}

	for i := range samples {
		if s.remaining <= 0 {
			return i, true
		}

		var v float64
		if !s.silent {
			if (s.pos/s.halfPeriod)%2 == 0 {
				v = speakerAmplitude
			} else {
				v = -speakerAmplitude
			}
		}
		samples[i][0] = v
		samples[i][1] = v

		s.pos++
		s.remaining--
	}

	return len(samples), true
}

// Err implements the beep.Streamer interface.
func (s *square) Err() error {
	return nil
}
