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

package beeper

import "time"

// Tone is one tone request in the handheld's native units. Pitch sets
// the frequency: one half period of the square wave lasts (255-Pitch)
// microseconds. Len is the number of full periods to play. a Pitch of
// zero is a rest, held with the same timing.
type Tone struct {
	Pitch uint8
	Len   int
}

// Silent reports whether the tone is a rest.
func (tn Tone) Silent() bool {
	return tn.Pitch == 0
}

// Period returns the duration of one full period of the tone.
func (tn Tone) Period() time.Duration {
	return 2 * time.Duration(255-int(tn.Pitch)) * time.Microsecond
}

// Duration returns the total playing time of the tone.
func (tn Tone) Duration() time.Duration {
	return time.Duration(tn.Len) * tn.Period()
}

// Frequency returns the tone's frequency in Hz. meaningless for rests.
func (tn Tone) Frequency() float64 {
	return 1e6 / (2 * float64(255-int(tn.Pitch)))
}

// Rest returns a rest of roughly the given length. the resolution is one
// period of the all-stop pitch, 510 microseconds.
func Rest(d time.Duration) Tone {
	return Tone{Pitch: 0, Len: int(d / (510 * time.Microsecond))}
}

// Beeper is anything that accepts tone requests.
type Beeper interface {
	Beep(tn Tone)
}

// Null discards every tone request.
type Null struct{}

// Beep implements the Beeper interface.
func (Null) Beep(Tone) {
}

// Func is an adapter allowing a plain function to be used as a Beeper.
type Func func(Tone)

// Beep implements the Beeper interface.
func (f Func) Beep(tn Tone) {
	f(tn)
}

// Play sends every tone of a sequence to the beeper, in order.
func Play(b Beeper, seq []Tone) {
	for _, tn := range seq {
		b.Beep(tn)
	}
}

// SeqDuration returns the total playing time of a sequence.
func SeqDuration(seq []Tone) time.Duration {
	var d time.Duration
	for _, tn := range seq {
		d += tn.Duration()
	}
	return d
}
