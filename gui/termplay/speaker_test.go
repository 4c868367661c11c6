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
	"testing"

	"github.com/wagiminator/tinyconsole/hardware/beeper"
	"github.com/wagiminator/tinyconsole/test"
)

func TestSquareStream(t *testing.T) {
	// pitch 155 is a 100µs half period, 4 samples at 44.1kHz
	sq := newSquare(beeper.Tone{Pitch: 155, Len: 10})
	test.Equate(t, sq.halfPeriod, 4)
	test.Equate(t, sq.remaining, 80)

	buf := make([][2]float64, 32)

	n, ok := sq.Stream(buf)
	test.Equate(t, n, 32)
	test.Equate(t, ok, true)

	// half periods alternate every four samples
	test.Equate(t, buf[0][0] == speakerAmplitude, true)
	test.Equate(t, buf[3][0] == speakerAmplitude, true)
	test.Equate(t, buf[4][0] == -speakerAmplitude, true)
	test.Equate(t, buf[7][0] == -speakerAmplitude, true)
	test.Equate(t, buf[8][0] == speakerAmplitude, true)

	// both channels carry the same signal
	test.Equate(t, buf[0][1] == buf[0][0], true)

	n, ok = sq.Stream(buf)
	test.Equate(t, n, 32)
	test.Equate(t, ok, true)

	// the tone runs out mid buffer
	n, ok = sq.Stream(buf)
	test.Equate(t, n, 16)
	test.Equate(t, ok, true)

	n, ok = sq.Stream(buf)
	test.Equate(t, n, 0)
	test.Equate(t, ok, false)
}

func TestSquareRest(t *testing.T) {
	sq := newSquare(beeper.Tone{Pitch: 0, Len: 1})

	// a rest holds the same timing as the all-stop pitch
	test.Equate(t, sq.halfPeriod, 11)
	test.Equate(t, sq.remaining, 22)

	buf := make([][2]float64, 22)
	for i := range buf {
		buf[i][0] = 99
		buf[i][1] = 99
	}

	n, ok := sq.Stream(buf)
	test.Equate(t, n, 22)
	test.Equate(t, ok, true)

	for i := range buf {
		test.Equate(t, buf[i][0] == 0, true)
		test.Equate(t, buf[i][1] == 0, true)
	}
}

func TestToneQueue(t *testing.T) {
	q := &toneQueue{}

	// an empty queue streams silence and never ends
	buf := make([][2]float64, 16)
	for i := range buf {
		buf[i][0] = 99
	}

	n, ok := q.Stream(buf)
	test.Equate(t, n, 16)
	test.Equate(t, ok, true)
	test.Equate(t, buf[0][0] == 0, true)
	test.Equate(t, buf[15][0] == 0, true)

	// queued tones play in sequence with silence following the last.
	// pitch 233 is one sample per half period so each tone is Len*2
	// samples long
	q.add(newSquare(beeper.Tone{Pitch: 233, Len: 4}))
	q.add(newSquare(beeper.Tone{Pitch: 0, Len: 1}))

	n, ok = q.Stream(buf)
	test.Equate(t, n, 16)
	test.Equate(t, ok, true)

	// first tone occupies the first eight samples
	test.Equate(t, buf[0][0] == speakerAmplitude, true)
	test.Equate(t, buf[1][0] == -speakerAmplitude, true)
	test.Equate(t, buf[7][0] == -speakerAmplitude, true)

	// the rest that follows is indistinguishable from the trailing
	// silence
	test.Equate(t, buf[8][0] == 0, true)
	test.Equate(t, buf[15][0] == 0, true)

	// one more buffer exhausts the rest and empties the queue
	n, ok = q.Stream(buf)
	test.Equate(t, n, 16)
	test.Equate(t, ok, true)
	test.Equate(t, len(q.streamers), 0)
}
