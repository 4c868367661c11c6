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

package muncher

import (
	"time"

	"github.com/wagiminator/tinyconsole/hardware/beeper"
)

// The longer sequences freeze the game for their playing time, the way
// the handheld stalled while bit-banging its piezo. seqTicks converts a
// sequence's duration into the number of ticks to hold.
const tickPeriod = 10 * time.Millisecond

func seqTicks(seq []beeper.Tone) int {
	return int((beeper.SeqDuration(seq) + tickPeriod - 1) / tickPeriod)
}

// munchSeq plays on every plain item. short enough to fire and forget.
var munchSeq = []beeper.Tone{
	{Pitch: 10, Len: 10},
	{Pitch: 50, Len: 10},
}

// tagSeq plays when a vulnerable chaser is tagged.
var tagSeq = []beeper.Tone{
	{Pitch: 20, Len: 100},
	{Pitch: 2, Len: 100},
}

// deathSeq is the descending jingle for a fatal contact.
var deathSeq = []beeper.Tone{
	{Pitch: 100, Len: 200},
	{Pitch: 75, Len: 200},
	{Pitch: 50, Len: 200},
	{Pitch: 25, Len: 200},
	{Pitch: 12, Len: 200},
	beeper.Rest(400 * time.Millisecond),
}

// bonusSeq marks an extra life: five pips with long gaps.
var bonusSeq = []beeper.Tone{
	{Pitch: 80, Len: 100}, beeper.Rest(300 * time.Millisecond),
	{Pitch: 80, Len: 100}, beeper.Rest(300 * time.Millisecond),
	{Pitch: 80, Len: 100}, beeper.Rest(300 * time.Millisecond),
	{Pitch: 80, Len: 100}, beeper.Rest(300 * time.Millisecond),
	{Pitch: 80, Len: 100}, beeper.Rest(300 * time.Millisecond),
}

// clearSeq is the level clear fanfare: sixty interleaved rising and
// falling pairs, then a second of quiet before the next level starts.
var clearSeq = buildClearSeq()

func buildClearSeq() []beeper.Tone {
	seq := make([]beeper.Tone, 0, 121)
	for r := 0; r < 60; r++ {
		seq = append(seq,
			beeper.Tone{Pitch: uint8(2 + r), Len: 10},
			beeper.Tone{Pitch: uint8(255 - r), Len: 20},
		)
	}
	return append(seq, beeper.Rest(time.Second))
}

// startMusic is the tune played once when a session leaves attract
// mode. The playfield holds until it finishes.
var startMusic = []beeper.Tone{
	{Pitch: 2, Len: 120},
	{Pitch: 129, Len: 240},
	{Pitch: 86, Len: 170},
	{Pitch: 54, Len: 140},
	{Pitch: 129, Len: 120},
	{Pitch: 86, Len: 100},
	{Pitch: 54, Len: 230},
	beeper.Rest(40 * time.Millisecond),
	{Pitch: 16, Len: 120},
	{Pitch: 136, Len: 250},
	{Pitch: 96, Len: 180},
	{Pitch: 65, Len: 150},
	{Pitch: 136, Len: 125},
	{Pitch: 96, Len: 110},
	{Pitch: 65, Len: 240},
	beeper.Rest(40 * time.Millisecond),
	{Pitch: 76, Len: 80},
	{Pitch: 86, Len: 85},
	{Pitch: 96, Len: 90},
	beeper.Rest(20 * time.Millisecond),
	{Pitch: 96, Len: 45},
	{Pitch: 104, Len: 95},
	{Pitch: 113, Len: 100},
	beeper.Rest(20 * time.Millisecond),
	{Pitch: 113, Len: 50},
	{Pitch: 121, Len: 105},
	{Pitch: 129, Len: 210},
}
