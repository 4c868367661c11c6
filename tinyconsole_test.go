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

package main_test

import (
	"testing"

	"github.com/wagiminator/tinyconsole/digest"
	"github.com/wagiminator/tinyconsole/games/muncher"
	"github.com/wagiminator/tinyconsole/hardware"
	"github.com/wagiminator/tinyconsole/hardware/beeper"
	"github.com/wagiminator/tinyconsole/hardware/joypad"
	"github.com/wagiminator/tinyconsole/hardware/oled"
	"github.com/wagiminator/tinyconsole/test"
)

// digestRun plays the default game for the given number of ticks with a
// fixed input and returns the video and audio digests.
func digestRun(t *testing.T, numTicks int) (string, string) {
	t.Helper()

	vid := digest.NewVideo()
	aud := digest.NewAudio()

	inp := joypad.InputFunc(func() joypad.State {
		return joypad.State{Act: true}
	})

	con, err := hardware.NewConsole(vid, oled.Origin{}, inp, aud)
	if err != nil {
		t.Fatal(err)
	}
	con.SetFPSCap(false)

	err = con.Plug(muncher.NewGame(aud, con.Random))
	if err != nil {
		t.Fatal(err)
	}

	err = con.RunForTickCount(numTicks, nil)
	if err != nil {
		t.Fatal(err)
	}

	return vid.Hash(), aud.Hash()
}

// the REGRESS mode is worthless unless two runs of the same game with the
// same input produce the same digests.
func TestDeterministicRun(t *testing.T) {
	vidA, audA := digestRun(t, 500)
	vidB, audB := digestRun(t, 500)

	test.Equate(t, vidB, vidA)
	test.Equate(t, audB, audA)
}

func BenchmarkConsole(b *testing.B) {
	con, err := hardware.NewConsole(oled.NullSink{}, oled.Origin{}, nil, nil)
	if err != nil {
		b.Fatal(err)
	}
	con.SetFPSCap(false)

	err = con.Plug(muncher.NewGame(beeper.Null{}, con.Random))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		err = con.Step()
		if err != nil {
			b.Fatal(err)
		}
	}
}
