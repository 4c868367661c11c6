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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/wagiminator/tinyconsole/hardware/beeper"
	"github.com/wagiminator/tinyconsole/test"
	"github.com/wagiminator/tinyconsole/wavwriter"
)

func TestWavWriter(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "out.wav")

	aw, err := wavwriter.New(filename)
	if err != nil {
		t.Fatal(err)
	}

	// a pitch of 155 leaves a half period of 100us, or four samples at
	// 44100Hz. ten periods make eighty samples
	aw.Beep(beeper.Tone{Pitch: 155, Len: 10})

	// a rest has a half period of 255us, or eleven samples. two periods
	// make forty-four samples
	aw.Beep(beeper.Tone{Pitch: 0, Len: 2})

	err = aw.EndMixing()
	if err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(filename)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.Equate(t, dec.IsValidFile(), true)

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatal(err)
	}

	test.Equate(t, int(dec.NumChans), 1)
	test.Equate(t, int(dec.SampleRate), 44100)
	test.Equate(t, int(dec.BitDepth), 8)
	test.Equate(t, len(buf.Data), 124)

	// the square wave alternates every four samples
	test.Equate(t, buf.Data[0] == buf.Data[3], true)
	test.Equate(t, buf.Data[0] == buf.Data[4], false)

	// the rest is flat
	for i := 81; i < 124; i++ {
		test.Equate(t, buf.Data[80] == buf.Data[i], true)
	}
}
